package marketplaces

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/constants"
	"github.com/catalogmapper/catalog-mapper/internal/common"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/repository"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeMarketRepo struct {
	markets map[uuid.UUID]*entity.Marketplace
	deleted []uuid.UUID
}

func newFakeMarketRepo(ids ...uuid.UUID) *fakeMarketRepo {
	f := &fakeMarketRepo{markets: make(map[uuid.UUID]*entity.Marketplace)}
	for _, id := range ids {
		f.markets[id] = &entity.Marketplace{ID: id, Name: "m", DisplayName: "M"}
	}
	return f
}

func (f *fakeMarketRepo) Create(_ context.Context, req *repository.CreateMarketplaceRequest) (*entity.Marketplace, error) {
	m := &entity.Marketplace{ID: uuid.New(), Name: req.Name, DisplayName: req.DisplayName}
	f.markets[m.ID] = m
	return m, nil
}

func (f *fakeMarketRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Marketplace, error) {
	m, ok := f.markets[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return m, nil
}

func (f *fakeMarketRepo) List(context.Context) ([]*entity.Marketplace, error) { return nil, nil }

func (f *fakeMarketRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.markets[id]
	return ok, nil
}

func (f *fakeMarketRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.markets, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeFieldRepo struct {
	fields    map[uuid.UUID]*entity.MarketplaceField
	lastScope repository.FieldScope
	failIDs   map[uuid.UUID]bool
	deleted   int
}

func newFakeFieldRepo() *fakeFieldRepo {
	return &fakeFieldRepo{
		fields:  make(map[uuid.UUID]*entity.MarketplaceField),
		failIDs: make(map[uuid.UUID]bool),
	}
}

func (f *fakeFieldRepo) ListByMarketplace(_ context.Context, marketplaceID uuid.UUID) ([]*entity.MarketplaceField, error) {
	var out []*entity.MarketplaceField
	for _, fl := range f.fields {
		if fl.MarketplaceID == marketplaceID {
			out = append(out, fl)
		}
	}
	return out, nil
}

func (f *fakeFieldRepo) ListByCategory(_ context.Context, marketplaceID uuid.UUID, category *string) ([]*entity.MarketplaceField, error) {
	var out []*entity.MarketplaceField
	for _, fl := range f.fields {
		if fl.MarketplaceID != marketplaceID {
			continue
		}
		switch {
		case category == nil && fl.Category == nil:
			out = append(out, fl)
		case category != nil && fl.Category != nil && *category == *fl.Category:
			out = append(out, fl)
		}
	}
	return out, nil
}

func (f *fakeFieldRepo) ReplaceFields(_ context.Context, marketplaceID uuid.UUID, scope repository.FieldScope, seeds []repository.FieldSeed) ([]*entity.MarketplaceField, error) {
	f.lastScope = scope
	// Delete-then-insert, like the real repository: only fields inside the
	// scope are removed before the new set goes in.
	for id, fl := range f.fields {
		if fl.MarketplaceID != marketplaceID {
			continue
		}
		if scope.All || sameCategory(scope.Category, fl.Category) {
			delete(f.fields, id)
		}
	}
	out := make([]*entity.MarketplaceField, len(seeds))
	for i, s := range seeds {
		order := s.FieldOrder
		if order == nil {
			o := i
			order = &o
		}
		fl := &entity.MarketplaceField{
			ID:            uuid.New(),
			MarketplaceID: marketplaceID,
			FieldName:     s.FieldName,
			DisplayName:   s.DisplayName,
			IsRequired:    s.IsRequired,
			SampleValues:  s.SampleValues,
			FieldOrder:    order,
			Category:      scope.Category,
		}
		f.fields[fl.ID] = fl
		out[i] = fl
	}
	return out, nil
}

func (f *fakeFieldRepo) UpdateField(_ context.Context, id uuid.UUID, patch repository.FieldPatch) (*entity.MarketplaceField, error) {
	if f.failIDs[id] {
		return nil, errors.New("update failed")
	}
	fl, ok := f.fields[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if patch.IsRequired != nil {
		fl.IsRequired = *patch.IsRequired
	}
	if patch.Description != nil {
		fl.Description = patch.Description
	}
	if patch.DisplayName != nil {
		fl.DisplayName = patch.DisplayName
	}
	if patch.FieldOrder != nil {
		fl.FieldOrder = patch.FieldOrder
	}
	return fl, nil
}

func (f *fakeFieldRepo) DeleteByCategory(_ context.Context, marketplaceID uuid.UUID, category *string) (int, error) {
	n := 0
	for id, fl := range f.fields {
		if fl.MarketplaceID != marketplaceID {
			continue
		}
		if sameCategory(category, fl.Category) {
			delete(f.fields, id)
			n++
		}
	}
	f.deleted += n
	return n, nil
}

func sameCategory(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func TestCreateRequiresName(t *testing.T) {
	svc := NewService(newFakeMarketRepo(), newFakeFieldRepo(), constants.MaxUploadBytes, discard)

	_, err := svc.Create(context.Background(), "  ", "Display")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCreateDefaultsDisplayName(t *testing.T) {
	svc := NewService(newFakeMarketRepo(), newFakeFieldRepo(), constants.MaxUploadBytes, discard)

	m, err := svc.Create(context.Background(), "etsy", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.DisplayName != "etsy" {
		t.Errorf("DisplayName = %q, want fallback to name", m.DisplayName)
	}
}

func TestExtractTemplateCreatesFieldsInColumnOrder(t *testing.T) {
	marketID := uuid.New()
	fields := newFakeFieldRepo()
	svc := NewService(newFakeMarketRepo(marketID), fields, constants.MaxUploadBytes, discard)

	csv := "Title,Price,SKU\nwidget,9.99,W-1\n"
	got, count, err := svc.ExtractTemplate(context.Background(), marketID, "", "template.csv", []byte(csv))
	if err != nil {
		t.Fatalf("ExtractTemplate: %v", err)
	}

	if count != 3 {
		t.Errorf("column count = %d, want 3", count)
	}
	wantNames := []string{"Title", "Price", "SKU"}
	for i, f := range got {
		if f.FieldName != wantNames[i] {
			t.Errorf("field[%d] = %q, want %q", i, f.FieldName, wantNames[i])
		}
		if f.DisplayName == nil || *f.DisplayName != wantNames[i] {
			t.Errorf("field[%d] display name = %v, want %q", i, f.DisplayName, wantNames[i])
		}
		if f.IsRequired {
			t.Errorf("field[%d] required = true, want false on extraction", i)
		}
	}
	if got[0].SampleValues[0] != "widget" {
		t.Errorf("sample values not captured: %v", got[0].SampleValues)
	}
	if !fields.lastScope.All {
		t.Error("extraction without category must replace the whole schema")
	}
}

func TestExtractTemplateCategoryScope(t *testing.T) {
	marketID := uuid.New()
	fields := newFakeFieldRepo()
	svc := NewService(newFakeMarketRepo(marketID), fields, constants.MaxUploadBytes, discard)

	cat := "Electronics"
	_, _ = fields.ReplaceFields(context.Background(), marketID, repository.FieldScope{Category: &cat}, []repository.FieldSeed{
		{FieldName: "voltage"},
	})
	_, _ = fields.ReplaceFields(context.Background(), marketID, repository.FieldScope{}, []repository.FieldSeed{
		{FieldName: "title"}, {FieldName: "price"},
	})

	_, _, err := svc.ExtractTemplate(context.Background(), marketID, "Electronics", "t.csv", []byte("weight,battery\n1,aa\n"))
	if err != nil {
		t.Fatalf("ExtractTemplate: %v", err)
	}
	if fields.lastScope.All {
		t.Error("category extraction must not replace the whole schema")
	}
	if fields.lastScope.Category == nil || *fields.lastScope.Category != "Electronics" {
		t.Errorf("scope category = %v, want Electronics", fields.lastScope.Category)
	}

	// Only the Electronics group is replaced; the Default group is untouched.
	elec, _ := fields.ListByCategory(context.Background(), marketID, &cat)
	names := make(map[string]bool)
	for _, fl := range elec {
		names[fl.FieldName] = true
	}
	if len(elec) != 2 || !names["weight"] || !names["battery"] {
		t.Errorf("Electronics fields = %v, want weight+battery", names)
	}
	def, _ := fields.ListByCategory(context.Background(), marketID, nil)
	if len(def) != 2 {
		t.Errorf("default group = %d fields after scoped extraction, want 2", len(def))
	}

	// "Default" is the nil group, not a stored label.
	_, _, err = svc.ExtractTemplate(context.Background(), marketID, "Default", "t.csv", []byte("a\n1\n"))
	if err != nil {
		t.Fatalf("ExtractTemplate: %v", err)
	}
	if fields.lastScope.All || fields.lastScope.Category != nil {
		t.Errorf("scope = %+v, want category-scoped nil group", fields.lastScope)
	}
	if def, _ := fields.ListByCategory(context.Background(), marketID, nil); len(def) != 1 {
		t.Errorf("default group = %d fields, want 1 after nil-group replace", len(def))
	}

	// No category at all wipes every group.
	_, _, err = svc.ExtractTemplate(context.Background(), marketID, "", "t.csv", []byte("b\n2\n"))
	if err != nil {
		t.Fatalf("ExtractTemplate: %v", err)
	}
	if rest, _ := fields.ListByMarketplace(context.Background(), marketID); len(rest) != 1 {
		t.Errorf("schema = %d fields after full replace, want 1", len(rest))
	}
}

func TestExtractTemplateUnknownMarketplace(t *testing.T) {
	svc := NewService(newFakeMarketRepo(), newFakeFieldRepo(), constants.MaxUploadBytes, discard)

	_, _, err := svc.ExtractTemplate(context.Background(), uuid.New(), "", "t.csv", []byte("a\n1\n"))
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateFieldsIndependent(t *testing.T) {
	marketID := uuid.New()
	fields := newFakeFieldRepo()
	svc := NewService(newFakeMarketRepo(marketID), fields, constants.MaxUploadBytes, discard)

	created, _ := fields.ReplaceFields(context.Background(), marketID, repository.FieldScope{All: true}, []repository.FieldSeed{
		{FieldName: "a"}, {FieldName: "b"}, {FieldName: "c"},
	})
	fields.failIDs[created[1].ID] = true

	req := true
	var updates []FieldUpdate
	for _, f := range created {
		updates = append(updates, FieldUpdate{ID: f.ID, Patch: repository.FieldPatch{IsRequired: &req}})
	}

	updated, err := svc.UpdateFields(context.Background(), updates)
	if err == nil {
		t.Fatal("expected error from failing field")
	}
	// The failure in the middle must not stop the remaining updates.
	if len(updated) != 2 {
		t.Fatalf("updated %d fields, want 2", len(updated))
	}
	if !fields.fields[created[0].ID].IsRequired || !fields.fields[created[2].ID].IsRequired {
		t.Error("sibling updates not applied")
	}
}

func TestDeleteFieldsCategoryScoped(t *testing.T) {
	marketID := uuid.New()
	markets := newFakeMarketRepo(marketID)
	fields := newFakeFieldRepo()
	svc := NewService(markets, fields, constants.MaxUploadBytes, discard)

	cat := "Jewelry"
	_, _ = fields.ReplaceFields(context.Background(), marketID, repository.FieldScope{Category: &cat}, []repository.FieldSeed{
		{FieldName: "a"}, {FieldName: "b"},
	})

	n, err := svc.DeleteFields(context.Background(), marketID, "Jewelry")
	if err != nil {
		t.Fatalf("DeleteFields: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}
	if len(markets.deleted) != 0 {
		t.Error("category delete must not remove the marketplace")
	}
}

func TestDeleteFieldsWithoutCategoryDeletesMarketplace(t *testing.T) {
	marketID := uuid.New()
	markets := newFakeMarketRepo(marketID)
	svc := NewService(markets, newFakeFieldRepo(), constants.MaxUploadBytes, discard)

	if _, err := svc.DeleteFields(context.Background(), marketID, ""); err != nil {
		t.Fatalf("DeleteFields: %v", err)
	}
	if len(markets.deleted) != 1 || markets.deleted[0] != marketID {
		t.Errorf("marketplace not deleted: %v", markets.deleted)
	}
}

func TestFieldsSummary(t *testing.T) {
	marketID := uuid.New()
	fields := newFakeFieldRepo()
	svc := NewService(newFakeMarketRepo(marketID), fields, constants.MaxUploadBytes, discard)

	cat := "Jewelry"
	_, _ = fields.ReplaceFields(context.Background(), marketID, repository.FieldScope{Category: &cat}, []repository.FieldSeed{
		{FieldName: "a", IsRequired: true}, {FieldName: "b"},
	})
	_, _ = fields.ReplaceFields(context.Background(), marketID, repository.FieldScope{}, []repository.FieldSeed{
		{FieldName: "c"},
	})

	summaries, err := svc.FieldsSummary(context.Background(), marketID)
	if err != nil {
		t.Fatalf("FieldsSummary: %v", err)
	}

	byCat := make(map[string]CategorySummary)
	for _, s := range summaries {
		byCat[s.Category] = s
	}
	if s := byCat["Jewelry"]; s.FieldCount != 2 || s.RequiredCount != 1 {
		t.Errorf("Jewelry summary = %+v", s)
	}
	if s := byCat[constants.DefaultCategory]; s.FieldCount != 1 || s.RequiredCount != 0 {
		t.Errorf("Default summary = %+v", s)
	}
}
