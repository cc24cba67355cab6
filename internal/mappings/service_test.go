package mappings

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
	"github.com/catalogmapper/catalog-mapper/internal/suggest"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.UploadSession
	statuses []constants.SessionStatus
}

func (f *fakeSessionRepo) Create(context.Context, *repository.CreateSessionRequest) (*entity.UploadSession, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.UploadSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) List(context.Context, int, int) ([]*entity.UploadSession, error) {
	return nil, nil
}

func (f *fakeSessionRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.sessions[id]
	return ok, nil
}

func (f *fakeSessionRepo) UpdateStatus(_ context.Context, id uuid.UUID, status constants.SessionStatus) (*entity.UploadSession, error) {
	s := f.sessions[id]
	s.Status = status
	f.statuses = append(f.statuses, status)
	return s, nil
}

func (f *fakeSessionRepo) SetMarketplace(context.Context, uuid.UUID, uuid.UUID, *string) (*entity.UploadSession, error) {
	return nil, errors.New("not implemented")
}

type fakeMappingRepo struct {
	stored map[uuid.UUID][]*entity.FieldMapping
}

func (f *fakeMappingRepo) ReplaceForSession(_ context.Context, sessionID uuid.UUID, entries []repository.MappingEntry) ([]*entity.FieldMapping, error) {
	var kept []*entity.FieldMapping
	for _, e := range entries {
		if e.FieldName == nil || *e.FieldName == "" {
			continue
		}
		kept = append(kept, &entity.FieldMapping{
			ID:         uuid.New(),
			SessionID:  sessionID,
			UserColumn: e.UserColumn,
			FieldID:    e.FieldID,
			FieldName:  e.FieldName,
			Origin:     e.Origin,
			Confidence: e.Confidence,
			Position:   len(kept),
		})
	}
	f.stored[sessionID] = kept
	return kept, nil
}

func (f *fakeMappingRepo) ListBySession(_ context.Context, sessionID uuid.UUID) ([]*entity.FieldMapping, error) {
	return f.stored[sessionID], nil
}

func (f *fakeMappingRepo) DeleteBySession(_ context.Context, sessionID uuid.UUID) error {
	delete(f.stored, sessionID)
	return nil
}

type fakeFieldRepo struct {
	byCategory map[string][]*entity.MarketplaceField
	lastScope  *string
	scopeSeen  bool
}

func (f *fakeFieldRepo) ListByMarketplace(context.Context, uuid.UUID) ([]*entity.MarketplaceField, error) {
	return nil, nil
}

func (f *fakeFieldRepo) ListByCategory(_ context.Context, _ uuid.UUID, category *string) ([]*entity.MarketplaceField, error) {
	f.lastScope = category
	f.scopeSeen = true
	return f.byCategory[constants.CategoryLabel(category)], nil
}

func (f *fakeFieldRepo) ReplaceFields(context.Context, uuid.UUID, repository.FieldScope, []repository.FieldSeed) ([]*entity.MarketplaceField, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeFieldRepo) UpdateField(context.Context, uuid.UUID, repository.FieldPatch) (*entity.MarketplaceField, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeFieldRepo) DeleteByCategory(context.Context, uuid.UUID, *string) (int, error) {
	return 0, nil
}

type fakeMarketRepo struct {
	market *entity.Marketplace
}

func (f *fakeMarketRepo) Create(context.Context, *repository.CreateMarketplaceRequest) (*entity.Marketplace, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeMarketRepo) GetByID(context.Context, uuid.UUID) (*entity.Marketplace, error) {
	if f.market == nil {
		return nil, common.ErrNotFound
	}
	return f.market, nil
}

func (f *fakeMarketRepo) List(context.Context) ([]*entity.Marketplace, error) { return nil, nil }

func (f *fakeMarketRepo) Exists(context.Context, uuid.UUID) (bool, error) {
	return f.market != nil, nil
}

func (f *fakeMarketRepo) Delete(context.Context, uuid.UUID) error { return nil }

type fakeSuggester struct {
	req  suggest.Request
	out  []suggest.Suggestion
	fail error
}

func (f *fakeSuggester) SuggestMappings(_ context.Context, req suggest.Request) ([]suggest.Suggestion, error) {
	f.req = req
	return f.out, f.fail
}

func strptr(s string) *string { return &s }

func setup(withMarket bool) (*Service, *fakeSessionRepo, *fakeMappingRepo, *fakeFieldRepo, *fakeSuggester, *entity.UploadSession) {
	marketID := uuid.New()
	session := &entity.UploadSession{
		ID:     uuid.New(),
		Status: constants.StatusUploaded,
		UserColumns: []entity.SourceColumn{
			{Name: "Product Name", SampleValues: []string{"widget"}},
			{Name: "Cost", SampleValues: []string{"9.99"}},
		},
	}
	markets := &fakeMarketRepo{}
	if withMarket {
		session.MarketplaceID = &marketID
		markets.market = &entity.Marketplace{ID: marketID, Name: "etsy", DisplayName: "Etsy"}
	}

	sessions := &fakeSessionRepo{sessions: map[uuid.UUID]*entity.UploadSession{session.ID: session}}
	mappingRepo := &fakeMappingRepo{stored: make(map[uuid.UUID][]*entity.FieldMapping)}
	fieldRepo := &fakeFieldRepo{byCategory: map[string][]*entity.MarketplaceField{
		constants.DefaultCategory: {
			{ID: uuid.New(), MarketplaceID: marketID, FieldName: "title"},
			{ID: uuid.New(), MarketplaceID: marketID, FieldName: "price"},
		},
	}}
	suggester := &fakeSuggester{}
	svc := NewService(sessions, mappingRepo, fieldRepo, markets, suggest.NewService(suggester, discard), discard)
	return svc, sessions, mappingRepo, fieldRepo, suggester, session
}

func TestSuggestRequiresMarketplace(t *testing.T) {
	svc, _, _, _, _, session := setup(false)

	_, err := svc.Suggest(context.Background(), session.ID)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestSuggestUnknownSession(t *testing.T) {
	svc, _, _, _, _, _ := setup(true)

	_, err := svc.Suggest(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSuggestPassesScopedContext(t *testing.T) {
	svc, _, _, fieldRepo, suggester, session := setup(true)
	suggester.out = []suggest.Suggestion{
		{UserColumn: "Product Name", FieldName: strptr("title"), Confidence: 0.9},
		{UserColumn: "Cost", FieldName: strptr("price"), Confidence: 0.8},
	}

	got, err := svc.Suggest(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	if suggester.req.MarketplaceName != "Etsy" {
		t.Errorf("MarketplaceName = %q, want display name", suggester.req.MarketplaceName)
	}
	if len(suggester.req.Columns) != 2 || len(suggester.req.Fields) != 2 {
		t.Errorf("request carried %d columns, %d fields", len(suggester.req.Columns), len(suggester.req.Fields))
	}
	if !fieldRepo.scopeSeen || fieldRepo.lastScope != nil {
		t.Errorf("field scope = %v, want the nil (Default) group", fieldRepo.lastScope)
	}
	if len(got) != 2 || got[0].FieldName == nil || *got[0].FieldName != "title" {
		t.Errorf("suggestions = %+v", got)
	}
}

func TestSuggestEngineFailureFallsBack(t *testing.T) {
	svc, _, _, _, suggester, session := setup(true)
	suggester.fail = errors.New("model unavailable")

	got, err := svc.Suggest(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("Suggest must not fail on engine error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want one per column", len(got))
	}
	for _, sug := range got {
		if sug.FieldName != nil || sug.Confidence != 0 {
			t.Errorf("fallback suggestion = %+v, want nil/0", sug)
		}
	}
}

func TestSaveAdvancesToMapped(t *testing.T) {
	svc, sessions, _, _, _, session := setup(true)

	saved, err := svc.Save(context.Background(), session.ID, []repository.MappingEntry{
		{UserColumn: "Product Name", FieldName: strptr("title"), Origin: entity.OriginSuggested},
		{UserColumn: "Cost", FieldName: nil, Origin: entity.OriginManual}, // explicitly unmapped
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Unmapped columns are stored as absence.
	if len(saved) != 1 || saved[0].UserColumn != "Product Name" {
		t.Errorf("saved = %+v, want only the mapped column", saved)
	}
	if sessions.sessions[session.ID].Status != constants.StatusMapped {
		t.Errorf("status = %q, want mapped", sessions.sessions[session.ID].Status)
	}
}

func TestSaveRejectsBadOrigin(t *testing.T) {
	svc, _, _, _, _, session := setup(true)

	_, err := svc.Save(context.Background(), session.ID, []repository.MappingEntry{
		{UserColumn: "Cost", FieldName: strptr("price"), Origin: "guessed"},
	})
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestSaveReplacesWholeSet(t *testing.T) {
	svc, _, _, _, _, session := setup(true)

	_, _ = svc.Save(context.Background(), session.ID, []repository.MappingEntry{
		{UserColumn: "Product Name", FieldName: strptr("title"), Origin: entity.OriginSuggested},
		{UserColumn: "Cost", FieldName: strptr("price"), Origin: entity.OriginSuggested},
	})
	saved, err := svc.Save(context.Background(), session.ID, []repository.MappingEntry{
		{UserColumn: "Cost", FieldName: strptr("price"), Origin: entity.OriginManual},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if len(saved) != 1 {
		t.Fatalf("saved = %+v, want prior set replaced", saved)
	}
	got, _ := svc.Get(context.Background(), session.ID)
	if len(got) != 1 || got[0].Origin != entity.OriginManual {
		t.Errorf("stored set = %+v", got)
	}
}
