package export

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/constants"
	"github.com/catalogmapper/catalog-mapper/internal/common"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/repository"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.UploadSession
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
	return s, nil
}

func (f *fakeSessionRepo) SetMarketplace(context.Context, uuid.UUID, uuid.UUID, *string) (*entity.UploadSession, error) {
	return nil, errors.New("not implemented")
}

type fakeRowRepo struct {
	rows []*entity.SessionRow
}

func (f *fakeRowRepo) BulkInsert(context.Context, uuid.UUID, int, []map[string]string) (int, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeRowRepo) ListBySession(context.Context, uuid.UUID, int, int) ([]*entity.SessionRow, error) {
	return f.rows, nil
}

func (f *fakeRowRepo) ListAll(context.Context, uuid.UUID) ([]*entity.SessionRow, error) {
	return f.rows, nil
}

func (f *fakeRowRepo) CountBySession(context.Context, uuid.UUID) (int, error) {
	return len(f.rows), nil
}

func (f *fakeRowRepo) GetByID(context.Context, uuid.UUID) (*entity.SessionRow, error) {
	return nil, common.ErrNotFound
}

func (f *fakeRowRepo) MergeEdits(context.Context, uuid.UUID, map[string]string) (*entity.SessionRow, error) {
	return nil, errors.New("not implemented")
}

type fakeMappingRepo struct {
	mappings []*entity.FieldMapping
}

func (f *fakeMappingRepo) ReplaceForSession(context.Context, uuid.UUID, []repository.MappingEntry) ([]*entity.FieldMapping, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeMappingRepo) ListBySession(context.Context, uuid.UUID) ([]*entity.FieldMapping, error) {
	return f.mappings, nil
}

func (f *fakeMappingRepo) DeleteBySession(context.Context, uuid.UUID) error { return nil }

type fakeFieldRepo struct {
	fields []*entity.MarketplaceField
}

func (f *fakeFieldRepo) ListByMarketplace(context.Context, uuid.UUID) ([]*entity.MarketplaceField, error) {
	return f.fields, nil
}

func (f *fakeFieldRepo) ListByCategory(context.Context, uuid.UUID, *string) ([]*entity.MarketplaceField, error) {
	return f.fields, nil
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

type fakeGeneratedRepo struct {
	files []*entity.GeneratedFile
}

func (f *fakeGeneratedRepo) Create(_ context.Context, req *repository.CreateGeneratedFileRequest) (*entity.GeneratedFile, error) {
	g := &entity.GeneratedFile{
		ID:           uuid.New(),
		SessionID:    req.SessionID,
		FilePath:     req.FilePath,
		OutputFormat: req.OutputFormat,
		RowCount:     req.RowCount,
	}
	f.files = append(f.files, g)
	return g, nil
}

func (f *fakeGeneratedRepo) ListBySession(context.Context, uuid.UUID) ([]*entity.GeneratedFile, error) {
	return f.files, nil
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

type harness struct {
	svc       *Service
	sessions  *fakeSessionRepo
	generated *fakeGeneratedRepo
	session   *entity.UploadSession
}

func setup(status constants.SessionStatus, fields []*entity.MarketplaceField) *harness {
	marketID := uuid.New()
	session := &entity.UploadSession{
		ID:            uuid.New(),
		MarketplaceID: &marketID,
		Status:        status,
	}
	sessions := &fakeSessionRepo{sessions: map[uuid.UUID]*entity.UploadSession{session.ID: session}}
	rows := &fakeRowRepo{rows: []*entity.SessionRow{
		{
			SessionID:  session.ID,
			RowIndex:   0,
			Data:       map[string]string{"Product Name": "widget", "Cost": "9.99"},
			EditedData: map[string]string{"Cost": "12.50"},
		},
	}}
	mappings := &fakeMappingRepo{mappings: []*entity.FieldMapping{
		{UserColumn: "Product Name", FieldName: strptr("title"), Origin: entity.OriginSuggested},
		{UserColumn: "Cost", FieldName: strptr("price"), Origin: entity.OriginManual},
	}}
	generated := &fakeGeneratedRepo{}
	svc := NewService(sessions, rows, mappings, &fakeFieldRepo{fields: fields}, generated, discard)
	return &harness{svc: svc, sessions: sessions, generated: generated, session: session}
}

func defaultFields() []*entity.MarketplaceField {
	return []*entity.MarketplaceField{
		{FieldName: "title", FieldOrder: intptr(0)},
		{FieldName: "price", FieldOrder: intptr(1)},
		{FieldName: "brand", FieldOrder: intptr(2)}, // unmapped
	}
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	h := setup(constants.StatusMapped, defaultFields())

	_, _, err := h.svc.Generate(context.Background(), h.session.ID, "pdf")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if h.session.Status != constants.StatusMapped {
		t.Errorf("status = %q, want untouched", h.session.Status)
	}
}

func TestGenerateRequiresMarketplace(t *testing.T) {
	h := setup(constants.StatusMapped, defaultFields())
	h.session.MarketplaceID = nil

	_, _, err := h.svc.Generate(context.Background(), h.session.ID, "csv")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGenerateRejectsWrongStatus(t *testing.T) {
	for _, status := range []constants.SessionStatus{constants.StatusUploaded, constants.StatusGenerating} {
		h := setup(status, defaultFields())
		_, _, err := h.svc.Generate(context.Background(), h.session.ID, "csv")
		if !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("status %q: err = %v, want ErrInvalidInput", status, err)
		}
	}
}

func TestGenerateProducesCSVAndRecordsFile(t *testing.T) {
	h := setup(constants.StatusMapped, defaultFields())

	content, file, err := h.svc.Generate(context.Background(), h.session.ID, "csv")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := "title,price,brand\nwidget,12.50,\n"
	if string(content) != want {
		t.Errorf("content = %q, want %q", content, want)
	}
	if h.session.Status != constants.StatusDone {
		t.Errorf("status = %q, want done", h.session.Status)
	}
	if file.OutputFormat != "csv" || file.RowCount != 1 {
		t.Errorf("file = %+v", file)
	}
	if len(h.generated.files) != 1 {
		t.Errorf("recorded %d files, want 1", len(h.generated.files))
	}
}

func TestGenerateFailureLeavesNoRecord(t *testing.T) {
	h := setup(constants.StatusMapped, nil) // no fields in scope

	_, _, err := h.svc.Generate(context.Background(), h.session.ID, "csv")
	if err == nil {
		t.Fatal("expected error")
	}
	if h.session.Status != constants.StatusError {
		t.Errorf("status = %q, want error", h.session.Status)
	}
	if len(h.generated.files) != 0 {
		t.Errorf("recorded %d files on failure, want 0", len(h.generated.files))
	}
}

func TestGenerateRetryFromError(t *testing.T) {
	h := setup(constants.StatusError, defaultFields())

	_, _, err := h.svc.Generate(context.Background(), h.session.ID, "csv")
	if err != nil {
		t.Fatalf("retry from error: %v", err)
	}
	if h.session.Status != constants.StatusDone {
		t.Errorf("status = %q, want done", h.session.Status)
	}
}

func TestGenerateRegenerationAppendsFiles(t *testing.T) {
	h := setup(constants.StatusMapped, defaultFields())

	if _, _, err := h.svc.Generate(context.Background(), h.session.ID, "csv"); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	// done is re-entrant
	if _, _, err := h.svc.Generate(context.Background(), h.session.ID, "xlsx"); err != nil {
		t.Fatalf("second generate: %v", err)
	}

	if len(h.generated.files) != 2 {
		t.Fatalf("recorded %d files, want 2", len(h.generated.files))
	}
	if h.generated.files[0].OutputFormat != "csv" || h.generated.files[1].OutputFormat != "xlsx" {
		t.Errorf("formats = %q, %q", h.generated.files[0].OutputFormat, h.generated.files[1].OutputFormat)
	}
	if !strings.HasSuffix(h.generated.files[1].FilePath, ".xlsx") {
		t.Errorf("file path = %q, want .xlsx suffix", h.generated.files[1].FilePath)
	}
}

func TestListFilesUnknownSession(t *testing.T) {
	h := setup(constants.StatusMapped, defaultFields())

	_, err := h.svc.ListFiles(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
