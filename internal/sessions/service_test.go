package sessions

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/constants"
	"github.com/catalogmapper/catalog-mapper/internal/common"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/repository"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.UploadSession
	assigned []uuid.UUID
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.UploadSession)}
}

func (f *fakeSessionRepo) Create(_ context.Context, req *repository.CreateSessionRequest) (*entity.UploadSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &entity.UploadSession{
		ID:               uuid.New(),
		OriginalFilename: req.OriginalFilename,
		FilePath:         req.FilePath,
		Status:           constants.StatusUploaded,
		RowCount:         req.RowCount,
		UserColumns:      req.UserColumns,
	}
	f.sessions[s.ID] = s
	return s, nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.UploadSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.sessions[id]
	return ok, nil
}

func (f *fakeSessionRepo) UpdateStatus(_ context.Context, id uuid.UUID, status constants.SessionStatus) (*entity.UploadSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.sessions[id]
	s.Status = status
	return s, nil
}

func (f *fakeSessionRepo) SetMarketplace(_ context.Context, id, marketplaceID uuid.UUID, category *string) (*entity.UploadSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.sessions[id]
	s.MarketplaceID = &marketplaceID
	s.Category = category
	s.Status = constants.StatusUploaded
	f.assigned = append(f.assigned, marketplaceID)
	return s, nil
}

type fakeRowRepo struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]*entity.SessionRow
	failStart int // chunk starting at this index fails; -1 disables
}

func newFakeRowRepo() *fakeRowRepo {
	return &fakeRowRepo{rows: make(map[uuid.UUID]*entity.SessionRow), failStart: -1}
}

func (f *fakeRowRepo) BulkInsert(_ context.Context, sessionID uuid.UUID, startIndex int, rows []map[string]string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if startIndex == f.failStart {
		return 0, errors.New("insert failed")
	}
	for i, data := range rows {
		r := &entity.SessionRow{
			ID:        uuid.New(),
			SessionID: sessionID,
			RowIndex:  startIndex + i,
			Data:      data,
		}
		f.rows[r.ID] = r
	}
	return len(rows), nil
}

func (f *fakeRowRepo) ListBySession(_ context.Context, sessionID uuid.UUID, limit, offset int) ([]*entity.SessionRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.SessionRow
	for _, r := range f.rows {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRowRepo) ListAll(ctx context.Context, sessionID uuid.UUID) ([]*entity.SessionRow, error) {
	return f.ListBySession(ctx, sessionID, 0, 0)
}

func (f *fakeRowRepo) CountBySession(_ context.Context, sessionID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.rows {
		if r.SessionID == sessionID {
			n++
		}
	}
	return n, nil
}

func (f *fakeRowRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.SessionRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r, nil
}

func (f *fakeRowRepo) MergeEdits(_ context.Context, id uuid.UUID, edits map[string]string) (*entity.SessionRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.rows[id]
	r.EditedData = entity.MergeEdits(r.EditedData, edits)
	return r, nil
}

type fakeMarketRepo struct {
	known map[uuid.UUID]bool
}

func (f *fakeMarketRepo) Create(context.Context, *repository.CreateMarketplaceRequest) (*entity.Marketplace, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeMarketRepo) GetByID(context.Context, uuid.UUID) (*entity.Marketplace, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeMarketRepo) List(context.Context) ([]*entity.Marketplace, error) { return nil, nil }

func (f *fakeMarketRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

func (f *fakeMarketRepo) Delete(context.Context, uuid.UUID) error { return nil }

func newService(sr *fakeSessionRepo, rr *fakeRowRepo, mr *fakeMarketRepo) *Service {
	if mr == nil {
		mr = &fakeMarketRepo{known: map[uuid.UUID]bool{}}
	}
	return NewService(sr, rr, mr, constants.MaxUploadBytes, discard)
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	svc := newService(newFakeSessionRepo(), newFakeRowRepo(), nil)

	_, err := svc.Upload(context.Background(), "data.pdf", []byte("x"), "")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	sr, rr := newFakeSessionRepo(), newFakeRowRepo()
	svc := NewService(sr, rr, &fakeMarketRepo{}, 10, discard)

	_, err := svc.Upload(context.Background(), "data.csv", []byte("a,b,c\n1,2,3\n"), "")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if len(sr.sessions) != 0 {
		t.Error("session created despite rejected upload")
	}
}

func TestUploadCreatesSessionAndRows(t *testing.T) {
	sr, rr := newFakeSessionRepo(), newFakeRowRepo()
	svc := newService(sr, rr, nil)

	csv := "name,price\nwidget,9.99\ngadget,5.00\n"
	session, err := svc.Upload(context.Background(), "catalog.csv", []byte(csv), "uploads/catalog.csv")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if session.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", session.RowCount)
	}
	if len(session.UserColumns) != 2 || session.UserColumns[0].Name != "name" {
		t.Errorf("UserColumns = %+v", session.UserColumns)
	}
	if session.Status != constants.StatusUploaded {
		t.Errorf("Status = %q, want uploaded", session.Status)
	}
	if n, _ := rr.CountBySession(context.Background(), session.ID); n != 2 {
		t.Errorf("stored rows = %d, want 2", n)
	}
}

func TestUploadSurvivesChunkInsertFailure(t *testing.T) {
	sr, rr := newFakeSessionRepo(), newFakeRowRepo()
	rr.failStart = 0 // first chunk fails
	svc := newService(sr, rr, nil)

	var sb strings.Builder
	sb.WriteString("col\n")
	for range 600 { // two chunks at 500 rows each
		sb.WriteString("v\n")
	}

	session, err := svc.Upload(context.Background(), "big.csv", []byte(sb.String()), "")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	// RowCount reports the parsed total even though the first chunk failed.
	if session.RowCount != 600 {
		t.Errorf("RowCount = %d, want 600", session.RowCount)
	}
	if n, _ := rr.CountBySession(context.Background(), session.ID); n != 100 {
		t.Errorf("stored rows = %d, want 100 (second chunk only)", n)
	}
}

func TestAssignMarketplaceUnknownMarketplace(t *testing.T) {
	sr, rr := newFakeSessionRepo(), newFakeRowRepo()
	svc := newService(sr, rr, &fakeMarketRepo{known: map[uuid.UUID]bool{}})

	session, _ := sr.Create(context.Background(), &repository.CreateSessionRequest{OriginalFilename: "f.csv"})

	_, err := svc.AssignMarketplace(context.Background(), session.ID, uuid.New(), "")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAssignMarketplaceNormalizesCategory(t *testing.T) {
	sr, rr := newFakeSessionRepo(), newFakeRowRepo()
	marketID := uuid.New()
	svc := newService(sr, rr, &fakeMarketRepo{known: map[uuid.UUID]bool{marketID: true}})

	session, _ := sr.Create(context.Background(), &repository.CreateSessionRequest{OriginalFilename: "f.csv"})

	got, err := svc.AssignMarketplace(context.Background(), session.ID, marketID, "Default")
	if err != nil {
		t.Fatalf("AssignMarketplace: %v", err)
	}
	if got.Category != nil {
		t.Errorf("Category = %v, want nil for the default group", *got.Category)
	}
	if got.MarketplaceID == nil || *got.MarketplaceID != marketID {
		t.Errorf("MarketplaceID = %v, want %v", got.MarketplaceID, marketID)
	}
	if got.Status != constants.StatusUploaded {
		t.Errorf("Status = %q, want uploaded after re-assignment", got.Status)
	}
}

func TestEditRowWrongSession(t *testing.T) {
	sr, rr := newFakeSessionRepo(), newFakeRowRepo()
	svc := newService(sr, rr, nil)

	owner, _ := sr.Create(context.Background(), &repository.CreateSessionRequest{OriginalFilename: "f.csv"})
	other, _ := sr.Create(context.Background(), &repository.CreateSessionRequest{OriginalFilename: "g.csv"})
	_, _ = rr.BulkInsert(context.Background(), owner.ID, 0, []map[string]string{{"a": "1"}})

	var rowID uuid.UUID
	for id := range rr.rows {
		rowID = id
	}

	_, err := svc.EditRow(context.Background(), other.ID, rowID, map[string]string{"a": "2"})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for row outside session", err)
	}
}

func TestEditRowMergesOverlay(t *testing.T) {
	sr, rr := newFakeSessionRepo(), newFakeRowRepo()
	svc := newService(sr, rr, nil)

	session, _ := sr.Create(context.Background(), &repository.CreateSessionRequest{OriginalFilename: "f.csv"})
	_, _ = rr.BulkInsert(context.Background(), session.ID, 0, []map[string]string{{"a": "1", "b": "2"}})

	var rowID uuid.UUID
	for id := range rr.rows {
		rowID = id
	}

	if _, err := svc.EditRow(context.Background(), session.ID, rowID, map[string]string{"a": "10"}); err != nil {
		t.Fatalf("first edit: %v", err)
	}
	row, err := svc.EditRow(context.Background(), session.ID, rowID, map[string]string{"b": "20"})
	if err != nil {
		t.Fatalf("second edit: %v", err)
	}

	// Second edit must not wipe the first.
	if row.EditedData["a"] != "10" || row.EditedData["b"] != "20" {
		t.Errorf("EditedData = %v, want both edits present", row.EditedData)
	}
	if row.Data["a"] != "1" {
		t.Errorf("ingested data mutated: %v", row.Data)
	}
}

func TestEditRowRejectsEmptyEdits(t *testing.T) {
	svc := newService(newFakeSessionRepo(), newFakeRowRepo(), nil)

	_, err := svc.EditRow(context.Background(), uuid.New(), uuid.New(), nil)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
