package sessions

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/constants"
	"github.com/catalogmapper/catalog-mapper/gen/ent"
	"github.com/catalogmapper/catalog-mapper/internal/async"
	"github.com/catalogmapper/catalog-mapper/internal/common"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/repository"
	"github.com/catalogmapper/catalog-mapper/internal/tabular"
)

// rowChunkSize is the number of ingested rows written per insert; chunks are
// dispatched concurrently through the worker pool.
const (
	rowChunkSize   = 500
	insertWorkers  = 4
	defaultLimit   = 50
	maxListedRows  = 500
	maxListedItems = 200
)

// Service owns the upload-session lifecycle: ingest, marketplace assignment,
// row inspection and row edits.
type Service struct {
	sessions repository.SessionRepository
	rows     repository.RowRepository
	markets  repository.MarketplaceRepository
	maxBytes int64
	pool     *async.Pool
	logger   *slog.Logger
}

func NewService(
	sessions repository.SessionRepository,
	rows repository.RowRepository,
	markets repository.MarketplaceRepository,
	maxBytes int64,
	logger *slog.Logger,
) *Service {
	return &Service{
		sessions: sessions,
		rows:     rows,
		markets:  markets,
		maxBytes: maxBytes,
		pool:     async.NewPool(insertWorkers),
		logger:   logger,
	}
}

// Upload validates and parses the uploaded file, opens a session and stores
// its rows. Validation happens before any parsing work: a file that is too
// large or has an unsupported extension is rejected without reading it.
func (s *Service) Upload(ctx context.Context, filename string, content []byte, filePath string) (*entity.UploadSession, error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if !constants.IsAllowedExt(ext) {
		return nil, fmt.Errorf("%w: unsupported file type %q", common.ErrInvalidInput, ext)
	}
	if s.maxBytes > 0 && int64(len(content)) > s.maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", common.ErrInvalidInput, s.maxBytes)
	}

	parsed, err := tabular.Parse(content, filename)
	if err != nil {
		s.logger.Warn("upload.parse_failed", "filename", filename, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	session, err := s.sessions.Create(ctx, &repository.CreateSessionRequest{
		OriginalFilename: filename,
		FilePath:         filePath,
		RowCount:         parsed.RowCount,
		UserColumns:      parsed.Columns,
	})
	if err != nil {
		return nil, err
	}

	stored := s.insertRows(ctx, session.ID, parsed.Rows)
	s.logger.Info("upload.ok",
		"session_id", session.ID,
		"filename", filename,
		"columns", len(parsed.Columns),
		"row_count", parsed.RowCount,
		"rows_stored", stored)
	return session, nil
}

// insertRows writes the parsed rows in chunks through the worker pool. A
// failed chunk is logged and skipped; the session itself stays usable with
// the rows that did land.
func (s *Service) insertRows(ctx context.Context, sessionID uuid.UUID, rows []map[string]string) int {
	if len(rows) == 0 {
		return 0
	}

	type chunk struct {
		start int
		rows  []map[string]string
	}
	var chunks []chunk
	for start := 0; start < len(rows); start += rowChunkSize {
		end := min(start+rowChunkSize, len(rows))
		chunks = append(chunks, chunk{start: start, rows: rows[start:end]})
	}

	jobs := make([]async.Job, len(chunks))
	counts := make([]int, len(chunks))
	for i, c := range chunks {
		jobs[i] = func(ctx context.Context) error {
			n, err := s.rows.BulkInsert(ctx, sessionID, c.start, c.rows)
			counts[i] = n
			return err
		}
	}

	stored := 0
	for i, err := range s.pool.Run(ctx, jobs) {
		if err != nil {
			s.logger.Error("upload.chunk_insert_failed",
				"session_id", sessionID,
				"start_index", chunks[i].start,
				"error", err)
			continue
		}
		stored += counts[i]
	}
	return stored
}

func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (*entity.UploadSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: session %s", common.ErrNotFound, id)
	}
	return session, err
}

func (s *Service) ListSessions(ctx context.Context, limit, offset int) ([]*entity.UploadSession, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxListedItems {
		limit = maxListedItems
	}
	if offset < 0 {
		offset = 0
	}
	return s.sessions.List(ctx, limit, offset)
}

// AssignMarketplace points the session at a target marketplace. Any saved
// mappings belong to the previous target and are dropped; status returns to
// uploaded.
func (s *Service) AssignMarketplace(ctx context.Context, sessionID, marketplaceID uuid.UUID, category string) (*entity.UploadSession, error) {
	ok, err := s.markets.Exists(ctx, marketplaceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: marketplace %s", common.ErrNotFound, marketplaceID)
	}
	if exists, err := s.sessions.Exists(ctx, sessionID); err != nil {
		return nil, err
	} else if !exists {
		return nil, fmt.Errorf("%w: session %s", common.ErrNotFound, sessionID)
	}

	session, err := s.sessions.SetMarketplace(ctx, sessionID, marketplaceID, constants.NormalizeCategory(category))
	if err != nil {
		return nil, err
	}
	s.logger.Info("session.marketplace_assigned",
		"session_id", sessionID,
		"marketplace_id", marketplaceID,
		"category", constants.CategoryLabel(session.Category))
	return session, nil
}

// ListRows pages through the stored rows in ingest order and reports the
// total stored count alongside.
func (s *Service) ListRows(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]*entity.SessionRow, int, error) {
	if exists, err := s.sessions.Exists(ctx, sessionID); err != nil {
		return nil, 0, err
	} else if !exists {
		return nil, 0, fmt.Errorf("%w: session %s", common.ErrNotFound, sessionID)
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxListedRows {
		limit = maxListedRows
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.rows.ListBySession(ctx, sessionID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.rows.CountBySession(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// EditRow merges a sparse edit set into one row's overlay. The row must
// belong to the session; the ingested data is never modified.
func (s *Service) EditRow(ctx context.Context, sessionID, rowID uuid.UUID, edits map[string]string) (*entity.SessionRow, error) {
	if len(edits) == 0 {
		return nil, fmt.Errorf("%w: no edits submitted", common.ErrInvalidInput)
	}

	row, err := s.rows.GetByID(ctx, rowID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: row %s", common.ErrNotFound, rowID)
	}
	if err != nil {
		return nil, err
	}
	if row.SessionID != sessionID {
		return nil, fmt.Errorf("%w: row %s in session %s", common.ErrNotFound, rowID, sessionID)
	}

	updated, err := s.rows.MergeEdits(ctx, rowID, edits)
	if err != nil {
		return nil, err
	}
	s.logger.Info("session.row_edited",
		"session_id", sessionID,
		"row_id", rowID,
		"edited_columns", len(edits))
	return updated, nil
}
