package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/gen/ent"
	"github.com/catalogmapper/catalog-mapper/gen/ent/sessionrow"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/utils"
)

type RowRepository interface {
	BulkInsert(ctx context.Context, sessionID uuid.UUID, startIndex int, rows []map[string]string) (int, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]*entity.SessionRow, error)
	ListAll(ctx context.Context, sessionID uuid.UUID) ([]*entity.SessionRow, error)
	CountBySession(ctx context.Context, sessionID uuid.UUID) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SessionRow, error)
	MergeEdits(ctx context.Context, id uuid.UUID, edits map[string]string) (*entity.SessionRow, error)
}

type rowRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRowRepository(client *ent.Client, logger *slog.Logger) RowRepository {
	return &rowRepository{
		client: client,
		logger: logger,
	}
}

// BulkInsert stores one chunk of ingested rows, indexed from startIndex in
// source order. Returns the number of rows written.
func (r *rowRepository) BulkInsert(ctx context.Context, sessionID uuid.UUID, startIndex int, rows []map[string]string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	builders := make([]*ent.SessionRowCreate, len(rows))
	for i, data := range rows {
		builders[i] = r.client.SessionRow.Create().
			SetSessionID(sessionID).
			SetRowIndex(startIndex + i).
			SetData(data)
	}
	created, err := r.client.SessionRow.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert session rows",
			"session_id", sessionID,
			"start_index", startIndex,
			"count", len(rows),
			"error", err)
		return 0, err
	}
	return len(created), nil
}

func (r *rowRepository) ListBySession(ctx context.Context, sessionID uuid.UUID, limit, offset int) ([]*entity.SessionRow, error) {
	q := r.client.SessionRow.Query().
		Where(sessionrow.SessionID(sessionID)).
		Order(sessionrow.ByRowIndex())
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	return toRowEntities(rows), nil
}

// ListAll loads every stored row for export, in row order.
func (r *rowRepository) ListAll(ctx context.Context, sessionID uuid.UUID) ([]*entity.SessionRow, error) {
	rows, err := r.client.SessionRow.Query().
		Where(sessionrow.SessionID(sessionID)).
		Order(sessionrow.ByRowIndex()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toRowEntities(rows), nil
}

func (r *rowRepository) CountBySession(ctx context.Context, sessionID uuid.UUID) (int, error) {
	return r.client.SessionRow.Query().
		Where(sessionrow.SessionID(sessionID)).
		Count(ctx)
}

func (r *rowRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SessionRow, error) {
	row, err := r.client.SessionRow.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToSessionRow(row), nil
}

// MergeEdits unions the partial edit set into the stored overlay. Keys absent
// from edits keep their prior values; the ingested data is never touched.
func (r *rowRepository) MergeEdits(ctx context.Context, id uuid.UUID, edits map[string]string) (*entity.SessionRow, error) {
	row, err := r.client.SessionRow.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	merged := entity.MergeEdits(row.EditedData, edits)
	updated, err := r.client.SessionRow.UpdateOneID(id).
		SetEditedData(merged).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save row edits", "row_id", id, "error", err)
		return nil, err
	}
	return utils.ToSessionRow(updated), nil
}

func toRowEntities(rows []*ent.SessionRow) []*entity.SessionRow {
	result := make([]*entity.SessionRow, len(rows))
	for i, row := range rows {
		result[i] = utils.ToSessionRow(row)
	}
	return result
}
