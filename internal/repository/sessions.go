package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/constants"
	"github.com/catalogmapper/catalog-mapper/gen/ent"
	"github.com/catalogmapper/catalog-mapper/gen/ent/fieldmapping"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/utils"
)

// CreateSessionRequest wraps parameters for opening an upload session.
type CreateSessionRequest struct {
	OriginalFilename string
	FilePath         string
	RowCount         int
	UserColumns      []entity.SourceColumn
}

type SessionRepository interface {
	Create(ctx context.Context, req *CreateSessionRequest) (*entity.UploadSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.UploadSession, error)
	List(ctx context.Context, limit, offset int) ([]*entity.UploadSession, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.SessionStatus) (*entity.UploadSession, error)
	SetMarketplace(ctx context.Context, id, marketplaceID uuid.UUID, category *string) (*entity.UploadSession, error)
}

type sessionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSessionRepository(client *ent.Client, logger *slog.Logger) SessionRepository {
	return &sessionRepository{
		client: client,
		logger: logger,
	}
}

func (r *sessionRepository) Create(ctx context.Context, req *CreateSessionRequest) (*entity.UploadSession, error) {
	s, err := r.client.UploadSession.Create().
		SetOriginalFilename(req.OriginalFilename).
		SetFilePath(req.FilePath).
		SetRowCount(req.RowCount).
		SetUserColumns(req.UserColumns).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create upload session", "filename", req.OriginalFilename, "error", err)
		return nil, err
	}
	return utils.ToUploadSession(s), nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.UploadSession, error) {
	s, err := r.client.UploadSession.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToUploadSession(s), nil
}

func (r *sessionRepository) List(ctx context.Context, limit, offset int) ([]*entity.UploadSession, error) {
	q := r.client.UploadSession.Query().
		Order(uploadsession.ByCreatedAt(entsql.OrderDesc()))
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	ss, err := q.All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.UploadSession, len(ss))
	for i, s := range ss {
		result[i] = utils.ToUploadSession(s)
	}
	return result, nil
}

func (r *sessionRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.UploadSession.Query().
		Where(uploadsession.ID(id)).
		Exist(ctx)
}

func (r *sessionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.SessionStatus) (*entity.UploadSession, error) {
	s, err := r.client.UploadSession.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update session status", "session_id", id, "status", status, "error", err)
		return nil, err
	}
	return utils.ToUploadSession(s), nil
}

// SetMarketplace assigns (or re-assigns) the target marketplace. Existing
// mappings were made against the previous schema, so they are dropped and the
// session returns to uploaded, in one transaction.
func (r *sessionRepository) SetMarketplace(ctx context.Context, id, marketplaceID uuid.UUID, category *string) (*entity.UploadSession, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := tx.FieldMapping.Delete().
		Where(fieldmapping.SessionID(id)).
		Exec(ctx); err != nil {
		return nil, rollback(tx, err)
	}

	upd := tx.UploadSession.UpdateOneID(id).
		SetMarketplaceID(marketplaceID).
		SetStatus(string(constants.StatusUploaded))
	if category == nil {
		upd = upd.ClearCategory()
	} else {
		upd = upd.SetCategory(*category)
	}
	s, err := upd.Save(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return utils.ToUploadSession(s), nil
}
