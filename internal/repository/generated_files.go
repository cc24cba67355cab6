package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/gen/ent"
	"github.com/catalogmapper/catalog-mapper/gen/ent/generatedfile"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/utils"
)

// CreateGeneratedFileRequest wraps parameters for recording an export.
type CreateGeneratedFileRequest struct {
	SessionID    uuid.UUID
	FilePath     string
	OutputFormat string
	RowCount     int
}

type GeneratedFileRepository interface {
	Create(ctx context.Context, req *CreateGeneratedFileRequest) (*entity.GeneratedFile, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.GeneratedFile, error)
}

type generatedFileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewGeneratedFileRepository(client *ent.Client, logger *slog.Logger) GeneratedFileRepository {
	return &generatedFileRepository{
		client: client,
		logger: logger,
	}
}

func (r *generatedFileRepository) Create(ctx context.Context, req *CreateGeneratedFileRequest) (*entity.GeneratedFile, error) {
	g, err := r.client.GeneratedFile.Create().
		SetSessionID(req.SessionID).
		SetFilePath(req.FilePath).
		SetOutputFormat(req.OutputFormat).
		SetRowCount(req.RowCount).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record generated file", "session_id", req.SessionID, "error", err)
		return nil, err
	}
	return utils.ToGeneratedFile(g), nil
}

func (r *generatedFileRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.GeneratedFile, error) {
	gs, err := r.client.GeneratedFile.Query().
		Where(generatedfile.SessionID(sessionID)).
		Order(generatedfile.ByCreatedAt(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.GeneratedFile, len(gs))
	for i, g := range gs {
		result[i] = utils.ToGeneratedFile(g)
	}
	return result, nil
}
