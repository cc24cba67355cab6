package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/gen/ent"
	"github.com/catalogmapper/catalog-mapper/gen/ent/fieldmapping"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplacefield"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/utils"
)

// CreateMarketplaceRequest wraps parameters for registering a marketplace.
type CreateMarketplaceRequest struct {
	Name             string
	DisplayName      string
	TemplateFilePath *string
}

type MarketplaceRepository interface {
	Create(ctx context.Context, req *CreateMarketplaceRequest) (*entity.Marketplace, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Marketplace, error)
	List(ctx context.Context) ([]*entity.Marketplace, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type marketplaceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMarketplaceRepository(client *ent.Client, logger *slog.Logger) MarketplaceRepository {
	return &marketplaceRepository{
		client: client,
		logger: logger,
	}
}

func (r *marketplaceRepository) Create(ctx context.Context, req *CreateMarketplaceRequest) (*entity.Marketplace, error) {
	m, err := r.client.Marketplace.Create().
		SetName(req.Name).
		SetDisplayName(req.DisplayName).
		SetNillableTemplateFilePath(req.TemplateFilePath).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create marketplace", "name", req.Name, "error", err)
		return nil, err
	}
	return utils.ToMarketplace(m), nil
}

func (r *marketplaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Marketplace, error) {
	m, err := r.client.Marketplace.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToMarketplace(m), nil
}

func (r *marketplaceRepository) List(ctx context.Context) ([]*entity.Marketplace, error) {
	ms, err := r.client.Marketplace.Query().
		Order(marketplace.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Marketplace, len(ms))
	for i, m := range ms {
		result[i] = utils.ToMarketplace(m)
	}
	return result, nil
}

func (r *marketplaceRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Marketplace.Query().
		Where(marketplace.ID(id)).
		Exist(ctx)
}

// Delete removes the marketplace together with its fields and detaches any
// sessions pointing at it, all in one transaction. Session data itself is
// kept; only the assignment is cleared.
func (r *marketplaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	sessionIDs, err := tx.UploadSession.Query().
		Where(uploadsession.MarketplaceID(id)).
		IDs(ctx)
	if err != nil {
		return rollback(tx, err)
	}
	if len(sessionIDs) > 0 {
		// mappings refer to fields that are about to disappear
		if _, err := tx.FieldMapping.Delete().
			Where(fieldmapping.SessionIDIn(sessionIDs...)).
			Exec(ctx); err != nil {
			return rollback(tx, err)
		}
		if err := tx.UploadSession.Update().
			Where(uploadsession.MarketplaceID(id)).
			ClearMarketplaceID().
			ClearCategory().
			Exec(ctx); err != nil {
			return rollback(tx, err)
		}
	}

	if _, err := tx.MarketplaceField.Delete().
		Where(marketplacefield.MarketplaceID(id)).
		Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Marketplace.DeleteOneID(id).Exec(ctx); err != nil {
		return rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	r.logger.Info("marketplace deleted", "marketplace_id", id, "detached_sessions", len(sessionIDs))
	return nil
}

// rollback attempts the rollback and returns the original error; a rollback
// failure is logged by ent itself.
func rollback(tx *ent.Tx, err error) error {
	_ = tx.Rollback()
	return err
}
