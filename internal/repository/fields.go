package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/gen/ent"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplacefield"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/utils"
)

// FieldSeed is one field definition to store during template extraction.
// Order within the slice becomes the field_order.
type FieldSeed struct {
	FieldName    string
	DisplayName  *string
	IsRequired   bool
	Description  *string
	SampleValues []string
	FieldOrder   *int
}

// FieldPatch carries a partial update; nil members are left untouched.
type FieldPatch struct {
	DisplayName *string
	IsRequired  *bool
	Description *string
	FieldOrder  *int
}

// FieldScope selects which part of a marketplace schema an operation applies
// to: the whole field set, or one category group. A nil Category is the
// "Default" group, stored as NULL.
type FieldScope struct {
	All      bool
	Category *string
}

type FieldRepository interface {
	ListByMarketplace(ctx context.Context, marketplaceID uuid.UUID) ([]*entity.MarketplaceField, error)
	ListByCategory(ctx context.Context, marketplaceID uuid.UUID, category *string) ([]*entity.MarketplaceField, error)
	ReplaceFields(ctx context.Context, marketplaceID uuid.UUID, scope FieldScope, seeds []FieldSeed) ([]*entity.MarketplaceField, error)
	UpdateField(ctx context.Context, id uuid.UUID, patch FieldPatch) (*entity.MarketplaceField, error)
	DeleteByCategory(ctx context.Context, marketplaceID uuid.UUID, category *string) (int, error)
}

type fieldRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFieldRepository(client *ent.Client, logger *slog.Logger) FieldRepository {
	return &fieldRepository{
		client: client,
		logger: logger,
	}
}

// categoryPredicate scopes a query to one category group. A nil category is
// the "Default" group, stored as NULL.
func categoryPredicate(q *ent.MarketplaceFieldQuery, category *string) *ent.MarketplaceFieldQuery {
	if category == nil {
		return q.Where(marketplacefield.CategoryIsNil())
	}
	return q.Where(marketplacefield.Category(*category))
}

func (r *fieldRepository) ListByMarketplace(ctx context.Context, marketplaceID uuid.UUID) ([]*entity.MarketplaceField, error) {
	fs, err := r.client.MarketplaceField.Query().
		Where(marketplacefield.MarketplaceID(marketplaceID)).
		Order(marketplacefield.ByCategory(), marketplacefield.ByFieldOrder(), marketplacefield.ByFieldName()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toFieldEntities(fs), nil
}

func (r *fieldRepository) ListByCategory(ctx context.Context, marketplaceID uuid.UUID, category *string) ([]*entity.MarketplaceField, error) {
	q := r.client.MarketplaceField.Query().
		Where(marketplacefield.MarketplaceID(marketplaceID))
	fs, err := categoryPredicate(q, category).
		Order(marketplacefield.ByFieldOrder(), marketplacefield.ByFieldName()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toFieldEntities(fs), nil
}

// ReplaceFields swaps the scoped part of the schema for a fresh set in one
// transaction, so a failed extraction never leaves a half-written schema. An
// unscoped extraction (scope.All) replaces the marketplace's entire field
// set and stores the new fields in the Default group.
func (r *fieldRepository) ReplaceFields(ctx context.Context, marketplaceID uuid.UUID, scope FieldScope, seeds []FieldSeed) ([]*entity.MarketplaceField, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	delQ := tx.MarketplaceField.Delete().
		Where(marketplacefield.MarketplaceID(marketplaceID))
	if !scope.All {
		if scope.Category == nil {
			delQ = delQ.Where(marketplacefield.CategoryIsNil())
		} else {
			delQ = delQ.Where(marketplacefield.Category(*scope.Category))
		}
	}
	deleted, err := delQ.Exec(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}

	builders := make([]*ent.MarketplaceFieldCreate, len(seeds))
	for i, s := range seeds {
		order := s.FieldOrder
		if order == nil {
			o := i
			order = &o
		}
		builders[i] = tx.MarketplaceField.Create().
			SetMarketplaceID(marketplaceID).
			SetFieldName(s.FieldName).
			SetNillableDisplayName(s.DisplayName).
			SetIsRequired(s.IsRequired).
			SetNillableDescription(s.Description).
			SetSampleValues(s.SampleValues).
			SetNillableFieldOrder(order).
			SetNillableCategory(scope.Category)
	}
	created, err := tx.MarketplaceField.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("marketplace fields replaced",
		"marketplace_id", marketplaceID,
		"deleted", deleted,
		"created", len(created))
	return toFieldEntities(created), nil
}

func (r *fieldRepository) UpdateField(ctx context.Context, id uuid.UUID, patch FieldPatch) (*entity.MarketplaceField, error) {
	upd := r.client.MarketplaceField.UpdateOneID(id).
		SetNillableDisplayName(patch.DisplayName).
		SetNillableIsRequired(patch.IsRequired).
		SetNillableDescription(patch.Description).
		SetNillableFieldOrder(patch.FieldOrder)

	f, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update marketplace field", "field_id", id, "error", err)
		return nil, err
	}
	return utils.ToMarketplaceField(f), nil
}

func (r *fieldRepository) DeleteByCategory(ctx context.Context, marketplaceID uuid.UUID, category *string) (int, error) {
	del := r.client.MarketplaceField.Delete().
		Where(marketplacefield.MarketplaceID(marketplaceID))
	if category == nil {
		del = del.Where(marketplacefield.CategoryIsNil())
	} else {
		del = del.Where(marketplacefield.Category(*category))
	}
	return del.Exec(ctx)
}

func toFieldEntities(fs []*ent.MarketplaceField) []*entity.MarketplaceField {
	result := make([]*entity.MarketplaceField, len(fs))
	for i, f := range fs {
		result[i] = utils.ToMarketplaceField(f)
	}
	return result
}
