package marketplaces

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/constants"
	"github.com/catalogmapper/catalog-mapper/gen/ent"
	"github.com/catalogmapper/catalog-mapper/internal/common"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/repository"
	"github.com/catalogmapper/catalog-mapper/internal/tabular"
)

// FieldUpdate is one partial update in an UpdateFields batch.
type FieldUpdate struct {
	ID    uuid.UUID
	Patch repository.FieldPatch
}

// CategorySummary aggregates one category group of a marketplace schema.
type CategorySummary struct {
	Category      string
	FieldCount    int
	RequiredCount int
}

// Service owns marketplace registration and schema (field) management.
type Service struct {
	markets  repository.MarketplaceRepository
	fields   repository.FieldRepository
	maxBytes int64
	logger   *slog.Logger
}

func NewService(
	markets repository.MarketplaceRepository,
	fields repository.FieldRepository,
	maxBytes int64,
	logger *slog.Logger,
) *Service {
	return &Service{
		markets:  markets,
		fields:   fields,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

func (s *Service) Create(ctx context.Context, name, displayName string) (*entity.Marketplace, error) {
	name = strings.TrimSpace(name)
	displayName = strings.TrimSpace(displayName)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrInvalidInput)
	}
	if displayName == "" {
		displayName = name
	}

	m, err := s.markets.Create(ctx, &repository.CreateMarketplaceRequest{
		Name:        name,
		DisplayName: displayName,
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: marketplace %q already exists", common.ErrInvalidInput, name)
		}
		return nil, err
	}
	s.logger.Info("marketplace.created", "marketplace_id", m.ID, "name", m.Name)
	return m, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.Marketplace, error) {
	m, err := s.markets.GetByID(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: marketplace %s", common.ErrNotFound, id)
	}
	return m, err
}

func (s *Service) List(ctx context.Context) ([]*entity.Marketplace, error) {
	return s.markets.List(ctx)
}

// ListFields returns the schema, whole or scoped to one category group. An
// empty category means all groups.
func (s *Service) ListFields(ctx context.Context, marketplaceID uuid.UUID, category string) ([]*entity.MarketplaceField, error) {
	if err := s.requireMarketplace(ctx, marketplaceID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(category) == "" {
		return s.fields.ListByMarketplace(ctx, marketplaceID)
	}
	return s.fields.ListByCategory(ctx, marketplaceID, constants.NormalizeCategory(category))
}

// ExtractTemplate parses a marketplace template file and replaces the scoped
// field set with one field per parsed column, in column order. A category
// scopes the replacement to that group; without one the whole schema is
// replaced.
func (s *Service) ExtractTemplate(ctx context.Context, marketplaceID uuid.UUID, category, filename string, content []byte) ([]*entity.MarketplaceField, int, error) {
	if err := s.requireMarketplace(ctx, marketplaceID); err != nil {
		return nil, 0, err
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if !constants.IsAllowedExt(ext) {
		return nil, 0, fmt.Errorf("%w: unsupported file type %q", common.ErrInvalidInput, ext)
	}
	if s.maxBytes > 0 && int64(len(content)) > s.maxBytes {
		return nil, 0, fmt.Errorf("%w: file exceeds %d bytes", common.ErrInvalidInput, s.maxBytes)
	}

	parsed, err := tabular.Parse(content, filename)
	if err != nil {
		s.logger.Warn("marketplace.template_parse_failed",
			"marketplace_id", marketplaceID,
			"filename", filename,
			"error", err)
		return nil, 0, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	seeds := make([]repository.FieldSeed, len(parsed.Columns))
	for i, col := range parsed.Columns {
		name := col.Name
		seeds[i] = repository.FieldSeed{
			FieldName:    name,
			DisplayName:  &name,
			SampleValues: col.SampleValues,
		}
	}

	scope := repository.FieldScope{All: true}
	if strings.TrimSpace(category) != "" {
		scope = repository.FieldScope{Category: constants.NormalizeCategory(category)}
	}

	fields, err := s.fields.ReplaceFields(ctx, marketplaceID, scope, seeds)
	if err != nil {
		return nil, 0, err
	}
	s.logger.Info("marketplace.template_extracted",
		"marketplace_id", marketplaceID,
		"category", category,
		"fields", len(fields))
	return fields, len(parsed.Columns), nil
}

// UpdateFields applies each patch independently: one failure does not stop
// or roll back the others. The first error is returned after all patches
// have been attempted, together with the fields that did update.
func (s *Service) UpdateFields(ctx context.Context, updates []FieldUpdate) ([]*entity.MarketplaceField, error) {
	var (
		updated  []*entity.MarketplaceField
		firstErr error
	)
	for _, u := range updates {
		f, err := s.fields.UpdateField(ctx, u.ID, u.Patch)
		if err != nil {
			if ent.IsNotFound(err) {
				err = fmt.Errorf("%w: field %s", common.ErrNotFound, u.ID)
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		updated = append(updated, f)
	}
	return updated, firstErr
}

// DeleteFields removes one category group, or, with no category, the whole
// marketplace and everything under it.
func (s *Service) DeleteFields(ctx context.Context, marketplaceID uuid.UUID, category string) (int, error) {
	if err := s.requireMarketplace(ctx, marketplaceID); err != nil {
		return 0, err
	}

	if strings.TrimSpace(category) == "" {
		if err := s.markets.Delete(ctx, marketplaceID); err != nil {
			return 0, err
		}
		return 0, nil
	}

	n, err := s.fields.DeleteByCategory(ctx, marketplaceID, constants.NormalizeCategory(category))
	if err != nil {
		return 0, err
	}
	s.logger.Info("marketplace.fields_deleted",
		"marketplace_id", marketplaceID,
		"category", category,
		"deleted", n)
	return n, nil
}

func (s *Service) Delete(ctx context.Context, marketplaceID uuid.UUID) error {
	if err := s.requireMarketplace(ctx, marketplaceID); err != nil {
		return err
	}
	return s.markets.Delete(ctx, marketplaceID)
}

// FieldsSummary aggregates the schema per category group, in listing order.
func (s *Service) FieldsSummary(ctx context.Context, marketplaceID uuid.UUID) ([]CategorySummary, error) {
	fields, err := s.ListFields(ctx, marketplaceID, "")
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var summaries []CategorySummary
	for _, f := range fields {
		label := constants.CategoryLabel(f.Category)
		i, ok := index[label]
		if !ok {
			i = len(summaries)
			index[label] = i
			summaries = append(summaries, CategorySummary{Category: label})
		}
		summaries[i].FieldCount++
		if f.IsRequired {
			summaries[i].RequiredCount++
		}
	}
	return summaries, nil
}

func (s *Service) requireMarketplace(ctx context.Context, id uuid.UUID) error {
	ok, err := s.markets.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: marketplace %s", common.ErrNotFound, id)
	}
	return nil
}
