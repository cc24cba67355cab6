package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/gen/ent"
	"github.com/catalogmapper/catalog-mapper/gen/ent/fieldmapping"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/utils"
)

// MappingEntry is one column assignment submitted on save. A nil FieldName
// marks the column explicitly unmapped; such entries are accepted but not
// persisted.
type MappingEntry struct {
	UserColumn string
	FieldID    *uuid.UUID
	FieldName  *string
	Origin     entity.MappingOrigin
	Confidence *float32
}

type MappingRepository interface {
	ReplaceForSession(ctx context.Context, sessionID uuid.UUID, entries []MappingEntry) ([]*entity.FieldMapping, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.FieldMapping, error)
	DeleteBySession(ctx context.Context, sessionID uuid.UUID) error
}

type mappingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMappingRepository(client *ent.Client, logger *slog.Logger) MappingRepository {
	return &mappingRepository{
		client: client,
		logger: logger,
	}
}

// ReplaceForSession swaps the session's whole mapping set in one transaction.
// Unmapped entries are skipped, duplicate columns collapse to the last entry
// submitted, and insertion order is recorded as position.
func (r *mappingRepository) ReplaceForSession(ctx context.Context, sessionID uuid.UUID, entries []MappingEntry) ([]*entity.FieldMapping, error) {
	kept := dedupeMappings(entries)

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := tx.FieldMapping.Delete().
		Where(fieldmapping.SessionID(sessionID)).
		Exec(ctx); err != nil {
		return nil, rollback(tx, err)
	}

	builders := make([]*ent.FieldMappingCreate, len(kept))
	for i, e := range kept {
		builders[i] = tx.FieldMapping.Create().
			SetSessionID(sessionID).
			SetUserColumn(e.UserColumn).
			SetNillableFieldID(e.FieldID).
			SetFieldName(*e.FieldName).
			SetOrigin(string(e.Origin)).
			SetNillableConfidence(e.Confidence).
			SetPosition(i)
	}
	created, err := tx.FieldMapping.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("mappings replaced",
		"session_id", sessionID,
		"submitted", len(entries),
		"stored", len(created))
	return toMappingEntities(created), nil
}

func (r *mappingRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.FieldMapping, error) {
	ms, err := r.client.FieldMapping.Query().
		Where(fieldmapping.SessionID(sessionID)).
		Order(fieldmapping.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toMappingEntities(ms), nil
}

func (r *mappingRepository) DeleteBySession(ctx context.Context, sessionID uuid.UUID) error {
	_, err := r.client.FieldMapping.Delete().
		Where(fieldmapping.SessionID(sessionID)).
		Exec(ctx)
	return err
}

// dedupeMappings drops unmapped entries and collapses duplicate user columns,
// keeping the last submission for each while preserving first-seen order.
func dedupeMappings(entries []MappingEntry) []MappingEntry {
	type slot struct {
		index int
		entry MappingEntry
	}
	byColumn := make(map[string]*slot, len(entries))
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.FieldName == nil || *e.FieldName == "" {
			continue
		}
		if s, ok := byColumn[e.UserColumn]; ok {
			s.entry = e
			continue
		}
		byColumn[e.UserColumn] = &slot{index: len(order), entry: e}
		order = append(order, e.UserColumn)
	}

	kept := make([]MappingEntry, 0, len(order))
	for _, col := range order {
		kept = append(kept, byColumn[col].entry)
	}
	return kept
}

func toMappingEntities(ms []*ent.FieldMapping) []*entity.FieldMapping {
	result := make([]*entity.FieldMapping, len(ms))
	for i, m := range ms {
		result[i] = utils.ToFieldMapping(m)
	}
	return result
}
