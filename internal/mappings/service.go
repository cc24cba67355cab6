package mappings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/constants"
	"github.com/catalogmapper/catalog-mapper/gen/ent"
	"github.com/catalogmapper/catalog-mapper/internal/common"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/repository"
	"github.com/catalogmapper/catalog-mapper/internal/suggest"
)

// Service ties the suggestion engine and the stored correspondence set to
// upload sessions.
type Service struct {
	sessions repository.SessionRepository
	mappings repository.MappingRepository
	fields   repository.FieldRepository
	markets  repository.MarketplaceRepository
	engine   *suggest.Service
	logger   *slog.Logger
}

func NewService(
	sessions repository.SessionRepository,
	mappings repository.MappingRepository,
	fields repository.FieldRepository,
	markets repository.MarketplaceRepository,
	engine *suggest.Service,
	logger *slog.Logger,
) *Service {
	return &Service{
		sessions: sessions,
		mappings: mappings,
		fields:   fields,
		markets:  markets,
		engine:   engine,
		logger:   logger,
	}
}

// Suggest proposes a field for every source column of the session. The
// session must already be assigned to a marketplace; the field list is scoped
// to the session's category group. Suggestions are returned, not persisted —
// the caller saves whichever set the user accepts.
func (s *Service) Suggest(ctx context.Context, sessionID uuid.UUID) ([]suggest.Suggestion, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.MarketplaceID == nil {
		return nil, fmt.Errorf("%w: session has no marketplace assigned", common.ErrInvalidInput)
	}

	market, err := s.markets.GetByID(ctx, *session.MarketplaceID)
	if err != nil {
		return nil, err
	}
	fields, err := s.fields.ListByCategory(ctx, *session.MarketplaceID, session.Category)
	if err != nil {
		return nil, err
	}

	fieldVals := make([]entity.MarketplaceField, len(fields))
	for i, f := range fields {
		fieldVals[i] = *f
	}

	return s.engine.SuggestMappings(ctx, suggest.Request{
		Columns:         session.UserColumns,
		Fields:          fieldVals,
		MarketplaceName: market.DisplayName,
	}), nil
}

// Save replaces the session's whole correspondence set and advances the
// session to mapped. Entries with no target field are accepted and dropped;
// absence is how "explicitly unmapped" is stored.
func (s *Service) Save(ctx context.Context, sessionID uuid.UUID, entries []repository.MappingEntry) ([]*entity.FieldMapping, error) {
	if _, err := s.getSession(ctx, sessionID); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.UserColumn == "" {
			return nil, fmt.Errorf("%w: entry missing source column", common.ErrInvalidInput)
		}
		switch e.Origin {
		case entity.OriginSuggested, entity.OriginManual:
		default:
			return nil, fmt.Errorf("%w: invalid origin %q", common.ErrInvalidInput, e.Origin)
		}
	}

	saved, err := s.mappings.ReplaceForSession(ctx, sessionID, entries)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.UpdateStatus(ctx, sessionID, constants.StatusMapped); err != nil {
		return nil, err
	}
	s.logger.Info("mappings.saved",
		"session_id", sessionID,
		"submitted", len(entries),
		"stored", len(saved))
	return saved, nil
}

// Get returns the stored set in saved order.
func (s *Service) Get(ctx context.Context, sessionID uuid.UUID) ([]*entity.FieldMapping, error) {
	if _, err := s.getSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.mappings.ListBySession(ctx, sessionID)
}

func (s *Service) getSession(ctx context.Context, id uuid.UUID) (*entity.UploadSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: session %s", common.ErrNotFound, id)
	}
	return session, err
}
