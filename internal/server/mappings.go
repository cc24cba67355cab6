package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	catalogv1 "github.com/catalogmapper/catalog-mapper/gen/proto/catalog/v1"
	"github.com/catalogmapper/catalog-mapper/internal/common"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/mappings"
	"github.com/catalogmapper/catalog-mapper/internal/repository"
	"github.com/catalogmapper/catalog-mapper/internal/utils"
)

type MappingsService struct {
	catalogv1.UnimplementedMappingsServiceServer
	svc    *mappings.Service
	logger *slog.Logger
}

func NewMappingsService(svc *mappings.Service, logger *slog.Logger) *MappingsService {
	return &MappingsService{
		svc:    svc,
		logger: logger,
	}
}

func (s *MappingsService) SuggestMappings(ctx context.Context, req *catalogv1.SuggestMappingsRequest) (*catalogv1.SuggestMappingsResponse, error) {
	sessionID, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}

	suggestions, err := s.svc.Suggest(ctx, sessionID)
	if err != nil {
		s.logger.Error("suggestion failed", "session_id", sessionID, "error", err)
		return nil, common.ToStatusError(err, "failed to suggest mappings")
	}

	out := make([]*catalogv1.Suggestion, 0, len(suggestions))
	for _, sug := range suggestions {
		out = append(out, &catalogv1.Suggestion{
			UserColumn: sug.UserColumn,
			FieldName:  sug.FieldName,
			Confidence: sug.Confidence,
		})
	}
	return &catalogv1.SuggestMappingsResponse{Suggestions: out}, nil
}

func (s *MappingsService) SaveMappings(ctx context.Context, req *catalogv1.SaveMappingsRequest) (*catalogv1.SaveMappingsResponse, error) {
	sessionID, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}

	entries := make([]repository.MappingEntry, 0, len(req.GetEntries()))
	for _, e := range req.GetEntries() {
		var fieldID *uuid.UUID
		if raw := e.GetFieldId(); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, common.InvalidArgumentErrorf("field_id %q is not a UUID", raw)
			}
			fieldID = &id
		}
		entries = append(entries, repository.MappingEntry{
			UserColumn: e.GetUserColumn(),
			FieldID:    fieldID,
			FieldName:  e.FieldName,
			Origin:     entity.MappingOrigin(e.GetOrigin()),
			Confidence: e.Confidence,
		})
	}

	saved, err := s.svc.Save(ctx, sessionID, entries)
	if err != nil {
		s.logger.Error("failed to save mappings", "session_id", sessionID, "error", err)
		return nil, common.ToStatusError(err, "failed to save mappings")
	}
	return &catalogv1.SaveMappingsResponse{Mappings: toPBMappings(saved)}, nil
}

func (s *MappingsService) GetMappings(ctx context.Context, req *catalogv1.GetMappingsRequest) (*catalogv1.GetMappingsResponse, error) {
	sessionID, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}

	list, err := s.svc.Get(ctx, sessionID)
	if err != nil {
		return nil, common.ToStatusError(err, "failed to get mappings")
	}
	return &catalogv1.GetMappingsResponse{Mappings: toPBMappings(list)}, nil
}

func toPBMappings(list []*entity.FieldMapping) []*catalogv1.FieldMapping {
	out := make([]*catalogv1.FieldMapping, 0, len(list))
	for _, m := range list {
		out = append(out, utils.ToPBFieldMapping(m))
	}
	return out
}
