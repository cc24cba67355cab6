package server

import (
	"context"
	"log/slog"

	catalogv1 "github.com/catalogmapper/catalog-mapper/gen/proto/catalog/v1"
	"github.com/catalogmapper/catalog-mapper/internal/common"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/marketplaces"
	"github.com/catalogmapper/catalog-mapper/internal/repository"
	"github.com/catalogmapper/catalog-mapper/internal/utils"
)

type MarketplacesService struct {
	catalogv1.UnimplementedMarketplacesServiceServer
	svc    *marketplaces.Service
	logger *slog.Logger
}

func NewMarketplacesService(svc *marketplaces.Service, logger *slog.Logger) *MarketplacesService {
	return &MarketplacesService{
		svc:    svc,
		logger: logger,
	}
}

func (s *MarketplacesService) CreateMarketplace(ctx context.Context, req *catalogv1.CreateMarketplaceRequest) (*catalogv1.CreateMarketplaceResponse, error) {
	v := common.NewValidator().
		Field("name", req.GetName(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	m, err := s.svc.Create(ctx, req.GetName(), req.GetDisplayName())
	if err != nil {
		s.logger.Error("failed to create marketplace", "name", req.GetName(), "error", err)
		return nil, common.ToStatusError(err, "failed to create marketplace")
	}
	return &catalogv1.CreateMarketplaceResponse{Marketplace: utils.ToPBMarketplace(m)}, nil
}

func (s *MarketplacesService) ListMarketplaces(ctx context.Context, _ *catalogv1.ListMarketplacesRequest) (*catalogv1.ListMarketplacesResponse, error) {
	list, err := s.svc.List(ctx)
	if err != nil {
		return nil, common.ToStatusError(err, "failed to list marketplaces")
	}

	out := make([]*catalogv1.Marketplace, 0, len(list))
	for _, m := range list {
		out = append(out, utils.ToPBMarketplace(m))
	}
	return &catalogv1.ListMarketplacesResponse{Marketplaces: out}, nil
}

func (s *MarketplacesService) GetMarketplace(ctx context.Context, req *catalogv1.GetMarketplaceRequest) (*catalogv1.GetMarketplaceResponse, error) {
	id, err := parseID(req.GetMarketplaceId(), "marketplace_id")
	if err != nil {
		return nil, err
	}

	m, err := s.svc.Get(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err, "marketplace not found")
	}
	return &catalogv1.GetMarketplaceResponse{Marketplace: utils.ToPBMarketplace(m)}, nil
}

func (s *MarketplacesService) DeleteMarketplace(ctx context.Context, req *catalogv1.DeleteMarketplaceRequest) (*catalogv1.DeleteMarketplaceResponse, error) {
	id, err := parseID(req.GetMarketplaceId(), "marketplace_id")
	if err != nil {
		return nil, err
	}

	if err := s.svc.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete marketplace", "marketplace_id", id, "error", err)
		return nil, common.ToStatusError(err, "failed to delete marketplace")
	}
	return &catalogv1.DeleteMarketplaceResponse{}, nil
}

func (s *MarketplacesService) ListFields(ctx context.Context, req *catalogv1.ListFieldsRequest) (*catalogv1.ListFieldsResponse, error) {
	id, err := parseID(req.GetMarketplaceId(), "marketplace_id")
	if err != nil {
		return nil, err
	}

	fields, err := s.svc.ListFields(ctx, id, req.GetCategory())
	if err != nil {
		return nil, common.ToStatusError(err, "failed to list fields")
	}
	return &catalogv1.ListFieldsResponse{Fields: toPBFields(fields)}, nil
}

func (s *MarketplacesService) UpdateFields(ctx context.Context, req *catalogv1.UpdateFieldsRequest) (*catalogv1.UpdateFieldsResponse, error) {
	updates := make([]marketplaces.FieldUpdate, 0, len(req.GetUpdates()))
	for _, u := range req.GetUpdates() {
		id, err := parseID(u.GetId(), "field id")
		if err != nil {
			return nil, err
		}
		updates = append(updates, marketplaces.FieldUpdate{
			ID: id,
			Patch: repository.FieldPatch{
				DisplayName: u.DisplayName,
				IsRequired:  u.IsRequired,
				Description: u.Description,
				FieldOrder:  utils.Int32PtrToInt(u.FieldOrder),
			},
		})
	}

	updated, err := s.svc.UpdateFields(ctx, updates)
	if err != nil {
		s.logger.Error("field updates incomplete", "updated", len(updated), "error", err)
		return nil, common.ToStatusError(err, "failed to update fields")
	}
	return &catalogv1.UpdateFieldsResponse{Fields: toPBFields(updated)}, nil
}

func (s *MarketplacesService) ExtractTemplate(ctx context.Context, req *catalogv1.ExtractTemplateRequest) (*catalogv1.ExtractTemplateResponse, error) {
	id, err := parseID(req.GetMarketplaceId(), "marketplace_id")
	if err != nil {
		return nil, err
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is empty")
	}

	fields, count, err := s.svc.ExtractTemplate(ctx, id, req.GetCategory(), req.GetFilename(), req.GetContent())
	if err != nil {
		s.logger.Error("template extraction failed", "marketplace_id", id, "error", err)
		return nil, common.ToStatusError(err, "template extraction failed")
	}
	return &catalogv1.ExtractTemplateResponse{
		Fields:      toPBFields(fields),
		ColumnCount: int32(count),
	}, nil
}

func (s *MarketplacesService) DeleteFields(ctx context.Context, req *catalogv1.DeleteFieldsRequest) (*catalogv1.DeleteFieldsResponse, error) {
	id, err := parseID(req.GetMarketplaceId(), "marketplace_id")
	if err != nil {
		return nil, err
	}

	n, err := s.svc.DeleteFields(ctx, id, req.GetCategory())
	if err != nil {
		s.logger.Error("failed to delete fields", "marketplace_id", id, "error", err)
		return nil, common.ToStatusError(err, "failed to delete fields")
	}
	return &catalogv1.DeleteFieldsResponse{DeletedCount: int32(n)}, nil
}

func (s *MarketplacesService) GetFieldsSummary(ctx context.Context, req *catalogv1.GetFieldsSummaryRequest) (*catalogv1.GetFieldsSummaryResponse, error) {
	id, err := parseID(req.GetMarketplaceId(), "marketplace_id")
	if err != nil {
		return nil, err
	}

	summaries, err := s.svc.FieldsSummary(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err, "failed to summarize fields")
	}

	out := make([]*catalogv1.CategorySummary, 0, len(summaries))
	for _, sum := range summaries {
		out = append(out, &catalogv1.CategorySummary{
			Category:      sum.Category,
			FieldCount:    int32(sum.FieldCount),
			RequiredCount: int32(sum.RequiredCount),
		})
	}
	return &catalogv1.GetFieldsSummaryResponse{Categories: out}, nil
}

func toPBFields(fields []*entity.MarketplaceField) []*catalogv1.MarketplaceField {
	out := make([]*catalogv1.MarketplaceField, 0, len(fields))
	for _, f := range fields {
		out = append(out, utils.ToPBMarketplaceField(f))
	}
	return out
}
