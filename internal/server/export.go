package server

import (
	"context"
	"log/slog"

	"github.com/catalogmapper/catalog-mapper/constants"
	catalogv1 "github.com/catalogmapper/catalog-mapper/gen/proto/catalog/v1"
	"github.com/catalogmapper/catalog-mapper/internal/common"
	"github.com/catalogmapper/catalog-mapper/internal/export"
	"github.com/catalogmapper/catalog-mapper/internal/utils"
)

type ExportService struct {
	catalogv1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	return &ExportService{
		svc:    svc,
		logger: logger,
	}
}

func (s *ExportService) Generate(ctx context.Context, req *catalogv1.GenerateRequest) (*catalogv1.GenerateResponse, error) {
	sessionID, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	v := common.NewValidator().
		Field("format", req.GetFormat(), common.Required, common.OneOf(constants.OutputFormats...))
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	content, file, err := s.svc.Generate(ctx, sessionID, req.GetFormat())
	if err != nil {
		s.logger.Error("generate failed", "session_id", sessionID, "format", req.GetFormat(), "error", err)
		return nil, common.ToStatusError(err, "failed to generate output file")
	}
	return &catalogv1.GenerateResponse{
		Content: content,
		File:    utils.ToPBGeneratedFile(file),
	}, nil
}

func (s *ExportService) ListGeneratedFiles(ctx context.Context, req *catalogv1.ListGeneratedFilesRequest) (*catalogv1.ListGeneratedFilesResponse, error) {
	sessionID, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}

	files, err := s.svc.ListFiles(ctx, sessionID)
	if err != nil {
		return nil, common.ToStatusError(err, "failed to list generated files")
	}

	out := make([]*catalogv1.GeneratedFile, 0, len(files))
	for _, f := range files {
		out = append(out, utils.ToPBGeneratedFile(f))
	}
	return &catalogv1.ListGeneratedFilesResponse{Files: out}, nil
}
