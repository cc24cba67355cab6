package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalogv1 "github.com/catalogmapper/catalog-mapper/gen/proto/catalog/v1"
	"github.com/catalogmapper/catalog-mapper/internal/common"
	"github.com/catalogmapper/catalog-mapper/internal/sessions"
	"github.com/catalogmapper/catalog-mapper/internal/utils"
)

type SessionsService struct {
	catalogv1.UnimplementedSessionsServiceServer
	svc    *sessions.Service
	logger *slog.Logger
}

func NewSessionsService(svc *sessions.Service, logger *slog.Logger) *SessionsService {
	return &SessionsService{
		svc:    svc,
		logger: logger,
	}
}

func (s *SessionsService) Upload(ctx context.Context, req *catalogv1.UploadRequest) (*catalogv1.UploadResponse, error) {
	v := common.NewValidator().
		Field("filename", req.GetFilename(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is empty")
	}
	filename := strings.TrimSpace(req.GetFilename())

	session, err := s.svc.Upload(ctx, filename, req.GetContent(), req.GetFilePath())
	if err != nil {
		s.logger.Error("upload failed", "filename", filename, "error", err)
		return nil, common.ToStatusError(err, "upload failed")
	}
	return &catalogv1.UploadResponse{Session: utils.ToPBUploadSession(session)}, nil
}

func (s *SessionsService) GetSession(ctx context.Context, req *catalogv1.GetSessionRequest) (*catalogv1.GetSessionResponse, error) {
	id, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}

	session, err := s.svc.GetSession(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err, "session not found")
	}
	return &catalogv1.GetSessionResponse{Session: utils.ToPBUploadSession(session)}, nil
}

func (s *SessionsService) ListSessions(ctx context.Context, req *catalogv1.ListSessionsRequest) (*catalogv1.ListSessionsResponse, error) {
	list, err := s.svc.ListSessions(ctx, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("failed to list sessions", "error", err)
		return nil, common.ToStatusError(err, "failed to list sessions")
	}

	out := make([]*catalogv1.UploadSession, 0, len(list))
	for _, session := range list {
		out = append(out, utils.ToPBUploadSession(session))
	}
	return &catalogv1.ListSessionsResponse{Sessions: out}, nil
}

func (s *SessionsService) AssignMarketplace(ctx context.Context, req *catalogv1.AssignMarketplaceRequest) (*catalogv1.AssignMarketplaceResponse, error) {
	sessionID, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	marketplaceID, err := parseID(req.GetMarketplaceId(), "marketplace_id")
	if err != nil {
		return nil, err
	}

	session, err := s.svc.AssignMarketplace(ctx, sessionID, marketplaceID, req.GetCategory())
	if err != nil {
		s.logger.Error("failed to assign marketplace",
			"session_id", sessionID,
			"marketplace_id", marketplaceID,
			"error", err)
		return nil, common.ToStatusError(err, "failed to assign marketplace")
	}
	return &catalogv1.AssignMarketplaceResponse{Session: utils.ToPBUploadSession(session)}, nil
}

func (s *SessionsService) ListRows(ctx context.Context, req *catalogv1.ListRowsRequest) (*catalogv1.ListRowsResponse, error) {
	sessionID, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}

	rows, total, err := s.svc.ListRows(ctx, sessionID, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		return nil, common.ToStatusError(err, "failed to list rows")
	}

	out := make([]*catalogv1.SessionRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToPBSessionRow(row))
	}
	return &catalogv1.ListRowsResponse{Rows: out, Total: int32(total)}, nil
}

func (s *SessionsService) EditRow(ctx context.Context, req *catalogv1.EditRowRequest) (*catalogv1.EditRowResponse, error) {
	sessionID, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	rowID, err := parseID(req.GetRowId(), "row_id")
	if err != nil {
		return nil, err
	}

	row, err := s.svc.EditRow(ctx, sessionID, rowID, req.GetEdits())
	if err != nil {
		return nil, common.ToStatusError(err, "failed to edit row")
	}
	return &catalogv1.EditRowResponse{Row: utils.ToPBSessionRow(row)}, nil
}

// parseID validates a required UUID request field.
func parseID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}
