package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/constants"
	"github.com/catalogmapper/catalog-mapper/gen/ent"
	"github.com/catalogmapper/catalog-mapper/internal/common"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/generator"
	"github.com/catalogmapper/catalog-mapper/internal/repository"
)

// Service runs the export stage: project the session's rows through its
// correspondence set and record the produced file.
type Service struct {
	sessions  repository.SessionRepository
	rows      repository.RowRepository
	mappings  repository.MappingRepository
	fields    repository.FieldRepository
	generated repository.GeneratedFileRepository
	logger    *slog.Logger
}

func NewService(
	sessions repository.SessionRepository,
	rows repository.RowRepository,
	mappings repository.MappingRepository,
	fields repository.FieldRepository,
	generated repository.GeneratedFileRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		sessions:  sessions,
		rows:      rows,
		mappings:  mappings,
		fields:    fields,
		generated: generated,
		logger:    logger,
	}
}

// Generate produces an output file for the session in the requested format.
// The session moves to generating for the duration of the call, then to done
// with a new GeneratedFile record, or to error with no record at all. A
// session in error can be retried in full; prior generated files are never
// deleted.
func (s *Service) Generate(ctx context.Context, sessionID uuid.UUID, format string) ([]byte, *entity.GeneratedFile, error) {
	if !constants.IsOutputFormat(format) {
		return nil, nil, fmt.Errorf("%w: unsupported output format %q", common.ErrInvalidInput, format)
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if ent.IsNotFound(err) {
		return nil, nil, fmt.Errorf("%w: session %s", common.ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, nil, err
	}
	if session.MarketplaceID == nil {
		return nil, nil, fmt.Errorf("%w: session has no marketplace assigned", common.ErrInvalidInput)
	}
	if !session.Status.CanGenerate() {
		return nil, nil, fmt.Errorf("%w: cannot generate from status %q", common.ErrInvalidInput, session.Status)
	}

	if _, err := s.sessions.UpdateStatus(ctx, sessionID, constants.StatusGenerating); err != nil {
		return nil, nil, err
	}

	content, file, err := s.run(ctx, session, format)
	if err != nil {
		if _, serr := s.sessions.UpdateStatus(ctx, sessionID, constants.StatusError); serr != nil {
			s.logger.Error("export.status_update_failed", "session_id", sessionID, "error", serr)
		}
		s.logger.Error("export.failed", "session_id", sessionID, "format", format, "error", err)
		return nil, nil, err
	}

	if _, err := s.sessions.UpdateStatus(ctx, sessionID, constants.StatusDone); err != nil {
		return nil, nil, err
	}
	s.logger.Info("export.ok",
		"session_id", sessionID,
		"format", format,
		"rows", file.RowCount,
		"bytes", len(content))
	return content, file, nil
}

func (s *Service) run(ctx context.Context, session *entity.UploadSession, format string) ([]byte, *entity.GeneratedFile, error) {
	fields, err := s.fields.ListByCategory(ctx, *session.MarketplaceID, session.Category)
	if err != nil {
		return nil, nil, err
	}
	if len(fields) == 0 {
		return nil, nil, fmt.Errorf("%w: marketplace has no fields in scope", common.ErrInvalidInput)
	}
	mappings, err := s.mappings.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, nil, err
	}
	rows, err := s.rows.ListAll(ctx, session.ID)
	if err != nil {
		return nil, nil, err
	}

	content, err := generator.Generate(generator.Options{
		Rows:     derefRows(rows),
		Mappings: derefMappings(mappings),
		Fields:   derefFields(fields),
		Format:   format,
	})
	if err != nil {
		return nil, nil, err
	}

	// The record is written only after generation succeeded; a failed run
	// leaves no partial file behind.
	file, err := s.generated.Create(ctx, &repository.CreateGeneratedFileRequest{
		SessionID:    session.ID,
		FilePath:     exportPath(session, format),
		OutputFormat: format,
		RowCount:     len(rows),
	})
	if err != nil {
		return nil, nil, err
	}
	return content, file, nil
}

// ListFiles returns all recorded exports for the session, newest first.
func (s *Service) ListFiles(ctx context.Context, sessionID uuid.UUID) ([]*entity.GeneratedFile, error) {
	if exists, err := s.sessions.Exists(ctx, sessionID); err != nil {
		return nil, err
	} else if !exists {
		return nil, fmt.Errorf("%w: session %s", common.ErrNotFound, sessionID)
	}
	return s.generated.ListBySession(ctx, sessionID)
}

func exportPath(session *entity.UploadSession, format string) string {
	return fmt.Sprintf("exports/%s/%s.%s", session.ID, uuid.New(), format)
}

func derefRows(rows []*entity.SessionRow) []entity.SessionRow {
	out := make([]entity.SessionRow, len(rows))
	for i, r := range rows {
		out[i] = *r
	}
	return out
}

func derefMappings(ms []*entity.FieldMapping) []entity.FieldMapping {
	out := make([]entity.FieldMapping, len(ms))
	for i, m := range ms {
		out[i] = *m
	}
	return out
}

func derefFields(fs []*entity.MarketplaceField) []entity.MarketplaceField {
	out := make([]entity.MarketplaceField, len(fs))
	for i, f := range fs {
		out[i] = *f
	}
	return out
}
