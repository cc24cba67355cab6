package utils

import (
	"time"

	"github.com/catalogmapper/catalog-mapper/constants"
	"github.com/catalogmapper/catalog-mapper/gen/ent"
	catalogv1 "github.com/catalogmapper/catalog-mapper/gen/proto/catalog/v1"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intPtrTo32(p *int) *int32 {
	if p == nil {
		return nil
	}
	v := int32(*p)
	return &v
}

// Int32PtrToInt converts an optional wire integer back to the domain form.
func Int32PtrToInt(p *int32) *int {
	if p == nil {
		return nil
	}
	v := int(*p)
	return &v
}

// ---------- ent -> entity ----------

func ToMarketplace(e *ent.Marketplace) *entity.Marketplace {
	return &entity.Marketplace{
		ID:               e.ID,
		Name:             e.Name,
		DisplayName:      e.DisplayName,
		TemplateFilePath: e.TemplateFilePath,
		CreatedAt:        e.CreatedAt,
	}
}

func ToMarketplaceField(e *ent.MarketplaceField) *entity.MarketplaceField {
	return &entity.MarketplaceField{
		ID:            e.ID,
		MarketplaceID: e.MarketplaceID,
		FieldName:     e.FieldName,
		DisplayName:   e.DisplayName,
		IsRequired:    e.IsRequired,
		Description:   e.Description,
		SampleValues:  e.SampleValues,
		FieldOrder:    e.FieldOrder,
		Category:      e.Category,
		CreatedAt:     e.CreatedAt,
	}
}

func ToUploadSession(e *ent.UploadSession) *entity.UploadSession {
	return &entity.UploadSession{
		ID:               e.ID,
		OriginalFilename: e.OriginalFilename,
		FilePath:         e.FilePath,
		MarketplaceID:    e.MarketplaceID,
		Status:           constants.SessionStatus(e.Status),
		RowCount:         e.RowCount,
		UserColumns:      e.UserColumns,
		Category:         e.Category,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToSessionRow(e *ent.SessionRow) *entity.SessionRow {
	return &entity.SessionRow{
		ID:         e.ID,
		SessionID:  e.SessionID,
		RowIndex:   e.RowIndex,
		Data:       e.Data,
		EditedData: e.EditedData,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToFieldMapping(e *ent.FieldMapping) *entity.FieldMapping {
	name := e.FieldName
	return &entity.FieldMapping{
		ID:         e.ID,
		SessionID:  e.SessionID,
		UserColumn: e.UserColumn,
		FieldID:    e.FieldID,
		FieldName:  &name,
		Origin:     entity.MappingOrigin(e.Origin),
		Confidence: e.Confidence,
		Position:   e.Position,
		CreatedAt:  e.CreatedAt,
	}
}

func ToGeneratedFile(e *ent.GeneratedFile) *entity.GeneratedFile {
	return &entity.GeneratedFile{
		ID:           e.ID,
		SessionID:    e.SessionID,
		FilePath:     e.FilePath,
		OutputFormat: e.OutputFormat,
		RowCount:     e.RowCount,
		CreatedAt:    e.CreatedAt,
	}
}

// ---------- entity -> pb ----------

func ToPBMarketplace(m *entity.Marketplace) *catalogv1.Marketplace {
	return &catalogv1.Marketplace{
		Id:               m.ID.String(),
		Name:             m.Name,
		DisplayName:      m.DisplayName,
		TemplateFilePath: strOrEmpty(m.TemplateFilePath),
		CreatedAt:        m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBMarketplaceField(f *entity.MarketplaceField) *catalogv1.MarketplaceField {
	return &catalogv1.MarketplaceField{
		Id:            f.ID.String(),
		MarketplaceId: f.MarketplaceID.String(),
		FieldName:     f.FieldName,
		DisplayName:   strOrEmpty(f.DisplayName),
		IsRequired:    f.IsRequired,
		Description:   strOrEmpty(f.Description),
		SampleValues:  f.SampleValues,
		FieldOrder:    intPtrTo32(f.FieldOrder),
		Category:      constants.CategoryLabel(f.Category),
		CreatedAt:     f.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBSourceColumn(c entity.SourceColumn) *catalogv1.SourceColumn {
	return &catalogv1.SourceColumn{
		Name:         c.Name,
		SampleValues: c.SampleValues,
	}
}

func ToPBUploadSession(s *entity.UploadSession) *catalogv1.UploadSession {
	cols := make([]*catalogv1.SourceColumn, 0, len(s.UserColumns))
	for _, c := range s.UserColumns {
		cols = append(cols, ToPBSourceColumn(c))
	}
	marketplaceID := ""
	if s.MarketplaceID != nil {
		marketplaceID = s.MarketplaceID.String()
	}
	return &catalogv1.UploadSession{
		Id:               s.ID.String(),
		OriginalFilename: s.OriginalFilename,
		FilePath:         s.FilePath,
		MarketplaceId:    marketplaceID,
		Status:           string(s.Status),
		RowCount:         int32(s.RowCount),
		UserColumns:      cols,
		Category:         strOrEmpty(s.Category),
		CreatedAt:        s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBSessionRow(r *entity.SessionRow) *catalogv1.SessionRow {
	return &catalogv1.SessionRow{
		Id:         r.ID.String(),
		SessionId:  r.SessionID.String(),
		RowIndex:   int32(r.RowIndex),
		Data:       r.Data,
		EditedData: r.EditedData,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBFieldMapping(m *entity.FieldMapping) *catalogv1.FieldMapping {
	fieldID := ""
	if m.FieldID != nil {
		fieldID = m.FieldID.String()
	}
	return &catalogv1.FieldMapping{
		Id:         m.ID.String(),
		SessionId:  m.SessionID.String(),
		UserColumn: m.UserColumn,
		FieldId:    fieldID,
		FieldName:  strOrEmpty(m.FieldName),
		Origin:     string(m.Origin),
		Confidence: m.Confidence,
		Position:   int32(m.Position),
		CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBGeneratedFile(g *entity.GeneratedFile) *catalogv1.GeneratedFile {
	return &catalogv1.GeneratedFile{
		Id:           g.ID.String(),
		SessionId:    g.SessionID.String(),
		FilePath:     g.FilePath,
		OutputFormat: g.OutputFormat,
		RowCount:     int32(g.RowCount),
		CreatedAt:    g.CreatedAt.UTC().Format(time.RFC3339),
	}
}
