package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/constants"
)

// UploadSession is one upload-to-export workflow instance, scoped to one
// source file and (once assigned) one marketplace.
type UploadSession struct {
	ID               uuid.UUID               `json:"id"`
	OriginalFilename string                  `json:"original_filename"`
	FilePath         string                  `json:"file_path,omitempty"`
	MarketplaceID    *uuid.UUID              `json:"marketplace_id,omitempty"`
	Status           constants.SessionStatus `json:"status"`
	RowCount         int                     `json:"row_count"`
	UserColumns      []SourceColumn          `json:"user_columns,omitempty"`
	Category         *string                 `json:"category,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}
