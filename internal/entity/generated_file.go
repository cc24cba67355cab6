package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedFile records one produced export. Files are immutable once
// written; regeneration adds a new record and never deletes prior ones.
type GeneratedFile struct {
	ID           uuid.UUID `json:"id"`
	SessionID    uuid.UUID `json:"session_id"`
	FilePath     string    `json:"file_path,omitempty"`
	OutputFormat string    `json:"output_format"`
	RowCount     int       `json:"row_count"`
	CreatedAt    time.Time `json:"created_at"`
}
