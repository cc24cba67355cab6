package entity

import (
	"time"

	"github.com/google/uuid"
)

// Marketplace represents a target marketplace schema for data transfer
// between layers.
type Marketplace struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	DisplayName      string    `json:"display_name"`
	TemplateFilePath *string   `json:"template_file_path,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
