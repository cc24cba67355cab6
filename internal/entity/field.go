package entity

import (
	"time"

	"github.com/google/uuid"
)

// MarketplaceField is one column definition in a marketplace schema.
// FieldOrder defines the output column position; nil sorts last.
// A nil Category means the "Default" group.
type MarketplaceField struct {
	ID            uuid.UUID `json:"id"`
	MarketplaceID uuid.UUID `json:"marketplace_id"`
	FieldName     string    `json:"field_name"`
	DisplayName   *string   `json:"display_name,omitempty"`
	IsRequired    bool      `json:"is_required"`
	Description   *string   `json:"description,omitempty"`
	SampleValues  []string  `json:"sample_values,omitempty"`
	FieldOrder    *int      `json:"field_order,omitempty"`
	Category      *string   `json:"category,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
