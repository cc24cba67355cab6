package entity

import (
	"time"

	"github.com/google/uuid"
)

// MappingOrigin records whether a mapping came from the suggestion engine or
// from the user.
type MappingOrigin string

const (
	OriginSuggested MappingOrigin = "suggested"
	OriginManual    MappingOrigin = "manual"
)

// FieldMapping assigns one source column to one marketplace field for a
// session. A nil FieldName is represented by absence in storage: explicitly
// unmapped columns are simply not persisted.
type FieldMapping struct {
	ID         uuid.UUID     `json:"id"`
	SessionID  uuid.UUID     `json:"session_id"`
	UserColumn string        `json:"user_column"`
	FieldID    *uuid.UUID    `json:"marketplace_field_id,omitempty"`
	FieldName  *string       `json:"marketplace_field_name,omitempty"`
	Origin     MappingOrigin `json:"origin"`
	Confidence *float32      `json:"confidence,omitempty"` // meaningful only when suggested
	Position   int           `json:"position"`             // insertion order within the saved set
	CreatedAt  time.Time     `json:"created_at"`
}
