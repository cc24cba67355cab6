package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionRow is one ingested data row. Data holds the values as ingested and
// is never mutated; EditedData is a sparse overlay of user overrides.
type SessionRow struct {
	ID         uuid.UUID         `json:"id"`
	SessionID  uuid.UUID         `json:"session_id"`
	RowIndex   int               `json:"row_index"`
	Data       map[string]string `json:"data"`
	EditedData map[string]string `json:"edited_data,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// EffectiveValue returns the edited value for a column if present, else the
// originally ingested value. Recomputed on every read, never cached.
func (r *SessionRow) EffectiveValue(column string) string {
	if v, ok := r.EditedData[column]; ok {
		return v
	}
	return r.Data[column]
}

// MergeEdits unions partial on top of existing key-wise: new values overwrite
// old values for the same key, keys absent from partial keep their prior
// edit. Neither input map is mutated.
func MergeEdits(existing, partial map[string]string) map[string]string {
	merged := make(map[string]string, len(existing)+len(partial))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return merged
}
