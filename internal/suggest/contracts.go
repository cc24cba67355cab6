package suggest

import (
	"context"

	"github.com/catalogmapper/catalog-mapper/internal/entity"
)

// Suggestion is one proposed assignment of a source column to a marketplace
// field. A nil FieldName means no usable match was found.
type Suggestion struct {
	UserColumn string
	FieldName  *string
	Confidence float32 // 0..1; near 1 means a near-certain match
}

// Request carries everything the matcher sees: source columns with samples,
// the target field list and the marketplace display name used as context.
type Request struct {
	Columns         []entity.SourceColumn
	Fields          []entity.MarketplaceField
	MarketplaceName string
}

// Suggester proposes at most one target field per source column. It does not
// enforce uniqueness of field assignment across columns; the mapping-save
// step or the UI does that if desired.
type Suggester interface {
	SuggestMappings(ctx context.Context, req Request) ([]Suggestion, error)
}
