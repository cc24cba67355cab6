package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Marketplace is a named target schema catalogs are converted to.
type Marketplace struct{ ent.Schema }

func (Marketplace) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "marketplaces"},
	}
}

func (Marketplace) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty().Unique(),
		field.String("display_name").NotEmpty(),
		field.String("template_file_path").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Marketplace) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE marketplace -> MANY fields
		edge.To("fields", MarketplaceField.Type),
		// ONE marketplace -> MANY sessions
		edge.To("sessions", UploadSession.Type),
	}
}
