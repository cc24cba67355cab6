package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// MarketplaceField is one column definition in a target schema. A NULL
// category means the "Default" group.
type MarketplaceField struct{ ent.Schema }

func (MarketplaceField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "marketplace_fields"},
	}
}

func (MarketplaceField) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define composite indexes
		field.UUID("marketplace_id", uuid.UUID{}),
		field.String("field_name").NotEmpty(),
		field.String("display_name").Optional().Nillable(),
		field.Bool("is_required").Default(false),
		field.String("description").Optional().Nillable(),
		field.JSON("sample_values", []string{}).Optional(),
		field.Int("field_order").Optional().Nillable(),
		field.String("category").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (MarketplaceField) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY fields -> ONE marketplace
		edge.From("marketplace", Marketplace.Type).
			Ref("fields").
			Field("marketplace_id").
			Required().
			Unique(),
	}
}

func (MarketplaceField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("marketplace_id", "category"),
		index.Fields("marketplace_id", "field_order"),
	}
}
