package schema

import (
	"errors"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

var errBadOrigin = errors.New("invalid mapping origin")

// FieldMapping assigns a source column to a marketplace field for one
// session. Explicitly unmapped columns are represented by absence, so
// field_name is always set on stored rows. The whole set is replaced on
// every save.
type FieldMapping struct{ ent.Schema }

func (FieldMapping) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "field_mappings"},
	}
}

func (FieldMapping) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("session_id", uuid.UUID{}),
		field.String("user_column").NotEmpty(),
		field.UUID("field_id", uuid.UUID{}).Optional().Nillable(),
		field.String("field_name").NotEmpty(),
		field.String("origin").
			Default("suggested").
			Validate(func(s string) error {
				if s == "suggested" || s == "manual" {
					return nil
				}
				return errBadOrigin
			}),
		field.Float32("confidence").Optional().Nillable(),
		// position preserves save order so reads are deterministic even
		// when created_at timestamps collide within a bulk insert.
		field.Int("position").NonNegative().Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (FieldMapping) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", UploadSession.Type).
			Ref("mappings").
			Field("session_id").
			Required().
			Unique(),
	}
}

func (FieldMapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "user_column").Unique(),
		index.Fields("session_id", "position"),
	}
}
