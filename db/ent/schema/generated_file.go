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

	"github.com/catalogmapper/catalog-mapper/constants"
)

var errBadFormat = errors.New("invalid output format")

// GeneratedFile records one produced export; rows are append-only.
type GeneratedFile struct{ ent.Schema }

func (GeneratedFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "generated_files"},
	}
}

func (GeneratedFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("session_id", uuid.UUID{}),
		field.String("file_path").Optional(),
		field.String("output_format").
			Validate(func(s string) error {
				if constants.IsOutputFormat(s) {
					return nil
				}
				return errBadFormat
			}),
		field.Int("row_count").Default(0).NonNegative(),
		field.Time("created_at").Default(time.Now),
	}
}

func (GeneratedFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", UploadSession.Type).
			Ref("generated_files").
			Field("session_id").
			Required().
			Unique(),
	}
}

func (GeneratedFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
	}
}
