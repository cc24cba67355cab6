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
	"github.com/catalogmapper/catalog-mapper/internal/entity"
)

var errBadStatus = errors.New("invalid session status")

// UploadSession is one upload-to-export run.
type UploadSession struct{ ent.Schema }

func (UploadSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "upload_sessions"},
	}
}

func (UploadSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("original_filename").NotEmpty(),
		field.String("file_path").Optional(),
		field.UUID("marketplace_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").
			Default(string(constants.StatusUploaded)).
			Validate(func(s string) error {
				if constants.IsSessionStatus(s) {
					return nil
				}
				return errBadStatus
			}),
		field.Int("row_count").Default(0).NonNegative(),
		field.JSON("user_columns", []entity.SourceColumn{}).Optional(),
		field.String("category").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (UploadSession) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY sessions -> ONE marketplace (optional until assigned)
		edge.From("marketplace", Marketplace.Type).
			Ref("sessions").
			Field("marketplace_id").
			Unique(),
		// ONE session -> MANY rows / mappings / generated files
		edge.To("rows", SessionRow.Type),
		edge.To("mappings", FieldMapping.Type),
		edge.To("generated_files", GeneratedFile.Type),
	}
}

func (UploadSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("marketplace_id", "created_at"),
		index.Fields("status"),
	}
}
