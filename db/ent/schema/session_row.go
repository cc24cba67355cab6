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

// SessionRow is one ingested data row. "data" is written once at ingest and
// never updated; "edited_data" is a sparse overlay merged on each save.
type SessionRow struct{ ent.Schema }

func (SessionRow) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "session_rows"},
	}
}

func (SessionRow) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("session_id", uuid.UUID{}),
		field.Int("row_index").NonNegative().Immutable(),
		field.JSON("data", map[string]string{}).Immutable(),
		field.JSON("edited_data", map[string]string{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SessionRow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", UploadSession.Type).
			Ref("rows").
			Field("session_id").
			Required().
			Unique(),
	}
}

func (SessionRow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "row_index").Unique(),
	}
}
