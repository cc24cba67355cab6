// Code generated by ent, DO NOT EDIT.

package marketplace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEQ(FieldName, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEQ(FieldDisplayName, v))
}

// TemplateFilePath applies equality check predicate on the "template_file_path" field. It's identical to TemplateFilePathEQ.
func TemplateFilePath(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEQ(FieldTemplateFilePath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldContainsFold(FieldName, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldContainsFold(FieldDisplayName, v))
}

// TemplateFilePathEQ applies the EQ predicate on the "template_file_path" field.
func TemplateFilePathEQ(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEQ(FieldTemplateFilePath, v))
}

// TemplateFilePathNEQ applies the NEQ predicate on the "template_file_path" field.
func TemplateFilePathNEQ(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldNEQ(FieldTemplateFilePath, v))
}

// TemplateFilePathIn applies the In predicate on the "template_file_path" field.
func TemplateFilePathIn(vs ...string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldIn(FieldTemplateFilePath, vs...))
}

// TemplateFilePathNotIn applies the NotIn predicate on the "template_file_path" field.
func TemplateFilePathNotIn(vs ...string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldNotIn(FieldTemplateFilePath, vs...))
}

// TemplateFilePathGT applies the GT predicate on the "template_file_path" field.
func TemplateFilePathGT(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldGT(FieldTemplateFilePath, v))
}

// TemplateFilePathGTE applies the GTE predicate on the "template_file_path" field.
func TemplateFilePathGTE(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldGTE(FieldTemplateFilePath, v))
}

// TemplateFilePathLT applies the LT predicate on the "template_file_path" field.
func TemplateFilePathLT(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldLT(FieldTemplateFilePath, v))
}

// TemplateFilePathLTE applies the LTE predicate on the "template_file_path" field.
func TemplateFilePathLTE(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldLTE(FieldTemplateFilePath, v))
}

// TemplateFilePathContains applies the Contains predicate on the "template_file_path" field.
func TemplateFilePathContains(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldContains(FieldTemplateFilePath, v))
}

// TemplateFilePathHasPrefix applies the HasPrefix predicate on the "template_file_path" field.
func TemplateFilePathHasPrefix(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldHasPrefix(FieldTemplateFilePath, v))
}

// TemplateFilePathHasSuffix applies the HasSuffix predicate on the "template_file_path" field.
func TemplateFilePathHasSuffix(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldHasSuffix(FieldTemplateFilePath, v))
}

// TemplateFilePathIsNil applies the IsNil predicate on the "template_file_path" field.
func TemplateFilePathIsNil() predicate.Marketplace {
	return predicate.Marketplace(sql.FieldIsNull(FieldTemplateFilePath))
}

// TemplateFilePathNotNil applies the NotNil predicate on the "template_file_path" field.
func TemplateFilePathNotNil() predicate.Marketplace {
	return predicate.Marketplace(sql.FieldNotNull(FieldTemplateFilePath))
}

// TemplateFilePathEqualFold applies the EqualFold predicate on the "template_file_path" field.
func TemplateFilePathEqualFold(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEqualFold(FieldTemplateFilePath, v))
}

// TemplateFilePathContainsFold applies the ContainsFold predicate on the "template_file_path" field.
func TemplateFilePathContainsFold(v string) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldContainsFold(FieldTemplateFilePath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Marketplace {
	return predicate.Marketplace(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFields applies the HasEdge predicate on the "fields" edge.
func HasFields() predicate.Marketplace {
	return predicate.Marketplace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FieldsTable, FieldsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldsWith applies the HasEdge predicate on the "fields" edge with a given conditions (other predicates).
func HasFieldsWith(preds ...predicate.MarketplaceField) predicate.Marketplace {
	return predicate.Marketplace(func(s *sql.Selector) {
		step := newFieldsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Marketplace {
	return predicate.Marketplace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.UploadSession) predicate.Marketplace {
	return predicate.Marketplace(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Marketplace) predicate.Marketplace {
	return predicate.Marketplace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Marketplace) predicate.Marketplace {
	return predicate.Marketplace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Marketplace) predicate.Marketplace {
	return predicate.Marketplace(sql.NotPredicates(p))
}
