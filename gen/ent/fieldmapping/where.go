// Code generated by ent, DO NOT EDIT.

package fieldmapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldSessionID, v))
}

// UserColumn applies equality check predicate on the "user_column" field. It's identical to UserColumnEQ.
func UserColumn(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldUserColumn, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldFieldName, v))
}

// Origin applies equality check predicate on the "origin" field. It's identical to OriginEQ.
func Origin(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldOrigin, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldConfidence, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldPosition, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldSessionID, vs...))
}

// UserColumnEQ applies the EQ predicate on the "user_column" field.
func UserColumnEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldUserColumn, v))
}

// UserColumnNEQ applies the NEQ predicate on the "user_column" field.
func UserColumnNEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldUserColumn, v))
}

// UserColumnIn applies the In predicate on the "user_column" field.
func UserColumnIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldUserColumn, vs...))
}

// UserColumnNotIn applies the NotIn predicate on the "user_column" field.
func UserColumnNotIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldUserColumn, vs...))
}

// UserColumnGT applies the GT predicate on the "user_column" field.
func UserColumnGT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldUserColumn, v))
}

// UserColumnGTE applies the GTE predicate on the "user_column" field.
func UserColumnGTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldUserColumn, v))
}

// UserColumnLT applies the LT predicate on the "user_column" field.
func UserColumnLT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldUserColumn, v))
}

// UserColumnLTE applies the LTE predicate on the "user_column" field.
func UserColumnLTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldUserColumn, v))
}

// UserColumnContains applies the Contains predicate on the "user_column" field.
func UserColumnContains(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContains(FieldUserColumn, v))
}

// UserColumnHasPrefix applies the HasPrefix predicate on the "user_column" field.
func UserColumnHasPrefix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasPrefix(FieldUserColumn, v))
}

// UserColumnHasSuffix applies the HasSuffix predicate on the "user_column" field.
func UserColumnHasSuffix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasSuffix(FieldUserColumn, v))
}

// UserColumnEqualFold applies the EqualFold predicate on the "user_column" field.
func UserColumnEqualFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEqualFold(FieldUserColumn, v))
}

// UserColumnContainsFold applies the ContainsFold predicate on the "user_column" field.
func UserColumnContainsFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContainsFold(FieldUserColumn, v))
}

// FieldIDEQ applies the EQ predicate on the "field_id" field.
func FieldIDEQ(v uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldFieldID, v))
}

// FieldIDNEQ applies the NEQ predicate on the "field_id" field.
func FieldIDNEQ(v uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldFieldID, v))
}

// FieldIDIn applies the In predicate on the "field_id" field.
func FieldIDIn(vs ...uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldFieldID, vs...))
}

// FieldIDNotIn applies the NotIn predicate on the "field_id" field.
func FieldIDNotIn(vs ...uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldFieldID, vs...))
}

// FieldIDGT applies the GT predicate on the "field_id" field.
func FieldIDGT(v uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldFieldID, v))
}

// FieldIDGTE applies the GTE predicate on the "field_id" field.
func FieldIDGTE(v uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldFieldID, v))
}

// FieldIDLT applies the LT predicate on the "field_id" field.
func FieldIDLT(v uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldFieldID, v))
}

// FieldIDLTE applies the LTE predicate on the "field_id" field.
func FieldIDLTE(v uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldFieldID, v))
}

// FieldIDIsNil applies the IsNil predicate on the "field_id" field.
func FieldIDIsNil() predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIsNull(FieldFieldID))
}

// FieldIDNotNil applies the NotNil predicate on the "field_id" field.
func FieldIDNotNil() predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotNull(FieldFieldID))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContainsFold(FieldFieldName, v))
}

// OriginEQ applies the EQ predicate on the "origin" field.
func OriginEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldOrigin, v))
}

// OriginNEQ applies the NEQ predicate on the "origin" field.
func OriginNEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldOrigin, v))
}

// OriginIn applies the In predicate on the "origin" field.
func OriginIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldOrigin, vs...))
}

// OriginNotIn applies the NotIn predicate on the "origin" field.
func OriginNotIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldOrigin, vs...))
}

// OriginGT applies the GT predicate on the "origin" field.
func OriginGT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldOrigin, v))
}

// OriginGTE applies the GTE predicate on the "origin" field.
func OriginGTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldOrigin, v))
}

// OriginLT applies the LT predicate on the "origin" field.
func OriginLT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldOrigin, v))
}

// OriginLTE applies the LTE predicate on the "origin" field.
func OriginLTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldOrigin, v))
}

// OriginContains applies the Contains predicate on the "origin" field.
func OriginContains(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContains(FieldOrigin, v))
}

// OriginHasPrefix applies the HasPrefix predicate on the "origin" field.
func OriginHasPrefix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasPrefix(FieldOrigin, v))
}

// OriginHasSuffix applies the HasSuffix predicate on the "origin" field.
func OriginHasSuffix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasSuffix(FieldOrigin, v))
}

// OriginEqualFold applies the EqualFold predicate on the "origin" field.
func OriginEqualFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEqualFold(FieldOrigin, v))
}

// OriginContainsFold applies the ContainsFold predicate on the "origin" field.
func OriginContainsFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContainsFold(FieldOrigin, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotNull(FieldConfidence))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldPosition, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.FieldMapping {
	return predicate.FieldMapping(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.UploadSession) predicate.FieldMapping {
	return predicate.FieldMapping(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FieldMapping) predicate.FieldMapping {
	return predicate.FieldMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FieldMapping) predicate.FieldMapping {
	return predicate.FieldMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FieldMapping) predicate.FieldMapping {
	return predicate.FieldMapping(sql.NotPredicates(p))
}
