// Code generated by ent, DO NOT EDIT.

package generatedfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldSessionID, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldFilePath, v))
}

// OutputFormat applies equality check predicate on the "output_format" field. It's identical to OutputFormatEQ.
func OutputFormat(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldOutputFormat, v))
}

// RowCount applies equality check predicate on the "row_count" field. It's identical to RowCountEQ.
func RowCount(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldRowCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotIn(FieldSessionID, vs...))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathIsNil applies the IsNil predicate on the "file_path" field.
func FilePathIsNil() predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIsNull(FieldFilePath))
}

// FilePathNotNil applies the NotNil predicate on the "file_path" field.
func FilePathNotNil() predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotNull(FieldFilePath))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldContainsFold(FieldFilePath, v))
}

// OutputFormatEQ applies the EQ predicate on the "output_format" field.
func OutputFormatEQ(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldOutputFormat, v))
}

// OutputFormatNEQ applies the NEQ predicate on the "output_format" field.
func OutputFormatNEQ(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNEQ(FieldOutputFormat, v))
}

// OutputFormatIn applies the In predicate on the "output_format" field.
func OutputFormatIn(vs ...string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIn(FieldOutputFormat, vs...))
}

// OutputFormatNotIn applies the NotIn predicate on the "output_format" field.
func OutputFormatNotIn(vs ...string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotIn(FieldOutputFormat, vs...))
}

// OutputFormatGT applies the GT predicate on the "output_format" field.
func OutputFormatGT(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGT(FieldOutputFormat, v))
}

// OutputFormatGTE applies the GTE predicate on the "output_format" field.
func OutputFormatGTE(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGTE(FieldOutputFormat, v))
}

// OutputFormatLT applies the LT predicate on the "output_format" field.
func OutputFormatLT(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLT(FieldOutputFormat, v))
}

// OutputFormatLTE applies the LTE predicate on the "output_format" field.
func OutputFormatLTE(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLTE(FieldOutputFormat, v))
}

// OutputFormatContains applies the Contains predicate on the "output_format" field.
func OutputFormatContains(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldContains(FieldOutputFormat, v))
}

// OutputFormatHasPrefix applies the HasPrefix predicate on the "output_format" field.
func OutputFormatHasPrefix(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldHasPrefix(FieldOutputFormat, v))
}

// OutputFormatHasSuffix applies the HasSuffix predicate on the "output_format" field.
func OutputFormatHasSuffix(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldHasSuffix(FieldOutputFormat, v))
}

// OutputFormatEqualFold applies the EqualFold predicate on the "output_format" field.
func OutputFormatEqualFold(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEqualFold(FieldOutputFormat, v))
}

// OutputFormatContainsFold applies the ContainsFold predicate on the "output_format" field.
func OutputFormatContainsFold(v string) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldContainsFold(FieldOutputFormat, v))
}

// RowCountEQ applies the EQ predicate on the "row_count" field.
func RowCountEQ(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldRowCount, v))
}

// RowCountNEQ applies the NEQ predicate on the "row_count" field.
func RowCountNEQ(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNEQ(FieldRowCount, v))
}

// RowCountIn applies the In predicate on the "row_count" field.
func RowCountIn(vs ...int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIn(FieldRowCount, vs...))
}

// RowCountNotIn applies the NotIn predicate on the "row_count" field.
func RowCountNotIn(vs ...int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotIn(FieldRowCount, vs...))
}

// RowCountGT applies the GT predicate on the "row_count" field.
func RowCountGT(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGT(FieldRowCount, v))
}

// RowCountGTE applies the GTE predicate on the "row_count" field.
func RowCountGTE(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGTE(FieldRowCount, v))
}

// RowCountLT applies the LT predicate on the "row_count" field.
func RowCountLT(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLT(FieldRowCount, v))
}

// RowCountLTE applies the LTE predicate on the "row_count" field.
func RowCountLTE(v int) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLTE(FieldRowCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.GeneratedFile {
	return predicate.GeneratedFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.UploadSession) predicate.GeneratedFile {
	return predicate.GeneratedFile(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GeneratedFile) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GeneratedFile) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GeneratedFile) predicate.GeneratedFile {
	return predicate.GeneratedFile(sql.NotPredicates(p))
}
