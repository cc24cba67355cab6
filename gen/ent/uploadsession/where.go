// Code generated by ent, DO NOT EDIT.

package uploadsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldID, id))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldOriginalFilename, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldFilePath, v))
}

// MarketplaceID applies equality check predicate on the "marketplace_id" field. It's identical to MarketplaceIDEQ.
func MarketplaceID(v uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldMarketplaceID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldStatus, v))
}

// RowCount applies equality check predicate on the "row_count" field. It's identical to RowCountEQ.
func RowCount(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldRowCount, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldCategory, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathIsNil applies the IsNil predicate on the "file_path" field.
func FilePathIsNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIsNull(FieldFilePath))
}

// FilePathNotNil applies the NotNil predicate on the "file_path" field.
func FilePathNotNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotNull(FieldFilePath))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldContainsFold(FieldFilePath, v))
}

// MarketplaceIDEQ applies the EQ predicate on the "marketplace_id" field.
func MarketplaceIDEQ(v uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldMarketplaceID, v))
}

// MarketplaceIDNEQ applies the NEQ predicate on the "marketplace_id" field.
func MarketplaceIDNEQ(v uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldMarketplaceID, v))
}

// MarketplaceIDIn applies the In predicate on the "marketplace_id" field.
func MarketplaceIDIn(vs ...uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldMarketplaceID, vs...))
}

// MarketplaceIDNotIn applies the NotIn predicate on the "marketplace_id" field.
func MarketplaceIDNotIn(vs ...uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldMarketplaceID, vs...))
}

// MarketplaceIDIsNil applies the IsNil predicate on the "marketplace_id" field.
func MarketplaceIDIsNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIsNull(FieldMarketplaceID))
}

// MarketplaceIDNotNil applies the NotNil predicate on the "marketplace_id" field.
func MarketplaceIDNotNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotNull(FieldMarketplaceID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldContainsFold(FieldStatus, v))
}

// RowCountEQ applies the EQ predicate on the "row_count" field.
func RowCountEQ(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldRowCount, v))
}

// RowCountNEQ applies the NEQ predicate on the "row_count" field.
func RowCountNEQ(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldRowCount, v))
}

// RowCountIn applies the In predicate on the "row_count" field.
func RowCountIn(vs ...int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldRowCount, vs...))
}

// RowCountNotIn applies the NotIn predicate on the "row_count" field.
func RowCountNotIn(vs ...int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldRowCount, vs...))
}

// RowCountGT applies the GT predicate on the "row_count" field.
func RowCountGT(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldRowCount, v))
}

// RowCountGTE applies the GTE predicate on the "row_count" field.
func RowCountGTE(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldRowCount, v))
}

// RowCountLT applies the LT predicate on the "row_count" field.
func RowCountLT(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldRowCount, v))
}

// RowCountLTE applies the LTE predicate on the "row_count" field.
func RowCountLTE(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldRowCount, v))
}

// UserColumnsIsNil applies the IsNil predicate on the "user_columns" field.
func UserColumnsIsNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIsNull(FieldUserColumns))
}

// UserColumnsNotNil applies the NotNil predicate on the "user_columns" field.
func UserColumnsNotNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotNull(FieldUserColumns))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldContainsFold(FieldCategory, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMarketplace applies the HasEdge predicate on the "marketplace" edge.
func HasMarketplace() predicate.UploadSession {
	return predicate.UploadSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MarketplaceTable, MarketplaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMarketplaceWith applies the HasEdge predicate on the "marketplace" edge with a given conditions (other predicates).
func HasMarketplaceWith(preds ...predicate.Marketplace) predicate.UploadSession {
	return predicate.UploadSession(func(s *sql.Selector) {
		step := newMarketplaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRows applies the HasEdge predicate on the "rows" edge.
func HasRows() predicate.UploadSession {
	return predicate.UploadSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RowsTable, RowsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRowsWith applies the HasEdge predicate on the "rows" edge with a given conditions (other predicates).
func HasRowsWith(preds ...predicate.SessionRow) predicate.UploadSession {
	return predicate.UploadSession(func(s *sql.Selector) {
		step := newRowsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMappings applies the HasEdge predicate on the "mappings" edge.
func HasMappings() predicate.UploadSession {
	return predicate.UploadSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MappingsTable, MappingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMappingsWith applies the HasEdge predicate on the "mappings" edge with a given conditions (other predicates).
func HasMappingsWith(preds ...predicate.FieldMapping) predicate.UploadSession {
	return predicate.UploadSession(func(s *sql.Selector) {
		step := newMappingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGeneratedFiles applies the HasEdge predicate on the "generated_files" edge.
func HasGeneratedFiles() predicate.UploadSession {
	return predicate.UploadSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GeneratedFilesTable, GeneratedFilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGeneratedFilesWith applies the HasEdge predicate on the "generated_files" edge with a given conditions (other predicates).
func HasGeneratedFilesWith(preds ...predicate.GeneratedFile) predicate.UploadSession {
	return predicate.UploadSession(func(s *sql.Selector) {
		step := newGeneratedFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UploadSession) predicate.UploadSession {
	return predicate.UploadSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UploadSession) predicate.UploadSession {
	return predicate.UploadSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UploadSession) predicate.UploadSession {
	return predicate.UploadSession(sql.NotPredicates(p))
}
