// Code generated by ent, DO NOT EDIT.

package marketplacefield

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLTE(FieldID, id))
}

// MarketplaceID applies equality check predicate on the "marketplace_id" field. It's identical to MarketplaceIDEQ.
func MarketplaceID(v uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldMarketplaceID, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldFieldName, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldDisplayName, v))
}

// IsRequired applies equality check predicate on the "is_required" field. It's identical to IsRequiredEQ.
func IsRequired(v bool) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldIsRequired, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldDescription, v))
}

// FieldOrder applies equality check predicate on the "field_order" field. It's identical to FieldOrderEQ.
func FieldOrder(v int) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldFieldOrder, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldCategory, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldCreatedAt, v))
}

// MarketplaceIDEQ applies the EQ predicate on the "marketplace_id" field.
func MarketplaceIDEQ(v uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldMarketplaceID, v))
}

// MarketplaceIDNEQ applies the NEQ predicate on the "marketplace_id" field.
func MarketplaceIDNEQ(v uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNEQ(FieldMarketplaceID, v))
}

// MarketplaceIDIn applies the In predicate on the "marketplace_id" field.
func MarketplaceIDIn(vs ...uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIn(FieldMarketplaceID, vs...))
}

// MarketplaceIDNotIn applies the NotIn predicate on the "marketplace_id" field.
func MarketplaceIDNotIn(vs ...uuid.UUID) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotIn(FieldMarketplaceID, vs...))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldContainsFold(FieldFieldName, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldContainsFold(FieldDisplayName, v))
}

// IsRequiredEQ applies the EQ predicate on the "is_required" field.
func IsRequiredEQ(v bool) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldIsRequired, v))
}

// IsRequiredNEQ applies the NEQ predicate on the "is_required" field.
func IsRequiredNEQ(v bool) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNEQ(FieldIsRequired, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldContainsFold(FieldDescription, v))
}

// SampleValuesIsNil applies the IsNil predicate on the "sample_values" field.
func SampleValuesIsNil() predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIsNull(FieldSampleValues))
}

// SampleValuesNotNil applies the NotNil predicate on the "sample_values" field.
func SampleValuesNotNil() predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotNull(FieldSampleValues))
}

// FieldOrderEQ applies the EQ predicate on the "field_order" field.
func FieldOrderEQ(v int) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldFieldOrder, v))
}

// FieldOrderNEQ applies the NEQ predicate on the "field_order" field.
func FieldOrderNEQ(v int) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNEQ(FieldFieldOrder, v))
}

// FieldOrderIn applies the In predicate on the "field_order" field.
func FieldOrderIn(vs ...int) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIn(FieldFieldOrder, vs...))
}

// FieldOrderNotIn applies the NotIn predicate on the "field_order" field.
func FieldOrderNotIn(vs ...int) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotIn(FieldFieldOrder, vs...))
}

// FieldOrderGT applies the GT predicate on the "field_order" field.
func FieldOrderGT(v int) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGT(FieldFieldOrder, v))
}

// FieldOrderGTE applies the GTE predicate on the "field_order" field.
func FieldOrderGTE(v int) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGTE(FieldFieldOrder, v))
}

// FieldOrderLT applies the LT predicate on the "field_order" field.
func FieldOrderLT(v int) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLT(FieldFieldOrder, v))
}

// FieldOrderLTE applies the LTE predicate on the "field_order" field.
func FieldOrderLTE(v int) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLTE(FieldFieldOrder, v))
}

// FieldOrderIsNil applies the IsNil predicate on the "field_order" field.
func FieldOrderIsNil() predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIsNull(FieldFieldOrder))
}

// FieldOrderNotNil applies the NotNil predicate on the "field_order" field.
func FieldOrderNotNil() predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotNull(FieldFieldOrder))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldContainsFold(FieldCategory, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMarketplace applies the HasEdge predicate on the "marketplace" edge.
func HasMarketplace() predicate.MarketplaceField {
	return predicate.MarketplaceField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MarketplaceTable, MarketplaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMarketplaceWith applies the HasEdge predicate on the "marketplace" edge with a given conditions (other predicates).
func HasMarketplaceWith(preds ...predicate.Marketplace) predicate.MarketplaceField {
	return predicate.MarketplaceField(func(s *sql.Selector) {
		step := newMarketplaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MarketplaceField) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MarketplaceField) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MarketplaceField) predicate.MarketplaceField {
	return predicate.MarketplaceField(sql.NotPredicates(p))
}
