// Code generated by ent, DO NOT EDIT.

package marketplacefield

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the marketplacefield type in the database.
	Label = "marketplace_field"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMarketplaceID holds the string denoting the marketplace_id field in the database.
	FieldMarketplaceID = "marketplace_id"
	// FieldFieldName holds the string denoting the field_name field in the database.
	FieldFieldName = "field_name"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldIsRequired holds the string denoting the is_required field in the database.
	FieldIsRequired = "is_required"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSampleValues holds the string denoting the sample_values field in the database.
	FieldSampleValues = "sample_values"
	// FieldFieldOrder holds the string denoting the field_order field in the database.
	FieldFieldOrder = "field_order"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMarketplace holds the string denoting the marketplace edge name in mutations.
	EdgeMarketplace = "marketplace"
	// Table holds the table name of the marketplacefield in the database.
	Table = "marketplace_fields"
	// MarketplaceTable is the table that holds the marketplace relation/edge.
	MarketplaceTable = "marketplace_fields"
	// MarketplaceInverseTable is the table name for the Marketplace entity.
	// It exists in this package in order to avoid circular dependency with the "marketplace" package.
	MarketplaceInverseTable = "marketplaces"
	// MarketplaceColumn is the table column denoting the marketplace relation/edge.
	MarketplaceColumn = "marketplace_id"
)

// Columns holds all SQL columns for marketplacefield fields.
var Columns = []string{
	FieldID,
	FieldMarketplaceID,
	FieldFieldName,
	FieldDisplayName,
	FieldIsRequired,
	FieldDescription,
	FieldSampleValues,
	FieldFieldOrder,
	FieldCategory,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	FieldNameValidator func(string) error
	// DefaultIsRequired holds the default value on creation for the "is_required" field.
	DefaultIsRequired bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MarketplaceField queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMarketplaceID orders the results by the marketplace_id field.
func ByMarketplaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketplaceID, opts...).ToFunc()
}

// ByFieldName orders the results by the field_name field.
func ByFieldName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldName, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByIsRequired orders the results by the is_required field.
func ByIsRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRequired, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByFieldOrder orders the results by the field_order field.
func ByFieldOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldOrder, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMarketplaceField orders the results by marketplace field.
func ByMarketplaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMarketplaceStep(), sql.OrderByField(field, opts...))
	}
}
func newMarketplaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MarketplaceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MarketplaceTable, MarketplaceColumn),
	)
}
