// Code generated by ent, DO NOT EDIT.

package uploadsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the uploadsession type in the database.
	Label = "upload_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldMarketplaceID holds the string denoting the marketplace_id field in the database.
	FieldMarketplaceID = "marketplace_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRowCount holds the string denoting the row_count field in the database.
	FieldRowCount = "row_count"
	// FieldUserColumns holds the string denoting the user_columns field in the database.
	FieldUserColumns = "user_columns"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMarketplace holds the string denoting the marketplace edge name in mutations.
	EdgeMarketplace = "marketplace"
	// EdgeRows holds the string denoting the rows edge name in mutations.
	EdgeRows = "rows"
	// EdgeMappings holds the string denoting the mappings edge name in mutations.
	EdgeMappings = "mappings"
	// EdgeGeneratedFiles holds the string denoting the generated_files edge name in mutations.
	EdgeGeneratedFiles = "generated_files"
	// Table holds the table name of the uploadsession in the database.
	Table = "upload_sessions"
	// MarketplaceTable is the table that holds the marketplace relation/edge.
	MarketplaceTable = "upload_sessions"
	// MarketplaceInverseTable is the table name for the Marketplace entity.
	// It exists in this package in order to avoid circular dependency with the "marketplace" package.
	MarketplaceInverseTable = "marketplaces"
	// MarketplaceColumn is the table column denoting the marketplace relation/edge.
	MarketplaceColumn = "marketplace_id"
	// RowsTable is the table that holds the rows relation/edge.
	RowsTable = "session_rows"
	// RowsInverseTable is the table name for the SessionRow entity.
	// It exists in this package in order to avoid circular dependency with the "sessionrow" package.
	RowsInverseTable = "session_rows"
	// RowsColumn is the table column denoting the rows relation/edge.
	RowsColumn = "session_id"
	// MappingsTable is the table that holds the mappings relation/edge.
	MappingsTable = "field_mappings"
	// MappingsInverseTable is the table name for the FieldMapping entity.
	// It exists in this package in order to avoid circular dependency with the "fieldmapping" package.
	MappingsInverseTable = "field_mappings"
	// MappingsColumn is the table column denoting the mappings relation/edge.
	MappingsColumn = "session_id"
	// GeneratedFilesTable is the table that holds the generated_files relation/edge.
	GeneratedFilesTable = "generated_files"
	// GeneratedFilesInverseTable is the table name for the GeneratedFile entity.
	// It exists in this package in order to avoid circular dependency with the "generatedfile" package.
	GeneratedFilesInverseTable = "generated_files"
	// GeneratedFilesColumn is the table column denoting the generated_files relation/edge.
	GeneratedFilesColumn = "session_id"
)

// Columns holds all SQL columns for uploadsession fields.
var Columns = []string{
	FieldID,
	FieldOriginalFilename,
	FieldFilePath,
	FieldMarketplaceID,
	FieldStatus,
	FieldRowCount,
	FieldUserColumns,
	FieldCategory,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	OriginalFilenameValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultRowCount holds the default value on creation for the "row_count" field.
	DefaultRowCount int
	// RowCountValidator is a validator for the "row_count" field. It is called by the builders before save.
	RowCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the UploadSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByMarketplaceID orders the results by the marketplace_id field.
func ByMarketplaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketplaceID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRowCount orders the results by the row_count field.
func ByRowCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowCount, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMarketplaceField orders the results by marketplace field.
func ByMarketplaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMarketplaceStep(), sql.OrderByField(field, opts...))
	}
}

// ByRowsCount orders the results by rows count.
func ByRowsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRowsStep(), opts...)
	}
}

// ByRows orders the results by rows terms.
func ByRows(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRowsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMappingsCount orders the results by mappings count.
func ByMappingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMappingsStep(), opts...)
	}
}

// ByMappings orders the results by mappings terms.
func ByMappings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMappingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGeneratedFilesCount orders the results by generated_files count.
func ByGeneratedFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGeneratedFilesStep(), opts...)
	}
}

// ByGeneratedFiles orders the results by generated_files terms.
func ByGeneratedFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGeneratedFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMarketplaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MarketplaceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MarketplaceTable, MarketplaceColumn),
	)
}
func newRowsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RowsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RowsTable, RowsColumn),
	)
}
func newMappingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MappingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MappingsTable, MappingsColumn),
	)
}
func newGeneratedFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GeneratedFilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GeneratedFilesTable, GeneratedFilesColumn),
	)
}
