// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FieldMappingsColumns holds the columns for the "field_mappings" table.
	FieldMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_column", Type: field.TypeString},
		{Name: "field_id", Type: field.TypeUUID, Nullable: true},
		{Name: "field_name", Type: field.TypeString},
		{Name: "origin", Type: field.TypeString, Default: "suggested"},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// FieldMappingsTable holds the schema information for the "field_mappings" table.
	FieldMappingsTable = &schema.Table{
		Name:       "field_mappings",
		Columns:    FieldMappingsColumns,
		PrimaryKey: []*schema.Column{FieldMappingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "field_mappings_upload_sessions_mappings",
				Columns:    []*schema.Column{FieldMappingsColumns[8]},
				RefColumns: []*schema.Column{UploadSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fieldmapping_session_id_user_column",
				Unique:  true,
				Columns: []*schema.Column{FieldMappingsColumns[8], FieldMappingsColumns[1]},
			},
			{
				Name:    "fieldmapping_session_id_position",
				Unique:  false,
				Columns: []*schema.Column{FieldMappingsColumns[8], FieldMappingsColumns[6]},
			},
		},
	}
	// GeneratedFilesColumns holds the columns for the "generated_files" table.
	GeneratedFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "output_format", Type: field.TypeString},
		{Name: "row_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// GeneratedFilesTable holds the schema information for the "generated_files" table.
	GeneratedFilesTable = &schema.Table{
		Name:       "generated_files",
		Columns:    GeneratedFilesColumns,
		PrimaryKey: []*schema.Column{GeneratedFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generated_files_upload_sessions_generated_files",
				Columns:    []*schema.Column{GeneratedFilesColumns[5]},
				RefColumns: []*schema.Column{UploadSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "generatedfile_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{GeneratedFilesColumns[5], GeneratedFilesColumns[4]},
			},
		},
	}
	// MarketplacesColumns holds the columns for the "marketplaces" table.
	MarketplacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "template_file_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MarketplacesTable holds the schema information for the "marketplaces" table.
	MarketplacesTable = &schema.Table{
		Name:       "marketplaces",
		Columns:    MarketplacesColumns,
		PrimaryKey: []*schema.Column{MarketplacesColumns[0]},
	}
	// MarketplaceFieldsColumns holds the columns for the "marketplace_fields" table.
	MarketplaceFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "field_name", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "is_required", Type: field.TypeBool, Default: false},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "sample_values", Type: field.TypeJSON, Nullable: true},
		{Name: "field_order", Type: field.TypeInt, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "marketplace_id", Type: field.TypeUUID},
	}
	// MarketplaceFieldsTable holds the schema information for the "marketplace_fields" table.
	MarketplaceFieldsTable = &schema.Table{
		Name:       "marketplace_fields",
		Columns:    MarketplaceFieldsColumns,
		PrimaryKey: []*schema.Column{MarketplaceFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "marketplace_fields_marketplaces_fields",
				Columns:    []*schema.Column{MarketplaceFieldsColumns[9]},
				RefColumns: []*schema.Column{MarketplacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "marketplacefield_marketplace_id_category",
				Unique:  false,
				Columns: []*schema.Column{MarketplaceFieldsColumns[9], MarketplaceFieldsColumns[7]},
			},
			{
				Name:    "marketplacefield_marketplace_id_field_order",
				Unique:  false,
				Columns: []*schema.Column{MarketplaceFieldsColumns[9], MarketplaceFieldsColumns[6]},
			},
		},
	}
	// SessionRowsColumns holds the columns for the "session_rows" table.
	SessionRowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "data", Type: field.TypeJSON},
		{Name: "edited_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// SessionRowsTable holds the schema information for the "session_rows" table.
	SessionRowsTable = &schema.Table{
		Name:       "session_rows",
		Columns:    SessionRowsColumns,
		PrimaryKey: []*schema.Column{SessionRowsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_rows_upload_sessions_rows",
				Columns:    []*schema.Column{SessionRowsColumns[6]},
				RefColumns: []*schema.Column{UploadSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrow_session_id_row_index",
				Unique:  true,
				Columns: []*schema.Column{SessionRowsColumns[6], SessionRowsColumns[1]},
			},
		},
	}
	// UploadSessionsColumns holds the columns for the "upload_sessions" table.
	UploadSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "uploaded"},
		{Name: "row_count", Type: field.TypeInt, Default: 0},
		{Name: "user_columns", Type: field.TypeJSON, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "marketplace_id", Type: field.TypeUUID, Nullable: true},
	}
	// UploadSessionsTable holds the schema information for the "upload_sessions" table.
	UploadSessionsTable = &schema.Table{
		Name:       "upload_sessions",
		Columns:    UploadSessionsColumns,
		PrimaryKey: []*schema.Column{UploadSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "upload_sessions_marketplaces_sessions",
				Columns:    []*schema.Column{UploadSessionsColumns[9]},
				RefColumns: []*schema.Column{MarketplacesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "uploadsession_marketplace_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UploadSessionsColumns[9], UploadSessionsColumns[7]},
			},
			{
				Name:    "uploadsession_status",
				Unique:  false,
				Columns: []*schema.Column{UploadSessionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FieldMappingsTable,
		GeneratedFilesTable,
		MarketplacesTable,
		MarketplaceFieldsTable,
		SessionRowsTable,
		UploadSessionsTable,
	}
)

func init() {
	FieldMappingsTable.ForeignKeys[0].RefTable = UploadSessionsTable
	FieldMappingsTable.Annotation = &entsql.Annotation{
		Table: "field_mappings",
	}
	GeneratedFilesTable.ForeignKeys[0].RefTable = UploadSessionsTable
	GeneratedFilesTable.Annotation = &entsql.Annotation{
		Table: "generated_files",
	}
	MarketplacesTable.Annotation = &entsql.Annotation{
		Table: "marketplaces",
	}
	MarketplaceFieldsTable.ForeignKeys[0].RefTable = MarketplacesTable
	MarketplaceFieldsTable.Annotation = &entsql.Annotation{
		Table: "marketplace_fields",
	}
	SessionRowsTable.ForeignKeys[0].RefTable = UploadSessionsTable
	SessionRowsTable.Annotation = &entsql.Annotation{
		Table: "session_rows",
	}
	UploadSessionsTable.ForeignKeys[0].RefTable = MarketplacesTable
	UploadSessionsTable.Annotation = &entsql.Annotation{
		Table: "upload_sessions",
	}
}
