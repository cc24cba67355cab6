// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/catalogmapper/catalog-mapper/db/ent/schema"
	"github.com/catalogmapper/catalog-mapper/gen/ent/fieldmapping"
	"github.com/catalogmapper/catalog-mapper/gen/ent/generatedfile"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplacefield"
	"github.com/catalogmapper/catalog-mapper/gen/ent/sessionrow"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	fieldmappingFields := schema.FieldMapping{}.Fields()
	_ = fieldmappingFields
	// fieldmappingDescUserColumn is the schema descriptor for user_column field.
	fieldmappingDescUserColumn := fieldmappingFields[2].Descriptor()
	// fieldmapping.UserColumnValidator is a validator for the "user_column" field. It is called by the builders before save.
	fieldmapping.UserColumnValidator = fieldmappingDescUserColumn.Validators[0].(func(string) error)
	// fieldmappingDescFieldName is the schema descriptor for field_name field.
	fieldmappingDescFieldName := fieldmappingFields[4].Descriptor()
	// fieldmapping.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	fieldmapping.FieldNameValidator = fieldmappingDescFieldName.Validators[0].(func(string) error)
	// fieldmappingDescOrigin is the schema descriptor for origin field.
	fieldmappingDescOrigin := fieldmappingFields[5].Descriptor()
	// fieldmapping.DefaultOrigin holds the default value on creation for the origin field.
	fieldmapping.DefaultOrigin = fieldmappingDescOrigin.Default.(string)
	// fieldmapping.OriginValidator is a validator for the "origin" field. It is called by the builders before save.
	fieldmapping.OriginValidator = fieldmappingDescOrigin.Validators[0].(func(string) error)
	// fieldmappingDescPosition is the schema descriptor for position field.
	fieldmappingDescPosition := fieldmappingFields[7].Descriptor()
	// fieldmapping.DefaultPosition holds the default value on creation for the position field.
	fieldmapping.DefaultPosition = fieldmappingDescPosition.Default.(int)
	// fieldmapping.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	fieldmapping.PositionValidator = fieldmappingDescPosition.Validators[0].(func(int) error)
	// fieldmappingDescCreatedAt is the schema descriptor for created_at field.
	fieldmappingDescCreatedAt := fieldmappingFields[8].Descriptor()
	// fieldmapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	fieldmapping.DefaultCreatedAt = fieldmappingDescCreatedAt.Default.(func() time.Time)
	// fieldmappingDescID is the schema descriptor for id field.
	fieldmappingDescID := fieldmappingFields[0].Descriptor()
	// fieldmapping.DefaultID holds the default value on creation for the id field.
	fieldmapping.DefaultID = fieldmappingDescID.Default.(func() uuid.UUID)
	generatedfileFields := schema.GeneratedFile{}.Fields()
	_ = generatedfileFields
	// generatedfileDescOutputFormat is the schema descriptor for output_format field.
	generatedfileDescOutputFormat := generatedfileFields[3].Descriptor()
	// generatedfile.OutputFormatValidator is a validator for the "output_format" field. It is called by the builders before save.
	generatedfile.OutputFormatValidator = generatedfileDescOutputFormat.Validators[0].(func(string) error)
	// generatedfileDescRowCount is the schema descriptor for row_count field.
	generatedfileDescRowCount := generatedfileFields[4].Descriptor()
	// generatedfile.DefaultRowCount holds the default value on creation for the row_count field.
	generatedfile.DefaultRowCount = generatedfileDescRowCount.Default.(int)
	// generatedfile.RowCountValidator is a validator for the "row_count" field. It is called by the builders before save.
	generatedfile.RowCountValidator = generatedfileDescRowCount.Validators[0].(func(int) error)
	// generatedfileDescCreatedAt is the schema descriptor for created_at field.
	generatedfileDescCreatedAt := generatedfileFields[5].Descriptor()
	// generatedfile.DefaultCreatedAt holds the default value on creation for the created_at field.
	generatedfile.DefaultCreatedAt = generatedfileDescCreatedAt.Default.(func() time.Time)
	// generatedfileDescID is the schema descriptor for id field.
	generatedfileDescID := generatedfileFields[0].Descriptor()
	// generatedfile.DefaultID holds the default value on creation for the id field.
	generatedfile.DefaultID = generatedfileDescID.Default.(func() uuid.UUID)
	marketplaceFields := schema.Marketplace{}.Fields()
	_ = marketplaceFields
	// marketplaceDescName is the schema descriptor for name field.
	marketplaceDescName := marketplaceFields[1].Descriptor()
	// marketplace.NameValidator is a validator for the "name" field. It is called by the builders before save.
	marketplace.NameValidator = marketplaceDescName.Validators[0].(func(string) error)
	// marketplaceDescDisplayName is the schema descriptor for display_name field.
	marketplaceDescDisplayName := marketplaceFields[2].Descriptor()
	// marketplace.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	marketplace.DisplayNameValidator = marketplaceDescDisplayName.Validators[0].(func(string) error)
	// marketplaceDescCreatedAt is the schema descriptor for created_at field.
	marketplaceDescCreatedAt := marketplaceFields[4].Descriptor()
	// marketplace.DefaultCreatedAt holds the default value on creation for the created_at field.
	marketplace.DefaultCreatedAt = marketplaceDescCreatedAt.Default.(func() time.Time)
	// marketplaceDescID is the schema descriptor for id field.
	marketplaceDescID := marketplaceFields[0].Descriptor()
	// marketplace.DefaultID holds the default value on creation for the id field.
	marketplace.DefaultID = marketplaceDescID.Default.(func() uuid.UUID)
	marketplacefieldFields := schema.MarketplaceField{}.Fields()
	_ = marketplacefieldFields
	// marketplacefieldDescFieldName is the schema descriptor for field_name field.
	marketplacefieldDescFieldName := marketplacefieldFields[2].Descriptor()
	// marketplacefield.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	marketplacefield.FieldNameValidator = marketplacefieldDescFieldName.Validators[0].(func(string) error)
	// marketplacefieldDescIsRequired is the schema descriptor for is_required field.
	marketplacefieldDescIsRequired := marketplacefieldFields[4].Descriptor()
	// marketplacefield.DefaultIsRequired holds the default value on creation for the is_required field.
	marketplacefield.DefaultIsRequired = marketplacefieldDescIsRequired.Default.(bool)
	// marketplacefieldDescCreatedAt is the schema descriptor for created_at field.
	marketplacefieldDescCreatedAt := marketplacefieldFields[9].Descriptor()
	// marketplacefield.DefaultCreatedAt holds the default value on creation for the created_at field.
	marketplacefield.DefaultCreatedAt = marketplacefieldDescCreatedAt.Default.(func() time.Time)
	// marketplacefieldDescID is the schema descriptor for id field.
	marketplacefieldDescID := marketplacefieldFields[0].Descriptor()
	// marketplacefield.DefaultID holds the default value on creation for the id field.
	marketplacefield.DefaultID = marketplacefieldDescID.Default.(func() uuid.UUID)
	sessionrowFields := schema.SessionRow{}.Fields()
	_ = sessionrowFields
	// sessionrowDescRowIndex is the schema descriptor for row_index field.
	sessionrowDescRowIndex := sessionrowFields[2].Descriptor()
	// sessionrow.RowIndexValidator is a validator for the "row_index" field. It is called by the builders before save.
	sessionrow.RowIndexValidator = sessionrowDescRowIndex.Validators[0].(func(int) error)
	// sessionrowDescCreatedAt is the schema descriptor for created_at field.
	sessionrowDescCreatedAt := sessionrowFields[5].Descriptor()
	// sessionrow.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionrow.DefaultCreatedAt = sessionrowDescCreatedAt.Default.(func() time.Time)
	// sessionrowDescUpdatedAt is the schema descriptor for updated_at field.
	sessionrowDescUpdatedAt := sessionrowFields[6].Descriptor()
	// sessionrow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionrow.DefaultUpdatedAt = sessionrowDescUpdatedAt.Default.(func() time.Time)
	// sessionrow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionrow.UpdateDefaultUpdatedAt = sessionrowDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionrowDescID is the schema descriptor for id field.
	sessionrowDescID := sessionrowFields[0].Descriptor()
	// sessionrow.DefaultID holds the default value on creation for the id field.
	sessionrow.DefaultID = sessionrowDescID.Default.(func() uuid.UUID)
	uploadsessionFields := schema.UploadSession{}.Fields()
	_ = uploadsessionFields
	// uploadsessionDescOriginalFilename is the schema descriptor for original_filename field.
	uploadsessionDescOriginalFilename := uploadsessionFields[1].Descriptor()
	// uploadsession.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	uploadsession.OriginalFilenameValidator = uploadsessionDescOriginalFilename.Validators[0].(func(string) error)
	// uploadsessionDescStatus is the schema descriptor for status field.
	uploadsessionDescStatus := uploadsessionFields[4].Descriptor()
	// uploadsession.DefaultStatus holds the default value on creation for the status field.
	uploadsession.DefaultStatus = uploadsessionDescStatus.Default.(string)
	// uploadsession.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	uploadsession.StatusValidator = uploadsessionDescStatus.Validators[0].(func(string) error)
	// uploadsessionDescRowCount is the schema descriptor for row_count field.
	uploadsessionDescRowCount := uploadsessionFields[5].Descriptor()
	// uploadsession.DefaultRowCount holds the default value on creation for the row_count field.
	uploadsession.DefaultRowCount = uploadsessionDescRowCount.Default.(int)
	// uploadsession.RowCountValidator is a validator for the "row_count" field. It is called by the builders before save.
	uploadsession.RowCountValidator = uploadsessionDescRowCount.Validators[0].(func(int) error)
	// uploadsessionDescCreatedAt is the schema descriptor for created_at field.
	uploadsessionDescCreatedAt := uploadsessionFields[8].Descriptor()
	// uploadsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	uploadsession.DefaultCreatedAt = uploadsessionDescCreatedAt.Default.(func() time.Time)
	// uploadsessionDescUpdatedAt is the schema descriptor for updated_at field.
	uploadsessionDescUpdatedAt := uploadsessionFields[9].Descriptor()
	// uploadsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	uploadsession.DefaultUpdatedAt = uploadsessionDescUpdatedAt.Default.(func() time.Time)
	// uploadsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	uploadsession.UpdateDefaultUpdatedAt = uploadsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// uploadsessionDescID is the schema descriptor for id field.
	uploadsessionDescID := uploadsessionFields[0].Descriptor()
	// uploadsession.DefaultID holds the default value on creation for the id field.
	uploadsession.DefaultID = uploadsessionDescID.Default.(func() uuid.UUID)
}
