// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/google/uuid"
)

// UploadSession is the model entity for the UploadSession schema.
type UploadSession struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename string `json:"original_filename,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// MarketplaceID holds the value of the "marketplace_id" field.
	MarketplaceID *uuid.UUID `json:"marketplace_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// RowCount holds the value of the "row_count" field.
	RowCount int `json:"row_count,omitempty"`
	// UserColumns holds the value of the "user_columns" field.
	UserColumns []entity.SourceColumn `json:"user_columns,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UploadSessionQuery when eager-loading is set.
	Edges        UploadSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UploadSessionEdges holds the relations/edges for other nodes in the graph.
type UploadSessionEdges struct {
	// Marketplace holds the value of the marketplace edge.
	Marketplace *Marketplace `json:"marketplace,omitempty"`
	// Rows holds the value of the rows edge.
	Rows []*SessionRow `json:"rows,omitempty"`
	// Mappings holds the value of the mappings edge.
	Mappings []*FieldMapping `json:"mappings,omitempty"`
	// GeneratedFiles holds the value of the generated_files edge.
	GeneratedFiles []*GeneratedFile `json:"generated_files,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// MarketplaceOrErr returns the Marketplace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UploadSessionEdges) MarketplaceOrErr() (*Marketplace, error) {
	if e.Marketplace != nil {
		return e.Marketplace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: marketplace.Label}
	}
	return nil, &NotLoadedError{edge: "marketplace"}
}

// RowsOrErr returns the Rows value or an error if the edge
// was not loaded in eager-loading.
func (e UploadSessionEdges) RowsOrErr() ([]*SessionRow, error) {
	if e.loadedTypes[1] {
		return e.Rows, nil
	}
	return nil, &NotLoadedError{edge: "rows"}
}

// MappingsOrErr returns the Mappings value or an error if the edge
// was not loaded in eager-loading.
func (e UploadSessionEdges) MappingsOrErr() ([]*FieldMapping, error) {
	if e.loadedTypes[2] {
		return e.Mappings, nil
	}
	return nil, &NotLoadedError{edge: "mappings"}
}

// GeneratedFilesOrErr returns the GeneratedFiles value or an error if the edge
// was not loaded in eager-loading.
func (e UploadSessionEdges) GeneratedFilesOrErr() ([]*GeneratedFile, error) {
	if e.loadedTypes[3] {
		return e.GeneratedFiles, nil
	}
	return nil, &NotLoadedError{edge: "generated_files"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UploadSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uploadsession.FieldMarketplaceID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case uploadsession.FieldUserColumns:
			values[i] = new([]byte)
		case uploadsession.FieldRowCount:
			values[i] = new(sql.NullInt64)
		case uploadsession.FieldOriginalFilename, uploadsession.FieldFilePath, uploadsession.FieldStatus, uploadsession.FieldCategory:
			values[i] = new(sql.NullString)
		case uploadsession.FieldCreatedAt, uploadsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case uploadsession.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UploadSession fields.
func (_m *UploadSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uploadsession.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case uploadsession.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = value.String
			}
		case uploadsession.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case uploadsession.FieldMarketplaceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field marketplace_id", values[i])
			} else if value.Valid {
				_m.MarketplaceID = new(uuid.UUID)
				*_m.MarketplaceID = *value.S.(*uuid.UUID)
			}
		case uploadsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case uploadsession.FieldRowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_count", values[i])
			} else if value.Valid {
				_m.RowCount = int(value.Int64)
			}
		case uploadsession.FieldUserColumns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field user_columns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UserColumns); err != nil {
					return fmt.Errorf("unmarshal field user_columns: %w", err)
				}
			}
		case uploadsession.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		case uploadsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case uploadsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UploadSession.
// This includes values selected through modifiers, order, etc.
func (_m *UploadSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMarketplace queries the "marketplace" edge of the UploadSession entity.
func (_m *UploadSession) QueryMarketplace() *MarketplaceQuery {
	return NewUploadSessionClient(_m.config).QueryMarketplace(_m)
}

// QueryRows queries the "rows" edge of the UploadSession entity.
func (_m *UploadSession) QueryRows() *SessionRowQuery {
	return NewUploadSessionClient(_m.config).QueryRows(_m)
}

// QueryMappings queries the "mappings" edge of the UploadSession entity.
func (_m *UploadSession) QueryMappings() *FieldMappingQuery {
	return NewUploadSessionClient(_m.config).QueryMappings(_m)
}

// QueryGeneratedFiles queries the "generated_files" edge of the UploadSession entity.
func (_m *UploadSession) QueryGeneratedFiles() *GeneratedFileQuery {
	return NewUploadSessionClient(_m.config).QueryGeneratedFiles(_m)
}

// Update returns a builder for updating this UploadSession.
// Note that you need to call UploadSession.Unwrap() before calling this method if this UploadSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UploadSession) Update() *UploadSessionUpdateOne {
	return NewUploadSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UploadSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UploadSession) Unwrap() *UploadSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UploadSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UploadSession) String() string {
	var builder strings.Builder
	builder.WriteString("UploadSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("original_filename=")
	builder.WriteString(_m.OriginalFilename)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	if v := _m.MarketplaceID; v != nil {
		builder.WriteString("marketplace_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("row_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowCount))
	builder.WriteString(", ")
	builder.WriteString("user_columns=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserColumns))
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UploadSessions is a parsable slice of UploadSession.
type UploadSessions []*UploadSession
