// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/catalogmapper/catalog-mapper/gen/ent/generatedfile"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/google/uuid"
)

// GeneratedFile is the model entity for the GeneratedFile schema.
type GeneratedFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID uuid.UUID `json:"session_id,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// OutputFormat holds the value of the "output_format" field.
	OutputFormat string `json:"output_format,omitempty"`
	// RowCount holds the value of the "row_count" field.
	RowCount int `json:"row_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GeneratedFileQuery when eager-loading is set.
	Edges        GeneratedFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GeneratedFileEdges holds the relations/edges for other nodes in the graph.
type GeneratedFileEdges struct {
	// Session holds the value of the session edge.
	Session *UploadSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GeneratedFileEdges) SessionOrErr() (*UploadSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: uploadsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GeneratedFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generatedfile.FieldRowCount:
			values[i] = new(sql.NullInt64)
		case generatedfile.FieldFilePath, generatedfile.FieldOutputFormat:
			values[i] = new(sql.NullString)
		case generatedfile.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case generatedfile.FieldID, generatedfile.FieldSessionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GeneratedFile fields.
func (_m *GeneratedFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generatedfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case generatedfile.FieldSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case generatedfile.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case generatedfile.FieldOutputFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_format", values[i])
			} else if value.Valid {
				_m.OutputFormat = value.String
			}
		case generatedfile.FieldRowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_count", values[i])
			} else if value.Valid {
				_m.RowCount = int(value.Int64)
			}
		case generatedfile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GeneratedFile.
// This includes values selected through modifiers, order, etc.
func (_m *GeneratedFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the GeneratedFile entity.
func (_m *GeneratedFile) QuerySession() *UploadSessionQuery {
	return NewGeneratedFileClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this GeneratedFile.
// Note that you need to call GeneratedFile.Unwrap() before calling this method if this GeneratedFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GeneratedFile) Update() *GeneratedFileUpdateOne {
	return NewGeneratedFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GeneratedFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GeneratedFile) Unwrap() *GeneratedFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GeneratedFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GeneratedFile) String() string {
	var builder strings.Builder
	builder.WriteString("GeneratedFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("output_format=")
	builder.WriteString(_m.OutputFormat)
	builder.WriteString(", ")
	builder.WriteString("row_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GeneratedFiles is a parsable slice of GeneratedFile.
type GeneratedFiles []*GeneratedFile
