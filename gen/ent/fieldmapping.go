// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/catalogmapper/catalog-mapper/gen/ent/fieldmapping"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/google/uuid"
)

// FieldMapping is the model entity for the FieldMapping schema.
type FieldMapping struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID uuid.UUID `json:"session_id,omitempty"`
	// UserColumn holds the value of the "user_column" field.
	UserColumn string `json:"user_column,omitempty"`
	// FieldID holds the value of the "field_id" field.
	FieldID *uuid.UUID `json:"field_id,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// Origin holds the value of the "origin" field.
	Origin string `json:"origin,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float32 `json:"confidence,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FieldMappingQuery when eager-loading is set.
	Edges        FieldMappingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FieldMappingEdges holds the relations/edges for other nodes in the graph.
type FieldMappingEdges struct {
	// Session holds the value of the session edge.
	Session *UploadSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FieldMappingEdges) SessionOrErr() (*UploadSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: uploadsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FieldMapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fieldmapping.FieldFieldID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case fieldmapping.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case fieldmapping.FieldPosition:
			values[i] = new(sql.NullInt64)
		case fieldmapping.FieldUserColumn, fieldmapping.FieldFieldName, fieldmapping.FieldOrigin:
			values[i] = new(sql.NullString)
		case fieldmapping.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case fieldmapping.FieldID, fieldmapping.FieldSessionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FieldMapping fields.
func (_m *FieldMapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fieldmapping.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fieldmapping.FieldSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case fieldmapping.FieldUserColumn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_column", values[i])
			} else if value.Valid {
				_m.UserColumn = value.String
			}
		case fieldmapping.FieldFieldID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field field_id", values[i])
			} else if value.Valid {
				_m.FieldID = new(uuid.UUID)
				*_m.FieldID = *value.S.(*uuid.UUID)
			}
		case fieldmapping.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case fieldmapping.FieldOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin", values[i])
			} else if value.Valid {
				_m.Origin = value.String
			}
		case fieldmapping.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float32)
				*_m.Confidence = float32(value.Float64)
			}
		case fieldmapping.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case fieldmapping.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FieldMapping.
// This includes values selected through modifiers, order, etc.
func (_m *FieldMapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the FieldMapping entity.
func (_m *FieldMapping) QuerySession() *UploadSessionQuery {
	return NewFieldMappingClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this FieldMapping.
// Note that you need to call FieldMapping.Unwrap() before calling this method if this FieldMapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FieldMapping) Update() *FieldMappingUpdateOne {
	return NewFieldMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FieldMapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FieldMapping) Unwrap() *FieldMapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FieldMapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FieldMapping) String() string {
	var builder strings.Builder
	builder.WriteString("FieldMapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("user_column=")
	builder.WriteString(_m.UserColumn)
	builder.WriteString(", ")
	if v := _m.FieldID; v != nil {
		builder.WriteString("field_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	builder.WriteString("origin=")
	builder.WriteString(_m.Origin)
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FieldMappings is a parsable slice of FieldMapping.
type FieldMappings []*FieldMapping
