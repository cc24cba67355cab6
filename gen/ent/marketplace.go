// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/google/uuid"
)

// Marketplace is the model entity for the Marketplace schema.
type Marketplace struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// TemplateFilePath holds the value of the "template_file_path" field.
	TemplateFilePath *string `json:"template_file_path,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MarketplaceQuery when eager-loading is set.
	Edges        MarketplaceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MarketplaceEdges holds the relations/edges for other nodes in the graph.
type MarketplaceEdges struct {
	// Fields holds the value of the fields edge.
	Fields []*MarketplaceField `json:"fields,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*UploadSession `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FieldsOrErr returns the Fields value or an error if the edge
// was not loaded in eager-loading.
func (e MarketplaceEdges) FieldsOrErr() ([]*MarketplaceField, error) {
	if e.loadedTypes[0] {
		return e.Fields, nil
	}
	return nil, &NotLoadedError{edge: "fields"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e MarketplaceEdges) SessionsOrErr() ([]*UploadSession, error) {
	if e.loadedTypes[1] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Marketplace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case marketplace.FieldName, marketplace.FieldDisplayName, marketplace.FieldTemplateFilePath:
			values[i] = new(sql.NullString)
		case marketplace.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case marketplace.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Marketplace fields.
func (_m *Marketplace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case marketplace.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case marketplace.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case marketplace.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case marketplace.FieldTemplateFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_file_path", values[i])
			} else if value.Valid {
				_m.TemplateFilePath = new(string)
				*_m.TemplateFilePath = value.String
			}
		case marketplace.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Marketplace.
// This includes values selected through modifiers, order, etc.
func (_m *Marketplace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFields queries the "fields" edge of the Marketplace entity.
func (_m *Marketplace) QueryFields() *MarketplaceFieldQuery {
	return NewMarketplaceClient(_m.config).QueryFields(_m)
}

// QuerySessions queries the "sessions" edge of the Marketplace entity.
func (_m *Marketplace) QuerySessions() *UploadSessionQuery {
	return NewMarketplaceClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this Marketplace.
// Note that you need to call Marketplace.Unwrap() before calling this method if this Marketplace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Marketplace) Update() *MarketplaceUpdateOne {
	return NewMarketplaceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Marketplace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Marketplace) Unwrap() *Marketplace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Marketplace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Marketplace) String() string {
	var builder strings.Builder
	builder.WriteString("Marketplace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	if v := _m.TemplateFilePath; v != nil {
		builder.WriteString("template_file_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Marketplaces is a parsable slice of Marketplace.
type Marketplaces []*Marketplace
