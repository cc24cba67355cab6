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
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplacefield"
	"github.com/google/uuid"
)

// MarketplaceField is the model entity for the MarketplaceField schema.
type MarketplaceField struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MarketplaceID holds the value of the "marketplace_id" field.
	MarketplaceID uuid.UUID `json:"marketplace_id,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName *string `json:"display_name,omitempty"`
	// IsRequired holds the value of the "is_required" field.
	IsRequired bool `json:"is_required,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// SampleValues holds the value of the "sample_values" field.
	SampleValues []string `json:"sample_values,omitempty"`
	// FieldOrder holds the value of the "field_order" field.
	FieldOrder *int `json:"field_order,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MarketplaceFieldQuery when eager-loading is set.
	Edges        MarketplaceFieldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MarketplaceFieldEdges holds the relations/edges for other nodes in the graph.
type MarketplaceFieldEdges struct {
	// Marketplace holds the value of the marketplace edge.
	Marketplace *Marketplace `json:"marketplace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MarketplaceOrErr returns the Marketplace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MarketplaceFieldEdges) MarketplaceOrErr() (*Marketplace, error) {
	if e.Marketplace != nil {
		return e.Marketplace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: marketplace.Label}
	}
	return nil, &NotLoadedError{edge: "marketplace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MarketplaceField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case marketplacefield.FieldSampleValues:
			values[i] = new([]byte)
		case marketplacefield.FieldIsRequired:
			values[i] = new(sql.NullBool)
		case marketplacefield.FieldFieldOrder:
			values[i] = new(sql.NullInt64)
		case marketplacefield.FieldFieldName, marketplacefield.FieldDisplayName, marketplacefield.FieldDescription, marketplacefield.FieldCategory:
			values[i] = new(sql.NullString)
		case marketplacefield.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case marketplacefield.FieldID, marketplacefield.FieldMarketplaceID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MarketplaceField fields.
func (_m *MarketplaceField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case marketplacefield.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case marketplacefield.FieldMarketplaceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field marketplace_id", values[i])
			} else if value != nil {
				_m.MarketplaceID = *value
			}
		case marketplacefield.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case marketplacefield.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = new(string)
				*_m.DisplayName = value.String
			}
		case marketplacefield.FieldIsRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_required", values[i])
			} else if value.Valid {
				_m.IsRequired = value.Bool
			}
		case marketplacefield.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case marketplacefield.FieldSampleValues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sample_values", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SampleValues); err != nil {
					return fmt.Errorf("unmarshal field sample_values: %w", err)
				}
			}
		case marketplacefield.FieldFieldOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field field_order", values[i])
			} else if value.Valid {
				_m.FieldOrder = new(int)
				*_m.FieldOrder = int(value.Int64)
			}
		case marketplacefield.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		case marketplacefield.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MarketplaceField.
// This includes values selected through modifiers, order, etc.
func (_m *MarketplaceField) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMarketplace queries the "marketplace" edge of the MarketplaceField entity.
func (_m *MarketplaceField) QueryMarketplace() *MarketplaceQuery {
	return NewMarketplaceFieldClient(_m.config).QueryMarketplace(_m)
}

// Update returns a builder for updating this MarketplaceField.
// Note that you need to call MarketplaceField.Unwrap() before calling this method if this MarketplaceField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MarketplaceField) Update() *MarketplaceFieldUpdateOne {
	return NewMarketplaceFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MarketplaceField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MarketplaceField) Unwrap() *MarketplaceField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MarketplaceField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MarketplaceField) String() string {
	var builder strings.Builder
	builder.WriteString("MarketplaceField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("marketplace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MarketplaceID))
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	if v := _m.DisplayName; v != nil {
		builder.WriteString("display_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRequired))
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("sample_values=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleValues))
	builder.WriteString(", ")
	if v := _m.FieldOrder; v != nil {
		builder.WriteString("field_order=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MarketplaceFields is a parsable slice of MarketplaceField.
type MarketplaceFields []*MarketplaceField
