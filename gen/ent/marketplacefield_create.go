// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplacefield"
	"github.com/google/uuid"
)

// MarketplaceFieldCreate is the builder for creating a MarketplaceField entity.
type MarketplaceFieldCreate struct {
	config
	mutation *MarketplaceFieldMutation
	hooks    []Hook
}

// SetMarketplaceID sets the "marketplace_id" field.
func (_c *MarketplaceFieldCreate) SetMarketplaceID(v uuid.UUID) *MarketplaceFieldCreate {
	_c.mutation.SetMarketplaceID(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *MarketplaceFieldCreate) SetFieldName(v string) *MarketplaceFieldCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *MarketplaceFieldCreate) SetDisplayName(v string) *MarketplaceFieldCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *MarketplaceFieldCreate) SetNillableDisplayName(v *string) *MarketplaceFieldCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetIsRequired sets the "is_required" field.
func (_c *MarketplaceFieldCreate) SetIsRequired(v bool) *MarketplaceFieldCreate {
	_c.mutation.SetIsRequired(v)
	return _c
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_c *MarketplaceFieldCreate) SetNillableIsRequired(v *bool) *MarketplaceFieldCreate {
	if v != nil {
		_c.SetIsRequired(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *MarketplaceFieldCreate) SetDescription(v string) *MarketplaceFieldCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MarketplaceFieldCreate) SetNillableDescription(v *string) *MarketplaceFieldCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSampleValues sets the "sample_values" field.
func (_c *MarketplaceFieldCreate) SetSampleValues(v []string) *MarketplaceFieldCreate {
	_c.mutation.SetSampleValues(v)
	return _c
}

// SetFieldOrder sets the "field_order" field.
func (_c *MarketplaceFieldCreate) SetFieldOrder(v int) *MarketplaceFieldCreate {
	_c.mutation.SetFieldOrder(v)
	return _c
}

// SetNillableFieldOrder sets the "field_order" field if the given value is not nil.
func (_c *MarketplaceFieldCreate) SetNillableFieldOrder(v *int) *MarketplaceFieldCreate {
	if v != nil {
		_c.SetFieldOrder(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *MarketplaceFieldCreate) SetCategory(v string) *MarketplaceFieldCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *MarketplaceFieldCreate) SetNillableCategory(v *string) *MarketplaceFieldCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MarketplaceFieldCreate) SetCreatedAt(v time.Time) *MarketplaceFieldCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MarketplaceFieldCreate) SetNillableCreatedAt(v *time.Time) *MarketplaceFieldCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MarketplaceFieldCreate) SetID(v uuid.UUID) *MarketplaceFieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MarketplaceFieldCreate) SetNillableID(v *uuid.UUID) *MarketplaceFieldCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMarketplace sets the "marketplace" edge to the Marketplace entity.
func (_c *MarketplaceFieldCreate) SetMarketplace(v *Marketplace) *MarketplaceFieldCreate {
	return _c.SetMarketplaceID(v.ID)
}

// Mutation returns the MarketplaceFieldMutation object of the builder.
func (_c *MarketplaceFieldCreate) Mutation() *MarketplaceFieldMutation {
	return _c.mutation
}

// Save creates the MarketplaceField in the database.
func (_c *MarketplaceFieldCreate) Save(ctx context.Context) (*MarketplaceField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MarketplaceFieldCreate) SaveX(ctx context.Context) *MarketplaceField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketplaceFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketplaceFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MarketplaceFieldCreate) defaults() {
	if _, ok := _c.mutation.IsRequired(); !ok {
		v := marketplacefield.DefaultIsRequired
		_c.mutation.SetIsRequired(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := marketplacefield.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := marketplacefield.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MarketplaceFieldCreate) check() error {
	if _, ok := _c.mutation.MarketplaceID(); !ok {
		return &ValidationError{Name: "marketplace_id", err: errors.New(`ent: missing required field "MarketplaceField.marketplace_id"`)}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "MarketplaceField.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := marketplacefield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "MarketplaceField.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsRequired(); !ok {
		return &ValidationError{Name: "is_required", err: errors.New(`ent: missing required field "MarketplaceField.is_required"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MarketplaceField.created_at"`)}
	}
	if len(_c.mutation.MarketplaceIDs()) == 0 {
		return &ValidationError{Name: "marketplace", err: errors.New(`ent: missing required edge "MarketplaceField.marketplace"`)}
	}
	return nil
}

func (_c *MarketplaceFieldCreate) sqlSave(ctx context.Context) (*MarketplaceField, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MarketplaceFieldCreate) createSpec() (*MarketplaceField, *sqlgraph.CreateSpec) {
	var (
		_node = &MarketplaceField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(marketplacefield.Table, sqlgraph.NewFieldSpec(marketplacefield.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(marketplacefield.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(marketplacefield.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = &value
	}
	if value, ok := _c.mutation.IsRequired(); ok {
		_spec.SetField(marketplacefield.FieldIsRequired, field.TypeBool, value)
		_node.IsRequired = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(marketplacefield.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.SampleValues(); ok {
		_spec.SetField(marketplacefield.FieldSampleValues, field.TypeJSON, value)
		_node.SampleValues = value
	}
	if value, ok := _c.mutation.FieldOrder(); ok {
		_spec.SetField(marketplacefield.FieldFieldOrder, field.TypeInt, value)
		_node.FieldOrder = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(marketplacefield.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(marketplacefield.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MarketplaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   marketplacefield.MarketplaceTable,
			Columns: []string{marketplacefield.MarketplaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(marketplace.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MarketplaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MarketplaceFieldCreateBulk is the builder for creating many MarketplaceField entities in bulk.
type MarketplaceFieldCreateBulk struct {
	config
	err      error
	builders []*MarketplaceFieldCreate
}

// Save creates the MarketplaceField entities in the database.
func (_c *MarketplaceFieldCreateBulk) Save(ctx context.Context) ([]*MarketplaceField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MarketplaceField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MarketplaceFieldMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MarketplaceFieldCreateBulk) SaveX(ctx context.Context) []*MarketplaceField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketplaceFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketplaceFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
