// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/catalogmapper/catalog-mapper/gen/ent/fieldmapping"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/google/uuid"
)

// FieldMappingCreate is the builder for creating a FieldMapping entity.
type FieldMappingCreate struct {
	config
	mutation *FieldMappingMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *FieldMappingCreate) SetSessionID(v uuid.UUID) *FieldMappingCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserColumn sets the "user_column" field.
func (_c *FieldMappingCreate) SetUserColumn(v string) *FieldMappingCreate {
	_c.mutation.SetUserColumn(v)
	return _c
}

// SetFieldID sets the "field_id" field.
func (_c *FieldMappingCreate) SetFieldID(v uuid.UUID) *FieldMappingCreate {
	_c.mutation.SetFieldID(v)
	return _c
}

// SetNillableFieldID sets the "field_id" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillableFieldID(v *uuid.UUID) *FieldMappingCreate {
	if v != nil {
		_c.SetFieldID(*v)
	}
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *FieldMappingCreate) SetFieldName(v string) *FieldMappingCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *FieldMappingCreate) SetOrigin(v string) *FieldMappingCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillableOrigin(v *string) *FieldMappingCreate {
	if v != nil {
		_c.SetOrigin(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *FieldMappingCreate) SetConfidence(v float32) *FieldMappingCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillableConfidence(v *float32) *FieldMappingCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *FieldMappingCreate) SetPosition(v int) *FieldMappingCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillablePosition(v *int) *FieldMappingCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FieldMappingCreate) SetCreatedAt(v time.Time) *FieldMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillableCreatedAt(v *time.Time) *FieldMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FieldMappingCreate) SetID(v uuid.UUID) *FieldMappingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillableID(v *uuid.UUID) *FieldMappingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the UploadSession entity.
func (_c *FieldMappingCreate) SetSession(v *UploadSession) *FieldMappingCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the FieldMappingMutation object of the builder.
func (_c *FieldMappingCreate) Mutation() *FieldMappingMutation {
	return _c.mutation
}

// Save creates the FieldMapping in the database.
func (_c *FieldMappingCreate) Save(ctx context.Context) (*FieldMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldMappingCreate) SaveX(ctx context.Context) *FieldMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FieldMappingCreate) defaults() {
	if _, ok := _c.mutation.Origin(); !ok {
		v := fieldmapping.DefaultOrigin
		_c.mutation.SetOrigin(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := fieldmapping.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fieldmapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fieldmapping.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldMappingCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "FieldMapping.session_id"`)}
	}
	if _, ok := _c.mutation.UserColumn(); !ok {
		return &ValidationError{Name: "user_column", err: errors.New(`ent: missing required field "FieldMapping.user_column"`)}
	}
	if v, ok := _c.mutation.UserColumn(); ok {
		if err := fieldmapping.UserColumnValidator(v); err != nil {
			return &ValidationError{Name: "user_column", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.user_column": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "FieldMapping.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := fieldmapping.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "FieldMapping.origin"`)}
	}
	if v, ok := _c.mutation.Origin(); ok {
		if err := fieldmapping.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.origin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "FieldMapping.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := fieldmapping.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FieldMapping.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "FieldMapping.session"`)}
	}
	return nil
}

func (_c *FieldMappingCreate) sqlSave(ctx context.Context) (*FieldMapping, error) {
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

func (_c *FieldMappingCreate) createSpec() (*FieldMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &FieldMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fieldmapping.Table, sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserColumn(); ok {
		_spec.SetField(fieldmapping.FieldUserColumn, field.TypeString, value)
		_node.UserColumn = value
	}
	if value, ok := _c.mutation.FieldID(); ok {
		_spec.SetField(fieldmapping.FieldFieldID, field.TypeUUID, value)
		_node.FieldID = &value
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(fieldmapping.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(fieldmapping.FieldOrigin, field.TypeString, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(fieldmapping.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(fieldmapping.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fieldmapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldmapping.SessionTable,
			Columns: []string{fieldmapping.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FieldMappingCreateBulk is the builder for creating many FieldMapping entities in bulk.
type FieldMappingCreateBulk struct {
	config
	err      error
	builders []*FieldMappingCreate
}

// Save creates the FieldMapping entities in the database.
func (_c *FieldMappingCreateBulk) Save(ctx context.Context) ([]*FieldMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FieldMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldMappingMutation)
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
func (_c *FieldMappingCreateBulk) SaveX(ctx context.Context) []*FieldMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
