// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/catalogmapper/catalog-mapper/gen/ent/sessionrow"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/google/uuid"
)

// SessionRowCreate is the builder for creating a SessionRow entity.
type SessionRowCreate struct {
	config
	mutation *SessionRowMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionRowCreate) SetSessionID(v uuid.UUID) *SessionRowCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *SessionRowCreate) SetRowIndex(v int) *SessionRowCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetData sets the "data" field.
func (_c *SessionRowCreate) SetData(v map[string]string) *SessionRowCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetEditedData sets the "edited_data" field.
func (_c *SessionRowCreate) SetEditedData(v map[string]string) *SessionRowCreate {
	_c.mutation.SetEditedData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionRowCreate) SetCreatedAt(v time.Time) *SessionRowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionRowCreate) SetNillableCreatedAt(v *time.Time) *SessionRowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionRowCreate) SetUpdatedAt(v time.Time) *SessionRowCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionRowCreate) SetNillableUpdatedAt(v *time.Time) *SessionRowCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionRowCreate) SetID(v uuid.UUID) *SessionRowCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionRowCreate) SetNillableID(v *uuid.UUID) *SessionRowCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the UploadSession entity.
func (_c *SessionRowCreate) SetSession(v *UploadSession) *SessionRowCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SessionRowMutation object of the builder.
func (_c *SessionRowCreate) Mutation() *SessionRowMutation {
	return _c.mutation
}

// Save creates the SessionRow in the database.
func (_c *SessionRowCreate) Save(ctx context.Context) (*SessionRow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRowCreate) SaveX(ctx context.Context) *SessionRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRowCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionrow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionrow.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sessionrow.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRowCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionRow.session_id"`)}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "SessionRow.row_index"`)}
	}
	if v, ok := _c.mutation.RowIndex(); ok {
		if err := sessionrow.RowIndexValidator(v); err != nil {
			return &ValidationError{Name: "row_index", err: fmt.Errorf(`ent: validator failed for field "SessionRow.row_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "SessionRow.data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionRow.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionRow.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SessionRow.session"`)}
	}
	return nil
}

func (_c *SessionRowCreate) sqlSave(ctx context.Context) (*SessionRow, error) {
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

func (_c *SessionRowCreate) createSpec() (*SessionRow, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrow.Table, sqlgraph.NewFieldSpec(sessionrow.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(sessionrow.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(sessionrow.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.EditedData(); ok {
		_spec.SetField(sessionrow.FieldEditedData, field.TypeJSON, value)
		_node.EditedData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionrow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrow.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessionrow.SessionTable,
			Columns: []string{sessionrow.SessionColumn},
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

// SessionRowCreateBulk is the builder for creating many SessionRow entities in bulk.
type SessionRowCreateBulk struct {
	config
	err      error
	builders []*SessionRowCreate
}

// Save creates the SessionRow entities in the database.
func (_c *SessionRowCreateBulk) Save(ctx context.Context) ([]*SessionRow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRowMutation)
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
func (_c *SessionRowCreateBulk) SaveX(ctx context.Context) []*SessionRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
