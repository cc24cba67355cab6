// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/catalogmapper/catalog-mapper/gen/ent/generatedfile"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/google/uuid"
)

// GeneratedFileCreate is the builder for creating a GeneratedFile entity.
type GeneratedFileCreate struct {
	config
	mutation *GeneratedFileMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *GeneratedFileCreate) SetSessionID(v uuid.UUID) *GeneratedFileCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *GeneratedFileCreate) SetFilePath(v string) *GeneratedFileCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_c *GeneratedFileCreate) SetNillableFilePath(v *string) *GeneratedFileCreate {
	if v != nil {
		_c.SetFilePath(*v)
	}
	return _c
}

// SetOutputFormat sets the "output_format" field.
func (_c *GeneratedFileCreate) SetOutputFormat(v string) *GeneratedFileCreate {
	_c.mutation.SetOutputFormat(v)
	return _c
}

// SetRowCount sets the "row_count" field.
func (_c *GeneratedFileCreate) SetRowCount(v int) *GeneratedFileCreate {
	_c.mutation.SetRowCount(v)
	return _c
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_c *GeneratedFileCreate) SetNillableRowCount(v *int) *GeneratedFileCreate {
	if v != nil {
		_c.SetRowCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GeneratedFileCreate) SetCreatedAt(v time.Time) *GeneratedFileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GeneratedFileCreate) SetNillableCreatedAt(v *time.Time) *GeneratedFileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GeneratedFileCreate) SetID(v uuid.UUID) *GeneratedFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GeneratedFileCreate) SetNillableID(v *uuid.UUID) *GeneratedFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the UploadSession entity.
func (_c *GeneratedFileCreate) SetSession(v *UploadSession) *GeneratedFileCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the GeneratedFileMutation object of the builder.
func (_c *GeneratedFileCreate) Mutation() *GeneratedFileMutation {
	return _c.mutation
}

// Save creates the GeneratedFile in the database.
func (_c *GeneratedFileCreate) Save(ctx context.Context) (*GeneratedFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeneratedFileCreate) SaveX(ctx context.Context) *GeneratedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeneratedFileCreate) defaults() {
	if _, ok := _c.mutation.RowCount(); !ok {
		v := generatedfile.DefaultRowCount
		_c.mutation.SetRowCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generatedfile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := generatedfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeneratedFileCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "GeneratedFile.session_id"`)}
	}
	if _, ok := _c.mutation.OutputFormat(); !ok {
		return &ValidationError{Name: "output_format", err: errors.New(`ent: missing required field "GeneratedFile.output_format"`)}
	}
	if v, ok := _c.mutation.OutputFormat(); ok {
		if err := generatedfile.OutputFormatValidator(v); err != nil {
			return &ValidationError{Name: "output_format", err: fmt.Errorf(`ent: validator failed for field "GeneratedFile.output_format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RowCount(); !ok {
		return &ValidationError{Name: "row_count", err: errors.New(`ent: missing required field "GeneratedFile.row_count"`)}
	}
	if v, ok := _c.mutation.RowCount(); ok {
		if err := generatedfile.RowCountValidator(v); err != nil {
			return &ValidationError{Name: "row_count", err: fmt.Errorf(`ent: validator failed for field "GeneratedFile.row_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GeneratedFile.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "GeneratedFile.session"`)}
	}
	return nil
}

func (_c *GeneratedFileCreate) sqlSave(ctx context.Context) (*GeneratedFile, error) {
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

func (_c *GeneratedFileCreate) createSpec() (*GeneratedFile, *sqlgraph.CreateSpec) {
	var (
		_node = &GeneratedFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generatedfile.Table, sqlgraph.NewFieldSpec(generatedfile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(generatedfile.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.OutputFormat(); ok {
		_spec.SetField(generatedfile.FieldOutputFormat, field.TypeString, value)
		_node.OutputFormat = value
	}
	if value, ok := _c.mutation.RowCount(); ok {
		_spec.SetField(generatedfile.FieldRowCount, field.TypeInt, value)
		_node.RowCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generatedfile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generatedfile.SessionTable,
			Columns: []string{generatedfile.SessionColumn},
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

// GeneratedFileCreateBulk is the builder for creating many GeneratedFile entities in bulk.
type GeneratedFileCreateBulk struct {
	config
	err      error
	builders []*GeneratedFileCreate
}

// Save creates the GeneratedFile entities in the database.
func (_c *GeneratedFileCreateBulk) Save(ctx context.Context) ([]*GeneratedFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeneratedFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeneratedFileMutation)
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
func (_c *GeneratedFileCreateBulk) SaveX(ctx context.Context) []*GeneratedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
