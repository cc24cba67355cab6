// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/catalogmapper/catalog-mapper/gen/ent/generatedfile"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/google/uuid"
)

// GeneratedFileUpdate is the builder for updating GeneratedFile entities.
type GeneratedFileUpdate struct {
	config
	hooks    []Hook
	mutation *GeneratedFileMutation
}

// Where appends a list predicates to the GeneratedFileUpdate builder.
func (_u *GeneratedFileUpdate) Where(ps ...predicate.GeneratedFile) *GeneratedFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GeneratedFileUpdate) SetSessionID(v uuid.UUID) *GeneratedFileUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GeneratedFileUpdate) SetNillableSessionID(v *uuid.UUID) *GeneratedFileUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *GeneratedFileUpdate) SetFilePath(v string) *GeneratedFileUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *GeneratedFileUpdate) SetNillableFilePath(v *string) *GeneratedFileUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *GeneratedFileUpdate) ClearFilePath() *GeneratedFileUpdate {
	_u.mutation.ClearFilePath()
	return _u
}

// SetOutputFormat sets the "output_format" field.
func (_u *GeneratedFileUpdate) SetOutputFormat(v string) *GeneratedFileUpdate {
	_u.mutation.SetOutputFormat(v)
	return _u
}

// SetNillableOutputFormat sets the "output_format" field if the given value is not nil.
func (_u *GeneratedFileUpdate) SetNillableOutputFormat(v *string) *GeneratedFileUpdate {
	if v != nil {
		_u.SetOutputFormat(*v)
	}
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *GeneratedFileUpdate) SetRowCount(v int) *GeneratedFileUpdate {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *GeneratedFileUpdate) SetNillableRowCount(v *int) *GeneratedFileUpdate {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *GeneratedFileUpdate) AddRowCount(v int) *GeneratedFileUpdate {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GeneratedFileUpdate) SetCreatedAt(v time.Time) *GeneratedFileUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GeneratedFileUpdate) SetNillableCreatedAt(v *time.Time) *GeneratedFileUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the UploadSession entity.
func (_u *GeneratedFileUpdate) SetSession(v *UploadSession) *GeneratedFileUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the GeneratedFileMutation object of the builder.
func (_u *GeneratedFileUpdate) Mutation() *GeneratedFileMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the UploadSession entity.
func (_u *GeneratedFileUpdate) ClearSession() *GeneratedFileUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeneratedFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeneratedFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedFileUpdate) check() error {
	if v, ok := _u.mutation.OutputFormat(); ok {
		if err := generatedfile.OutputFormatValidator(v); err != nil {
			return &ValidationError{Name: "output_format", err: fmt.Errorf(`ent: validator failed for field "GeneratedFile.output_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RowCount(); ok {
		if err := generatedfile.RowCountValidator(v); err != nil {
			return &ValidationError{Name: "row_count", err: fmt.Errorf(`ent: validator failed for field "GeneratedFile.row_count": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedFile.session"`)
	}
	return nil
}

func (_u *GeneratedFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedfile.Table, generatedfile.Columns, sqlgraph.NewFieldSpec(generatedfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(generatedfile.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(generatedfile.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.OutputFormat(); ok {
		_spec.SetField(generatedfile.FieldOutputFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(generatedfile.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(generatedfile.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(generatedfile.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeneratedFileUpdateOne is the builder for updating a single GeneratedFile entity.
type GeneratedFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeneratedFileMutation
}

// SetSessionID sets the "session_id" field.
func (_u *GeneratedFileUpdateOne) SetSessionID(v uuid.UUID) *GeneratedFileUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GeneratedFileUpdateOne) SetNillableSessionID(v *uuid.UUID) *GeneratedFileUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *GeneratedFileUpdateOne) SetFilePath(v string) *GeneratedFileUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *GeneratedFileUpdateOne) SetNillableFilePath(v *string) *GeneratedFileUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *GeneratedFileUpdateOne) ClearFilePath() *GeneratedFileUpdateOne {
	_u.mutation.ClearFilePath()
	return _u
}

// SetOutputFormat sets the "output_format" field.
func (_u *GeneratedFileUpdateOne) SetOutputFormat(v string) *GeneratedFileUpdateOne {
	_u.mutation.SetOutputFormat(v)
	return _u
}

// SetNillableOutputFormat sets the "output_format" field if the given value is not nil.
func (_u *GeneratedFileUpdateOne) SetNillableOutputFormat(v *string) *GeneratedFileUpdateOne {
	if v != nil {
		_u.SetOutputFormat(*v)
	}
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *GeneratedFileUpdateOne) SetRowCount(v int) *GeneratedFileUpdateOne {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *GeneratedFileUpdateOne) SetNillableRowCount(v *int) *GeneratedFileUpdateOne {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *GeneratedFileUpdateOne) AddRowCount(v int) *GeneratedFileUpdateOne {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GeneratedFileUpdateOne) SetCreatedAt(v time.Time) *GeneratedFileUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GeneratedFileUpdateOne) SetNillableCreatedAt(v *time.Time) *GeneratedFileUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the UploadSession entity.
func (_u *GeneratedFileUpdateOne) SetSession(v *UploadSession) *GeneratedFileUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the GeneratedFileMutation object of the builder.
func (_u *GeneratedFileUpdateOne) Mutation() *GeneratedFileMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the UploadSession entity.
func (_u *GeneratedFileUpdateOne) ClearSession() *GeneratedFileUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the GeneratedFileUpdate builder.
func (_u *GeneratedFileUpdateOne) Where(ps ...predicate.GeneratedFile) *GeneratedFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeneratedFileUpdateOne) Select(field string, fields ...string) *GeneratedFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeneratedFile entity.
func (_u *GeneratedFileUpdateOne) Save(ctx context.Context) (*GeneratedFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedFileUpdateOne) SaveX(ctx context.Context) *GeneratedFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeneratedFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedFileUpdateOne) check() error {
	if v, ok := _u.mutation.OutputFormat(); ok {
		if err := generatedfile.OutputFormatValidator(v); err != nil {
			return &ValidationError{Name: "output_format", err: fmt.Errorf(`ent: validator failed for field "GeneratedFile.output_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RowCount(); ok {
		if err := generatedfile.RowCountValidator(v); err != nil {
			return &ValidationError{Name: "row_count", err: fmt.Errorf(`ent: validator failed for field "GeneratedFile.row_count": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GeneratedFile.session"`)
	}
	return nil
}

func (_u *GeneratedFileUpdateOne) sqlSave(ctx context.Context) (_node *GeneratedFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedfile.Table, generatedfile.Columns, sqlgraph.NewFieldSpec(generatedfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeneratedFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generatedfile.FieldID)
		for _, f := range fields {
			if !generatedfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generatedfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(generatedfile.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(generatedfile.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.OutputFormat(); ok {
		_spec.SetField(generatedfile.FieldOutputFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(generatedfile.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(generatedfile.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(generatedfile.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GeneratedFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
