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
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/catalogmapper/catalog-mapper/gen/ent/sessionrow"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/google/uuid"
)

// SessionRowUpdate is the builder for updating SessionRow entities.
type SessionRowUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRowMutation
}

// Where appends a list predicates to the SessionRowUpdate builder.
func (_u *SessionRowUpdate) Where(ps ...predicate.SessionRow) *SessionRowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRowUpdate) SetSessionID(v uuid.UUID) *SessionRowUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRowUpdate) SetNillableSessionID(v *uuid.UUID) *SessionRowUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEditedData sets the "edited_data" field.
func (_u *SessionRowUpdate) SetEditedData(v map[string]string) *SessionRowUpdate {
	_u.mutation.SetEditedData(v)
	return _u
}

// ClearEditedData clears the value of the "edited_data" field.
func (_u *SessionRowUpdate) ClearEditedData() *SessionRowUpdate {
	_u.mutation.ClearEditedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SessionRowUpdate) SetCreatedAt(v time.Time) *SessionRowUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SessionRowUpdate) SetNillableCreatedAt(v *time.Time) *SessionRowUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRowUpdate) SetUpdatedAt(v time.Time) *SessionRowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the UploadSession entity.
func (_u *SessionRowUpdate) SetSession(v *UploadSession) *SessionRowUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SessionRowMutation object of the builder.
func (_u *SessionRowUpdate) Mutation() *SessionRowMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the UploadSession entity.
func (_u *SessionRowUpdate) ClearSession() *SessionRowUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRowUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionRowUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionrow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRowUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionRow.session"`)
	}
	return nil
}

func (_u *SessionRowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrow.Table, sessionrow.Columns, sqlgraph.NewFieldSpec(sessionrow.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EditedData(); ok {
		_spec.SetField(sessionrow.FieldEditedData, field.TypeJSON, value)
	}
	if _u.mutation.EditedDataCleared() {
		_spec.ClearField(sessionrow.FieldEditedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sessionrow.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrow.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRowUpdateOne is the builder for updating a single SessionRow entity.
type SessionRowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRowMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRowUpdateOne) SetSessionID(v uuid.UUID) *SessionRowUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRowUpdateOne) SetNillableSessionID(v *uuid.UUID) *SessionRowUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEditedData sets the "edited_data" field.
func (_u *SessionRowUpdateOne) SetEditedData(v map[string]string) *SessionRowUpdateOne {
	_u.mutation.SetEditedData(v)
	return _u
}

// ClearEditedData clears the value of the "edited_data" field.
func (_u *SessionRowUpdateOne) ClearEditedData() *SessionRowUpdateOne {
	_u.mutation.ClearEditedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SessionRowUpdateOne) SetCreatedAt(v time.Time) *SessionRowUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SessionRowUpdateOne) SetNillableCreatedAt(v *time.Time) *SessionRowUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRowUpdateOne) SetUpdatedAt(v time.Time) *SessionRowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the UploadSession entity.
func (_u *SessionRowUpdateOne) SetSession(v *UploadSession) *SessionRowUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SessionRowMutation object of the builder.
func (_u *SessionRowUpdateOne) Mutation() *SessionRowMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the UploadSession entity.
func (_u *SessionRowUpdateOne) ClearSession() *SessionRowUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the SessionRowUpdate builder.
func (_u *SessionRowUpdateOne) Where(ps ...predicate.SessionRow) *SessionRowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRowUpdateOne) Select(field string, fields ...string) *SessionRowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRow entity.
func (_u *SessionRowUpdateOne) Save(ctx context.Context) (*SessionRow, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRowUpdateOne) SaveX(ctx context.Context) *SessionRow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionRowUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionrow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRowUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionRow.session"`)
	}
	return nil
}

func (_u *SessionRowUpdateOne) sqlSave(ctx context.Context) (_node *SessionRow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrow.Table, sessionrow.Columns, sqlgraph.NewFieldSpec(sessionrow.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrow.FieldID)
		for _, f := range fields {
			if !sessionrow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrow.FieldID {
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
	if value, ok := _u.mutation.EditedData(); ok {
		_spec.SetField(sessionrow.FieldEditedData, field.TypeJSON, value)
	}
	if _u.mutation.EditedDataCleared() {
		_spec.ClearField(sessionrow.FieldEditedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sessionrow.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrow.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SessionRow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
