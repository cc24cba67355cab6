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
	"github.com/catalogmapper/catalog-mapper/gen/ent/fieldmapping"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/google/uuid"
)

// FieldMappingUpdate is the builder for updating FieldMapping entities.
type FieldMappingUpdate struct {
	config
	hooks    []Hook
	mutation *FieldMappingMutation
}

// Where appends a list predicates to the FieldMappingUpdate builder.
func (_u *FieldMappingUpdate) Where(ps ...predicate.FieldMapping) *FieldMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *FieldMappingUpdate) SetSessionID(v uuid.UUID) *FieldMappingUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableSessionID(v *uuid.UUID) *FieldMappingUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserColumn sets the "user_column" field.
func (_u *FieldMappingUpdate) SetUserColumn(v string) *FieldMappingUpdate {
	_u.mutation.SetUserColumn(v)
	return _u
}

// SetNillableUserColumn sets the "user_column" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableUserColumn(v *string) *FieldMappingUpdate {
	if v != nil {
		_u.SetUserColumn(*v)
	}
	return _u
}

// SetFieldID sets the "field_id" field.
func (_u *FieldMappingUpdate) SetFieldID(v uuid.UUID) *FieldMappingUpdate {
	_u.mutation.SetFieldID(v)
	return _u
}

// SetNillableFieldID sets the "field_id" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableFieldID(v *uuid.UUID) *FieldMappingUpdate {
	if v != nil {
		_u.SetFieldID(*v)
	}
	return _u
}

// ClearFieldID clears the value of the "field_id" field.
func (_u *FieldMappingUpdate) ClearFieldID() *FieldMappingUpdate {
	_u.mutation.ClearFieldID()
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *FieldMappingUpdate) SetFieldName(v string) *FieldMappingUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableFieldName(v *string) *FieldMappingUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *FieldMappingUpdate) SetOrigin(v string) *FieldMappingUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableOrigin(v *string) *FieldMappingUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FieldMappingUpdate) SetConfidence(v float32) *FieldMappingUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableConfidence(v *float32) *FieldMappingUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FieldMappingUpdate) AddConfidence(v float32) *FieldMappingUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *FieldMappingUpdate) ClearConfidence() *FieldMappingUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetPosition sets the "position" field.
func (_u *FieldMappingUpdate) SetPosition(v int) *FieldMappingUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillablePosition(v *int) *FieldMappingUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *FieldMappingUpdate) AddPosition(v int) *FieldMappingUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FieldMappingUpdate) SetCreatedAt(v time.Time) *FieldMappingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableCreatedAt(v *time.Time) *FieldMappingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the UploadSession entity.
func (_u *FieldMappingUpdate) SetSession(v *UploadSession) *FieldMappingUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the FieldMappingMutation object of the builder.
func (_u *FieldMappingUpdate) Mutation() *FieldMappingMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the UploadSession entity.
func (_u *FieldMappingUpdate) ClearSession() *FieldMappingUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldMappingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldMappingUpdate) check() error {
	if v, ok := _u.mutation.UserColumn(); ok {
		if err := fieldmapping.UserColumnValidator(v); err != nil {
			return &ValidationError{Name: "user_column", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.user_column": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := fieldmapping.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := fieldmapping.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.origin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := fieldmapping.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.position": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldMapping.session"`)
	}
	return nil
}

func (_u *FieldMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldmapping.Table, fieldmapping.Columns, sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserColumn(); ok {
		_spec.SetField(fieldmapping.FieldUserColumn, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldID(); ok {
		_spec.SetField(fieldmapping.FieldFieldID, field.TypeUUID, value)
	}
	if _u.mutation.FieldIDCleared() {
		_spec.ClearField(fieldmapping.FieldFieldID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(fieldmapping.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(fieldmapping.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(fieldmapping.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(fieldmapping.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(fieldmapping.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(fieldmapping.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(fieldmapping.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fieldmapping.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldMappingUpdateOne is the builder for updating a single FieldMapping entity.
type FieldMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldMappingMutation
}

// SetSessionID sets the "session_id" field.
func (_u *FieldMappingUpdateOne) SetSessionID(v uuid.UUID) *FieldMappingUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableSessionID(v *uuid.UUID) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserColumn sets the "user_column" field.
func (_u *FieldMappingUpdateOne) SetUserColumn(v string) *FieldMappingUpdateOne {
	_u.mutation.SetUserColumn(v)
	return _u
}

// SetNillableUserColumn sets the "user_column" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableUserColumn(v *string) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetUserColumn(*v)
	}
	return _u
}

// SetFieldID sets the "field_id" field.
func (_u *FieldMappingUpdateOne) SetFieldID(v uuid.UUID) *FieldMappingUpdateOne {
	_u.mutation.SetFieldID(v)
	return _u
}

// SetNillableFieldID sets the "field_id" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableFieldID(v *uuid.UUID) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetFieldID(*v)
	}
	return _u
}

// ClearFieldID clears the value of the "field_id" field.
func (_u *FieldMappingUpdateOne) ClearFieldID() *FieldMappingUpdateOne {
	_u.mutation.ClearFieldID()
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *FieldMappingUpdateOne) SetFieldName(v string) *FieldMappingUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableFieldName(v *string) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *FieldMappingUpdateOne) SetOrigin(v string) *FieldMappingUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableOrigin(v *string) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FieldMappingUpdateOne) SetConfidence(v float32) *FieldMappingUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableConfidence(v *float32) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FieldMappingUpdateOne) AddConfidence(v float32) *FieldMappingUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *FieldMappingUpdateOne) ClearConfidence() *FieldMappingUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetPosition sets the "position" field.
func (_u *FieldMappingUpdateOne) SetPosition(v int) *FieldMappingUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillablePosition(v *int) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *FieldMappingUpdateOne) AddPosition(v int) *FieldMappingUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FieldMappingUpdateOne) SetCreatedAt(v time.Time) *FieldMappingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableCreatedAt(v *time.Time) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the UploadSession entity.
func (_u *FieldMappingUpdateOne) SetSession(v *UploadSession) *FieldMappingUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the FieldMappingMutation object of the builder.
func (_u *FieldMappingUpdateOne) Mutation() *FieldMappingMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the UploadSession entity.
func (_u *FieldMappingUpdateOne) ClearSession() *FieldMappingUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the FieldMappingUpdate builder.
func (_u *FieldMappingUpdateOne) Where(ps ...predicate.FieldMapping) *FieldMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldMappingUpdateOne) Select(field string, fields ...string) *FieldMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FieldMapping entity.
func (_u *FieldMappingUpdateOne) Save(ctx context.Context) (*FieldMapping, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldMappingUpdateOne) SaveX(ctx context.Context) *FieldMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldMappingUpdateOne) check() error {
	if v, ok := _u.mutation.UserColumn(); ok {
		if err := fieldmapping.UserColumnValidator(v); err != nil {
			return &ValidationError{Name: "user_column", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.user_column": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := fieldmapping.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := fieldmapping.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.origin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := fieldmapping.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.position": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldMapping.session"`)
	}
	return nil
}

func (_u *FieldMappingUpdateOne) sqlSave(ctx context.Context) (_node *FieldMapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldmapping.Table, fieldmapping.Columns, sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FieldMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fieldmapping.FieldID)
		for _, f := range fields {
			if !fieldmapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fieldmapping.FieldID {
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
	if value, ok := _u.mutation.UserColumn(); ok {
		_spec.SetField(fieldmapping.FieldUserColumn, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldID(); ok {
		_spec.SetField(fieldmapping.FieldFieldID, field.TypeUUID, value)
	}
	if _u.mutation.FieldIDCleared() {
		_spec.ClearField(fieldmapping.FieldFieldID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(fieldmapping.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(fieldmapping.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(fieldmapping.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(fieldmapping.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(fieldmapping.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(fieldmapping.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(fieldmapping.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fieldmapping.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FieldMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
