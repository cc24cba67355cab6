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
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplacefield"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/google/uuid"
)

// MarketplaceUpdate is the builder for updating Marketplace entities.
type MarketplaceUpdate struct {
	config
	hooks    []Hook
	mutation *MarketplaceMutation
}

// Where appends a list predicates to the MarketplaceUpdate builder.
func (_u *MarketplaceUpdate) Where(ps ...predicate.Marketplace) *MarketplaceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MarketplaceUpdate) SetName(v string) *MarketplaceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MarketplaceUpdate) SetNillableName(v *string) *MarketplaceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *MarketplaceUpdate) SetDisplayName(v string) *MarketplaceUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *MarketplaceUpdate) SetNillableDisplayName(v *string) *MarketplaceUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetTemplateFilePath sets the "template_file_path" field.
func (_u *MarketplaceUpdate) SetTemplateFilePath(v string) *MarketplaceUpdate {
	_u.mutation.SetTemplateFilePath(v)
	return _u
}

// SetNillableTemplateFilePath sets the "template_file_path" field if the given value is not nil.
func (_u *MarketplaceUpdate) SetNillableTemplateFilePath(v *string) *MarketplaceUpdate {
	if v != nil {
		_u.SetTemplateFilePath(*v)
	}
	return _u
}

// ClearTemplateFilePath clears the value of the "template_file_path" field.
func (_u *MarketplaceUpdate) ClearTemplateFilePath() *MarketplaceUpdate {
	_u.mutation.ClearTemplateFilePath()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MarketplaceUpdate) SetCreatedAt(v time.Time) *MarketplaceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MarketplaceUpdate) SetNillableCreatedAt(v *time.Time) *MarketplaceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddFieldIDs adds the "fields" edge to the MarketplaceField entity by IDs.
func (_u *MarketplaceUpdate) AddFieldIDs(ids ...uuid.UUID) *MarketplaceUpdate {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the MarketplaceField entity.
func (_u *MarketplaceUpdate) AddFields(v ...*MarketplaceField) *MarketplaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the UploadSession entity by IDs.
func (_u *MarketplaceUpdate) AddSessionIDs(ids ...uuid.UUID) *MarketplaceUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the UploadSession entity.
func (_u *MarketplaceUpdate) AddSessions(v ...*UploadSession) *MarketplaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the MarketplaceMutation object of the builder.
func (_u *MarketplaceUpdate) Mutation() *MarketplaceMutation {
	return _u.mutation
}

// ClearFields clears all "fields" edges to the MarketplaceField entity.
func (_u *MarketplaceUpdate) ClearFields() *MarketplaceUpdate {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to MarketplaceField entities by IDs.
func (_u *MarketplaceUpdate) RemoveFieldIDs(ids ...uuid.UUID) *MarketplaceUpdate {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to MarketplaceField entities.
func (_u *MarketplaceUpdate) RemoveFields(v ...*MarketplaceField) *MarketplaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the UploadSession entity.
func (_u *MarketplaceUpdate) ClearSessions() *MarketplaceUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to UploadSession entities by IDs.
func (_u *MarketplaceUpdate) RemoveSessionIDs(ids ...uuid.UUID) *MarketplaceUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to UploadSession entities.
func (_u *MarketplaceUpdate) RemoveSessions(v ...*UploadSession) *MarketplaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MarketplaceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketplaceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MarketplaceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketplaceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MarketplaceUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := marketplace.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Marketplace.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := marketplace.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Marketplace.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *MarketplaceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(marketplace.Table, marketplace.Columns, sqlgraph.NewFieldSpec(marketplace.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(marketplace.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(marketplace.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateFilePath(); ok {
		_spec.SetField(marketplace.FieldTemplateFilePath, field.TypeString, value)
	}
	if _u.mutation.TemplateFilePathCleared() {
		_spec.ClearField(marketplace.FieldTemplateFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(marketplace.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   marketplace.FieldsTable,
			Columns: []string{marketplace.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(marketplacefield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   marketplace.FieldsTable,
			Columns: []string{marketplace.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(marketplacefield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   marketplace.FieldsTable,
			Columns: []string{marketplace.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(marketplacefield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   marketplace.SessionsTable,
			Columns: []string{marketplace.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   marketplace.SessionsTable,
			Columns: []string{marketplace.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   marketplace.SessionsTable,
			Columns: []string{marketplace.SessionsColumn},
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
			err = &NotFoundError{marketplace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MarketplaceUpdateOne is the builder for updating a single Marketplace entity.
type MarketplaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MarketplaceMutation
}

// SetName sets the "name" field.
func (_u *MarketplaceUpdateOne) SetName(v string) *MarketplaceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MarketplaceUpdateOne) SetNillableName(v *string) *MarketplaceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *MarketplaceUpdateOne) SetDisplayName(v string) *MarketplaceUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *MarketplaceUpdateOne) SetNillableDisplayName(v *string) *MarketplaceUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetTemplateFilePath sets the "template_file_path" field.
func (_u *MarketplaceUpdateOne) SetTemplateFilePath(v string) *MarketplaceUpdateOne {
	_u.mutation.SetTemplateFilePath(v)
	return _u
}

// SetNillableTemplateFilePath sets the "template_file_path" field if the given value is not nil.
func (_u *MarketplaceUpdateOne) SetNillableTemplateFilePath(v *string) *MarketplaceUpdateOne {
	if v != nil {
		_u.SetTemplateFilePath(*v)
	}
	return _u
}

// ClearTemplateFilePath clears the value of the "template_file_path" field.
func (_u *MarketplaceUpdateOne) ClearTemplateFilePath() *MarketplaceUpdateOne {
	_u.mutation.ClearTemplateFilePath()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MarketplaceUpdateOne) SetCreatedAt(v time.Time) *MarketplaceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MarketplaceUpdateOne) SetNillableCreatedAt(v *time.Time) *MarketplaceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddFieldIDs adds the "fields" edge to the MarketplaceField entity by IDs.
func (_u *MarketplaceUpdateOne) AddFieldIDs(ids ...uuid.UUID) *MarketplaceUpdateOne {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the MarketplaceField entity.
func (_u *MarketplaceUpdateOne) AddFields(v ...*MarketplaceField) *MarketplaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the UploadSession entity by IDs.
func (_u *MarketplaceUpdateOne) AddSessionIDs(ids ...uuid.UUID) *MarketplaceUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the UploadSession entity.
func (_u *MarketplaceUpdateOne) AddSessions(v ...*UploadSession) *MarketplaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the MarketplaceMutation object of the builder.
func (_u *MarketplaceUpdateOne) Mutation() *MarketplaceMutation {
	return _u.mutation
}

// ClearFields clears all "fields" edges to the MarketplaceField entity.
func (_u *MarketplaceUpdateOne) ClearFields() *MarketplaceUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to MarketplaceField entities by IDs.
func (_u *MarketplaceUpdateOne) RemoveFieldIDs(ids ...uuid.UUID) *MarketplaceUpdateOne {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to MarketplaceField entities.
func (_u *MarketplaceUpdateOne) RemoveFields(v ...*MarketplaceField) *MarketplaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the UploadSession entity.
func (_u *MarketplaceUpdateOne) ClearSessions() *MarketplaceUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to UploadSession entities by IDs.
func (_u *MarketplaceUpdateOne) RemoveSessionIDs(ids ...uuid.UUID) *MarketplaceUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to UploadSession entities.
func (_u *MarketplaceUpdateOne) RemoveSessions(v ...*UploadSession) *MarketplaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the MarketplaceUpdate builder.
func (_u *MarketplaceUpdateOne) Where(ps ...predicate.Marketplace) *MarketplaceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MarketplaceUpdateOne) Select(field string, fields ...string) *MarketplaceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Marketplace entity.
func (_u *MarketplaceUpdateOne) Save(ctx context.Context) (*Marketplace, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketplaceUpdateOne) SaveX(ctx context.Context) *Marketplace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MarketplaceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketplaceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MarketplaceUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := marketplace.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Marketplace.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := marketplace.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Marketplace.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *MarketplaceUpdateOne) sqlSave(ctx context.Context) (_node *Marketplace, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(marketplace.Table, marketplace.Columns, sqlgraph.NewFieldSpec(marketplace.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Marketplace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, marketplace.FieldID)
		for _, f := range fields {
			if !marketplace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != marketplace.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(marketplace.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(marketplace.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateFilePath(); ok {
		_spec.SetField(marketplace.FieldTemplateFilePath, field.TypeString, value)
	}
	if _u.mutation.TemplateFilePathCleared() {
		_spec.ClearField(marketplace.FieldTemplateFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(marketplace.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   marketplace.FieldsTable,
			Columns: []string{marketplace.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(marketplacefield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   marketplace.FieldsTable,
			Columns: []string{marketplace.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(marketplacefield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   marketplace.FieldsTable,
			Columns: []string{marketplace.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(marketplacefield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   marketplace.SessionsTable,
			Columns: []string{marketplace.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   marketplace.SessionsTable,
			Columns: []string{marketplace.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   marketplace.SessionsTable,
			Columns: []string{marketplace.SessionsColumn},
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
	_node = &Marketplace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{marketplace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
