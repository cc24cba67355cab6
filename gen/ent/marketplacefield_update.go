// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplacefield"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/google/uuid"
)

// MarketplaceFieldUpdate is the builder for updating MarketplaceField entities.
type MarketplaceFieldUpdate struct {
	config
	hooks    []Hook
	mutation *MarketplaceFieldMutation
}

// Where appends a list predicates to the MarketplaceFieldUpdate builder.
func (_u *MarketplaceFieldUpdate) Where(ps ...predicate.MarketplaceField) *MarketplaceFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMarketplaceID sets the "marketplace_id" field.
func (_u *MarketplaceFieldUpdate) SetMarketplaceID(v uuid.UUID) *MarketplaceFieldUpdate {
	_u.mutation.SetMarketplaceID(v)
	return _u
}

// SetNillableMarketplaceID sets the "marketplace_id" field if the given value is not nil.
func (_u *MarketplaceFieldUpdate) SetNillableMarketplaceID(v *uuid.UUID) *MarketplaceFieldUpdate {
	if v != nil {
		_u.SetMarketplaceID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *MarketplaceFieldUpdate) SetFieldName(v string) *MarketplaceFieldUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *MarketplaceFieldUpdate) SetNillableFieldName(v *string) *MarketplaceFieldUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *MarketplaceFieldUpdate) SetDisplayName(v string) *MarketplaceFieldUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *MarketplaceFieldUpdate) SetNillableDisplayName(v *string) *MarketplaceFieldUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *MarketplaceFieldUpdate) ClearDisplayName() *MarketplaceFieldUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetIsRequired sets the "is_required" field.
func (_u *MarketplaceFieldUpdate) SetIsRequired(v bool) *MarketplaceFieldUpdate {
	_u.mutation.SetIsRequired(v)
	return _u
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_u *MarketplaceFieldUpdate) SetNillableIsRequired(v *bool) *MarketplaceFieldUpdate {
	if v != nil {
		_u.SetIsRequired(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MarketplaceFieldUpdate) SetDescription(v string) *MarketplaceFieldUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MarketplaceFieldUpdate) SetNillableDescription(v *string) *MarketplaceFieldUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MarketplaceFieldUpdate) ClearDescription() *MarketplaceFieldUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSampleValues sets the "sample_values" field.
func (_u *MarketplaceFieldUpdate) SetSampleValues(v []string) *MarketplaceFieldUpdate {
	_u.mutation.SetSampleValues(v)
	return _u
}

// AppendSampleValues appends value to the "sample_values" field.
func (_u *MarketplaceFieldUpdate) AppendSampleValues(v []string) *MarketplaceFieldUpdate {
	_u.mutation.AppendSampleValues(v)
	return _u
}

// ClearSampleValues clears the value of the "sample_values" field.
func (_u *MarketplaceFieldUpdate) ClearSampleValues() *MarketplaceFieldUpdate {
	_u.mutation.ClearSampleValues()
	return _u
}

// SetFieldOrder sets the "field_order" field.
func (_u *MarketplaceFieldUpdate) SetFieldOrder(v int) *MarketplaceFieldUpdate {
	_u.mutation.ResetFieldOrder()
	_u.mutation.SetFieldOrder(v)
	return _u
}

// SetNillableFieldOrder sets the "field_order" field if the given value is not nil.
func (_u *MarketplaceFieldUpdate) SetNillableFieldOrder(v *int) *MarketplaceFieldUpdate {
	if v != nil {
		_u.SetFieldOrder(*v)
	}
	return _u
}

// AddFieldOrder adds value to the "field_order" field.
func (_u *MarketplaceFieldUpdate) AddFieldOrder(v int) *MarketplaceFieldUpdate {
	_u.mutation.AddFieldOrder(v)
	return _u
}

// ClearFieldOrder clears the value of the "field_order" field.
func (_u *MarketplaceFieldUpdate) ClearFieldOrder() *MarketplaceFieldUpdate {
	_u.mutation.ClearFieldOrder()
	return _u
}

// SetCategory sets the "category" field.
func (_u *MarketplaceFieldUpdate) SetCategory(v string) *MarketplaceFieldUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MarketplaceFieldUpdate) SetNillableCategory(v *string) *MarketplaceFieldUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *MarketplaceFieldUpdate) ClearCategory() *MarketplaceFieldUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MarketplaceFieldUpdate) SetCreatedAt(v time.Time) *MarketplaceFieldUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MarketplaceFieldUpdate) SetNillableCreatedAt(v *time.Time) *MarketplaceFieldUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetMarketplace sets the "marketplace" edge to the Marketplace entity.
func (_u *MarketplaceFieldUpdate) SetMarketplace(v *Marketplace) *MarketplaceFieldUpdate {
	return _u.SetMarketplaceID(v.ID)
}

// Mutation returns the MarketplaceFieldMutation object of the builder.
func (_u *MarketplaceFieldUpdate) Mutation() *MarketplaceFieldMutation {
	return _u.mutation
}

// ClearMarketplace clears the "marketplace" edge to the Marketplace entity.
func (_u *MarketplaceFieldUpdate) ClearMarketplace() *MarketplaceFieldUpdate {
	_u.mutation.ClearMarketplace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MarketplaceFieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketplaceFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MarketplaceFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketplaceFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MarketplaceFieldUpdate) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := marketplacefield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "MarketplaceField.field_name": %w`, err)}
		}
	}
	if _u.mutation.MarketplaceCleared() && len(_u.mutation.MarketplaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MarketplaceField.marketplace"`)
	}
	return nil
}

func (_u *MarketplaceFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(marketplacefield.Table, marketplacefield.Columns, sqlgraph.NewFieldSpec(marketplacefield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(marketplacefield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(marketplacefield.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(marketplacefield.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.IsRequired(); ok {
		_spec.SetField(marketplacefield.FieldIsRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(marketplacefield.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(marketplacefield.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SampleValues(); ok {
		_spec.SetField(marketplacefield.FieldSampleValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSampleValues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, marketplacefield.FieldSampleValues, value)
		})
	}
	if _u.mutation.SampleValuesCleared() {
		_spec.ClearField(marketplacefield.FieldSampleValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.FieldOrder(); ok {
		_spec.SetField(marketplacefield.FieldFieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFieldOrder(); ok {
		_spec.AddField(marketplacefield.FieldFieldOrder, field.TypeInt, value)
	}
	if _u.mutation.FieldOrderCleared() {
		_spec.ClearField(marketplacefield.FieldFieldOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(marketplacefield.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(marketplacefield.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(marketplacefield.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.MarketplaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MarketplaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{marketplacefield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MarketplaceFieldUpdateOne is the builder for updating a single MarketplaceField entity.
type MarketplaceFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MarketplaceFieldMutation
}

// SetMarketplaceID sets the "marketplace_id" field.
func (_u *MarketplaceFieldUpdateOne) SetMarketplaceID(v uuid.UUID) *MarketplaceFieldUpdateOne {
	_u.mutation.SetMarketplaceID(v)
	return _u
}

// SetNillableMarketplaceID sets the "marketplace_id" field if the given value is not nil.
func (_u *MarketplaceFieldUpdateOne) SetNillableMarketplaceID(v *uuid.UUID) *MarketplaceFieldUpdateOne {
	if v != nil {
		_u.SetMarketplaceID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *MarketplaceFieldUpdateOne) SetFieldName(v string) *MarketplaceFieldUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *MarketplaceFieldUpdateOne) SetNillableFieldName(v *string) *MarketplaceFieldUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *MarketplaceFieldUpdateOne) SetDisplayName(v string) *MarketplaceFieldUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *MarketplaceFieldUpdateOne) SetNillableDisplayName(v *string) *MarketplaceFieldUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *MarketplaceFieldUpdateOne) ClearDisplayName() *MarketplaceFieldUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetIsRequired sets the "is_required" field.
func (_u *MarketplaceFieldUpdateOne) SetIsRequired(v bool) *MarketplaceFieldUpdateOne {
	_u.mutation.SetIsRequired(v)
	return _u
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_u *MarketplaceFieldUpdateOne) SetNillableIsRequired(v *bool) *MarketplaceFieldUpdateOne {
	if v != nil {
		_u.SetIsRequired(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MarketplaceFieldUpdateOne) SetDescription(v string) *MarketplaceFieldUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MarketplaceFieldUpdateOne) SetNillableDescription(v *string) *MarketplaceFieldUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MarketplaceFieldUpdateOne) ClearDescription() *MarketplaceFieldUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSampleValues sets the "sample_values" field.
func (_u *MarketplaceFieldUpdateOne) SetSampleValues(v []string) *MarketplaceFieldUpdateOne {
	_u.mutation.SetSampleValues(v)
	return _u
}

// AppendSampleValues appends value to the "sample_values" field.
func (_u *MarketplaceFieldUpdateOne) AppendSampleValues(v []string) *MarketplaceFieldUpdateOne {
	_u.mutation.AppendSampleValues(v)
	return _u
}

// ClearSampleValues clears the value of the "sample_values" field.
func (_u *MarketplaceFieldUpdateOne) ClearSampleValues() *MarketplaceFieldUpdateOne {
	_u.mutation.ClearSampleValues()
	return _u
}

// SetFieldOrder sets the "field_order" field.
func (_u *MarketplaceFieldUpdateOne) SetFieldOrder(v int) *MarketplaceFieldUpdateOne {
	_u.mutation.ResetFieldOrder()
	_u.mutation.SetFieldOrder(v)
	return _u
}

// SetNillableFieldOrder sets the "field_order" field if the given value is not nil.
func (_u *MarketplaceFieldUpdateOne) SetNillableFieldOrder(v *int) *MarketplaceFieldUpdateOne {
	if v != nil {
		_u.SetFieldOrder(*v)
	}
	return _u
}

// AddFieldOrder adds value to the "field_order" field.
func (_u *MarketplaceFieldUpdateOne) AddFieldOrder(v int) *MarketplaceFieldUpdateOne {
	_u.mutation.AddFieldOrder(v)
	return _u
}

// ClearFieldOrder clears the value of the "field_order" field.
func (_u *MarketplaceFieldUpdateOne) ClearFieldOrder() *MarketplaceFieldUpdateOne {
	_u.mutation.ClearFieldOrder()
	return _u
}

// SetCategory sets the "category" field.
func (_u *MarketplaceFieldUpdateOne) SetCategory(v string) *MarketplaceFieldUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MarketplaceFieldUpdateOne) SetNillableCategory(v *string) *MarketplaceFieldUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *MarketplaceFieldUpdateOne) ClearCategory() *MarketplaceFieldUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MarketplaceFieldUpdateOne) SetCreatedAt(v time.Time) *MarketplaceFieldUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MarketplaceFieldUpdateOne) SetNillableCreatedAt(v *time.Time) *MarketplaceFieldUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetMarketplace sets the "marketplace" edge to the Marketplace entity.
func (_u *MarketplaceFieldUpdateOne) SetMarketplace(v *Marketplace) *MarketplaceFieldUpdateOne {
	return _u.SetMarketplaceID(v.ID)
}

// Mutation returns the MarketplaceFieldMutation object of the builder.
func (_u *MarketplaceFieldUpdateOne) Mutation() *MarketplaceFieldMutation {
	return _u.mutation
}

// ClearMarketplace clears the "marketplace" edge to the Marketplace entity.
func (_u *MarketplaceFieldUpdateOne) ClearMarketplace() *MarketplaceFieldUpdateOne {
	_u.mutation.ClearMarketplace()
	return _u
}

// Where appends a list predicates to the MarketplaceFieldUpdate builder.
func (_u *MarketplaceFieldUpdateOne) Where(ps ...predicate.MarketplaceField) *MarketplaceFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MarketplaceFieldUpdateOne) Select(field string, fields ...string) *MarketplaceFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MarketplaceField entity.
func (_u *MarketplaceFieldUpdateOne) Save(ctx context.Context) (*MarketplaceField, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketplaceFieldUpdateOne) SaveX(ctx context.Context) *MarketplaceField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MarketplaceFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketplaceFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MarketplaceFieldUpdateOne) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := marketplacefield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "MarketplaceField.field_name": %w`, err)}
		}
	}
	if _u.mutation.MarketplaceCleared() && len(_u.mutation.MarketplaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MarketplaceField.marketplace"`)
	}
	return nil
}

func (_u *MarketplaceFieldUpdateOne) sqlSave(ctx context.Context) (_node *MarketplaceField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(marketplacefield.Table, marketplacefield.Columns, sqlgraph.NewFieldSpec(marketplacefield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MarketplaceField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, marketplacefield.FieldID)
		for _, f := range fields {
			if !marketplacefield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != marketplacefield.FieldID {
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
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(marketplacefield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(marketplacefield.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(marketplacefield.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.IsRequired(); ok {
		_spec.SetField(marketplacefield.FieldIsRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(marketplacefield.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(marketplacefield.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SampleValues(); ok {
		_spec.SetField(marketplacefield.FieldSampleValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSampleValues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, marketplacefield.FieldSampleValues, value)
		})
	}
	if _u.mutation.SampleValuesCleared() {
		_spec.ClearField(marketplacefield.FieldSampleValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.FieldOrder(); ok {
		_spec.SetField(marketplacefield.FieldFieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFieldOrder(); ok {
		_spec.AddField(marketplacefield.FieldFieldOrder, field.TypeInt, value)
	}
	if _u.mutation.FieldOrderCleared() {
		_spec.ClearField(marketplacefield.FieldFieldOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(marketplacefield.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(marketplacefield.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(marketplacefield.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.MarketplaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MarketplaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MarketplaceField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{marketplacefield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
