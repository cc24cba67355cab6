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
	"github.com/catalogmapper/catalog-mapper/gen/ent/generatedfile"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/catalogmapper/catalog-mapper/gen/ent/sessionrow"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/google/uuid"
)

// UploadSessionCreate is the builder for creating a UploadSession entity.
type UploadSessionCreate struct {
	config
	mutation *UploadSessionMutation
	hooks    []Hook
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *UploadSessionCreate) SetOriginalFilename(v string) *UploadSessionCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *UploadSessionCreate) SetFilePath(v string) *UploadSessionCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableFilePath(v *string) *UploadSessionCreate {
	if v != nil {
		_c.SetFilePath(*v)
	}
	return _c
}

// SetMarketplaceID sets the "marketplace_id" field.
func (_c *UploadSessionCreate) SetMarketplaceID(v uuid.UUID) *UploadSessionCreate {
	_c.mutation.SetMarketplaceID(v)
	return _c
}

// SetNillableMarketplaceID sets the "marketplace_id" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableMarketplaceID(v *uuid.UUID) *UploadSessionCreate {
	if v != nil {
		_c.SetMarketplaceID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UploadSessionCreate) SetStatus(v string) *UploadSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableStatus(v *string) *UploadSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRowCount sets the "row_count" field.
func (_c *UploadSessionCreate) SetRowCount(v int) *UploadSessionCreate {
	_c.mutation.SetRowCount(v)
	return _c
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableRowCount(v *int) *UploadSessionCreate {
	if v != nil {
		_c.SetRowCount(*v)
	}
	return _c
}

// SetUserColumns sets the "user_columns" field.
func (_c *UploadSessionCreate) SetUserColumns(v []entity.SourceColumn) *UploadSessionCreate {
	_c.mutation.SetUserColumns(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *UploadSessionCreate) SetCategory(v string) *UploadSessionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableCategory(v *string) *UploadSessionCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UploadSessionCreate) SetCreatedAt(v time.Time) *UploadSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableCreatedAt(v *time.Time) *UploadSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UploadSessionCreate) SetUpdatedAt(v time.Time) *UploadSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableUpdatedAt(v *time.Time) *UploadSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadSessionCreate) SetID(v uuid.UUID) *UploadSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UploadSessionCreate) SetNillableID(v *uuid.UUID) *UploadSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMarketplace sets the "marketplace" edge to the Marketplace entity.
func (_c *UploadSessionCreate) SetMarketplace(v *Marketplace) *UploadSessionCreate {
	return _c.SetMarketplaceID(v.ID)
}

// AddRowIDs adds the "rows" edge to the SessionRow entity by IDs.
func (_c *UploadSessionCreate) AddRowIDs(ids ...uuid.UUID) *UploadSessionCreate {
	_c.mutation.AddRowIDs(ids...)
	return _c
}

// AddRows adds the "rows" edges to the SessionRow entity.
func (_c *UploadSessionCreate) AddRows(v ...*SessionRow) *UploadSessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRowIDs(ids...)
}

// AddMappingIDs adds the "mappings" edge to the FieldMapping entity by IDs.
func (_c *UploadSessionCreate) AddMappingIDs(ids ...uuid.UUID) *UploadSessionCreate {
	_c.mutation.AddMappingIDs(ids...)
	return _c
}

// AddMappings adds the "mappings" edges to the FieldMapping entity.
func (_c *UploadSessionCreate) AddMappings(v ...*FieldMapping) *UploadSessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMappingIDs(ids...)
}

// AddGeneratedFileIDs adds the "generated_files" edge to the GeneratedFile entity by IDs.
func (_c *UploadSessionCreate) AddGeneratedFileIDs(ids ...uuid.UUID) *UploadSessionCreate {
	_c.mutation.AddGeneratedFileIDs(ids...)
	return _c
}

// AddGeneratedFiles adds the "generated_files" edges to the GeneratedFile entity.
func (_c *UploadSessionCreate) AddGeneratedFiles(v ...*GeneratedFile) *UploadSessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGeneratedFileIDs(ids...)
}

// Mutation returns the UploadSessionMutation object of the builder.
func (_c *UploadSessionCreate) Mutation() *UploadSessionMutation {
	return _c.mutation
}

// Save creates the UploadSession in the database.
func (_c *UploadSessionCreate) Save(ctx context.Context) (*UploadSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadSessionCreate) SaveX(ctx context.Context) *UploadSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := uploadsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RowCount(); !ok {
		v := uploadsession.DefaultRowCount
		_c.mutation.SetRowCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := uploadsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := uploadsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := uploadsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadSessionCreate) check() error {
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "UploadSession.original_filename"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := uploadsession.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "UploadSession.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UploadSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := uploadsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RowCount(); !ok {
		return &ValidationError{Name: "row_count", err: errors.New(`ent: missing required field "UploadSession.row_count"`)}
	}
	if v, ok := _c.mutation.RowCount(); ok {
		if err := uploadsession.RowCountValidator(v); err != nil {
			return &ValidationError{Name: "row_count", err: fmt.Errorf(`ent: validator failed for field "UploadSession.row_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UploadSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UploadSession.updated_at"`)}
	}
	return nil
}

func (_c *UploadSessionCreate) sqlSave(ctx context.Context) (*UploadSession, error) {
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

func (_c *UploadSessionCreate) createSpec() (*UploadSession, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uploadsession.Table, sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(uploadsession.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(uploadsession.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(uploadsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RowCount(); ok {
		_spec.SetField(uploadsession.FieldRowCount, field.TypeInt, value)
		_node.RowCount = value
	}
	if value, ok := _c.mutation.UserColumns(); ok {
		_spec.SetField(uploadsession.FieldUserColumns, field.TypeJSON, value)
		_node.UserColumns = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(uploadsession.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(uploadsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MarketplaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadsession.MarketplaceTable,
			Columns: []string{uploadsession.MarketplaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(marketplace.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MarketplaceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadsession.RowsTable,
			Columns: []string{uploadsession.RowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionrow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadsession.MappingsTable,
			Columns: []string{uploadsession.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GeneratedFilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadsession.GeneratedFilesTable,
			Columns: []string{uploadsession.GeneratedFilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generatedfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UploadSessionCreateBulk is the builder for creating many UploadSession entities in bulk.
type UploadSessionCreateBulk struct {
	config
	err      error
	builders []*UploadSessionCreate
}

// Save creates the UploadSession entities in the database.
func (_c *UploadSessionCreateBulk) Save(ctx context.Context) ([]*UploadSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UploadSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadSessionMutation)
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
func (_c *UploadSessionCreateBulk) SaveX(ctx context.Context) []*UploadSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
