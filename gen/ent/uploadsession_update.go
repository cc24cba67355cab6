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
	"github.com/catalogmapper/catalog-mapper/gen/ent/fieldmapping"
	"github.com/catalogmapper/catalog-mapper/gen/ent/generatedfile"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/catalogmapper/catalog-mapper/gen/ent/sessionrow"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/google/uuid"
)

// UploadSessionUpdate is the builder for updating UploadSession entities.
type UploadSessionUpdate struct {
	config
	hooks    []Hook
	mutation *UploadSessionMutation
}

// Where appends a list predicates to the UploadSessionUpdate builder.
func (_u *UploadSessionUpdate) Where(ps ...predicate.UploadSession) *UploadSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *UploadSessionUpdate) SetOriginalFilename(v string) *UploadSessionUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableOriginalFilename(v *string) *UploadSessionUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *UploadSessionUpdate) SetFilePath(v string) *UploadSessionUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableFilePath(v *string) *UploadSessionUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *UploadSessionUpdate) ClearFilePath() *UploadSessionUpdate {
	_u.mutation.ClearFilePath()
	return _u
}

// SetMarketplaceID sets the "marketplace_id" field.
func (_u *UploadSessionUpdate) SetMarketplaceID(v uuid.UUID) *UploadSessionUpdate {
	_u.mutation.SetMarketplaceID(v)
	return _u
}

// SetNillableMarketplaceID sets the "marketplace_id" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableMarketplaceID(v *uuid.UUID) *UploadSessionUpdate {
	if v != nil {
		_u.SetMarketplaceID(*v)
	}
	return _u
}

// ClearMarketplaceID clears the value of the "marketplace_id" field.
func (_u *UploadSessionUpdate) ClearMarketplaceID() *UploadSessionUpdate {
	_u.mutation.ClearMarketplaceID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadSessionUpdate) SetStatus(v string) *UploadSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableStatus(v *string) *UploadSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *UploadSessionUpdate) SetRowCount(v int) *UploadSessionUpdate {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableRowCount(v *int) *UploadSessionUpdate {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *UploadSessionUpdate) AddRowCount(v int) *UploadSessionUpdate {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetUserColumns sets the "user_columns" field.
func (_u *UploadSessionUpdate) SetUserColumns(v []entity.SourceColumn) *UploadSessionUpdate {
	_u.mutation.SetUserColumns(v)
	return _u
}

// AppendUserColumns appends value to the "user_columns" field.
func (_u *UploadSessionUpdate) AppendUserColumns(v []entity.SourceColumn) *UploadSessionUpdate {
	_u.mutation.AppendUserColumns(v)
	return _u
}

// ClearUserColumns clears the value of the "user_columns" field.
func (_u *UploadSessionUpdate) ClearUserColumns() *UploadSessionUpdate {
	_u.mutation.ClearUserColumns()
	return _u
}

// SetCategory sets the "category" field.
func (_u *UploadSessionUpdate) SetCategory(v string) *UploadSessionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableCategory(v *string) *UploadSessionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *UploadSessionUpdate) ClearCategory() *UploadSessionUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UploadSessionUpdate) SetCreatedAt(v time.Time) *UploadSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UploadSessionUpdate) SetNillableCreatedAt(v *time.Time) *UploadSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadSessionUpdate) SetUpdatedAt(v time.Time) *UploadSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMarketplace sets the "marketplace" edge to the Marketplace entity.
func (_u *UploadSessionUpdate) SetMarketplace(v *Marketplace) *UploadSessionUpdate {
	return _u.SetMarketplaceID(v.ID)
}

// AddRowIDs adds the "rows" edge to the SessionRow entity by IDs.
func (_u *UploadSessionUpdate) AddRowIDs(ids ...uuid.UUID) *UploadSessionUpdate {
	_u.mutation.AddRowIDs(ids...)
	return _u
}

// AddRows adds the "rows" edges to the SessionRow entity.
func (_u *UploadSessionUpdate) AddRows(v ...*SessionRow) *UploadSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRowIDs(ids...)
}

// AddMappingIDs adds the "mappings" edge to the FieldMapping entity by IDs.
func (_u *UploadSessionUpdate) AddMappingIDs(ids ...uuid.UUID) *UploadSessionUpdate {
	_u.mutation.AddMappingIDs(ids...)
	return _u
}

// AddMappings adds the "mappings" edges to the FieldMapping entity.
func (_u *UploadSessionUpdate) AddMappings(v ...*FieldMapping) *UploadSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingIDs(ids...)
}

// AddGeneratedFileIDs adds the "generated_files" edge to the GeneratedFile entity by IDs.
func (_u *UploadSessionUpdate) AddGeneratedFileIDs(ids ...uuid.UUID) *UploadSessionUpdate {
	_u.mutation.AddGeneratedFileIDs(ids...)
	return _u
}

// AddGeneratedFiles adds the "generated_files" edges to the GeneratedFile entity.
func (_u *UploadSessionUpdate) AddGeneratedFiles(v ...*GeneratedFile) *UploadSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGeneratedFileIDs(ids...)
}

// Mutation returns the UploadSessionMutation object of the builder.
func (_u *UploadSessionUpdate) Mutation() *UploadSessionMutation {
	return _u.mutation
}

// ClearMarketplace clears the "marketplace" edge to the Marketplace entity.
func (_u *UploadSessionUpdate) ClearMarketplace() *UploadSessionUpdate {
	_u.mutation.ClearMarketplace()
	return _u
}

// ClearRows clears all "rows" edges to the SessionRow entity.
func (_u *UploadSessionUpdate) ClearRows() *UploadSessionUpdate {
	_u.mutation.ClearRows()
	return _u
}

// RemoveRowIDs removes the "rows" edge to SessionRow entities by IDs.
func (_u *UploadSessionUpdate) RemoveRowIDs(ids ...uuid.UUID) *UploadSessionUpdate {
	_u.mutation.RemoveRowIDs(ids...)
	return _u
}

// RemoveRows removes "rows" edges to SessionRow entities.
func (_u *UploadSessionUpdate) RemoveRows(v ...*SessionRow) *UploadSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRowIDs(ids...)
}

// ClearMappings clears all "mappings" edges to the FieldMapping entity.
func (_u *UploadSessionUpdate) ClearMappings() *UploadSessionUpdate {
	_u.mutation.ClearMappings()
	return _u
}

// RemoveMappingIDs removes the "mappings" edge to FieldMapping entities by IDs.
func (_u *UploadSessionUpdate) RemoveMappingIDs(ids ...uuid.UUID) *UploadSessionUpdate {
	_u.mutation.RemoveMappingIDs(ids...)
	return _u
}

// RemoveMappings removes "mappings" edges to FieldMapping entities.
func (_u *UploadSessionUpdate) RemoveMappings(v ...*FieldMapping) *UploadSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingIDs(ids...)
}

// ClearGeneratedFiles clears all "generated_files" edges to the GeneratedFile entity.
func (_u *UploadSessionUpdate) ClearGeneratedFiles() *UploadSessionUpdate {
	_u.mutation.ClearGeneratedFiles()
	return _u
}

// RemoveGeneratedFileIDs removes the "generated_files" edge to GeneratedFile entities by IDs.
func (_u *UploadSessionUpdate) RemoveGeneratedFileIDs(ids ...uuid.UUID) *UploadSessionUpdate {
	_u.mutation.RemoveGeneratedFileIDs(ids...)
	return _u
}

// RemoveGeneratedFiles removes "generated_files" edges to GeneratedFile entities.
func (_u *UploadSessionUpdate) RemoveGeneratedFiles(v ...*GeneratedFile) *UploadSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGeneratedFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := uploadsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadSessionUpdate) check() error {
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := uploadsession.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "UploadSession.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := uploadsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RowCount(); ok {
		if err := uploadsession.RowCountValidator(v); err != nil {
			return &ValidationError{Name: "row_count", err: fmt.Errorf(`ent: validator failed for field "UploadSession.row_count": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadsession.Table, uploadsession.Columns, sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(uploadsession.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(uploadsession.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(uploadsession.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uploadsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(uploadsession.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(uploadsession.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserColumns(); ok {
		_spec.SetField(uploadsession.FieldUserColumns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUserColumns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, uploadsession.FieldUserColumns, value)
		})
	}
	if _u.mutation.UserColumnsCleared() {
		_spec.ClearField(uploadsession.FieldUserColumns, field.TypeJSON)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(uploadsession.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(uploadsession.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(uploadsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MarketplaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MarketplaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRowsIDs(); len(nodes) > 0 && !_u.mutation.RowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RowsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MappingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMappingsIDs(); len(nodes) > 0 && !_u.mutation.MappingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MappingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GeneratedFilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGeneratedFilesIDs(); len(nodes) > 0 && !_u.mutation.GeneratedFilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GeneratedFilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadSessionUpdateOne is the builder for updating a single UploadSession entity.
type UploadSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadSessionMutation
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *UploadSessionUpdateOne) SetOriginalFilename(v string) *UploadSessionUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableOriginalFilename(v *string) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *UploadSessionUpdateOne) SetFilePath(v string) *UploadSessionUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableFilePath(v *string) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *UploadSessionUpdateOne) ClearFilePath() *UploadSessionUpdateOne {
	_u.mutation.ClearFilePath()
	return _u
}

// SetMarketplaceID sets the "marketplace_id" field.
func (_u *UploadSessionUpdateOne) SetMarketplaceID(v uuid.UUID) *UploadSessionUpdateOne {
	_u.mutation.SetMarketplaceID(v)
	return _u
}

// SetNillableMarketplaceID sets the "marketplace_id" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableMarketplaceID(v *uuid.UUID) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetMarketplaceID(*v)
	}
	return _u
}

// ClearMarketplaceID clears the value of the "marketplace_id" field.
func (_u *UploadSessionUpdateOne) ClearMarketplaceID() *UploadSessionUpdateOne {
	_u.mutation.ClearMarketplaceID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadSessionUpdateOne) SetStatus(v string) *UploadSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableStatus(v *string) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *UploadSessionUpdateOne) SetRowCount(v int) *UploadSessionUpdateOne {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableRowCount(v *int) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *UploadSessionUpdateOne) AddRowCount(v int) *UploadSessionUpdateOne {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetUserColumns sets the "user_columns" field.
func (_u *UploadSessionUpdateOne) SetUserColumns(v []entity.SourceColumn) *UploadSessionUpdateOne {
	_u.mutation.SetUserColumns(v)
	return _u
}

// AppendUserColumns appends value to the "user_columns" field.
func (_u *UploadSessionUpdateOne) AppendUserColumns(v []entity.SourceColumn) *UploadSessionUpdateOne {
	_u.mutation.AppendUserColumns(v)
	return _u
}

// ClearUserColumns clears the value of the "user_columns" field.
func (_u *UploadSessionUpdateOne) ClearUserColumns() *UploadSessionUpdateOne {
	_u.mutation.ClearUserColumns()
	return _u
}

// SetCategory sets the "category" field.
func (_u *UploadSessionUpdateOne) SetCategory(v string) *UploadSessionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableCategory(v *string) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *UploadSessionUpdateOne) ClearCategory() *UploadSessionUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UploadSessionUpdateOne) SetCreatedAt(v time.Time) *UploadSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UploadSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *UploadSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UploadSessionUpdateOne) SetUpdatedAt(v time.Time) *UploadSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMarketplace sets the "marketplace" edge to the Marketplace entity.
func (_u *UploadSessionUpdateOne) SetMarketplace(v *Marketplace) *UploadSessionUpdateOne {
	return _u.SetMarketplaceID(v.ID)
}

// AddRowIDs adds the "rows" edge to the SessionRow entity by IDs.
func (_u *UploadSessionUpdateOne) AddRowIDs(ids ...uuid.UUID) *UploadSessionUpdateOne {
	_u.mutation.AddRowIDs(ids...)
	return _u
}

// AddRows adds the "rows" edges to the SessionRow entity.
func (_u *UploadSessionUpdateOne) AddRows(v ...*SessionRow) *UploadSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRowIDs(ids...)
}

// AddMappingIDs adds the "mappings" edge to the FieldMapping entity by IDs.
func (_u *UploadSessionUpdateOne) AddMappingIDs(ids ...uuid.UUID) *UploadSessionUpdateOne {
	_u.mutation.AddMappingIDs(ids...)
	return _u
}

// AddMappings adds the "mappings" edges to the FieldMapping entity.
func (_u *UploadSessionUpdateOne) AddMappings(v ...*FieldMapping) *UploadSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingIDs(ids...)
}

// AddGeneratedFileIDs adds the "generated_files" edge to the GeneratedFile entity by IDs.
func (_u *UploadSessionUpdateOne) AddGeneratedFileIDs(ids ...uuid.UUID) *UploadSessionUpdateOne {
	_u.mutation.AddGeneratedFileIDs(ids...)
	return _u
}

// AddGeneratedFiles adds the "generated_files" edges to the GeneratedFile entity.
func (_u *UploadSessionUpdateOne) AddGeneratedFiles(v ...*GeneratedFile) *UploadSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGeneratedFileIDs(ids...)
}

// Mutation returns the UploadSessionMutation object of the builder.
func (_u *UploadSessionUpdateOne) Mutation() *UploadSessionMutation {
	return _u.mutation
}

// ClearMarketplace clears the "marketplace" edge to the Marketplace entity.
func (_u *UploadSessionUpdateOne) ClearMarketplace() *UploadSessionUpdateOne {
	_u.mutation.ClearMarketplace()
	return _u
}

// ClearRows clears all "rows" edges to the SessionRow entity.
func (_u *UploadSessionUpdateOne) ClearRows() *UploadSessionUpdateOne {
	_u.mutation.ClearRows()
	return _u
}

// RemoveRowIDs removes the "rows" edge to SessionRow entities by IDs.
func (_u *UploadSessionUpdateOne) RemoveRowIDs(ids ...uuid.UUID) *UploadSessionUpdateOne {
	_u.mutation.RemoveRowIDs(ids...)
	return _u
}

// RemoveRows removes "rows" edges to SessionRow entities.
func (_u *UploadSessionUpdateOne) RemoveRows(v ...*SessionRow) *UploadSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRowIDs(ids...)
}

// ClearMappings clears all "mappings" edges to the FieldMapping entity.
func (_u *UploadSessionUpdateOne) ClearMappings() *UploadSessionUpdateOne {
	_u.mutation.ClearMappings()
	return _u
}

// RemoveMappingIDs removes the "mappings" edge to FieldMapping entities by IDs.
func (_u *UploadSessionUpdateOne) RemoveMappingIDs(ids ...uuid.UUID) *UploadSessionUpdateOne {
	_u.mutation.RemoveMappingIDs(ids...)
	return _u
}

// RemoveMappings removes "mappings" edges to FieldMapping entities.
func (_u *UploadSessionUpdateOne) RemoveMappings(v ...*FieldMapping) *UploadSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingIDs(ids...)
}

// ClearGeneratedFiles clears all "generated_files" edges to the GeneratedFile entity.
func (_u *UploadSessionUpdateOne) ClearGeneratedFiles() *UploadSessionUpdateOne {
	_u.mutation.ClearGeneratedFiles()
	return _u
}

// RemoveGeneratedFileIDs removes the "generated_files" edge to GeneratedFile entities by IDs.
func (_u *UploadSessionUpdateOne) RemoveGeneratedFileIDs(ids ...uuid.UUID) *UploadSessionUpdateOne {
	_u.mutation.RemoveGeneratedFileIDs(ids...)
	return _u
}

// RemoveGeneratedFiles removes "generated_files" edges to GeneratedFile entities.
func (_u *UploadSessionUpdateOne) RemoveGeneratedFiles(v ...*GeneratedFile) *UploadSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGeneratedFileIDs(ids...)
}

// Where appends a list predicates to the UploadSessionUpdate builder.
func (_u *UploadSessionUpdateOne) Where(ps ...predicate.UploadSession) *UploadSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadSessionUpdateOne) Select(field string, fields ...string) *UploadSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UploadSession entity.
func (_u *UploadSessionUpdateOne) Save(ctx context.Context) (*UploadSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadSessionUpdateOne) SaveX(ctx context.Context) *UploadSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UploadSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := uploadsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadSessionUpdateOne) check() error {
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := uploadsession.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "UploadSession.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := uploadsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RowCount(); ok {
		if err := uploadsession.RowCountValidator(v); err != nil {
			return &ValidationError{Name: "row_count", err: fmt.Errorf(`ent: validator failed for field "UploadSession.row_count": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadSessionUpdateOne) sqlSave(ctx context.Context) (_node *UploadSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadsession.Table, uploadsession.Columns, sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UploadSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadsession.FieldID)
		for _, f := range fields {
			if !uploadsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uploadsession.FieldID {
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
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(uploadsession.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(uploadsession.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(uploadsession.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uploadsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(uploadsession.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(uploadsession.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserColumns(); ok {
		_spec.SetField(uploadsession.FieldUserColumns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUserColumns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, uploadsession.FieldUserColumns, value)
		})
	}
	if _u.mutation.UserColumnsCleared() {
		_spec.ClearField(uploadsession.FieldUserColumns, field.TypeJSON)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(uploadsession.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(uploadsession.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(uploadsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(uploadsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MarketplaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MarketplaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRowsIDs(); len(nodes) > 0 && !_u.mutation.RowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RowsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MappingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMappingsIDs(); len(nodes) > 0 && !_u.mutation.MappingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MappingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GeneratedFilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGeneratedFilesIDs(); len(nodes) > 0 && !_u.mutation.GeneratedFilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GeneratedFilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UploadSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
