// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/catalogmapper/catalog-mapper/gen/ent/fieldmapping"
	"github.com/catalogmapper/catalog-mapper/gen/ent/generatedfile"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/catalogmapper/catalog-mapper/gen/ent/sessionrow"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
	"github.com/google/uuid"
)

// UploadSessionQuery is the builder for querying UploadSession entities.
type UploadSessionQuery struct {
	config
	ctx                *QueryContext
	order              []uploadsession.OrderOption
	inters             []Interceptor
	predicates         []predicate.UploadSession
	withMarketplace    *MarketplaceQuery
	withRows           *SessionRowQuery
	withMappings       *FieldMappingQuery
	withGeneratedFiles *GeneratedFileQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UploadSessionQuery builder.
func (_q *UploadSessionQuery) Where(ps ...predicate.UploadSession) *UploadSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *UploadSessionQuery) Limit(limit int) *UploadSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *UploadSessionQuery) Offset(offset int) *UploadSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *UploadSessionQuery) Unique(unique bool) *UploadSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *UploadSessionQuery) Order(o ...uploadsession.OrderOption) *UploadSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMarketplace chains the current query on the "marketplace" edge.
func (_q *UploadSessionQuery) QueryMarketplace() *MarketplaceQuery {
	query := (&MarketplaceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadsession.Table, uploadsession.FieldID, selector),
			sqlgraph.To(marketplace.Table, marketplace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, uploadsession.MarketplaceTable, uploadsession.MarketplaceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRows chains the current query on the "rows" edge.
func (_q *UploadSessionQuery) QueryRows() *SessionRowQuery {
	query := (&SessionRowClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadsession.Table, uploadsession.FieldID, selector),
			sqlgraph.To(sessionrow.Table, sessionrow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadsession.RowsTable, uploadsession.RowsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMappings chains the current query on the "mappings" edge.
func (_q *UploadSessionQuery) QueryMappings() *FieldMappingQuery {
	query := (&FieldMappingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadsession.Table, uploadsession.FieldID, selector),
			sqlgraph.To(fieldmapping.Table, fieldmapping.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadsession.MappingsTable, uploadsession.MappingsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGeneratedFiles chains the current query on the "generated_files" edge.
func (_q *UploadSessionQuery) QueryGeneratedFiles() *GeneratedFileQuery {
	query := (&GeneratedFileClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadsession.Table, uploadsession.FieldID, selector),
			sqlgraph.To(generatedfile.Table, generatedfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadsession.GeneratedFilesTable, uploadsession.GeneratedFilesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first UploadSession entity from the query.
// Returns a *NotFoundError when no UploadSession was found.
func (_q *UploadSessionQuery) First(ctx context.Context) (*UploadSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{uploadsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *UploadSessionQuery) FirstX(ctx context.Context) *UploadSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UploadSession ID from the query.
// Returns a *NotFoundError when no UploadSession ID was found.
func (_q *UploadSessionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{uploadsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *UploadSessionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UploadSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UploadSession entity is found.
// Returns a *NotFoundError when no UploadSession entities are found.
func (_q *UploadSessionQuery) Only(ctx context.Context) (*UploadSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{uploadsession.Label}
	default:
		return nil, &NotSingularError{uploadsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *UploadSessionQuery) OnlyX(ctx context.Context) *UploadSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UploadSession ID in the query.
// Returns a *NotSingularError when more than one UploadSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *UploadSessionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{uploadsession.Label}
	default:
		err = &NotSingularError{uploadsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *UploadSessionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UploadSessions.
func (_q *UploadSessionQuery) All(ctx context.Context) ([]*UploadSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UploadSession, *UploadSessionQuery]()
	return withInterceptors[[]*UploadSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *UploadSessionQuery) AllX(ctx context.Context) []*UploadSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UploadSession IDs.
func (_q *UploadSessionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(uploadsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *UploadSessionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *UploadSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*UploadSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *UploadSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *UploadSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *UploadSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UploadSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *UploadSessionQuery) Clone() *UploadSessionQuery {
	if _q == nil {
		return nil
	}
	return &UploadSessionQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]uploadsession.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.UploadSession{}, _q.predicates...),
		withMarketplace:    _q.withMarketplace.Clone(),
		withRows:           _q.withRows.Clone(),
		withMappings:       _q.withMappings.Clone(),
		withGeneratedFiles: _q.withGeneratedFiles.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMarketplace tells the query-builder to eager-load the nodes that are connected to
// the "marketplace" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UploadSessionQuery) WithMarketplace(opts ...func(*MarketplaceQuery)) *UploadSessionQuery {
	query := (&MarketplaceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMarketplace = query
	return _q
}

// WithRows tells the query-builder to eager-load the nodes that are connected to
// the "rows" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UploadSessionQuery) WithRows(opts ...func(*SessionRowQuery)) *UploadSessionQuery {
	query := (&SessionRowClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRows = query
	return _q
}

// WithMappings tells the query-builder to eager-load the nodes that are connected to
// the "mappings" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UploadSessionQuery) WithMappings(opts ...func(*FieldMappingQuery)) *UploadSessionQuery {
	query := (&FieldMappingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMappings = query
	return _q
}

// WithGeneratedFiles tells the query-builder to eager-load the nodes that are connected to
// the "generated_files" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UploadSessionQuery) WithGeneratedFiles(opts ...func(*GeneratedFileQuery)) *UploadSessionQuery {
	query := (&GeneratedFileClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGeneratedFiles = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OriginalFilename string `json:"original_filename,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.UploadSession.Query().
//		GroupBy(uploadsession.FieldOriginalFilename).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *UploadSessionQuery) GroupBy(field string, fields ...string) *UploadSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UploadSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = uploadsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OriginalFilename string `json:"original_filename,omitempty"`
//	}
//
//	client.UploadSession.Query().
//		Select(uploadsession.FieldOriginalFilename).
//		Scan(ctx, &v)
func (_q *UploadSessionQuery) Select(fields ...string) *UploadSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &UploadSessionSelect{UploadSessionQuery: _q}
	sbuild.label = uploadsession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UploadSessionSelect configured with the given aggregations.
func (_q *UploadSessionQuery) Aggregate(fns ...AggregateFunc) *UploadSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *UploadSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !uploadsession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *UploadSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UploadSession, error) {
	var (
		nodes       = []*UploadSession{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withMarketplace != nil,
			_q.withRows != nil,
			_q.withMappings != nil,
			_q.withGeneratedFiles != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UploadSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UploadSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withMarketplace; query != nil {
		if err := _q.loadMarketplace(ctx, query, nodes, nil,
			func(n *UploadSession, e *Marketplace) { n.Edges.Marketplace = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRows; query != nil {
		if err := _q.loadRows(ctx, query, nodes,
			func(n *UploadSession) { n.Edges.Rows = []*SessionRow{} },
			func(n *UploadSession, e *SessionRow) { n.Edges.Rows = append(n.Edges.Rows, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMappings; query != nil {
		if err := _q.loadMappings(ctx, query, nodes,
			func(n *UploadSession) { n.Edges.Mappings = []*FieldMapping{} },
			func(n *UploadSession, e *FieldMapping) { n.Edges.Mappings = append(n.Edges.Mappings, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGeneratedFiles; query != nil {
		if err := _q.loadGeneratedFiles(ctx, query, nodes,
			func(n *UploadSession) { n.Edges.GeneratedFiles = []*GeneratedFile{} },
			func(n *UploadSession, e *GeneratedFile) { n.Edges.GeneratedFiles = append(n.Edges.GeneratedFiles, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *UploadSessionQuery) loadMarketplace(ctx context.Context, query *MarketplaceQuery, nodes []*UploadSession, init func(*UploadSession), assign func(*UploadSession, *Marketplace)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*UploadSession)
	for i := range nodes {
		if nodes[i].MarketplaceID == nil {
			continue
		}
		fk := *nodes[i].MarketplaceID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(marketplace.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "marketplace_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *UploadSessionQuery) loadRows(ctx context.Context, query *SessionRowQuery, nodes []*UploadSession, init func(*UploadSession), assign func(*UploadSession, *SessionRow)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*UploadSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(sessionrow.FieldSessionID)
	}
	query.Where(predicate.SessionRow(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(uploadsession.RowsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *UploadSessionQuery) loadMappings(ctx context.Context, query *FieldMappingQuery, nodes []*UploadSession, init func(*UploadSession), assign func(*UploadSession, *FieldMapping)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*UploadSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(fieldmapping.FieldSessionID)
	}
	query.Where(predicate.FieldMapping(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(uploadsession.MappingsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *UploadSessionQuery) loadGeneratedFiles(ctx context.Context, query *GeneratedFileQuery, nodes []*UploadSession, init func(*UploadSession), assign func(*UploadSession, *GeneratedFile)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*UploadSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(generatedfile.FieldSessionID)
	}
	query.Where(predicate.GeneratedFile(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(uploadsession.GeneratedFilesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *UploadSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *UploadSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(uploadsession.Table, uploadsession.Columns, sqlgraph.NewFieldSpec(uploadsession.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadsession.FieldID)
		for i := range fields {
			if fields[i] != uploadsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withMarketplace != nil {
			_spec.Node.AddColumnOnce(uploadsession.FieldMarketplaceID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *UploadSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(uploadsession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = uploadsession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UploadSessionGroupBy is the group-by builder for UploadSession entities.
type UploadSessionGroupBy struct {
	selector
	build *UploadSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *UploadSessionGroupBy) Aggregate(fns ...AggregateFunc) *UploadSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *UploadSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UploadSessionQuery, *UploadSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *UploadSessionGroupBy) sqlScan(ctx context.Context, root *UploadSessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UploadSessionSelect is the builder for selecting fields of UploadSession entities.
type UploadSessionSelect struct {
	*UploadSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *UploadSessionSelect) Aggregate(fns ...AggregateFunc) *UploadSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *UploadSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UploadSessionQuery, *UploadSessionSelect](ctx, _s.UploadSessionQuery, _s, _s.inters, v)
}

func (_s *UploadSessionSelect) sqlScan(ctx context.Context, root *UploadSessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
