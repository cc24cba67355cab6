// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplacefield"
	"github.com/catalogmapper/catalog-mapper/gen/ent/predicate"
	"github.com/google/uuid"
)

// MarketplaceFieldQuery is the builder for querying MarketplaceField entities.
type MarketplaceFieldQuery struct {
	config
	ctx             *QueryContext
	order           []marketplacefield.OrderOption
	inters          []Interceptor
	predicates      []predicate.MarketplaceField
	withMarketplace *MarketplaceQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MarketplaceFieldQuery builder.
func (_q *MarketplaceFieldQuery) Where(ps ...predicate.MarketplaceField) *MarketplaceFieldQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MarketplaceFieldQuery) Limit(limit int) *MarketplaceFieldQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MarketplaceFieldQuery) Offset(offset int) *MarketplaceFieldQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MarketplaceFieldQuery) Unique(unique bool) *MarketplaceFieldQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MarketplaceFieldQuery) Order(o ...marketplacefield.OrderOption) *MarketplaceFieldQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMarketplace chains the current query on the "marketplace" edge.
func (_q *MarketplaceFieldQuery) QueryMarketplace() *MarketplaceQuery {
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
			sqlgraph.From(marketplacefield.Table, marketplacefield.FieldID, selector),
			sqlgraph.To(marketplace.Table, marketplace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, marketplacefield.MarketplaceTable, marketplacefield.MarketplaceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MarketplaceField entity from the query.
// Returns a *NotFoundError when no MarketplaceField was found.
func (_q *MarketplaceFieldQuery) First(ctx context.Context) (*MarketplaceField, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{marketplacefield.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MarketplaceFieldQuery) FirstX(ctx context.Context) *MarketplaceField {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MarketplaceField ID from the query.
// Returns a *NotFoundError when no MarketplaceField ID was found.
func (_q *MarketplaceFieldQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{marketplacefield.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MarketplaceFieldQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MarketplaceField entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MarketplaceField entity is found.
// Returns a *NotFoundError when no MarketplaceField entities are found.
func (_q *MarketplaceFieldQuery) Only(ctx context.Context) (*MarketplaceField, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{marketplacefield.Label}
	default:
		return nil, &NotSingularError{marketplacefield.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MarketplaceFieldQuery) OnlyX(ctx context.Context) *MarketplaceField {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MarketplaceField ID in the query.
// Returns a *NotSingularError when more than one MarketplaceField ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MarketplaceFieldQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{marketplacefield.Label}
	default:
		err = &NotSingularError{marketplacefield.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MarketplaceFieldQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MarketplaceFields.
func (_q *MarketplaceFieldQuery) All(ctx context.Context) ([]*MarketplaceField, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MarketplaceField, *MarketplaceFieldQuery]()
	return withInterceptors[[]*MarketplaceField](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MarketplaceFieldQuery) AllX(ctx context.Context) []*MarketplaceField {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MarketplaceField IDs.
func (_q *MarketplaceFieldQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(marketplacefield.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MarketplaceFieldQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MarketplaceFieldQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MarketplaceFieldQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MarketplaceFieldQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MarketplaceFieldQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *MarketplaceFieldQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MarketplaceFieldQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MarketplaceFieldQuery) Clone() *MarketplaceFieldQuery {
	if _q == nil {
		return nil
	}
	return &MarketplaceFieldQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]marketplacefield.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.MarketplaceField{}, _q.predicates...),
		withMarketplace: _q.withMarketplace.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMarketplace tells the query-builder to eager-load the nodes that are connected to
// the "marketplace" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MarketplaceFieldQuery) WithMarketplace(opts ...func(*MarketplaceQuery)) *MarketplaceFieldQuery {
	query := (&MarketplaceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMarketplace = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		MarketplaceID uuid.UUID `json:"marketplace_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MarketplaceField.Query().
//		GroupBy(marketplacefield.FieldMarketplaceID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MarketplaceFieldQuery) GroupBy(field string, fields ...string) *MarketplaceFieldGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MarketplaceFieldGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = marketplacefield.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		MarketplaceID uuid.UUID `json:"marketplace_id,omitempty"`
//	}
//
//	client.MarketplaceField.Query().
//		Select(marketplacefield.FieldMarketplaceID).
//		Scan(ctx, &v)
func (_q *MarketplaceFieldQuery) Select(fields ...string) *MarketplaceFieldSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MarketplaceFieldSelect{MarketplaceFieldQuery: _q}
	sbuild.label = marketplacefield.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MarketplaceFieldSelect configured with the given aggregations.
func (_q *MarketplaceFieldQuery) Aggregate(fns ...AggregateFunc) *MarketplaceFieldSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MarketplaceFieldQuery) prepareQuery(ctx context.Context) error {
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
		if !marketplacefield.ValidColumn(f) {
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

func (_q *MarketplaceFieldQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MarketplaceField, error) {
	var (
		nodes       = []*MarketplaceField{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withMarketplace != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MarketplaceField).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MarketplaceField{config: _q.config}
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
			func(n *MarketplaceField, e *Marketplace) { n.Edges.Marketplace = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MarketplaceFieldQuery) loadMarketplace(ctx context.Context, query *MarketplaceQuery, nodes []*MarketplaceField, init func(*MarketplaceField), assign func(*MarketplaceField, *Marketplace)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*MarketplaceField)
	for i := range nodes {
		fk := nodes[i].MarketplaceID
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

func (_q *MarketplaceFieldQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MarketplaceFieldQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(marketplacefield.Table, marketplacefield.Columns, sqlgraph.NewFieldSpec(marketplacefield.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, marketplacefield.FieldID)
		for i := range fields {
			if fields[i] != marketplacefield.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withMarketplace != nil {
			_spec.Node.AddColumnOnce(marketplacefield.FieldMarketplaceID)
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

func (_q *MarketplaceFieldQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(marketplacefield.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = marketplacefield.Columns
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

// MarketplaceFieldGroupBy is the group-by builder for MarketplaceField entities.
type MarketplaceFieldGroupBy struct {
	selector
	build *MarketplaceFieldQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MarketplaceFieldGroupBy) Aggregate(fns ...AggregateFunc) *MarketplaceFieldGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MarketplaceFieldGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MarketplaceFieldQuery, *MarketplaceFieldGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MarketplaceFieldGroupBy) sqlScan(ctx context.Context, root *MarketplaceFieldQuery, v any) error {
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

// MarketplaceFieldSelect is the builder for selecting fields of MarketplaceField entities.
type MarketplaceFieldSelect struct {
	*MarketplaceFieldQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MarketplaceFieldSelect) Aggregate(fns ...AggregateFunc) *MarketplaceFieldSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MarketplaceFieldSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MarketplaceFieldQuery, *MarketplaceFieldSelect](ctx, _s.MarketplaceFieldQuery, _s, _s.inters, v)
}

func (_s *MarketplaceFieldSelect) sqlScan(ctx context.Context, root *MarketplaceFieldQuery, v any) error {
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
