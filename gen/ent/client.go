// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/catalogmapper/catalog-mapper/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/catalogmapper/catalog-mapper/gen/ent/fieldmapping"
	"github.com/catalogmapper/catalog-mapper/gen/ent/generatedfile"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplace"
	"github.com/catalogmapper/catalog-mapper/gen/ent/marketplacefield"
	"github.com/catalogmapper/catalog-mapper/gen/ent/sessionrow"
	"github.com/catalogmapper/catalog-mapper/gen/ent/uploadsession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// FieldMapping is the client for interacting with the FieldMapping builders.
	FieldMapping *FieldMappingClient
	// GeneratedFile is the client for interacting with the GeneratedFile builders.
	GeneratedFile *GeneratedFileClient
	// Marketplace is the client for interacting with the Marketplace builders.
	Marketplace *MarketplaceClient
	// MarketplaceField is the client for interacting with the MarketplaceField builders.
	MarketplaceField *MarketplaceFieldClient
	// SessionRow is the client for interacting with the SessionRow builders.
	SessionRow *SessionRowClient
	// UploadSession is the client for interacting with the UploadSession builders.
	UploadSession *UploadSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.FieldMapping = NewFieldMappingClient(c.config)
	c.GeneratedFile = NewGeneratedFileClient(c.config)
	c.Marketplace = NewMarketplaceClient(c.config)
	c.MarketplaceField = NewMarketplaceFieldClient(c.config)
	c.SessionRow = NewSessionRowClient(c.config)
	c.UploadSession = NewUploadSessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		FieldMapping:     NewFieldMappingClient(cfg),
		GeneratedFile:    NewGeneratedFileClient(cfg),
		Marketplace:      NewMarketplaceClient(cfg),
		MarketplaceField: NewMarketplaceFieldClient(cfg),
		SessionRow:       NewSessionRowClient(cfg),
		UploadSession:    NewUploadSessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		FieldMapping:     NewFieldMappingClient(cfg),
		GeneratedFile:    NewGeneratedFileClient(cfg),
		Marketplace:      NewMarketplaceClient(cfg),
		MarketplaceField: NewMarketplaceFieldClient(cfg),
		SessionRow:       NewSessionRowClient(cfg),
		UploadSession:    NewUploadSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		FieldMapping.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.FieldMapping, c.GeneratedFile, c.Marketplace, c.MarketplaceField,
		c.SessionRow, c.UploadSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.FieldMapping, c.GeneratedFile, c.Marketplace, c.MarketplaceField,
		c.SessionRow, c.UploadSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FieldMappingMutation:
		return c.FieldMapping.mutate(ctx, m)
	case *GeneratedFileMutation:
		return c.GeneratedFile.mutate(ctx, m)
	case *MarketplaceMutation:
		return c.Marketplace.mutate(ctx, m)
	case *MarketplaceFieldMutation:
		return c.MarketplaceField.mutate(ctx, m)
	case *SessionRowMutation:
		return c.SessionRow.mutate(ctx, m)
	case *UploadSessionMutation:
		return c.UploadSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FieldMappingClient is a client for the FieldMapping schema.
type FieldMappingClient struct {
	config
}

// NewFieldMappingClient returns a client for the FieldMapping from the given config.
func NewFieldMappingClient(c config) *FieldMappingClient {
	return &FieldMappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fieldmapping.Hooks(f(g(h())))`.
func (c *FieldMappingClient) Use(hooks ...Hook) {
	c.hooks.FieldMapping = append(c.hooks.FieldMapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fieldmapping.Intercept(f(g(h())))`.
func (c *FieldMappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.FieldMapping = append(c.inters.FieldMapping, interceptors...)
}

// Create returns a builder for creating a FieldMapping entity.
func (c *FieldMappingClient) Create() *FieldMappingCreate {
	mutation := newFieldMappingMutation(c.config, OpCreate)
	return &FieldMappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FieldMapping entities.
func (c *FieldMappingClient) CreateBulk(builders ...*FieldMappingCreate) *FieldMappingCreateBulk {
	return &FieldMappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FieldMappingClient) MapCreateBulk(slice any, setFunc func(*FieldMappingCreate, int)) *FieldMappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FieldMappingCreateBulk{err: fmt.Errorf("calling to FieldMappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FieldMappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FieldMappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FieldMapping.
func (c *FieldMappingClient) Update() *FieldMappingUpdate {
	mutation := newFieldMappingMutation(c.config, OpUpdate)
	return &FieldMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FieldMappingClient) UpdateOne(_m *FieldMapping) *FieldMappingUpdateOne {
	mutation := newFieldMappingMutation(c.config, OpUpdateOne, withFieldMapping(_m))
	return &FieldMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FieldMappingClient) UpdateOneID(id uuid.UUID) *FieldMappingUpdateOne {
	mutation := newFieldMappingMutation(c.config, OpUpdateOne, withFieldMappingID(id))
	return &FieldMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FieldMapping.
func (c *FieldMappingClient) Delete() *FieldMappingDelete {
	mutation := newFieldMappingMutation(c.config, OpDelete)
	return &FieldMappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FieldMappingClient) DeleteOne(_m *FieldMapping) *FieldMappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FieldMappingClient) DeleteOneID(id uuid.UUID) *FieldMappingDeleteOne {
	builder := c.Delete().Where(fieldmapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FieldMappingDeleteOne{builder}
}

// Query returns a query builder for FieldMapping.
func (c *FieldMappingClient) Query() *FieldMappingQuery {
	return &FieldMappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFieldMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a FieldMapping entity by its id.
func (c *FieldMappingClient) Get(ctx context.Context, id uuid.UUID) (*FieldMapping, error) {
	return c.Query().Where(fieldmapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FieldMappingClient) GetX(ctx context.Context, id uuid.UUID) *FieldMapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a FieldMapping.
func (c *FieldMappingClient) QuerySession(_m *FieldMapping) *UploadSessionQuery {
	query := (&UploadSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fieldmapping.Table, fieldmapping.FieldID, id),
			sqlgraph.To(uploadsession.Table, uploadsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fieldmapping.SessionTable, fieldmapping.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FieldMappingClient) Hooks() []Hook {
	return c.hooks.FieldMapping
}

// Interceptors returns the client interceptors.
func (c *FieldMappingClient) Interceptors() []Interceptor {
	return c.inters.FieldMapping
}

func (c *FieldMappingClient) mutate(ctx context.Context, m *FieldMappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FieldMappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FieldMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FieldMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FieldMappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FieldMapping mutation op: %q", m.Op())
	}
}

// GeneratedFileClient is a client for the GeneratedFile schema.
type GeneratedFileClient struct {
	config
}

// NewGeneratedFileClient returns a client for the GeneratedFile from the given config.
func NewGeneratedFileClient(c config) *GeneratedFileClient {
	return &GeneratedFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generatedfile.Hooks(f(g(h())))`.
func (c *GeneratedFileClient) Use(hooks ...Hook) {
	c.hooks.GeneratedFile = append(c.hooks.GeneratedFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generatedfile.Intercept(f(g(h())))`.
func (c *GeneratedFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.GeneratedFile = append(c.inters.GeneratedFile, interceptors...)
}

// Create returns a builder for creating a GeneratedFile entity.
func (c *GeneratedFileClient) Create() *GeneratedFileCreate {
	mutation := newGeneratedFileMutation(c.config, OpCreate)
	return &GeneratedFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GeneratedFile entities.
func (c *GeneratedFileClient) CreateBulk(builders ...*GeneratedFileCreate) *GeneratedFileCreateBulk {
	return &GeneratedFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GeneratedFileClient) MapCreateBulk(slice any, setFunc func(*GeneratedFileCreate, int)) *GeneratedFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GeneratedFileCreateBulk{err: fmt.Errorf("calling to GeneratedFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GeneratedFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GeneratedFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GeneratedFile.
func (c *GeneratedFileClient) Update() *GeneratedFileUpdate {
	mutation := newGeneratedFileMutation(c.config, OpUpdate)
	return &GeneratedFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GeneratedFileClient) UpdateOne(_m *GeneratedFile) *GeneratedFileUpdateOne {
	mutation := newGeneratedFileMutation(c.config, OpUpdateOne, withGeneratedFile(_m))
	return &GeneratedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GeneratedFileClient) UpdateOneID(id uuid.UUID) *GeneratedFileUpdateOne {
	mutation := newGeneratedFileMutation(c.config, OpUpdateOne, withGeneratedFileID(id))
	return &GeneratedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GeneratedFile.
func (c *GeneratedFileClient) Delete() *GeneratedFileDelete {
	mutation := newGeneratedFileMutation(c.config, OpDelete)
	return &GeneratedFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GeneratedFileClient) DeleteOne(_m *GeneratedFile) *GeneratedFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GeneratedFileClient) DeleteOneID(id uuid.UUID) *GeneratedFileDeleteOne {
	builder := c.Delete().Where(generatedfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GeneratedFileDeleteOne{builder}
}

// Query returns a query builder for GeneratedFile.
func (c *GeneratedFileClient) Query() *GeneratedFileQuery {
	return &GeneratedFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGeneratedFile},
		inters: c.Interceptors(),
	}
}

// Get returns a GeneratedFile entity by its id.
func (c *GeneratedFileClient) Get(ctx context.Context, id uuid.UUID) (*GeneratedFile, error) {
	return c.Query().Where(generatedfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GeneratedFileClient) GetX(ctx context.Context, id uuid.UUID) *GeneratedFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a GeneratedFile.
func (c *GeneratedFileClient) QuerySession(_m *GeneratedFile) *UploadSessionQuery {
	query := (&UploadSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedfile.Table, generatedfile.FieldID, id),
			sqlgraph.To(uploadsession.Table, uploadsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedfile.SessionTable, generatedfile.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GeneratedFileClient) Hooks() []Hook {
	return c.hooks.GeneratedFile
}

// Interceptors returns the client interceptors.
func (c *GeneratedFileClient) Interceptors() []Interceptor {
	return c.inters.GeneratedFile
}

func (c *GeneratedFileClient) mutate(ctx context.Context, m *GeneratedFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GeneratedFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GeneratedFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GeneratedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GeneratedFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GeneratedFile mutation op: %q", m.Op())
	}
}

// MarketplaceClient is a client for the Marketplace schema.
type MarketplaceClient struct {
	config
}

// NewMarketplaceClient returns a client for the Marketplace from the given config.
func NewMarketplaceClient(c config) *MarketplaceClient {
	return &MarketplaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `marketplace.Hooks(f(g(h())))`.
func (c *MarketplaceClient) Use(hooks ...Hook) {
	c.hooks.Marketplace = append(c.hooks.Marketplace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `marketplace.Intercept(f(g(h())))`.
func (c *MarketplaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Marketplace = append(c.inters.Marketplace, interceptors...)
}

// Create returns a builder for creating a Marketplace entity.
func (c *MarketplaceClient) Create() *MarketplaceCreate {
	mutation := newMarketplaceMutation(c.config, OpCreate)
	return &MarketplaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Marketplace entities.
func (c *MarketplaceClient) CreateBulk(builders ...*MarketplaceCreate) *MarketplaceCreateBulk {
	return &MarketplaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MarketplaceClient) MapCreateBulk(slice any, setFunc func(*MarketplaceCreate, int)) *MarketplaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MarketplaceCreateBulk{err: fmt.Errorf("calling to MarketplaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MarketplaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MarketplaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Marketplace.
func (c *MarketplaceClient) Update() *MarketplaceUpdate {
	mutation := newMarketplaceMutation(c.config, OpUpdate)
	return &MarketplaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MarketplaceClient) UpdateOne(_m *Marketplace) *MarketplaceUpdateOne {
	mutation := newMarketplaceMutation(c.config, OpUpdateOne, withMarketplace(_m))
	return &MarketplaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MarketplaceClient) UpdateOneID(id uuid.UUID) *MarketplaceUpdateOne {
	mutation := newMarketplaceMutation(c.config, OpUpdateOne, withMarketplaceID(id))
	return &MarketplaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Marketplace.
func (c *MarketplaceClient) Delete() *MarketplaceDelete {
	mutation := newMarketplaceMutation(c.config, OpDelete)
	return &MarketplaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MarketplaceClient) DeleteOne(_m *Marketplace) *MarketplaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MarketplaceClient) DeleteOneID(id uuid.UUID) *MarketplaceDeleteOne {
	builder := c.Delete().Where(marketplace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MarketplaceDeleteOne{builder}
}

// Query returns a query builder for Marketplace.
func (c *MarketplaceClient) Query() *MarketplaceQuery {
	return &MarketplaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMarketplace},
		inters: c.Interceptors(),
	}
}

// Get returns a Marketplace entity by its id.
func (c *MarketplaceClient) Get(ctx context.Context, id uuid.UUID) (*Marketplace, error) {
	return c.Query().Where(marketplace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MarketplaceClient) GetX(ctx context.Context, id uuid.UUID) *Marketplace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFields queries the fields edge of a Marketplace.
func (c *MarketplaceClient) QueryFields(_m *Marketplace) *MarketplaceFieldQuery {
	query := (&MarketplaceFieldClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(marketplace.Table, marketplace.FieldID, id),
			sqlgraph.To(marketplacefield.Table, marketplacefield.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, marketplace.FieldsTable, marketplace.FieldsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a Marketplace.
func (c *MarketplaceClient) QuerySessions(_m *Marketplace) *UploadSessionQuery {
	query := (&UploadSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(marketplace.Table, marketplace.FieldID, id),
			sqlgraph.To(uploadsession.Table, uploadsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, marketplace.SessionsTable, marketplace.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MarketplaceClient) Hooks() []Hook {
	return c.hooks.Marketplace
}

// Interceptors returns the client interceptors.
func (c *MarketplaceClient) Interceptors() []Interceptor {
	return c.inters.Marketplace
}

func (c *MarketplaceClient) mutate(ctx context.Context, m *MarketplaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MarketplaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MarketplaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MarketplaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MarketplaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Marketplace mutation op: %q", m.Op())
	}
}

// MarketplaceFieldClient is a client for the MarketplaceField schema.
type MarketplaceFieldClient struct {
	config
}

// NewMarketplaceFieldClient returns a client for the MarketplaceField from the given config.
func NewMarketplaceFieldClient(c config) *MarketplaceFieldClient {
	return &MarketplaceFieldClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `marketplacefield.Hooks(f(g(h())))`.
func (c *MarketplaceFieldClient) Use(hooks ...Hook) {
	c.hooks.MarketplaceField = append(c.hooks.MarketplaceField, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `marketplacefield.Intercept(f(g(h())))`.
func (c *MarketplaceFieldClient) Intercept(interceptors ...Interceptor) {
	c.inters.MarketplaceField = append(c.inters.MarketplaceField, interceptors...)
}

// Create returns a builder for creating a MarketplaceField entity.
func (c *MarketplaceFieldClient) Create() *MarketplaceFieldCreate {
	mutation := newMarketplaceFieldMutation(c.config, OpCreate)
	return &MarketplaceFieldCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MarketplaceField entities.
func (c *MarketplaceFieldClient) CreateBulk(builders ...*MarketplaceFieldCreate) *MarketplaceFieldCreateBulk {
	return &MarketplaceFieldCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MarketplaceFieldClient) MapCreateBulk(slice any, setFunc func(*MarketplaceFieldCreate, int)) *MarketplaceFieldCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MarketplaceFieldCreateBulk{err: fmt.Errorf("calling to MarketplaceFieldClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MarketplaceFieldCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MarketplaceFieldCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MarketplaceField.
func (c *MarketplaceFieldClient) Update() *MarketplaceFieldUpdate {
	mutation := newMarketplaceFieldMutation(c.config, OpUpdate)
	return &MarketplaceFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MarketplaceFieldClient) UpdateOne(_m *MarketplaceField) *MarketplaceFieldUpdateOne {
	mutation := newMarketplaceFieldMutation(c.config, OpUpdateOne, withMarketplaceField(_m))
	return &MarketplaceFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MarketplaceFieldClient) UpdateOneID(id uuid.UUID) *MarketplaceFieldUpdateOne {
	mutation := newMarketplaceFieldMutation(c.config, OpUpdateOne, withMarketplaceFieldID(id))
	return &MarketplaceFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MarketplaceField.
func (c *MarketplaceFieldClient) Delete() *MarketplaceFieldDelete {
	mutation := newMarketplaceFieldMutation(c.config, OpDelete)
	return &MarketplaceFieldDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MarketplaceFieldClient) DeleteOne(_m *MarketplaceField) *MarketplaceFieldDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MarketplaceFieldClient) DeleteOneID(id uuid.UUID) *MarketplaceFieldDeleteOne {
	builder := c.Delete().Where(marketplacefield.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MarketplaceFieldDeleteOne{builder}
}

// Query returns a query builder for MarketplaceField.
func (c *MarketplaceFieldClient) Query() *MarketplaceFieldQuery {
	return &MarketplaceFieldQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMarketplaceField},
		inters: c.Interceptors(),
	}
}

// Get returns a MarketplaceField entity by its id.
func (c *MarketplaceFieldClient) Get(ctx context.Context, id uuid.UUID) (*MarketplaceField, error) {
	return c.Query().Where(marketplacefield.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MarketplaceFieldClient) GetX(ctx context.Context, id uuid.UUID) *MarketplaceField {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMarketplace queries the marketplace edge of a MarketplaceField.
func (c *MarketplaceFieldClient) QueryMarketplace(_m *MarketplaceField) *MarketplaceQuery {
	query := (&MarketplaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(marketplacefield.Table, marketplacefield.FieldID, id),
			sqlgraph.To(marketplace.Table, marketplace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, marketplacefield.MarketplaceTable, marketplacefield.MarketplaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MarketplaceFieldClient) Hooks() []Hook {
	return c.hooks.MarketplaceField
}

// Interceptors returns the client interceptors.
func (c *MarketplaceFieldClient) Interceptors() []Interceptor {
	return c.inters.MarketplaceField
}

func (c *MarketplaceFieldClient) mutate(ctx context.Context, m *MarketplaceFieldMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MarketplaceFieldCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MarketplaceFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MarketplaceFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MarketplaceFieldDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MarketplaceField mutation op: %q", m.Op())
	}
}

// SessionRowClient is a client for the SessionRow schema.
type SessionRowClient struct {
	config
}

// NewSessionRowClient returns a client for the SessionRow from the given config.
func NewSessionRowClient(c config) *SessionRowClient {
	return &SessionRowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionrow.Hooks(f(g(h())))`.
func (c *SessionRowClient) Use(hooks ...Hook) {
	c.hooks.SessionRow = append(c.hooks.SessionRow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionrow.Intercept(f(g(h())))`.
func (c *SessionRowClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionRow = append(c.inters.SessionRow, interceptors...)
}

// Create returns a builder for creating a SessionRow entity.
func (c *SessionRowClient) Create() *SessionRowCreate {
	mutation := newSessionRowMutation(c.config, OpCreate)
	return &SessionRowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionRow entities.
func (c *SessionRowClient) CreateBulk(builders ...*SessionRowCreate) *SessionRowCreateBulk {
	return &SessionRowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionRowClient) MapCreateBulk(slice any, setFunc func(*SessionRowCreate, int)) *SessionRowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionRowCreateBulk{err: fmt.Errorf("calling to SessionRowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionRowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionRowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionRow.
func (c *SessionRowClient) Update() *SessionRowUpdate {
	mutation := newSessionRowMutation(c.config, OpUpdate)
	return &SessionRowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionRowClient) UpdateOne(_m *SessionRow) *SessionRowUpdateOne {
	mutation := newSessionRowMutation(c.config, OpUpdateOne, withSessionRow(_m))
	return &SessionRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionRowClient) UpdateOneID(id uuid.UUID) *SessionRowUpdateOne {
	mutation := newSessionRowMutation(c.config, OpUpdateOne, withSessionRowID(id))
	return &SessionRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionRow.
func (c *SessionRowClient) Delete() *SessionRowDelete {
	mutation := newSessionRowMutation(c.config, OpDelete)
	return &SessionRowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionRowClient) DeleteOne(_m *SessionRow) *SessionRowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionRowClient) DeleteOneID(id uuid.UUID) *SessionRowDeleteOne {
	builder := c.Delete().Where(sessionrow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionRowDeleteOne{builder}
}

// Query returns a query builder for SessionRow.
func (c *SessionRowClient) Query() *SessionRowQuery {
	return &SessionRowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionRow},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionRow entity by its id.
func (c *SessionRowClient) Get(ctx context.Context, id uuid.UUID) (*SessionRow, error) {
	return c.Query().Where(sessionrow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionRowClient) GetX(ctx context.Context, id uuid.UUID) *SessionRow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionRow.
func (c *SessionRowClient) QuerySession(_m *SessionRow) *UploadSessionQuery {
	query := (&UploadSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionrow.Table, sessionrow.FieldID, id),
			sqlgraph.To(uploadsession.Table, uploadsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessionrow.SessionTable, sessionrow.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionRowClient) Hooks() []Hook {
	return c.hooks.SessionRow
}

// Interceptors returns the client interceptors.
func (c *SessionRowClient) Interceptors() []Interceptor {
	return c.inters.SessionRow
}

func (c *SessionRowClient) mutate(ctx context.Context, m *SessionRowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionRowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionRowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionRowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionRow mutation op: %q", m.Op())
	}
}

// UploadSessionClient is a client for the UploadSession schema.
type UploadSessionClient struct {
	config
}

// NewUploadSessionClient returns a client for the UploadSession from the given config.
func NewUploadSessionClient(c config) *UploadSessionClient {
	return &UploadSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `uploadsession.Hooks(f(g(h())))`.
func (c *UploadSessionClient) Use(hooks ...Hook) {
	c.hooks.UploadSession = append(c.hooks.UploadSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `uploadsession.Intercept(f(g(h())))`.
func (c *UploadSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UploadSession = append(c.inters.UploadSession, interceptors...)
}

// Create returns a builder for creating a UploadSession entity.
func (c *UploadSessionClient) Create() *UploadSessionCreate {
	mutation := newUploadSessionMutation(c.config, OpCreate)
	return &UploadSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UploadSession entities.
func (c *UploadSessionClient) CreateBulk(builders ...*UploadSessionCreate) *UploadSessionCreateBulk {
	return &UploadSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadSessionClient) MapCreateBulk(slice any, setFunc func(*UploadSessionCreate, int)) *UploadSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadSessionCreateBulk{err: fmt.Errorf("calling to UploadSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UploadSession.
func (c *UploadSessionClient) Update() *UploadSessionUpdate {
	mutation := newUploadSessionMutation(c.config, OpUpdate)
	return &UploadSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadSessionClient) UpdateOne(_m *UploadSession) *UploadSessionUpdateOne {
	mutation := newUploadSessionMutation(c.config, OpUpdateOne, withUploadSession(_m))
	return &UploadSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadSessionClient) UpdateOneID(id uuid.UUID) *UploadSessionUpdateOne {
	mutation := newUploadSessionMutation(c.config, OpUpdateOne, withUploadSessionID(id))
	return &UploadSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UploadSession.
func (c *UploadSessionClient) Delete() *UploadSessionDelete {
	mutation := newUploadSessionMutation(c.config, OpDelete)
	return &UploadSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadSessionClient) DeleteOne(_m *UploadSession) *UploadSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadSessionClient) DeleteOneID(id uuid.UUID) *UploadSessionDeleteOne {
	builder := c.Delete().Where(uploadsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadSessionDeleteOne{builder}
}

// Query returns a query builder for UploadSession.
func (c *UploadSessionClient) Query() *UploadSessionQuery {
	return &UploadSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUploadSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UploadSession entity by its id.
func (c *UploadSessionClient) Get(ctx context.Context, id uuid.UUID) (*UploadSession, error) {
	return c.Query().Where(uploadsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadSessionClient) GetX(ctx context.Context, id uuid.UUID) *UploadSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMarketplace queries the marketplace edge of a UploadSession.
func (c *UploadSessionClient) QueryMarketplace(_m *UploadSession) *MarketplaceQuery {
	query := (&MarketplaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadsession.Table, uploadsession.FieldID, id),
			sqlgraph.To(marketplace.Table, marketplace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, uploadsession.MarketplaceTable, uploadsession.MarketplaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRows queries the rows edge of a UploadSession.
func (c *UploadSessionClient) QueryRows(_m *UploadSession) *SessionRowQuery {
	query := (&SessionRowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadsession.Table, uploadsession.FieldID, id),
			sqlgraph.To(sessionrow.Table, sessionrow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadsession.RowsTable, uploadsession.RowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMappings queries the mappings edge of a UploadSession.
func (c *UploadSessionClient) QueryMappings(_m *UploadSession) *FieldMappingQuery {
	query := (&FieldMappingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadsession.Table, uploadsession.FieldID, id),
			sqlgraph.To(fieldmapping.Table, fieldmapping.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadsession.MappingsTable, uploadsession.MappingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGeneratedFiles queries the generated_files edge of a UploadSession.
func (c *UploadSessionClient) QueryGeneratedFiles(_m *UploadSession) *GeneratedFileQuery {
	query := (&GeneratedFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadsession.Table, uploadsession.FieldID, id),
			sqlgraph.To(generatedfile.Table, generatedfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadsession.GeneratedFilesTable, uploadsession.GeneratedFilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UploadSessionClient) Hooks() []Hook {
	return c.hooks.UploadSession
}

// Interceptors returns the client interceptors.
func (c *UploadSessionClient) Interceptors() []Interceptor {
	return c.inters.UploadSession
}

func (c *UploadSessionClient) mutate(ctx context.Context, m *UploadSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UploadSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		FieldMapping, GeneratedFile, Marketplace, MarketplaceField, SessionRow,
		UploadSession []ent.Hook
	}
	inters struct {
		FieldMapping, GeneratedFile, Marketplace, MarketplaceField, SessionRow,
		UploadSession []ent.Interceptor
	}
)
