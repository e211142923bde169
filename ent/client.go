// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mediqo/mediqo/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mediqo/mediqo/ent/appointment"
	"github.com/mediqo/mediqo/ent/clinic"
	"github.com/mediqo/mediqo/ent/conversationturn"
	"github.com/mediqo/mediqo/ent/escalation"
	"github.com/mediqo/mediqo/ent/hold"
	"github.com/mediqo/mediqo/ent/patient"
	"github.com/mediqo/mediqo/ent/policysnapshot"
	"github.com/mediqo/mediqo/ent/session"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// Clinic is the client for interacting with the Clinic builders.
	Clinic *ClinicClient
	// ConversationTurn is the client for interacting with the ConversationTurn builders.
	ConversationTurn *ConversationTurnClient
	// Escalation is the client for interacting with the Escalation builders.
	Escalation *EscalationClient
	// Hold is the client for interacting with the Hold builders.
	Hold *HoldClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// PolicySnapshot is the client for interacting with the PolicySnapshot builders.
	PolicySnapshot *PolicySnapshotClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Appointment = NewAppointmentClient(c.config)
	c.Clinic = NewClinicClient(c.config)
	c.ConversationTurn = NewConversationTurnClient(c.config)
	c.Escalation = NewEscalationClient(c.config)
	c.Hold = NewHoldClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.PolicySnapshot = NewPolicySnapshotClient(c.config)
	c.Session = NewSessionClient(c.config)
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
		Appointment:      NewAppointmentClient(cfg),
		Clinic:           NewClinicClient(cfg),
		ConversationTurn: NewConversationTurnClient(cfg),
		Escalation:       NewEscalationClient(cfg),
		Hold:             NewHoldClient(cfg),
		Patient:          NewPatientClient(cfg),
		PolicySnapshot:   NewPolicySnapshotClient(cfg),
		Session:          NewSessionClient(cfg),
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
		Appointment:      NewAppointmentClient(cfg),
		Clinic:           NewClinicClient(cfg),
		ConversationTurn: NewConversationTurnClient(cfg),
		Escalation:       NewEscalationClient(cfg),
		Hold:             NewHoldClient(cfg),
		Patient:          NewPatientClient(cfg),
		PolicySnapshot:   NewPolicySnapshotClient(cfg),
		Session:          NewSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Appointment.
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
		c.Appointment, c.Clinic, c.ConversationTurn, c.Escalation, c.Hold, c.Patient,
		c.PolicySnapshot, c.Session,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Appointment, c.Clinic, c.ConversationTurn, c.Escalation, c.Hold, c.Patient,
		c.PolicySnapshot, c.Session,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *ClinicMutation:
		return c.Clinic.mutate(ctx, m)
	case *ConversationTurnMutation:
		return c.ConversationTurn.mutate(ctx, m)
	case *EscalationMutation:
		return c.Escalation.mutate(ctx, m)
	case *HoldMutation:
		return c.Hold.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *PolicySnapshotMutation:
		return c.PolicySnapshot.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AppointmentClient is a client for the Appointment schema.
type AppointmentClient struct {
	config
}

// NewAppointmentClient returns a client for the Appointment from the given config.
func NewAppointmentClient(c config) *AppointmentClient {
	return &AppointmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointment.Hooks(f(g(h())))`.
func (c *AppointmentClient) Use(hooks ...Hook) {
	c.hooks.Appointment = append(c.hooks.Appointment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointment.Intercept(f(g(h())))`.
func (c *AppointmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appointment = append(c.inters.Appointment, interceptors...)
}

// Create returns a builder for creating a Appointment entity.
func (c *AppointmentClient) Create() *AppointmentCreate {
	mutation := newAppointmentMutation(c.config, OpCreate)
	return &AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appointment entities.
func (c *AppointmentClient) CreateBulk(builders ...*AppointmentCreate) *AppointmentCreateBulk {
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentClient) MapCreateBulk(slice any, setFunc func(*AppointmentCreate, int)) *AppointmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentCreateBulk{err: fmt.Errorf("calling to AppointmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appointment.
func (c *AppointmentClient) Update() *AppointmentUpdate {
	mutation := newAppointmentMutation(c.config, OpUpdate)
	return &AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentClient) UpdateOne(_m *Appointment) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointment(_m))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentClient) UpdateOneID(id string) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointmentID(id))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appointment.
func (c *AppointmentClient) Delete() *AppointmentDelete {
	mutation := newAppointmentMutation(c.config, OpDelete)
	return &AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentClient) DeleteOne(_m *Appointment) *AppointmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentClient) DeleteOneID(id string) *AppointmentDeleteOne {
	builder := c.Delete().Where(appointment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentDeleteOne{builder}
}

// Query returns a query builder for Appointment.
func (c *AppointmentClient) Query() *AppointmentQuery {
	return &AppointmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointment},
		inters: c.Interceptors(),
	}
}

// Get returns a Appointment entity by its id.
func (c *AppointmentClient) Get(ctx context.Context, id string) (*Appointment, error) {
	return c.Query().Where(appointment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentClient) GetX(ctx context.Context, id string) *Appointment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentClient) Hooks() []Hook {
	return c.hooks.Appointment
}

// Interceptors returns the client interceptors.
func (c *AppointmentClient) Interceptors() []Interceptor {
	return c.inters.Appointment
}

func (c *AppointmentClient) mutate(ctx context.Context, m *AppointmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Appointment mutation op: %q", m.Op())
	}
}

// ClinicClient is a client for the Clinic schema.
type ClinicClient struct {
	config
}

// NewClinicClient returns a client for the Clinic from the given config.
func NewClinicClient(c config) *ClinicClient {
	return &ClinicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinic.Hooks(f(g(h())))`.
func (c *ClinicClient) Use(hooks ...Hook) {
	c.hooks.Clinic = append(c.hooks.Clinic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinic.Intercept(f(g(h())))`.
func (c *ClinicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Clinic = append(c.inters.Clinic, interceptors...)
}

// Create returns a builder for creating a Clinic entity.
func (c *ClinicClient) Create() *ClinicCreate {
	mutation := newClinicMutation(c.config, OpCreate)
	return &ClinicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Clinic entities.
func (c *ClinicClient) CreateBulk(builders ...*ClinicCreate) *ClinicCreateBulk {
	return &ClinicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicClient) MapCreateBulk(slice any, setFunc func(*ClinicCreate, int)) *ClinicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicCreateBulk{err: fmt.Errorf("calling to ClinicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Clinic.
func (c *ClinicClient) Update() *ClinicUpdate {
	mutation := newClinicMutation(c.config, OpUpdate)
	return &ClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicClient) UpdateOne(_m *Clinic) *ClinicUpdateOne {
	mutation := newClinicMutation(c.config, OpUpdateOne, withClinic(_m))
	return &ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicClient) UpdateOneID(id string) *ClinicUpdateOne {
	mutation := newClinicMutation(c.config, OpUpdateOne, withClinicID(id))
	return &ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Clinic.
func (c *ClinicClient) Delete() *ClinicDelete {
	mutation := newClinicMutation(c.config, OpDelete)
	return &ClinicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicClient) DeleteOne(_m *Clinic) *ClinicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicClient) DeleteOneID(id string) *ClinicDeleteOne {
	builder := c.Delete().Where(clinic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicDeleteOne{builder}
}

// Query returns a query builder for Clinic.
func (c *ClinicClient) Query() *ClinicQuery {
	return &ClinicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinic},
		inters: c.Interceptors(),
	}
}

// Get returns a Clinic entity by its id.
func (c *ClinicClient) Get(ctx context.Context, id string) (*Clinic, error) {
	return c.Query().Where(clinic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicClient) GetX(ctx context.Context, id string) *Clinic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClinicClient) Hooks() []Hook {
	return c.hooks.Clinic
}

// Interceptors returns the client interceptors.
func (c *ClinicClient) Interceptors() []Interceptor {
	return c.inters.Clinic
}

func (c *ClinicClient) mutate(ctx context.Context, m *ClinicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Clinic mutation op: %q", m.Op())
	}
}

// ConversationTurnClient is a client for the ConversationTurn schema.
type ConversationTurnClient struct {
	config
}

// NewConversationTurnClient returns a client for the ConversationTurn from the given config.
func NewConversationTurnClient(c config) *ConversationTurnClient {
	return &ConversationTurnClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversationturn.Hooks(f(g(h())))`.
func (c *ConversationTurnClient) Use(hooks ...Hook) {
	c.hooks.ConversationTurn = append(c.hooks.ConversationTurn, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversationturn.Intercept(f(g(h())))`.
func (c *ConversationTurnClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversationTurn = append(c.inters.ConversationTurn, interceptors...)
}

// Create returns a builder for creating a ConversationTurn entity.
func (c *ConversationTurnClient) Create() *ConversationTurnCreate {
	mutation := newConversationTurnMutation(c.config, OpCreate)
	return &ConversationTurnCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversationTurn entities.
func (c *ConversationTurnClient) CreateBulk(builders ...*ConversationTurnCreate) *ConversationTurnCreateBulk {
	return &ConversationTurnCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationTurnClient) MapCreateBulk(slice any, setFunc func(*ConversationTurnCreate, int)) *ConversationTurnCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationTurnCreateBulk{err: fmt.Errorf("calling to ConversationTurnClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationTurnCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationTurnCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversationTurn.
func (c *ConversationTurnClient) Update() *ConversationTurnUpdate {
	mutation := newConversationTurnMutation(c.config, OpUpdate)
	return &ConversationTurnUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationTurnClient) UpdateOne(_m *ConversationTurn) *ConversationTurnUpdateOne {
	mutation := newConversationTurnMutation(c.config, OpUpdateOne, withConversationTurn(_m))
	return &ConversationTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationTurnClient) UpdateOneID(id string) *ConversationTurnUpdateOne {
	mutation := newConversationTurnMutation(c.config, OpUpdateOne, withConversationTurnID(id))
	return &ConversationTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversationTurn.
func (c *ConversationTurnClient) Delete() *ConversationTurnDelete {
	mutation := newConversationTurnMutation(c.config, OpDelete)
	return &ConversationTurnDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationTurnClient) DeleteOne(_m *ConversationTurn) *ConversationTurnDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationTurnClient) DeleteOneID(id string) *ConversationTurnDeleteOne {
	builder := c.Delete().Where(conversationturn.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationTurnDeleteOne{builder}
}

// Query returns a query builder for ConversationTurn.
func (c *ConversationTurnClient) Query() *ConversationTurnQuery {
	return &ConversationTurnQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversationTurn},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversationTurn entity by its id.
func (c *ConversationTurnClient) Get(ctx context.Context, id string) (*ConversationTurn, error) {
	return c.Query().Where(conversationturn.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationTurnClient) GetX(ctx context.Context, id string) *ConversationTurn {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ConversationTurn.
func (c *ConversationTurnClient) QuerySession(_m *ConversationTurn) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversationturn.Table, conversationturn.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversationturn.SessionTable, conversationturn.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationTurnClient) Hooks() []Hook {
	return c.hooks.ConversationTurn
}

// Interceptors returns the client interceptors.
func (c *ConversationTurnClient) Interceptors() []Interceptor {
	return c.inters.ConversationTurn
}

func (c *ConversationTurnClient) mutate(ctx context.Context, m *ConversationTurnMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationTurnCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationTurnUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationTurnDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversationTurn mutation op: %q", m.Op())
	}
}

// EscalationClient is a client for the Escalation schema.
type EscalationClient struct {
	config
}

// NewEscalationClient returns a client for the Escalation from the given config.
func NewEscalationClient(c config) *EscalationClient {
	return &EscalationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `escalation.Hooks(f(g(h())))`.
func (c *EscalationClient) Use(hooks ...Hook) {
	c.hooks.Escalation = append(c.hooks.Escalation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `escalation.Intercept(f(g(h())))`.
func (c *EscalationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Escalation = append(c.inters.Escalation, interceptors...)
}

// Create returns a builder for creating a Escalation entity.
func (c *EscalationClient) Create() *EscalationCreate {
	mutation := newEscalationMutation(c.config, OpCreate)
	return &EscalationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Escalation entities.
func (c *EscalationClient) CreateBulk(builders ...*EscalationCreate) *EscalationCreateBulk {
	return &EscalationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EscalationClient) MapCreateBulk(slice any, setFunc func(*EscalationCreate, int)) *EscalationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EscalationCreateBulk{err: fmt.Errorf("calling to EscalationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EscalationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EscalationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Escalation.
func (c *EscalationClient) Update() *EscalationUpdate {
	mutation := newEscalationMutation(c.config, OpUpdate)
	return &EscalationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EscalationClient) UpdateOne(_m *Escalation) *EscalationUpdateOne {
	mutation := newEscalationMutation(c.config, OpUpdateOne, withEscalation(_m))
	return &EscalationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EscalationClient) UpdateOneID(id string) *EscalationUpdateOne {
	mutation := newEscalationMutation(c.config, OpUpdateOne, withEscalationID(id))
	return &EscalationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Escalation.
func (c *EscalationClient) Delete() *EscalationDelete {
	mutation := newEscalationMutation(c.config, OpDelete)
	return &EscalationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EscalationClient) DeleteOne(_m *Escalation) *EscalationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EscalationClient) DeleteOneID(id string) *EscalationDeleteOne {
	builder := c.Delete().Where(escalation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EscalationDeleteOne{builder}
}

// Query returns a query builder for Escalation.
func (c *EscalationClient) Query() *EscalationQuery {
	return &EscalationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEscalation},
		inters: c.Interceptors(),
	}
}

// Get returns a Escalation entity by its id.
func (c *EscalationClient) Get(ctx context.Context, id string) (*Escalation, error) {
	return c.Query().Where(escalation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EscalationClient) GetX(ctx context.Context, id string) *Escalation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EscalationClient) Hooks() []Hook {
	return c.hooks.Escalation
}

// Interceptors returns the client interceptors.
func (c *EscalationClient) Interceptors() []Interceptor {
	return c.inters.Escalation
}

func (c *EscalationClient) mutate(ctx context.Context, m *EscalationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EscalationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EscalationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EscalationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EscalationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Escalation mutation op: %q", m.Op())
	}
}

// HoldClient is a client for the Hold schema.
type HoldClient struct {
	config
}

// NewHoldClient returns a client for the Hold from the given config.
func NewHoldClient(c config) *HoldClient {
	return &HoldClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hold.Hooks(f(g(h())))`.
func (c *HoldClient) Use(hooks ...Hook) {
	c.hooks.Hold = append(c.hooks.Hold, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hold.Intercept(f(g(h())))`.
func (c *HoldClient) Intercept(interceptors ...Interceptor) {
	c.inters.Hold = append(c.inters.Hold, interceptors...)
}

// Create returns a builder for creating a Hold entity.
func (c *HoldClient) Create() *HoldCreate {
	mutation := newHoldMutation(c.config, OpCreate)
	return &HoldCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Hold entities.
func (c *HoldClient) CreateBulk(builders ...*HoldCreate) *HoldCreateBulk {
	return &HoldCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HoldClient) MapCreateBulk(slice any, setFunc func(*HoldCreate, int)) *HoldCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HoldCreateBulk{err: fmt.Errorf("calling to HoldClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HoldCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HoldCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Hold.
func (c *HoldClient) Update() *HoldUpdate {
	mutation := newHoldMutation(c.config, OpUpdate)
	return &HoldUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HoldClient) UpdateOne(_m *Hold) *HoldUpdateOne {
	mutation := newHoldMutation(c.config, OpUpdateOne, withHold(_m))
	return &HoldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HoldClient) UpdateOneID(id string) *HoldUpdateOne {
	mutation := newHoldMutation(c.config, OpUpdateOne, withHoldID(id))
	return &HoldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Hold.
func (c *HoldClient) Delete() *HoldDelete {
	mutation := newHoldMutation(c.config, OpDelete)
	return &HoldDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HoldClient) DeleteOne(_m *Hold) *HoldDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HoldClient) DeleteOneID(id string) *HoldDeleteOne {
	builder := c.Delete().Where(hold.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HoldDeleteOne{builder}
}

// Query returns a query builder for Hold.
func (c *HoldClient) Query() *HoldQuery {
	return &HoldQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHold},
		inters: c.Interceptors(),
	}
}

// Get returns a Hold entity by its id.
func (c *HoldClient) Get(ctx context.Context, id string) (*Hold, error) {
	return c.Query().Where(hold.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HoldClient) GetX(ctx context.Context, id string) *Hold {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HoldClient) Hooks() []Hook {
	return c.hooks.Hold
}

// Interceptors returns the client interceptors.
func (c *HoldClient) Interceptors() []Interceptor {
	return c.inters.Hold
}

func (c *HoldClient) mutate(ctx context.Context, m *HoldMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HoldCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HoldUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HoldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HoldDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Hold mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id string) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id string) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id string) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id string) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Patient mutation op: %q", m.Op())
	}
}

// PolicySnapshotClient is a client for the PolicySnapshot schema.
type PolicySnapshotClient struct {
	config
}

// NewPolicySnapshotClient returns a client for the PolicySnapshot from the given config.
func NewPolicySnapshotClient(c config) *PolicySnapshotClient {
	return &PolicySnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `policysnapshot.Hooks(f(g(h())))`.
func (c *PolicySnapshotClient) Use(hooks ...Hook) {
	c.hooks.PolicySnapshot = append(c.hooks.PolicySnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `policysnapshot.Intercept(f(g(h())))`.
func (c *PolicySnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.PolicySnapshot = append(c.inters.PolicySnapshot, interceptors...)
}

// Create returns a builder for creating a PolicySnapshot entity.
func (c *PolicySnapshotClient) Create() *PolicySnapshotCreate {
	mutation := newPolicySnapshotMutation(c.config, OpCreate)
	return &PolicySnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PolicySnapshot entities.
func (c *PolicySnapshotClient) CreateBulk(builders ...*PolicySnapshotCreate) *PolicySnapshotCreateBulk {
	return &PolicySnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PolicySnapshotClient) MapCreateBulk(slice any, setFunc func(*PolicySnapshotCreate, int)) *PolicySnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PolicySnapshotCreateBulk{err: fmt.Errorf("calling to PolicySnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PolicySnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PolicySnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PolicySnapshot.
func (c *PolicySnapshotClient) Update() *PolicySnapshotUpdate {
	mutation := newPolicySnapshotMutation(c.config, OpUpdate)
	return &PolicySnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PolicySnapshotClient) UpdateOne(_m *PolicySnapshot) *PolicySnapshotUpdateOne {
	mutation := newPolicySnapshotMutation(c.config, OpUpdateOne, withPolicySnapshot(_m))
	return &PolicySnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PolicySnapshotClient) UpdateOneID(id string) *PolicySnapshotUpdateOne {
	mutation := newPolicySnapshotMutation(c.config, OpUpdateOne, withPolicySnapshotID(id))
	return &PolicySnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PolicySnapshot.
func (c *PolicySnapshotClient) Delete() *PolicySnapshotDelete {
	mutation := newPolicySnapshotMutation(c.config, OpDelete)
	return &PolicySnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PolicySnapshotClient) DeleteOne(_m *PolicySnapshot) *PolicySnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PolicySnapshotClient) DeleteOneID(id string) *PolicySnapshotDeleteOne {
	builder := c.Delete().Where(policysnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PolicySnapshotDeleteOne{builder}
}

// Query returns a query builder for PolicySnapshot.
func (c *PolicySnapshotClient) Query() *PolicySnapshotQuery {
	return &PolicySnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePolicySnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a PolicySnapshot entity by its id.
func (c *PolicySnapshotClient) Get(ctx context.Context, id string) (*PolicySnapshot, error) {
	return c.Query().Where(policysnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PolicySnapshotClient) GetX(ctx context.Context, id string) *PolicySnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PolicySnapshotClient) Hooks() []Hook {
	return c.hooks.PolicySnapshot
}

// Interceptors returns the client interceptors.
func (c *PolicySnapshotClient) Interceptors() []Interceptor {
	return c.inters.PolicySnapshot
}

func (c *PolicySnapshotClient) mutate(ctx context.Context, m *PolicySnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PolicySnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PolicySnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PolicySnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PolicySnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PolicySnapshot mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTurns queries the turns edge of a Session.
func (c *SessionClient) QueryTurns(_m *Session) *ConversationTurnQuery {
	query := (&ConversationTurnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(conversationturn.Table, conversationturn.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.TurnsTable, session.TurnsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Appointment, Clinic, ConversationTurn, Escalation, Hold, Patient,
		PolicySnapshot, Session []ent.Hook
	}
	inters struct {
		Appointment, Clinic, ConversationTurn, Escalation, Hold, Patient,
		PolicySnapshot, Session []ent.Interceptor
	}
)
