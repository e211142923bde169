// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediqo/mediqo/ent/conversationturn"
	"github.com/mediqo/mediqo/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetPhone sets the "phone" field.
func (_c *SessionCreate) SetPhone(v string) *SessionCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *SessionCreate) SetClinicID(v string) *SessionCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *SessionCreate) SetLanguage(v string) *SessionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLanguage(v *string) *SessionCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionCreate) SetStartedAt(v time.Time) *SessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStartedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *SessionCreate) SetLastActivityAt(v time.Time) *SessionCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLastActivityAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetPrevSessionID sets the "prev_session_id" field.
func (_c *SessionCreate) SetPrevSessionID(v string) *SessionCreate {
	_c.mutation.SetPrevSessionID(v)
	return _c
}

// SetNillablePrevSessionID sets the "prev_session_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePrevSessionID(v *string) *SessionCreate {
	if v != nil {
		_c.SetPrevSessionID(*v)
	}
	return _c
}

// SetResetKind sets the "reset_kind" field.
func (_c *SessionCreate) SetResetKind(v session.ResetKind) *SessionCreate {
	_c.mutation.SetResetKind(v)
	return _c
}

// SetNillableResetKind sets the "reset_kind" field if the given value is not nil.
func (_c *SessionCreate) SetNillableResetKind(v *session.ResetKind) *SessionCreate {
	if v != nil {
		_c.SetResetKind(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *SessionCreate) SetSummary(v string) *SessionCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSummary(v *string) *SessionCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetSummaryStatus sets the "summary_status" field.
func (_c *SessionCreate) SetSummaryStatus(v session.SummaryStatus) *SessionCreate {
	_c.mutation.SetSummaryStatus(v)
	return _c
}

// SetNillableSummaryStatus sets the "summary_status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSummaryStatus(v *session.SummaryStatus) *SessionCreate {
	if v != nil {
		_c.SetSummaryStatus(*v)
	}
	return _c
}

// SetEpisode sets the "episode" field.
func (_c *SessionCreate) SetEpisode(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetEpisode(v)
	return _c
}

// SetPendingAction sets the "pending_action" field.
func (_c *SessionCreate) SetPendingAction(v string) *SessionCreate {
	_c.mutation.SetPendingAction(v)
	return _c
}

// SetNillablePendingAction sets the "pending_action" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePendingAction(v *string) *SessionCreate {
	if v != nil {
		_c.SetPendingAction(*v)
	}
	return _c
}

// SetLastServiceMentioned sets the "last_service_mentioned" field.
func (_c *SessionCreate) SetLastServiceMentioned(v string) *SessionCreate {
	_c.mutation.SetLastServiceMentioned(v)
	return _c
}

// SetNillableLastServiceMentioned sets the "last_service_mentioned" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLastServiceMentioned(v *string) *SessionCreate {
	if v != nil {
		_c.SetLastServiceMentioned(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *SessionCreate) SetClosedAt(v time.Time) *SessionCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableClosedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTurnIDs adds the "turns" edge to the ConversationTurn entity by IDs.
func (_c *SessionCreate) AddTurnIDs(ids ...string) *SessionCreate {
	_c.mutation.AddTurnIDs(ids...)
	return _c
}

// AddTurns adds the "turns" edges to the ConversationTurn entity.
func (_c *SessionCreate) AddTurns(v ...*ConversationTurn) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTurnIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := session.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		v := session.DefaultLastActivityAt()
		_c.mutation.SetLastActivityAt(v)
	}
	if _, ok := _c.mutation.ResetKind(); !ok {
		v := session.DefaultResetKind
		_c.mutation.SetResetKind(v)
	}
	if _, ok := _c.mutation.SummaryStatus(); !ok {
		v := session.DefaultSummaryStatus
		_c.mutation.SetSummaryStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "Session.phone"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`ent: missing required field "Session.clinic_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Session.started_at"`)}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`ent: missing required field "Session.last_activity_at"`)}
	}
	if _, ok := _c.mutation.ResetKind(); !ok {
		return &ValidationError{Name: "reset_kind", err: errors.New(`ent: missing required field "Session.reset_kind"`)}
	}
	if v, ok := _c.mutation.ResetKind(); ok {
		if err := session.ResetKindValidator(v); err != nil {
			return &ValidationError{Name: "reset_kind", err: fmt.Errorf(`ent: validator failed for field "Session.reset_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SummaryStatus(); !ok {
		return &ValidationError{Name: "summary_status", err: errors.New(`ent: missing required field "Session.summary_status"`)}
	}
	if v, ok := _c.mutation.SummaryStatus(); ok {
		if err := session.SummaryStatusValidator(v); err != nil {
			return &ValidationError{Name: "summary_status", err: fmt.Errorf(`ent: validator failed for field "Session.summary_status": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(session.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(session.FieldClinicID, field.TypeString, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(session.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(session.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	if value, ok := _c.mutation.PrevSessionID(); ok {
		_spec.SetField(session.FieldPrevSessionID, field.TypeString, value)
		_node.PrevSessionID = &value
	}
	if value, ok := _c.mutation.ResetKind(); ok {
		_spec.SetField(session.FieldResetKind, field.TypeEnum, value)
		_node.ResetKind = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(session.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.SummaryStatus(); ok {
		_spec.SetField(session.FieldSummaryStatus, field.TypeEnum, value)
		_node.SummaryStatus = value
	}
	if value, ok := _c.mutation.Episode(); ok {
		_spec.SetField(session.FieldEpisode, field.TypeJSON, value)
		_node.Episode = value
	}
	if value, ok := _c.mutation.PendingAction(); ok {
		_spec.SetField(session.FieldPendingAction, field.TypeString, value)
		_node.PendingAction = value
	}
	if value, ok := _c.mutation.LastServiceMentioned(); ok {
		_spec.SetField(session.FieldLastServiceMentioned, field.TypeString, value)
		_node.LastServiceMentioned = value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(session.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	if nodes := _c.mutation.TurnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.TurnsTable,
			Columns: []string{session.TurnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationturn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
