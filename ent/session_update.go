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
	"github.com/mediqo/mediqo/ent/conversationturn"
	"github.com/mediqo/mediqo/ent/predicate"
	"github.com/mediqo/mediqo/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SessionUpdate) SetLanguage(v string) *SessionUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLanguage(v *string) *SessionUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *SessionUpdate) ClearLanguage() *SessionUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *SessionUpdate) SetLastActivityAt(v time.Time) *SessionUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLastActivityAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetPrevSessionID sets the "prev_session_id" field.
func (_u *SessionUpdate) SetPrevSessionID(v string) *SessionUpdate {
	_u.mutation.SetPrevSessionID(v)
	return _u
}

// SetNillablePrevSessionID sets the "prev_session_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePrevSessionID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPrevSessionID(*v)
	}
	return _u
}

// ClearPrevSessionID clears the value of the "prev_session_id" field.
func (_u *SessionUpdate) ClearPrevSessionID() *SessionUpdate {
	_u.mutation.ClearPrevSessionID()
	return _u
}

// SetResetKind sets the "reset_kind" field.
func (_u *SessionUpdate) SetResetKind(v session.ResetKind) *SessionUpdate {
	_u.mutation.SetResetKind(v)
	return _u
}

// SetNillableResetKind sets the "reset_kind" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableResetKind(v *session.ResetKind) *SessionUpdate {
	if v != nil {
		_u.SetResetKind(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionUpdate) SetSummary(v string) *SessionUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSummary(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionUpdate) ClearSummary() *SessionUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetSummaryStatus sets the "summary_status" field.
func (_u *SessionUpdate) SetSummaryStatus(v session.SummaryStatus) *SessionUpdate {
	_u.mutation.SetSummaryStatus(v)
	return _u
}

// SetNillableSummaryStatus sets the "summary_status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSummaryStatus(v *session.SummaryStatus) *SessionUpdate {
	if v != nil {
		_u.SetSummaryStatus(*v)
	}
	return _u
}

// SetEpisode sets the "episode" field.
func (_u *SessionUpdate) SetEpisode(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetEpisode(v)
	return _u
}

// ClearEpisode clears the value of the "episode" field.
func (_u *SessionUpdate) ClearEpisode() *SessionUpdate {
	_u.mutation.ClearEpisode()
	return _u
}

// SetPendingAction sets the "pending_action" field.
func (_u *SessionUpdate) SetPendingAction(v string) *SessionUpdate {
	_u.mutation.SetPendingAction(v)
	return _u
}

// SetNillablePendingAction sets the "pending_action" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePendingAction(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPendingAction(*v)
	}
	return _u
}

// ClearPendingAction clears the value of the "pending_action" field.
func (_u *SessionUpdate) ClearPendingAction() *SessionUpdate {
	_u.mutation.ClearPendingAction()
	return _u
}

// SetLastServiceMentioned sets the "last_service_mentioned" field.
func (_u *SessionUpdate) SetLastServiceMentioned(v string) *SessionUpdate {
	_u.mutation.SetLastServiceMentioned(v)
	return _u
}

// SetNillableLastServiceMentioned sets the "last_service_mentioned" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLastServiceMentioned(v *string) *SessionUpdate {
	if v != nil {
		_u.SetLastServiceMentioned(*v)
	}
	return _u
}

// ClearLastServiceMentioned clears the value of the "last_service_mentioned" field.
func (_u *SessionUpdate) ClearLastServiceMentioned() *SessionUpdate {
	_u.mutation.ClearLastServiceMentioned()
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *SessionUpdate) SetClosedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableClosedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *SessionUpdate) ClearClosedAt() *SessionUpdate {
	_u.mutation.ClearClosedAt()
	return _u
}

// AddTurnIDs adds the "turns" edge to the ConversationTurn entity by IDs.
func (_u *SessionUpdate) AddTurnIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddTurnIDs(ids...)
	return _u
}

// AddTurns adds the "turns" edges to the ConversationTurn entity.
func (_u *SessionUpdate) AddTurns(v ...*ConversationTurn) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTurnIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearTurns clears all "turns" edges to the ConversationTurn entity.
func (_u *SessionUpdate) ClearTurns() *SessionUpdate {
	_u.mutation.ClearTurns()
	return _u
}

// RemoveTurnIDs removes the "turns" edge to ConversationTurn entities by IDs.
func (_u *SessionUpdate) RemoveTurnIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveTurnIDs(ids...)
	return _u
}

// RemoveTurns removes "turns" edges to ConversationTurn entities.
func (_u *SessionUpdate) RemoveTurns(v ...*ConversationTurn) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTurnIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResetKind(); ok {
		if err := session.ResetKindValidator(v); err != nil {
			return &ValidationError{Name: "reset_kind", err: fmt.Errorf(`ent: validator failed for field "Session.reset_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SummaryStatus(); ok {
		if err := session.SummaryStatusValidator(v); err != nil {
			return &ValidationError{Name: "summary_status", err: fmt.Errorf(`ent: validator failed for field "Session.summary_status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(session.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(session.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(session.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PrevSessionID(); ok {
		_spec.SetField(session.FieldPrevSessionID, field.TypeString, value)
	}
	if _u.mutation.PrevSessionIDCleared() {
		_spec.ClearField(session.FieldPrevSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ResetKind(); ok {
		_spec.SetField(session.FieldResetKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(session.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(session.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryStatus(); ok {
		_spec.SetField(session.FieldSummaryStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Episode(); ok {
		_spec.SetField(session.FieldEpisode, field.TypeJSON, value)
	}
	if _u.mutation.EpisodeCleared() {
		_spec.ClearField(session.FieldEpisode, field.TypeJSON)
	}
	if value, ok := _u.mutation.PendingAction(); ok {
		_spec.SetField(session.FieldPendingAction, field.TypeString, value)
	}
	if _u.mutation.PendingActionCleared() {
		_spec.ClearField(session.FieldPendingAction, field.TypeString)
	}
	if value, ok := _u.mutation.LastServiceMentioned(); ok {
		_spec.SetField(session.FieldLastServiceMentioned, field.TypeString, value)
	}
	if _u.mutation.LastServiceMentionedCleared() {
		_spec.ClearField(session.FieldLastServiceMentioned, field.TypeString)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(session.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(session.FieldClosedAt, field.TypeTime)
	}
	if _u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTurnsIDs(); len(nodes) > 0 && !_u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TurnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SessionUpdateOne) SetLanguage(v string) *SessionUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLanguage(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *SessionUpdateOne) ClearLanguage() *SessionUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *SessionUpdateOne) SetLastActivityAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLastActivityAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetPrevSessionID sets the "prev_session_id" field.
func (_u *SessionUpdateOne) SetPrevSessionID(v string) *SessionUpdateOne {
	_u.mutation.SetPrevSessionID(v)
	return _u
}

// SetNillablePrevSessionID sets the "prev_session_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePrevSessionID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPrevSessionID(*v)
	}
	return _u
}

// ClearPrevSessionID clears the value of the "prev_session_id" field.
func (_u *SessionUpdateOne) ClearPrevSessionID() *SessionUpdateOne {
	_u.mutation.ClearPrevSessionID()
	return _u
}

// SetResetKind sets the "reset_kind" field.
func (_u *SessionUpdateOne) SetResetKind(v session.ResetKind) *SessionUpdateOne {
	_u.mutation.SetResetKind(v)
	return _u
}

// SetNillableResetKind sets the "reset_kind" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableResetKind(v *session.ResetKind) *SessionUpdateOne {
	if v != nil {
		_u.SetResetKind(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionUpdateOne) SetSummary(v string) *SessionUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSummary(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionUpdateOne) ClearSummary() *SessionUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetSummaryStatus sets the "summary_status" field.
func (_u *SessionUpdateOne) SetSummaryStatus(v session.SummaryStatus) *SessionUpdateOne {
	_u.mutation.SetSummaryStatus(v)
	return _u
}

// SetNillableSummaryStatus sets the "summary_status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSummaryStatus(v *session.SummaryStatus) *SessionUpdateOne {
	if v != nil {
		_u.SetSummaryStatus(*v)
	}
	return _u
}

// SetEpisode sets the "episode" field.
func (_u *SessionUpdateOne) SetEpisode(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetEpisode(v)
	return _u
}

// ClearEpisode clears the value of the "episode" field.
func (_u *SessionUpdateOne) ClearEpisode() *SessionUpdateOne {
	_u.mutation.ClearEpisode()
	return _u
}

// SetPendingAction sets the "pending_action" field.
func (_u *SessionUpdateOne) SetPendingAction(v string) *SessionUpdateOne {
	_u.mutation.SetPendingAction(v)
	return _u
}

// SetNillablePendingAction sets the "pending_action" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePendingAction(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPendingAction(*v)
	}
	return _u
}

// ClearPendingAction clears the value of the "pending_action" field.
func (_u *SessionUpdateOne) ClearPendingAction() *SessionUpdateOne {
	_u.mutation.ClearPendingAction()
	return _u
}

// SetLastServiceMentioned sets the "last_service_mentioned" field.
func (_u *SessionUpdateOne) SetLastServiceMentioned(v string) *SessionUpdateOne {
	_u.mutation.SetLastServiceMentioned(v)
	return _u
}

// SetNillableLastServiceMentioned sets the "last_service_mentioned" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLastServiceMentioned(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetLastServiceMentioned(*v)
	}
	return _u
}

// ClearLastServiceMentioned clears the value of the "last_service_mentioned" field.
func (_u *SessionUpdateOne) ClearLastServiceMentioned() *SessionUpdateOne {
	_u.mutation.ClearLastServiceMentioned()
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *SessionUpdateOne) SetClosedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableClosedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *SessionUpdateOne) ClearClosedAt() *SessionUpdateOne {
	_u.mutation.ClearClosedAt()
	return _u
}

// AddTurnIDs adds the "turns" edge to the ConversationTurn entity by IDs.
func (_u *SessionUpdateOne) AddTurnIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddTurnIDs(ids...)
	return _u
}

// AddTurns adds the "turns" edges to the ConversationTurn entity.
func (_u *SessionUpdateOne) AddTurns(v ...*ConversationTurn) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTurnIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearTurns clears all "turns" edges to the ConversationTurn entity.
func (_u *SessionUpdateOne) ClearTurns() *SessionUpdateOne {
	_u.mutation.ClearTurns()
	return _u
}

// RemoveTurnIDs removes the "turns" edge to ConversationTurn entities by IDs.
func (_u *SessionUpdateOne) RemoveTurnIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveTurnIDs(ids...)
	return _u
}

// RemoveTurns removes "turns" edges to ConversationTurn entities.
func (_u *SessionUpdateOne) RemoveTurns(v ...*ConversationTurn) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTurnIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResetKind(); ok {
		if err := session.ResetKindValidator(v); err != nil {
			return &ValidationError{Name: "reset_kind", err: fmt.Errorf(`ent: validator failed for field "Session.reset_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SummaryStatus(); ok {
		if err := session.SummaryStatusValidator(v); err != nil {
			return &ValidationError{Name: "summary_status", err: fmt.Errorf(`ent: validator failed for field "Session.summary_status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(session.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(session.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(session.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PrevSessionID(); ok {
		_spec.SetField(session.FieldPrevSessionID, field.TypeString, value)
	}
	if _u.mutation.PrevSessionIDCleared() {
		_spec.ClearField(session.FieldPrevSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ResetKind(); ok {
		_spec.SetField(session.FieldResetKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(session.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(session.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryStatus(); ok {
		_spec.SetField(session.FieldSummaryStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Episode(); ok {
		_spec.SetField(session.FieldEpisode, field.TypeJSON, value)
	}
	if _u.mutation.EpisodeCleared() {
		_spec.ClearField(session.FieldEpisode, field.TypeJSON)
	}
	if value, ok := _u.mutation.PendingAction(); ok {
		_spec.SetField(session.FieldPendingAction, field.TypeString, value)
	}
	if _u.mutation.PendingActionCleared() {
		_spec.ClearField(session.FieldPendingAction, field.TypeString)
	}
	if value, ok := _u.mutation.LastServiceMentioned(); ok {
		_spec.SetField(session.FieldLastServiceMentioned, field.TypeString, value)
	}
	if _u.mutation.LastServiceMentionedCleared() {
		_spec.ClearField(session.FieldLastServiceMentioned, field.TypeString)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(session.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(session.FieldClosedAt, field.TypeTime)
	}
	if _u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTurnsIDs(); len(nodes) > 0 && !_u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TurnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
