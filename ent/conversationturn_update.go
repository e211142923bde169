// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mediqo/mediqo/ent/conversationturn"
	"github.com/mediqo/mediqo/ent/predicate"
)

// ConversationTurnUpdate is the builder for updating ConversationTurn entities.
type ConversationTurnUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationTurnMutation
}

// Where appends a list predicates to the ConversationTurnUpdate builder.
func (_u *ConversationTurnUpdate) Where(ps ...predicate.ConversationTurn) *ConversationTurnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *ConversationTurnUpdate) SetSequenceNumber(v int) *ConversationTurnUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *ConversationTurnUpdate) SetNillableSequenceNumber(v *int) *ConversationTurnUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *ConversationTurnUpdate) AddSequenceNumber(v int) *ConversationTurnUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetUserMessage sets the "user_message" field.
func (_u *ConversationTurnUpdate) SetUserMessage(v string) *ConversationTurnUpdate {
	_u.mutation.SetUserMessage(v)
	return _u
}

// SetNillableUserMessage sets the "user_message" field if the given value is not nil.
func (_u *ConversationTurnUpdate) SetNillableUserMessage(v *string) *ConversationTurnUpdate {
	if v != nil {
		_u.SetUserMessage(*v)
	}
	return _u
}

// SetAssistantMessage sets the "assistant_message" field.
func (_u *ConversationTurnUpdate) SetAssistantMessage(v string) *ConversationTurnUpdate {
	_u.mutation.SetAssistantMessage(v)
	return _u
}

// SetNillableAssistantMessage sets the "assistant_message" field if the given value is not nil.
func (_u *ConversationTurnUpdate) SetNillableAssistantMessage(v *string) *ConversationTurnUpdate {
	if v != nil {
		_u.SetAssistantMessage(*v)
	}
	return _u
}

// ClearAssistantMessage clears the value of the "assistant_message" field.
func (_u *ConversationTurnUpdate) ClearAssistantMessage() *ConversationTurnUpdate {
	_u.mutation.ClearAssistantMessage()
	return _u
}

// SetLane sets the "lane" field.
func (_u *ConversationTurnUpdate) SetLane(v string) *ConversationTurnUpdate {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *ConversationTurnUpdate) SetNillableLane(v *string) *ConversationTurnUpdate {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// ClearLane clears the value of the "lane" field.
func (_u *ConversationTurnUpdate) ClearLane() *ConversationTurnUpdate {
	_u.mutation.ClearLane()
	return _u
}

// SetFastPath sets the "fast_path" field.
func (_u *ConversationTurnUpdate) SetFastPath(v bool) *ConversationTurnUpdate {
	_u.mutation.SetFastPath(v)
	return _u
}

// SetNillableFastPath sets the "fast_path" field if the given value is not nil.
func (_u *ConversationTurnUpdate) SetNillableFastPath(v *bool) *ConversationTurnUpdate {
	if v != nil {
		_u.SetFastPath(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ConversationTurnUpdate) SetLatencyMs(v int) *ConversationTurnUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ConversationTurnUpdate) SetNillableLatencyMs(v *int) *ConversationTurnUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ConversationTurnUpdate) AddLatencyMs(v int) *ConversationTurnUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *ConversationTurnUpdate) ClearLatencyMs() *ConversationTurnUpdate {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetToolsCalled sets the "tools_called" field.
func (_u *ConversationTurnUpdate) SetToolsCalled(v []map[string]interface{}) *ConversationTurnUpdate {
	_u.mutation.SetToolsCalled(v)
	return _u
}

// AppendToolsCalled appends value to the "tools_called" field.
func (_u *ConversationTurnUpdate) AppendToolsCalled(v []map[string]interface{}) *ConversationTurnUpdate {
	_u.mutation.AppendToolsCalled(v)
	return _u
}

// ClearToolsCalled clears the value of the "tools_called" field.
func (_u *ConversationTurnUpdate) ClearToolsCalled() *ConversationTurnUpdate {
	_u.mutation.ClearToolsCalled()
	return _u
}

// SetHallucinationBlocked sets the "hallucination_blocked" field.
func (_u *ConversationTurnUpdate) SetHallucinationBlocked(v bool) *ConversationTurnUpdate {
	_u.mutation.SetHallucinationBlocked(v)
	return _u
}

// SetNillableHallucinationBlocked sets the "hallucination_blocked" field if the given value is not nil.
func (_u *ConversationTurnUpdate) SetNillableHallucinationBlocked(v *bool) *ConversationTurnUpdate {
	if v != nil {
		_u.SetHallucinationBlocked(*v)
	}
	return _u
}

// SetResponseFlagged sets the "response_flagged" field.
func (_u *ConversationTurnUpdate) SetResponseFlagged(v bool) *ConversationTurnUpdate {
	_u.mutation.SetResponseFlagged(v)
	return _u
}

// SetNillableResponseFlagged sets the "response_flagged" field if the given value is not nil.
func (_u *ConversationTurnUpdate) SetNillableResponseFlagged(v *bool) *ConversationTurnUpdate {
	if v != nil {
		_u.SetResponseFlagged(*v)
	}
	return _u
}

// SetConstraintsDelta sets the "constraints_delta" field.
func (_u *ConversationTurnUpdate) SetConstraintsDelta(v map[string]interface{}) *ConversationTurnUpdate {
	_u.mutation.SetConstraintsDelta(v)
	return _u
}

// ClearConstraintsDelta clears the value of the "constraints_delta" field.
func (_u *ConversationTurnUpdate) ClearConstraintsDelta() *ConversationTurnUpdate {
	_u.mutation.ClearConstraintsDelta()
	return _u
}

// Mutation returns the ConversationTurnMutation object of the builder.
func (_u *ConversationTurnUpdate) Mutation() *ConversationTurnMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationTurnUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationTurnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationTurnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationTurnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationTurnUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationTurn.session"`)
	}
	return nil
}

func (_u *ConversationTurnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationturn.Table, conversationturn.Columns, sqlgraph.NewFieldSpec(conversationturn.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(conversationturn.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(conversationturn.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserMessage(); ok {
		_spec.SetField(conversationturn.FieldUserMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssistantMessage(); ok {
		_spec.SetField(conversationturn.FieldAssistantMessage, field.TypeString, value)
	}
	if _u.mutation.AssistantMessageCleared() {
		_spec.ClearField(conversationturn.FieldAssistantMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(conversationturn.FieldLane, field.TypeString, value)
	}
	if _u.mutation.LaneCleared() {
		_spec.ClearField(conversationturn.FieldLane, field.TypeString)
	}
	if value, ok := _u.mutation.FastPath(); ok {
		_spec.SetField(conversationturn.FieldFastPath, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(conversationturn.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(conversationturn.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(conversationturn.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ToolsCalled(); ok {
		_spec.SetField(conversationturn.FieldToolsCalled, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolsCalled(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversationturn.FieldToolsCalled, value)
		})
	}
	if _u.mutation.ToolsCalledCleared() {
		_spec.ClearField(conversationturn.FieldToolsCalled, field.TypeJSON)
	}
	if value, ok := _u.mutation.HallucinationBlocked(); ok {
		_spec.SetField(conversationturn.FieldHallucinationBlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseFlagged(); ok {
		_spec.SetField(conversationturn.FieldResponseFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConstraintsDelta(); ok {
		_spec.SetField(conversationturn.FieldConstraintsDelta, field.TypeJSON, value)
	}
	if _u.mutation.ConstraintsDeltaCleared() {
		_spec.ClearField(conversationturn.FieldConstraintsDelta, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationturn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationTurnUpdateOne is the builder for updating a single ConversationTurn entity.
type ConversationTurnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationTurnMutation
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *ConversationTurnUpdateOne) SetSequenceNumber(v int) *ConversationTurnUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *ConversationTurnUpdateOne) SetNillableSequenceNumber(v *int) *ConversationTurnUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *ConversationTurnUpdateOne) AddSequenceNumber(v int) *ConversationTurnUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetUserMessage sets the "user_message" field.
func (_u *ConversationTurnUpdateOne) SetUserMessage(v string) *ConversationTurnUpdateOne {
	_u.mutation.SetUserMessage(v)
	return _u
}

// SetNillableUserMessage sets the "user_message" field if the given value is not nil.
func (_u *ConversationTurnUpdateOne) SetNillableUserMessage(v *string) *ConversationTurnUpdateOne {
	if v != nil {
		_u.SetUserMessage(*v)
	}
	return _u
}

// SetAssistantMessage sets the "assistant_message" field.
func (_u *ConversationTurnUpdateOne) SetAssistantMessage(v string) *ConversationTurnUpdateOne {
	_u.mutation.SetAssistantMessage(v)
	return _u
}

// SetNillableAssistantMessage sets the "assistant_message" field if the given value is not nil.
func (_u *ConversationTurnUpdateOne) SetNillableAssistantMessage(v *string) *ConversationTurnUpdateOne {
	if v != nil {
		_u.SetAssistantMessage(*v)
	}
	return _u
}

// ClearAssistantMessage clears the value of the "assistant_message" field.
func (_u *ConversationTurnUpdateOne) ClearAssistantMessage() *ConversationTurnUpdateOne {
	_u.mutation.ClearAssistantMessage()
	return _u
}

// SetLane sets the "lane" field.
func (_u *ConversationTurnUpdateOne) SetLane(v string) *ConversationTurnUpdateOne {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *ConversationTurnUpdateOne) SetNillableLane(v *string) *ConversationTurnUpdateOne {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// ClearLane clears the value of the "lane" field.
func (_u *ConversationTurnUpdateOne) ClearLane() *ConversationTurnUpdateOne {
	_u.mutation.ClearLane()
	return _u
}

// SetFastPath sets the "fast_path" field.
func (_u *ConversationTurnUpdateOne) SetFastPath(v bool) *ConversationTurnUpdateOne {
	_u.mutation.SetFastPath(v)
	return _u
}

// SetNillableFastPath sets the "fast_path" field if the given value is not nil.
func (_u *ConversationTurnUpdateOne) SetNillableFastPath(v *bool) *ConversationTurnUpdateOne {
	if v != nil {
		_u.SetFastPath(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ConversationTurnUpdateOne) SetLatencyMs(v int) *ConversationTurnUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ConversationTurnUpdateOne) SetNillableLatencyMs(v *int) *ConversationTurnUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ConversationTurnUpdateOne) AddLatencyMs(v int) *ConversationTurnUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *ConversationTurnUpdateOne) ClearLatencyMs() *ConversationTurnUpdateOne {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetToolsCalled sets the "tools_called" field.
func (_u *ConversationTurnUpdateOne) SetToolsCalled(v []map[string]interface{}) *ConversationTurnUpdateOne {
	_u.mutation.SetToolsCalled(v)
	return _u
}

// AppendToolsCalled appends value to the "tools_called" field.
func (_u *ConversationTurnUpdateOne) AppendToolsCalled(v []map[string]interface{}) *ConversationTurnUpdateOne {
	_u.mutation.AppendToolsCalled(v)
	return _u
}

// ClearToolsCalled clears the value of the "tools_called" field.
func (_u *ConversationTurnUpdateOne) ClearToolsCalled() *ConversationTurnUpdateOne {
	_u.mutation.ClearToolsCalled()
	return _u
}

// SetHallucinationBlocked sets the "hallucination_blocked" field.
func (_u *ConversationTurnUpdateOne) SetHallucinationBlocked(v bool) *ConversationTurnUpdateOne {
	_u.mutation.SetHallucinationBlocked(v)
	return _u
}

// SetNillableHallucinationBlocked sets the "hallucination_blocked" field if the given value is not nil.
func (_u *ConversationTurnUpdateOne) SetNillableHallucinationBlocked(v *bool) *ConversationTurnUpdateOne {
	if v != nil {
		_u.SetHallucinationBlocked(*v)
	}
	return _u
}

// SetResponseFlagged sets the "response_flagged" field.
func (_u *ConversationTurnUpdateOne) SetResponseFlagged(v bool) *ConversationTurnUpdateOne {
	_u.mutation.SetResponseFlagged(v)
	return _u
}

// SetNillableResponseFlagged sets the "response_flagged" field if the given value is not nil.
func (_u *ConversationTurnUpdateOne) SetNillableResponseFlagged(v *bool) *ConversationTurnUpdateOne {
	if v != nil {
		_u.SetResponseFlagged(*v)
	}
	return _u
}

// SetConstraintsDelta sets the "constraints_delta" field.
func (_u *ConversationTurnUpdateOne) SetConstraintsDelta(v map[string]interface{}) *ConversationTurnUpdateOne {
	_u.mutation.SetConstraintsDelta(v)
	return _u
}

// ClearConstraintsDelta clears the value of the "constraints_delta" field.
func (_u *ConversationTurnUpdateOne) ClearConstraintsDelta() *ConversationTurnUpdateOne {
	_u.mutation.ClearConstraintsDelta()
	return _u
}

// Mutation returns the ConversationTurnMutation object of the builder.
func (_u *ConversationTurnUpdateOne) Mutation() *ConversationTurnMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationTurnUpdate builder.
func (_u *ConversationTurnUpdateOne) Where(ps ...predicate.ConversationTurn) *ConversationTurnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationTurnUpdateOne) Select(field string, fields ...string) *ConversationTurnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationTurn entity.
func (_u *ConversationTurnUpdateOne) Save(ctx context.Context) (*ConversationTurn, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationTurnUpdateOne) SaveX(ctx context.Context) *ConversationTurn {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationTurnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationTurnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationTurnUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationTurn.session"`)
	}
	return nil
}

func (_u *ConversationTurnUpdateOne) sqlSave(ctx context.Context) (_node *ConversationTurn, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationturn.Table, conversationturn.Columns, sqlgraph.NewFieldSpec(conversationturn.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationTurn.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationturn.FieldID)
		for _, f := range fields {
			if !conversationturn.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationturn.FieldID {
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
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(conversationturn.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(conversationturn.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserMessage(); ok {
		_spec.SetField(conversationturn.FieldUserMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssistantMessage(); ok {
		_spec.SetField(conversationturn.FieldAssistantMessage, field.TypeString, value)
	}
	if _u.mutation.AssistantMessageCleared() {
		_spec.ClearField(conversationturn.FieldAssistantMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(conversationturn.FieldLane, field.TypeString, value)
	}
	if _u.mutation.LaneCleared() {
		_spec.ClearField(conversationturn.FieldLane, field.TypeString)
	}
	if value, ok := _u.mutation.FastPath(); ok {
		_spec.SetField(conversationturn.FieldFastPath, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(conversationturn.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(conversationturn.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(conversationturn.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ToolsCalled(); ok {
		_spec.SetField(conversationturn.FieldToolsCalled, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolsCalled(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversationturn.FieldToolsCalled, value)
		})
	}
	if _u.mutation.ToolsCalledCleared() {
		_spec.ClearField(conversationturn.FieldToolsCalled, field.TypeJSON)
	}
	if value, ok := _u.mutation.HallucinationBlocked(); ok {
		_spec.SetField(conversationturn.FieldHallucinationBlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseFlagged(); ok {
		_spec.SetField(conversationturn.FieldResponseFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConstraintsDelta(); ok {
		_spec.SetField(conversationturn.FieldConstraintsDelta, field.TypeJSON, value)
	}
	if _u.mutation.ConstraintsDeltaCleared() {
		_spec.ClearField(conversationturn.FieldConstraintsDelta, field.TypeJSON)
	}
	_node = &ConversationTurn{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationturn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
