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

// ConversationTurnCreate is the builder for creating a ConversationTurn entity.
type ConversationTurnCreate struct {
	config
	mutation *ConversationTurnMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ConversationTurnCreate) SetSessionID(v string) *ConversationTurnCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *ConversationTurnCreate) SetClinicID(v string) *ConversationTurnCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *ConversationTurnCreate) SetSequenceNumber(v int) *ConversationTurnCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetUserMessage sets the "user_message" field.
func (_c *ConversationTurnCreate) SetUserMessage(v string) *ConversationTurnCreate {
	_c.mutation.SetUserMessage(v)
	return _c
}

// SetAssistantMessage sets the "assistant_message" field.
func (_c *ConversationTurnCreate) SetAssistantMessage(v string) *ConversationTurnCreate {
	_c.mutation.SetAssistantMessage(v)
	return _c
}

// SetNillableAssistantMessage sets the "assistant_message" field if the given value is not nil.
func (_c *ConversationTurnCreate) SetNillableAssistantMessage(v *string) *ConversationTurnCreate {
	if v != nil {
		_c.SetAssistantMessage(*v)
	}
	return _c
}

// SetLane sets the "lane" field.
func (_c *ConversationTurnCreate) SetLane(v string) *ConversationTurnCreate {
	_c.mutation.SetLane(v)
	return _c
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_c *ConversationTurnCreate) SetNillableLane(v *string) *ConversationTurnCreate {
	if v != nil {
		_c.SetLane(*v)
	}
	return _c
}

// SetFastPath sets the "fast_path" field.
func (_c *ConversationTurnCreate) SetFastPath(v bool) *ConversationTurnCreate {
	_c.mutation.SetFastPath(v)
	return _c
}

// SetNillableFastPath sets the "fast_path" field if the given value is not nil.
func (_c *ConversationTurnCreate) SetNillableFastPath(v *bool) *ConversationTurnCreate {
	if v != nil {
		_c.SetFastPath(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ConversationTurnCreate) SetLatencyMs(v int) *ConversationTurnCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ConversationTurnCreate) SetNillableLatencyMs(v *int) *ConversationTurnCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetToolsCalled sets the "tools_called" field.
func (_c *ConversationTurnCreate) SetToolsCalled(v []map[string]interface{}) *ConversationTurnCreate {
	_c.mutation.SetToolsCalled(v)
	return _c
}

// SetHallucinationBlocked sets the "hallucination_blocked" field.
func (_c *ConversationTurnCreate) SetHallucinationBlocked(v bool) *ConversationTurnCreate {
	_c.mutation.SetHallucinationBlocked(v)
	return _c
}

// SetNillableHallucinationBlocked sets the "hallucination_blocked" field if the given value is not nil.
func (_c *ConversationTurnCreate) SetNillableHallucinationBlocked(v *bool) *ConversationTurnCreate {
	if v != nil {
		_c.SetHallucinationBlocked(*v)
	}
	return _c
}

// SetResponseFlagged sets the "response_flagged" field.
func (_c *ConversationTurnCreate) SetResponseFlagged(v bool) *ConversationTurnCreate {
	_c.mutation.SetResponseFlagged(v)
	return _c
}

// SetNillableResponseFlagged sets the "response_flagged" field if the given value is not nil.
func (_c *ConversationTurnCreate) SetNillableResponseFlagged(v *bool) *ConversationTurnCreate {
	if v != nil {
		_c.SetResponseFlagged(*v)
	}
	return _c
}

// SetConstraintsDelta sets the "constraints_delta" field.
func (_c *ConversationTurnCreate) SetConstraintsDelta(v map[string]interface{}) *ConversationTurnCreate {
	_c.mutation.SetConstraintsDelta(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationTurnCreate) SetCreatedAt(v time.Time) *ConversationTurnCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationTurnCreate) SetNillableCreatedAt(v *time.Time) *ConversationTurnCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationTurnCreate) SetID(v string) *ConversationTurnCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ConversationTurnCreate) SetSession(v *Session) *ConversationTurnCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ConversationTurnMutation object of the builder.
func (_c *ConversationTurnCreate) Mutation() *ConversationTurnMutation {
	return _c.mutation
}

// Save creates the ConversationTurn in the database.
func (_c *ConversationTurnCreate) Save(ctx context.Context) (*ConversationTurn, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationTurnCreate) SaveX(ctx context.Context) *ConversationTurn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationTurnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationTurnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationTurnCreate) defaults() {
	if _, ok := _c.mutation.FastPath(); !ok {
		v := conversationturn.DefaultFastPath
		_c.mutation.SetFastPath(v)
	}
	if _, ok := _c.mutation.HallucinationBlocked(); !ok {
		v := conversationturn.DefaultHallucinationBlocked
		_c.mutation.SetHallucinationBlocked(v)
	}
	if _, ok := _c.mutation.ResponseFlagged(); !ok {
		v := conversationturn.DefaultResponseFlagged
		_c.mutation.SetResponseFlagged(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversationturn.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationTurnCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ConversationTurn.session_id"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`ent: missing required field "ConversationTurn.clinic_id"`)}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "ConversationTurn.sequence_number"`)}
	}
	if _, ok := _c.mutation.UserMessage(); !ok {
		return &ValidationError{Name: "user_message", err: errors.New(`ent: missing required field "ConversationTurn.user_message"`)}
	}
	if _, ok := _c.mutation.FastPath(); !ok {
		return &ValidationError{Name: "fast_path", err: errors.New(`ent: missing required field "ConversationTurn.fast_path"`)}
	}
	if _, ok := _c.mutation.HallucinationBlocked(); !ok {
		return &ValidationError{Name: "hallucination_blocked", err: errors.New(`ent: missing required field "ConversationTurn.hallucination_blocked"`)}
	}
	if _, ok := _c.mutation.ResponseFlagged(); !ok {
		return &ValidationError{Name: "response_flagged", err: errors.New(`ent: missing required field "ConversationTurn.response_flagged"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConversationTurn.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ConversationTurn.session"`)}
	}
	return nil
}

func (_c *ConversationTurnCreate) sqlSave(ctx context.Context) (*ConversationTurn, error) {
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
			return nil, fmt.Errorf("unexpected ConversationTurn.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationTurnCreate) createSpec() (*ConversationTurn, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationTurn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationturn.Table, sqlgraph.NewFieldSpec(conversationturn.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(conversationturn.FieldClinicID, field.TypeString, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(conversationturn.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.UserMessage(); ok {
		_spec.SetField(conversationturn.FieldUserMessage, field.TypeString, value)
		_node.UserMessage = value
	}
	if value, ok := _c.mutation.AssistantMessage(); ok {
		_spec.SetField(conversationturn.FieldAssistantMessage, field.TypeString, value)
		_node.AssistantMessage = value
	}
	if value, ok := _c.mutation.Lane(); ok {
		_spec.SetField(conversationturn.FieldLane, field.TypeString, value)
		_node.Lane = value
	}
	if value, ok := _c.mutation.FastPath(); ok {
		_spec.SetField(conversationturn.FieldFastPath, field.TypeBool, value)
		_node.FastPath = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(conversationturn.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.ToolsCalled(); ok {
		_spec.SetField(conversationturn.FieldToolsCalled, field.TypeJSON, value)
		_node.ToolsCalled = value
	}
	if value, ok := _c.mutation.HallucinationBlocked(); ok {
		_spec.SetField(conversationturn.FieldHallucinationBlocked, field.TypeBool, value)
		_node.HallucinationBlocked = value
	}
	if value, ok := _c.mutation.ResponseFlagged(); ok {
		_spec.SetField(conversationturn.FieldResponseFlagged, field.TypeBool, value)
		_node.ResponseFlagged = value
	}
	if value, ok := _c.mutation.ConstraintsDelta(); ok {
		_spec.SetField(conversationturn.FieldConstraintsDelta, field.TypeJSON, value)
		_node.ConstraintsDelta = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversationturn.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversationturn.SessionTable,
			Columns: []string{conversationturn.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConversationTurnCreateBulk is the builder for creating many ConversationTurn entities in bulk.
type ConversationTurnCreateBulk struct {
	config
	err      error
	builders []*ConversationTurnCreate
}

// Save creates the ConversationTurn entities in the database.
func (_c *ConversationTurnCreateBulk) Save(ctx context.Context) ([]*ConversationTurn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationTurn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationTurnMutation)
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
func (_c *ConversationTurnCreateBulk) SaveX(ctx context.Context) []*ConversationTurn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationTurnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationTurnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
