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
	"github.com/mediqo/mediqo/ent/escalation"
	"github.com/mediqo/mediqo/ent/predicate"
)

// EscalationUpdate is the builder for updating Escalation entities.
type EscalationUpdate struct {
	config
	hooks    []Hook
	mutation *EscalationMutation
}

// Where appends a list predicates to the EscalationUpdate builder.
func (_u *EscalationUpdate) Where(ps ...predicate.Escalation) *EscalationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EscalationUpdate) SetStatus(v escalation.Status) *EscalationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EscalationUpdate) SetNillableStatus(v *escalation.Status) *EscalationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *EscalationUpdate) SetReason(v string) *EscalationUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *EscalationUpdate) SetNillableReason(v *string) *EscalationUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *EscalationUpdate) SetRequest(v map[string]interface{}) *EscalationUpdate {
	_u.mutation.SetRequest(v)
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *EscalationUpdate) SetSuggestions(v []map[string]interface{}) *EscalationUpdate {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *EscalationUpdate) AppendSuggestions(v []map[string]interface{}) *EscalationUpdate {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *EscalationUpdate) ClearSuggestions() *EscalationUpdate {
	_u.mutation.ClearSuggestions()
	return _u
}

// SetSLADeadline sets the "sla_deadline" field.
func (_u *EscalationUpdate) SetSLADeadline(v time.Time) *EscalationUpdate {
	_u.mutation.SetSLADeadline(v)
	return _u
}

// SetNillableSLADeadline sets the "sla_deadline" field if the given value is not nil.
func (_u *EscalationUpdate) SetNillableSLADeadline(v *time.Time) *EscalationUpdate {
	if v != nil {
		_u.SetSLADeadline(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *EscalationUpdate) SetAssignedTo(v string) *EscalationUpdate {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *EscalationUpdate) SetNillableAssignedTo(v *string) *EscalationUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *EscalationUpdate) ClearAssignedTo() *EscalationUpdate {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *EscalationUpdate) SetResolution(v map[string]interface{}) *EscalationUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *EscalationUpdate) ClearResolution() *EscalationUpdate {
	_u.mutation.ClearResolution()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EscalationUpdate) SetUpdatedAt(v time.Time) *EscalationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EscalationMutation object of the builder.
func (_u *EscalationUpdate) Mutation() *EscalationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EscalationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EscalationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EscalationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EscalationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EscalationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := escalation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EscalationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := escalation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Escalation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EscalationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(escalation.Table, escalation.Columns, sqlgraph.NewFieldSpec(escalation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ServiceIDCleared() {
		_spec.ClearField(escalation.FieldServiceID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(escalation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(escalation.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(escalation.FieldRequest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(escalation.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, escalation.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(escalation.FieldSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.SLADeadline(); ok {
		_spec.SetField(escalation.FieldSLADeadline, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(escalation.FieldAssignedTo, field.TypeString, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(escalation.FieldAssignedTo, field.TypeString)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(escalation.FieldResolution, field.TypeJSON, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(escalation.FieldResolution, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(escalation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{escalation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EscalationUpdateOne is the builder for updating a single Escalation entity.
type EscalationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EscalationMutation
}

// SetStatus sets the "status" field.
func (_u *EscalationUpdateOne) SetStatus(v escalation.Status) *EscalationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EscalationUpdateOne) SetNillableStatus(v *escalation.Status) *EscalationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *EscalationUpdateOne) SetReason(v string) *EscalationUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *EscalationUpdateOne) SetNillableReason(v *string) *EscalationUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *EscalationUpdateOne) SetRequest(v map[string]interface{}) *EscalationUpdateOne {
	_u.mutation.SetRequest(v)
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *EscalationUpdateOne) SetSuggestions(v []map[string]interface{}) *EscalationUpdateOne {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *EscalationUpdateOne) AppendSuggestions(v []map[string]interface{}) *EscalationUpdateOne {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *EscalationUpdateOne) ClearSuggestions() *EscalationUpdateOne {
	_u.mutation.ClearSuggestions()
	return _u
}

// SetSLADeadline sets the "sla_deadline" field.
func (_u *EscalationUpdateOne) SetSLADeadline(v time.Time) *EscalationUpdateOne {
	_u.mutation.SetSLADeadline(v)
	return _u
}

// SetNillableSLADeadline sets the "sla_deadline" field if the given value is not nil.
func (_u *EscalationUpdateOne) SetNillableSLADeadline(v *time.Time) *EscalationUpdateOne {
	if v != nil {
		_u.SetSLADeadline(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *EscalationUpdateOne) SetAssignedTo(v string) *EscalationUpdateOne {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *EscalationUpdateOne) SetNillableAssignedTo(v *string) *EscalationUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *EscalationUpdateOne) ClearAssignedTo() *EscalationUpdateOne {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *EscalationUpdateOne) SetResolution(v map[string]interface{}) *EscalationUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *EscalationUpdateOne) ClearResolution() *EscalationUpdateOne {
	_u.mutation.ClearResolution()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EscalationUpdateOne) SetUpdatedAt(v time.Time) *EscalationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EscalationMutation object of the builder.
func (_u *EscalationUpdateOne) Mutation() *EscalationMutation {
	return _u.mutation
}

// Where appends a list predicates to the EscalationUpdate builder.
func (_u *EscalationUpdateOne) Where(ps ...predicate.Escalation) *EscalationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EscalationUpdateOne) Select(field string, fields ...string) *EscalationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Escalation entity.
func (_u *EscalationUpdateOne) Save(ctx context.Context) (*Escalation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EscalationUpdateOne) SaveX(ctx context.Context) *Escalation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EscalationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EscalationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EscalationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := escalation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EscalationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := escalation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Escalation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EscalationUpdateOne) sqlSave(ctx context.Context) (_node *Escalation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(escalation.Table, escalation.Columns, sqlgraph.NewFieldSpec(escalation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Escalation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, escalation.FieldID)
		for _, f := range fields {
			if !escalation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != escalation.FieldID {
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
	if _u.mutation.ServiceIDCleared() {
		_spec.ClearField(escalation.FieldServiceID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(escalation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(escalation.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(escalation.FieldRequest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(escalation.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, escalation.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(escalation.FieldSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.SLADeadline(); ok {
		_spec.SetField(escalation.FieldSLADeadline, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(escalation.FieldAssignedTo, field.TypeString, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(escalation.FieldAssignedTo, field.TypeString)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(escalation.FieldResolution, field.TypeJSON, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(escalation.FieldResolution, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(escalation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Escalation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{escalation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
