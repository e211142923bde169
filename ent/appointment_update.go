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
	"github.com/mediqo/mediqo/ent/appointment"
	"github.com/mediqo/mediqo/ent/predicate"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_u *AppointmentUpdate) SetCalendarEventID(v string) *AppointmentUpdate {
	_u.mutation.SetCalendarEventID(v)
	return _u
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCalendarEventID(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetCalendarEventID(*v)
	}
	return _u
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (_u *AppointmentUpdate) ClearCalendarEventID() *AppointmentUpdate {
	_u.mutation.ClearCalendarEventID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.PolicySnapshotIDCleared() {
		_spec.ClearField(appointment.FieldPolicySnapshotID, field.TypeString)
	}
	if _u.mutation.PolicyVersionCleared() {
		_spec.ClearField(appointment.FieldPolicyVersion, field.TypeInt)
	}
	if _u.mutation.PolicyBundleSha256Cleared() {
		_spec.ClearField(appointment.FieldPolicyBundleSha256, field.TypeString)
	}
	if value, ok := _u.mutation.CalendarEventID(); ok {
		_spec.SetField(appointment.FieldCalendarEventID, field.TypeString, value)
	}
	if _u.mutation.CalendarEventIDCleared() {
		_spec.ClearField(appointment.FieldCalendarEventID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_u *AppointmentUpdateOne) SetCalendarEventID(v string) *AppointmentUpdateOne {
	_u.mutation.SetCalendarEventID(v)
	return _u
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCalendarEventID(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCalendarEventID(*v)
	}
	return _u
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (_u *AppointmentUpdateOne) ClearCalendarEventID() *AppointmentUpdateOne {
	_u.mutation.ClearCalendarEventID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
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
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.PolicySnapshotIDCleared() {
		_spec.ClearField(appointment.FieldPolicySnapshotID, field.TypeString)
	}
	if _u.mutation.PolicyVersionCleared() {
		_spec.ClearField(appointment.FieldPolicyVersion, field.TypeInt)
	}
	if _u.mutation.PolicyBundleSha256Cleared() {
		_spec.ClearField(appointment.FieldPolicyBundleSha256, field.TypeString)
	}
	if value, ok := _u.mutation.CalendarEventID(); ok {
		_spec.SetField(appointment.FieldCalendarEventID, field.TypeString, value)
	}
	if _u.mutation.CalendarEventIDCleared() {
		_spec.ClearField(appointment.FieldCalendarEventID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
