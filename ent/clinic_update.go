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
	"github.com/mediqo/mediqo/ent/clinic"
	"github.com/mediqo/mediqo/ent/predicate"
)

// ClinicUpdate is the builder for updating Clinic entities.
type ClinicUpdate struct {
	config
	hooks    []Hook
	mutation *ClinicMutation
}

// Where appends a list predicates to the ClinicUpdate builder.
func (_u *ClinicUpdate) Where(ps ...predicate.Clinic) *ClinicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ClinicUpdate) SetName(v string) *ClinicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableName(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ClinicUpdate) SetTimezone(v string) *ClinicUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableTimezone(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetInstanceName sets the "instance_name" field.
func (_u *ClinicUpdate) SetInstanceName(v string) *ClinicUpdate {
	_u.mutation.SetInstanceName(v)
	return _u
}

// SetNillableInstanceName sets the "instance_name" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableInstanceName(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetInstanceName(*v)
	}
	return _u
}

// ClearInstanceName clears the value of the "instance_name" field.
func (_u *ClinicUpdate) ClearInstanceName() *ClinicUpdate {
	_u.mutation.ClearInstanceName()
	return _u
}

// SetDefaultLanguage sets the "default_language" field.
func (_u *ClinicUpdate) SetDefaultLanguage(v string) *ClinicUpdate {
	_u.mutation.SetDefaultLanguage(v)
	return _u
}

// SetNillableDefaultLanguage sets the "default_language" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableDefaultLanguage(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetDefaultLanguage(*v)
	}
	return _u
}

// SetProfile sets the "profile" field.
func (_u *ClinicUpdate) SetProfile(v map[string]interface{}) *ClinicUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicUpdate) SetUpdatedAt(v time.Time) *ClinicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ClinicMutation object of the builder.
func (_u *ClinicUpdate) Mutation() *ClinicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClinicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClinicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ClinicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(clinic.Table, clinic.Columns, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(clinic.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.InstanceName(); ok {
		_spec.SetField(clinic.FieldInstanceName, field.TypeString, value)
	}
	if _u.mutation.InstanceNameCleared() {
		_spec.ClearField(clinic.FieldInstanceName, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultLanguage(); ok {
		_spec.SetField(clinic.FieldDefaultLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(clinic.FieldProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClinicUpdateOne is the builder for updating a single Clinic entity.
type ClinicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClinicMutation
}

// SetName sets the "name" field.
func (_u *ClinicUpdateOne) SetName(v string) *ClinicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableName(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ClinicUpdateOne) SetTimezone(v string) *ClinicUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableTimezone(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetInstanceName sets the "instance_name" field.
func (_u *ClinicUpdateOne) SetInstanceName(v string) *ClinicUpdateOne {
	_u.mutation.SetInstanceName(v)
	return _u
}

// SetNillableInstanceName sets the "instance_name" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableInstanceName(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetInstanceName(*v)
	}
	return _u
}

// ClearInstanceName clears the value of the "instance_name" field.
func (_u *ClinicUpdateOne) ClearInstanceName() *ClinicUpdateOne {
	_u.mutation.ClearInstanceName()
	return _u
}

// SetDefaultLanguage sets the "default_language" field.
func (_u *ClinicUpdateOne) SetDefaultLanguage(v string) *ClinicUpdateOne {
	_u.mutation.SetDefaultLanguage(v)
	return _u
}

// SetNillableDefaultLanguage sets the "default_language" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableDefaultLanguage(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetDefaultLanguage(*v)
	}
	return _u
}

// SetProfile sets the "profile" field.
func (_u *ClinicUpdateOne) SetProfile(v map[string]interface{}) *ClinicUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicUpdateOne) SetUpdatedAt(v time.Time) *ClinicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ClinicMutation object of the builder.
func (_u *ClinicUpdateOne) Mutation() *ClinicMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClinicUpdate builder.
func (_u *ClinicUpdateOne) Where(ps ...predicate.Clinic) *ClinicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClinicUpdateOne) Select(field string, fields ...string) *ClinicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Clinic entity.
func (_u *ClinicUpdateOne) Save(ctx context.Context) (*Clinic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicUpdateOne) SaveX(ctx context.Context) *Clinic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClinicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ClinicUpdateOne) sqlSave(ctx context.Context) (_node *Clinic, err error) {
	_spec := sqlgraph.NewUpdateSpec(clinic.Table, clinic.Columns, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Clinic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clinic.FieldID)
		for _, f := range fields {
			if !clinic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clinic.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(clinic.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.InstanceName(); ok {
		_spec.SetField(clinic.FieldInstanceName, field.TypeString, value)
	}
	if _u.mutation.InstanceNameCleared() {
		_spec.ClearField(clinic.FieldInstanceName, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultLanguage(); ok {
		_spec.SetField(clinic.FieldDefaultLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(clinic.FieldProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Clinic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
