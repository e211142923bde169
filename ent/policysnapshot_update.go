// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediqo/mediqo/ent/policysnapshot"
	"github.com/mediqo/mediqo/ent/predicate"
)

// PolicySnapshotUpdate is the builder for updating PolicySnapshot entities.
type PolicySnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *PolicySnapshotMutation
}

// Where appends a list predicates to the PolicySnapshotUpdate builder.
func (_u *PolicySnapshotUpdate) Where(ps ...predicate.PolicySnapshot) *PolicySnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PolicySnapshotUpdate) SetStatus(v policysnapshot.Status) *PolicySnapshotUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PolicySnapshotUpdate) SetNillableStatus(v *policysnapshot.Status) *PolicySnapshotUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *PolicySnapshotUpdate) SetMetadata(v map[string]interface{}) *PolicySnapshotUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *PolicySnapshotUpdate) ClearMetadata() *PolicySnapshotUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetActor sets the "actor" field.
func (_u *PolicySnapshotUpdate) SetActor(v string) *PolicySnapshotUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *PolicySnapshotUpdate) SetNillableActor(v *string) *PolicySnapshotUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// ClearActor clears the value of the "actor" field.
func (_u *PolicySnapshotUpdate) ClearActor() *PolicySnapshotUpdate {
	_u.mutation.ClearActor()
	return _u
}

// Mutation returns the PolicySnapshotMutation object of the builder.
func (_u *PolicySnapshotUpdate) Mutation() *PolicySnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PolicySnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicySnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PolicySnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicySnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicySnapshotUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := policysnapshot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PolicySnapshot.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PolicySnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policysnapshot.Table, policysnapshot.Columns, sqlgraph.NewFieldSpec(policysnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(policysnapshot.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(policysnapshot.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(policysnapshot.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(policysnapshot.FieldActor, field.TypeString, value)
	}
	if _u.mutation.ActorCleared() {
		_spec.ClearField(policysnapshot.FieldActor, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policysnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PolicySnapshotUpdateOne is the builder for updating a single PolicySnapshot entity.
type PolicySnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PolicySnapshotMutation
}

// SetStatus sets the "status" field.
func (_u *PolicySnapshotUpdateOne) SetStatus(v policysnapshot.Status) *PolicySnapshotUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PolicySnapshotUpdateOne) SetNillableStatus(v *policysnapshot.Status) *PolicySnapshotUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *PolicySnapshotUpdateOne) SetMetadata(v map[string]interface{}) *PolicySnapshotUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *PolicySnapshotUpdateOne) ClearMetadata() *PolicySnapshotUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetActor sets the "actor" field.
func (_u *PolicySnapshotUpdateOne) SetActor(v string) *PolicySnapshotUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *PolicySnapshotUpdateOne) SetNillableActor(v *string) *PolicySnapshotUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// ClearActor clears the value of the "actor" field.
func (_u *PolicySnapshotUpdateOne) ClearActor() *PolicySnapshotUpdateOne {
	_u.mutation.ClearActor()
	return _u
}

// Mutation returns the PolicySnapshotMutation object of the builder.
func (_u *PolicySnapshotUpdateOne) Mutation() *PolicySnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the PolicySnapshotUpdate builder.
func (_u *PolicySnapshotUpdateOne) Where(ps ...predicate.PolicySnapshot) *PolicySnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PolicySnapshotUpdateOne) Select(field string, fields ...string) *PolicySnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PolicySnapshot entity.
func (_u *PolicySnapshotUpdateOne) Save(ctx context.Context) (*PolicySnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicySnapshotUpdateOne) SaveX(ctx context.Context) *PolicySnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PolicySnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicySnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicySnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := policysnapshot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PolicySnapshot.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PolicySnapshotUpdateOne) sqlSave(ctx context.Context) (_node *PolicySnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policysnapshot.Table, policysnapshot.Columns, sqlgraph.NewFieldSpec(policysnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PolicySnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, policysnapshot.FieldID)
		for _, f := range fields {
			if !policysnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != policysnapshot.FieldID {
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
		_spec.SetField(policysnapshot.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(policysnapshot.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(policysnapshot.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(policysnapshot.FieldActor, field.TypeString, value)
	}
	if _u.mutation.ActorCleared() {
		_spec.ClearField(policysnapshot.FieldActor, field.TypeString)
	}
	_node = &PolicySnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policysnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
