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
	"github.com/mediqo/mediqo/ent/hold"
	"github.com/mediqo/mediqo/ent/predicate"
)

// HoldUpdate is the builder for updating Hold entities.
type HoldUpdate struct {
	config
	hooks    []Hook
	mutation *HoldMutation
}

// Where appends a list predicates to the HoldUpdate builder.
func (_u *HoldUpdate) Where(ps ...predicate.Hold) *HoldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *HoldUpdate) SetScore(v float64) *HoldUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *HoldUpdate) SetNillableScore(v *float64) *HoldUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *HoldUpdate) AddScore(v float64) *HoldUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *HoldUpdate) ClearScore() *HoldUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *HoldUpdate) SetExpiresAt(v time.Time) *HoldUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *HoldUpdate) SetNillableExpiresAt(v *time.Time) *HoldUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the HoldMutation object of the builder.
func (_u *HoldUpdate) Mutation() *HoldMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HoldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HoldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HoldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HoldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HoldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(hold.Table, hold.Columns, sqlgraph.NewFieldSpec(hold.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(hold.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(hold.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(hold.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(hold.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hold.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HoldUpdateOne is the builder for updating a single Hold entity.
type HoldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HoldMutation
}

// SetScore sets the "score" field.
func (_u *HoldUpdateOne) SetScore(v float64) *HoldUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *HoldUpdateOne) SetNillableScore(v *float64) *HoldUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *HoldUpdateOne) AddScore(v float64) *HoldUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *HoldUpdateOne) ClearScore() *HoldUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *HoldUpdateOne) SetExpiresAt(v time.Time) *HoldUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *HoldUpdateOne) SetNillableExpiresAt(v *time.Time) *HoldUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the HoldMutation object of the builder.
func (_u *HoldUpdateOne) Mutation() *HoldMutation {
	return _u.mutation
}

// Where appends a list predicates to the HoldUpdate builder.
func (_u *HoldUpdateOne) Where(ps ...predicate.Hold) *HoldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HoldUpdateOne) Select(field string, fields ...string) *HoldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Hold entity.
func (_u *HoldUpdateOne) Save(ctx context.Context) (*Hold, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HoldUpdateOne) SaveX(ctx context.Context) *Hold {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HoldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HoldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HoldUpdateOne) sqlSave(ctx context.Context) (_node *Hold, err error) {
	_spec := sqlgraph.NewUpdateSpec(hold.Table, hold.Columns, sqlgraph.NewFieldSpec(hold.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Hold.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hold.FieldID)
		for _, f := range fields {
			if !hold.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hold.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(hold.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(hold.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(hold.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(hold.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &Hold{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hold.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
