// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediqo/mediqo/ent/hold"
)

// HoldCreate is the builder for creating a Hold entity.
type HoldCreate struct {
	config
	mutation *HoldMutation
	hooks    []Hook
}

// SetClientHoldID sets the "client_hold_id" field.
func (_c *HoldCreate) SetClientHoldID(v string) *HoldCreate {
	_c.mutation.SetClientHoldID(v)
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *HoldCreate) SetClinicID(v string) *HoldCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *HoldCreate) SetPatientID(v string) *HoldCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *HoldCreate) SetDoctorID(v string) *HoldCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *HoldCreate) SetRoomID(v string) *HoldCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *HoldCreate) SetServiceID(v string) *HoldCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *HoldCreate) SetStartTime(v time.Time) *HoldCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *HoldCreate) SetEndTime(v time.Time) *HoldCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *HoldCreate) SetScore(v float64) *HoldCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *HoldCreate) SetNillableScore(v *float64) *HoldCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *HoldCreate) SetExpiresAt(v time.Time) *HoldCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HoldCreate) SetCreatedAt(v time.Time) *HoldCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HoldCreate) SetNillableCreatedAt(v *time.Time) *HoldCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HoldCreate) SetID(v string) *HoldCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HoldMutation object of the builder.
func (_c *HoldCreate) Mutation() *HoldMutation {
	return _c.mutation
}

// Save creates the Hold in the database.
func (_c *HoldCreate) Save(ctx context.Context) (*Hold, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HoldCreate) SaveX(ctx context.Context) *Hold {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HoldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HoldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HoldCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hold.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HoldCreate) check() error {
	if _, ok := _c.mutation.ClientHoldID(); !ok {
		return &ValidationError{Name: "client_hold_id", err: errors.New(`ent: missing required field "Hold.client_hold_id"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`ent: missing required field "Hold.clinic_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "Hold.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`ent: missing required field "Hold.doctor_id"`)}
	}
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "Hold.room_id"`)}
	}
	if _, ok := _c.mutation.ServiceID(); !ok {
		return &ValidationError{Name: "service_id", err: errors.New(`ent: missing required field "Hold.service_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Hold.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "Hold.end_time"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Hold.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Hold.created_at"`)}
	}
	return nil
}

func (_c *HoldCreate) sqlSave(ctx context.Context) (*Hold, error) {
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
			return nil, fmt.Errorf("unexpected Hold.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HoldCreate) createSpec() (*Hold, *sqlgraph.CreateSpec) {
	var (
		_node = &Hold{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hold.Table, sqlgraph.NewFieldSpec(hold.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ClientHoldID(); ok {
		_spec.SetField(hold.FieldClientHoldID, field.TypeString, value)
		_node.ClientHoldID = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(hold.FieldClinicID, field.TypeString, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(hold.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(hold.FieldDoctorID, field.TypeString, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(hold.FieldRoomID, field.TypeString, value)
		_node.RoomID = value
	}
	if value, ok := _c.mutation.ServiceID(); ok {
		_spec.SetField(hold.FieldServiceID, field.TypeString, value)
		_node.ServiceID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(hold.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(hold.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(hold.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(hold.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hold.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// HoldCreateBulk is the builder for creating many Hold entities in bulk.
type HoldCreateBulk struct {
	config
	err      error
	builders []*HoldCreate
}

// Save creates the Hold entities in the database.
func (_c *HoldCreateBulk) Save(ctx context.Context) ([]*Hold, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Hold, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HoldMutation)
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
func (_c *HoldCreateBulk) SaveX(ctx context.Context) []*Hold {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HoldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HoldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
