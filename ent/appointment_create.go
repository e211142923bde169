// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediqo/mediqo/ent/appointment"
)

// AppointmentCreate is the builder for creating a Appointment entity.
type AppointmentCreate struct {
	config
	mutation *AppointmentMutation
	hooks    []Hook
}

// SetClinicID sets the "clinic_id" field.
func (_c *AppointmentCreate) SetClinicID(v string) *AppointmentCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *AppointmentCreate) SetPatientID(v string) *AppointmentCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *AppointmentCreate) SetDoctorID(v string) *AppointmentCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *AppointmentCreate) SetRoomID(v string) *AppointmentCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *AppointmentCreate) SetServiceID(v string) *AppointmentCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AppointmentCreate) SetStartTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *AppointmentCreate) SetEndTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AppointmentCreate) SetStatus(v appointment.Status) *AppointmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStatus(v *appointment.Status) *AppointmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPolicySnapshotID sets the "policy_snapshot_id" field.
func (_c *AppointmentCreate) SetPolicySnapshotID(v string) *AppointmentCreate {
	_c.mutation.SetPolicySnapshotID(v)
	return _c
}

// SetNillablePolicySnapshotID sets the "policy_snapshot_id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillablePolicySnapshotID(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetPolicySnapshotID(*v)
	}
	return _c
}

// SetPolicyVersion sets the "policy_version" field.
func (_c *AppointmentCreate) SetPolicyVersion(v int) *AppointmentCreate {
	_c.mutation.SetPolicyVersion(v)
	return _c
}

// SetNillablePolicyVersion sets the "policy_version" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillablePolicyVersion(v *int) *AppointmentCreate {
	if v != nil {
		_c.SetPolicyVersion(*v)
	}
	return _c
}

// SetPolicyBundleSha256 sets the "policy_bundle_sha256" field.
func (_c *AppointmentCreate) SetPolicyBundleSha256(v string) *AppointmentCreate {
	_c.mutation.SetPolicyBundleSha256(v)
	return _c
}

// SetNillablePolicyBundleSha256 sets the "policy_bundle_sha256" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillablePolicyBundleSha256(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetPolicyBundleSha256(*v)
	}
	return _c
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (_c *AppointmentCreate) SetCalendarEventID(v string) *AppointmentCreate {
	_c.mutation.SetCalendarEventID(v)
	return _c
}

// SetNillableCalendarEventID sets the "calendar_event_id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCalendarEventID(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetCalendarEventID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentCreate) SetCreatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCreatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentCreate) SetUpdatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentCreate) SetID(v string) *AppointmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AppointmentMutation object of the builder.
func (_c *AppointmentCreate) Mutation() *AppointmentMutation {
	return _c.mutation
}

// Save creates the Appointment in the database.
func (_c *AppointmentCreate) Save(ctx context.Context) (*Appointment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentCreate) SaveX(ctx context.Context) *Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := appointment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentCreate) check() error {
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`ent: missing required field "Appointment.clinic_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "Appointment.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`ent: missing required field "Appointment.doctor_id"`)}
	}
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "Appointment.room_id"`)}
	}
	if _, ok := _c.mutation.ServiceID(); !ok {
		return &ValidationError{Name: "service_id", err: errors.New(`ent: missing required field "Appointment.service_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Appointment.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "Appointment.end_time"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Appointment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Appointment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Appointment.updated_at"`)}
	}
	return nil
}

func (_c *AppointmentCreate) sqlSave(ctx context.Context) (*Appointment, error) {
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
			return nil, fmt.Errorf("unexpected Appointment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AppointmentCreate) createSpec() (*Appointment, *sqlgraph.CreateSpec) {
	var (
		_node = &Appointment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointment.Table, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(appointment.FieldClinicID, field.TypeString, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeString, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(appointment.FieldRoomID, field.TypeString, value)
		_node.RoomID = value
	}
	if value, ok := _c.mutation.ServiceID(); ok {
		_spec.SetField(appointment.FieldServiceID, field.TypeString, value)
		_node.ServiceID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(appointment.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PolicySnapshotID(); ok {
		_spec.SetField(appointment.FieldPolicySnapshotID, field.TypeString, value)
		_node.PolicySnapshotID = value
	}
	if value, ok := _c.mutation.PolicyVersion(); ok {
		_spec.SetField(appointment.FieldPolicyVersion, field.TypeInt, value)
		_node.PolicyVersion = value
	}
	if value, ok := _c.mutation.PolicyBundleSha256(); ok {
		_spec.SetField(appointment.FieldPolicyBundleSha256, field.TypeString, value)
		_node.PolicyBundleSha256 = value
	}
	if value, ok := _c.mutation.CalendarEventID(); ok {
		_spec.SetField(appointment.FieldCalendarEventID, field.TypeString, value)
		_node.CalendarEventID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AppointmentCreateBulk is the builder for creating many Appointment entities in bulk.
type AppointmentCreateBulk struct {
	config
	err      error
	builders []*AppointmentCreate
}

// Save creates the Appointment entities in the database.
func (_c *AppointmentCreateBulk) Save(ctx context.Context) ([]*Appointment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Appointment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentMutation)
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
func (_c *AppointmentCreateBulk) SaveX(ctx context.Context) []*Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
