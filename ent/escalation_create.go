// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediqo/mediqo/ent/escalation"
)

// EscalationCreate is the builder for creating a Escalation entity.
type EscalationCreate struct {
	config
	mutation *EscalationMutation
	hooks    []Hook
}

// SetClinicID sets the "clinic_id" field.
func (_c *EscalationCreate) SetClinicID(v string) *EscalationCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *EscalationCreate) SetPatientID(v string) *EscalationCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *EscalationCreate) SetServiceID(v string) *EscalationCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_c *EscalationCreate) SetNillableServiceID(v *string) *EscalationCreate {
	if v != nil {
		_c.SetServiceID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EscalationCreate) SetStatus(v escalation.Status) *EscalationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EscalationCreate) SetNillableStatus(v *escalation.Status) *EscalationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *EscalationCreate) SetReason(v string) *EscalationCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetRequest sets the "request" field.
func (_c *EscalationCreate) SetRequest(v map[string]interface{}) *EscalationCreate {
	_c.mutation.SetRequest(v)
	return _c
}

// SetSuggestions sets the "suggestions" field.
func (_c *EscalationCreate) SetSuggestions(v []map[string]interface{}) *EscalationCreate {
	_c.mutation.SetSuggestions(v)
	return _c
}

// SetSLADeadline sets the "sla_deadline" field.
func (_c *EscalationCreate) SetSLADeadline(v time.Time) *EscalationCreate {
	_c.mutation.SetSLADeadline(v)
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *EscalationCreate) SetAssignedTo(v string) *EscalationCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_c *EscalationCreate) SetNillableAssignedTo(v *string) *EscalationCreate {
	if v != nil {
		_c.SetAssignedTo(*v)
	}
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *EscalationCreate) SetResolution(v map[string]interface{}) *EscalationCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EscalationCreate) SetCreatedAt(v time.Time) *EscalationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EscalationCreate) SetNillableCreatedAt(v *time.Time) *EscalationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EscalationCreate) SetUpdatedAt(v time.Time) *EscalationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EscalationCreate) SetNillableUpdatedAt(v *time.Time) *EscalationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EscalationCreate) SetID(v string) *EscalationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EscalationMutation object of the builder.
func (_c *EscalationCreate) Mutation() *EscalationMutation {
	return _c.mutation
}

// Save creates the Escalation in the database.
func (_c *EscalationCreate) Save(ctx context.Context) (*Escalation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EscalationCreate) SaveX(ctx context.Context) *Escalation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EscalationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EscalationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EscalationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := escalation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := escalation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := escalation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EscalationCreate) check() error {
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`ent: missing required field "Escalation.clinic_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "Escalation.patient_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Escalation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := escalation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Escalation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "Escalation.reason"`)}
	}
	if _, ok := _c.mutation.Request(); !ok {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required field "Escalation.request"`)}
	}
	if _, ok := _c.mutation.SLADeadline(); !ok {
		return &ValidationError{Name: "sla_deadline", err: errors.New(`ent: missing required field "Escalation.sla_deadline"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Escalation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Escalation.updated_at"`)}
	}
	return nil
}

func (_c *EscalationCreate) sqlSave(ctx context.Context) (*Escalation, error) {
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
			return nil, fmt.Errorf("unexpected Escalation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EscalationCreate) createSpec() (*Escalation, *sqlgraph.CreateSpec) {
	var (
		_node = &Escalation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(escalation.Table, sqlgraph.NewFieldSpec(escalation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(escalation.FieldClinicID, field.TypeString, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(escalation.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.ServiceID(); ok {
		_spec.SetField(escalation.FieldServiceID, field.TypeString, value)
		_node.ServiceID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(escalation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(escalation.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Request(); ok {
		_spec.SetField(escalation.FieldRequest, field.TypeJSON, value)
		_node.Request = value
	}
	if value, ok := _c.mutation.Suggestions(); ok {
		_spec.SetField(escalation.FieldSuggestions, field.TypeJSON, value)
		_node.Suggestions = value
	}
	if value, ok := _c.mutation.SLADeadline(); ok {
		_spec.SetField(escalation.FieldSLADeadline, field.TypeTime, value)
		_node.SLADeadline = value
	}
	if value, ok := _c.mutation.AssignedTo(); ok {
		_spec.SetField(escalation.FieldAssignedTo, field.TypeString, value)
		_node.AssignedTo = &value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(escalation.FieldResolution, field.TypeJSON, value)
		_node.Resolution = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(escalation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(escalation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// EscalationCreateBulk is the builder for creating many Escalation entities in bulk.
type EscalationCreateBulk struct {
	config
	err      error
	builders []*EscalationCreate
}

// Save creates the Escalation entities in the database.
func (_c *EscalationCreateBulk) Save(ctx context.Context) ([]*Escalation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Escalation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EscalationMutation)
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
func (_c *EscalationCreateBulk) SaveX(ctx context.Context) []*Escalation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EscalationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EscalationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
