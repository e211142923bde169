// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediqo/mediqo/ent/clinic"
)

// ClinicCreate is the builder for creating a Clinic entity.
type ClinicCreate struct {
	config
	mutation *ClinicMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ClinicCreate) SetName(v string) *ClinicCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *ClinicCreate) SetTimezone(v string) *ClinicCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableTimezone(v *string) *ClinicCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetInstanceName sets the "instance_name" field.
func (_c *ClinicCreate) SetInstanceName(v string) *ClinicCreate {
	_c.mutation.SetInstanceName(v)
	return _c
}

// SetNillableInstanceName sets the "instance_name" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableInstanceName(v *string) *ClinicCreate {
	if v != nil {
		_c.SetInstanceName(*v)
	}
	return _c
}

// SetDefaultLanguage sets the "default_language" field.
func (_c *ClinicCreate) SetDefaultLanguage(v string) *ClinicCreate {
	_c.mutation.SetDefaultLanguage(v)
	return _c
}

// SetNillableDefaultLanguage sets the "default_language" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableDefaultLanguage(v *string) *ClinicCreate {
	if v != nil {
		_c.SetDefaultLanguage(*v)
	}
	return _c
}

// SetProfile sets the "profile" field.
func (_c *ClinicCreate) SetProfile(v map[string]interface{}) *ClinicCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClinicCreate) SetCreatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableCreatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClinicCreate) SetUpdatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableUpdatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClinicCreate) SetID(v string) *ClinicCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ClinicMutation object of the builder.
func (_c *ClinicCreate) Mutation() *ClinicMutation {
	return _c.mutation
}

// Save creates the Clinic in the database.
func (_c *ClinicCreate) Save(ctx context.Context) (*Clinic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicCreate) SaveX(ctx context.Context) *Clinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicCreate) defaults() {
	if _, ok := _c.mutation.Timezone(); !ok {
		v := clinic.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.DefaultLanguage(); !ok {
		v := clinic.DefaultDefaultLanguage
		_c.mutation.SetDefaultLanguage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clinic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clinic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Clinic.name"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Clinic.timezone"`)}
	}
	if _, ok := _c.mutation.DefaultLanguage(); !ok {
		return &ValidationError{Name: "default_language", err: errors.New(`ent: missing required field "Clinic.default_language"`)}
	}
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "Clinic.profile"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Clinic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Clinic.updated_at"`)}
	}
	return nil
}

func (_c *ClinicCreate) sqlSave(ctx context.Context) (*Clinic, error) {
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
			return nil, fmt.Errorf("unexpected Clinic.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClinicCreate) createSpec() (*Clinic, *sqlgraph.CreateSpec) {
	var (
		_node = &Clinic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clinic.Table, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(clinic.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.InstanceName(); ok {
		_spec.SetField(clinic.FieldInstanceName, field.TypeString, value)
		_node.InstanceName = value
	}
	if value, ok := _c.mutation.DefaultLanguage(); ok {
		_spec.SetField(clinic.FieldDefaultLanguage, field.TypeString, value)
		_node.DefaultLanguage = value
	}
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(clinic.FieldProfile, field.TypeJSON, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clinic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ClinicCreateBulk is the builder for creating many Clinic entities in bulk.
type ClinicCreateBulk struct {
	config
	err      error
	builders []*ClinicCreate
}

// Save creates the Clinic entities in the database.
func (_c *ClinicCreateBulk) Save(ctx context.Context) ([]*Clinic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Clinic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicMutation)
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
func (_c *ClinicCreateBulk) SaveX(ctx context.Context) []*Clinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
