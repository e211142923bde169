// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediqo/mediqo/ent/policysnapshot"
)

// PolicySnapshotCreate is the builder for creating a PolicySnapshot entity.
type PolicySnapshotCreate struct {
	config
	mutation *PolicySnapshotMutation
	hooks    []Hook
}

// SetClinicID sets the "clinic_id" field.
func (_c *PolicySnapshotCreate) SetClinicID(v string) *PolicySnapshotCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetBundleID sets the "bundle_id" field.
func (_c *PolicySnapshotCreate) SetBundleID(v string) *PolicySnapshotCreate {
	_c.mutation.SetBundleID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PolicySnapshotCreate) SetVersion(v int) *PolicySnapshotCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PolicySnapshotCreate) SetStatus(v policysnapshot.Status) *PolicySnapshotCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PolicySnapshotCreate) SetNillableStatus(v *policysnapshot.Status) *PolicySnapshotCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSha256 sets the "sha256" field.
func (_c *PolicySnapshotCreate) SetSha256(v string) *PolicySnapshotCreate {
	_c.mutation.SetSha256(v)
	return _c
}

// SetBundle sets the "bundle" field.
func (_c *PolicySnapshotCreate) SetBundle(v map[string]interface{}) *PolicySnapshotCreate {
	_c.mutation.SetBundle(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *PolicySnapshotCreate) SetMetadata(v map[string]interface{}) *PolicySnapshotCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *PolicySnapshotCreate) SetActor(v string) *PolicySnapshotCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_c *PolicySnapshotCreate) SetNillableActor(v *string) *PolicySnapshotCreate {
	if v != nil {
		_c.SetActor(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PolicySnapshotCreate) SetCreatedAt(v time.Time) *PolicySnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PolicySnapshotCreate) SetNillableCreatedAt(v *time.Time) *PolicySnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PolicySnapshotCreate) SetID(v string) *PolicySnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PolicySnapshotMutation object of the builder.
func (_c *PolicySnapshotCreate) Mutation() *PolicySnapshotMutation {
	return _c.mutation
}

// Save creates the PolicySnapshot in the database.
func (_c *PolicySnapshotCreate) Save(ctx context.Context) (*PolicySnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PolicySnapshotCreate) SaveX(ctx context.Context) *PolicySnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicySnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicySnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PolicySnapshotCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := policysnapshot.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := policysnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PolicySnapshotCreate) check() error {
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`ent: missing required field "PolicySnapshot.clinic_id"`)}
	}
	if _, ok := _c.mutation.BundleID(); !ok {
		return &ValidationError{Name: "bundle_id", err: errors.New(`ent: missing required field "PolicySnapshot.bundle_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "PolicySnapshot.version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PolicySnapshot.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := policysnapshot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PolicySnapshot.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sha256(); !ok {
		return &ValidationError{Name: "sha256", err: errors.New(`ent: missing required field "PolicySnapshot.sha256"`)}
	}
	if _, ok := _c.mutation.Bundle(); !ok {
		return &ValidationError{Name: "bundle", err: errors.New(`ent: missing required field "PolicySnapshot.bundle"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PolicySnapshot.created_at"`)}
	}
	return nil
}

func (_c *PolicySnapshotCreate) sqlSave(ctx context.Context) (*PolicySnapshot, error) {
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
			return nil, fmt.Errorf("unexpected PolicySnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PolicySnapshotCreate) createSpec() (*PolicySnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &PolicySnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(policysnapshot.Table, sqlgraph.NewFieldSpec(policysnapshot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(policysnapshot.FieldClinicID, field.TypeString, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.BundleID(); ok {
		_spec.SetField(policysnapshot.FieldBundleID, field.TypeString, value)
		_node.BundleID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(policysnapshot.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(policysnapshot.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Sha256(); ok {
		_spec.SetField(policysnapshot.FieldSha256, field.TypeString, value)
		_node.Sha256 = value
	}
	if value, ok := _c.mutation.Bundle(); ok {
		_spec.SetField(policysnapshot.FieldBundle, field.TypeJSON, value)
		_node.Bundle = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(policysnapshot.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(policysnapshot.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(policysnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PolicySnapshotCreateBulk is the builder for creating many PolicySnapshot entities in bulk.
type PolicySnapshotCreateBulk struct {
	config
	err      error
	builders []*PolicySnapshotCreate
}

// Save creates the PolicySnapshot entities in the database.
func (_c *PolicySnapshotCreateBulk) Save(ctx context.Context) ([]*PolicySnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PolicySnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PolicySnapshotMutation)
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
func (_c *PolicySnapshotCreateBulk) SaveX(ctx context.Context) []*PolicySnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicySnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicySnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
