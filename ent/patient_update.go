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
	"github.com/mediqo/mediqo/ent/patient"
	"github.com/mediqo/mediqo/ent/predicate"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PatientUpdate) SetPhone(v string) *PatientUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePhone(v *string) *PatientUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PatientUpdate) SetFirstName(v string) *PatientUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableFirstName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *PatientUpdate) ClearFirstName() *PatientUpdate {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PatientUpdate) SetLastName(v string) *PatientUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableLastName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *PatientUpdate) ClearLastName() *PatientUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetPreferredLanguage sets the "preferred_language" field.
func (_u *PatientUpdate) SetPreferredLanguage(v string) *PatientUpdate {
	_u.mutation.SetPreferredLanguage(v)
	return _u
}

// SetNillablePreferredLanguage sets the "preferred_language" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePreferredLanguage(v *string) *PatientUpdate {
	if v != nil {
		_u.SetPreferredLanguage(*v)
	}
	return _u
}

// ClearPreferredLanguage clears the value of the "preferred_language" field.
func (_u *PatientUpdate) ClearPreferredLanguage() *PatientUpdate {
	_u.mutation.ClearPreferredLanguage()
	return _u
}

// SetHardDoctorBans sets the "hard_doctor_bans" field.
func (_u *PatientUpdate) SetHardDoctorBans(v []string) *PatientUpdate {
	_u.mutation.SetHardDoctorBans(v)
	return _u
}

// AppendHardDoctorBans appends value to the "hard_doctor_bans" field.
func (_u *PatientUpdate) AppendHardDoctorBans(v []string) *PatientUpdate {
	_u.mutation.AppendHardDoctorBans(v)
	return _u
}

// ClearHardDoctorBans clears the value of the "hard_doctor_bans" field.
func (_u *PatientUpdate) ClearHardDoctorBans() *PatientUpdate {
	_u.mutation.ClearHardDoctorBans()
	return _u
}

// SetHardServiceBans sets the "hard_service_bans" field.
func (_u *PatientUpdate) SetHardServiceBans(v []string) *PatientUpdate {
	_u.mutation.SetHardServiceBans(v)
	return _u
}

// AppendHardServiceBans appends value to the "hard_service_bans" field.
func (_u *PatientUpdate) AppendHardServiceBans(v []string) *PatientUpdate {
	_u.mutation.AppendHardServiceBans(v)
	return _u
}

// ClearHardServiceBans clears the value of the "hard_service_bans" field.
func (_u *PatientUpdate) ClearHardServiceBans() *PatientUpdate {
	_u.mutation.ClearHardServiceBans()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *PatientUpdate) SetAllergies(v []string) *PatientUpdate {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *PatientUpdate) AppendAllergies(v []string) *PatientUpdate {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *PatientUpdate) ClearAllergies() *PatientUpdate {
	_u.mutation.ClearAllergies()
	return _u
}

// SetPreferences sets the "preferences" field.
func (_u *PatientUpdate) SetPreferences(v map[string]interface{}) *PatientUpdate {
	_u.mutation.SetPreferences(v)
	return _u
}

// ClearPreferences clears the value of the "preferences" field.
func (_u *PatientUpdate) ClearPreferences() *PatientUpdate {
	_u.mutation.ClearPreferences()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(patient.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(patient.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.PreferredLanguage(); ok {
		_spec.SetField(patient.FieldPreferredLanguage, field.TypeString, value)
	}
	if _u.mutation.PreferredLanguageCleared() {
		_spec.ClearField(patient.FieldPreferredLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.HardDoctorBans(); ok {
		_spec.SetField(patient.FieldHardDoctorBans, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHardDoctorBans(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldHardDoctorBans, value)
		})
	}
	if _u.mutation.HardDoctorBansCleared() {
		_spec.ClearField(patient.FieldHardDoctorBans, field.TypeJSON)
	}
	if value, ok := _u.mutation.HardServiceBans(); ok {
		_spec.SetField(patient.FieldHardServiceBans, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHardServiceBans(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldHardServiceBans, value)
		})
	}
	if _u.mutation.HardServiceBansCleared() {
		_spec.ClearField(patient.FieldHardServiceBans, field.TypeJSON)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(patient.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Preferences(); ok {
		_spec.SetField(patient.FieldPreferences, field.TypeJSON, value)
	}
	if _u.mutation.PreferencesCleared() {
		_spec.ClearField(patient.FieldPreferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetPhone sets the "phone" field.
func (_u *PatientUpdateOne) SetPhone(v string) *PatientUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePhone(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PatientUpdateOne) SetFirstName(v string) *PatientUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableFirstName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *PatientUpdateOne) ClearFirstName() *PatientUpdateOne {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PatientUpdateOne) SetLastName(v string) *PatientUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableLastName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *PatientUpdateOne) ClearLastName() *PatientUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetPreferredLanguage sets the "preferred_language" field.
func (_u *PatientUpdateOne) SetPreferredLanguage(v string) *PatientUpdateOne {
	_u.mutation.SetPreferredLanguage(v)
	return _u
}

// SetNillablePreferredLanguage sets the "preferred_language" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePreferredLanguage(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetPreferredLanguage(*v)
	}
	return _u
}

// ClearPreferredLanguage clears the value of the "preferred_language" field.
func (_u *PatientUpdateOne) ClearPreferredLanguage() *PatientUpdateOne {
	_u.mutation.ClearPreferredLanguage()
	return _u
}

// SetHardDoctorBans sets the "hard_doctor_bans" field.
func (_u *PatientUpdateOne) SetHardDoctorBans(v []string) *PatientUpdateOne {
	_u.mutation.SetHardDoctorBans(v)
	return _u
}

// AppendHardDoctorBans appends value to the "hard_doctor_bans" field.
func (_u *PatientUpdateOne) AppendHardDoctorBans(v []string) *PatientUpdateOne {
	_u.mutation.AppendHardDoctorBans(v)
	return _u
}

// ClearHardDoctorBans clears the value of the "hard_doctor_bans" field.
func (_u *PatientUpdateOne) ClearHardDoctorBans() *PatientUpdateOne {
	_u.mutation.ClearHardDoctorBans()
	return _u
}

// SetHardServiceBans sets the "hard_service_bans" field.
func (_u *PatientUpdateOne) SetHardServiceBans(v []string) *PatientUpdateOne {
	_u.mutation.SetHardServiceBans(v)
	return _u
}

// AppendHardServiceBans appends value to the "hard_service_bans" field.
func (_u *PatientUpdateOne) AppendHardServiceBans(v []string) *PatientUpdateOne {
	_u.mutation.AppendHardServiceBans(v)
	return _u
}

// ClearHardServiceBans clears the value of the "hard_service_bans" field.
func (_u *PatientUpdateOne) ClearHardServiceBans() *PatientUpdateOne {
	_u.mutation.ClearHardServiceBans()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *PatientUpdateOne) SetAllergies(v []string) *PatientUpdateOne {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *PatientUpdateOne) AppendAllergies(v []string) *PatientUpdateOne {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *PatientUpdateOne) ClearAllergies() *PatientUpdateOne {
	_u.mutation.ClearAllergies()
	return _u
}

// SetPreferences sets the "preferences" field.
func (_u *PatientUpdateOne) SetPreferences(v map[string]interface{}) *PatientUpdateOne {
	_u.mutation.SetPreferences(v)
	return _u
}

// ClearPreferences clears the value of the "preferences" field.
func (_u *PatientUpdateOne) ClearPreferences() *PatientUpdateOne {
	_u.mutation.ClearPreferences()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(patient.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(patient.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.PreferredLanguage(); ok {
		_spec.SetField(patient.FieldPreferredLanguage, field.TypeString, value)
	}
	if _u.mutation.PreferredLanguageCleared() {
		_spec.ClearField(patient.FieldPreferredLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.HardDoctorBans(); ok {
		_spec.SetField(patient.FieldHardDoctorBans, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHardDoctorBans(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldHardDoctorBans, value)
		})
	}
	if _u.mutation.HardDoctorBansCleared() {
		_spec.ClearField(patient.FieldHardDoctorBans, field.TypeJSON)
	}
	if value, ok := _u.mutation.HardServiceBans(); ok {
		_spec.SetField(patient.FieldHardServiceBans, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHardServiceBans(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldHardServiceBans, value)
		})
	}
	if _u.mutation.HardServiceBansCleared() {
		_spec.ClearField(patient.FieldHardServiceBans, field.TypeJSON)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(patient.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Preferences(); ok {
		_spec.SetField(patient.FieldPreferences, field.TypeJSON, value)
	}
	if _u.mutation.PreferencesCleared() {
		_spec.ClearField(patient.FieldPreferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
