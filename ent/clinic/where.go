// Code generated by ent, DO NOT EDIT.

package clinic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediqo/mediqo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldName, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldTimezone, v))
}

// InstanceName applies equality check predicate on the "instance_name" field. It's identical to InstanceNameEQ.
func InstanceName(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldInstanceName, v))
}

// DefaultLanguage applies equality check predicate on the "default_language" field. It's identical to DefaultLanguageEQ.
func DefaultLanguage(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldDefaultLanguage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldName, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldTimezone, v))
}

// InstanceNameEQ applies the EQ predicate on the "instance_name" field.
func InstanceNameEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldInstanceName, v))
}

// InstanceNameNEQ applies the NEQ predicate on the "instance_name" field.
func InstanceNameNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldInstanceName, v))
}

// InstanceNameIn applies the In predicate on the "instance_name" field.
func InstanceNameIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldInstanceName, vs...))
}

// InstanceNameNotIn applies the NotIn predicate on the "instance_name" field.
func InstanceNameNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldInstanceName, vs...))
}

// InstanceNameGT applies the GT predicate on the "instance_name" field.
func InstanceNameGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldInstanceName, v))
}

// InstanceNameGTE applies the GTE predicate on the "instance_name" field.
func InstanceNameGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldInstanceName, v))
}

// InstanceNameLT applies the LT predicate on the "instance_name" field.
func InstanceNameLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldInstanceName, v))
}

// InstanceNameLTE applies the LTE predicate on the "instance_name" field.
func InstanceNameLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldInstanceName, v))
}

// InstanceNameContains applies the Contains predicate on the "instance_name" field.
func InstanceNameContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldInstanceName, v))
}

// InstanceNameHasPrefix applies the HasPrefix predicate on the "instance_name" field.
func InstanceNameHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldInstanceName, v))
}

// InstanceNameHasSuffix applies the HasSuffix predicate on the "instance_name" field.
func InstanceNameHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldInstanceName, v))
}

// InstanceNameIsNil applies the IsNil predicate on the "instance_name" field.
func InstanceNameIsNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldIsNull(FieldInstanceName))
}

// InstanceNameNotNil applies the NotNil predicate on the "instance_name" field.
func InstanceNameNotNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldNotNull(FieldInstanceName))
}

// InstanceNameEqualFold applies the EqualFold predicate on the "instance_name" field.
func InstanceNameEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldInstanceName, v))
}

// InstanceNameContainsFold applies the ContainsFold predicate on the "instance_name" field.
func InstanceNameContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldInstanceName, v))
}

// DefaultLanguageEQ applies the EQ predicate on the "default_language" field.
func DefaultLanguageEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldDefaultLanguage, v))
}

// DefaultLanguageNEQ applies the NEQ predicate on the "default_language" field.
func DefaultLanguageNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldDefaultLanguage, v))
}

// DefaultLanguageIn applies the In predicate on the "default_language" field.
func DefaultLanguageIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldDefaultLanguage, vs...))
}

// DefaultLanguageNotIn applies the NotIn predicate on the "default_language" field.
func DefaultLanguageNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldDefaultLanguage, vs...))
}

// DefaultLanguageGT applies the GT predicate on the "default_language" field.
func DefaultLanguageGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldDefaultLanguage, v))
}

// DefaultLanguageGTE applies the GTE predicate on the "default_language" field.
func DefaultLanguageGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldDefaultLanguage, v))
}

// DefaultLanguageLT applies the LT predicate on the "default_language" field.
func DefaultLanguageLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldDefaultLanguage, v))
}

// DefaultLanguageLTE applies the LTE predicate on the "default_language" field.
func DefaultLanguageLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldDefaultLanguage, v))
}

// DefaultLanguageContains applies the Contains predicate on the "default_language" field.
func DefaultLanguageContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldDefaultLanguage, v))
}

// DefaultLanguageHasPrefix applies the HasPrefix predicate on the "default_language" field.
func DefaultLanguageHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldDefaultLanguage, v))
}

// DefaultLanguageHasSuffix applies the HasSuffix predicate on the "default_language" field.
func DefaultLanguageHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldDefaultLanguage, v))
}

// DefaultLanguageEqualFold applies the EqualFold predicate on the "default_language" field.
func DefaultLanguageEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldDefaultLanguage, v))
}

// DefaultLanguageContainsFold applies the ContainsFold predicate on the "default_language" field.
func DefaultLanguageContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldDefaultLanguage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Clinic) predicate.Clinic {
	return predicate.Clinic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Clinic) predicate.Clinic {
	return predicate.Clinic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Clinic) predicate.Clinic {
	return predicate.Clinic(sql.NotPredicates(p))
}
