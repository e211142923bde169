// Code generated by ent, DO NOT EDIT.

package policysnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediqo/mediqo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldContainsFold(FieldID, id))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldClinicID, v))
}

// BundleID applies equality check predicate on the "bundle_id" field. It's identical to BundleIDEQ.
func BundleID(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldBundleID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldVersion, v))
}

// Sha256 applies equality check predicate on the "sha256" field. It's identical to Sha256EQ.
func Sha256(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldSha256, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldActor, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLTE(FieldClinicID, v))
}

// ClinicIDContains applies the Contains predicate on the "clinic_id" field.
func ClinicIDContains(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldContains(FieldClinicID, v))
}

// ClinicIDHasPrefix applies the HasPrefix predicate on the "clinic_id" field.
func ClinicIDHasPrefix(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldHasPrefix(FieldClinicID, v))
}

// ClinicIDHasSuffix applies the HasSuffix predicate on the "clinic_id" field.
func ClinicIDHasSuffix(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldHasSuffix(FieldClinicID, v))
}

// ClinicIDEqualFold applies the EqualFold predicate on the "clinic_id" field.
func ClinicIDEqualFold(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEqualFold(FieldClinicID, v))
}

// ClinicIDContainsFold applies the ContainsFold predicate on the "clinic_id" field.
func ClinicIDContainsFold(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldContainsFold(FieldClinicID, v))
}

// BundleIDEQ applies the EQ predicate on the "bundle_id" field.
func BundleIDEQ(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldBundleID, v))
}

// BundleIDNEQ applies the NEQ predicate on the "bundle_id" field.
func BundleIDNEQ(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNEQ(FieldBundleID, v))
}

// BundleIDIn applies the In predicate on the "bundle_id" field.
func BundleIDIn(vs ...string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldIn(FieldBundleID, vs...))
}

// BundleIDNotIn applies the NotIn predicate on the "bundle_id" field.
func BundleIDNotIn(vs ...string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNotIn(FieldBundleID, vs...))
}

// BundleIDGT applies the GT predicate on the "bundle_id" field.
func BundleIDGT(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGT(FieldBundleID, v))
}

// BundleIDGTE applies the GTE predicate on the "bundle_id" field.
func BundleIDGTE(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGTE(FieldBundleID, v))
}

// BundleIDLT applies the LT predicate on the "bundle_id" field.
func BundleIDLT(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLT(FieldBundleID, v))
}

// BundleIDLTE applies the LTE predicate on the "bundle_id" field.
func BundleIDLTE(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLTE(FieldBundleID, v))
}

// BundleIDContains applies the Contains predicate on the "bundle_id" field.
func BundleIDContains(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldContains(FieldBundleID, v))
}

// BundleIDHasPrefix applies the HasPrefix predicate on the "bundle_id" field.
func BundleIDHasPrefix(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldHasPrefix(FieldBundleID, v))
}

// BundleIDHasSuffix applies the HasSuffix predicate on the "bundle_id" field.
func BundleIDHasSuffix(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldHasSuffix(FieldBundleID, v))
}

// BundleIDEqualFold applies the EqualFold predicate on the "bundle_id" field.
func BundleIDEqualFold(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEqualFold(FieldBundleID, v))
}

// BundleIDContainsFold applies the ContainsFold predicate on the "bundle_id" field.
func BundleIDContainsFold(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldContainsFold(FieldBundleID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLTE(FieldVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNotIn(FieldStatus, vs...))
}

// Sha256EQ applies the EQ predicate on the "sha256" field.
func Sha256EQ(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldSha256, v))
}

// Sha256NEQ applies the NEQ predicate on the "sha256" field.
func Sha256NEQ(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNEQ(FieldSha256, v))
}

// Sha256In applies the In predicate on the "sha256" field.
func Sha256In(vs ...string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldIn(FieldSha256, vs...))
}

// Sha256NotIn applies the NotIn predicate on the "sha256" field.
func Sha256NotIn(vs ...string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNotIn(FieldSha256, vs...))
}

// Sha256GT applies the GT predicate on the "sha256" field.
func Sha256GT(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGT(FieldSha256, v))
}

// Sha256GTE applies the GTE predicate on the "sha256" field.
func Sha256GTE(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGTE(FieldSha256, v))
}

// Sha256LT applies the LT predicate on the "sha256" field.
func Sha256LT(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLT(FieldSha256, v))
}

// Sha256LTE applies the LTE predicate on the "sha256" field.
func Sha256LTE(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLTE(FieldSha256, v))
}

// Sha256Contains applies the Contains predicate on the "sha256" field.
func Sha256Contains(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldContains(FieldSha256, v))
}

// Sha256HasPrefix applies the HasPrefix predicate on the "sha256" field.
func Sha256HasPrefix(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldHasPrefix(FieldSha256, v))
}

// Sha256HasSuffix applies the HasSuffix predicate on the "sha256" field.
func Sha256HasSuffix(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldHasSuffix(FieldSha256, v))
}

// Sha256EqualFold applies the EqualFold predicate on the "sha256" field.
func Sha256EqualFold(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEqualFold(FieldSha256, v))
}

// Sha256ContainsFold applies the ContainsFold predicate on the "sha256" field.
func Sha256ContainsFold(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldContainsFold(FieldSha256, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNotNull(FieldMetadata))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldHasSuffix(FieldActor, v))
}

// ActorIsNil applies the IsNil predicate on the "actor" field.
func ActorIsNil() predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldIsNull(FieldActor))
}

// ActorNotNil applies the NotNil predicate on the "actor" field.
func ActorNotNil() predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNotNull(FieldActor))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldContainsFold(FieldActor, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PolicySnapshot) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PolicySnapshot) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PolicySnapshot) predicate.PolicySnapshot {
	return predicate.PolicySnapshot(sql.NotPredicates(p))
}
