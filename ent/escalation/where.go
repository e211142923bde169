// Code generated by ent, DO NOT EDIT.

package escalation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediqo/mediqo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContainsFold(FieldID, id))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldClinicID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldPatientID, v))
}

// ServiceID applies equality check predicate on the "service_id" field. It's identical to ServiceIDEQ.
func ServiceID(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldServiceID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldReason, v))
}

// SLADeadline applies equality check predicate on the "sla_deadline" field. It's identical to SLADeadlineEQ.
func SLADeadline(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldSLADeadline, v))
}

// AssignedTo applies equality check predicate on the "assigned_to" field. It's identical to AssignedToEQ.
func AssignedTo(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldAssignedTo, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldClinicID, v))
}

// ClinicIDContains applies the Contains predicate on the "clinic_id" field.
func ClinicIDContains(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContains(FieldClinicID, v))
}

// ClinicIDHasPrefix applies the HasPrefix predicate on the "clinic_id" field.
func ClinicIDHasPrefix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasPrefix(FieldClinicID, v))
}

// ClinicIDHasSuffix applies the HasSuffix predicate on the "clinic_id" field.
func ClinicIDHasSuffix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasSuffix(FieldClinicID, v))
}

// ClinicIDEqualFold applies the EqualFold predicate on the "clinic_id" field.
func ClinicIDEqualFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEqualFold(FieldClinicID, v))
}

// ClinicIDContainsFold applies the ContainsFold predicate on the "clinic_id" field.
func ClinicIDContainsFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContainsFold(FieldClinicID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContainsFold(FieldPatientID, v))
}

// ServiceIDEQ applies the EQ predicate on the "service_id" field.
func ServiceIDEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldServiceID, v))
}

// ServiceIDNEQ applies the NEQ predicate on the "service_id" field.
func ServiceIDNEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldServiceID, v))
}

// ServiceIDIn applies the In predicate on the "service_id" field.
func ServiceIDIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldServiceID, vs...))
}

// ServiceIDNotIn applies the NotIn predicate on the "service_id" field.
func ServiceIDNotIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldServiceID, vs...))
}

// ServiceIDGT applies the GT predicate on the "service_id" field.
func ServiceIDGT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldServiceID, v))
}

// ServiceIDGTE applies the GTE predicate on the "service_id" field.
func ServiceIDGTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldServiceID, v))
}

// ServiceIDLT applies the LT predicate on the "service_id" field.
func ServiceIDLT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldServiceID, v))
}

// ServiceIDLTE applies the LTE predicate on the "service_id" field.
func ServiceIDLTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldServiceID, v))
}

// ServiceIDContains applies the Contains predicate on the "service_id" field.
func ServiceIDContains(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContains(FieldServiceID, v))
}

// ServiceIDHasPrefix applies the HasPrefix predicate on the "service_id" field.
func ServiceIDHasPrefix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasPrefix(FieldServiceID, v))
}

// ServiceIDHasSuffix applies the HasSuffix predicate on the "service_id" field.
func ServiceIDHasSuffix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasSuffix(FieldServiceID, v))
}

// ServiceIDIsNil applies the IsNil predicate on the "service_id" field.
func ServiceIDIsNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldIsNull(FieldServiceID))
}

// ServiceIDNotNil applies the NotNil predicate on the "service_id" field.
func ServiceIDNotNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldNotNull(FieldServiceID))
}

// ServiceIDEqualFold applies the EqualFold predicate on the "service_id" field.
func ServiceIDEqualFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEqualFold(FieldServiceID, v))
}

// ServiceIDContainsFold applies the ContainsFold predicate on the "service_id" field.
func ServiceIDContainsFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContainsFold(FieldServiceID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldStatus, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContainsFold(FieldReason, v))
}

// SuggestionsIsNil applies the IsNil predicate on the "suggestions" field.
func SuggestionsIsNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldIsNull(FieldSuggestions))
}

// SuggestionsNotNil applies the NotNil predicate on the "suggestions" field.
func SuggestionsNotNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldNotNull(FieldSuggestions))
}

// SLADeadlineEQ applies the EQ predicate on the "sla_deadline" field.
func SLADeadlineEQ(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldSLADeadline, v))
}

// SLADeadlineNEQ applies the NEQ predicate on the "sla_deadline" field.
func SLADeadlineNEQ(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldSLADeadline, v))
}

// SLADeadlineIn applies the In predicate on the "sla_deadline" field.
func SLADeadlineIn(vs ...time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldSLADeadline, vs...))
}

// SLADeadlineNotIn applies the NotIn predicate on the "sla_deadline" field.
func SLADeadlineNotIn(vs ...time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldSLADeadline, vs...))
}

// SLADeadlineGT applies the GT predicate on the "sla_deadline" field.
func SLADeadlineGT(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldSLADeadline, v))
}

// SLADeadlineGTE applies the GTE predicate on the "sla_deadline" field.
func SLADeadlineGTE(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldSLADeadline, v))
}

// SLADeadlineLT applies the LT predicate on the "sla_deadline" field.
func SLADeadlineLT(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldSLADeadline, v))
}

// SLADeadlineLTE applies the LTE predicate on the "sla_deadline" field.
func SLADeadlineLTE(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldSLADeadline, v))
}

// AssignedToEQ applies the EQ predicate on the "assigned_to" field.
func AssignedToEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldAssignedTo, v))
}

// AssignedToNEQ applies the NEQ predicate on the "assigned_to" field.
func AssignedToNEQ(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldAssignedTo, v))
}

// AssignedToIn applies the In predicate on the "assigned_to" field.
func AssignedToIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldAssignedTo, vs...))
}

// AssignedToNotIn applies the NotIn predicate on the "assigned_to" field.
func AssignedToNotIn(vs ...string) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldAssignedTo, vs...))
}

// AssignedToGT applies the GT predicate on the "assigned_to" field.
func AssignedToGT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldAssignedTo, v))
}

// AssignedToGTE applies the GTE predicate on the "assigned_to" field.
func AssignedToGTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldAssignedTo, v))
}

// AssignedToLT applies the LT predicate on the "assigned_to" field.
func AssignedToLT(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldAssignedTo, v))
}

// AssignedToLTE applies the LTE predicate on the "assigned_to" field.
func AssignedToLTE(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldAssignedTo, v))
}

// AssignedToContains applies the Contains predicate on the "assigned_to" field.
func AssignedToContains(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContains(FieldAssignedTo, v))
}

// AssignedToHasPrefix applies the HasPrefix predicate on the "assigned_to" field.
func AssignedToHasPrefix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasPrefix(FieldAssignedTo, v))
}

// AssignedToHasSuffix applies the HasSuffix predicate on the "assigned_to" field.
func AssignedToHasSuffix(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldHasSuffix(FieldAssignedTo, v))
}

// AssignedToIsNil applies the IsNil predicate on the "assigned_to" field.
func AssignedToIsNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldIsNull(FieldAssignedTo))
}

// AssignedToNotNil applies the NotNil predicate on the "assigned_to" field.
func AssignedToNotNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldNotNull(FieldAssignedTo))
}

// AssignedToEqualFold applies the EqualFold predicate on the "assigned_to" field.
func AssignedToEqualFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldEqualFold(FieldAssignedTo, v))
}

// AssignedToContainsFold applies the ContainsFold predicate on the "assigned_to" field.
func AssignedToContainsFold(v string) predicate.Escalation {
	return predicate.Escalation(sql.FieldContainsFold(FieldAssignedTo, v))
}

// ResolutionIsNil applies the IsNil predicate on the "resolution" field.
func ResolutionIsNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldIsNull(FieldResolution))
}

// ResolutionNotNil applies the NotNil predicate on the "resolution" field.
func ResolutionNotNil() predicate.Escalation {
	return predicate.Escalation(sql.FieldNotNull(FieldResolution))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Escalation {
	return predicate.Escalation(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Escalation) predicate.Escalation {
	return predicate.Escalation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Escalation) predicate.Escalation {
	return predicate.Escalation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Escalation) predicate.Escalation {
	return predicate.Escalation(sql.NotPredicates(p))
}
