// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediqo/mediqo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldID, id))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldClinicID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDoctorID, v))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldRoomID, v))
}

// ServiceID applies equality check predicate on the "service_id" field. It's identical to ServiceIDEQ.
func ServiceID(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldServiceID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEndTime, v))
}

// PolicySnapshotID applies equality check predicate on the "policy_snapshot_id" field. It's identical to PolicySnapshotIDEQ.
func PolicySnapshotID(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPolicySnapshotID, v))
}

// PolicyVersion applies equality check predicate on the "policy_version" field. It's identical to PolicyVersionEQ.
func PolicyVersion(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPolicyVersion, v))
}

// PolicyBundleSha256 applies equality check predicate on the "policy_bundle_sha256" field. It's identical to PolicyBundleSha256EQ.
func PolicyBundleSha256(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPolicyBundleSha256, v))
}

// CalendarEventID applies equality check predicate on the "calendar_event_id" field. It's identical to CalendarEventIDEQ.
func CalendarEventID(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCalendarEventID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldClinicID, v))
}

// ClinicIDContains applies the Contains predicate on the "clinic_id" field.
func ClinicIDContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldClinicID, v))
}

// ClinicIDHasPrefix applies the HasPrefix predicate on the "clinic_id" field.
func ClinicIDHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldClinicID, v))
}

// ClinicIDHasSuffix applies the HasSuffix predicate on the "clinic_id" field.
func ClinicIDHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldClinicID, v))
}

// ClinicIDEqualFold applies the EqualFold predicate on the "clinic_id" field.
func ClinicIDEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldClinicID, v))
}

// ClinicIDContainsFold applies the ContainsFold predicate on the "clinic_id" field.
func ClinicIDContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldClinicID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldPatientID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldDoctorID, v))
}

// DoctorIDContains applies the Contains predicate on the "doctor_id" field.
func DoctorIDContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldDoctorID, v))
}

// DoctorIDHasPrefix applies the HasPrefix predicate on the "doctor_id" field.
func DoctorIDHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldDoctorID, v))
}

// DoctorIDHasSuffix applies the HasSuffix predicate on the "doctor_id" field.
func DoctorIDHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldDoctorID, v))
}

// DoctorIDEqualFold applies the EqualFold predicate on the "doctor_id" field.
func DoctorIDEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldDoctorID, v))
}

// DoctorIDContainsFold applies the ContainsFold predicate on the "doctor_id" field.
func DoctorIDContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldDoctorID, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDContains applies the Contains predicate on the "room_id" field.
func RoomIDContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldRoomID, v))
}

// RoomIDHasPrefix applies the HasPrefix predicate on the "room_id" field.
func RoomIDHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldRoomID, v))
}

// RoomIDHasSuffix applies the HasSuffix predicate on the "room_id" field.
func RoomIDHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldRoomID, v))
}

// RoomIDEqualFold applies the EqualFold predicate on the "room_id" field.
func RoomIDEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldRoomID, v))
}

// RoomIDContainsFold applies the ContainsFold predicate on the "room_id" field.
func RoomIDContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldRoomID, v))
}

// ServiceIDEQ applies the EQ predicate on the "service_id" field.
func ServiceIDEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldServiceID, v))
}

// ServiceIDNEQ applies the NEQ predicate on the "service_id" field.
func ServiceIDNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldServiceID, v))
}

// ServiceIDIn applies the In predicate on the "service_id" field.
func ServiceIDIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldServiceID, vs...))
}

// ServiceIDNotIn applies the NotIn predicate on the "service_id" field.
func ServiceIDNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldServiceID, vs...))
}

// ServiceIDGT applies the GT predicate on the "service_id" field.
func ServiceIDGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldServiceID, v))
}

// ServiceIDGTE applies the GTE predicate on the "service_id" field.
func ServiceIDGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldServiceID, v))
}

// ServiceIDLT applies the LT predicate on the "service_id" field.
func ServiceIDLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldServiceID, v))
}

// ServiceIDLTE applies the LTE predicate on the "service_id" field.
func ServiceIDLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldServiceID, v))
}

// ServiceIDContains applies the Contains predicate on the "service_id" field.
func ServiceIDContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldServiceID, v))
}

// ServiceIDHasPrefix applies the HasPrefix predicate on the "service_id" field.
func ServiceIDHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldServiceID, v))
}

// ServiceIDHasSuffix applies the HasSuffix predicate on the "service_id" field.
func ServiceIDHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldServiceID, v))
}

// ServiceIDEqualFold applies the EqualFold predicate on the "service_id" field.
func ServiceIDEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldServiceID, v))
}

// ServiceIDContainsFold applies the ContainsFold predicate on the "service_id" field.
func ServiceIDContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldServiceID, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldEndTime, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStatus, vs...))
}

// PolicySnapshotIDEQ applies the EQ predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPolicySnapshotID, v))
}

// PolicySnapshotIDNEQ applies the NEQ predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPolicySnapshotID, v))
}

// PolicySnapshotIDIn applies the In predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPolicySnapshotID, vs...))
}

// PolicySnapshotIDNotIn applies the NotIn predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPolicySnapshotID, vs...))
}

// PolicySnapshotIDGT applies the GT predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPolicySnapshotID, v))
}

// PolicySnapshotIDGTE applies the GTE predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPolicySnapshotID, v))
}

// PolicySnapshotIDLT applies the LT predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPolicySnapshotID, v))
}

// PolicySnapshotIDLTE applies the LTE predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPolicySnapshotID, v))
}

// PolicySnapshotIDContains applies the Contains predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldPolicySnapshotID, v))
}

// PolicySnapshotIDHasPrefix applies the HasPrefix predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldPolicySnapshotID, v))
}

// PolicySnapshotIDHasSuffix applies the HasSuffix predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldPolicySnapshotID, v))
}

// PolicySnapshotIDIsNil applies the IsNil predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldPolicySnapshotID))
}

// PolicySnapshotIDNotNil applies the NotNil predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldPolicySnapshotID))
}

// PolicySnapshotIDEqualFold applies the EqualFold predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldPolicySnapshotID, v))
}

// PolicySnapshotIDContainsFold applies the ContainsFold predicate on the "policy_snapshot_id" field.
func PolicySnapshotIDContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldPolicySnapshotID, v))
}

// PolicyVersionEQ applies the EQ predicate on the "policy_version" field.
func PolicyVersionEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPolicyVersion, v))
}

// PolicyVersionNEQ applies the NEQ predicate on the "policy_version" field.
func PolicyVersionNEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPolicyVersion, v))
}

// PolicyVersionIn applies the In predicate on the "policy_version" field.
func PolicyVersionIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPolicyVersion, vs...))
}

// PolicyVersionNotIn applies the NotIn predicate on the "policy_version" field.
func PolicyVersionNotIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPolicyVersion, vs...))
}

// PolicyVersionGT applies the GT predicate on the "policy_version" field.
func PolicyVersionGT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPolicyVersion, v))
}

// PolicyVersionGTE applies the GTE predicate on the "policy_version" field.
func PolicyVersionGTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPolicyVersion, v))
}

// PolicyVersionLT applies the LT predicate on the "policy_version" field.
func PolicyVersionLT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPolicyVersion, v))
}

// PolicyVersionLTE applies the LTE predicate on the "policy_version" field.
func PolicyVersionLTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPolicyVersion, v))
}

// PolicyVersionIsNil applies the IsNil predicate on the "policy_version" field.
func PolicyVersionIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldPolicyVersion))
}

// PolicyVersionNotNil applies the NotNil predicate on the "policy_version" field.
func PolicyVersionNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldPolicyVersion))
}

// PolicyBundleSha256EQ applies the EQ predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256EQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPolicyBundleSha256, v))
}

// PolicyBundleSha256NEQ applies the NEQ predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256NEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPolicyBundleSha256, v))
}

// PolicyBundleSha256In applies the In predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256In(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPolicyBundleSha256, vs...))
}

// PolicyBundleSha256NotIn applies the NotIn predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256NotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPolicyBundleSha256, vs...))
}

// PolicyBundleSha256GT applies the GT predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256GT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPolicyBundleSha256, v))
}

// PolicyBundleSha256GTE applies the GTE predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256GTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPolicyBundleSha256, v))
}

// PolicyBundleSha256LT applies the LT predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256LT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPolicyBundleSha256, v))
}

// PolicyBundleSha256LTE applies the LTE predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256LTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPolicyBundleSha256, v))
}

// PolicyBundleSha256Contains applies the Contains predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256Contains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldPolicyBundleSha256, v))
}

// PolicyBundleSha256HasPrefix applies the HasPrefix predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256HasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldPolicyBundleSha256, v))
}

// PolicyBundleSha256HasSuffix applies the HasSuffix predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256HasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldPolicyBundleSha256, v))
}

// PolicyBundleSha256IsNil applies the IsNil predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256IsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldPolicyBundleSha256))
}

// PolicyBundleSha256NotNil applies the NotNil predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256NotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldPolicyBundleSha256))
}

// PolicyBundleSha256EqualFold applies the EqualFold predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256EqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldPolicyBundleSha256, v))
}

// PolicyBundleSha256ContainsFold applies the ContainsFold predicate on the "policy_bundle_sha256" field.
func PolicyBundleSha256ContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldPolicyBundleSha256, v))
}

// CalendarEventIDEQ applies the EQ predicate on the "calendar_event_id" field.
func CalendarEventIDEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCalendarEventID, v))
}

// CalendarEventIDNEQ applies the NEQ predicate on the "calendar_event_id" field.
func CalendarEventIDNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCalendarEventID, v))
}

// CalendarEventIDIn applies the In predicate on the "calendar_event_id" field.
func CalendarEventIDIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCalendarEventID, vs...))
}

// CalendarEventIDNotIn applies the NotIn predicate on the "calendar_event_id" field.
func CalendarEventIDNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCalendarEventID, vs...))
}

// CalendarEventIDGT applies the GT predicate on the "calendar_event_id" field.
func CalendarEventIDGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCalendarEventID, v))
}

// CalendarEventIDGTE applies the GTE predicate on the "calendar_event_id" field.
func CalendarEventIDGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCalendarEventID, v))
}

// CalendarEventIDLT applies the LT predicate on the "calendar_event_id" field.
func CalendarEventIDLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCalendarEventID, v))
}

// CalendarEventIDLTE applies the LTE predicate on the "calendar_event_id" field.
func CalendarEventIDLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCalendarEventID, v))
}

// CalendarEventIDContains applies the Contains predicate on the "calendar_event_id" field.
func CalendarEventIDContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldCalendarEventID, v))
}

// CalendarEventIDHasPrefix applies the HasPrefix predicate on the "calendar_event_id" field.
func CalendarEventIDHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldCalendarEventID, v))
}

// CalendarEventIDHasSuffix applies the HasSuffix predicate on the "calendar_event_id" field.
func CalendarEventIDHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldCalendarEventID, v))
}

// CalendarEventIDIsNil applies the IsNil predicate on the "calendar_event_id" field.
func CalendarEventIDIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCalendarEventID))
}

// CalendarEventIDNotNil applies the NotNil predicate on the "calendar_event_id" field.
func CalendarEventIDNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCalendarEventID))
}

// CalendarEventIDEqualFold applies the EqualFold predicate on the "calendar_event_id" field.
func CalendarEventIDEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldCalendarEventID, v))
}

// CalendarEventIDContainsFold applies the ContainsFold predicate on the "calendar_event_id" field.
func CalendarEventIDContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldCalendarEventID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.NotPredicates(p))
}
