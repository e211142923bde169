// Code generated by ent, DO NOT EDIT.

package hold

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediqo/mediqo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Hold {
	return predicate.Hold(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Hold {
	return predicate.Hold(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Hold {
	return predicate.Hold(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Hold {
	return predicate.Hold(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Hold {
	return predicate.Hold(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Hold {
	return predicate.Hold(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Hold {
	return predicate.Hold(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Hold {
	return predicate.Hold(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Hold {
	return predicate.Hold(sql.FieldContainsFold(FieldID, id))
}

// ClientHoldID applies equality check predicate on the "client_hold_id" field. It's identical to ClientHoldIDEQ.
func ClientHoldID(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldClientHoldID, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldClinicID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldPatientID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldDoctorID, v))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldRoomID, v))
}

// ServiceID applies equality check predicate on the "service_id" field. It's identical to ServiceIDEQ.
func ServiceID(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldServiceID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldEndTime, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldScore, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldCreatedAt, v))
}

// ClientHoldIDEQ applies the EQ predicate on the "client_hold_id" field.
func ClientHoldIDEQ(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldClientHoldID, v))
}

// ClientHoldIDNEQ applies the NEQ predicate on the "client_hold_id" field.
func ClientHoldIDNEQ(v string) predicate.Hold {
	return predicate.Hold(sql.FieldNEQ(FieldClientHoldID, v))
}

// ClientHoldIDIn applies the In predicate on the "client_hold_id" field.
func ClientHoldIDIn(vs ...string) predicate.Hold {
	return predicate.Hold(sql.FieldIn(FieldClientHoldID, vs...))
}

// ClientHoldIDNotIn applies the NotIn predicate on the "client_hold_id" field.
func ClientHoldIDNotIn(vs ...string) predicate.Hold {
	return predicate.Hold(sql.FieldNotIn(FieldClientHoldID, vs...))
}

// ClientHoldIDGT applies the GT predicate on the "client_hold_id" field.
func ClientHoldIDGT(v string) predicate.Hold {
	return predicate.Hold(sql.FieldGT(FieldClientHoldID, v))
}

// ClientHoldIDGTE applies the GTE predicate on the "client_hold_id" field.
func ClientHoldIDGTE(v string) predicate.Hold {
	return predicate.Hold(sql.FieldGTE(FieldClientHoldID, v))
}

// ClientHoldIDLT applies the LT predicate on the "client_hold_id" field.
func ClientHoldIDLT(v string) predicate.Hold {
	return predicate.Hold(sql.FieldLT(FieldClientHoldID, v))
}

// ClientHoldIDLTE applies the LTE predicate on the "client_hold_id" field.
func ClientHoldIDLTE(v string) predicate.Hold {
	return predicate.Hold(sql.FieldLTE(FieldClientHoldID, v))
}

// ClientHoldIDContains applies the Contains predicate on the "client_hold_id" field.
func ClientHoldIDContains(v string) predicate.Hold {
	return predicate.Hold(sql.FieldContains(FieldClientHoldID, v))
}

// ClientHoldIDHasPrefix applies the HasPrefix predicate on the "client_hold_id" field.
func ClientHoldIDHasPrefix(v string) predicate.Hold {
	return predicate.Hold(sql.FieldHasPrefix(FieldClientHoldID, v))
}

// ClientHoldIDHasSuffix applies the HasSuffix predicate on the "client_hold_id" field.
func ClientHoldIDHasSuffix(v string) predicate.Hold {
	return predicate.Hold(sql.FieldHasSuffix(FieldClientHoldID, v))
}

// ClientHoldIDEqualFold applies the EqualFold predicate on the "client_hold_id" field.
func ClientHoldIDEqualFold(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEqualFold(FieldClientHoldID, v))
}

// ClientHoldIDContainsFold applies the ContainsFold predicate on the "client_hold_id" field.
func ClientHoldIDContainsFold(v string) predicate.Hold {
	return predicate.Hold(sql.FieldContainsFold(FieldClientHoldID, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v string) predicate.Hold {
	return predicate.Hold(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...string) predicate.Hold {
	return predicate.Hold(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...string) predicate.Hold {
	return predicate.Hold(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v string) predicate.Hold {
	return predicate.Hold(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v string) predicate.Hold {
	return predicate.Hold(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v string) predicate.Hold {
	return predicate.Hold(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v string) predicate.Hold {
	return predicate.Hold(sql.FieldLTE(FieldClinicID, v))
}

// ClinicIDContains applies the Contains predicate on the "clinic_id" field.
func ClinicIDContains(v string) predicate.Hold {
	return predicate.Hold(sql.FieldContains(FieldClinicID, v))
}

// ClinicIDHasPrefix applies the HasPrefix predicate on the "clinic_id" field.
func ClinicIDHasPrefix(v string) predicate.Hold {
	return predicate.Hold(sql.FieldHasPrefix(FieldClinicID, v))
}

// ClinicIDHasSuffix applies the HasSuffix predicate on the "clinic_id" field.
func ClinicIDHasSuffix(v string) predicate.Hold {
	return predicate.Hold(sql.FieldHasSuffix(FieldClinicID, v))
}

// ClinicIDEqualFold applies the EqualFold predicate on the "clinic_id" field.
func ClinicIDEqualFold(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEqualFold(FieldClinicID, v))
}

// ClinicIDContainsFold applies the ContainsFold predicate on the "clinic_id" field.
func ClinicIDContainsFold(v string) predicate.Hold {
	return predicate.Hold(sql.FieldContainsFold(FieldClinicID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.Hold {
	return predicate.Hold(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.Hold {
	return predicate.Hold(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.Hold {
	return predicate.Hold(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.Hold {
	return predicate.Hold(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.Hold {
	return predicate.Hold(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.Hold {
	return predicate.Hold(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.Hold {
	return predicate.Hold(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.Hold {
	return predicate.Hold(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.Hold {
	return predicate.Hold(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.Hold {
	return predicate.Hold(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.Hold {
	return predicate.Hold(sql.FieldContainsFold(FieldPatientID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v string) predicate.Hold {
	return predicate.Hold(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...string) predicate.Hold {
	return predicate.Hold(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...string) predicate.Hold {
	return predicate.Hold(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v string) predicate.Hold {
	return predicate.Hold(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v string) predicate.Hold {
	return predicate.Hold(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v string) predicate.Hold {
	return predicate.Hold(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v string) predicate.Hold {
	return predicate.Hold(sql.FieldLTE(FieldDoctorID, v))
}

// DoctorIDContains applies the Contains predicate on the "doctor_id" field.
func DoctorIDContains(v string) predicate.Hold {
	return predicate.Hold(sql.FieldContains(FieldDoctorID, v))
}

// DoctorIDHasPrefix applies the HasPrefix predicate on the "doctor_id" field.
func DoctorIDHasPrefix(v string) predicate.Hold {
	return predicate.Hold(sql.FieldHasPrefix(FieldDoctorID, v))
}

// DoctorIDHasSuffix applies the HasSuffix predicate on the "doctor_id" field.
func DoctorIDHasSuffix(v string) predicate.Hold {
	return predicate.Hold(sql.FieldHasSuffix(FieldDoctorID, v))
}

// DoctorIDEqualFold applies the EqualFold predicate on the "doctor_id" field.
func DoctorIDEqualFold(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEqualFold(FieldDoctorID, v))
}

// DoctorIDContainsFold applies the ContainsFold predicate on the "doctor_id" field.
func DoctorIDContainsFold(v string) predicate.Hold {
	return predicate.Hold(sql.FieldContainsFold(FieldDoctorID, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v string) predicate.Hold {
	return predicate.Hold(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...string) predicate.Hold {
	return predicate.Hold(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...string) predicate.Hold {
	return predicate.Hold(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v string) predicate.Hold {
	return predicate.Hold(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v string) predicate.Hold {
	return predicate.Hold(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v string) predicate.Hold {
	return predicate.Hold(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v string) predicate.Hold {
	return predicate.Hold(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDContains applies the Contains predicate on the "room_id" field.
func RoomIDContains(v string) predicate.Hold {
	return predicate.Hold(sql.FieldContains(FieldRoomID, v))
}

// RoomIDHasPrefix applies the HasPrefix predicate on the "room_id" field.
func RoomIDHasPrefix(v string) predicate.Hold {
	return predicate.Hold(sql.FieldHasPrefix(FieldRoomID, v))
}

// RoomIDHasSuffix applies the HasSuffix predicate on the "room_id" field.
func RoomIDHasSuffix(v string) predicate.Hold {
	return predicate.Hold(sql.FieldHasSuffix(FieldRoomID, v))
}

// RoomIDEqualFold applies the EqualFold predicate on the "room_id" field.
func RoomIDEqualFold(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEqualFold(FieldRoomID, v))
}

// RoomIDContainsFold applies the ContainsFold predicate on the "room_id" field.
func RoomIDContainsFold(v string) predicate.Hold {
	return predicate.Hold(sql.FieldContainsFold(FieldRoomID, v))
}

// ServiceIDEQ applies the EQ predicate on the "service_id" field.
func ServiceIDEQ(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldServiceID, v))
}

// ServiceIDNEQ applies the NEQ predicate on the "service_id" field.
func ServiceIDNEQ(v string) predicate.Hold {
	return predicate.Hold(sql.FieldNEQ(FieldServiceID, v))
}

// ServiceIDIn applies the In predicate on the "service_id" field.
func ServiceIDIn(vs ...string) predicate.Hold {
	return predicate.Hold(sql.FieldIn(FieldServiceID, vs...))
}

// ServiceIDNotIn applies the NotIn predicate on the "service_id" field.
func ServiceIDNotIn(vs ...string) predicate.Hold {
	return predicate.Hold(sql.FieldNotIn(FieldServiceID, vs...))
}

// ServiceIDGT applies the GT predicate on the "service_id" field.
func ServiceIDGT(v string) predicate.Hold {
	return predicate.Hold(sql.FieldGT(FieldServiceID, v))
}

// ServiceIDGTE applies the GTE predicate on the "service_id" field.
func ServiceIDGTE(v string) predicate.Hold {
	return predicate.Hold(sql.FieldGTE(FieldServiceID, v))
}

// ServiceIDLT applies the LT predicate on the "service_id" field.
func ServiceIDLT(v string) predicate.Hold {
	return predicate.Hold(sql.FieldLT(FieldServiceID, v))
}

// ServiceIDLTE applies the LTE predicate on the "service_id" field.
func ServiceIDLTE(v string) predicate.Hold {
	return predicate.Hold(sql.FieldLTE(FieldServiceID, v))
}

// ServiceIDContains applies the Contains predicate on the "service_id" field.
func ServiceIDContains(v string) predicate.Hold {
	return predicate.Hold(sql.FieldContains(FieldServiceID, v))
}

// ServiceIDHasPrefix applies the HasPrefix predicate on the "service_id" field.
func ServiceIDHasPrefix(v string) predicate.Hold {
	return predicate.Hold(sql.FieldHasPrefix(FieldServiceID, v))
}

// ServiceIDHasSuffix applies the HasSuffix predicate on the "service_id" field.
func ServiceIDHasSuffix(v string) predicate.Hold {
	return predicate.Hold(sql.FieldHasSuffix(FieldServiceID, v))
}

// ServiceIDEqualFold applies the EqualFold predicate on the "service_id" field.
func ServiceIDEqualFold(v string) predicate.Hold {
	return predicate.Hold(sql.FieldEqualFold(FieldServiceID, v))
}

// ServiceIDContainsFold applies the ContainsFold predicate on the "service_id" field.
func ServiceIDContainsFold(v string) predicate.Hold {
	return predicate.Hold(sql.FieldContainsFold(FieldServiceID, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldLTE(FieldEndTime, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Hold {
	return predicate.Hold(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Hold {
	return predicate.Hold(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Hold {
	return predicate.Hold(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Hold {
	return predicate.Hold(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Hold {
	return predicate.Hold(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Hold {
	return predicate.Hold(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Hold {
	return predicate.Hold(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.Hold {
	return predicate.Hold(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.Hold {
	return predicate.Hold(sql.FieldNotNull(FieldScore))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldLTE(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Hold {
	return predicate.Hold(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Hold) predicate.Hold {
	return predicate.Hold(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Hold) predicate.Hold {
	return predicate.Hold(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Hold) predicate.Hold {
	return predicate.Hold(sql.NotPredicates(p))
}
