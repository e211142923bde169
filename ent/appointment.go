// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediqo/mediqo/ent/appointment"
)

// Appointment is the model entity for the Appointment schema.
type Appointment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ClinicID holds the value of the "clinic_id" field.
	ClinicID string `json:"clinic_id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID string `json:"patient_id,omitempty"`
	// DoctorID holds the value of the "doctor_id" field.
	DoctorID string `json:"doctor_id,omitempty"`
	// RoomID holds the value of the "room_id" field.
	RoomID string `json:"room_id,omitempty"`
	// ServiceID holds the value of the "service_id" field.
	ServiceID string `json:"service_id,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime time.Time `json:"end_time,omitempty"`
	// Status holds the value of the "status" field.
	Status appointment.Status `json:"status,omitempty"`
	// PolicySnapshotID holds the value of the "policy_snapshot_id" field.
	PolicySnapshotID string `json:"policy_snapshot_id,omitempty"`
	// PolicyVersion holds the value of the "policy_version" field.
	PolicyVersion int `json:"policy_version,omitempty"`
	// PolicyBundleSha256 holds the value of the "policy_bundle_sha256" field.
	PolicyBundleSha256 string `json:"policy_bundle_sha256,omitempty"`
	// External calendar sync result; empty until sync succeeds
	CalendarEventID *string `json:"calendar_event_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Appointment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointment.FieldPolicyVersion:
			values[i] = new(sql.NullInt64)
		case appointment.FieldID, appointment.FieldClinicID, appointment.FieldPatientID, appointment.FieldDoctorID, appointment.FieldRoomID, appointment.FieldServiceID, appointment.FieldStatus, appointment.FieldPolicySnapshotID, appointment.FieldPolicyBundleSha256, appointment.FieldCalendarEventID:
			values[i] = new(sql.NullString)
		case appointment.FieldStartTime, appointment.FieldEndTime, appointment.FieldCreatedAt, appointment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Appointment fields.
func (_m *Appointment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case appointment.FieldClinicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value.Valid {
				_m.ClinicID = value.String
			}
		case appointment.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case appointment.FieldDoctorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value.Valid {
				_m.DoctorID = value.String
			}
		case appointment.FieldRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				_m.RoomID = value.String
			}
		case appointment.FieldServiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_id", values[i])
			} else if value.Valid {
				_m.ServiceID = value.String
			}
		case appointment.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case appointment.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case appointment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = appointment.Status(value.String)
			}
		case appointment.FieldPolicySnapshotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_snapshot_id", values[i])
			} else if value.Valid {
				_m.PolicySnapshotID = value.String
			}
		case appointment.FieldPolicyVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field policy_version", values[i])
			} else if value.Valid {
				_m.PolicyVersion = int(value.Int64)
			}
		case appointment.FieldPolicyBundleSha256:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_bundle_sha256", values[i])
			} else if value.Valid {
				_m.PolicyBundleSha256 = value.String
			}
		case appointment.FieldCalendarEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_event_id", values[i])
			} else if value.Valid {
				_m.CalendarEventID = new(string)
				*_m.CalendarEventID = value.String
			}
		case appointment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appointment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Appointment.
// This includes values selected through modifiers, order, etc.
func (_m *Appointment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Appointment.
// Note that you need to call Appointment.Unwrap() before calling this method if this Appointment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Appointment) Update() *AppointmentUpdateOne {
	return NewAppointmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Appointment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Appointment) Unwrap() *Appointment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Appointment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Appointment) String() string {
	var builder strings.Builder
	builder.WriteString("Appointment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("clinic_id=")
	builder.WriteString(_m.ClinicID)
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(_m.DoctorID)
	builder.WriteString(", ")
	builder.WriteString("room_id=")
	builder.WriteString(_m.RoomID)
	builder.WriteString(", ")
	builder.WriteString("service_id=")
	builder.WriteString(_m.ServiceID)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("policy_snapshot_id=")
	builder.WriteString(_m.PolicySnapshotID)
	builder.WriteString(", ")
	builder.WriteString("policy_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.PolicyVersion))
	builder.WriteString(", ")
	builder.WriteString("policy_bundle_sha256=")
	builder.WriteString(_m.PolicyBundleSha256)
	builder.WriteString(", ")
	if v := _m.CalendarEventID; v != nil {
		builder.WriteString("calendar_event_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Appointments is a parsable slice of Appointment.
type Appointments []*Appointment
