// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediqo/mediqo/ent/hold"
)

// Hold is the model entity for the Hold schema.
type Hold struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ClientHoldID holds the value of the "client_hold_id" field.
	ClientHoldID string `json:"client_hold_id,omitempty"`
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
	// Suggestion score at hold time, for escalation context
	Score float64 `json:"score,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Hold) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hold.FieldScore:
			values[i] = new(sql.NullFloat64)
		case hold.FieldID, hold.FieldClientHoldID, hold.FieldClinicID, hold.FieldPatientID, hold.FieldDoctorID, hold.FieldRoomID, hold.FieldServiceID:
			values[i] = new(sql.NullString)
		case hold.FieldStartTime, hold.FieldEndTime, hold.FieldExpiresAt, hold.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Hold fields.
func (_m *Hold) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hold.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case hold.FieldClientHoldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_hold_id", values[i])
			} else if value.Valid {
				_m.ClientHoldID = value.String
			}
		case hold.FieldClinicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value.Valid {
				_m.ClinicID = value.String
			}
		case hold.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case hold.FieldDoctorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value.Valid {
				_m.DoctorID = value.String
			}
		case hold.FieldRoomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field room_id", values[i])
			} else if value.Valid {
				_m.RoomID = value.String
			}
		case hold.FieldServiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_id", values[i])
			} else if value.Valid {
				_m.ServiceID = value.String
			}
		case hold.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case hold.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case hold.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case hold.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case hold.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Hold.
// This includes values selected through modifiers, order, etc.
func (_m *Hold) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Hold.
// Note that you need to call Hold.Unwrap() before calling this method if this Hold
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Hold) Update() *HoldUpdateOne {
	return NewHoldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Hold entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Hold) Unwrap() *Hold {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Hold is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Hold) String() string {
	var builder strings.Builder
	builder.WriteString("Hold(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("client_hold_id=")
	builder.WriteString(_m.ClientHoldID)
	builder.WriteString(", ")
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
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Holds is a parsable slice of Hold.
type Holds []*Hold
