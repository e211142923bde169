// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediqo/mediqo/ent/escalation"
)

// Escalation is the model entity for the Escalation schema.
type Escalation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ClinicID holds the value of the "clinic_id" field.
	ClinicID string `json:"clinic_id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID string `json:"patient_id,omitempty"`
	// ServiceID holds the value of the "service_id" field.
	ServiceID string `json:"service_id,omitempty"`
	// Status holds the value of the "status" field.
	Status escalation.Status `json:"status,omitempty"`
	// no_slots_available or escalate_rule:<rule_id>
	Reason string `json:"reason,omitempty"`
	// The original scheduling request payload
	Request map[string]interface{} `json:"request,omitempty"`
	// Auto-generated relaxation suggestions, ordered
	Suggestions []map[string]interface{} `json:"suggestions,omitempty"`
	// SLADeadline holds the value of the "sla_deadline" field.
	SLADeadline time.Time `json:"sla_deadline,omitempty"`
	// AssignedTo holds the value of the "assigned_to" field.
	AssignedTo *string `json:"assigned_to,omitempty"`
	// Chosen suggestion index or manual slot, decline reason
	Resolution map[string]interface{} `json:"resolution,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Escalation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case escalation.FieldRequest, escalation.FieldSuggestions, escalation.FieldResolution:
			values[i] = new([]byte)
		case escalation.FieldID, escalation.FieldClinicID, escalation.FieldPatientID, escalation.FieldServiceID, escalation.FieldStatus, escalation.FieldReason, escalation.FieldAssignedTo:
			values[i] = new(sql.NullString)
		case escalation.FieldSLADeadline, escalation.FieldCreatedAt, escalation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Escalation fields.
func (_m *Escalation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case escalation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case escalation.FieldClinicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value.Valid {
				_m.ClinicID = value.String
			}
		case escalation.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case escalation.FieldServiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_id", values[i])
			} else if value.Valid {
				_m.ServiceID = value.String
			}
		case escalation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = escalation.Status(value.String)
			}
		case escalation.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case escalation.FieldRequest:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Request); err != nil {
					return fmt.Errorf("unmarshal field request: %w", err)
				}
			}
		case escalation.FieldSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Suggestions); err != nil {
					return fmt.Errorf("unmarshal field suggestions: %w", err)
				}
			}
		case escalation.FieldSLADeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sla_deadline", values[i])
			} else if value.Valid {
				_m.SLADeadline = value.Time
			}
		case escalation.FieldAssignedTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to", values[i])
			} else if value.Valid {
				_m.AssignedTo = new(string)
				*_m.AssignedTo = value.String
			}
		case escalation.FieldResolution:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Resolution); err != nil {
					return fmt.Errorf("unmarshal field resolution: %w", err)
				}
			}
		case escalation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case escalation.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Escalation.
// This includes values selected through modifiers, order, etc.
func (_m *Escalation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Escalation.
// Note that you need to call Escalation.Unwrap() before calling this method if this Escalation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Escalation) Update() *EscalationUpdateOne {
	return NewEscalationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Escalation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Escalation) Unwrap() *Escalation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Escalation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Escalation) String() string {
	var builder strings.Builder
	builder.WriteString("Escalation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("clinic_id=")
	builder.WriteString(_m.ClinicID)
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	builder.WriteString("service_id=")
	builder.WriteString(_m.ServiceID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("request=")
	builder.WriteString(fmt.Sprintf("%v", _m.Request))
	builder.WriteString(", ")
	builder.WriteString("suggestions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Suggestions))
	builder.WriteString(", ")
	builder.WriteString("sla_deadline=")
	builder.WriteString(_m.SLADeadline.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AssignedTo; v != nil {
		builder.WriteString("assigned_to=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("resolution=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolution))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Escalations is a parsable slice of Escalation.
type Escalations []*Escalation
