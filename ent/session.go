// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediqo/mediqo/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Normalized patient phone (no transport suffix)
	Phone string `json:"phone,omitempty"`
	// ClinicID holds the value of the "clinic_id" field.
	ClinicID string `json:"clinic_id,omitempty"`
	// Status holds the value of the "status" field.
	Status session.Status `json:"status,omitempty"`
	// Detected patient language (BCP-47 primary subtag)
	Language string `json:"language,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// LastActivityAt holds the value of the "last_activity_at" field.
	LastActivityAt time.Time `json:"last_activity_at,omitempty"`
	// Session this one replaced at a boundary
	PrevSessionID *string `json:"prev_session_id,omitempty"`
	// How this session was opened
	ResetKind session.ResetKind `json:"reset_kind,omitempty"`
	// Compressed record of the archived conversation
	Summary *string `json:"summary,omitempty"`
	// SummaryStatus holds the value of the "summary_status" field.
	SummaryStatus session.SummaryStatus `json:"summary_status,omitempty"`
	// Per-episode conversation state (episode_type, desired_service, time_window)
	Episode map[string]interface{} `json:"episode,omitempty"`
	// Fast-path continuation hint, e.g. offer_booking
	PendingAction string `json:"pending_action,omitempty"`
	// LastServiceMentioned holds the value of the "last_service_mentioned" field.
	LastServiceMentioned string `json:"last_service_mentioned,omitempty"`
	// ClosedAt holds the value of the "closed_at" field.
	ClosedAt *time.Time `json:"closed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// Turns holds the value of the turns edge.
	Turns []*ConversationTurn `json:"turns,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TurnsOrErr returns the Turns value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) TurnsOrErr() ([]*ConversationTurn, error) {
	if e.loadedTypes[0] {
		return e.Turns, nil
	}
	return nil, &NotLoadedError{edge: "turns"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldEpisode:
			values[i] = new([]byte)
		case session.FieldID, session.FieldPhone, session.FieldClinicID, session.FieldStatus, session.FieldLanguage, session.FieldPrevSessionID, session.FieldResetKind, session.FieldSummary, session.FieldSummaryStatus, session.FieldPendingAction, session.FieldLastServiceMentioned:
			values[i] = new(sql.NullString)
		case session.FieldStartedAt, session.FieldLastActivityAt, session.FieldClosedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case session.FieldClinicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value.Valid {
				_m.ClinicID = value.String
			}
		case session.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = session.Status(value.String)
			}
		case session.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case session.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case session.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = value.Time
			}
		case session.FieldPrevSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prev_session_id", values[i])
			} else if value.Valid {
				_m.PrevSessionID = new(string)
				*_m.PrevSessionID = value.String
			}
		case session.FieldResetKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reset_kind", values[i])
			} else if value.Valid {
				_m.ResetKind = session.ResetKind(value.String)
			}
		case session.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case session.FieldSummaryStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_status", values[i])
			} else if value.Valid {
				_m.SummaryStatus = session.SummaryStatus(value.String)
			}
		case session.FieldEpisode:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field episode", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Episode); err != nil {
					return fmt.Errorf("unmarshal field episode: %w", err)
				}
			}
		case session.FieldPendingAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pending_action", values[i])
			} else if value.Valid {
				_m.PendingAction = value.String
			}
		case session.FieldLastServiceMentioned:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_service_mentioned", values[i])
			} else if value.Valid {
				_m.LastServiceMentioned = value.String
			}
		case session.FieldClosedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closed_at", values[i])
			} else if value.Valid {
				_m.ClosedAt = new(time.Time)
				*_m.ClosedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTurns queries the "turns" edge of the Session entity.
func (_m *Session) QueryTurns() *ConversationTurnQuery {
	return NewSessionClient(_m.config).QueryTurns(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(_m.ClinicID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_activity_at=")
	builder.WriteString(_m.LastActivityAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.PrevSessionID; v != nil {
		builder.WriteString("prev_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("reset_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResetKind))
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("summary_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.SummaryStatus))
	builder.WriteString(", ")
	builder.WriteString("episode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Episode))
	builder.WriteString(", ")
	builder.WriteString("pending_action=")
	builder.WriteString(_m.PendingAction)
	builder.WriteString(", ")
	builder.WriteString("last_service_mentioned=")
	builder.WriteString(_m.LastServiceMentioned)
	builder.WriteString(", ")
	if v := _m.ClosedAt; v != nil {
		builder.WriteString("closed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
