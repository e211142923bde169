// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediqo/mediqo/ent/conversationturn"
	"github.com/mediqo/mediqo/ent/session"
)

// ConversationTurn is the model entity for the ConversationTurn schema.
type ConversationTurn struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ClinicID holds the value of the "clinic_id" field.
	ClinicID string `json:"clinic_id,omitempty"`
	// Session-scoped order
	SequenceNumber int `json:"sequence_number,omitempty"`
	// UserMessage holds the value of the "user_message" field.
	UserMessage string `json:"user_message,omitempty"`
	// AssistantMessage holds the value of the "assistant_message" field.
	AssistantMessage string `json:"assistant_message,omitempty"`
	// Router lane: faq, price, service_info, scheduling, complex
	Lane string `json:"lane,omitempty"`
	// FastPath holds the value of the "fast_path" field.
	FastPath bool `json:"fast_path,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int `json:"latency_ms,omitempty"`
	// Audit: name, normalized arguments, ok/failed
	ToolsCalled []map[string]interface{} `json:"tools_called,omitempty"`
	// State gate refused at least one call this turn
	HallucinationBlocked bool `json:"hallucination_blocked,omitempty"`
	// Final text mentioned times/prices without a backing tool call
	ResponseFlagged bool `json:"response_flagged,omitempty"`
	// Constraint changes extracted this turn (for the state echo)
	ConstraintsDelta map[string]interface{} `json:"constraints_delta,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversationTurnQuery when eager-loading is set.
	Edges        ConversationTurnEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConversationTurnEdges holds the relations/edges for other nodes in the graph.
type ConversationTurnEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConversationTurnEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConversationTurn) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversationturn.FieldToolsCalled, conversationturn.FieldConstraintsDelta:
			values[i] = new([]byte)
		case conversationturn.FieldFastPath, conversationturn.FieldHallucinationBlocked, conversationturn.FieldResponseFlagged:
			values[i] = new(sql.NullBool)
		case conversationturn.FieldSequenceNumber, conversationturn.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case conversationturn.FieldID, conversationturn.FieldSessionID, conversationturn.FieldClinicID, conversationturn.FieldUserMessage, conversationturn.FieldAssistantMessage, conversationturn.FieldLane:
			values[i] = new(sql.NullString)
		case conversationturn.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConversationTurn fields.
func (_m *ConversationTurn) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversationturn.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conversationturn.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case conversationturn.FieldClinicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value.Valid {
				_m.ClinicID = value.String
			}
		case conversationturn.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = int(value.Int64)
			}
		case conversationturn.FieldUserMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_message", values[i])
			} else if value.Valid {
				_m.UserMessage = value.String
			}
		case conversationturn.FieldAssistantMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assistant_message", values[i])
			} else if value.Valid {
				_m.AssistantMessage = value.String
			}
		case conversationturn.FieldLane:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lane", values[i])
			} else if value.Valid {
				_m.Lane = value.String
			}
		case conversationturn.FieldFastPath:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fast_path", values[i])
			} else if value.Valid {
				_m.FastPath = value.Bool
			}
		case conversationturn.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = int(value.Int64)
			}
		case conversationturn.FieldToolsCalled:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tools_called", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolsCalled); err != nil {
					return fmt.Errorf("unmarshal field tools_called: %w", err)
				}
			}
		case conversationturn.FieldHallucinationBlocked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hallucination_blocked", values[i])
			} else if value.Valid {
				_m.HallucinationBlocked = value.Bool
			}
		case conversationturn.FieldResponseFlagged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field response_flagged", values[i])
			} else if value.Valid {
				_m.ResponseFlagged = value.Bool
			}
		case conversationturn.FieldConstraintsDelta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field constraints_delta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConstraintsDelta); err != nil {
					return fmt.Errorf("unmarshal field constraints_delta: %w", err)
				}
			}
		case conversationturn.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ConversationTurn.
// This includes values selected through modifiers, order, etc.
func (_m *ConversationTurn) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ConversationTurn entity.
func (_m *ConversationTurn) QuerySession() *SessionQuery {
	return NewConversationTurnClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this ConversationTurn.
// Note that you need to call ConversationTurn.Unwrap() before calling this method if this ConversationTurn
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConversationTurn) Update() *ConversationTurnUpdateOne {
	return NewConversationTurnClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConversationTurn entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConversationTurn) Unwrap() *ConversationTurn {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConversationTurn is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConversationTurn) String() string {
	var builder strings.Builder
	builder.WriteString("ConversationTurn(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(_m.ClinicID)
	builder.WriteString(", ")
	builder.WriteString("sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNumber))
	builder.WriteString(", ")
	builder.WriteString("user_message=")
	builder.WriteString(_m.UserMessage)
	builder.WriteString(", ")
	builder.WriteString("assistant_message=")
	builder.WriteString(_m.AssistantMessage)
	builder.WriteString(", ")
	builder.WriteString("lane=")
	builder.WriteString(_m.Lane)
	builder.WriteString(", ")
	builder.WriteString("fast_path=")
	builder.WriteString(fmt.Sprintf("%v", _m.FastPath))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("tools_called=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolsCalled))
	builder.WriteString(", ")
	builder.WriteString("hallucination_blocked=")
	builder.WriteString(fmt.Sprintf("%v", _m.HallucinationBlocked))
	builder.WriteString(", ")
	builder.WriteString("response_flagged=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseFlagged))
	builder.WriteString(", ")
	builder.WriteString("constraints_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConstraintsDelta))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConversationTurns is a parsable slice of ConversationTurn.
type ConversationTurns []*ConversationTurn
