// Code generated by ent, DO NOT EDIT.

package conversationturn

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conversationturn type in the database.
	Label = "conversation_turn"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "turn_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldSequenceNumber holds the string denoting the sequence_number field in the database.
	FieldSequenceNumber = "sequence_number"
	// FieldUserMessage holds the string denoting the user_message field in the database.
	FieldUserMessage = "user_message"
	// FieldAssistantMessage holds the string denoting the assistant_message field in the database.
	FieldAssistantMessage = "assistant_message"
	// FieldLane holds the string denoting the lane field in the database.
	FieldLane = "lane"
	// FieldFastPath holds the string denoting the fast_path field in the database.
	FieldFastPath = "fast_path"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldToolsCalled holds the string denoting the tools_called field in the database.
	FieldToolsCalled = "tools_called"
	// FieldHallucinationBlocked holds the string denoting the hallucination_blocked field in the database.
	FieldHallucinationBlocked = "hallucination_blocked"
	// FieldResponseFlagged holds the string denoting the response_flagged field in the database.
	FieldResponseFlagged = "response_flagged"
	// FieldConstraintsDelta holds the string denoting the constraints_delta field in the database.
	FieldConstraintsDelta = "constraints_delta"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the conversationturn in the database.
	Table = "conversation_turns"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "conversation_turns"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for conversationturn fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldClinicID,
	FieldSequenceNumber,
	FieldUserMessage,
	FieldAssistantMessage,
	FieldLane,
	FieldFastPath,
	FieldLatencyMs,
	FieldToolsCalled,
	FieldHallucinationBlocked,
	FieldResponseFlagged,
	FieldConstraintsDelta,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultFastPath holds the default value on creation for the "fast_path" field.
	DefaultFastPath bool
	// DefaultHallucinationBlocked holds the default value on creation for the "hallucination_blocked" field.
	DefaultHallucinationBlocked bool
	// DefaultResponseFlagged holds the default value on creation for the "response_flagged" field.
	DefaultResponseFlagged bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ConversationTurn queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// BySequenceNumber orders the results by the sequence_number field.
func BySequenceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceNumber, opts...).ToFunc()
}

// ByUserMessage orders the results by the user_message field.
func ByUserMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserMessage, opts...).ToFunc()
}

// ByAssistantMessage orders the results by the assistant_message field.
func ByAssistantMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssistantMessage, opts...).ToFunc()
}

// ByLane orders the results by the lane field.
func ByLane(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLane, opts...).ToFunc()
}

// ByFastPath orders the results by the fast_path field.
func ByFastPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFastPath, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByHallucinationBlocked orders the results by the hallucination_blocked field.
func ByHallucinationBlocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHallucinationBlocked, opts...).ToFunc()
}

// ByResponseFlagged orders the results by the response_flagged field.
func ByResponseFlagged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseFlagged, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
