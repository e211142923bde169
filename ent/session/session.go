// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldPrevSessionID holds the string denoting the prev_session_id field in the database.
	FieldPrevSessionID = "prev_session_id"
	// FieldResetKind holds the string denoting the reset_kind field in the database.
	FieldResetKind = "reset_kind"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldSummaryStatus holds the string denoting the summary_status field in the database.
	FieldSummaryStatus = "summary_status"
	// FieldEpisode holds the string denoting the episode field in the database.
	FieldEpisode = "episode"
	// FieldPendingAction holds the string denoting the pending_action field in the database.
	FieldPendingAction = "pending_action"
	// FieldLastServiceMentioned holds the string denoting the last_service_mentioned field in the database.
	FieldLastServiceMentioned = "last_service_mentioned"
	// FieldClosedAt holds the string denoting the closed_at field in the database.
	FieldClosedAt = "closed_at"
	// EdgeTurns holds the string denoting the turns edge name in mutations.
	EdgeTurns = "turns"
	// ConversationTurnFieldID holds the string denoting the ID field of the ConversationTurn.
	ConversationTurnFieldID = "turn_id"
	// Table holds the table name of the session in the database.
	Table = "sessions"
	// TurnsTable is the table that holds the turns relation/edge.
	TurnsTable = "conversation_turns"
	// TurnsInverseTable is the table name for the ConversationTurn entity.
	// It exists in this package in order to avoid circular dependency with the "conversationturn" package.
	TurnsInverseTable = "conversation_turns"
	// TurnsColumn is the table column denoting the turns relation/edge.
	TurnsColumn = "session_id"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldPhone,
	FieldClinicID,
	FieldStatus,
	FieldLanguage,
	FieldStartedAt,
	FieldLastActivityAt,
	FieldPrevSessionID,
	FieldResetKind,
	FieldSummary,
	FieldSummaryStatus,
	FieldEpisode,
	FieldPendingAction,
	FieldLastServiceMentioned,
	FieldClosedAt,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultLastActivityAt holds the default value on creation for the "last_activity_at" field.
	DefaultLastActivityAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive  Status = "active"
	StatusDormant Status = "dormant"
	StatusClosed  Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusDormant, StatusClosed:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for status field: %q", s)
	}
}

// ResetKind defines the type for the "reset_kind" enum field.
type ResetKind string

// ResetKindNone is the default value of the ResetKind enum.
const DefaultResetKind = ResetKindNone

// ResetKind values.
const (
	ResetKindNone ResetKind = "none"
	ResetKindSoft ResetKind = "soft"
	ResetKindHard ResetKind = "hard"
)

func (rk ResetKind) String() string {
	return string(rk)
}

// ResetKindValidator is a validator for the "reset_kind" field enum values. It is called by the builders before save.
func ResetKindValidator(rk ResetKind) error {
	switch rk {
	case ResetKindNone, ResetKindSoft, ResetKindHard:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for reset_kind field: %q", rk)
	}
}

// SummaryStatus defines the type for the "summary_status" enum field.
type SummaryStatus string

// SummaryStatusPending is the default value of the SummaryStatus enum.
const DefaultSummaryStatus = SummaryStatusPending

// SummaryStatus values.
const (
	SummaryStatusPending SummaryStatus = "pending"
	SummaryStatusReady   SummaryStatus = "ready"
	SummaryStatusFailed  SummaryStatus = "failed"
)

func (ss SummaryStatus) String() string {
	return string(ss)
}

// SummaryStatusValidator is a validator for the "summary_status" field enum values. It is called by the builders before save.
func SummaryStatusValidator(ss SummaryStatus) error {
	switch ss {
	case SummaryStatusPending, SummaryStatusReady, SummaryStatusFailed:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for summary_status field: %q", ss)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByPrevSessionID orders the results by the prev_session_id field.
func ByPrevSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevSessionID, opts...).ToFunc()
}

// ByResetKind orders the results by the reset_kind field.
func ByResetKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResetKind, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// BySummaryStatus orders the results by the summary_status field.
func BySummaryStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryStatus, opts...).ToFunc()
}

// ByPendingAction orders the results by the pending_action field.
func ByPendingAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingAction, opts...).ToFunc()
}

// ByLastServiceMentioned orders the results by the last_service_mentioned field.
func ByLastServiceMentioned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastServiceMentioned, opts...).ToFunc()
}

// ByClosedAt orders the results by the closed_at field.
func ByClosedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosedAt, opts...).ToFunc()
}

// ByTurnsCount orders the results by turns count.
func ByTurnsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTurnsStep(), opts...)
	}
}

// ByTurns orders the results by turns terms.
func ByTurns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTurnsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTurnsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TurnsInverseTable, ConversationTurnFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TurnsTable, TurnsColumn),
	)
}
