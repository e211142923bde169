// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Clinic is the predicate function for clinic builders.
type Clinic func(*sql.Selector)

// ConversationTurn is the predicate function for conversationturn builders.
type ConversationTurn func(*sql.Selector)

// Escalation is the predicate function for escalation builders.
type Escalation func(*sql.Selector)

// Hold is the predicate function for hold builders.
type Hold func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// PolicySnapshot is the predicate function for policysnapshot builders.
type PolicySnapshot func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
