package scheduling

import (
	"errors"
	"fmt"
)

// Sentinel errors for the scheduling API. The HTTP layer maps them to
// status codes; the tool executor maps them to LLM-visible results.
var (
	ErrHoldNotFound        = errors.New("hold not found")
	ErrHoldExpired         = errors.New("hold expired")
	ErrSlotNotAvailable    = errors.New("slot no longer available")
	ErrEscalationNotFound  = errors.New("escalation not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// InvalidRequestError reports a malformed scheduling request.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid scheduling request: %s", e.Reason)
}

// PolicyViolationError carries the patient-safe explanations of every
// hard rule that blocked the request.
type PolicyViolationError struct {
	RuleIDs  []string
	Messages []string
}

func (e *PolicyViolationError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("policy violation: %s", e.Messages[0])
	}
	return "policy violation"
}

// NoSlotsError signals that suggestion found nothing bookable and an
// escalation was opened instead.
type NoSlotsError struct {
	EscalationID string
}

func (e *NoSlotsError) Error() string {
	return fmt.Sprintf("no slots available, escalated as %s", e.EscalationID)
}

// EscalatedError signals that an ESCALATE policy rule aborted the
// request.
type EscalatedError struct {
	EscalationID string
	RuleID       string
}

func (e *EscalatedError) Error() string {
	return fmt.Sprintf("request escalated by rule %s as %s", e.RuleID, e.EscalationID)
}
