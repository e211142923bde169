// Package scheduling implements slot suggestion, hold/confirm and
// escalation handling over the relational store, gated by the
// compiled clinic policy.
package scheduling

import (
	"context"
	"time"

	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/policy"
)

// Hold is a short-lived slot reservation.
type Hold struct {
	ID           string
	ClientHoldID string
	ClinicID     string
	PatientID    string
	DoctorID     string
	RoomID       string
	ServiceID    string
	StartTime    time.Time
	EndTime      time.Time
	Score        float64
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// Expired reports whether the hold is past its deadline.
func (h *Hold) Expired(now time.Time) bool {
	return !now.Before(h.ExpiresAt)
}

// Appointment is a confirmed booking.
type Appointment struct {
	ID               string
	ClinicID         string
	PatientID        string
	DoctorID         string
	RoomID           string
	ServiceID        string
	StartTime        time.Time
	EndTime          time.Time
	Status           string
	PolicySnapshotID string
	PolicyVersion    int
	PolicySHA256     string
	CalendarEventID  string
}

// Escalation statuses.
const (
	EscalationOpen     = "open"
	EscalationAssigned = "assigned"
	EscalationResolved = "resolved"
	EscalationDeclined = "declined"
)

// Escalation is a human-fallback record.
type Escalation struct {
	ID          string
	ClinicID    string
	PatientID   string
	ServiceID   string
	Status      string
	Reason      string
	Request     map[string]any
	Suggestions []models.RelaxationSuggestion
	SLADeadline time.Time
	AssignedTo  string
	Resolution  map[string]any
	CreatedAt   time.Time
}

// HoldRepo persists holds. ByID and ByClientID return ErrHoldNotFound
// for absent rows; Delete reports whether a row was actually removed,
// which serializes racing confirms.
type HoldRepo interface {
	Create(ctx context.Context, h *Hold) error
	ByID(ctx context.Context, id string) (*Hold, error)
	ByClientID(ctx context.Context, clientHoldID string) (*Hold, error)
	Delete(ctx context.Context, id string) (bool, error)
	// ActiveOverlap reports whether a non-expired hold occupies the
	// room in [start, end).
	ActiveOverlap(ctx context.Context, roomID string, start, end, now time.Time) (bool, error)
}

// AppointmentRepo persists appointments. Insert maps the database's
// room/time-range exclusion violation to ErrSlotNotAvailable.
type AppointmentRepo interface {
	Insert(ctx context.Context, a *Appointment) error
	// ByID returns ErrAppointmentNotFound for absent rows.
	ByID(ctx context.Context, id string) (*Appointment, error)
	// Cancel marks the appointment cancelled, freeing its room.
	Cancel(ctx context.Context, id string) error
	// Overlap reports whether a non-cancelled appointment occupies the
	// room in [start, end).
	Overlap(ctx context.Context, roomID string, start, end time.Time) (bool, error)
	// ListBetween returns the clinic's non-cancelled appointments
	// starting in [from, to), for scoring.
	ListBetween(ctx context.Context, clinicID string, from, to time.Time) ([]*Appointment, error)
	SetCalendarEvent(ctx context.Context, id, eventID string) error
}

// EscalationRepo persists escalations. ByID returns
// ErrEscalationNotFound for absent rows.
type EscalationRepo interface {
	Create(ctx context.Context, e *Escalation) error
	ByID(ctx context.Context, id string) (*Escalation, error)
	// RecentOpen returns an open escalation for (patient, service)
	// created at or after since, or nil when none exists.
	RecentOpen(ctx context.Context, patientID, serviceID string, since time.Time) (*Escalation, error)
	Update(ctx context.Context, e *Escalation) error
	ListByStatus(ctx context.Context, clinicID, status string) ([]*Escalation, error)
}

// ActivePolicy pairs a compiled policy with its snapshot identity, so
// confirms can stamp appointments.
type ActivePolicy struct {
	SnapshotID string
	Version    int
	Compiled   *policy.CompiledPolicy
}

// PolicySource yields the clinic's active policy; (nil, nil) means the
// clinic has none.
type PolicySource interface {
	Active(ctx context.Context, clinicID string) (*ActivePolicy, error)
}

// ClinicSource loads clinic profiles. Satisfied by clinic.Cache.
type ClinicSource interface {
	Get(ctx context.Context, clinicID string) (models.ClinicProfile, error)
}

// CalendarSync pushes a confirmed appointment to an external calendar
// and returns the created event id.
type CalendarSync interface {
	CreateEvent(ctx context.Context, a *Appointment) (string, error)
}
