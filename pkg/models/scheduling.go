package models

import "time"

// Slot is one candidate appointment produced by the scheduling engine.
// Score is 0-100 after weighting plus any ADJUST_SCORE deltas;
// Explanations carries WARN rule output and scoring notes.
type Slot struct {
	DoctorID     string    `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name,omitempty"`
	RoomID       string    `json:"room_id"`
	ServiceID    string    `json:"service_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Score        float64   `json:"score"`
	Explanations []string  `json:"explanations,omitempty"`
}

// HardConstraints narrows slot enumeration before scoring.
type HardConstraints struct {
	DoctorID        string   `json:"doctor_id,omitempty"`
	ExcludedDoctors []string `json:"excluded_doctors,omitempty"`
	// EarliestHour/LatestHour bound the time of day (clinic timezone).
	// Zero values mean unbounded.
	EarliestHour int `json:"earliest_hour,omitempty"`
	LatestHour   int `json:"latest_hour,omitempty"`
}

// PatientPreferences feeds the soft score.
type PatientPreferences struct {
	PreferredDoctorID string `json:"preferred_doctor_id,omitempty"`
	// PreferredTimeOfDay is "morning", "afternoon" or "evening".
	PreferredTimeOfDay string `json:"preferred_time_of_day,omitempty"`
}

// SuggestSlotsInput is the suggest_slots contract.
type SuggestSlotsInput struct {
	ClinicID    string             `json:"clinic_id"`
	PatientID   string             `json:"patient_id"`
	ServiceID   string             `json:"service_id"`
	DateFrom    time.Time          `json:"date_from"`
	DateTo      time.Time          `json:"date_to"`
	Constraints HardConstraints    `json:"constraints"`
	Preferences PatientPreferences `json:"preferences"`
}

// SuggestSlotsResult carries up to 10 scored candidates.
type SuggestSlotsResult struct {
	Slots []Slot `json:"slots"`
}

// HoldSlotInput creates a temporary reservation for a suggested slot.
type HoldSlotInput struct {
	ClinicID     string  `json:"clinic_id"`
	PatientID    string  `json:"patient_id"`
	ServiceID    string  `json:"service_id"`
	ClientHoldID string  `json:"client_hold_id"`
	Slot         Slot    `json:"slot"`
}

// HoldSlotResult reports the reservation and its deadline.
type HoldSlotResult struct {
	HoldID    string    `json:"hold_id"`
	ExpiresAt time.Time `json:"expires_at"`
	// Reused is true when the client_hold_id matched an existing
	// non-expired hold (idempotency hit).
	Reused bool `json:"reused"`
}

// ConfirmHoldInput converts a hold into an appointment.
type ConfirmHoldInput struct {
	HoldID    string            `json:"hold_id"`
	PatientID string            `json:"patient_id"`
	ServiceID string            `json:"service_id"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// ConfirmHoldResult reports the created appointment.
type ConfirmHoldResult struct {
	AppointmentID  string   `json:"appointment_id"`
	CalendarSynced bool     `json:"calendar_synced"`
	CalendarEvents []string `json:"calendar_event_ids,omitempty"`
	PolicyVersion  int      `json:"policy_version,omitempty"`
	PolicySHA256   string   `json:"policy_bundle_sha256,omitempty"`
}

// RelaxationStrategy names one auto-generated escalation suggestion.
type RelaxationStrategy string

const (
	RelaxExpandRange3d    RelaxationStrategy = "expanded_date_range_3d"
	RelaxDropTimeOfDay    RelaxationStrategy = "remove_time_preference"
	RelaxAnyDoctor        RelaxationStrategy = "any_doctor"
	RelaxExpandRange7d    RelaxationStrategy = "expanded_date_range_7d"
	RelaxFully            RelaxationStrategy = "fully_relaxed"
)

// RelaxationSuggestion is one entry in an escalation's suggestion list.
type RelaxationSuggestion struct {
	Strategy RelaxationStrategy `json:"strategy"`
	// Input is the relaxed suggest_slots request staff can replay.
	Input SuggestSlotsInput `json:"input"`
}
