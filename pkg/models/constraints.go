package models

import "time"

// TimeWindow is a normalized date range with the human-readable form
// the patient used ("tomorrow", "next week"). Start and End are
// inclusive dates in the clinic timezone.
type TimeWindow struct {
	Start   string `json:"start"`   // ISO date, e.g. 2025-11-25
	End     string `json:"end"`     // ISO date
	Display string `json:"display"` // what the patient said
}

// IsZero reports whether the window is unset.
func (w TimeWindow) IsZero() bool {
	return w.Start == "" && w.End == ""
}

// ConstraintBlock is the per-session set of enforceable preferences.
// Every tool call that references a doctor or service must be checked
// against the live block before execution. Exclusion sets only grow
// within a session; a meta-reset replaces the whole block.
type ConstraintBlock struct {
	SessionID        string     `json:"session_id"`
	DesiredService   string     `json:"desired_service,omitempty"`
	DesiredDoctor    string     `json:"desired_doctor,omitempty"`
	ExcludedDoctors  []string   `json:"excluded_doctors,omitempty"`
	ExcludedServices []string   `json:"excluded_services,omitempty"`
	TimeWindow       TimeWindow `json:"time_window,omitempty"`
	FreshSession     bool       `json:"fresh_session"`
	LastUpdated      time.Time  `json:"last_updated"`
}

// ConstraintUpdate is one extractor result applied to the block.
// Exclusions accumulate; desired fields replace; a MetaReset clears
// everything.
type ConstraintUpdate struct {
	MetaReset       bool        `json:"meta_reset,omitempty"`
	DesiredService  string      `json:"desired_service,omitempty"`
	DesiredDoctor   string      `json:"desired_doctor,omitempty"`
	ExcludeDoctors  []string    `json:"exclude_doctors,omitempty"`
	ExcludeServices []string    `json:"exclude_services,omitempty"`
	TimeWindow      *TimeWindow `json:"time_window,omitempty"`
}

// IsEmpty reports whether the update carries no change.
func (u ConstraintUpdate) IsEmpty() bool {
	return !u.MetaReset &&
		u.DesiredService == "" && u.DesiredDoctor == "" &&
		len(u.ExcludeDoctors) == 0 && len(u.ExcludeServices) == 0 &&
		u.TimeWindow == nil
}
