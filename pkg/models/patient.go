package models

// PatientProfile is the cross-session patient identity. The Hard*
// fields and Allergies survive session resets and are the only
// episode data restored after a hard boundary.
type PatientProfile struct {
	PatientID         string         `json:"patient_id"`
	ClinicID          string         `json:"clinic_id"`
	Phone             string         `json:"phone"`
	FirstName         string         `json:"first_name,omitempty"`
	LastName          string         `json:"last_name,omitempty"`
	PreferredLanguage string         `json:"preferred_language,omitempty"`
	HardDoctorBans    []string       `json:"hard_doctor_bans,omitempty"`
	HardServiceBans   []string       `json:"hard_service_bans,omitempty"`
	Allergies         []string       `json:"allergies,omitempty"`
	Preferences       map[string]any `json:"preferences,omitempty"`
}

// FullName joins the name parts, tolerating either being empty.
func (p PatientProfile) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.LastName
	}
}
