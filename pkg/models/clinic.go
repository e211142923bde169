package models

import "time"

// ClinicProfile is the read-only clinic snapshot loaded per request.
// It is deserialized from the clinic's profile JSON and cached with a
// short TTL; nothing in the request path mutates it.
type ClinicProfile struct {
	ClinicID        string             `json:"clinic_id"`
	Name            string             `json:"name"`
	Timezone        string             `json:"timezone"`
	DefaultLanguage string             `json:"default_language"`
	InstanceName    string             `json:"instance_name"`
	BusinessHours   BusinessHours      `json:"business_hours"`
	Services        []Service          `json:"services"`
	Doctors         []Doctor           `json:"doctors"`
	Rooms           []Room             `json:"rooms"`
	ServiceAliases  map[string]string  `json:"service_aliases"`
	Scheduling      SchedulingSettings `json:"scheduling"`
	FAQ             map[string]string  `json:"faq,omitempty"`
}

// BusinessHours describes the clinic's daily working window.
// Days use time.Weekday numbering (Sunday = 0).
type BusinessHours struct {
	OpenHour   int   `json:"open_hour"`
	CloseHour  int   `json:"close_hour"`
	ClosedDays []int `json:"closed_days,omitempty"`
}

// Service is one bookable clinical service.
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	Description     string  `json:"description,omitempty"`
}

// Doctor is one practitioner, with eligibility and working schedule.
type Doctor struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ServiceIDs    []string `json:"service_ids"`
	PreferredRoom string   `json:"preferred_room,omitempty"`
	// WorkDays uses time.Weekday numbering; empty means every open day.
	WorkDays []int `json:"work_days,omitempty"`
	// TimeOff holds absence intervals (vacation, conference).
	TimeOff []TimeOffInterval `json:"time_off,omitempty"`
}

// TimeOffInterval is a doctor absence window.
type TimeOffInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Room is one physical treatment room.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SchedulingSettings carries the clinic's slot-generation knobs and
// preference weights. Weights should sum to 1; the engine normalizes
// them defensively at load time.
type SchedulingSettings struct {
	GridMinutes int `json:"grid_minutes"`

	// Preference weights for the soft score (scaled to 0-100).
	WeightLeastBusy       float64 `json:"weight_least_busy"`
	WeightPackSchedule    float64 `json:"weight_pack_schedule"`
	WeightPreferredRoom   float64 `json:"weight_preferred_room"`
	WeightTimeOfDay       float64 `json:"weight_time_of_day"`
	WeightPreferredDoctor float64 `json:"weight_preferred_doctor"`
}

// ServiceByID returns the service with the given id, if any.
func (p *ClinicProfile) ServiceByID(id string) (Service, bool) {
	for _, s := range p.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// DoctorByID returns the doctor with the given id, if any.
func (p *ClinicProfile) DoctorByID(id string) (Doctor, bool) {
	for _, d := range p.Doctors {
		if d.ID == id {
			return d, true
		}
	}
	return Doctor{}, false
}

// EligibleDoctors returns the doctors that can perform the service.
func (p *ClinicProfile) EligibleDoctors(serviceID string) []Doctor {
	var out []Doctor
	for _, d := range p.Doctors {
		for _, sid := range d.ServiceIDs {
			if sid == serviceID {
				out = append(out, d)
				break
			}
		}
	}
	return out
}
