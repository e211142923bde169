package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/policy"
)

// SuggestSlots enumerates, filters, gates and scores candidate slots,
// returning the top 10. Zero surviving slots opens an escalation and
// returns NoSlotsError; a matched ESCALATE rule aborts with
// EscalatedError.
func (e *Engine) SuggestSlots(ctx context.Context, input models.SuggestSlotsInput) (*models.SuggestSlotsResult, error) {
	if err := validateSuggestInput(input); err != nil {
		return nil, err
	}
	profile, err := e.clinics.Get(ctx, input.ClinicID)
	if err != nil {
		return nil, fmt.Errorf("load clinic %s: %w", input.ClinicID, err)
	}
	service, ok := profile.ServiceByID(input.ServiceID)
	if !ok {
		return nil, &InvalidRequestError{Reason: fmt.Sprintf("unknown service %q", input.ServiceID)}
	}
	loc := clinicLocation(profile)
	settings := e.settingsFor(profile)

	active, err := e.policies.Active(ctx, input.ClinicID)
	if err != nil {
		return nil, fmt.Errorf("load policy for %s: %w", input.ClinicID, err)
	}

	// One scoring snapshot of the clinic's booked appointments.
	booked, err := e.appts.ListBetween(ctx, input.ClinicID, input.DateFrom, input.DateTo.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	candidates, err := e.enumerate(ctx, profile, service, input, loc, settings)
	if err != nil {
		return nil, err
	}

	var slots []models.Slot
	for _, slot := range candidates {
		if active != nil {
			sctx := slotContext(input.ClinicID, input.PatientID, slot, loc, nil)
			outcome := evalHardRules(active.Compiled.Hard, sctx)
			if outcome.escalate != nil {
				return nil, e.escalateByRule(ctx, input, *outcome.escalate)
			}
			if len(outcome.violated) > 0 {
				continue
			}
			scoreSlot(&slot, settings, profile, input.Preferences, booked, loc)
			applySoftRules(&slot, active.Compiled.Soft, sctx)
		} else {
			scoreSlot(&slot, settings, profile, input.Preferences, booked, loc)
		}
		slots = append(slots, slot)
	}

	if len(slots) == 0 {
		return nil, e.escalateNoSlots(ctx, input)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Score != slots[j].Score {
			return slots[i].Score > slots[j].Score
		}
		if !slots[i].StartTime.Equal(slots[j].StartTime) {
			return slots[i].StartTime.Before(slots[j].StartTime)
		}
		return slots[i].DoctorID < slots[j].DoctorID
	})
	if len(slots) > maxSuggestions {
		slots = slots[:maxSuggestions]
	}
	return &models.SuggestSlotsResult{Slots: slots}, nil
}

func validateSuggestInput(input models.SuggestSlotsInput) error {
	switch {
	case input.ClinicID == "":
		return &InvalidRequestError{Reason: "clinic_id is required"}
	case input.PatientID == "":
		return &InvalidRequestError{Reason: "patient_id is required"}
	case input.ServiceID == "":
		return &InvalidRequestError{Reason: "service_id is required"}
	case input.DateFrom.IsZero() || input.DateTo.IsZero():
		return &InvalidRequestError{Reason: "date range is required"}
	case input.DateTo.Before(input.DateFrom):
		return &InvalidRequestError{Reason: "date_to precedes date_from"}
	}
	return nil
}

func clinicLocation(profile models.ClinicProfile) *time.Location {
	loc, err := time.LoadLocation(profile.Timezone)
	if err != nil || profile.Timezone == "" {
		return time.UTC
	}
	return loc
}

// enumerate yields every (doctor, room, grid tick) candidate that
// survives the availability filters.
func (e *Engine) enumerate(ctx context.Context, profile models.ClinicProfile, service models.Service, input models.SuggestSlotsInput, loc *time.Location, settings models.SchedulingSettings) ([]models.Slot, error) {
	doctors := eligibleDoctors(profile, input)
	if len(doctors) == 0 || len(profile.Rooms) == 0 {
		return nil, nil
	}
	duration := time.Duration(service.DurationMinutes) * time.Minute
	if duration <= 0 {
		duration = time.Duration(settings.GridMinutes) * time.Minute
	}
	grid := time.Duration(settings.GridMinutes) * time.Minute
	now := e.now()

	var out []models.Slot
	for day := dayStart(input.DateFrom.In(loc)); !day.After(input.DateTo.In(loc)); day = day.AddDate(0, 0, 1) {
		if clinicClosed(profile.BusinessHours, day.Weekday()) {
			continue
		}
		open := day.Add(time.Duration(profile.BusinessHours.OpenHour) * time.Hour)
		close := day.Add(time.Duration(profile.BusinessHours.CloseHour) * time.Hour)

		for tick := open; !tick.Add(duration).After(close); tick = tick.Add(grid) {
			if tick.Before(now) {
				continue
			}
			if !withinHourBounds(tick, input.Constraints) {
				continue
			}
			for _, doctor := range doctors {
				if !doctorWorks(doctor, day.Weekday()) || doctorOnTimeOff(doctor, tick, tick.Add(duration)) {
					continue
				}
				for _, room := range profile.Rooms {
					free, err := e.roomFree(ctx, room.ID, tick, tick.Add(duration))
					if err != nil {
						return nil, err
					}
					if !free {
						continue
					}
					out = append(out, models.Slot{
						DoctorID:   doctor.ID,
						DoctorName: doctor.Name,
						RoomID:     room.ID,
						ServiceID:  service.ID,
						StartTime:  tick,
						EndTime:    tick.Add(duration),
					})
				}
			}
		}
	}
	return out, nil
}

func (e *Engine) roomFree(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	taken, err := e.appts.Overlap(ctx, roomID, start, end)
	if err != nil {
		return false, fmt.Errorf("appointment overlap check: %w", err)
	}
	if taken {
		return false, nil
	}
	held, err := e.holds.ActiveOverlap(ctx, roomID, start, end, e.now())
	if err != nil {
		return false, fmt.Errorf("hold overlap check: %w", err)
	}
	return !held, nil
}

func eligibleDoctors(profile models.ClinicProfile, input models.SuggestSlotsInput) []models.Doctor {
	excluded := map[string]bool{}
	for _, id := range input.Constraints.ExcludedDoctors {
		excluded[id] = true
	}
	var out []models.Doctor
	for _, d := range profile.EligibleDoctors(input.ServiceID) {
		if excluded[d.ID] {
			continue
		}
		if input.Constraints.DoctorID != "" && d.ID != input.Constraints.DoctorID {
			continue
		}
		out = append(out, d)
	}
	return out
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clinicClosed(hours models.BusinessHours, weekday time.Weekday) bool {
	for _, d := range hours.ClosedDays {
		if time.Weekday(d) == weekday {
			return true
		}
	}
	return false
}

func withinHourBounds(tick time.Time, hard models.HardConstraints) bool {
	if hard.EarliestHour > 0 && tick.Hour() < hard.EarliestHour {
		return false
	}
	if hard.LatestHour > 0 && tick.Hour() >= hard.LatestHour {
		return false
	}
	return true
}

func doctorWorks(d models.Doctor, weekday time.Weekday) bool {
	if len(d.WorkDays) == 0 {
		return true
	}
	for _, wd := range d.WorkDays {
		if time.Weekday(wd) == weekday {
			return true
		}
	}
	return false
}

func doctorOnTimeOff(d models.Doctor, start, end time.Time) bool {
	for _, off := range d.TimeOff {
		if start.Before(off.End) && off.Start.Before(end) {
			return true
		}
	}
	return false
}

// scoreSlot computes the weighted base score, scaled to 0-100.
func scoreSlot(slot *models.Slot, settings models.SchedulingSettings, profile models.ClinicProfile, prefs models.PatientPreferences, booked []*Appointment, loc *time.Location) {
	doctor, _ := profile.DoctorByID(slot.DoctorID)

	busy := map[string]int{}
	maxBusy := 0
	for _, a := range booked {
		busy[a.DoctorID]++
		if busy[a.DoctorID] > maxBusy {
			maxBusy = busy[a.DoctorID]
		}
	}
	leastBusy := 1.0
	if maxBusy > 0 {
		leastBusy = 1 - float64(busy[slot.DoctorID])/float64(maxBusy)
	}

	pack := packScheduleScore(slot, booked, loc)

	room := 0.5
	if doctor.PreferredRoom != "" {
		room = 0.0
		if doctor.PreferredRoom == slot.RoomID {
			room = 1.0
		}
	}

	timeOfDay := 0.5
	if prefs.PreferredTimeOfDay != "" {
		timeOfDay = 0.0
		if timeBucket(slot.StartTime.In(loc).Hour()) == prefs.PreferredTimeOfDay {
			timeOfDay = 1.0
		}
	}

	prefDoctor := 0.5
	if prefs.PreferredDoctorID != "" {
		prefDoctor = 0.0
		if prefs.PreferredDoctorID == slot.DoctorID {
			prefDoctor = 1.0
		}
	}

	score := settings.WeightLeastBusy*leastBusy +
		settings.WeightPackSchedule*pack +
		settings.WeightPreferredRoom*room +
		settings.WeightTimeOfDay*timeOfDay +
		settings.WeightPreferredDoctor*prefDoctor
	slot.Score = score * 100
}

// packScheduleScore rewards proximity to the doctor's same-day
// appointments: back-to-back scores 1, decaying with the gap.
func packScheduleScore(slot *models.Slot, booked []*Appointment, loc *time.Location) float64 {
	best := 0.0
	slotDay := slot.StartTime.In(loc).Format("2006-01-02")
	for _, a := range booked {
		if a.DoctorID != slot.DoctorID {
			continue
		}
		if a.StartTime.In(loc).Format("2006-01-02") != slotDay {
			continue
		}
		gap := slot.StartTime.Sub(a.EndTime)
		if gap < 0 {
			gap = a.StartTime.Sub(slot.EndTime)
		}
		if gap < 0 {
			gap = 0
		}
		score := 1.0 / (1.0 + gap.Hours())
		if score > best {
			best = score
		}
	}
	return best
}

func timeBucket(hour int) string {
	switch {
	case hour < 12:
		return "morning"
	case hour < 17:
		return "afternoon"
	default:
		return "evening"
	}
}

// applySoftRules adds ADJUST_SCORE deltas (unscaled) and WARN
// explanations from matching soft rules.
func applySoftRules(slot *models.Slot, soft []policy.Rule, sctx map[string]any) {
	for _, rule := range soft {
		if !policy.Evaluate(rule.Conditions, sctx) {
			continue
		}
		switch rule.Effect.Type {
		case policy.EffectAdjustScore:
			slot.Score += rule.Effect.Delta
		case policy.EffectWarn:
			msg := rule.Effect.Message
			if msg == "" {
				msg = explainFor(rule)
			}
			slot.Explanations = append(slot.Explanations, msg)
		}
	}
}

// escalateNoSlots opens (or reuses) an escalation for an empty result
// and returns the NoSlotsError the caller surfaces.
func (e *Engine) escalateNoSlots(ctx context.Context, input models.SuggestSlotsInput) error {
	esc, err := e.openEscalation(ctx, input, "no_slots_available", buildRelaxations(input))
	if err != nil {
		return err
	}
	return &NoSlotsError{EscalationID: esc.ID}
}

func (e *Engine) escalateByRule(ctx context.Context, input models.SuggestSlotsInput, rule policy.Rule) error {
	esc, err := e.openEscalation(ctx, input, "escalate_rule:"+rule.RuleID, buildRelaxations(input))
	if err != nil {
		return err
	}
	return &EscalatedError{EscalationID: esc.ID, RuleID: rule.RuleID}
}

// openEscalation creates an open escalation with a 24h SLA, reusing an
// open one for the same (patient, service) from the last 24 hours.
func (e *Engine) openEscalation(ctx context.Context, input models.SuggestSlotsInput, reason string, suggestions []models.RelaxationSuggestion) (*Escalation, error) {
	existing, err := e.escalations.RecentOpen(ctx, input.PatientID, input.ServiceID, e.now().Add(-escalationDedupWin))
	if err != nil {
		return nil, fmt.Errorf("escalation dedup lookup: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	esc := &Escalation{
		ID:          uuid.NewString(),
		ClinicID:    input.ClinicID,
		PatientID:   input.PatientID,
		ServiceID:   input.ServiceID,
		Status:      EscalationOpen,
		Reason:      reason,
		Request:     requestPayload(input),
		Suggestions: suggestions,
		SLADeadline: e.now().Add(escalationSLA),
		CreatedAt:   e.now(),
	}
	if err := e.escalations.Create(ctx, esc); err != nil {
		return nil, fmt.Errorf("create escalation: %w", err)
	}
	e.logger.Info("scheduling escalation opened",
		"escalation_id", esc.ID, "clinic_id", esc.ClinicID, "reason", reason)
	if e.notifier != nil {
		e.notifier.EscalationOpened(ctx, esc)
	}
	return esc, nil
}

func requestPayload(input models.SuggestSlotsInput) map[string]any {
	raw, err := json.Marshal(input)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// buildRelaxations generates the staff-replayable relaxation ladder in
// its pinned order.
func buildRelaxations(input models.SuggestSlotsInput) []models.RelaxationSuggestion {
	expand3 := input
	expand3.DateTo = input.DateTo.AddDate(0, 0, 3)

	noTime := input
	noTime.Constraints.EarliestHour = 0
	noTime.Constraints.LatestHour = 0
	noTime.Preferences.PreferredTimeOfDay = ""

	anyDoctor := input
	anyDoctor.Constraints.DoctorID = ""
	anyDoctor.Preferences.PreferredDoctorID = ""

	expand7 := input
	expand7.DateTo = input.DateTo.AddDate(0, 0, 7)

	// Fully relaxed keeps only the service and the exclusion sets;
	// hard bans are never relaxed on the patient's behalf.
	relaxed := input
	relaxed.Constraints = models.HardConstraints{ExcludedDoctors: input.Constraints.ExcludedDoctors}
	relaxed.Preferences = models.PatientPreferences{}
	relaxed.DateTo = input.DateFrom.AddDate(0, 0, 14)

	return []models.RelaxationSuggestion{
		{Strategy: models.RelaxExpandRange3d, Input: expand3},
		{Strategy: models.RelaxDropTimeOfDay, Input: noTime},
		{Strategy: models.RelaxAnyDoctor, Input: anyDoctor},
		{Strategy: models.RelaxExpandRange7d, Input: expand7},
		{Strategy: models.RelaxFully, Input: relaxed},
	}
}
