package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mediqo/mediqo/pkg/constraints"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/scheduling"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02T15:04:05"
)

type availabilityResult struct {
	Slots []models.Slot `json:"slots"`
	// EscalationID is set when staff took over instead of slots.
	EscalationID string `json:"escalation_id,omitempty"`
	Message      string `json:"message,omitempty"`
	Note         string `json:"note,omitempty"`
}

type bookingResult struct {
	AppointmentID  string    `json:"appointment_id"`
	DoctorID       string    `json:"doctor_id"`
	DoctorName     string    `json:"doctor_name,omitempty"`
	ServiceID      string    `json:"service_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	CalendarSynced bool      `json:"calendar_synced"`
	// CancelledAppointmentID is set on reschedule.
	CancelledAppointmentID string `json:"cancelled_appointment_id,omitempty"`
	Warning                string `json:"warning,omitempty"`
}

func (e *Executor) dispatch(ctx context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case ToolCheckAvailability:
		return e.runCheckAvailability(ctx, args)
	case ToolBookAppointment:
		return e.runBook(ctx, args)
	case ToolReschedule:
		return e.runReschedule(ctx, args)
	case ToolCancelAppointment:
		return e.runCancel(ctx, args)
	case ToolGetServices:
		return e.runGetServices(), nil
	case ToolGetPrices:
		return e.runGetPrices(args)
	case ToolGetDoctorInfo:
		return e.runGetDoctorInfo(args)
	default:
		e.stats.HallucinationBlocked = true
		return nil, fmt.Errorf("unknown tool %q", name)
	}
}

func (e *Executor) runCheckAvailability(ctx context.Context, args map[string]any) (any, error) {
	serviceID := stringArg(args, "service_id")
	if serviceID == "" {
		return nil, errors.New("service_name is required")
	}
	loc := e.clinicLocation()
	dateFrom, dateTo, err := e.dateRange(args, loc)
	if err != nil {
		return nil, err
	}

	input := models.SuggestSlotsInput{
		ClinicID:  e.tctx.ClinicID,
		PatientID: e.tctx.PatientID,
		ServiceID: serviceID,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		Constraints: models.HardConstraints{
			DoctorID:        stringArg(args, "doctor_id"),
			ExcludedDoctors: e.excludedDoctorIDs(),
			EarliestHour:    intArg(args, "earliest_hour"),
			LatestHour:      intArg(args, "latest_hour"),
		},
		Preferences: models.PatientPreferences{
			PreferredTimeOfDay: stringArg(args, "preferred_time_of_day"),
		},
	}

	result := availabilityResult{}
	if v, _ := args["date_corrected"].(bool); v {
		result.Note = fmt.Sprintf("requested dates were outside the patient's stated window (%s); searching that window instead",
			e.tctx.Constraints.TimeWindow.Display)
	}

	res, err := e.scheduler.SuggestSlots(ctx, input)
	var noSlots *scheduling.NoSlotsError
	var escalated *scheduling.EscalatedError
	switch {
	case err == nil:
		result.Slots = res.Slots
	case errors.As(err, &noSlots):
		result.EscalationID = noSlots.EscalationID
		result.Message = "no slots are available for this request; clinic staff will follow up within a day"
	case errors.As(err, &escalated):
		result.EscalationID = escalated.EscalationID
		result.Message = "this request needs staff review before booking; the clinic will follow up"
	default:
		return nil, err
	}
	return result, nil
}

func (e *Executor) runBook(ctx context.Context, args map[string]any) (any, error) {
	slot, err := e.offeredSlot(args)
	if err != nil {
		return nil, err
	}
	return e.bookSlot(ctx, slot, "")
}

func (e *Executor) runReschedule(ctx context.Context, args map[string]any) (any, error) {
	apptID := stringArg(args, "appointment_id")
	if apptID == "" {
		return nil, errors.New("appointment_id is required")
	}
	slot, err := e.offeredSlot(args)
	if err != nil {
		return nil, err
	}
	// Confirm the new slot before touching the old appointment so a
	// failed booking leaves the patient with what they had.
	booked, err := e.bookSlot(ctx, slot, apptID)
	if err != nil {
		return nil, err
	}
	if err := e.scheduler.CancelAppointment(ctx, scheduling.CancelInput{
		ClinicID:      e.tctx.ClinicID,
		AppointmentID: apptID,
		PatientID:     e.tctx.PatientID,
	}); err != nil {
		booked.Warning = fmt.Sprintf("new appointment confirmed, but the old one could not be cancelled: %v; clinic staff should cancel it manually", err)
	} else {
		booked.CancelledAppointmentID = apptID
	}
	return booked, nil
}

// bookSlot drives hold then confirm for a slot the model picked from
// the availability results. holdSuffix keeps reschedule holds from
// colliding with plain booking holds in the same turn.
func (e *Executor) bookSlot(ctx context.Context, slot models.Slot, holdSuffix string) (*bookingResult, error) {
	clientHoldID := fmt.Sprintf("%s:%s:%d", e.tctx.SessionID, slot.DoctorID, slot.StartTime.Unix())
	if holdSuffix != "" {
		clientHoldID += ":" + holdSuffix
	}
	held, err := e.scheduler.HoldSlot(ctx, models.HoldSlotInput{
		ClinicID:     e.tctx.ClinicID,
		PatientID:    e.tctx.PatientID,
		ServiceID:    slot.ServiceID,
		ClientHoldID: clientHoldID,
		Slot:         slot,
	})
	if err != nil {
		return nil, e.schedulingError(err)
	}
	confirmed, err := e.scheduler.ConfirmHold(ctx, models.ConfirmHoldInput{
		HoldID:    held.HoldID,
		PatientID: e.tctx.PatientID,
		ServiceID: slot.ServiceID,
	})
	if err != nil {
		return nil, e.schedulingError(err)
	}
	result := &bookingResult{
		AppointmentID:  confirmed.AppointmentID,
		DoctorID:       slot.DoctorID,
		DoctorName:     slot.DoctorName,
		ServiceID:      slot.ServiceID,
		StartTime:      slot.StartTime,
		EndTime:        slot.EndTime,
		CalendarSynced: confirmed.CalendarSynced,
	}
	if doctor, ok := e.resolveDoctor(slot.DoctorID); ok {
		result.DoctorName = doctor.Name
	}
	return result, nil
}

func (e *Executor) runCancel(ctx context.Context, args map[string]any) (any, error) {
	apptID := stringArg(args, "appointment_id")
	if apptID == "" {
		return nil, errors.New("appointment_id is required")
	}
	if err := e.scheduler.CancelAppointment(ctx, scheduling.CancelInput{
		ClinicID:      e.tctx.ClinicID,
		AppointmentID: apptID,
		PatientID:     e.tctx.PatientID,
	}); err != nil {
		return nil, e.schedulingError(err)
	}
	return map[string]any{"cancelled": true, "appointment_id": apptID}, nil
}

func (e *Executor) runGetServices() any {
	services := make([]map[string]any, 0, len(e.tctx.Clinic.Services))
	for _, s := range e.tctx.Clinic.Services {
		services = append(services, map[string]any{
			"id":               s.ID,
			"name":             s.Name,
			"duration_minutes": s.DurationMinutes,
			"price":            s.Price,
			"currency":         s.Currency,
		})
	}
	return map[string]any{"services": services}
}

func (e *Executor) runGetPrices(args map[string]any) (any, error) {
	ref := stringArg(args, "service_name")
	if ref == "" {
		return e.runGetServices(), nil
	}
	service, ok := e.resolveService(ref)
	if !ok {
		e.stats.HallucinationBlocked = true
		return nil, fmt.Errorf("this clinic does not offer %q; call get_services for the real list", ref)
	}
	return map[string]any{
		"service_id": service.ID,
		"name":       service.Name,
		"price":      service.Price,
		"currency":   service.Currency,
	}, nil
}

func (e *Executor) runGetDoctorInfo(args map[string]any) (any, error) {
	doctors := e.tctx.Clinic.Doctors
	if ref := stringArg(args, "doctor_name"); ref != "" {
		doctor, ok := e.resolveDoctor(ref)
		if !ok {
			e.stats.HallucinationBlocked = true
			return nil, fmt.Errorf("no doctor matching %q works at this clinic", ref)
		}
		doctors = []models.Doctor{doctor}
	}
	out := make([]map[string]any, 0, len(doctors))
	for _, d := range doctors {
		names := make([]string, 0, len(d.ServiceIDs))
		for _, id := range d.ServiceIDs {
			for _, s := range e.tctx.Clinic.Services {
				if s.ID == id {
					names = append(names, s.Name)
				}
			}
		}
		out = append(out, map[string]any{"id": d.ID, "name": d.Name, "services": names})
	}
	return map[string]any{"doctors": out}, nil
}

// offeredSlot matches datetime_str against the slots the availability
// check actually returned this turn. A time that was never offered is
// an invented one.
func (e *Executor) offeredSlot(args map[string]any) (models.Slot, error) {
	prev, ok := e.prior[ToolCheckAvailability].payload.(availabilityResult)
	if !ok || len(prev.Slots) == 0 {
		e.stats.HallucinationBlocked = true
		return models.Slot{}, errors.New("no availability results to book from; call check_availability first")
	}
	when, err := parseDateTime(stringArg(args, "datetime_str"), e.clinicLocation())
	if err != nil {
		return models.Slot{}, err
	}
	doctorID := stringArg(args, "doctor_id")
	for _, slot := range prev.Slots {
		if !slot.StartTime.Equal(when) {
			continue
		}
		if doctorID != "" && slot.DoctorID != doctorID {
			continue
		}
		return slot, nil
	}
	e.stats.HallucinationBlocked = true
	offered := make([]string, 0, len(prev.Slots))
	for _, slot := range prev.Slots {
		offered = append(offered, slot.StartTime.Format(datetimeLayout))
	}
	return models.Slot{}, fmt.Errorf("%s was not among the offered slots; offered: %s",
		when.Format(datetimeLayout), strings.Join(offered, ", "))
}

// schedulingError rewrites engine errors into model-actionable text.
func (e *Executor) schedulingError(err error) error {
	var violation *scheduling.PolicyViolationError
	if errors.As(err, &violation) && len(violation.Messages) > 0 {
		return fmt.Errorf("booking blocked by clinic policy: %s", strings.Join(violation.Messages, "; "))
	}
	if errors.Is(err, scheduling.ErrSlotNotAvailable) {
		return errors.New("that slot was just taken; call check_availability again")
	}
	return err
}

func (e *Executor) clinicLocation() *time.Location {
	if loc, err := time.LoadLocation(e.tctx.Clinic.Timezone); err == nil && e.tctx.Clinic.Timezone != "" {
		return loc
	}
	return time.UTC
}

// excludedDoctorIDs maps the constraint block's spoken exclusions to
// roster ids for the engine's hard filter.
func (e *Executor) excludedDoctorIDs() []string {
	var ids []string
	for _, d := range e.tctx.Clinic.Doctors {
		if constraints.IsExcluded(d.Name, e.tctx.Constraints.ExcludedDoctors, e.tctx.Language, constraints.EntityDoctor) ||
			constraints.IsExcluded(d.ID, e.tctx.Constraints.ExcludedDoctors, e.tctx.Language, constraints.EntityDoctor) {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// dateRange derives the suggestion window from the arguments. The
// default is the coming week.
func (e *Executor) dateRange(args map[string]any, loc *time.Location) (time.Time, time.Time, error) {
	if date := stringArg(args, "preferred_date"); date != "" {
		day, err := time.ParseInLocation(dateLayout, date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("preferred_date: %w", err)
		}
		return day, day.AddDate(0, 0, 1), nil
	}

	now := time.Now().In(loc)
	from := now
	to := now.AddDate(0, 0, 7)
	if date := stringArg(args, "date_from"); date != "" {
		day, err := time.ParseInLocation(dateLayout, date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("date_from: %w", err)
		}
		from = day
	}
	if date := stringArg(args, "date_to"); date != "" {
		day, err := time.ParseInLocation(dateLayout, date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("date_to: %w", err)
		}
		to = day.AddDate(0, 0, 1)
	}
	return from, to, nil
}

func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("datetime_str is required")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(datetimeLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("datetime_str must be RFC3339 or %s", datetimeLayout)
	}
	return t, nil
}
