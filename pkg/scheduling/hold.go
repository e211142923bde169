package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mediqo/mediqo/pkg/kv"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/policy"
)

// HoldSlot reserves a suggested slot for five minutes. Repeating the
// call with the same client_hold_id inside the TTL returns the
// original hold unchanged.
func (e *Engine) HoldSlot(ctx context.Context, input models.HoldSlotInput) (*models.HoldSlotResult, error) {
	if err := validateHoldInput(input); err != nil {
		return nil, err
	}
	now := e.now()

	existing, err := e.holds.ByClientID(ctx, input.ClientHoldID)
	switch {
	case err == nil:
		if !existing.Expired(now) {
			return &models.HoldSlotResult{
				HoldID:    existing.ID,
				ExpiresAt: existing.ExpiresAt,
				Reused:    true,
			}, nil
		}
		// The idempotency key points at a dead hold; clear it so the
		// unique index accepts the replacement.
		if _, err := e.holds.Delete(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("drop expired hold: %w", err)
		}
	case errors.Is(err, ErrHoldNotFound):
	default:
		return nil, fmt.Errorf("hold lookup: %w", err)
	}

	free, err := e.roomFree(ctx, input.Slot.RoomID, input.Slot.StartTime, input.Slot.EndTime)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotNotAvailable
	}

	hold := &Hold{
		ID:           uuid.NewString(),
		ClientHoldID: input.ClientHoldID,
		ClinicID:     input.ClinicID,
		PatientID:    input.PatientID,
		DoctorID:     input.Slot.DoctorID,
		RoomID:       input.Slot.RoomID,
		ServiceID:    input.ServiceID,
		StartTime:    input.Slot.StartTime,
		EndTime:      input.Slot.EndTime,
		Score:        input.Slot.Score,
		ExpiresAt:    now.Add(e.holdTTL),
		CreatedAt:    now,
	}
	if err := e.holds.Create(ctx, hold); err != nil {
		return nil, fmt.Errorf("create hold: %w", err)
	}
	return &models.HoldSlotResult{HoldID: hold.ID, ExpiresAt: hold.ExpiresAt}, nil
}

func validateHoldInput(input models.HoldSlotInput) error {
	switch {
	case input.ClientHoldID == "":
		return &InvalidRequestError{Reason: "client_hold_id is required"}
	case input.ClinicID == "" || input.PatientID == "" || input.ServiceID == "":
		return &InvalidRequestError{Reason: "clinic_id, patient_id and service_id are required"}
	case input.Slot.RoomID == "" || input.Slot.DoctorID == "":
		return &InvalidRequestError{Reason: "slot doctor and room are required"}
	case input.Slot.StartTime.IsZero() || !input.Slot.EndTime.After(input.Slot.StartTime):
		return &InvalidRequestError{Reason: "slot time range is invalid"}
	}
	return nil
}

// ConfirmHold converts a hold into an appointment: re-gate against the
// active policy, reserve any occurrence limits atomically, insert,
// delete the hold, then sync the calendar in the background. Any
// failure after reservation releases every reserved token.
func (e *Engine) ConfirmHold(ctx context.Context, input models.ConfirmHoldInput) (*models.ConfirmHoldResult, error) {
	if input.HoldID == "" {
		return nil, &InvalidRequestError{Reason: "hold_id is required"}
	}
	hold, err := e.holds.ByID(ctx, input.HoldID)
	if err != nil {
		return nil, err
	}
	if input.PatientID != "" && hold.PatientID != input.PatientID {
		// Foreign holds are indistinguishable from absent ones.
		return nil, ErrHoldNotFound
	}
	if hold.Expired(e.now()) {
		return nil, ErrHoldExpired
	}

	active, err := e.policies.Active(ctx, hold.ClinicID)
	if err != nil {
		return nil, fmt.Errorf("load policy for %s: %w", hold.ClinicID, err)
	}

	profile, err := e.clinics.Get(ctx, hold.ClinicID)
	if err != nil {
		return nil, fmt.Errorf("load clinic %s: %w", hold.ClinicID, err)
	}
	loc := clinicLocation(profile)

	slot := models.Slot{
		DoctorID:  hold.DoctorID,
		RoomID:    hold.RoomID,
		ServiceID: hold.ServiceID,
		StartTime: hold.StartTime,
		EndTime:   hold.EndTime,
	}

	var reservations []kv.Reservation
	appt := &Appointment{
		ID:        uuid.NewString(),
		ClinicID:  hold.ClinicID,
		PatientID: hold.PatientID,
		DoctorID:  hold.DoctorID,
		RoomID:    hold.RoomID,
		ServiceID: hold.ServiceID,
		StartTime: hold.StartTime,
		EndTime:   hold.EndTime,
		Status:    "scheduled",
	}

	if active != nil {
		sctx := slotContext(hold.ClinicID, hold.PatientID, slot, loc, input.Metadata)
		outcome := evalHardRules(active.Compiled.Hard, sctx)
		if outcome.escalate != nil {
			return nil, violationError([]policy.Rule{*outcome.escalate})
		}
		if len(outcome.violated) > 0 {
			return nil, violationError(outcome.violated)
		}

		reservations, err = e.reserveLimits(ctx, outcome.limits, sctx)
		if err != nil {
			return nil, err
		}

		appt.PolicySnapshotID = active.SnapshotID
		appt.PolicyVersion = active.Version
		appt.PolicySHA256 = active.Compiled.Digest
	}

	if err := e.appts.Insert(ctx, appt); err != nil {
		e.releaseReservations(reservations)
		return nil, err
	}

	if _, err := e.holds.Delete(ctx, hold.ID); err != nil {
		// The appointment committed; a lingering hold row only blocks
		// its own room until expiry.
		e.logger.Warn("hold delete after confirm failed", "hold_id", hold.ID, "error", err)
	}

	result := &models.ConfirmHoldResult{
		AppointmentID: appt.ID,
		PolicyVersion: appt.PolicyVersion,
		PolicySHA256:  appt.PolicySHA256,
	}
	e.syncCalendar(ctx, appt, result)
	return result, nil
}

// reserveLimits reserves a counter per matched LIMIT_OCCURRENCE rule.
// A full counter releases everything reserved so far and surfaces the
// rule's explanation.
func (e *Engine) reserveLimits(ctx context.Context, rules []policy.Rule, sctx map[string]any) ([]kv.Reservation, error) {
	var reserved []kv.Reservation
	for _, rule := range rules {
		key := policy.ExpandKey(rule.Effect.Key, sctx)
		window := time.Duration(rule.Effect.WindowSeconds) * time.Second
		res, ok, _, err := e.limits.Reserve(ctx, key, window, rule.Effect.MaxN)
		if err != nil {
			e.releaseReservations(reserved)
			return nil, fmt.Errorf("reserve limit %s: %w", key, err)
		}
		if !ok {
			e.releaseReservations(reserved)
			return nil, violationError([]policy.Rule{rule})
		}
		reserved = append(reserved, res)
	}
	return reserved, nil
}

// releaseReservations compensates a failed confirm. Runs detached from
// the request context so cancellation cannot strand tokens.
func (e *Engine) releaseReservations(reservations []kv.Reservation) {
	if len(reservations) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, res := range reservations {
		if err := e.limits.Release(ctx, res); err != nil {
			e.logger.Error("limit token release failed", "key", res.Key, "error", err)
		}
	}
}

// syncCalendar pushes the appointment to the external calendar in the
// background, waiting briefly so fast syncs show up in the response.
func (e *Engine) syncCalendar(ctx context.Context, appt *Appointment, result *models.ConfirmHoldResult) {
	if e.calendar == nil {
		return
	}
	done := make(chan string, 1)
	go func() {
		syncCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), calendarSyncLimit)
		defer cancel()
		eventID, err := e.calendar.CreateEvent(syncCtx, appt)
		if err != nil {
			e.logger.Warn("calendar sync failed", "appointment_id", appt.ID, "error", err)
			close(done)
			return
		}
		if err := e.appts.SetCalendarEvent(syncCtx, appt.ID, eventID); err != nil {
			e.logger.Warn("calendar event id persist failed", "appointment_id", appt.ID, "error", err)
		}
		done <- eventID
	}()

	select {
	case eventID, ok := <-done:
		if ok && eventID != "" {
			result.CalendarSynced = true
			result.CalendarEvents = []string{eventID}
		}
	case <-time.After(calendarSyncWait):
		// Sync continues in the background; the row gets the event id.
	}
}
