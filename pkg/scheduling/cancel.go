package scheduling

import (
	"context"
	"log/slog"
)

// CancelInput identifies the appointment to cancel. PatientID, when
// set, must match the appointment owner; a mismatch is reported as
// not-found so one patient cannot probe another's bookings.
type CancelInput struct {
	ClinicID      string
	AppointmentID string
	PatientID     string
}

// CancelAppointment marks an appointment cancelled. Cancelling frees
// the room for re-suggestion immediately. Cancelling an already
// cancelled appointment is an invalid request, not a no-op, so the
// caller can tell the patient what actually happened.
func (e *Engine) CancelAppointment(ctx context.Context, input CancelInput) error {
	if input.AppointmentID == "" {
		return &InvalidRequestError{Reason: "appointment_id is required"}
	}

	appt, err := e.appts.ByID(ctx, input.AppointmentID)
	if err != nil {
		return err
	}
	if input.ClinicID != "" && appt.ClinicID != input.ClinicID {
		return ErrAppointmentNotFound
	}
	if input.PatientID != "" && appt.PatientID != input.PatientID {
		return ErrAppointmentNotFound
	}
	if appt.Status == "cancelled" {
		return &InvalidRequestError{Reason: "appointment is already cancelled"}
	}

	if err := e.appts.Cancel(ctx, input.AppointmentID); err != nil {
		return err
	}
	e.logger.Info("appointment cancelled",
		slog.String("appointment_id", input.AppointmentID),
		slog.String("clinic_id", appt.ClinicID),
		slog.String("doctor_id", appt.DoctorID))
	return nil
}
