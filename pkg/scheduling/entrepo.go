package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mediqo/mediqo/ent"
	entappt "github.com/mediqo/mediqo/ent/appointment"
	entesc "github.com/mediqo/mediqo/ent/escalation"
	enthold "github.com/mediqo/mediqo/ent/hold"
	"github.com/mediqo/mediqo/pkg/models"
)

// EntHoldRepo implements HoldRepo on the holds table.
type EntHoldRepo struct {
	client *ent.Client
}

// NewEntHoldRepo wraps an ent client.
func NewEntHoldRepo(client *ent.Client) *EntHoldRepo {
	return &EntHoldRepo{client: client}
}

func (r *EntHoldRepo) Create(ctx context.Context, h *Hold) error {
	err := r.client.Hold.Create().
		SetID(h.ID).
		SetClientHoldID(h.ClientHoldID).
		SetClinicID(h.ClinicID).
		SetPatientID(h.PatientID).
		SetDoctorID(h.DoctorID).
		SetRoomID(h.RoomID).
		SetServiceID(h.ServiceID).
		SetStartTime(h.StartTime).
		SetEndTime(h.EndTime).
		SetScore(h.Score).
		SetExpiresAt(h.ExpiresAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create hold: %w", err)
	}
	return nil
}

func (r *EntHoldRepo) ByID(ctx context.Context, id string) (*Hold, error) {
	row, err := r.client.Hold.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrHoldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get hold %s: %w", id, err)
	}
	return holdFromRow(row), nil
}

func (r *EntHoldRepo) ByClientID(ctx context.Context, clientHoldID string) (*Hold, error) {
	row, err := r.client.Hold.Query().
		Where(enthold.ClientHoldID(clientHoldID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrHoldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get hold by client id: %w", err)
	}
	return holdFromRow(row), nil
}

func (r *EntHoldRepo) Delete(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Hold.Delete().
		Where(enthold.ID(id)).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("delete hold %s: %w", id, err)
	}
	return n > 0, nil
}

func (r *EntHoldRepo) ActiveOverlap(ctx context.Context, roomID string, start, end, now time.Time) (bool, error) {
	exists, err := r.client.Hold.Query().
		Where(
			enthold.RoomID(roomID),
			enthold.StartTimeLT(end),
			enthold.EndTimeGT(start),
			enthold.ExpiresAtGT(now),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("hold overlap query: %w", err)
	}
	return exists, nil
}

func holdFromRow(row *ent.Hold) *Hold {
	return &Hold{
		ID:           row.ID,
		ClientHoldID: row.ClientHoldID,
		ClinicID:     row.ClinicID,
		PatientID:    row.PatientID,
		DoctorID:     row.DoctorID,
		RoomID:       row.RoomID,
		ServiceID:    row.ServiceID,
		StartTime:    row.StartTime,
		EndTime:      row.EndTime,
		Score:        row.Score,
		ExpiresAt:    row.ExpiresAt,
		CreatedAt:    row.CreatedAt,
	}
}

// EntAppointmentRepo implements AppointmentRepo on the appointments
// table.
type EntAppointmentRepo struct {
	client *ent.Client
}

// NewEntAppointmentRepo wraps an ent client.
func NewEntAppointmentRepo(client *ent.Client) *EntAppointmentRepo {
	return &EntAppointmentRepo{client: client}
}

func (r *EntAppointmentRepo) Insert(ctx context.Context, a *Appointment) error {
	builder := r.client.Appointment.Create().
		SetID(a.ID).
		SetClinicID(a.ClinicID).
		SetPatientID(a.PatientID).
		SetDoctorID(a.DoctorID).
		SetRoomID(a.RoomID).
		SetServiceID(a.ServiceID).
		SetStartTime(a.StartTime).
		SetEndTime(a.EndTime)
	if a.PolicySnapshotID != "" {
		builder.SetPolicySnapshotID(a.PolicySnapshotID).
			SetPolicyVersion(a.PolicyVersion).
			SetPolicyBundleSha256(a.PolicySHA256)
	}
	if err := builder.Exec(ctx); err != nil {
		// The (room, tstzrange) exclusion constraint fires here when a
		// racing confirm won the room.
		if ent.IsConstraintError(err) {
			return ErrSlotNotAvailable
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *EntAppointmentRepo) ByID(ctx context.Context, id string) (*Appointment, error) {
	row, err := r.client.Appointment.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment %s: %w", id, err)
	}
	return apptFromRow(row), nil
}

func (r *EntAppointmentRepo) Cancel(ctx context.Context, id string) error {
	if err := r.client.Appointment.UpdateOneID(id).
		SetStatus(entappt.StatusCancelled).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("cancel appointment %s: %w", id, err)
	}
	return nil
}

func (r *EntAppointmentRepo) Overlap(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	exists, err := r.client.Appointment.Query().
		Where(
			entappt.RoomID(roomID),
			entappt.StartTimeLT(end),
			entappt.EndTimeGT(start),
			entappt.StatusNEQ(entappt.StatusCancelled),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("appointment overlap query: %w", err)
	}
	return exists, nil
}

func (r *EntAppointmentRepo) ListBetween(ctx context.Context, clinicID string, from, to time.Time) ([]*Appointment, error) {
	rows, err := r.client.Appointment.Query().
		Where(
			entappt.ClinicID(clinicID),
			entappt.StartTimeGTE(from),
			entappt.StartTimeLT(to),
			entappt.StatusNEQ(entappt.StatusCancelled),
		).
		Order(ent.Asc(entappt.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	out := make([]*Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, apptFromRow(row))
	}
	return out, nil
}

func (r *EntAppointmentRepo) SetCalendarEvent(ctx context.Context, id, eventID string) error {
	if err := r.client.Appointment.UpdateOneID(id).
		SetCalendarEventID(eventID).
		Exec(ctx); err != nil {
		return fmt.Errorf("set calendar event on %s: %w", id, err)
	}
	return nil
}

func apptFromRow(row *ent.Appointment) *Appointment {
	a := &Appointment{
		ID:               row.ID,
		ClinicID:         row.ClinicID,
		PatientID:        row.PatientID,
		DoctorID:         row.DoctorID,
		RoomID:           row.RoomID,
		ServiceID:        row.ServiceID,
		StartTime:        row.StartTime,
		EndTime:          row.EndTime,
		Status:           string(row.Status),
		PolicySnapshotID: row.PolicySnapshotID,
		PolicyVersion:    row.PolicyVersion,
		PolicySHA256:     row.PolicyBundleSha256,
	}
	if row.CalendarEventID != nil {
		a.CalendarEventID = *row.CalendarEventID
	}
	return a
}

// EntEscalationRepo implements EscalationRepo on the escalations
// table.
type EntEscalationRepo struct {
	client *ent.Client
}

// NewEntEscalationRepo wraps an ent client.
func NewEntEscalationRepo(client *ent.Client) *EntEscalationRepo {
	return &EntEscalationRepo{client: client}
}

func (r *EntEscalationRepo) Create(ctx context.Context, e *Escalation) error {
	err := r.client.Escalation.Create().
		SetID(e.ID).
		SetClinicID(e.ClinicID).
		SetPatientID(e.PatientID).
		SetServiceID(e.ServiceID).
		SetStatus(entesc.Status(e.Status)).
		SetReason(e.Reason).
		SetRequest(e.Request).
		SetSuggestions(suggestionMaps(e.Suggestions)).
		SetSLADeadline(e.SLADeadline).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create escalation: %w", err)
	}
	return nil
}

func (r *EntEscalationRepo) ByID(ctx context.Context, id string) (*Escalation, error) {
	row, err := r.client.Escalation.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrEscalationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get escalation %s: %w", id, err)
	}
	return escalationFromRow(row)
}

func (r *EntEscalationRepo) RecentOpen(ctx context.Context, patientID, serviceID string, since time.Time) (*Escalation, error) {
	row, err := r.client.Escalation.Query().
		Where(
			entesc.PatientID(patientID),
			entesc.ServiceID(serviceID),
			entesc.StatusEQ(entesc.StatusOpen),
			entesc.CreatedAtGTE(since),
		).
		Order(ent.Desc(entesc.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("recent escalation query: %w", err)
	}
	return escalationFromRow(row)
}

func (r *EntEscalationRepo) Update(ctx context.Context, e *Escalation) error {
	builder := r.client.Escalation.UpdateOneID(e.ID).
		SetStatus(entesc.Status(e.Status))
	if e.AssignedTo != "" {
		builder.SetAssignedTo(e.AssignedTo)
	}
	if e.Resolution != nil {
		builder.SetResolution(e.Resolution)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("update escalation %s: %w", e.ID, err)
	}
	return nil
}

// OpenForPatient reports whether the patient has any open escalation
// at this clinic. The pipeline's escalation check holds the
// conversation while staff work the queue.
func (r *EntEscalationRepo) OpenForPatient(ctx context.Context, clinicID, patientID string) (bool, error) {
	exists, err := r.client.Escalation.Query().
		Where(
			entesc.ClinicID(clinicID),
			entesc.PatientID(patientID),
			entesc.StatusEQ(entesc.StatusOpen),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("open escalation query: %w", err)
	}
	return exists, nil
}

func (r *EntEscalationRepo) ListByStatus(ctx context.Context, clinicID, status string) ([]*Escalation, error) {
	rows, err := r.client.Escalation.Query().
		Where(
			entesc.ClinicID(clinicID),
			entesc.StatusEQ(entesc.Status(status)),
		).
		Order(ent.Asc(entesc.FieldSLADeadline)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list escalations: %w", err)
	}
	out := make([]*Escalation, 0, len(rows))
	for _, row := range rows {
		esc, err := escalationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, esc)
	}
	return out, nil
}

func suggestionMaps(suggestions []models.RelaxationSuggestion) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, map[string]interface{}{
			"strategy": string(s.Strategy),
			"input":    requestPayload(s.Input),
		})
	}
	return out
}

func escalationFromRow(row *ent.Escalation) (*Escalation, error) {
	esc := &Escalation{
		ID:          row.ID,
		ClinicID:    row.ClinicID,
		PatientID:   row.PatientID,
		ServiceID:   row.ServiceID,
		Status:      string(row.Status),
		Reason:      row.Reason,
		Request:     row.Request,
		SLADeadline: row.SLADeadline,
		Resolution:  row.Resolution,
		CreatedAt:   row.CreatedAt,
	}
	if row.AssignedTo != nil {
		esc.AssignedTo = *row.AssignedTo
	}
	for _, raw := range row.Suggestions {
		suggestion, err := decodeSuggestion(raw)
		if err != nil {
			return nil, fmt.Errorf("escalation %s suggestions: %w", row.ID, err)
		}
		esc.Suggestions = append(esc.Suggestions, suggestion)
	}
	return esc, nil
}

func decodeSuggestion(raw map[string]interface{}) (models.RelaxationSuggestion, error) {
	var out models.RelaxationSuggestion
	if s, ok := raw["strategy"].(string); ok {
		out.Strategy = models.RelaxationStrategy(s)
	}
	input, err := remarshal[models.SuggestSlotsInput](raw["input"])
	if err != nil {
		return out, err
	}
	out.Input = input
	return out, nil
}

// remarshal converts a decoded JSON value into a concrete type by
// round-tripping it through the encoder.
func remarshal[T any](v any) (T, error) {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}
