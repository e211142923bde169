package scheduling

import (
	"context"
	"fmt"

	"github.com/mediqo/mediqo/pkg/models"
)

// Queue lists a clinic's open escalations, oldest SLA first as the
// repo orders them.
func (e *Engine) Queue(ctx context.Context, clinicID string) ([]*Escalation, error) {
	return e.escalations.ListByStatus(ctx, clinicID, EscalationOpen)
}

// Assign marks an open escalation as being worked by a staff member.
func (e *Engine) Assign(ctx context.Context, escalationID, assignee string) (*Escalation, error) {
	esc, err := e.escalations.ByID(ctx, escalationID)
	if err != nil {
		return nil, err
	}
	if esc.Status != EscalationOpen {
		return nil, &InvalidRequestError{Reason: fmt.Sprintf("escalation is %s, not open", esc.Status)}
	}
	esc.Status = EscalationAssigned
	esc.AssignedTo = assignee
	if err := e.escalations.Update(ctx, esc); err != nil {
		return nil, fmt.Errorf("assign escalation: %w", err)
	}
	return esc, nil
}

// ResolveInput picks either a relaxation suggestion to replay or a
// manual slot staff chose themselves.
type ResolveInput struct {
	EscalationID    string
	SuggestionIndex *int
	ManualSlot      *models.Slot
	ActorID         string
}

// Resolve drives a chosen slot through the normal hold → confirm path
// and closes the escalation with the resulting appointment.
func (e *Engine) Resolve(ctx context.Context, input ResolveInput) (*models.ConfirmHoldResult, error) {
	esc, err := e.escalations.ByID(ctx, input.EscalationID)
	if err != nil {
		return nil, err
	}
	if esc.Status != EscalationOpen && esc.Status != EscalationAssigned {
		return nil, &InvalidRequestError{Reason: fmt.Sprintf("escalation is %s", esc.Status)}
	}

	slot, resolution, err := e.pickSlot(ctx, esc, input)
	if err != nil {
		return nil, err
	}

	held, err := e.HoldSlot(ctx, models.HoldSlotInput{
		ClinicID:     esc.ClinicID,
		PatientID:    esc.PatientID,
		ServiceID:    slot.ServiceID,
		ClientHoldID: "escalation:" + esc.ID,
		Slot:         slot,
	})
	if err != nil {
		return nil, err
	}
	confirmed, err := e.ConfirmHold(ctx, models.ConfirmHoldInput{
		HoldID:    held.HoldID,
		PatientID: esc.PatientID,
		ServiceID: slot.ServiceID,
	})
	if err != nil {
		return nil, err
	}

	resolution["appointment_id"] = confirmed.AppointmentID
	if input.ActorID != "" {
		resolution["actor"] = input.ActorID
	}
	esc.Status = EscalationResolved
	esc.Resolution = resolution
	if err := e.escalations.Update(ctx, esc); err != nil {
		return nil, fmt.Errorf("close escalation: %w", err)
	}
	if e.notifier != nil {
		e.notifier.EscalationClosed(ctx, esc)
	}
	return confirmed, nil
}

// pickSlot turns the resolve input into a concrete slot: a manual slot
// is used verbatim, a suggestion index replays its relaxed request and
// takes the best result.
func (e *Engine) pickSlot(ctx context.Context, esc *Escalation, input ResolveInput) (models.Slot, map[string]any, error) {
	if input.ManualSlot != nil {
		slot := *input.ManualSlot
		if slot.ServiceID == "" {
			slot.ServiceID = esc.ServiceID
		}
		return slot, map[string]any{"manual_slot": true}, nil
	}
	if input.SuggestionIndex == nil {
		return models.Slot{}, nil, &InvalidRequestError{Reason: "suggestion_index or manual_slot is required"}
	}
	idx := *input.SuggestionIndex
	if idx < 0 || idx >= len(esc.Suggestions) {
		return models.Slot{}, nil, &InvalidRequestError{Reason: fmt.Sprintf("suggestion index %d out of range", idx)}
	}
	suggestion := esc.Suggestions[idx]
	result, err := e.SuggestSlots(ctx, suggestion.Input)
	if err != nil {
		return models.Slot{}, nil, err
	}
	return result.Slots[0], map[string]any{
		"suggestion_index": idx,
		"strategy":         string(suggestion.Strategy),
	}, nil
}

// Decline closes an escalation without booking, recording the reason.
func (e *Engine) Decline(ctx context.Context, escalationID, reason string) error {
	esc, err := e.escalations.ByID(ctx, escalationID)
	if err != nil {
		return err
	}
	if esc.Status == EscalationResolved || esc.Status == EscalationDeclined {
		return &InvalidRequestError{Reason: fmt.Sprintf("escalation is already %s", esc.Status)}
	}
	esc.Status = EscalationDeclined
	esc.Resolution = map[string]any{"declined_reason": reason}
	if err := e.escalations.Update(ctx, esc); err != nil {
		return fmt.Errorf("decline escalation: %w", err)
	}
	if e.notifier != nil {
		e.notifier.EscalationClosed(ctx, esc)
	}
	return nil
}
