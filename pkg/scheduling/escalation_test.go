package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/models"
)

func openTestEscalation(t *testing.T, f *engineFixture) *Escalation {
	t.Helper()
	input := suggestInput()
	input.DateFrom = time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)
	input.DateTo = time.Date(2025, 11, 30, 23, 0, 0, 0, time.UTC)

	var noSlots *NoSlotsError
	_, err := f.engine.SuggestSlots(context.Background(), input)
	require.ErrorAs(t, err, &noSlots)

	esc, err := f.escs.ByID(context.Background(), noSlots.EscalationID)
	require.NoError(t, err)
	return esc
}

func TestQueue_ListsOpenEscalations(t *testing.T) {
	f := newFixture(t, nil)
	esc := openTestEscalation(t, f)

	open, err := f.engine.Queue(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, esc.ID, open[0].ID)
}

func TestAssign_MarksAssigned(t *testing.T) {
	f := newFixture(t, nil)
	esc := openTestEscalation(t, f)

	updated, err := f.engine.Assign(context.Background(), esc.ID, "staff-1")
	require.NoError(t, err)
	assert.Equal(t, EscalationAssigned, updated.Status)
	assert.Equal(t, "staff-1", updated.AssignedTo)

	// Assigning twice is rejected.
	_, err = f.engine.Assign(context.Background(), esc.ID, "staff-2")
	var invalid *InvalidRequestError
	assert.ErrorAs(t, err, &invalid)
}

func TestDecline_RecordsReason(t *testing.T) {
	f := newFixture(t, nil)
	esc := openTestEscalation(t, f)

	require.NoError(t, f.engine.Decline(context.Background(), esc.ID, "patient went elsewhere"))

	declined, err := f.escs.ByID(context.Background(), esc.ID)
	require.NoError(t, err)
	assert.Equal(t, EscalationDeclined, declined.Status)
	assert.Equal(t, "patient went elsewhere", declined.Resolution["declined_reason"])

	assert.Error(t, f.engine.Decline(context.Background(), esc.ID, "again"))
}

func TestResolve_ManualSlotBooksAndCloses(t *testing.T) {
	f := newFixture(t, nil)
	esc := openTestEscalation(t, f)
	slot := testSlot()

	res, err := f.engine.Resolve(context.Background(), ResolveInput{
		EscalationID: esc.ID,
		ManualSlot:   &slot,
		ActorID:      "staff-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AppointmentID)

	closed, err := f.escs.ByID(context.Background(), esc.ID)
	require.NoError(t, err)
	assert.Equal(t, EscalationResolved, closed.Status)
	assert.Equal(t, res.AppointmentID, closed.Resolution["appointment_id"])
	assert.Equal(t, true, closed.Resolution["manual_slot"])
	assert.Equal(t, "staff-1", closed.Resolution["actor"])
	assert.Equal(t, 1, f.appts.count())
}

func TestResolve_SuggestionIndexReplaysRelaxedRequest(t *testing.T) {
	f := newFixture(t, nil)
	esc := openTestEscalation(t, f)

	// Index 0 is expanded_date_range_3d: Sunday + 3 days reaches open
	// weekdays.
	idx := 0
	res, err := f.engine.Resolve(context.Background(), ResolveInput{
		EscalationID:    esc.ID,
		SuggestionIndex: &idx,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AppointmentID)

	closed, err := f.escs.ByID(context.Background(), esc.ID)
	require.NoError(t, err)
	assert.Equal(t, EscalationResolved, closed.Status)
	assert.EqualValues(t, 0, closed.Resolution["suggestion_index"])
	assert.Equal(t, string(models.RelaxExpandRange3d), closed.Resolution["strategy"])
}

func TestResolve_RejectsBadInput(t *testing.T) {
	f := newFixture(t, nil)
	esc := openTestEscalation(t, f)

	var invalid *InvalidRequestError
	_, err := f.engine.Resolve(context.Background(), ResolveInput{EscalationID: esc.ID})
	assert.ErrorAs(t, err, &invalid)

	idx := 99
	_, err = f.engine.Resolve(context.Background(), ResolveInput{EscalationID: esc.ID, SuggestionIndex: &idx})
	assert.ErrorAs(t, err, &invalid)

	_, err = f.engine.Resolve(context.Background(), ResolveInput{EscalationID: "missing"})
	assert.ErrorIs(t, err, ErrEscalationNotFound)
}
