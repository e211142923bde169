package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/models"
)

func testSlot() models.Slot {
	return models.Slot{
		DoctorID:  "doc-shtern",
		RoomID:    "r1",
		ServiceID: "S1",
		StartTime: time.Date(2025, 11, 25, 11, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 11, 25, 12, 0, 0, 0, time.UTC),
		Score:     72,
	}
}

func holdInput() models.HoldSlotInput {
	return models.HoldSlotInput{
		ClinicID:     "c1",
		PatientID:    "p1",
		ServiceID:    "S1",
		ClientHoldID: "client-1",
		Slot:         testSlot(),
	}
}

func TestHoldSlot_CreatesWithTTL(t *testing.T) {
	f := newFixture(t, nil)

	res, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)
	assert.NotEmpty(t, res.HoldID)
	assert.Equal(t, testNow.Add(5*time.Minute), res.ExpiresAt)
	assert.False(t, res.Reused)

	hold, err := f.holds.ByID(context.Background(), res.HoldID)
	require.NoError(t, err)
	assert.Equal(t, "client-1", hold.ClientHoldID)
	assert.Equal(t, 72.0, hold.Score)
}

func TestHoldSlot_IdempotentOnClientHoldID(t *testing.T) {
	f := newFixture(t, nil)

	first, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)
	second, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)

	assert.Equal(t, first.HoldID, second.HoldID)
	assert.True(t, second.Reused)
	assert.Len(t, f.holds.rows, 1)
}

func TestHoldSlot_ExpiredHoldReplaced(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.holds.Create(context.Background(), &Hold{
		ID: "h-old", ClientHoldID: "client-1", ClinicID: "c1", PatientID: "p1",
		DoctorID: "doc-shtern", RoomID: "r1", ServiceID: "S1",
		StartTime: testSlot().StartTime, EndTime: testSlot().EndTime,
		ExpiresAt: testNow.Add(-time.Minute),
	}))

	res, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)
	assert.NotEqual(t, "h-old", res.HoldID)
	assert.False(t, res.Reused)
	_, err = f.holds.ByID(context.Background(), "h-old")
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestHoldSlot_RoomTakenFails(t *testing.T) {
	f := newFixture(t, nil)
	slot := testSlot()
	require.NoError(t, f.appts.Insert(context.Background(), &Appointment{
		ID: "a1", ClinicID: "c1", PatientID: "px", DoctorID: "doc-dan",
		RoomID: slot.RoomID, ServiceID: "S1", Status: "scheduled",
		StartTime: slot.StartTime, EndTime: slot.EndTime,
	}))

	_, err := f.engine.HoldSlot(context.Background(), holdInput())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestConfirmHold_StampsPolicyAndDeletesHold(t *testing.T) {
	active := compileTestPolicy(t, `[]`)
	f := newFixture(t, active)

	held, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)

	res, err := f.engine.ConfirmHold(context.Background(), models.ConfirmHoldInput{
		HoldID:    held.HoldID,
		PatientID: "p1",
		ServiceID: "S1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AppointmentID)
	assert.Equal(t, 3, res.PolicyVersion)
	assert.Equal(t, active.Compiled.Digest, res.PolicySHA256)

	appt := f.appts.rows[res.AppointmentID]
	require.NotNil(t, appt)
	assert.Equal(t, "snap-1", appt.PolicySnapshotID)
	assert.Equal(t, "scheduled", appt.Status)

	_, err = f.holds.ByID(context.Background(), held.HoldID)
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestConfirmHold_SecondConfirmFails(t *testing.T) {
	f := newFixture(t, nil)

	held, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)

	input := models.ConfirmHoldInput{HoldID: held.HoldID, PatientID: "p1", ServiceID: "S1"}
	_, err = f.engine.ConfirmHold(context.Background(), input)
	require.NoError(t, err)

	// The hold was deleted with the first confirm.
	_, err = f.engine.ConfirmHold(context.Background(), input)
	assert.ErrorIs(t, err, ErrHoldNotFound)
	assert.Equal(t, 1, f.appts.count())
}

func TestConfirmHold_ExpiredHold(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.holds.Create(context.Background(), &Hold{
		ID: "h1", ClientHoldID: "c-h1", ClinicID: "c1", PatientID: "p1",
		DoctorID: "doc-shtern", RoomID: "r1", ServiceID: "S1",
		StartTime: testSlot().StartTime, EndTime: testSlot().EndTime,
		ExpiresAt: testNow.Add(-time.Second),
	}))

	_, err := f.engine.ConfirmHold(context.Background(), models.ConfirmHoldInput{HoldID: "h1", PatientID: "p1"})
	assert.ErrorIs(t, err, ErrHoldExpired)
}

func TestConfirmHold_ForeignPatientLooksAbsent(t *testing.T) {
	f := newFixture(t, nil)
	held, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)

	_, err = f.engine.ConfirmHold(context.Background(), models.ConfirmHoldInput{
		HoldID:    held.HoldID,
		PatientID: "someone-else",
	})
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestConfirmHold_LimitOccurrenceBlocked(t *testing.T) {
	active := compileTestPolicy(t, `[
		{
			"rule_id": "cap-clinic-daily",
			"precedence": 10,
			"conditions": {"field": "clinic_id", "operator": "equals", "value": "c1"},
			"effect": {"type": "LIMIT_OCCURRENCE", "key": "appts:{clinic_id}", "window_seconds": 86400, "max_n": 5},
			"explain_template": "the clinic is fully booked for today"
		}
	]`)
	f := newFixture(t, active)
	f.limiter.denyKeys["appts:c1"] = true

	held, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)

	_, err = f.engine.ConfirmHold(context.Background(), models.ConfirmHoldInput{
		HoldID: held.HoldID, PatientID: "p1", ServiceID: "S1",
	})
	var violation *PolicyViolationError
	require.ErrorAs(t, err, &violation)
	assert.Contains(t, violation.Messages, "the clinic is fully booked for today")
	assert.Equal(t, []string{"cap-clinic-daily"}, violation.RuleIDs)

	// No appointment, no stranded tokens.
	assert.Zero(t, f.appts.count())
	assert.Zero(t, f.limiter.outstanding())
}

func TestConfirmHold_InsertFailureReleasesTokens(t *testing.T) {
	active := compileTestPolicy(t, `[
		{
			"rule_id": "cap-clinic-daily",
			"precedence": 10,
			"conditions": {"field": "clinic_id", "operator": "equals", "value": "c1"},
			"effect": {"type": "LIMIT_OCCURRENCE", "key": "appts:{clinic_id}", "window_seconds": 86400, "max_n": 5}
		}
	]`)
	f := newFixture(t, active)
	f.appts.failInsert = errors.New("db down")

	held, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)

	_, err = f.engine.ConfirmHold(context.Background(), models.ConfirmHoldInput{
		HoldID: held.HoldID, PatientID: "p1", ServiceID: "S1",
	})
	require.Error(t, err)
	assert.Equal(t, 1, len(f.limiter.reserved))
	assert.Zero(t, f.limiter.outstanding())
}

func TestConfirmHold_DenyRuleAtConfirm(t *testing.T) {
	active := compileTestPolicy(t, `[
		{
			"rule_id": "no-shtern",
			"precedence": 10,
			"conditions": {"field": "doctor_id", "operator": "equals", "value": "doc-shtern"},
			"effect": {"type": "DENY"},
			"explain_template": "Dr. Shtern is no longer available"
		}
	]`)
	f := newFixture(t, nil)
	held, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)

	// Policy changed between hold and confirm.
	f.polices.active = active

	_, err = f.engine.ConfirmHold(context.Background(), models.ConfirmHoldInput{
		HoldID: held.HoldID, PatientID: "p1", ServiceID: "S1",
	})
	var violation *PolicyViolationError
	require.ErrorAs(t, err, &violation)
	assert.Contains(t, violation.Messages, "Dr. Shtern is no longer available")
	assert.Zero(t, f.appts.count())
}

func TestConfirmHold_CalendarSyncReported(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.calendar = &stubCalendar{eventID: "evt-1"}

	held, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)

	res, err := f.engine.ConfirmHold(context.Background(), models.ConfirmHoldInput{
		HoldID: held.HoldID, PatientID: "p1", ServiceID: "S1",
	})
	require.NoError(t, err)
	assert.True(t, res.CalendarSynced)
	assert.Equal(t, []string{"evt-1"}, res.CalendarEvents)

	assert.Eventually(t, func() bool {
		f.appts.mu.Lock()
		defer f.appts.mu.Unlock()
		return f.appts.calendar[res.AppointmentID] == "evt-1"
	}, time.Second, 10*time.Millisecond)
}

func TestConfirmHold_CalendarFailureDoesNotFailConfirm(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.calendar = &stubCalendar{err: errors.New("calendar 503")}

	held, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)

	res, err := f.engine.ConfirmHold(context.Background(), models.ConfirmHoldInput{
		HoldID: held.HoldID, PatientID: "p1", ServiceID: "S1",
	})
	require.NoError(t, err)
	assert.False(t, res.CalendarSynced)
	assert.Equal(t, 1, f.appts.count())
}
