package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/models"
)

func TestSuggestSlots_ReturnsScoredSortedTopTen(t *testing.T) {
	f := newFixture(t, nil)

	res, err := f.engine.SuggestSlots(context.Background(), suggestInput())
	require.NoError(t, err)
	require.NotEmpty(t, res.Slots)
	assert.LessOrEqual(t, len(res.Slots), 10)

	for i, slot := range res.Slots {
		assert.Equal(t, "S1", slot.ServiceID)
		assert.Equal(t, time.Hour, slot.EndTime.Sub(slot.StartTime))
		assert.GreaterOrEqual(t, slot.StartTime.Hour(), 9)
		assert.False(t, slot.StartTime.Before(testNow), "past slots must be skipped")
		if i > 0 {
			assert.GreaterOrEqual(t, res.Slots[i-1].Score, slot.Score)
		}
	}
}

func TestSuggestSlots_ValidatesInput(t *testing.T) {
	f := newFixture(t, nil)

	input := suggestInput()
	input.ServiceID = ""
	_, err := f.engine.SuggestSlots(context.Background(), input)
	var invalid *InvalidRequestError
	assert.ErrorAs(t, err, &invalid)

	input = suggestInput()
	input.ServiceID = "unknown"
	_, err = f.engine.SuggestSlots(context.Background(), input)
	assert.ErrorAs(t, err, &invalid)
}

func TestSuggestSlots_ExcludedDoctorFiltered(t *testing.T) {
	f := newFixture(t, nil)

	input := suggestInput()
	input.Constraints.ExcludedDoctors = []string{"doc-dan"}
	res, err := f.engine.SuggestSlots(context.Background(), input)
	require.NoError(t, err)
	for _, slot := range res.Slots {
		assert.NotEqual(t, "doc-dan", slot.DoctorID)
	}
}

func TestSuggestSlots_BookedRoomFiltered(t *testing.T) {
	f := newFixture(t, nil)
	busy := &Appointment{
		ID: "a1", ClinicID: "c1", PatientID: "px", DoctorID: "doc-dan",
		RoomID: "r1", ServiceID: "S1", Status: "scheduled",
		StartTime: time.Date(2025, 11, 24, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 11, 24, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.appts.Insert(context.Background(), busy))

	res, err := f.engine.SuggestSlots(context.Background(), suggestInput())
	require.NoError(t, err)
	for _, slot := range res.Slots {
		if slot.RoomID != "r1" {
			continue
		}
		overlaps := slot.StartTime.Before(busy.EndTime) && busy.StartTime.Before(slot.EndTime)
		assert.False(t, overlaps, "slot %v overlaps booked room", slot.StartTime)
	}
}

func TestSuggestSlots_DenyRuleDropsSlots(t *testing.T) {
	active := compileTestPolicy(t, `[
		{
			"rule_id": "no-dan",
			"precedence": 10,
			"conditions": {"field": "doctor_id", "operator": "equals", "value": "doc-dan"},
			"effect": {"type": "DENY"},
			"explain_template": "Dr. Dan is not taking bookings"
		}
	]`)
	f := newFixture(t, active)

	res, err := f.engine.SuggestSlots(context.Background(), suggestInput())
	require.NoError(t, err)
	require.NotEmpty(t, res.Slots)
	for _, slot := range res.Slots {
		assert.Equal(t, "doc-shtern", slot.DoctorID)
	}
}

func TestSuggestSlots_EscalateRuleAbortsRequest(t *testing.T) {
	active := compileTestPolicy(t, `[
		{
			"rule_id": "review-new-patients",
			"precedence": 10,
			"conditions": {"field": "patient_id", "operator": "equals", "value": "p1"},
			"effect": {"type": "ESCALATE"}
		}
	]`)
	f := newFixture(t, active)

	_, err := f.engine.SuggestSlots(context.Background(), suggestInput())
	var escalated *EscalatedError
	require.ErrorAs(t, err, &escalated)
	assert.Equal(t, "review-new-patients", escalated.RuleID)

	esc, repoErr := f.escs.ByID(context.Background(), escalated.EscalationID)
	require.NoError(t, repoErr)
	assert.Equal(t, EscalationOpen, esc.Status)
	assert.Equal(t, "escalate_rule:review-new-patients", esc.Reason)
}

func TestSuggestSlots_ZeroSlotsOpensEscalation(t *testing.T) {
	f := newFixture(t, nil)

	// Sunday is a closed day; the range covers nothing else.
	input := suggestInput()
	input.DateFrom = time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)
	input.DateTo = time.Date(2025, 11, 30, 23, 0, 0, 0, time.UTC)

	_, err := f.engine.SuggestSlots(context.Background(), input)
	var noSlots *NoSlotsError
	require.ErrorAs(t, err, &noSlots)

	esc, repoErr := f.escs.ByID(context.Background(), noSlots.EscalationID)
	require.NoError(t, repoErr)
	assert.Equal(t, EscalationOpen, esc.Status)
	assert.Equal(t, "no_slots_available", esc.Reason)
	assert.Equal(t, testNow.Add(24*time.Hour), esc.SLADeadline)

	strategies := make([]models.RelaxationStrategy, 0, len(esc.Suggestions))
	for _, s := range esc.Suggestions {
		strategies = append(strategies, s.Strategy)
	}
	assert.Equal(t, []models.RelaxationStrategy{
		models.RelaxExpandRange3d,
		models.RelaxDropTimeOfDay,
		models.RelaxAnyDoctor,
		models.RelaxExpandRange7d,
		models.RelaxFully,
	}, strategies)
}

func TestSuggestSlots_EscalationDeduplicatedWithin24h(t *testing.T) {
	f := newFixture(t, nil)

	input := suggestInput()
	input.DateFrom = time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)
	input.DateTo = time.Date(2025, 11, 30, 23, 0, 0, 0, time.UTC)

	var first, second *NoSlotsError
	_, err := f.engine.SuggestSlots(context.Background(), input)
	require.ErrorAs(t, err, &first)
	_, err = f.engine.SuggestSlots(context.Background(), input)
	require.ErrorAs(t, err, &second)

	assert.Equal(t, first.EscalationID, second.EscalationID)
	open, err := f.escs.ListByStatus(context.Background(), "c1", EscalationOpen)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestSuggestSlots_AdjustScoreAndWarn(t *testing.T) {
	active := compileTestPolicy(t, `[
		{
			"rule_id": "boost-shtern-morning",
			"precedence": 10,
			"conditions": {"all": [
				{"field": "doctor_id", "operator": "equals", "value": "doc-shtern"},
				{"field": "hour", "operator": "less_than", "value": 12}
			]},
			"effect": {"type": "ADJUST_SCORE", "delta": 500}
		},
		{
			"rule_id": "warn-late",
			"precedence": 20,
			"conditions": {"field": "hour", "operator": "greater_or_equal", "value": 17},
			"effect": {"type": "WARN", "message": "close to closing time"}
		}
	]`)
	f := newFixture(t, active)

	res, err := f.engine.SuggestSlots(context.Background(), suggestInput())
	require.NoError(t, err)
	require.NotEmpty(t, res.Slots)

	// The outsized delta pins boosted slots to the top.
	top := res.Slots[0]
	assert.Equal(t, "doc-shtern", top.DoctorID)
	assert.Less(t, top.StartTime.Hour(), 12)
	assert.Greater(t, top.Score, 100.0)
}

func TestSuggestSlots_PreferredDoctorScoresHigher(t *testing.T) {
	f := newFixture(t, nil)

	input := suggestInput()
	input.Preferences.PreferredDoctorID = "doc-dan"
	res, err := f.engine.SuggestSlots(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, res.Slots)
	assert.Equal(t, "doc-dan", res.Slots[0].DoctorID)
}

func TestSuggestSlots_HourBoundsRespected(t *testing.T) {
	f := newFixture(t, nil)

	input := suggestInput()
	input.Constraints.EarliestHour = 14
	input.Constraints.LatestHour = 16
	res, err := f.engine.SuggestSlots(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, res.Slots)
	for _, slot := range res.Slots {
		assert.GreaterOrEqual(t, slot.StartTime.Hour(), 14)
		assert.Less(t, slot.StartTime.Hour(), 16)
	}
}

func TestNormalizeSettings(t *testing.T) {
	s := normalizeSettings(models.SchedulingSettings{})
	assert.Equal(t, 30, s.GridMinutes)
	sum := s.WeightLeastBusy + s.WeightPackSchedule + s.WeightPreferredRoom +
		s.WeightTimeOfDay + s.WeightPreferredDoctor
	assert.InDelta(t, 1.0, sum, 1e-9)

	s = normalizeSettings(models.SchedulingSettings{
		GridMinutes: 15, WeightLeastBusy: 2, WeightPackSchedule: 2,
	})
	assert.InDelta(t, 0.5, s.WeightLeastBusy, 1e-9)
	assert.InDelta(t, 0.5, s.WeightPackSchedule, 1e-9)
	assert.Zero(t, s.WeightPreferredRoom)
}

func TestSettingsCache(t *testing.T) {
	f := newFixture(t, nil)
	profile := testClinic()

	first := f.engine.settingsFor(profile)
	profile.Scheduling.GridMinutes = 10
	// Within the TTL the cached normalization wins.
	assert.Equal(t, first, f.engine.settingsFor(profile))

	f.engine.FlushSettings()
	assert.Equal(t, 10, f.engine.settingsFor(profile).GridMinutes)
}
