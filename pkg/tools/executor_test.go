package tools

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/llm"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/scheduling"
)

var slotStart = time.Date(2025, 11, 25, 11, 0, 0, 0, time.UTC)

func toolClinic() models.ClinicProfile {
	return models.ClinicProfile{
		ClinicID: "c1",
		Name:     "Clinica Central",
		Timezone: "UTC",
		Services: []models.Service{
			{ID: "S1", Name: "Consultation", DurationMinutes: 60, Price: 850, Currency: "MXN"},
			{ID: "S2", Name: "Cleaning", DurationMinutes: 30, Price: 500, Currency: "MXN"},
		},
		Doctors: []models.Doctor{
			{ID: "doc-shtern", Name: "Dr. Shtern", ServiceIDs: []string{"S1"}},
			{ID: "doc-dan", Name: "Dr. Dan", ServiceIDs: []string{"S1", "S2"}},
		},
		ServiceAliases: map[string]string{"limpieza": "S2"},
	}
}

type fakeScheduler struct {
	slots      []models.Slot
	suggestErr error
	confirmErr error
	cancelErr  error

	suggestIn *models.SuggestSlotsInput
	holds     []models.HoldSlotInput
	confirms  []models.ConfirmHoldInput
	cancels   []scheduling.CancelInput
}

func (s *fakeScheduler) SuggestSlots(_ context.Context, input models.SuggestSlotsInput) (*models.SuggestSlotsResult, error) {
	s.suggestIn = &input
	if s.suggestErr != nil {
		return nil, s.suggestErr
	}
	return &models.SuggestSlotsResult{Slots: s.slots}, nil
}

func (s *fakeScheduler) HoldSlot(_ context.Context, input models.HoldSlotInput) (*models.HoldSlotResult, error) {
	s.holds = append(s.holds, input)
	return &models.HoldSlotResult{HoldID: "h1", ExpiresAt: slotStart}, nil
}

func (s *fakeScheduler) ConfirmHold(_ context.Context, input models.ConfirmHoldInput) (*models.ConfirmHoldResult, error) {
	if s.confirmErr != nil {
		return nil, s.confirmErr
	}
	s.confirms = append(s.confirms, input)
	return &models.ConfirmHoldResult{AppointmentID: "a1", CalendarSynced: true}, nil
}

func (s *fakeScheduler) CancelAppointment(_ context.Context, input scheduling.CancelInput) error {
	if s.cancelErr != nil {
		return s.cancelErr
	}
	s.cancels = append(s.cancels, input)
	return nil
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{slots: []models.Slot{{
		DoctorID:  "doc-shtern",
		RoomID:    "r1",
		ServiceID: "S1",
		StartTime: slotStart,
		EndTime:   slotStart.Add(time.Hour),
		Score:     80,
	}}}
}

func newExec(sched Scheduler, block models.ConstraintBlock, opts ...ExecutorOption) *Executor {
	return NewExecutor(sched, ToolContext{
		ClinicID:    "c1",
		Phone:       "+5215550001",
		SessionID:   "sess-1",
		PatientID:   "p1",
		Language:    lang.English,
		Clinic:      toolClinic(),
		Constraints: block,
	}, opts...)
}

func runTool(t *testing.T, e *Executor, name string, args map[string]any) (string, error) {
	t.Helper()
	return e.Run(context.Background(), llm.ToolCall{ID: "call-1", Name: name, Arguments: args})
}

func checkArgs() map[string]any {
	return map[string]any{"service_name": "Consultation", "preferred_date": "2025-11-25"}
}

func TestRun_CheckAvailability(t *testing.T) {
	sched := newFakeScheduler()
	e := newExec(sched, models.ConstraintBlock{})

	body, err := runTool(t, e, ToolCheckAvailability, checkArgs())
	require.NoError(t, err)
	assert.Contains(t, body, "11:00")

	require.NotNil(t, sched.suggestIn)
	assert.Equal(t, "S1", sched.suggestIn.ServiceID)
	assert.Equal(t, "p1", sched.suggestIn.PatientID)
	assert.Equal(t, time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC), sched.suggestIn.DateFrom)
	assert.Equal(t, time.Date(2025, 11, 26, 0, 0, 0, 0, time.UTC), sched.suggestIn.DateTo)

	assert.Equal(t, []string{ToolCheckAvailability}, e.Stats().Called)
	require.Len(t, e.Audit(), 1)
	assert.True(t, e.Audit()[0].OK)
}

func TestRun_CallBudgetExhausted(t *testing.T) {
	e := newExec(newFakeScheduler(), models.ConstraintBlock{}, WithCallBudget(1))

	_, err := runTool(t, e, ToolGetServices, nil)
	require.NoError(t, err)

	_, err = runTool(t, e, ToolGetServices, nil)
	require.ErrorContains(t, err, "budget")
	assert.False(t, e.Stats().HallucinationBlocked)
}

func TestRun_ExcludedDoctorBlockedWithoutHallucinationFlag(t *testing.T) {
	sched := newFakeScheduler()
	block := models.ConstraintBlock{ExcludedDoctors: []string{"dan"}}
	e := newExec(sched, block)

	args := checkArgs()
	args["doctor_id"] = "Dr. Dan"
	_, err := runTool(t, e, ToolCheckAvailability, args)
	require.ErrorContains(t, err, "excluded")

	// Constraint-based block, not an invented doctor.
	assert.False(t, e.Stats().HallucinationBlocked)
	assert.Nil(t, sched.suggestIn)
	require.Len(t, e.Audit(), 1)
	assert.NotEmpty(t, e.Audit()[0].BlockedReason)
}

func TestRun_UnknownDoctorIsHallucination(t *testing.T) {
	e := newExec(newFakeScheduler(), models.ConstraintBlock{})

	args := checkArgs()
	args["doctor_id"] = "Dr. Housenheimer"
	_, err := runTool(t, e, ToolCheckAvailability, args)
	require.Error(t, err)
	assert.True(t, e.Stats().HallucinationBlocked)
}

func TestRun_DesiredServiceContradictionBlocked(t *testing.T) {
	sched := newFakeScheduler()
	e := newExec(sched, models.ConstraintBlock{DesiredService: "Cleaning"})

	_, err := runTool(t, e, ToolCheckAvailability, checkArgs())
	require.ErrorContains(t, err, "Cleaning")
	assert.False(t, e.Stats().HallucinationBlocked)
	assert.Nil(t, sched.suggestIn)
}

func TestRun_TimeWindowCorrected(t *testing.T) {
	sched := newFakeScheduler()
	block := models.ConstraintBlock{TimeWindow: models.TimeWindow{
		Start: "2025-11-25", End: "2025-11-26", Display: "tomorrow",
	}}
	e := newExec(sched, block)

	args := checkArgs()
	args["preferred_date"] = "2025-12-01"
	body, err := runTool(t, e, ToolCheckAvailability, args)
	require.NoError(t, err)
	assert.Contains(t, body, "tomorrow")

	require.NotNil(t, sched.suggestIn)
	assert.Equal(t, time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC), sched.suggestIn.DateFrom)
	assert.Equal(t, time.Date(2025, 11, 27, 0, 0, 0, 0, time.UTC), sched.suggestIn.DateTo)
}

func TestRun_BookRequiresAvailabilityCheck(t *testing.T) {
	e := newExec(newFakeScheduler(), models.ConstraintBlock{})

	_, err := runTool(t, e, ToolBookAppointment, map[string]any{
		"service_id": "S1", "datetime_str": "2025-11-25T11:00:00",
	})
	require.ErrorContains(t, err, "check_availability")
	assert.True(t, e.Stats().HallucinationBlocked)
}

func TestRun_BookOfferedSlot(t *testing.T) {
	sched := newFakeScheduler()
	e := newExec(sched, models.ConstraintBlock{})

	_, err := runTool(t, e, ToolCheckAvailability, checkArgs())
	require.NoError(t, err)

	body, err := runTool(t, e, ToolBookAppointment, map[string]any{
		"service_id": "S1", "datetime_str": "2025-11-25T11:00:00",
	})
	require.NoError(t, err)
	assert.Contains(t, body, `"appointment_id":"a1"`)
	assert.Contains(t, body, "Dr. Shtern")

	require.Len(t, sched.holds, 1)
	assert.Equal(t, "sess-1:doc-shtern:"+strconv.FormatInt(slotStart.Unix(), 10), sched.holds[0].ClientHoldID)
	require.Len(t, sched.confirms, 1)
	assert.Equal(t, "h1", sched.confirms[0].HoldID)
	assert.False(t, e.Stats().HallucinationBlocked)
}

func TestRun_BookInventedTimeBlocked(t *testing.T) {
	sched := newFakeScheduler()
	e := newExec(sched, models.ConstraintBlock{})

	_, err := runTool(t, e, ToolCheckAvailability, checkArgs())
	require.NoError(t, err)

	_, err = runTool(t, e, ToolBookAppointment, map[string]any{
		"service_id": "S1", "datetime_str": "2025-11-25T13:00:00",
	})
	require.ErrorContains(t, err, "not among the offered slots")
	assert.True(t, e.Stats().HallucinationBlocked)
	assert.Empty(t, sched.holds)
}

func TestRun_RescheduleCancelsOldAfterConfirm(t *testing.T) {
	sched := newFakeScheduler()
	e := newExec(sched, models.ConstraintBlock{})

	_, err := runTool(t, e, ToolCheckAvailability, checkArgs())
	require.NoError(t, err)

	body, err := runTool(t, e, ToolReschedule, map[string]any{
		"appointment_id": "a-old", "datetime_str": "2025-11-25T11:00:00",
	})
	require.NoError(t, err)
	assert.Contains(t, body, `"cancelled_appointment_id":"a-old"`)

	require.Len(t, sched.confirms, 1)
	require.Len(t, sched.cancels, 1)
	assert.Equal(t, "a-old", sched.cancels[0].AppointmentID)
	assert.Equal(t, "p1", sched.cancels[0].PatientID)
}

func TestRun_RescheduleKeepsBookingWhenCancelFails(t *testing.T) {
	sched := newFakeScheduler()
	sched.cancelErr = scheduling.ErrAppointmentNotFound
	e := newExec(sched, models.ConstraintBlock{})

	_, err := runTool(t, e, ToolCheckAvailability, checkArgs())
	require.NoError(t, err)

	body, err := runTool(t, e, ToolReschedule, map[string]any{
		"appointment_id": "a-old", "datetime_str": "2025-11-25T11:00:00",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "warning")
	assert.Contains(t, body, `"appointment_id":"a1"`)
}

func TestRun_CalendarBudget(t *testing.T) {
	sched := newFakeScheduler()
	e := newExec(sched, models.ConstraintBlock{}, WithCalendarBudget(1))

	_, err := runTool(t, e, ToolCancelAppointment, map[string]any{"appointment_id": "a1"})
	require.NoError(t, err)

	_, err = runTool(t, e, ToolCancelAppointment, map[string]any{"appointment_id": "a2"})
	require.ErrorContains(t, err, "calendar call budget")
	assert.Len(t, sched.cancels, 1)
}

func TestRun_NoSlotsBecomesEscalationResult(t *testing.T) {
	sched := newFakeScheduler()
	sched.suggestErr = &scheduling.NoSlotsError{EscalationID: "esc-1"}
	e := newExec(sched, models.ConstraintBlock{})

	body, err := runTool(t, e, ToolCheckAvailability, checkArgs())
	require.NoError(t, err)
	assert.Contains(t, body, `"escalation_id":"esc-1"`)
	assert.Contains(t, body, "follow up")
	assert.Equal(t, []string{ToolCheckAvailability}, e.Stats().Called)
}

func TestRun_GetPrices(t *testing.T) {
	e := newExec(newFakeScheduler(), models.ConstraintBlock{})

	body, err := runTool(t, e, ToolGetPrices, map[string]any{"service_name": "limpieza"})
	require.NoError(t, err)
	assert.Contains(t, body, `"service_id":"S2"`)
	assert.Contains(t, body, "500")

	_, err = runTool(t, e, ToolGetPrices, map[string]any{"service_name": "hot stone massage"})
	require.Error(t, err)
	assert.True(t, e.Stats().HallucinationBlocked)
}

func TestRun_GetDoctorInfo(t *testing.T) {
	e := newExec(newFakeScheduler(), models.ConstraintBlock{})

	body, err := runTool(t, e, ToolGetDoctorInfo, map[string]any{"doctor_name": "shtern"})
	require.NoError(t, err)
	assert.Contains(t, body, "Dr. Shtern")
	assert.Contains(t, body, "Consultation")
	assert.NotContains(t, body, "Dr. Dan")
}

func TestRun_UnknownToolRejected(t *testing.T) {
	e := newExec(newFakeScheduler(), models.ConstraintBlock{})

	_, err := runTool(t, e, "delete_all_appointments", nil)
	require.ErrorContains(t, err, "unknown tool")
	assert.True(t, e.Stats().HallucinationBlocked)
}

func TestValidateResponse(t *testing.T) {
	e := newExec(newFakeScheduler(), models.ConstraintBlock{})

	assert.True(t, e.ValidateResponse("We can see you at 11:00 tomorrow."))
	assert.True(t, e.Stats().ResponseFlagged)

	e = newExec(newFakeScheduler(), models.ConstraintBlock{})
	assert.True(t, e.ValidateResponse("A consultation costs $850."))
	assert.False(t, e.ValidateResponse("We offer consultations and cleanings."))

	// Backed by a successful availability check.
	e = newExec(newFakeScheduler(), models.ConstraintBlock{})
	_, err := runTool(t, e, ToolCheckAvailability, checkArgs())
	require.NoError(t, err)
	assert.False(t, e.ValidateResponse("We can see you at 11:00 tomorrow."))

	// Backed by a price lookup.
	e = newExec(newFakeScheduler(), models.ConstraintBlock{})
	_, err = runTool(t, e, ToolGetPrices, map[string]any{"service_name": "Consultation"})
	require.NoError(t, err)
	assert.False(t, e.ValidateResponse("A consultation costs 850 MXN."))
}
