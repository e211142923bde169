package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/scheduling"
)

func newGetRequest(t *testing.T, path string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder()
}

func TestSuggestSlots_ZeroSlotsReturnsEscalationID(t *testing.T) {
	f := newAPIFixture(t)
	f.sched.err = &scheduling.NoSlotsError{EscalationID: "esc-1"}

	rec := f.post(t, "/api/scheduling/suggest", `{"clinic_id": "c1", "service_id": "S1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"escalation_id":"esc-1"`)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestSuggestSlots_Success(t *testing.T) {
	f := newAPIFixture(t)
	f.sched.suggest = &models.SuggestSlotsResult{Slots: []models.Slot{{DoctorID: "d1", RoomID: "r1"}}}

	rec := f.post(t, "/api/scheduling/suggest", `{"clinic_id": "c1", "service_id": "S1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"doctor_id":"d1"`)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		path       string
		body       string
		wantStatus int
	}{
		{"hold not found", scheduling.ErrHoldNotFound, "/api/scheduling/holds/h1/confirm", `{"patient_id": "p1"}`, http.StatusNotFound},
		{"hold expired", scheduling.ErrHoldExpired, "/api/scheduling/holds/h1/confirm", `{"patient_id": "p1"}`, http.StatusConflict},
		{"slot taken", scheduling.ErrSlotNotAvailable, "/api/scheduling/holds", `{"clinic_id": "c1"}`, http.StatusConflict},
		{"appointment not found", scheduling.ErrAppointmentNotFound, "/api/scheduling/appointments/a1/cancel", `{"clinic_id": "c1", "patient_id": "p1"}`, http.StatusNotFound},
		{"escalation not found", scheduling.ErrEscalationNotFound, "/api/scheduling/escalations/e1/assign", `{"assignee": "ana"}`, http.StatusNotFound},
		{"invalid request", &scheduling.InvalidRequestError{Reason: "service_id is required"}, "/api/scheduling/suggest", `{"clinic_id": "c1"}`, http.StatusUnprocessableEntity},
		{"policy violation", &scheduling.PolicyViolationError{RuleIDs: []string{"R1"}, Messages: []string{"weekly limit reached"}}, "/api/scheduling/holds/h1/confirm", `{"patient_id": "p1"}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.sched.err = tt.err

			rec := f.post(t, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestErrorMapping_PolicyViolationBody(t *testing.T) {
	f := newAPIFixture(t)
	f.sched.err = &scheduling.PolicyViolationError{
		RuleIDs:  []string{"R1"},
		Messages: []string{"weekly limit reached"},
	}

	rec := f.post(t, "/api/scheduling/holds/h1/confirm", `{"patient_id": "p1"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "weekly limit reached")
	assert.Contains(t, rec.Body.String(), "R1")
}

func TestHoldSlot_ReusedHoldReturnsOK(t *testing.T) {
	f := newAPIFixture(t)
	f.sched.hold = &models.HoldSlotResult{HoldID: "h1", Reused: true}

	rec := f.post(t, "/api/scheduling/holds", `{"clinic_id": "c1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	f.sched.hold = &models.HoldSlotResult{HoldID: "h2"}
	rec = f.post(t, "/api/scheduling/holds", `{"clinic_id": "c1"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestEscalationQueue_RequiresClinicID(t *testing.T) {
	f := newAPIFixture(t)

	req, rec := newGetRequest(t, "/api/scheduling/escalations")
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req, rec = newGetRequest(t, "/api/scheduling/escalations?clinic_id=c1")
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
