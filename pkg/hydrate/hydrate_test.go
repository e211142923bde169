package hydrate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/session"
)

type stubClinics struct {
	profile models.ClinicProfile
	err     error
}

func (s *stubClinics) Get(context.Context, string) (models.ClinicProfile, error) {
	return s.profile, s.err
}

type stubPatients struct {
	profile models.PatientProfile
	err     error
}

func (s *stubPatients) GetOrCreate(context.Context, string, string, string) (models.PatientProfile, error) {
	return s.profile, s.err
}

type stubHistory struct {
	turns []models.HistoryMessage
	err   error
}

func (s *stubHistory) RecentTurns(context.Context, string, int) ([]models.HistoryMessage, error) {
	return s.turns, s.err
}

type stubConstraints struct {
	block models.ConstraintBlock
	err   error
}

func (s *stubConstraints) Get(context.Context, string) (models.ConstraintBlock, error) {
	return s.block, s.err
}

func testInput() Input {
	return Input{
		ClinicID:    "c1",
		Phone:       "555",
		Session:     &session.Record{ID: "sess-1", ClinicID: "c1", Phone: "555"},
		PrevSummary: "Patient asked about cleaning",
	}
}

func TestHydrate_AllParts(t *testing.T) {
	h := New(
		&stubClinics{profile: models.ClinicProfile{ClinicID: "c1", Name: "Smile"}},
		&stubPatients{profile: models.PatientProfile{PatientID: "p1", Allergies: []string{"lidocaine"}}},
		&stubHistory{turns: []models.HistoryMessage{{Role: "user", Content: "hi"}}},
		&stubConstraints{block: models.ConstraintBlock{SessionID: "sess-1", DesiredService: "cleaning"}},
	)

	out, err := h.Hydrate(context.Background(), testInput())
	require.NoError(t, err)
	assert.Equal(t, "Smile", out.Clinic.Name)
	assert.Equal(t, "p1", out.Patient.PatientID)
	assert.Equal(t, []string{"lidocaine"}, out.Patient.Allergies)
	assert.Len(t, out.History, 1)
	assert.Equal(t, "cleaning", out.Constraints.DesiredService)
	assert.Equal(t, "sess-1", out.Session.ID)
	assert.Equal(t, "Patient asked about cleaning", out.PrevSummary)
}

func TestHydrate_FirstErrorFailsTheTurn(t *testing.T) {
	h := New(
		&stubClinics{err: errors.New("db down")},
		&stubPatients{},
		&stubHistory{},
		&stubConstraints{},
	)

	_, err := h.Hydrate(context.Background(), testInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hydrate clinic")
}

func TestTrimToBudget(t *testing.T) {
	long := strings.Repeat("x", 400) // ~100 tokens each
	history := []models.HistoryMessage{
		{Content: long}, {Content: long}, {Content: long}, {Content: long},
	}

	trimmed := trimToBudget(history, 250)
	// Newest messages kept, oldest dropped.
	assert.Len(t, trimmed, 2)

	all := trimToBudget(history, 100000)
	assert.Len(t, all, 4)

	none := trimToBudget(nil, 250)
	assert.Empty(t, none)
}
