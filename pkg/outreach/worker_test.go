package outreach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/kv"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/pipeline"
)

type stubClinics struct {
	profile models.ClinicProfile
}

func (s *stubClinics) Get(_ context.Context, clinicID string) (models.ClinicProfile, error) {
	if clinicID != s.profile.ClinicID {
		return models.ClinicProfile{}, fmt.Errorf("unknown clinic %s", clinicID)
	}
	return s.profile, nil
}

type sentMessage struct {
	instance string
	phone    string
	text     string
}

type recordingSender struct {
	sent []sentMessage
	err  error
}

func (s *recordingSender) SendText(_ context.Context, instance, phone, text string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMessage{instance: instance, phone: phone, text: text})
	return nil
}

func outreachFixture(sender *recordingSender) (*Worker, *kv.MemoryStore) {
	store := kv.NewMemoryStore()
	clinics := &stubClinics{profile: models.ClinicProfile{
		ClinicID:        "c1",
		Name:            "Clinica Central",
		DefaultLanguage: "es",
		InstanceName:    "clinic-c1-1",
	}}
	worker := NewWorker(store, clinics, sender, slog.Default(), Config{})
	return worker, store
}

func scheduleFollowUp(t *testing.T, store *kv.MemoryStore, f pipeline.FollowUp) {
	t.Helper()
	require.NoError(t, pipeline.NewKVFollowUps(store).Schedule(context.Background(), f))
}

func TestRunOnce_SendsDueFollowUpAndDeletesIt(t *testing.T) {
	sender := &recordingSender{}
	worker, store := outreachFixture(sender)

	scheduleFollowUp(t, store, pipeline.FollowUp{
		ClinicID: "c1",
		Phone:    "+5215550001",
		Language: "ru",
		DueAt:    time.Now().Add(-time.Minute),
		Note:     "assistant promised a follow-up",
	})

	sent, err := worker.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "clinic-c1-1", sender.sent[0].instance)
	assert.Equal(t, "+5215550001", sender.sent[0].phone)
	assert.Contains(t, sender.sent[0].text, "запросом")

	keys, err := store.ScanKeys(context.Background(), "followup:", 0)
	require.NoError(t, err)
	assert.Empty(t, keys, "handled follow-up should be removed")
}

func TestRunOnce_LeavesFutureFollowUps(t *testing.T) {
	sender := &recordingSender{}
	worker, store := outreachFixture(sender)

	scheduleFollowUp(t, store, pipeline.FollowUp{
		ClinicID: "c1",
		Phone:    "+5215550001",
		DueAt:    time.Now().Add(2 * time.Hour),
	})

	sent, err := worker.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, sender.sent)

	keys, err := store.ScanKeys(context.Background(), "followup:", 0)
	require.NoError(t, err)
	assert.Len(t, keys, 1, "future follow-up stays scheduled")
}

func TestRunOnce_DefaultsToClinicLanguage(t *testing.T) {
	sender := &recordingSender{}
	worker, store := outreachFixture(sender)

	scheduleFollowUp(t, store, pipeline.FollowUp{
		ClinicID: "c1",
		Phone:    "+5215550001",
		DueAt:    time.Now().Add(-time.Minute),
	})

	_, err := worker.RunOnce(context.Background())
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].text, "solicitud")
}

func TestRunOnce_SendFailureKeepsEntryForRetry(t *testing.T) {
	sender := &recordingSender{err: errors.New("gateway down")}
	worker, store := outreachFixture(sender)

	scheduleFollowUp(t, store, pipeline.FollowUp{
		ClinicID: "c1",
		Phone:    "+5215550001",
		DueAt:    time.Now().Add(-time.Minute),
	})

	sent, err := worker.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)

	keys, err := store.ScanKeys(context.Background(), "followup:", 0)
	require.NoError(t, err)
	assert.Len(t, keys, 1, "failed send keeps the promise scheduled")
}

func TestRunOnce_ClaimStopsDoubleSend(t *testing.T) {
	sender := &recordingSender{}
	worker, store := outreachFixture(sender)

	scheduleFollowUp(t, store, pipeline.FollowUp{
		ClinicID: "c1",
		Phone:    "+5215550001",
		DueAt:    time.Now().Add(-time.Minute),
	})

	keys, err := store.ScanKeys(context.Background(), "followup:", 0)
	require.NoError(t, err)
	require.Len(t, keys, 1)

	// Another pod already claimed this entry.
	claimed, err := store.SetNXFlag(context.Background(), "outreach:claim:"+keys[0], time.Minute)
	require.NoError(t, err)
	require.True(t, claimed)

	sent, err := worker.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, sender.sent)
}
