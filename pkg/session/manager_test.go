package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/kv"
)

type fakeRepo struct {
	mu      sync.Mutex
	records map[string]*Record
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[string]*Record{}}
}

func (r *fakeRepo) FindActive(_ context.Context, clinicID, phone string) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ClinicID == clinicID && rec.Phone == phone && rec.Status == "active" {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, ErrNoActiveSession
}

func (r *fakeRepo) Get(_ context.Context, id string) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, ErrNoActiveSession
}

func (r *fakeRepo) Create(_ context.Context, rec Record) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.Status = "active"
	r.records[rec.ID] = &rec
	cp := rec
	return &cp, nil
}

func (r *fakeRepo) Touch(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok {
		rec.LastActivityAt = at
	}
	return nil
}

func (r *fakeRepo) Close(_ context.Context, id string, _ time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok || rec.Status == "closed" {
		return false, nil
	}
	rec.Status = "closed"
	return true, nil
}

type fakeClearer struct {
	mu      sync.Mutex
	cleared []string
}

func (c *fakeClearer) Clear(_ context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleared = append(c.cleared, sessionID)
	return nil
}

func newTestManager(repo Repo, onArchived func(string)) *Manager {
	return NewManager(repo, kv.NewMemoryLocker(), &fakeClearer{}, 5*time.Second, onArchived)
}

func TestResolve_CreatesFirstSession(t *testing.T) {
	repo := newFakeRepo()
	m := newTestManager(repo, nil)

	res, err := m.Resolve(context.Background(), "c1", "555", "en", Signals{})
	require.NoError(t, err)
	assert.Equal(t, Continue, res.Decision)
	assert.Equal(t, "none", res.Session.ResetKind)
	assert.Equal(t, "c1", res.Session.ClinicID)
	assert.NotEmpty(t, res.Session.ID)
}

func TestResolve_ContinuesRecentSession(t *testing.T) {
	repo := newFakeRepo()
	m := newTestManager(repo, nil)
	ctx := context.Background()

	first, err := m.Resolve(ctx, "c1", "555", "en", Signals{})
	require.NoError(t, err)

	second, err := m.Resolve(ctx, "c1", "555", "en", Signals{})
	require.NoError(t, err)
	assert.Equal(t, Continue, second.Decision)
	assert.Equal(t, first.Session.ID, second.Session.ID)
}

func (r *fakeRepo) backdate(id string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[id].LastActivityAt = time.Now().Add(-d)
}

// Mirrors the summarizer's write after it processes an archived session.
func (r *fakeRepo) setSummary(id, summary, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[id]
	rec.Summary = summary
	rec.SummaryStatus = status
}

func TestResolve_SoftResetInjectsPredecessorSummary(t *testing.T) {
	repo := newFakeRepo()
	archived := make(chan string, 2)
	m := newTestManager(repo, func(id string) { archived <- id })
	ctx := context.Background()

	first, err := m.Resolve(ctx, "c1", "555", "en", Signals{})
	require.NoError(t, err)

	// First boundary: the archived session's summary is still pending,
	// so there is nothing to inject yet.
	repo.backdate(first.Session.ID, 5*time.Hour)
	second, err := m.Resolve(ctx, "c1", "555", "en", Signals{})
	require.NoError(t, err)
	assert.Equal(t, SoftReset, second.Decision)
	assert.Equal(t, first.Session.ID, second.Session.PrevSessionID)
	assert.Equal(t, "soft", second.Session.ResetKind)
	assert.Empty(t, second.PrevSummary)

	select {
	case id := <-archived:
		assert.Equal(t, first.Session.ID, id)
	case <-time.After(time.Second):
		t.Fatal("summarizer hook not fired")
	}

	// The summarizer catches up on the first session; the next boundary
	// must find its summary through the session chain, since the session
	// archived now has not been summarized yet.
	repo.setSummary(first.Session.ID, "Patient asked about a cleaning", "ready")
	repo.backdate(second.Session.ID, 5*time.Hour)

	third, err := m.Resolve(ctx, "c1", "555", "en", Signals{})
	require.NoError(t, err)
	assert.Equal(t, SoftReset, third.Decision)
	assert.Equal(t, second.Session.ID, third.Session.PrevSessionID)
	assert.Equal(t, "Patient asked about a cleaning", third.PrevSummary)
}

func TestResolve_HardResetDropsEpisodeContext(t *testing.T) {
	repo := newFakeRepo()
	m := newTestManager(repo, nil)
	ctx := context.Background()

	first, err := m.Resolve(ctx, "c1", "555", "en", Signals{})
	require.NoError(t, err)

	repo.mu.Lock()
	old := repo.records[first.Session.ID]
	old.LastActivityAt = time.Now().Add(-80 * time.Hour)
	old.Summary = "should not carry"
	repo.mu.Unlock()

	res, err := m.Resolve(ctx, "c1", "555", "en", Signals{})
	require.NoError(t, err)
	assert.Equal(t, HardReset, res.Decision)
	assert.Equal(t, "hard", res.Session.ResetKind)
	assert.Empty(t, res.PrevSummary)
}

func TestResolve_ClearsConstraintsOnNewSession(t *testing.T) {
	repo := newFakeRepo()
	clearer := &fakeClearer{}
	m := NewManager(repo, kv.NewMemoryLocker(), clearer, 5*time.Second, nil)

	res, err := m.Resolve(context.Background(), "c1", "555", "en", Signals{})
	require.NoError(t, err)
	assert.Equal(t, []string{res.Session.ID}, clearer.cleared)
}

func TestArchive_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	var mu sync.Mutex
	fired := 0
	m := newTestManager(repo, func(string) {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	ctx := context.Background()

	res, err := m.Resolve(ctx, "c1", "555", "en", Signals{})
	require.NoError(t, err)

	require.NoError(t, m.Archive(ctx, res.Session.ID))
	require.NoError(t, m.Archive(ctx, res.Session.ID))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return fired == 1
	}, time.Second, 5*time.Millisecond)

	// Still exactly one firing after a settle period.
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, fired)
}

func TestResolve_ExplicitResetForcesHard(t *testing.T) {
	repo := newFakeRepo()
	m := newTestManager(repo, nil)
	ctx := context.Background()

	_, err := m.Resolve(ctx, "c1", "555", "en", Signals{})
	require.NoError(t, err)

	res, err := m.Resolve(ctx, "c1", "555", "en", Signals{ExplicitReset: true})
	require.NoError(t, err)
	assert.Equal(t, HardReset, res.Decision)
}
