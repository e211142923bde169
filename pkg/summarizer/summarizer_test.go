package summarizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/llm"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/session"
	"github.com/mediqo/mediqo/pkg/tiers"
)

type memStore struct {
	recs      map[string]*session.Record
	summaries map[string]string
	statuses  map[string]string
	pending   []string
}

func newMemStore(recs ...*session.Record) *memStore {
	s := &memStore{
		recs:      map[string]*session.Record{},
		summaries: map[string]string{},
		statuses:  map[string]string{},
	}
	for _, r := range recs {
		s.recs[r.ID] = r
	}
	return s
}

func (s *memStore) Get(_ context.Context, id string) (*session.Record, error) {
	rec, ok := s.recs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return rec, nil
}

func (s *memStore) SetSummary(_ context.Context, id, summary, status string) error {
	s.summaries[id] = summary
	s.statuses[id] = status
	return nil
}

func (s *memStore) PendingSummaries(context.Context, int) ([]string, error) {
	return s.pending, nil
}

type stubTurns struct {
	history []models.HistoryMessage
}

func (s *stubTurns) RecentTurns(context.Context, string, int) ([]models.HistoryMessage, error) {
	return s.history, nil
}

type stubProvider struct {
	content  string
	err      error
	requests []llm.Request
}

func (p *stubProvider) Model() string { return "stub" }

func (p *stubProvider) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Response{Content: p.content}, nil
}

func (p *stubProvider) GenerateWithTools(ctx context.Context, req llm.Request, _ []llm.ToolDefinition) (*llm.Response, error) {
	return p.Generate(ctx, req)
}

type stubProviders struct{ provider *stubProvider }

func (s *stubProviders) ForModel(string) (llm.Provider, error) { return s.provider, nil }

func newTestSummarizer(t *testing.T, store *memStore, turns *stubTurns, provider *stubProvider) *Summarizer {
	t.Helper()
	registry, err := tiers.NewRegistry(tiers.Config{Getenv: func(string) string { return "" }})
	require.NoError(t, err)
	return New(turns, store, registry, &stubProviders{provider: provider}, nil)
}

func TestSummarize_WritesSummaryAndStatus(t *testing.T) {
	store := newMemStore(&session.Record{ID: "s1", ClinicID: "c1", SummaryStatus: StatusPending})
	turns := &stubTurns{history: []models.HistoryMessage{
		{Role: "user", Content: "how much is a cleaning?"},
		{Role: "assistant", Content: "A cleaning costs 500 MXN."},
	}}
	provider := &stubProvider{content: "Patient asked about cleaning pricing; no booking yet."}

	s := newTestSummarizer(t, store, turns, provider)
	require.NoError(t, s.Summarize(context.Background(), "s1"))

	assert.Equal(t, StatusReady, store.statuses["s1"])
	assert.Equal(t, "Patient asked about cleaning pricing; no booking yet.", store.summaries["s1"])

	require.Len(t, provider.requests, 1)
	assert.Contains(t, provider.requests[0].Messages[0].Content, "Patient: how much is a cleaning?")
	assert.Contains(t, provider.requests[0].Messages[0].Content, "Assistant: A cleaning costs 500 MXN.")
}

func TestSummarize_ModelFailureMarksFailed(t *testing.T) {
	store := newMemStore(&session.Record{ID: "s1", ClinicID: "c1", SummaryStatus: StatusPending})
	turns := &stubTurns{history: []models.HistoryMessage{{Role: "user", Content: "hi"}}}
	provider := &stubProvider{err: errors.New("model down")}

	s := newTestSummarizer(t, store, turns, provider)
	err := s.Summarize(context.Background(), "s1")
	require.Error(t, err)
	assert.Equal(t, StatusFailed, store.statuses["s1"])
}

func TestSummarize_EmptySessionIsReadyWithoutModelCall(t *testing.T) {
	store := newMemStore(&session.Record{ID: "s1", ClinicID: "c1", SummaryStatus: StatusPending})
	provider := &stubProvider{content: "unused"}

	s := newTestSummarizer(t, store, &stubTurns{}, provider)
	require.NoError(t, s.Summarize(context.Background(), "s1"))

	assert.Equal(t, StatusReady, store.statuses["s1"])
	assert.Empty(t, store.summaries["s1"])
	assert.Empty(t, provider.requests)
}

func TestSummarize_AlreadyReadyIsANoop(t *testing.T) {
	store := newMemStore(&session.Record{ID: "s1", ClinicID: "c1", SummaryStatus: StatusReady, Summary: "done"})
	provider := &stubProvider{content: "unused"}

	s := newTestSummarizer(t, store, &stubTurns{history: []models.HistoryMessage{{Role: "user", Content: "hi"}}}, provider)
	require.NoError(t, s.Summarize(context.Background(), "s1"))
	assert.Empty(t, provider.requests)
	assert.Empty(t, store.statuses)
}

func TestSweep_ProcessesPendingAndKeepsGoingOnFailure(t *testing.T) {
	store := newMemStore(
		&session.Record{ID: "s1", ClinicID: "c1", SummaryStatus: StatusPending},
		&session.Record{ID: "s2", ClinicID: "c1", SummaryStatus: StatusPending},
	)
	store.pending = []string{"missing", "s1", "s2"}
	turns := &stubTurns{history: []models.HistoryMessage{{Role: "user", Content: "hi"}}}
	provider := &stubProvider{content: "Short summary."}

	s := newTestSummarizer(t, store, turns, provider)
	n, err := s.Sweep(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, StatusReady, store.statuses["s1"])
	assert.Equal(t, StatusReady, store.statuses["s2"])
}
