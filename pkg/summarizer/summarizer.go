// Package summarizer compresses archived sessions into short summaries
// that soft resets inject into the next conversation. It runs strictly
// in the background: archival never waits on it, and its failures are
// recorded on the session row, not surfaced to the patient.
package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mediqo/mediqo/pkg/llm"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/session"
	"github.com/mediqo/mediqo/pkg/tiers"
)

const (
	StatusPending = "pending"
	StatusReady   = "ready"
	StatusFailed  = "failed"
)

const (
	// turnFetchLimit bounds the transcript read; old turns beyond it
	// add nothing to a three-sentence summary.
	turnFetchLimit   = 60
	summarizeTimeout = 30 * time.Second
	maxSummaryTokens = 300
)

// TurnSource loads a session's transcript, oldest first.
type TurnSource interface {
	RecentTurns(ctx context.Context, sessionID string, limit int) ([]models.HistoryMessage, error)
}

// Store is the slice of the session repository the summarizer writes.
type Store interface {
	Get(ctx context.Context, id string) (*session.Record, error)
	SetSummary(ctx context.Context, id, summary, status string) error
	PendingSummaries(ctx context.Context, limit int) ([]string, error)
}

// ProviderSource resolves a model name to a provider adapter.
type ProviderSource interface {
	ForModel(model string) (llm.Provider, error)
}

// Summarizer generates session summaries on the summarization tier.
type Summarizer struct {
	turns     TurnSource
	store     Store
	tiers     *tiers.Registry
	providers ProviderSource
	logger    *slog.Logger
}

// New wires a summarizer.
func New(turns TurnSource, store Store, registry *tiers.Registry, providers ProviderSource, logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{turns: turns, store: store, tiers: registry, providers: providers, logger: logger}
}

// Kick summarizes a session in the background. The caller's context
// only contributes values; cancellation of the foreground request must
// not abort the summary.
func (s *Summarizer) Kick(ctx context.Context, sessionID string) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), summarizeTimeout)
		defer cancel()
		if err := s.Summarize(bgCtx, sessionID); err != nil {
			s.logger.Warn("session summarization failed",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()))
		}
	}()
}

// Summarize generates and stores the summary for one session. A model
// failure marks the row failed so the sweep does not retry it forever.
func (s *Summarizer) Summarize(ctx context.Context, sessionID string) error {
	rec, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if rec.SummaryStatus == StatusReady {
		return nil
	}

	history, err := s.turns.RecentTurns(ctx, sessionID, turnFetchLimit)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		// Nothing to compress; an empty session needs no continuity.
		return s.store.SetSummary(ctx, sessionID, "", StatusReady)
	}

	summary, err := s.generate(ctx, rec, history)
	if err != nil {
		if serr := s.store.SetSummary(ctx, sessionID, "", StatusFailed); serr != nil {
			s.logger.Warn("summary status write failed",
				slog.String("session_id", sessionID),
				slog.String("error", serr.Error()))
		}
		return fmt.Errorf("summarize session %s: %w", sessionID, err)
	}
	return s.store.SetSummary(ctx, sessionID, summary, StatusReady)
}

// Sweep processes sessions the archival-time kick missed, e.g. after a
// crash. Returns how many sessions it attempted.
func (s *Summarizer) Sweep(ctx context.Context, limit int) (int, error) {
	ids, err := s.store.PendingSummaries(ctx, limit)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		if err := s.Summarize(ctx, id); err != nil {
			s.logger.Warn("summary sweep item failed",
				slog.String("session_id", id),
				slog.String("error", err.Error()))
		}
	}
	return len(ids), nil
}

func (s *Summarizer) generate(ctx context.Context, rec *session.Record, history []models.HistoryMessage) (string, error) {
	model := s.tiers.Resolve(rec.ClinicID, rec.ID, tiers.TierSummarization)
	provider, err := s.providers.ForModel(model)
	if err != nil {
		return "", err
	}

	resp, err := provider.Generate(ctx, llm.Request{
		System: "You summarize clinic messaging conversations for the assistant's own memory. " +
			"Write at most three sentences: what the patient wanted, any stated preferences or refusals, " +
			"and how the conversation ended. State facts only; no greetings, no advice.",
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: transcript(history)}},
		MaxTokens: maxSummaryTokens,
	})
	if err != nil {
		return "", err
	}
	summary := strings.TrimSpace(resp.Content)
	if summary == "" {
		return "", fmt.Errorf("model %s returned an empty summary", model)
	}
	return summary, nil
}

func transcript(history []models.HistoryMessage) string {
	var b strings.Builder
	for _, m := range history {
		role := "Patient"
		if m.Role == "assistant" {
			role = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, m.Content)
	}
	return b.String()
}
