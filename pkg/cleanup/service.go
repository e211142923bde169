// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/mediqo/mediqo/ent"
	entturn "github.com/mediqo/mediqo/ent/conversationturn"
	enthold "github.com/mediqo/mediqo/ent/hold"
	entsession "github.com/mediqo/mediqo/ent/session"
)

// expiredHoldGrace keeps an expired hold around long enough for a
// racing confirm to observe it and fail with the expired error instead
// of not-found.
const expiredHoldGrace = time.Hour

// Config tunes the retention loop.
type Config struct {
	// SessionRetentionDays is how long closed sessions and their
	// conversation turns are kept.
	SessionRetentionDays int

	// Interval is how often the loop runs.
	Interval time.Duration
}

// Service periodically enforces retention policies:
//   - Purges holds that expired more than an hour ago
//   - Deletes closed sessions, and their conversation turns, past the
//     retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	client *ent.Client
	config Config

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(client *ent.Client, cfg Config) *Service {
	if cfg.SessionRetentionDays <= 0 {
		cfg.SessionRetentionDays = 90
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	return &Service{client: client, config: cfg}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_retention_days", s.config.SessionRetentionDays,
		"interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeExpiredHolds(ctx)
	s.purgeOldSessions(ctx)
}

// PurgeExpiredHolds removes holds whose expiry is past the grace
// window. Returns how many rows went away.
func (s *Service) PurgeExpiredHolds(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-expiredHoldGrace)
	return s.client.Hold.Delete().
		Where(enthold.ExpiresAtLT(cutoff)).
		Exec(ctx)
}

// PurgeOldSessions deletes closed sessions past the retention window
// together with their conversation turns. Returns how many sessions
// were removed.
func (s *Service) PurgeOldSessions(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -s.config.SessionRetentionDays)

	old, err := s.client.Session.Query().
		Where(
			entsession.StatusEQ(entsession.StatusClosed),
			entsession.LastActivityAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return 0, err
	}
	if len(old) == 0 {
		return 0, nil
	}

	// Turns first so a failure between the two deletes never leaves
	// orphaned rows behind a missing session.
	if _, err := s.client.ConversationTurn.Delete().
		Where(entturn.SessionIDIn(old...)).
		Exec(ctx); err != nil {
		return 0, err
	}
	return s.client.Session.Delete().
		Where(entsession.IDIn(old...)).
		Exec(ctx)
}

func (s *Service) purgeExpiredHolds(ctx context.Context) {
	count, err := s.PurgeExpiredHolds(ctx)
	if err != nil {
		slog.Error("Retention: expired hold purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged expired holds", "count", count)
	}
}

func (s *Service) purgeOldSessions(ctx context.Context) {
	count, err := s.PurgeOldSessions(ctx)
	if err != nil {
		slog.Error("Retention: session purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old sessions", "count", count)
	}
}
