// Package outreach delivers the follow-ups the assistant promised
// during conversations. The pipeline stores promises under
// followup:{clinic_id}:{uuid}; this worker scans that keyspace and
// sends the due ones through the messaging gateway.
package outreach

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/mediqo/mediqo/pkg/kv"
	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/messaging"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/pipeline"
)

const (
	keyPrefix = "followup:"

	defaultInterval = time.Minute
	defaultBatch    = 100

	// claimTTL bounds how long one pod owns a follow-up attempt. A pod
	// that dies mid-send leaves the entry for a later pass.
	claimTTL = 2 * time.Minute
)

// Store is the slice of the KV layer the worker needs.
type Store interface {
	ScanKeys(ctx context.Context, prefix string, limit int) ([]string, error)
	GetJSON(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
	SetNXFlag(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Clinics resolves a clinic profile; the worker needs the gateway
// instance name and the default language.
type Clinics interface {
	Get(ctx context.Context, clinicID string) (models.ClinicProfile, error)
}

// Worker periodically sends due follow-ups. Safe to run from multiple
// pods: each entry is claimed with a short-lived NX flag before
// sending, and deleted only after the gateway accepts the message.
type Worker struct {
	store    Store
	clinics  Clinics
	sender   messaging.Sender
	logger   *slog.Logger
	interval time.Duration
	batch    int

	cancel context.CancelFunc
	done   chan struct{}
}

// Config tunes the worker; zero values take defaults.
type Config struct {
	Interval  time.Duration
	BatchSize int
}

// NewWorker wires an outreach worker.
func NewWorker(store Store, clinics Clinics, sender messaging.Sender, logger *slog.Logger, cfg Config) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatch
	}
	return &Worker{
		store:    store,
		clinics:  clinics,
		sender:   sender,
		logger:   logger,
		interval: cfg.Interval,
		batch:    cfg.BatchSize,
	}
}

// Start launches the background outreach loop.
func (w *Worker) Start(ctx context.Context) {
	if w.cancel != nil {
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	go w.run(ctx)

	w.logger.Info("Outreach worker started",
		slog.Duration("interval", w.interval),
		slog.Int("batch_size", w.batch))
}

// Stop signals the loop to exit and waits for it to finish.
func (w *Worker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
	w.logger.Info("Outreach worker stopped")
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if sent, err := w.RunOnce(ctx); err != nil {
				w.logger.Error("Outreach pass failed", slog.String("error", err.Error()))
			} else if sent > 0 {
				w.logger.Info("Outreach pass complete", slog.Int("sent", sent))
			}
		}
	}
}

// RunOnce scans for due follow-ups and sends them. Returns how many
// messages went out; per-entry failures are logged and retried on the
// next pass.
func (w *Worker) RunOnce(ctx context.Context) (int, error) {
	keys, err := w.store.ScanKeys(ctx, keyPrefix, w.batch)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	sent := 0
	for _, key := range keys {
		var f pipeline.FollowUp
		if err := w.store.GetJSON(ctx, key, &f); err != nil {
			if errors.Is(err, kv.ErrNotFound) {
				continue
			}
			// An undecodable entry would wedge every pass; drop it.
			w.logger.Warn("Dropping unreadable follow-up",
				slog.String("key", key), slog.String("error", err.Error()))
			if delErr := w.store.Delete(ctx, key); delErr != nil {
				w.logger.Warn("Follow-up delete failed", slog.String("key", key), slog.String("error", delErr.Error()))
			}
			continue
		}
		if f.DueAt.After(now) {
			continue
		}

		claimed, err := w.store.SetNXFlag(ctx, "outreach:claim:"+key, claimTTL)
		if err != nil {
			w.logger.Warn("Follow-up claim failed", slog.String("key", key), slog.String("error", err.Error()))
			continue
		}
		if !claimed {
			continue
		}

		if err := w.send(ctx, f); err != nil {
			w.logger.Warn("Follow-up send failed",
				slog.String("key", key),
				slog.String("clinic_id", f.ClinicID),
				slog.String("error", err.Error()))
			continue
		}
		if err := w.store.Delete(ctx, key); err != nil {
			w.logger.Warn("Follow-up delete failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		sent++
	}
	return sent, nil
}

func (w *Worker) send(ctx context.Context, f pipeline.FollowUp) error {
	profile, err := w.clinics.Get(ctx, f.ClinicID)
	if err != nil {
		return err
	}

	language := lang.Language(strings.ToLower(f.Language))
	if language == "" {
		language = lang.Language(profile.DefaultLanguage)
	}
	text, err := lang.Render(language, lang.TplFollowUpPing, nil)
	if err != nil {
		text = lang.Fallback(language)
	}

	return w.sender.SendText(ctx, profile.InstanceName, f.Phone, text)
}
