package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mediqo/mediqo/pkg/kv"
)

// ConstraintClearer is the slice of the constraints store the manager
// needs when a boundary fires.
type ConstraintClearer interface {
	Clear(ctx context.Context, sessionID string) error
}

// Resolution is what the boundary check produced for this turn.
type Resolution struct {
	Session  *Record
	Decision Decision
	// PrevSummary carries the archived session's summary on a soft
	// reset, for injection into the system prompt.
	PrevSummary string
}

// Manager runs boundary detection and session lifecycle. All
// boundary work for a (clinic, phone) pair is serialized by the
// distributed lock, so at most one archival/creation proceeds at a
// time across processes.
type Manager struct {
	repo        Repo
	locker      kv.Locker
	constraints ConstraintClearer
	lockTTL     time.Duration
	// onArchived is fired in the background after an archival; the
	// summarizer hangs off this hook so the manager never calls back
	// into the pipeline.
	onArchived func(sessionID string)
	now        func() time.Time
}

// NewManager wires a session manager.
func NewManager(repo Repo, locker kv.Locker, constraints ConstraintClearer, lockTTL time.Duration, onArchived func(sessionID string)) *Manager {
	if onArchived == nil {
		onArchived = func(string) {}
	}
	return &Manager{
		repo:        repo,
		locker:      locker,
		constraints: constraints,
		lockTTL:     lockTTL,
		onArchived:  onArchived,
		now:         time.Now,
	}
}

// summaryReady mirrors the summarizer's ready status; importing the
// summarizer here would cycle.
const summaryReady = "ready"

func lockKey(clinicID, phone string) string {
	return fmt.Sprintf("boundary_lock:%s:%s", clinicID, phone)
}

// Resolve finds or creates the session for this turn. Boundary
// signals other than the gap (drift, correction, outcome, explicit
// reset) are supplied by the caller; the gap is computed here from
// the active session's last activity.
func (m *Manager) Resolve(ctx context.Context, clinicID, phone, language string, signals Signals) (Resolution, error) {
	key := lockKey(clinicID, phone)
	token, err := m.locker.Acquire(ctx, key, m.lockTTL)
	if err != nil {
		return Resolution{}, fmt.Errorf("boundary lock: %w", err)
	}
	defer func() {
		if err := m.locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
			slog.Warn("boundary lock release failed", "key", key, "error", err)
		}
	}()

	now := m.now()

	current, err := m.repo.FindActive(ctx, clinicID, phone)
	if errors.Is(err, ErrNoActiveSession) {
		created, err := m.createSession(ctx, clinicID, phone, language, "", "none", now)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Session: created, Decision: Continue}, nil
	}
	if err != nil {
		return Resolution{}, err
	}

	signals.Gap = now.Sub(current.LastActivityAt)
	decision := Decide(signals)

	switch decision {
	case Continue:
		if err := m.repo.Touch(ctx, current.ID, now); err != nil {
			return Resolution{}, err
		}
		current.LastActivityAt = now
		return Resolution{Session: current, Decision: Continue}, nil

	case SoftReset:
		if err := m.archiveAt(ctx, current.ID, now); err != nil {
			return Resolution{}, err
		}
		created, err := m.createSession(ctx, clinicID, phone, language, current.ID, string(SoftReset), now)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Session: created, Decision: SoftReset, PrevSummary: m.latestSummary(ctx, current)}, nil

	default: // HardReset
		if err := m.archiveAt(ctx, current.ID, now); err != nil {
			return Resolution{}, err
		}
		created, err := m.createSession(ctx, clinicID, phone, language, current.ID, string(HardReset), now)
		if err != nil {
			return Resolution{}, err
		}
		// Carryover (language, allergies, hard bans) is restored from
		// the patient profile at hydration; nothing episode-level
		// survives a hard reset.
		return Resolution{Session: created, Decision: HardReset}, nil
	}
}

// latestSummary walks back from the session being archived to the most
// recent one whose summary is ready. Summarization runs asynchronously
// after archival, so the just-archived session's own summary is still
// pending here; the freshest usable context is usually its
// predecessor's.
func (m *Manager) latestSummary(ctx context.Context, from *Record) string {
	const maxHops = 5
	rec := from
	for i := 0; i < maxHops; i++ {
		if rec.SummaryStatus == summaryReady && rec.Summary != "" {
			return rec.Summary
		}
		if rec.PrevSessionID == "" {
			return ""
		}
		prev, err := m.repo.Get(ctx, rec.PrevSessionID)
		if err != nil {
			slog.Warn("previous session lookup failed", "session_id", rec.PrevSessionID, "error", err)
			return ""
		}
		rec = prev
	}
	return ""
}

func (m *Manager) createSession(ctx context.Context, clinicID, phone, language, prevID, resetKind string, now time.Time) (*Record, error) {
	created, err := m.repo.Create(ctx, Record{
		ID:             uuid.New().String(),
		Phone:          phone,
		ClinicID:       clinicID,
		Language:       language,
		StartedAt:      now,
		LastActivityAt: now,
		PrevSessionID:  prevID,
		ResetKind:      resetKind,
	})
	if err != nil {
		return nil, err
	}
	if err := m.constraints.Clear(ctx, created.ID); err != nil {
		slog.Warn("constraint clear on new session failed", "session_id", created.ID, "error", err)
	}
	return created, nil
}

// Archive closes a session. Idempotent: archiving a closed session is
// a no-op and does not re-fire summarization.
func (m *Manager) Archive(ctx context.Context, sessionID string) error {
	return m.archiveAt(ctx, sessionID, m.now())
}

func (m *Manager) archiveAt(ctx context.Context, sessionID string, at time.Time) error {
	closed, err := m.repo.Close(ctx, sessionID, at)
	if err != nil {
		return err
	}
	if closed {
		// Summarization runs off-path; archival never blocks on it.
		go m.onArchived(sessionID)
	}
	return nil
}
