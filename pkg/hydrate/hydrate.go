// Package hydrate assembles the immutable per-turn context: clinic
// profile, patient record, session state, bounded history, and the
// live constraint block, fetched in parallel.
package hydrate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/session"
)

// ClinicGetter loads a clinic profile (normally the pkg/clinic cache).
type ClinicGetter interface {
	Get(ctx context.Context, clinicID string) (models.ClinicProfile, error)
}

// PatientSource upserts and returns the patient for a (clinic, phone).
type PatientSource interface {
	GetOrCreate(ctx context.Context, clinicID, phone, pushName string) (models.PatientProfile, error)
}

// HistorySource loads recent turns for a session, newest last.
type HistorySource interface {
	RecentTurns(ctx context.Context, sessionID string, limit int) ([]models.HistoryMessage, error)
}

// ConstraintGetter loads the live constraint block.
type ConstraintGetter interface {
	Get(ctx context.Context, sessionID string) (models.ConstraintBlock, error)
}

// Context is the hydrated, read-only view of everything a turn needs.
// Nothing downstream mutates it; per-turn working state lives on the
// pipeline's TurnContext instead.
type Context struct {
	Clinic      models.ClinicProfile
	Patient     models.PatientProfile
	Session     *session.Record
	Constraints models.ConstraintBlock
	History     []models.HistoryMessage
	// PrevSummary is the archived session's summary on a soft reset.
	PrevSummary string
}

const (
	// historyFetchLimit bounds the DB read; the token budget trims
	// further.
	historyFetchLimit = 40
	// defaultTokenBudget bounds how much history enters the prompt.
	defaultTokenBudget = 2000
)

// Hydrator fans out the context fetches.
type Hydrator struct {
	clinics     ClinicGetter
	patients    PatientSource
	history     HistorySource
	constraints ConstraintGetter
	tokenBudget int
}

// New creates a hydrator with the default history token budget.
func New(clinics ClinicGetter, patients PatientSource, history HistorySource, constraints ConstraintGetter) *Hydrator {
	return &Hydrator{
		clinics:     clinics,
		patients:    patients,
		history:     history,
		constraints: constraints,
		tokenBudget: defaultTokenBudget,
	}
}

// Input identifies what to hydrate for this turn.
type Input struct {
	ClinicID    string
	Phone       string
	PushName    string
	Session     *session.Record
	PrevSummary string
}

// Hydrate fetches all context parts in parallel. This is an "all-of"
// operation: the first failure cancels the siblings and fails the
// turn.
func (h *Hydrator) Hydrate(ctx context.Context, in Input) (*Context, error) {
	out := &Context{Session: in.Session, PrevSummary: in.PrevSummary}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		clinic, err := h.clinics.Get(gctx, in.ClinicID)
		if err != nil {
			return fmt.Errorf("hydrate clinic: %w", err)
		}
		out.Clinic = clinic
		return nil
	})

	g.Go(func() error {
		patient, err := h.patients.GetOrCreate(gctx, in.ClinicID, in.Phone, in.PushName)
		if err != nil {
			return fmt.Errorf("hydrate patient: %w", err)
		}
		out.Patient = patient
		return nil
	})

	g.Go(func() error {
		turns, err := h.history.RecentTurns(gctx, in.Session.ID, historyFetchLimit)
		if err != nil {
			return fmt.Errorf("hydrate history: %w", err)
		}
		out.History = trimToBudget(turns, h.tokenBudget)
		return nil
	})

	g.Go(func() error {
		block, err := h.constraints.Get(gctx, in.Session.ID)
		if err != nil {
			return fmt.Errorf("hydrate constraints: %w", err)
		}
		out.Constraints = block
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// trimToBudget keeps the newest messages whose combined estimated
// token count fits the budget. The estimate is chars/4, which is
// close enough for a bound that exists to cap prompt size, not to
// meter billing.
func trimToBudget(history []models.HistoryMessage, budget int) []models.HistoryMessage {
	if budget <= 0 {
		return history
	}
	total := 0
	cut := 0
	for i := len(history) - 1; i >= 0; i-- {
		total += estimateTokens(history[i].Content)
		if total > budget {
			cut = i + 1
			break
		}
	}
	return history[cut:]
}

func estimateTokens(s string) int {
	return len(s)/4 + 1
}
