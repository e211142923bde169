// Package pipeline runs the fixed step sequence that turns one inbound
// patient message into one reply: session boundary, context hydration,
// escalation check, routing, constraint extraction, preference
// narrowing, LLM generation with tools, and post-processing.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mediqo/mediqo/pkg/constraints"
	"github.com/mediqo/mediqo/pkg/hydrate"
	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/llm"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/router"
	"github.com/mediqo/mediqo/pkg/session"
	"github.com/mediqo/mediqo/pkg/tiers"
	"github.com/mediqo/mediqo/pkg/tools"
)

// LanguageResolver picks the conversation language for a phone.
type LanguageResolver interface {
	Resolve(ctx context.Context, phone, text, preferred string) lang.Language
}

// SessionResolver runs boundary detection and returns the session for
// this turn.
type SessionResolver interface {
	Resolve(ctx context.Context, clinicID, phone, language string, signals session.Signals) (session.Resolution, error)
}

// Hydrator assembles the turn context.
type Hydrator interface {
	Hydrate(ctx context.Context, in hydrate.Input) (*hydrate.Context, error)
}

// EscalationGate reports whether staff currently own the conversation.
type EscalationGate interface {
	OpenForPatient(ctx context.Context, clinicID, patientID string) (bool, error)
}

// ConstraintUpdater applies an extracted update to the session block.
type ConstraintUpdater interface {
	Update(ctx context.Context, sessionID string, update models.ConstraintUpdate, language lang.Language) (models.ConstraintBlock, error)
}

// SessionState persists the fast path's conversation-state writes.
type SessionState interface {
	SetConversationState(ctx context.Context, id, lastService, pendingAction string) error
}

// ProviderSource resolves a model name to a provider adapter.
type ProviderSource interface {
	ForModel(model string) (llm.Provider, error)
}

// Deps wires the pipeline. All fields are required unless noted.
type Deps struct {
	Language    LanguageResolver
	Sessions    SessionResolver
	Hydrator    Hydrator
	Escalations EscalationGate
	Router      *router.Router
	FastPath    *router.FastPath
	State       SessionState
	Extractor   *constraints.Extractor
	Constraints ConstraintUpdater
	Tiers       *tiers.Registry
	Providers   ProviderSource
	Scheduler   tools.Scheduler
	TurnLog     TurnLog
	FollowUps   FollowUps // optional
	Logger      *slog.Logger

	// LogFailFast makes turn-log failures abort the turn instead of
	// being retried in the background.
	LogFailFast bool
}

// TurnContext is the mutable state threaded through the steps.
type TurnContext struct {
	Request  models.MessageRequest
	Language lang.Language

	Session     *session.Record
	Decision    session.Decision
	PrevSummary string

	Hydrated *hydrate.Context
	Route    router.Route

	Constraints        models.ConstraintBlock
	ConstraintsChanged bool
	ConstraintsDelta   models.ConstraintUpdate

	Narrowing *NarrowingInstruction
	Executor  *tools.Executor

	Response  string
	FastPath  bool
	LatencyMs int
	Loop      *llm.LoopResult

	// done marks an early return; later steps are skipped.
	done bool
}

// TurnResult is the pipeline's outcome for one inbound message.
type TurnResult struct {
	SessionID string
	Text      string
	Language  lang.Language
	Lane      router.Lane
	FastPath  bool
	LatencyMs int

	HallucinationBlocked bool
	ResponseFlagged      bool
}

type step struct {
	name string
	run  func(ctx context.Context, tc *TurnContext) error
}

// Pipeline is the fixed step sequence. Construct with New.
type Pipeline struct {
	deps  Deps
	steps []step
	now   func() time.Time
}

// New builds the pipeline with its canonical step order.
func New(deps Deps) *Pipeline {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	p := &Pipeline{deps: deps, now: time.Now}
	p.steps = []step{
		{"session", p.stepSession},
		{"hydrate", p.stepHydrate},
		{"escalation_check", p.stepEscalationCheck},
		{"route", p.stepRoute},
		{"constraints", p.stepConstraints},
		{"narrowing", p.stepNarrowing},
		{"generate", p.stepGenerate},
		{"post_process", p.stepPostProcess},
	}
	return p
}

// Process runs one inbound message through the steps.
func (p *Pipeline) Process(ctx context.Context, req models.MessageRequest) (*TurnResult, error) {
	started := p.now()
	tc := &TurnContext{Request: req}

	for _, s := range p.steps {
		if tc.done && s.name != "post_process" {
			continue
		}
		if err := s.run(ctx, tc); err != nil {
			return nil, fmt.Errorf("pipeline step %s: %w", s.name, err)
		}
	}

	if tc.LatencyMs == 0 {
		tc.LatencyMs = int(p.now().Sub(started).Milliseconds())
	}

	result := &TurnResult{
		Text:      tc.Response,
		Language:  tc.Language,
		Lane:      tc.Route.Lane,
		FastPath:  tc.FastPath,
		LatencyMs: tc.LatencyMs,
	}
	if tc.Session != nil {
		result.SessionID = tc.Session.ID
	}
	if tc.Executor != nil {
		stats := tc.Executor.Stats()
		result.HallucinationBlocked = stats.HallucinationBlocked
		result.ResponseFlagged = stats.ResponseFlagged
	}
	return result, nil
}
