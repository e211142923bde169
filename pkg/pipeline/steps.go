package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/mediqo/mediqo/pkg/hydrate"
	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/llm"
	"github.com/mediqo/mediqo/pkg/router"
	"github.com/mediqo/mediqo/pkg/session"
	"github.com/mediqo/mediqo/pkg/tiers"
	"github.com/mediqo/mediqo/pkg/tools"
)

func (p *Pipeline) stepSession(ctx context.Context, tc *TurnContext) error {
	req := tc.Request
	tc.Language = p.deps.Language.Resolve(ctx, req.FromPhone, req.Body, "")

	// Pre-extraction for boundary signals only; the real extraction
	// runs later with the clinic timezone.
	probe := p.deps.Extractor.Extract(req.Body, tc.Language, time.UTC)
	signals := session.Signals{
		ExplicitReset:  probe.MetaReset,
		HardCorrection: len(probe.ExcludeDoctors) > 0 && probe.DesiredService != "",
	}

	res, err := p.deps.Sessions.Resolve(ctx, req.ClinicID, req.FromPhone, string(tc.Language), signals)
	if err != nil {
		return err
	}
	tc.Session = res.Session
	tc.Decision = res.Decision
	tc.PrevSummary = res.PrevSummary
	return nil
}

func (p *Pipeline) stepHydrate(ctx context.Context, tc *TurnContext) error {
	hctx, err := p.deps.Hydrator.Hydrate(ctx, hydrate.Input{
		ClinicID:    tc.Request.ClinicID,
		Phone:       tc.Request.FromPhone,
		PushName:    tc.Request.PushName,
		Session:     tc.Session,
		PrevSummary: tc.PrevSummary,
	})
	if err != nil {
		return err
	}
	tc.Hydrated = hctx
	tc.Constraints = hctx.Constraints
	return nil
}

func (p *Pipeline) stepEscalationCheck(ctx context.Context, tc *TurnContext) error {
	open, err := p.deps.Escalations.OpenForPatient(ctx, tc.Request.ClinicID, tc.Hydrated.Patient.PatientID)
	if err != nil {
		// The check is advisory; a probe failure must not drop the turn.
		p.deps.Logger.Warn("escalation check failed", slog.String("error", err.Error()))
		return nil
	}
	if !open {
		return nil
	}
	tc.Response = lang.Fallback(tc.Language)
	tc.done = true
	return nil
}

func (p *Pipeline) stepRoute(ctx context.Context, tc *TurnContext) error {
	tc.Route = p.deps.Router.Classify(tc.Request.Body, tc.Language, tc.Hydrated)

	switch tc.Route.Lane {
	case router.LaneFAQ, router.LanePrice, router.LaneServiceInfo:
	default:
		return nil
	}

	result, err := p.deps.FastPath.Respond(tc.Route, tc.Language, tc.Hydrated)
	if err != nil {
		// Template or data gap: demote to the LLM lane.
		p.deps.Logger.Debug("fast path demoted",
			slog.String("lane", string(tc.Route.Lane)),
			slog.String("error", err.Error()))
		tc.Route.Lane = router.LaneComplex
		return nil
	}

	tc.Response = result.Text
	tc.FastPath = true
	tc.LatencyMs = result.LatencyMs
	if err := p.deps.State.SetConversationState(ctx, tc.Session.ID,
		result.LastServiceMentioned, result.PendingAction); err != nil {
		p.deps.Logger.Warn("conversation state write failed",
			slog.String("session_id", tc.Session.ID),
			slog.String("error", err.Error()))
	}
	tc.done = true
	return nil
}

func (p *Pipeline) stepConstraints(ctx context.Context, tc *TurnContext) error {
	update := p.deps.Extractor.Extract(tc.Request.Body, tc.Language, p.clinicLocation(tc))
	if update.IsEmpty() {
		return nil
	}
	block, err := p.deps.Constraints.Update(ctx, tc.Session.ID, update, tc.Language)
	if err != nil {
		return err
	}
	tc.Constraints = block
	tc.ConstraintsChanged = true
	tc.ConstraintsDelta = update
	return nil
}

func (p *Pipeline) stepNarrowing(_ context.Context, tc *TurnContext) error {
	tc.Narrowing = Narrow(tc.Constraints, tc.Hydrated.Clinic, tc.Language)
	return nil
}

func (p *Pipeline) stepGenerate(ctx context.Context, tc *TurnContext) error {
	tc.Executor = tools.NewExecutor(p.deps.Scheduler, tools.ToolContext{
		ClinicID:    tc.Request.ClinicID,
		Phone:       tc.Request.FromPhone,
		SessionID:   tc.Session.ID,
		PatientID:   tc.Hydrated.Patient.PatientID,
		Language:    tc.Language,
		Clinic:      tc.Hydrated.Clinic,
		Constraints: tc.Constraints,
	}, tools.WithLogger(p.deps.Logger))

	model := p.deps.Tiers.Resolve(tc.Request.ClinicID, tc.Session.ID, tiers.TierToolCalling)
	provider, err := p.deps.Providers.ForModel(model)
	if err != nil {
		return err
	}

	req := llm.Request{
		System:   buildSystemPrompt(tc),
		Messages: conversationMessages(tc),
	}
	loop, err := llm.RunToolLoop(ctx, provider, req, tc.Executor, llm.LoopConfig{Logger: p.deps.Logger})
	if err != nil {
		// Both the loop and the tool-free fallback failed; the patient
		// still gets an answer.
		p.deps.Logger.Error("generation failed",
			slog.String("session_id", tc.Session.ID),
			slog.String("model", model),
			slog.String("error", err.Error()))
		if text, rerr := lang.Render(tc.Language, lang.TplBudgetFallback, nil); rerr == nil {
			tc.Response = text
		} else {
			tc.Response = lang.Fallback(tc.Language)
		}
		return nil
	}

	tc.Loop = loop
	tc.Response = loop.Content
	if tc.Response == "" {
		tc.Response = lang.Fallback(tc.Language)
	}
	tc.Executor.ValidateResponse(tc.Response)
	return nil
}

func (p *Pipeline) stepPostProcess(ctx context.Context, tc *TurnContext) error {
	if tc.ConstraintsChanged && tc.Response != "" {
		if echo := stateEcho(tc.Language, tc.Constraints); echo != "" {
			tc.Response = echo + "\n" + tc.Response
		}
	}

	p.updatePendingAction(ctx, tc)
	p.scheduleFollowUp(ctx, tc)
	return p.logTurn(ctx, tc)
}

// updatePendingAction summarizes what the assistant did this turn into
// the session's pending_action, so the next turn's router can resolve
// a bare "yes".
func (p *Pipeline) updatePendingAction(ctx context.Context, tc *TurnContext) {
	if tc.Executor == nil || tc.Session == nil {
		return
	}
	checked, booked := false, false
	for _, name := range tc.Executor.Stats().Called {
		switch name {
		case tools.ToolCheckAvailability:
			checked = true
		case tools.ToolBookAppointment, tools.ToolReschedule:
			booked = true
		}
	}

	var pending string
	switch {
	case booked:
		pending = ""
	case checked:
		pending = "offer_booking"
	default:
		return
	}
	if err := p.deps.State.SetConversationState(ctx, tc.Session.ID,
		tc.Session.LastServiceMentioned, pending); err != nil {
		p.deps.Logger.Warn("pending action write failed",
			slog.String("session_id", tc.Session.ID),
			slog.String("error", err.Error()))
	}
}

func (p *Pipeline) scheduleFollowUp(ctx context.Context, tc *TurnContext) {
	if p.deps.FollowUps == nil || !promisesFollowUp(tc.Response, tc.Language) {
		return
	}
	due := p.now().Add(4 * time.Hour)
	if err := p.deps.FollowUps.Schedule(ctx, FollowUp{
		ClinicID: tc.Request.ClinicID,
		Phone:    tc.Request.FromPhone,
		Language: string(tc.Language),
		DueAt:    due,
		Note:     "assistant promised a follow-up",
	}); err != nil {
		p.deps.Logger.Warn("follow-up scheduling failed", slog.String("error", err.Error()))
	}
}

func (p *Pipeline) clinicLocation(tc *TurnContext) *time.Location {
	tz := tc.Hydrated.Clinic.Timezone
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}
