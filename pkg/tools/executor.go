package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/llm"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/scheduling"
)

const (
	// defaultCallBudget bounds tool calls per turn.
	defaultCallBudget = 8
	// defaultCalendarBudget bounds calendar-affecting calls per turn.
	defaultCalendarBudget = 3
)

// Scheduler is the slice of the scheduling engine the tools need.
type Scheduler interface {
	SuggestSlots(ctx context.Context, input models.SuggestSlotsInput) (*models.SuggestSlotsResult, error)
	HoldSlot(ctx context.Context, input models.HoldSlotInput) (*models.HoldSlotResult, error)
	ConfirmHold(ctx context.Context, input models.ConfirmHoldInput) (*models.ConfirmHoldResult, error)
	CancelAppointment(ctx context.Context, input scheduling.CancelInput) error
}

// ToolContext is the bounded context handed to tool implementations.
// Tools see only what is here; they never reach back into the
// pipeline's state.
type ToolContext struct {
	ClinicID    string
	Phone       string
	SessionID   string
	PatientID   string
	Language    lang.Language
	Clinic      models.ClinicProfile
	Constraints models.ConstraintBlock
}

// AuditEntry records one mediated call for the per-turn audit list.
type AuditEntry struct {
	Tool          string         `json:"tool"`
	Arguments     map[string]any `json:"arguments"`
	OK            bool           `json:"ok"`
	BlockedReason string         `json:"blocked_reason,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// Stats summarizes the executor's view of the turn.
type Stats struct {
	Called []string
	Failed []string
	// HallucinationBlocked is set when a call was refused because the
	// model invented data: an unknown doctor or service, a slot that
	// was never offered, or a booking with no prior availability
	// check. Constraint-based refusals do not set it.
	HallucinationBlocked bool
	// ResponseFlagged is set by ValidateResponse when the final text
	// states concrete times or prices no successful tool call backs.
	ResponseFlagged bool
}

type priorEntry struct {
	ok      bool
	payload any
}

// Executor mediates one turn's tool calls. It is not safe for
// concurrent use; the tool loop dispatches sequentially.
type Executor struct {
	scheduler Scheduler
	tctx      ToolContext
	logger    *slog.Logger

	budget         int
	calendarBudget int
	prior          map[string]priorEntry
	audit          []AuditEntry
	stats          Stats
}

// ExecutorOption tunes a per-turn executor.
type ExecutorOption func(*Executor)

// WithCallBudget overrides the per-turn tool call budget.
func WithCallBudget(n int) ExecutorOption {
	return func(e *Executor) { e.budget = n }
}

// WithCalendarBudget overrides the per-turn calendar call budget.
func WithCalendarBudget(n int) ExecutorOption {
	return func(e *Executor) { e.calendarBudget = n }
}

// WithLogger overrides the executor's logger.
func WithLogger(logger *slog.Logger) ExecutorOption {
	return func(e *Executor) { e.logger = logger }
}

// NewExecutor creates the executor for one turn.
func NewExecutor(scheduler Scheduler, tctx ToolContext, opts ...ExecutorOption) *Executor {
	e := &Executor{
		scheduler:      scheduler,
		tctx:           tctx,
		logger:         slog.Default(),
		budget:         defaultCallBudget,
		calendarBudget: defaultCalendarBudget,
		prior:          map[string]priorEntry{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Definitions implements llm.ToolRunner.
func (e *Executor) Definitions() []llm.ToolDefinition {
	return Definitions()
}

// Stats returns the turn's counters so far.
func (e *Executor) Stats() Stats {
	return e.stats
}

// Audit returns the per-turn audit list.
func (e *Executor) Audit() []AuditEntry {
	return e.audit
}

// Run implements llm.ToolRunner. A returned error is surfaced to the
// model as an error tool result so it can correct itself.
func (e *Executor) Run(ctx context.Context, call llm.ToolCall) (string, error) {
	if e.budget <= 0 {
		return "", e.block(call, false, "tool call budget for this turn is exhausted")
	}
	e.budget--

	args := call.Arguments
	if args == nil {
		args = map[string]any{}
	}

	if schedulingTools[call.Name] {
		rewritten, gateErr := e.gate(call.Name, args)
		if gateErr != nil {
			return "", e.block(call, gateErr.hallucination, gateErr.message)
		}
		args = rewritten
	}

	if dep, ok := toolDependencies[call.Name]; ok {
		if prev, found := e.prior[dep]; !found || !prev.ok {
			return "", e.block(call, true,
				fmt.Sprintf("%s requires a successful %s call first", call.Name, dep))
		}
	}

	if calendarTools[call.Name] {
		if e.calendarBudget <= 0 {
			return "", e.block(call, false, "calendar call budget for this turn is exhausted")
		}
		e.calendarBudget--
	}

	payload, err := e.dispatch(ctx, call.Name, args)
	if err != nil {
		e.prior[call.Name] = priorEntry{ok: false}
		e.stats.Failed = append(e.stats.Failed, call.Name)
		e.audit = append(e.audit, AuditEntry{Tool: call.Name, Arguments: args, Error: err.Error()})
		e.logger.Warn("tool call failed",
			slog.String("tool", call.Name),
			slog.String("error", err.Error()))
		return "", err
	}

	e.prior[call.Name] = priorEntry{ok: true, payload: payload}
	e.stats.Called = append(e.stats.Called, call.Name)
	e.audit = append(e.audit, AuditEntry{Tool: call.Name, Arguments: args, OK: true})

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode %s result: %w", call.Name, err)
	}
	return string(body), nil
}

// block records a refused call and returns the model-visible error.
func (e *Executor) block(call llm.ToolCall, hallucination bool, reason string) error {
	if hallucination {
		e.stats.HallucinationBlocked = true
	}
	e.stats.Failed = append(e.stats.Failed, call.Name)
	e.audit = append(e.audit, AuditEntry{
		Tool:          call.Name,
		Arguments:     call.Arguments,
		BlockedReason: reason,
	})
	e.logger.Info("tool call blocked",
		slog.String("tool", call.Name),
		slog.Bool("hallucination", hallucination),
		slog.String("reason", reason))
	return fmt.Errorf("%s", reason)
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
