package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider replays canned responses and records the requests
// it saw.
type scriptedProvider struct {
	responses []*Response
	errs      []error
	requests  []Request
}

func (p *scriptedProvider) Model() string { return "scripted" }

func (p *scriptedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	return p.GenerateWithTools(ctx, req, nil)
}

func (p *scriptedProvider) GenerateWithTools(ctx context.Context, req Request, _ []ToolDefinition) (*Response, error) {
	idx := len(p.requests)
	p.requests = append(p.requests, req)
	if idx < len(p.errs) && p.errs[idx] != nil {
		return nil, p.errs[idx]
	}
	if idx >= len(p.responses) {
		return nil, errors.New("provider called more times than scripted")
	}
	return p.responses[idx], nil
}

type recordingRunner struct {
	defs    []ToolDefinition
	results map[string]string
	errs    map[string]error
	calls   []ToolCall
}

func (r *recordingRunner) Definitions() []ToolDefinition { return r.defs }

func (r *recordingRunner) Run(_ context.Context, call ToolCall) (string, error) {
	r.calls = append(r.calls, call)
	if err, ok := r.errs[call.Name]; ok {
		return "", err
	}
	return r.results[call.Name], nil
}

func TestRunToolLoop_PlainAnswerFirstTurn(t *testing.T) {
	provider := &scriptedProvider{responses: []*Response{
		{Content: "We are open 9 to 6.", Usage: Usage{InputTokens: 10, OutputTokens: 5}},
	}}
	runner := &recordingRunner{}

	res, err := RunToolLoop(context.Background(), provider, Request{
		Messages: []Message{{Role: RoleUser, Content: "hours?"}},
	}, runner, LoopConfig{})
	require.NoError(t, err)
	assert.Equal(t, "We are open 9 to 6.", res.Content)
	assert.Equal(t, 1, res.Turns)
	assert.Zero(t, res.ToolCalls)
	assert.False(t, res.Fallback)
	assert.Empty(t, runner.calls)
}

func TestRunToolLoop_ThreadsToolResults(t *testing.T) {
	provider := &scriptedProvider{responses: []*Response{
		{
			ToolCalls:     []ToolCall{{ID: "call-1", Name: "check_availability", Arguments: map[string]any{"service_id": "S1"}}},
			AssistantMeta: "native-assistant-msg",
			Usage:         Usage{InputTokens: 20, OutputTokens: 8},
		},
		{Content: "Tuesday at 11:00 is free.", Usage: Usage{InputTokens: 30, OutputTokens: 12}},
	}}
	runner := &recordingRunner{
		defs:    []ToolDefinition{{Name: "check_availability", Description: "d", InputSchema: map[string]any{"type": "object"}}},
		results: map[string]string{"check_availability": `{"slots":["2025-11-25T11:00"]}`},
	}

	res, err := RunToolLoop(context.Background(), provider, Request{
		Messages: []Message{{Role: RoleUser, Content: "book cleaning tomorrow"}},
	}, runner, LoopConfig{})
	require.NoError(t, err)
	assert.Equal(t, "Tuesday at 11:00 is free.", res.Content)
	assert.Equal(t, 2, res.Turns)
	assert.Equal(t, 1, res.ToolCalls)
	assert.Equal(t, Usage{InputTokens: 50, OutputTokens: 20}, res.Usage)

	// Second request must carry the assistant continuation and the
	// tool result, in order.
	require.Len(t, provider.requests, 2)
	msgs := provider.requests[1].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, RoleAssistant, msgs[1].Role)
	assert.Equal(t, "native-assistant-msg", msgs[1].ProviderMeta)
	assert.Equal(t, RoleTool, msgs[2].Role)
	assert.Equal(t, "call-1", msgs[2].ToolCallID)
	assert.JSONEq(t, `{"slots":["2025-11-25T11:00"]}`, msgs[2].Content)
}

func TestRunToolLoop_ToolErrorFedBackAsErrorResult(t *testing.T) {
	provider := &scriptedProvider{responses: []*Response{
		{ToolCalls: []ToolCall{{ID: "call-1", Name: "book_appointment"}}},
		{Content: "That slot was just taken, shall I look again?"},
	}}
	runner := &recordingRunner{
		errs: map[string]error{"book_appointment": errors.New("slot no longer available")},
	}

	res, err := RunToolLoop(context.Background(), provider, Request{
		Messages: []Message{{Role: RoleUser, Content: "book it"}},
	}, runner, LoopConfig{})
	require.NoError(t, err)
	assert.Equal(t, "That slot was just taken, shall I look again?", res.Content)

	msgs := provider.requests[1].Messages
	last := msgs[len(msgs)-1]
	assert.True(t, last.IsError)
	assert.Equal(t, "slot no longer available", last.Content)
}

func TestRunToolLoop_TurnLimitReturnsLastContent(t *testing.T) {
	loop := &Response{
		Content:   "Still checking...",
		ToolCalls: []ToolCall{{ID: "c", Name: "check_availability"}},
	}
	provider := &scriptedProvider{responses: []*Response{loop, loop, loop}}
	runner := &recordingRunner{results: map[string]string{"check_availability": "{}"}}

	res, err := RunToolLoop(context.Background(), provider, Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}, runner, LoopConfig{MaxTurns: 3})
	require.NoError(t, err)
	assert.True(t, res.TurnLimitHit)
	assert.Equal(t, "Still checking...", res.Content)
	assert.Equal(t, 3, res.Turns)
	assert.Equal(t, 3, res.ToolCalls)
}

func TestRunToolLoop_FallbackOnProviderFailure(t *testing.T) {
	provider := &scriptedProvider{
		errs: []error{errors.New("upstream 500")},
		responses: []*Response{
			nil, // consumed by the failing turn
			{Content: "Sorry, let me answer directly."},
		},
	}
	runner := &recordingRunner{}

	res, err := RunToolLoop(context.Background(), provider, Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}, runner, LoopConfig{})
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, "Sorry, let me answer directly.", res.Content)
}

func TestRunToolLoop_FallbackFailureSurfacesBothErrors(t *testing.T) {
	provider := &scriptedProvider{
		errs: []error{errors.New("upstream 500"), errors.New("still down")},
	}
	_, err := RunToolLoop(context.Background(), provider, Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}, &recordingRunner{}, LoopConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream 500")
	assert.Contains(t, err.Error(), "still down")
}
