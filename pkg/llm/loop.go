package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ToolRunner executes the tool calls a model emits during a loop.
// Run returns the tool result body; a non-nil error is surfaced to
// the model as an error result, not to the caller.
type ToolRunner interface {
	Definitions() []ToolDefinition
	Run(ctx context.Context, call ToolCall) (string, error)
}

const (
	defaultMaxLoopTurns  = 5
	defaultLoopDeadline  = 20 * time.Second
	defaultFallbackLimit = 10 * time.Second
)

// LoopConfig tunes the tool loop. Zero values take the defaults.
type LoopConfig struct {
	MaxTurns int
	// Deadline caps the whole loop, all model and tool calls included.
	Deadline time.Duration
	// FallbackDeadline caps the tool-free retry used when the loop
	// itself fails.
	FallbackDeadline time.Duration
	Logger           *slog.Logger
}

// LoopResult is the outcome of a completed tool loop.
type LoopResult struct {
	Content   string
	Turns     int
	ToolCalls int
	Usage     Usage
	// Fallback marks a response produced by the tool-free retry.
	Fallback bool
	// TurnLimitHit marks a loop that was still requesting tools when
	// the turn budget ran out; Content is the last text the model
	// produced.
	TurnLimitHit bool
}

func (c LoopConfig) withDefaults() LoopConfig {
	if c.MaxTurns <= 0 {
		c.MaxTurns = defaultMaxLoopTurns
	}
	if c.Deadline <= 0 {
		c.Deadline = defaultLoopDeadline
	}
	if c.FallbackDeadline <= 0 {
		c.FallbackDeadline = defaultFallbackLimit
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// RunToolLoop drives the model/tool conversation until the model
// answers in plain text, the turn budget runs out, or the deadline
// passes. Provider failures fall back to a single tool-free
// completion so the patient still gets an answer.
func RunToolLoop(ctx context.Context, provider Provider, req Request, runner ToolRunner, cfg LoopConfig) (*LoopResult, error) {
	cfg = cfg.withDefaults()

	loopCtx, cancel := context.WithTimeout(ctx, cfg.Deadline)
	defer cancel()

	result, err := runLoop(loopCtx, provider, req, runner, cfg)
	if err == nil {
		return result, nil
	}
	cfg.Logger.Warn("tool loop failed, retrying without tools",
		"model", provider.Model(), "error", err)

	fbCtx, fbCancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.FallbackDeadline)
	defer fbCancel()
	resp, fbErr := provider.Generate(fbCtx, req)
	if fbErr != nil {
		return nil, fmt.Errorf("llm: tool loop: %w (fallback: %v)", err, fbErr)
	}
	return &LoopResult{
		Content:  resp.Content,
		Turns:    1,
		Usage:    resp.Usage,
		Fallback: true,
	}, nil
}

func runLoop(ctx context.Context, provider Provider, req Request, runner ToolRunner, cfg LoopConfig) (*LoopResult, error) {
	defs := runner.Definitions()
	result := &LoopResult{}

	for turn := 1; turn <= cfg.MaxTurns; turn++ {
		resp, err := provider.GenerateWithTools(ctx, req, defs)
		if err != nil {
			return nil, err
		}
		result.Turns = turn
		result.Usage.InputTokens += resp.Usage.InputTokens
		result.Usage.OutputTokens += resp.Usage.OutputTokens
		if resp.Content != "" {
			result.Content = resp.Content
		}

		if len(resp.ToolCalls) == 0 {
			return result, nil
		}

		req.Messages = append(req.Messages, Message{
			Role:         RoleAssistant,
			Content:      resp.Content,
			ProviderMeta: resp.AssistantMeta,
		})
		for _, call := range resp.ToolCalls {
			result.ToolCalls++
			body, runErr := runner.Run(ctx, call)
			msg := Message{Role: RoleTool, ToolCallID: call.ID, Content: body}
			if runErr != nil {
				msg.Content = runErr.Error()
				msg.IsError = true
				cfg.Logger.Warn("tool execution failed",
					"tool", call.Name, "error", runErr)
			}
			req.Messages = append(req.Messages, msg)
		}
	}

	result.TurnLimitHit = true
	return result, nil
}
