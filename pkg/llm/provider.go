// Package llm normalizes the Anthropic and OpenAI chat APIs behind a
// single Provider interface and runs the bounded tool-calling loop.
package llm

import (
	"context"
	"errors"
)

// Role values for conversation messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one provider-neutral conversation message. Assistant
// messages that carried tool calls keep the provider's native form in
// ProviderMeta so the adapter can thread the follow-up request without
// lossy re-encoding.
type Message struct {
	Role    string
	Content string
	// ToolCallID links a tool-result message to the call it answers.
	ToolCallID string
	// IsError marks a tool-result message as a failed execution.
	IsError bool
	// ProviderMeta is the adapter's opaque continuation payload.
	ProviderMeta any
}

// ToolCall is one tool invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// ToolDefinition describes one callable tool to the model.
type ToolDefinition struct {
	Name        string
	Description string
	// InputSchema is a JSON-schema object for the arguments.
	InputSchema map[string]any
}

// Usage is the token accounting for one generation.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Response is a normalized generation result.
type Response struct {
	Content   string
	ToolCalls []ToolCall
	Usage     Usage
	LatencyMs int
	// AssistantMeta is the provider-native assistant message, passed
	// back via Message.ProviderMeta when threading tool results.
	AssistantMeta any
}

// Request is one generation request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Provider is one configured model on one vendor API.
type Provider interface {
	Model() string
	Generate(ctx context.Context, req Request) (*Response, error)
	GenerateWithTools(ctx context.Context, req Request, tools []ToolDefinition) (*Response, error)
}

// ErrNoProvider is returned when no adapter can serve a model name.
var ErrNoProvider = errors.New("llm: no provider for model")

const defaultMaxTokens = 1024
