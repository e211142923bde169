package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicMessages is the slice of the Anthropic SDK the adapter
// needs. *sdk.MessageService satisfies it; tests pass a mock.
type anthropicMessages interface {
	New(ctx context.Context, params sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicProvider serves one Claude model over the Messages API.
type AnthropicProvider struct {
	msgs  anthropicMessages
	model string
}

// NewAnthropicProvider builds a provider for one model.
func NewAnthropicProvider(apiKey, model string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic: api key is required")
	}
	if model == "" {
		return nil, errors.New("anthropic: model is required")
	}
	client := sdk.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicProvider{msgs: &client.Messages, model: model}, nil
}

// Model returns the model this provider serves.
func (p *AnthropicProvider) Model() string { return p.model }

// Generate runs a tool-free completion.
func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	return p.GenerateWithTools(ctx, req, nil)
}

// GenerateWithTools runs one Messages.New call and normalizes the
// result. The raw assistant message rides along in AssistantMeta so
// the tool loop can thread it back verbatim.
func (p *AnthropicProvider) GenerateWithTools(ctx context.Context, req Request, tools []ToolDefinition) (*Response, error) {
	params, err := p.buildParams(req, tools)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	msg, err := p.msgs.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic messages.new: %w", err)
	}
	resp, err := translateAnthropic(msg)
	if err != nil {
		return nil, err
	}
	resp.LatencyMs = int(time.Since(start).Milliseconds())
	return resp, nil
}

func (p *AnthropicProvider) buildParams(req Request, tools []ToolDefinition) (sdk.MessageNewParams, error) {
	msgs, err := encodeAnthropicMessages(req.Messages)
	if err != nil {
		return sdk.MessageNewParams{}, err
	}
	if len(msgs) == 0 {
		return sdk.MessageNewParams{}, errors.New("anthropic: at least one message is required")
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	params := sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: int64(maxTokens),
		Messages:  msgs,
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}
	if len(tools) > 0 {
		encoded, err := encodeAnthropicTools(tools)
		if err != nil {
			return sdk.MessageNewParams{}, err
		}
		params.Tools = encoded
	}
	return params, nil
}

// encodeAnthropicMessages maps the neutral transcript onto the
// Anthropic turn structure. Consecutive tool results collapse into a
// single user message, which the API requires after a tool_use turn.
func encodeAnthropicMessages(msgs []Message) ([]sdk.MessageParam, error) {
	out := make([]sdk.MessageParam, 0, len(msgs))
	var pendingResults []sdk.ContentBlockParamUnion

	flush := func() {
		if len(pendingResults) > 0 {
			out = append(out, sdk.NewUserMessage(pendingResults...))
			pendingResults = nil
		}
	}

	for _, m := range msgs {
		switch m.Role {
		case RoleTool:
			if m.ToolCallID == "" {
				return nil, errors.New("anthropic: tool result message missing tool call id")
			}
			pendingResults = append(pendingResults, sdk.NewToolResultBlock(m.ToolCallID, m.Content, m.IsError))
		case RoleAssistant:
			flush()
			if meta, ok := m.ProviderMeta.(sdk.MessageParam); ok {
				out = append(out, meta)
				continue
			}
			if m.Content == "" {
				continue
			}
			out = append(out, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		case RoleUser:
			flush()
			out = append(out, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		case RoleSystem:
			// System text belongs in Request.System; skip stray entries.
		default:
			return nil, fmt.Errorf("anthropic: unsupported message role %q", m.Role)
		}
	}
	flush()
	return out, nil
}

func encodeAnthropicTools(defs []ToolDefinition) ([]sdk.ToolUnionParam, error) {
	out := make([]sdk.ToolUnionParam, 0, len(defs))
	for _, def := range defs {
		if def.Name == "" {
			return nil, errors.New("anthropic: tool definition missing name")
		}
		schema := sdk.ToolInputSchemaParam{}
		if props, ok := def.InputSchema["properties"]; ok {
			schema.Properties = props
		}
		if required, ok := def.InputSchema["required"]; ok {
			schema.ExtraFields = map[string]any{"required": required}
		}
		u := sdk.ToolUnionParamOfTool(schema, def.Name)
		if u.OfTool != nil && def.Description != "" {
			u.OfTool.Description = sdk.String(def.Description)
		}
		out = append(out, u)
	}
	return out, nil
}

func translateAnthropic(msg *sdk.Message) (*Response, error) {
	if msg == nil {
		return nil, errors.New("anthropic: nil response message")
	}
	resp := &Response{AssistantMeta: msg.ToParam()}
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			if block.Text == "" {
				continue
			}
			if resp.Content != "" {
				resp.Content += "\n"
			}
			resp.Content += block.Text
		case "tool_use":
			args := map[string]any{}
			if len(block.Input) > 0 {
				if err := json.Unmarshal(block.Input, &args); err != nil {
					return nil, fmt.Errorf("anthropic: tool %s arguments: %w", block.Name, err)
				}
			}
			resp.ToolCalls = append(resp.ToolCalls, ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: args,
			})
		}
	}
	resp.Usage = Usage{
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}
	return resp, nil
}
