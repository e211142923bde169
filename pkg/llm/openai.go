package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	oai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

// openaiCompletions is the slice of the OpenAI SDK the adapter needs.
// *oai.ChatCompletionService satisfies it; tests pass a mock.
type openaiCompletions interface {
	New(ctx context.Context, params oai.ChatCompletionNewParams, opts ...option.RequestOption) (*oai.ChatCompletion, error)
}

// OpenAIProvider serves one model over the Chat Completions API.
type OpenAIProvider struct {
	chat  openaiCompletions
	model string
}

// NewOpenAIProvider builds a provider for one model.
func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("openai: api key is required")
	}
	if model == "" {
		return nil, errors.New("openai: model is required")
	}
	client := oai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{chat: &client.Chat.Completions, model: model}, nil
}

// Model returns the model this provider serves.
func (p *OpenAIProvider) Model() string { return p.model }

// Generate runs a tool-free completion.
func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	return p.GenerateWithTools(ctx, req, nil)
}

// GenerateWithTools runs one Chat.Completions.New call and normalizes
// the result, carrying the raw assistant message in AssistantMeta.
func (p *OpenAIProvider) GenerateWithTools(ctx context.Context, req Request, tools []ToolDefinition) (*Response, error) {
	params, err := p.buildParams(req, tools)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	completion, err := p.chat.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai chat.completions.new: %w", err)
	}
	resp, err := translateOpenAI(completion)
	if err != nil {
		return nil, err
	}
	resp.LatencyMs = int(time.Since(start).Milliseconds())
	return resp, nil
}

func (p *OpenAIProvider) buildParams(req Request, tools []ToolDefinition) (oai.ChatCompletionNewParams, error) {
	msgs, err := encodeOpenAIMessages(req)
	if err != nil {
		return oai.ChatCompletionNewParams{}, err
	}
	if len(msgs) == 0 {
		return oai.ChatCompletionNewParams{}, errors.New("openai: at least one message is required")
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	params := oai.ChatCompletionNewParams{
		Model:               shared.ChatModel(p.model),
		Messages:            msgs,
		MaxCompletionTokens: oai.Int(int64(maxTokens)),
	}
	if req.Temperature > 0 {
		params.Temperature = oai.Float(req.Temperature)
	}
	if len(tools) > 0 {
		params.Tools = encodeOpenAITools(tools)
	}
	return params, nil
}

func encodeOpenAIMessages(req Request) ([]oai.ChatCompletionMessageParamUnion, error) {
	out := make([]oai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.System != "" {
		out = append(out, oai.SystemMessage(req.System))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case RoleUser:
			out = append(out, oai.UserMessage(m.Content))
		case RoleAssistant:
			if meta, ok := m.ProviderMeta.(oai.ChatCompletionMessageParamUnion); ok {
				out = append(out, meta)
				continue
			}
			if m.Content == "" {
				continue
			}
			out = append(out, oai.AssistantMessage(m.Content))
		case RoleTool:
			if m.ToolCallID == "" {
				return nil, errors.New("openai: tool result message missing tool call id")
			}
			// The wire format has no error flag on tool messages; the
			// result body carries it.
			content := m.Content
			if m.IsError {
				content = `{"error":` + quoteJSON(m.Content) + `}`
			}
			out = append(out, oai.ToolMessage(content, m.ToolCallID))
		case RoleSystem:
			out = append(out, oai.SystemMessage(m.Content))
		default:
			return nil, fmt.Errorf("openai: unsupported message role %q", m.Role)
		}
	}
	return out, nil
}

func quoteJSON(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

func encodeOpenAITools(defs []ToolDefinition) []oai.ChatCompletionToolUnionParam {
	out := make([]oai.ChatCompletionToolUnionParam, 0, len(defs))
	for _, def := range defs {
		fn := shared.FunctionDefinitionParam{
			Name:       def.Name,
			Parameters: shared.FunctionParameters(def.InputSchema),
		}
		if def.Description != "" {
			fn.Description = oai.String(def.Description)
		}
		out = append(out, oai.ChatCompletionFunctionTool(fn))
	}
	return out
}

func translateOpenAI(completion *oai.ChatCompletion) (*Response, error) {
	if completion == nil || len(completion.Choices) == 0 {
		return nil, errors.New("openai: empty completion")
	}
	choice := completion.Choices[0]
	resp := &Response{
		Content:       choice.Message.Content,
		AssistantMeta: choice.Message.ToParam(),
	}
	for _, call := range choice.Message.ToolCalls {
		args := map[string]any{}
		if raw := call.Function.Arguments; raw != "" {
			if err := json.Unmarshal([]byte(raw), &args); err != nil {
				return nil, fmt.Errorf("openai: tool %s arguments: %w", call.Function.Name, err)
			}
		}
		resp.ToolCalls = append(resp.ToolCalls, ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: args,
		})
	}
	resp.Usage = Usage{
		InputTokens:  int(completion.Usage.PromptTokens),
		OutputTokens: int(completion.Usage.CompletionTokens),
	}
	return resp, nil
}
