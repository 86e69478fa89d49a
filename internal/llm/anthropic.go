package llm

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicDefaultModel = "claude-sonnet-4-5"

// AnthropicProvider talks to the Anthropic Messages API, with extended
// thinking for models that advertise the knob.
type AnthropicProvider struct {
	apiKey string
	client anthropic.Client
}

func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	p := &AnthropicProvider{apiKey: apiKey}
	if apiKey != "" {
		p.client = anthropic.NewClient(option.WithAPIKey(apiKey))
	}
	return p
}

func (p *AnthropicProvider) Name() string         { return "anthropic" }
func (p *AnthropicProvider) DefaultModel() string { return anthropicDefaultModel }
func (p *AnthropicProvider) IsAvailable() bool    { return p.apiKey != "" }

func (p *AnthropicProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if !p.IsAvailable() {
		return nil, fmt.Errorf("anthropic provider not configured: missing ANTHROPIC_API_KEY")
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("empty message history")
	}

	modelID := req.Model
	if modelID == "" {
		modelID = anthropicDefaultModel
	}

	msgs := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, msg := range req.Messages {
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == RoleAssistant {
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		} else {
			msgs = append(msgs, anthropic.NewUserMessage(block))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 2048,
		Messages:  msgs,
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}
	if budget := thinkingBudget(modelID, req.Reasoning); budget > 0 {
		params.Thinking = anthropic.ThinkingConfigParamOfEnabled(budget)
		// Leave room for the visible answer on top of the thinking budget.
		if params.MaxTokens < budget+4000 {
			params.MaxTokens = budget + 4000
		}
	}

	start := time.Now()
	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic generate: %w", err)
	}
	latency := time.Since(start)

	// Thinking blocks precede the text block; the visible answer is the text.
	text := ""
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}

	out := &GenerateResponse{
		Text:         text,
		Provider:     "anthropic",
		Model:        modelID,
		LatencyMS:    float64(latency.Milliseconds()),
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}
	if out.InputTokens == 0 && out.OutputTokens == 0 {
		out.InputTokens = estimateTokens(req.SystemPrompt)
		out.OutputTokens = estimateTokens(text)
	}
	return out, nil
}

// thinkingBudget resolves the client's thinking setting to a token budget.
// The API requires at least 1024 tokens; "off", values below the floor, and
// anything non-numeric disable thinking, as does a model without the knob.
func thinkingBudget(modelID, reasoning string) int64 {
	info := GetModelInfo(modelID)
	if info == nil || info.ReasoningParam != ReasoningThinking {
		return 0
	}
	if reasoning == "" || reasoning == "off" {
		return 0
	}
	n, err := strconv.ParseInt(reasoning, 10, 64)
	if err != nil || n < 1024 {
		return 0
	}
	return n
}
