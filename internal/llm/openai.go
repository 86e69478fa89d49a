package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const openaiDefaultModel = "gpt-5.1"

// OpenAIProvider talks to the OpenAI chat completions API.
type OpenAIProvider struct {
	apiKey string
	client *openai.Client
}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	p := &OpenAIProvider{apiKey: apiKey}
	if apiKey != "" {
		p.client = openai.NewClient(apiKey)
	}
	return p
}

func (p *OpenAIProvider) Name() string         { return "openai" }
func (p *OpenAIProvider) DefaultModel() string { return openaiDefaultModel }
func (p *OpenAIProvider) IsAvailable() bool    { return p.apiKey != "" && p.client != nil }

func (p *OpenAIProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if !p.IsAvailable() {
		return nil, fmt.Errorf("openai provider not configured: missing OPENAI_API_KEY")
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("empty message history")
	}

	modelID := req.Model
	if modelID == "" {
		modelID = openaiDefaultModel
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	for _, msg := range req.Messages {
		role := openai.ChatMessageRoleUser
		if msg.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}

	chatReq := openai.ChatCompletionRequest{
		Model:    modelID,
		Messages: messages,
	}
	// Reasoning effort is only forwarded for models that advertise the knob.
	if info := GetModelInfo(modelID); info != nil && info.ReasoningParam == ReasoningEffort {
		if req.Reasoning != "" && req.Reasoning != "none" {
			chatReq.ReasoningEffort = req.Reasoning
		}
	}

	start := time.Now()
	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("openai generate: %w", err)
	}
	latency := time.Since(start)

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}
	text := resp.Choices[0].Message.Content

	out := &GenerateResponse{
		Text:         text,
		Provider:     "openai",
		Model:        modelID,
		LatencyMS:    float64(latency.Milliseconds()),
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}
	if out.InputTokens == 0 && out.OutputTokens == 0 {
		out.InputTokens = estimateTokens(req.SystemPrompt)
		out.OutputTokens = estimateTokens(text)
	}
	return out, nil
}
