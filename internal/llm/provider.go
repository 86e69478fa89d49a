// Package llm routes chat generation through a registry of vendor providers
// with ordered auto-selection.
package llm

import "context"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateRequest carries a grounded system prompt, the conversation so far,
// and optional per-request model/reasoning overrides.
type GenerateRequest struct {
	SystemPrompt string
	Messages     []Message
	// Model overrides the provider default when non-empty.
	Model string
	// Reasoning is the raw reasoning setting from the client; each adapter
	// interprets it according to the model's reasoning parameter type.
	Reasoning string
}

// GenerateResponse is the provider-agnostic completion result. Token counts
// are estimates when the vendor response omits usage metadata.
type GenerateResponse struct {
	Text         string  `json:"text"`
	Provider     string  `json:"provider"`
	Model        string  `json:"model"`
	LatencyMS    float64 `json:"latency_ms"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
}

// Provider is the single capability every vendor adapter implements.
// IsAvailable must be cheap: the registry calls it to select or skip
// providers without invoking them.
type Provider interface {
	Name() string
	DefaultModel() string
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	IsAvailable() bool
}

// estimateTokens is the fallback when a vendor omits usage metadata:
// roughly 4 characters per token.
func estimateTokens(text string) int {
	n := len(text) / 4
	if n < 1 {
		n = 1
	}
	return n
}
