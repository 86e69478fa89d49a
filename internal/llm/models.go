package llm

// ModelInfo describes one catalog entry: which provider serves it and how its
// reasoning knob (if any) is expressed.
type ModelInfo struct {
	Provider         string            `json:"provider"`
	Label            string            `json:"label"`
	Description      string            `json:"description"`
	ReasoningParam   string            `json:"reasoning_param,omitempty"`
	ReasoningOptions []string          `json:"reasoning_options,omitempty"`
	ReasoningLabels  map[string]string `json:"reasoning_labels,omitempty"`
	ReasoningDefault string            `json:"reasoning_default,omitempty"`
}

// Reasoning parameter shapes: an effort level (openai) or a thinking token
// budget (anthropic).
const (
	ReasoningEffort   = "effort"
	ReasoningThinking = "thinking"
)

// anthropicThinkingLabels is shared by every Claude entry.
var anthropicThinkingLabels = map[string]string{
	"off": "Off", "1024": "1K tokens", "4096": "4K tokens",
	"10000": "10K tokens", "32000": "32K tokens",
}

// ModelCatalog defines every selectable model. Ollama models are dynamic and
// added per-instance by the registry instead.
var ModelCatalog = map[string]ModelInfo{
	// OpenAI
	"gpt-5.2": {
		Provider:         "openai",
		Label:            "GPT-5.2",
		Description:      "Latest flagship, strongest reasoning",
		ReasoningParam:   ReasoningEffort,
		ReasoningOptions: []string{"none", "low", "medium", "high", "xhigh"},
		ReasoningDefault: "high",
	},
	"gpt-5.1": {
		Provider:         "openai",
		Label:            "GPT-5.1",
		Description:      "Strong general purpose",
		ReasoningParam:   ReasoningEffort,
		ReasoningOptions: []string{"none", "low", "medium", "high"},
		ReasoningDefault: "high",
	},
	"gpt-4.1-mini": {
		Provider:    "openai",
		Label:       "GPT-4.1 Mini",
		Description: "Fast and affordable",
	},
	"o4-mini": {
		Provider:         "openai",
		Label:            "o4-mini",
		Description:      "Fast reasoning model",
		ReasoningParam:   ReasoningEffort,
		ReasoningOptions: []string{"low", "medium", "high"},
		ReasoningDefault: "medium",
	},
	// Anthropic
	"claude-opus-4-6": {
		Provider:         "anthropic",
		Label:            "Claude Opus 4.6",
		Description:      "Latest flagship, 1M context, adaptive thinking",
		ReasoningParam:   ReasoningThinking,
		ReasoningOptions: []string{"off", "1024", "4096", "10000", "32000"},
		ReasoningLabels:  anthropicThinkingLabels,
		ReasoningDefault: "off",
	},
	"claude-sonnet-4-5": {
		Provider:         "anthropic",
		Label:            "Claude Sonnet 4.5",
		Description:      "Strong general purpose",
		ReasoningParam:   ReasoningThinking,
		ReasoningOptions: []string{"off", "1024", "4096", "10000", "32000"},
		ReasoningLabels:  anthropicThinkingLabels,
		ReasoningDefault: "off",
	},
	"claude-haiku-4-5": {
		Provider:         "anthropic",
		Label:            "Claude Haiku 4.5",
		Description:      "Fast and affordable",
		ReasoningParam:   ReasoningThinking,
		ReasoningOptions: []string{"off", "1024", "4096", "10000"},
		ReasoningLabels:  anthropicThinkingLabels,
		ReasoningDefault: "off",
	},
	// Google
	"gemini-2.5-pro": {
		Provider:    "google",
		Label:       "Gemini 2.5 Pro",
		Description: "Strong reasoning",
	},
	"gemini-2.5-flash": {
		Provider:    "google",
		Label:       "Gemini 2.5 Flash",
		Description: "Fast and affordable",
	},
}

// GetModelInfo returns the catalog entry for a model id, or nil.
func GetModelInfo(modelID string) *ModelInfo {
	if info, ok := ModelCatalog[modelID]; ok {
		return &info
	}
	return nil
}

// ModelsForProvider returns the catalog entries served by one provider.
func ModelsForProvider(provider string) map[string]ModelInfo {
	out := make(map[string]ModelInfo)
	for id, info := range ModelCatalog {
		if info.Provider == provider {
			out[id] = info
		}
	}
	return out
}
