package models

import "github.com/nratzan/dit-2026/internal/llm"

// ChatRequest is the body of POST /chat/api/message.
type ChatRequest struct {
	Message   string        `json:"message" binding:"required,min=1,max=4000"`
	Provider  string        `json:"provider,omitempty"`
	Model     string        `json:"model,omitempty"`
	Reasoning string        `json:"reasoning,omitempty"`
	History   []llm.Message `json:"history,omitempty"`
}

// ChatResponse is the reply to a chat message, including which backend served
// it and the grounding chunks that were fed to the model.
type ChatResponse struct {
	Reply        string       `json:"reply"`
	Provider     string       `json:"provider"`
	Model        string       `json:"model"`
	LatencyMS    float64      `json:"latency_ms"`
	InputTokens  int          `json:"input_tokens"`
	OutputTokens int          `json:"output_tokens"`
	Sources      []ChatSource `json:"sources"`
}

// ChatSource identifies one retrieved chunk used to ground a reply.
type ChatSource struct {
	SourceFile   string  `json:"source_file"`
	SectionTitle string  `json:"section_title"`
	Score        float64 `json:"score"`
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query string `json:"query" binding:"required,min=1,max=1000"`
	TopK  int    `json:"top_k,omitempty"`
}

// AssessRequest is the body of POST /api/assess: raw questionnaire answers
// keyed by question id. Level answers are numbers, stage answers letters.
type AssessRequest struct {
	Answers map[string]any `json:"answers" binding:"required"`
}
