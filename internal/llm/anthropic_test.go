package llm

import (
	"context"
	"testing"
)

func TestAnthropicUnavailableWithoutKey(t *testing.T) {
	p := NewAnthropicProvider("")
	if p.IsAvailable() {
		t.Error("provider without a key should be unavailable")
	}
	if _, err := p.Generate(context.Background(), GenerateRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}); err == nil {
		t.Fatal("expected error when generating without a key")
	}
}

func TestAnthropicCatalogEntries(t *testing.T) {
	for _, id := range []string{"claude-opus-4-6", "claude-sonnet-4-5", "claude-haiku-4-5"} {
		info := GetModelInfo(id)
		if info == nil {
			t.Fatalf("missing catalog entry %q", id)
		}
		if info.Provider != "anthropic" {
			t.Errorf("%s provider = %q, want anthropic", id, info.Provider)
		}
		if info.ReasoningParam != ReasoningThinking {
			t.Errorf("%s reasoning param = %q, want %q", id, info.ReasoningParam, ReasoningThinking)
		}
		if info.ReasoningDefault != "off" {
			t.Errorf("%s reasoning default = %q, want off", id, info.ReasoningDefault)
		}
	}
}

func TestThinkingBudget(t *testing.T) {
	tests := []struct {
		model     string
		reasoning string
		want      int64
	}{
		{"claude-sonnet-4-5", "4096", 4096},
		{"claude-sonnet-4-5", "1024", 1024},
		{"claude-sonnet-4-5", "off", 0},
		{"claude-sonnet-4-5", "", 0},
		// Below the 1024-token API floor.
		{"claude-sonnet-4-5", "512", 0},
		{"claude-sonnet-4-5", "high", 0},
		// Models without the thinking knob never get a budget.
		{"gpt-5.1", "4096", 0},
		{"unknown-model", "4096", 0},
	}
	for _, tt := range tests {
		if got := thinkingBudget(tt.model, tt.reasoning); got != tt.want {
			t.Errorf("thinkingBudget(%q, %q) = %d, want %d", tt.model, tt.reasoning, got, tt.want)
		}
	}
}
