package evaluation

import (
	"math"
	"strings"
	"testing"
)

func TestThemeCoverage(t *testing.T) {
	themes := []string{"Explorer", "Practitioner", "repeatable"}

	if got := ThemeCoverage("An EXPLORER is still trying things out.", themes); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Errorf("coverage = %f, want 1/3 (matching is case-insensitive)", got)
	}
	if got := ThemeCoverage("a practitioner has repeatable explorer habits", themes); got != 1.0 {
		t.Errorf("coverage = %f, want 1.0", got)
	}
	if got := ThemeCoverage("nothing relevant here", themes); got != 0 {
		t.Errorf("coverage = %f, want 0", got)
	}
	if got := ThemeCoverage("any text", nil); got != 0 {
		t.Errorf("coverage with no themes = %f, want 0", got)
	}
}

func TestEstimateCost(t *testing.T) {
	// 1M input + 1M output at openai rates is $2.50 + $10.00.
	if got := EstimateCost("openai", 1_000_000, 1_000_000); math.Abs(got-12.50) > 1e-9 {
		t.Errorf("openai cost = %f, want 12.50", got)
	}
	if got := EstimateCost("ollama", 1_000_000, 1_000_000); got != 0 {
		t.Errorf("ollama cost = %f, want 0 (local)", got)
	}
	if got := EstimateCost("someprovider", 1000, 1000); got != 0 {
		t.Errorf("unknown provider cost = %f, want 0", got)
	}
}

func TestLengthScore(t *testing.T) {
	words := func(n int) string { return strings.TrimSpace(strings.Repeat("word ", n)) }

	if got := LengthScore(words(25)); got != 0.5 {
		t.Errorf("25 words = %f, want 0.5", got)
	}
	if got := LengthScore(words(50)); got != 1.0 {
		t.Errorf("50 words = %f, want 1.0", got)
	}
	if got := LengthScore(words(500)); got != 1.0 {
		t.Errorf("500 words = %f, want 1.0", got)
	}
	if got := LengthScore(words(625)); got != 0.8 {
		t.Errorf("625 words = %f, want 0.8", got)
	}
	// Overlong responses never score below the floor.
	if got := LengthScore(words(10000)); got != 0.5 {
		t.Errorf("10000 words = %f, want 0.5 floor", got)
	}
}
