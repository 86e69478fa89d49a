package evaluation

import (
	"math"
	"strings"
)

// Ideal response length bounds in words. Shorter or longer answers are
// scored down, with a 0.5 floor for overlong ones.
const (
	minIdealWords = 50
	maxIdealWords = 500
)

// ThemeCoverage returns the fraction of expected themes mentioned in the
// response, case-insensitive.
func ThemeCoverage(response string, themes []string) float64 {
	if len(themes) == 0 {
		return 0
	}
	lower := strings.ToLower(response)
	hits := 0
	for _, theme := range themes {
		if strings.Contains(lower, strings.ToLower(theme)) {
			hits++
		}
	}
	return float64(hits) / float64(len(themes))
}

// providerPricing holds approximate early-2026 USD-per-token list prices for
// each provider's default model. Unknown providers cost nothing.
var providerPricing = map[string]struct{ input, output float64 }{
	"openai":    {2.50 / 1e6, 10.00 / 1e6}, // gpt-5.1
	"anthropic": {3.00 / 1e6, 15.00 / 1e6}, // claude-sonnet-4
	"google":    {0.15 / 1e6, 0.60 / 1e6},  // gemini-2.5-flash
	"ollama":    {0, 0},                    // local
}

// EstimateCost estimates the USD cost of one generation.
func EstimateCost(provider string, inputTokens, outputTokens int) float64 {
	rates := providerPricing[provider]
	return float64(inputTokens)*rates.input + float64(outputTokens)*rates.output
}

// LengthScore scores the response word count: 1.0 inside the ideal range,
// scaled down outside it.
func LengthScore(response string) float64 {
	words := len(strings.Fields(response))
	switch {
	case words < minIdealWords:
		return float64(words) / minIdealWords
	case words > maxIdealWords:
		return math.Max(0.5, maxIdealWords/float64(words))
	}
	return 1.0
}
