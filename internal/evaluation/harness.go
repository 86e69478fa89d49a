package evaluation

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/nratzan/dit-2026/internal/llm"
	"github.com/nratzan/dit-2026/internal/logger"
	"github.com/nratzan/dit-2026/internal/search"
)

const (
	contextTopK     = 5
	previewMaxRunes = 500
)

const evalPromptPreamble = "You are an expert on the Design in Tech Report 2026 " +
	"E-P-I-A-S x SAE Framework by John Maeda. " +
	"Answer based on the framework content below. " +
	"Be specific and cite SAE levels and EPIAS stages."

// RunResult is one attempt at one golden question.
type RunResult struct {
	Run             int     `json:"run"`
	ResponsePreview string  `json:"response_preview"`
	ThemeCoverage   float64 `json:"theme_coverage"`
	LengthScore     float64 `json:"length_score"`
	LatencyMS       float64 `json:"latency_ms"`
	CostUSD         float64 `json:"cost_usd"`
	InputTokens     int     `json:"input_tokens"`
	OutputTokens    int     `json:"output_tokens"`
	Error           string  `json:"error,omitempty"`
}

// QuestionResult aggregates all runs of one question for one provider.
// Consistency is 1 minus the coverage spread across successful runs.
type QuestionResult struct {
	QuestionID       string      `json:"question_id"`
	Question         string      `json:"question"`
	Category         string      `json:"category"`
	Runs             []RunResult `json:"runs"`
	AvgThemeCoverage float64     `json:"avg_theme_coverage"`
	AvgLatencyMS     float64     `json:"avg_latency_ms"`
	TotalCostUSD     float64     `json:"total_cost_usd"`
	Consistency      float64     `json:"consistency"`
	Errors           int         `json:"errors"`
}

// ProviderSummary averages a provider's performance over all questions.
type ProviderSummary struct {
	AvgThemeCoverage float64 `json:"avg_theme_coverage"`
	AvgLatencyMS     float64 `json:"avg_latency_ms"`
	TotalCostUSD     float64 `json:"total_cost_usd"`
	AvgConsistency   float64 `json:"avg_consistency"`
	TotalErrors      int     `json:"total_errors"`
}

// ProviderResult is one provider's full evaluation.
type ProviderResult struct {
	Provider  string           `json:"provider"`
	Model     string           `json:"model"`
	Questions []QuestionResult `json:"questions"`
	Summary   ProviderSummary  `json:"summary"`
}

// Report is the complete comparison across providers.
type Report struct {
	Timestamp    string           `json:"timestamp"`
	NumRuns      int              `json:"num_runs"`
	NumQuestions int              `json:"num_questions"`
	Providers    []ProviderResult `json:"providers"`
}

// Harness runs the golden questions against providers, grounding each prompt
// with retrieved framework context the same way the chat endpoint does.
type Harness struct {
	registry *llm.Registry
	engine   *search.Engine
}

func NewHarness(registry *llm.Registry, engine *search.Engine) *Harness {
	return &Harness{registry: registry, engine: engine}
}

// Run evaluates the named providers, or every available one when providers is
// empty. numRuns repeats each question to measure consistency.
func (h *Harness) Run(ctx context.Context, providers []string, numRuns int) (*Report, error) {
	if numRuns < 1 {
		numRuns = 1
	}
	if len(providers) == 0 {
		for _, st := range h.registry.Available() {
			if st.Available {
				providers = append(providers, st.Name)
			}
		}
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("no LLM providers available")
	}

	report := &Report{
		Timestamp:    time.Now().Format(time.RFC3339),
		NumRuns:      numRuns,
		NumQuestions: len(GoldenQuestions),
	}

	for _, name := range providers {
		provider, err := h.registry.Get(name)
		if err != nil {
			return nil, err
		}
		logger.Info("evaluating provider", "provider", name, "model", provider.DefaultModel())

		pr := ProviderResult{Provider: name, Model: provider.DefaultModel()}
		for _, q := range GoldenQuestions {
			pr.Questions = append(pr.Questions, h.runQuestion(ctx, provider, q, numRuns))
		}

		n := float64(len(pr.Questions))
		for _, qr := range pr.Questions {
			pr.Summary.AvgThemeCoverage += qr.AvgThemeCoverage / n
			pr.Summary.AvgLatencyMS += qr.AvgLatencyMS / n
			pr.Summary.TotalCostUSD += qr.TotalCostUSD
			pr.Summary.AvgConsistency += qr.Consistency / n
			pr.Summary.TotalErrors += qr.Errors
		}
		pr.Summary.AvgThemeCoverage = round3(pr.Summary.AvgThemeCoverage)
		pr.Summary.AvgLatencyMS = round1(pr.Summary.AvgLatencyMS)
		pr.Summary.TotalCostUSD = round6(pr.Summary.TotalCostUSD)
		pr.Summary.AvgConsistency = round3(pr.Summary.AvgConsistency)

		report.Providers = append(report.Providers, pr)
	}
	return report, nil
}

func (h *Harness) runQuestion(ctx context.Context, provider llm.Provider, q GoldenQuestion, numRuns int) QuestionResult {
	qr := QuestionResult{QuestionID: q.ID, Question: q.Question, Category: q.Category}

	for run := 0; run < numRuns; run++ {
		chunks := h.engine.Search(ctx, q.Question, contextTopK)
		texts := make([]string, 0, len(chunks))
		for _, ch := range chunks {
			texts = append(texts, ch.Text)
		}
		systemPrompt := evalPromptPreamble + "\n\nFRAMEWORK CONTEXT:\n" + strings.Join(texts, "\n\n---\n\n")

		resp, err := provider.Generate(ctx, llm.GenerateRequest{
			SystemPrompt: systemPrompt,
			Messages:     []llm.Message{{Role: llm.RoleUser, Content: q.Question}},
		})
		if err != nil {
			logger.Warn("golden question failed", "question", q.ID, "provider", provider.Name(), "error", err)
			qr.Runs = append(qr.Runs, RunResult{Run: run, Error: err.Error()})
			continue
		}

		qr.Runs = append(qr.Runs, RunResult{
			Run:             run,
			ResponsePreview: preview(resp.Text),
			ThemeCoverage:   round3(ThemeCoverage(resp.Text, q.ExpectedThemes)),
			LengthScore:     round3(LengthScore(resp.Text)),
			LatencyMS:       round1(resp.LatencyMS),
			CostUSD:         round6(EstimateCost(provider.Name(), resp.InputTokens, resp.OutputTokens)),
			InputTokens:     resp.InputTokens,
			OutputTokens:    resp.OutputTokens,
		})
	}

	minCov, maxCov := math.Inf(1), math.Inf(-1)
	successes := 0
	for _, r := range qr.Runs {
		if r.Error != "" {
			qr.Errors++
			qr.TotalCostUSD += r.CostUSD
			continue
		}
		successes++
		qr.AvgThemeCoverage += r.ThemeCoverage
		qr.AvgLatencyMS += r.LatencyMS
		qr.TotalCostUSD += r.CostUSD
		minCov = math.Min(minCov, r.ThemeCoverage)
		maxCov = math.Max(maxCov, r.ThemeCoverage)
	}
	if successes > 0 {
		qr.AvgThemeCoverage = round3(qr.AvgThemeCoverage / float64(successes))
		qr.AvgLatencyMS = round1(qr.AvgLatencyMS / float64(successes))
		qr.Consistency = 1.0
		if successes > 1 {
			qr.Consistency = round3(1.0 - (maxCov - minCov))
		}
	}
	qr.TotalCostUSD = round6(qr.TotalCostUSD)
	return qr
}

// PrintSummary writes a human-readable report overview.
func PrintSummary(w io.Writer, report *Report) {
	line := strings.Repeat("=", 70)
	fmt.Fprintf(w, "\n%s\n", line)
	fmt.Fprintln(w, "Framework Evaluation Report")
	fmt.Fprintf(w, "Time: %s\n", report.Timestamp)
	fmt.Fprintf(w, "Questions: %d | Runs per question: %d\n", report.NumQuestions, report.NumRuns)
	fmt.Fprintln(w, line)

	for _, p := range report.Providers {
		s := p.Summary
		fmt.Fprintf(w, "\n  %s (%s)\n", strings.ToUpper(p.Provider), p.Model)
		fmt.Fprintf(w, "    Theme Coverage: %.1f%%\n", s.AvgThemeCoverage*100)
		fmt.Fprintf(w, "    Avg Latency:    %.0fms\n", s.AvgLatencyMS)
		fmt.Fprintf(w, "    Total Cost:     $%.4f\n", s.TotalCostUSD)
		fmt.Fprintf(w, "    Consistency:    %.1f%%\n", s.AvgConsistency*100)
		fmt.Fprintf(w, "    Errors:         %d\n", s.TotalErrors)
	}

	fmt.Fprintf(w, "\n%s\n", line)
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewMaxRunes {
		return string(runes[:previewMaxRunes])
	}
	return text
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
func round6(x float64) float64 { return math.Round(x*1e6) / 1e6 }
