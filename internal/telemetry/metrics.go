package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all application metrics
type Metrics struct {
	RequestCounter    metric.Int64Counter
	RequestDuration   metric.Float64Histogram
	TokensUsed        metric.Int64Counter
	SearchQueries     metric.Int64Counter
	AssessmentsScored metric.Int64Counter
}

// InitMetrics initializes all application metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("dit-assessment")

	requestCounter, err := meter.Int64Counter(
		"http.requests.total",
		metric.WithDescription("Total HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	tokensUsed, err := meter.Int64Counter(
		"llm.tokens.used",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		return nil, err
	}

	searchQueries, err := meter.Int64Counter(
		"search.queries.total",
		metric.WithDescription("Search queries by tier"),
	)
	if err != nil {
		return nil, err
	}

	assessmentsScored, err := meter.Int64Counter(
		"assessments.scored.total",
		metric.WithDescription("Completed assessment submissions"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RequestCounter:    requestCounter,
		RequestDuration:   requestDuration,
		TokensUsed:        tokensUsed,
		SearchQueries:     searchQueries,
		AssessmentsScored: assessmentsScored,
	}, nil
}

// RecordRequest records HTTP request metrics
func (m *Metrics) RecordRequest(method, path, status string, duration float64) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.path", path),
		attribute.String("http.status", status),
	}

	m.RequestCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	m.RequestDuration.Record(context.Background(), duration, metric.WithAttributes(attrs...))
}

// RecordTokensUsed records LLM token usage per provider
func (m *Metrics) RecordTokensUsed(tokens int64, provider, model string) {
	attrs := []attribute.KeyValue{
		attribute.String("llm.provider", provider),
		attribute.String("llm.model", model),
	}

	m.TokensUsed.Add(context.Background(), tokens, metric.WithAttributes(attrs...))
}

// RecordSearch records a search query and which tier answered it
func (m *Metrics) RecordSearch(tier string) {
	m.SearchQueries.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("search.tier", tier)))
}

// RecordAssessment records a scored assessment by resulting cell
func (m *Metrics) RecordAssessment(level int, stage string) {
	attrs := []attribute.KeyValue{
		attribute.Int("assessment.sae_level", level),
		attribute.String("assessment.epias_stage", stage),
	}

	m.AssessmentsScored.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}
