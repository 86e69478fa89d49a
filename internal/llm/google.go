package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"github.com/nratzan/dit-2026/internal/logger"
)

const googleDefaultModel = "gemini-2.5-flash"

// GoogleProvider wraps the Generative AI SDK behind a circuit breaker and an
// in-process rate limiter sized for the free tier (10 RPM).
type GoogleProvider struct {
	apiKey  string
	client  *genai.Client
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
}

func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	p := &GoogleProvider{apiKey: apiKey}
	if apiKey == "" {
		// Registered but unavailable; the registry skips it during auto-select.
		return p, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	p.client = client

	p.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "GoogleGenAI",
		MaxRequests: 5,
		Interval:    10 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	// Free-tier RPM with some buffer
	p.limiter = rate.NewLimiter(rate.Limit(9.0/60.0), 2)

	return p, nil
}

func (p *GoogleProvider) Name() string         { return "google" }
func (p *GoogleProvider) DefaultModel() string { return googleDefaultModel }
func (p *GoogleProvider) IsAvailable() bool    { return p.apiKey != "" && p.client != nil }

func (p *GoogleProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if !p.IsAvailable() {
		return nil, fmt.Errorf("google provider not configured: missing GOOGLE_API_KEY")
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("empty message history")
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	modelID := req.Model
	if modelID == "" {
		modelID = googleDefaultModel
	}

	start := time.Now()
	result, err := p.breaker.Execute(func() (interface{}, error) {
		model := p.client.GenerativeModel(modelID)
		model.SetTemperature(0.7)
		model.SetMaxOutputTokens(2048)
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemPrompt)},
		}

		chat := model.StartChat()
		for _, msg := range req.Messages[:len(req.Messages)-1] {
			role := "user"
			if msg.Role == RoleAssistant {
				role = "model"
			}
			chat.History = append(chat.History, &genai.Content{
				Role:  role,
				Parts: []genai.Part{genai.Text(msg.Content)},
			})
		}

		last := req.Messages[len(req.Messages)-1]
		return chat.SendMessage(ctx, genai.Text(last.Content))
	})
	if err != nil {
		if err == gobreaker.ErrOpenState {
			return nil, fmt.Errorf("google provider temporarily unavailable (circuit open)")
		}
		return nil, fmt.Errorf("google generate: %w", err)
	}
	latency := time.Since(start)

	resp := result.(*genai.GenerateContentResponse)
	text := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text += string(t)
			}
		}
	}

	out := &GenerateResponse{
		Text:      text,
		Provider:  "google",
		Model:     modelID,
		LatencyMS: float64(latency.Milliseconds()),
	}
	if resp.UsageMetadata != nil {
		out.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		out.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	} else {
		out.InputTokens = estimateTokens(req.SystemPrompt)
		out.OutputTokens = estimateTokens(text)
	}
	return out, nil
}

// Close releases the underlying SDK client.
func (p *GoogleProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
