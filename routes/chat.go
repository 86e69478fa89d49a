package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nratzan/dit-2026/internal/llm"
	"github.com/nratzan/dit-2026/internal/logger"
	"github.com/nratzan/dit-2026/internal/search"
	"github.com/nratzan/dit-2026/internal/telemetry"
	"github.com/nratzan/dit-2026/internal/usage"
	"github.com/nratzan/dit-2026/models"
	"github.com/nratzan/dit-2026/utils"
)

const chatTopK = 5

const systemPromptPreamble = "You are an expert on the Design in Tech Report 2026 E-P-I-A-S x SAE Framework " +
	"by John Maeda for AI upskilling product designers. Answer questions based on the " +
	"following framework content. Cite specific SAE levels and EPIAS stages when relevant. " +
	"Be helpful and concrete in your advice."

// SetupChatRoutes wires the grounded chat endpoint. Every reply is grounded
// on the top retrieved framework chunks, and token spend is checked against
// the daily budget before any provider call.
func SetupChatRoutes(router *gin.Engine, engine *search.Engine, registry *llm.Registry, tracker *usage.Tracker, metrics *telemetry.Metrics) {
	chat := router.Group("/chat")

	chat.POST("/api/message", func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()

		// Budget gate comes before retrieval and generation so an exhausted
		// day never costs another provider call.
		if !tracker.UnderBudget(ctx) {
			utils.RespondWithTooManyRequests(c,
				"Daily token budget exhausted. Try again tomorrow.",
				tracker.Stats(ctx))
			return
		}

		chunks := engine.Search(ctx, req.Message, chatTopK)
		if metrics != nil {
			metrics.RecordSearch(engine.Tier())
		}

		systemPrompt := buildSystemPrompt(chunks)

		provider, err := registry.Get(req.Provider)
		if err != nil {
			utils.RespondWithServiceUnavailable(c, err.Error(), nil)
			return
		}

		messages := append(append([]llm.Message{}, req.History...), llm.Message{
			Role:    llm.RoleUser,
			Content: req.Message,
		})

		resp, err := provider.Generate(ctx, llm.GenerateRequest{
			SystemPrompt: systemPrompt,
			Messages:     messages,
			Model:        req.Model,
			Reasoning:    req.Reasoning,
		})
		if err != nil {
			logger.Error("chat generation failed", "provider", provider.Name(), "error", err)
			utils.RespondWithError(c, http.StatusBadGateway, "generation_failed",
				"The language model could not produce a reply", gin.H{"error": err.Error()})
			return
		}

		tracker.Record(ctx, resp.InputTokens, resp.OutputTokens)
		if metrics != nil {
			metrics.RecordTokensUsed(int64(resp.InputTokens+resp.OutputTokens), resp.Provider, resp.Model)
		}

		sources := make([]models.ChatSource, 0, len(chunks))
		for _, ch := range chunks {
			sources = append(sources, models.ChatSource{
				SourceFile:   ch.SourceFile,
				SectionTitle: ch.SectionTitle,
				Score:        ch.Score,
			})
		}

		c.JSON(http.StatusOK, models.ChatResponse{
			Reply:        resp.Text,
			Provider:     resp.Provider,
			Model:        resp.Model,
			LatencyMS:    resp.LatencyMS,
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			Sources:      sources,
		})
	})
}

// buildSystemPrompt concatenates the retrieved chunks into the grounding
// context block, each labeled with its source file and section.
func buildSystemPrompt(chunks []search.Result) string {
	blocks := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		blocks = append(blocks, fmt.Sprintf("[Source: %s, Section: %s]\n%s",
			ch.SourceFile, ch.SectionTitle, ch.Text))
	}
	return systemPromptPreamble + "\n\nFRAMEWORK CONTEXT:\n" + strings.Join(blocks, "\n\n---\n\n")
}
