package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nratzan/dit-2026/internal/assessment"
	"github.com/nratzan/dit-2026/internal/logger"
	"github.com/nratzan/dit-2026/internal/results"
	"github.com/nratzan/dit-2026/internal/search"
	"github.com/nratzan/dit-2026/internal/telemetry"
	"github.com/nratzan/dit-2026/models"
	"github.com/nratzan/dit-2026/utils"
)

// GrowthChunk is one retrieved passage supporting a growth recommendation.
type GrowthChunk struct {
	Text    string `json:"text"`
	Section string `json:"section"`
	Source  string `json:"source"`
}

type assessResponse struct {
	assessment.PlacementResult
	GrowthChunks []GrowthChunk `json:"growth_chunks"`
}

// SetupAssessmentRoutes wires the questionnaire and scoring endpoints.
func SetupAssessmentRoutes(router *gin.Engine, engine *search.Engine, store *results.Store, metrics *telemetry.Metrics) {
	api := router.Group("/api")

	api.GET("/assess/questions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"questions": assessment.SAEQuestions()})
	})

	// Stage-two questions depend on the level identified in stage one.
	api.GET("/assess/questions/epias", func(c *gin.Context) {
		level, err := strconv.Atoi(c.DefaultQuery("level", "1"))
		if err != nil {
			utils.RespondWithBadRequest(c, "level must be an integer", gin.H{"level": c.Query("level")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"questions": assessment.EPIASQuestions(level), "level": level})
	})

	api.POST("/assess", func(c *gin.Context) {
		var req models.AssessRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		score := assessment.Score(req.Answers)
		placement := assessment.Placement(score)

		if metrics != nil {
			metrics.RecordAssessment(score.SAELevel, score.EPIASStage)
		}

		// Supporting passages for the recommended next step.
		query := fmt.Sprintf("growth path for SAE L%d %s", placement.SAELevel, placement.EPIASStage)
		chunks := engine.Search(c.Request.Context(), query, chatTopK)
		growth := make([]GrowthChunk, 0, len(chunks))
		for _, ch := range chunks {
			growth = append(growth, GrowthChunk{
				Text:    ch.Text,
				Section: ch.SectionTitle,
				Source:  ch.SourceFile,
			})
		}

		// Anonymous cell counter; persistence must not delay the response.
		go func(level int, stage string) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := store.IncrementCell(ctx, level, stage); err != nil {
				logger.Warn("failed to record assessment result", "error", err)
			}
		}(placement.SAELevel, placement.EPIASStage)

		c.JSON(http.StatusOK, assessResponse{
			PlacementResult: placement,
			GrowthChunks:    growth,
		})
	})
}
