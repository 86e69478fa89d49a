package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nratzan/dit-2026/internal/assessment"
	"github.com/nratzan/dit-2026/internal/config"
	"github.com/nratzan/dit-2026/internal/llm"
	"github.com/nratzan/dit-2026/internal/results"
	"github.com/nratzan/dit-2026/internal/search"
	"github.com/nratzan/dit-2026/internal/telemetry"
	"github.com/nratzan/dit-2026/internal/usage"
	"github.com/nratzan/dit-2026/models"
	"github.com/nratzan/dit-2026/utils"
)

// frameworkDocs is the ordered list of source documents with display labels.
var frameworkDocs = []struct {
	Filename string `json:"filename"`
	Label    string `json:"label"`
}{
	{"ai-upskilling-for-product-designers.md", "The E-P-I-A-S x SAE Framework"},
	{"ai-upskilling-for-product-designers-L1-to-L2.md", "L1 to L2 Transition"},
	{"ai-upskilling-for-product-designers-L2-to-L3.md", "L2 to L3 Transition"},
	{"ai-upskilling-for-product-designers-L3-L4.md", "L3 to L4 Transition"},
}

// SetupAPIRoutes wires search, catalog, matrix, heatmap, usage, and framework
// document endpoints.
func SetupAPIRoutes(router *gin.Engine, cfg *config.Config, engine *search.Engine, registry *llm.Registry, tracker *usage.Tracker, store *results.Store, metrics *telemetry.Metrics) {
	api := router.Group("/api")

	api.POST("/search", func(c *gin.Context) {
		var req models.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}
		topK := req.TopK
		if topK <= 0 {
			topK = chatTopK
		}
		hits := engine.Search(c.Request.Context(), req.Query, topK)
		if metrics != nil {
			metrics.RecordSearch(engine.Tier())
		}
		if hits == nil {
			hits = []search.Result{}
		}
		c.JSON(http.StatusOK, gin.H{"results": hits, "query": req.Query})
	})

	api.GET("/providers", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"providers": registry.Available()})
	})

	// Full model catalog filtered to available providers.
	api.GET("/models", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"models": registry.ModelsCatalog()})
	})

	api.GET("/matrix", func(c *gin.Context) {
		c.JSON(http.StatusOK, assessment.FullMatrix())
	})

	// Aggregated anonymous assessment results for the heatmap view.
	api.GET("/heatmap", func(c *gin.Context) {
		hm, err := store.HeatmapData(c.Request.Context())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to aggregate results", gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, hm)
	})

	api.GET("/usage", func(c *gin.Context) {
		c.JSON(http.StatusOK, tracker.Stats(c.Request.Context()))
	})

	// Framework documents are served as raw markdown; rendering is the
	// front end's job.
	api.GET("/framework/docs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"docs": frameworkDocs})
	})

	api.GET("/framework/docs/:index", func(c *gin.Context) {
		idx, err := strconv.Atoi(c.Param("index"))
		if err != nil || idx < 0 || idx >= len(frameworkDocs) {
			utils.RespondWithNotFound(c, "Unknown framework document")
			return
		}
		doc := frameworkDocs[idx]
		raw, err := os.ReadFile(filepath.Join(cfg.SourceDir, doc.Filename))
		if err != nil {
			utils.RespondWithNotFound(c, "Framework document not available")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"label":    doc.Label,
			"filename": doc.Filename,
			"content":  string(raw),
		})
	})
}
