package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nratzan/dit-2026/internal/chunker"
	"github.com/nratzan/dit-2026/internal/config"
	"github.com/nratzan/dit-2026/internal/index"
	"github.com/nratzan/dit-2026/internal/llm"
	"github.com/nratzan/dit-2026/internal/logger"
	"github.com/nratzan/dit-2026/internal/results"
	"github.com/nratzan/dit-2026/internal/search"
	"github.com/nratzan/dit-2026/internal/telemetry"
	"github.com/nratzan/dit-2026/internal/usage"
	"github.com/nratzan/dit-2026/middleware"
	"github.com/nratzan/dit-2026/routes"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.InitLogger(cfg)

	// Tracing and metrics are optional; the app runs fine without a collector.
	if cfg.TracingEnabled {
		shutdown, err := telemetry.InitTracer("dit-assessment", cfg.OTLPEndpoint)
		if err != nil {
			logger.Warn("tracing disabled", "error", err)
		} else {
			defer shutdown()
		}
	}
	metrics, err := telemetry.InitMetrics()
	if err != nil {
		logger.Warn("metrics disabled", "error", err)
		metrics = nil
	}

	// Redis backs rate limiting and the shared token budget. Both degrade
	// gracefully when it is unreachable.
	rdb, err := config.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable; rate limits and usage counters are local only", "error", err)
		rdb = nil
	}

	// MongoDB stores anonymous placement counters; optional.
	var store *results.Store
	if cfg.MongoURI != "" {
		mongoClient, err := config.ConnectMongoDB(cfg)
		if err != nil {
			logger.Warn("mongodb unavailable; assessment results will not be persisted", "error", err)
		} else {
			store = results.NewStore(mongoClient, cfg.DBName)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				mongoClient.Disconnect(ctx)
			}()
		}
	}

	ck := chunker.New()
	ck.MinTokens = cfg.ChunkMinTokens
	ck.MaxTokens = cfg.ChunkMaxTokens

	embedder := newEmbedder(cfg)
	engine, err := search.New(search.Options{
		EmbeddingsDir: cfg.EmbeddingsDir,
		SourceDir:     cfg.SourceDir,
		Embedder:      embedder,
		Chunker:       ck,
	})
	if err != nil {
		log.Fatal("Failed to initialize search engine:", err)
	}

	registry := llm.NewRegistryFromConfig(cfg)
	tracker := usage.NewTracker(rdb, cfg.DailyTokenBudget)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With"}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestSizeLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimitMiddleware(rdb, cfg))
	if cfg.TracingEnabled {
		router.Use(middleware.TracingMiddleware())
		router.Use(middleware.EnrichTrace())
	}
	if metrics != nil {
		router.Use(middleware.MetricsMiddleware(metrics))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"search_tier": engine.Tier(),
			"chunks":      engine.Size(),
			"timestamp":   time.Now(),
		})
	})

	routes.SetupChatRoutes(router, engine, registry, tracker, metrics)
	routes.SetupAssessmentRoutes(router, engine, store, metrics)
	routes.SetupAPIRoutes(router, cfg, engine, registry, tracker, store, metrics)
	routes.SetupAdminRoutes(router, store)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "search_tier", engine.Tier())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("server exited")
}

// newEmbedder builds the query-time embedder, or nil when no key is set, in
// which case search runs lexical-only.
func newEmbedder(cfg *config.Config) index.Embedder {
	switch cfg.EmbeddingsProvider {
	case "google":
		if cfg.GoogleAPIKey == "" {
			logger.Warn("no GOOGLE_API_KEY; semantic search disabled")
			return nil
		}
		emb, err := index.NewGoogleEmbedder(cfg.GoogleAPIKey, cfg.EmbeddingModel, cfg.EmbeddingDims)
		if err != nil {
			logger.Warn("google embedder unavailable; semantic search disabled", "error", err)
			return nil
		}
		return emb
	default:
		if cfg.OpenAIAPIKey == "" {
			logger.Warn("no OPENAI_API_KEY; semantic search disabled")
			return nil
		}
		emb, err := index.NewOpenAIEmbedder(cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.EmbeddingDims)
		if err != nil {
			logger.Warn("openai embedder unavailable; semantic search disabled", "error", err)
			return nil
		}
		return emb
	}
}
