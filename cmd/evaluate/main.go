// The evaluate command runs the golden framework questions against every
// available LLM provider (or a named subset) and writes a JSON comparison
// report alongside a console summary:
//
//	OPENAI_API_KEY=... go run ./cmd/evaluate
//	go run ./cmd/evaluate -providers openai,anthropic -runs 3
//	go run ./cmd/evaluate -output evaluation_report.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/nratzan/dit-2026/internal/config"
	"github.com/nratzan/dit-2026/internal/evaluation"
	"github.com/nratzan/dit-2026/internal/index"
	"github.com/nratzan/dit-2026/internal/llm"
	"github.com/nratzan/dit-2026/internal/logger"
	"github.com/nratzan/dit-2026/internal/search"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logger.InitLogger(cfg)

	providersFlag := flag.String("providers", "", "comma-separated provider names (default: all available)")
	runs := flag.Int("runs", 1, "number of runs per question")
	output := flag.String("output", "", "output JSON file path")
	flag.Parse()

	engine, err := search.New(search.Options{
		EmbeddingsDir: cfg.EmbeddingsDir,
		SourceDir:     cfg.SourceDir,
		Embedder:      newEmbedder(cfg),
	})
	if err != nil {
		log.Fatal("Failed to initialize search engine:", err)
	}

	registry := llm.NewRegistryFromConfig(cfg)

	var providers []string
	if *providersFlag != "" {
		providers = strings.Split(*providersFlag, ",")
		for i := range providers {
			providers[i] = strings.TrimSpace(providers[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	harness := evaluation.NewHarness(registry, engine)
	report, err := harness.Run(ctx, providers, *runs)
	if err != nil {
		log.Fatal("Evaluation failed:", err)
	}

	evaluation.PrintSummary(os.Stdout, report)

	path := *output
	if path == "" {
		path = fmt.Sprintf("evaluation_report_%s.json", time.Now().Format("2006-01-02"))
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal("Encoding report failed:", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatal("Writing report failed:", err)
	}
	fmt.Printf("\nFull report saved to: %s\n", path)
}

// newEmbedder builds the query-time embedder, or nil for lexical-only search.
func newEmbedder(cfg *config.Config) index.Embedder {
	switch cfg.EmbeddingsProvider {
	case "google":
		if cfg.GoogleAPIKey == "" {
			return nil
		}
		emb, err := index.NewGoogleEmbedder(cfg.GoogleAPIKey, cfg.EmbeddingModel, cfg.EmbeddingDims)
		if err != nil {
			logger.Warn("google embedder unavailable; using lexical search", "error", err)
			return nil
		}
		return emb
	default:
		if cfg.OpenAIAPIKey == "" {
			return nil
		}
		emb, err := index.NewOpenAIEmbedder(cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.EmbeddingDims)
		if err != nil {
			logger.Warn("openai embedder unavailable; using lexical search", "error", err)
			return nil
		}
		return emb
	}
}
