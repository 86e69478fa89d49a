// The indexer chunks the framework corpus and writes the embeddings.bin +
// manifest.json pair the server loads at startup. Run it once per corpus or
// model change:
//
//	OPENAI_API_KEY=... go run ./cmd/indexer -source ./data/source -out ./data/embeddings
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/nratzan/dit-2026/internal/chunker"
	"github.com/nratzan/dit-2026/internal/config"
	"github.com/nratzan/dit-2026/internal/index"
	"github.com/nratzan/dit-2026/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logger.InitLogger(cfg)

	sourceDir := flag.String("source", cfg.SourceDir, "directory of markdown source documents")
	outDir := flag.String("out", cfg.EmbeddingsDir, "output directory for embeddings.bin and manifest.json")
	provider := flag.String("provider", cfg.EmbeddingsProvider, "embeddings provider: openai or google")
	model := flag.String("model", cfg.EmbeddingModel, "embedding model id")
	dims := flag.Int("dims", cfg.EmbeddingDims, "embedding dimensionality")
	flag.Parse()

	ck := chunker.New()
	ck.MinTokens = cfg.ChunkMinTokens
	ck.MaxTokens = cfg.ChunkMaxTokens

	chunks, err := ck.ChunkAll(*sourceDir)
	if err != nil {
		log.Fatal("Chunking failed:", err)
	}
	logger.Info("corpus chunked", "chunks", len(chunks), "source", *sourceDir)
	for _, c := range chunks[:min(3, len(chunks))] {
		logger.Info("sample chunk", "id", c.ID, "file", c.SourceFile,
			"section", c.SectionTitle, "tokens", c.TokenCount)
	}

	var emb index.Embedder
	switch *provider {
	case "google":
		emb, err = index.NewGoogleEmbedder(cfg.GoogleAPIKey, *model, *dims)
	default:
		emb, err = index.NewOpenAIEmbedder(cfg.OpenAIAPIKey, *model, *dims)
	}
	if err != nil {
		log.Fatal("Embedder init failed:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	logger.Info("generating embeddings", "provider", *provider, "model", *model, "dims", *dims)
	vectors, manifest, err := index.Build(ctx, chunks, emb)
	if err != nil {
		log.Fatal("Embedding generation failed:", err)
	}

	if err := index.Save(*outDir, vectors, manifest); err != nil {
		log.Fatal("Saving index failed:", err)
	}
	logger.Info("index written", "dir", *outDir, "chunks", len(chunks))
}
