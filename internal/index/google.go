package index

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type googleEmbedder struct {
	apiKey string
	model  string
	dims   int
}

// NewGoogleEmbedder builds an Embedder backed by Google Generative AI
// (e.g. text-embedding-004).
func NewGoogleEmbedder(apiKey, model string, dims int) (Embedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google embeddings selected but GOOGLE_API_KEY not set")
	}
	return &googleEmbedder{apiKey: apiKey, model: model, dims: dims}, nil
}

func (e *googleEmbedder) Model() string   { return e.model }
func (e *googleEmbedder) Dimensions() int { return e.dims }

func (e *googleEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(e.apiKey))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	em := client.EmbeddingModel(e.model)
	batch := em.NewBatch()
	for _, t := range texts {
		batch.AddContent(genai.Text(t))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("batch embed contents: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("got %d embeddings for %d texts", len(resp.Embeddings), len(texts))
	}

	results := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if emb == nil {
			return nil, fmt.Errorf("no embedding returned for text %d", i)
		}
		if e.dims > 0 && len(emb.Values) != e.dims {
			return nil, fmt.Errorf("google embedding dimension mismatch: expected %d, got %d", e.dims, len(emb.Values))
		}
		results[i] = emb.Values
	}
	return results, nil
}
