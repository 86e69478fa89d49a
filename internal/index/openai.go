package index

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type openAIEmbedder struct {
	client *openai.Client
	model  string
	dims   int
}

// NewOpenAIEmbedder builds an Embedder backed by the OpenAI embeddings API.
func NewOpenAIEmbedder(apiKey, model string, dims int) (Embedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai embeddings selected but OPENAI_API_KEY not set")
	}
	return &openAIEmbedder{
		client: openai.NewClient(apiKey),
		model:  model,
		dims:   dims,
	}, nil
}

func (e *openAIEmbedder) Model() string   { return e.model }
func (e *openAIEmbedder) Dimensions() int { return e.dims }

func (e *openAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(e.model),
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("create openai embeddings: %w", err)
	}

	results := make([][]float32, len(resp.Data))
	for i, datum := range resp.Data {
		if e.dims > 0 && len(datum.Embedding) != e.dims {
			return nil, fmt.Errorf("openai embedding dimension mismatch: expected %d, got %d", e.dims, len(datum.Embedding))
		}
		results[i] = datum.Embedding
	}
	return results, nil
}
