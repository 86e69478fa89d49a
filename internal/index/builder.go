package index

import (
	"context"
	"fmt"

	"github.com/nratzan/dit-2026/internal/chunker"
)

const (
	// MaxBatchSize caps how many texts go to the embedding API per request.
	MaxBatchSize = 100
	// MaxInputChars truncates each text before embedding. Very long inputs
	// either fail or get silently truncated upstream, so truncate here first.
	MaxInputChars = 8000
)

// Embedder produces fixed-length vectors for batches of texts. The same
// implementation embeds corpus chunks at build time and queries at serve time.
type Embedder interface {
	Model() string
	Dimensions() int
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Build embeds every chunk in order and returns the vector array with its
// manifest. Any batch failure aborts the whole build: either all chunks are
// embedded or nothing is returned for persisting.
func Build(ctx context.Context, chunks []chunker.Chunk, emb Embedder) ([][]float32, *Manifest, error) {
	dims := emb.Dimensions()
	vectors := make([][]float32, 0, len(chunks))

	for start := 0; start < len(chunks); start += MaxBatchSize {
		end := start + MaxBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		batch := make([]string, 0, end-start)
		for _, c := range chunks[start:end] {
			text := c.Text
			if len(text) > MaxInputChars {
				text = text[:MaxInputChars]
			}
			batch = append(batch, text)
		}

		rows, err := emb.EmbedBatch(ctx, batch)
		if err != nil {
			return nil, nil, fmt.Errorf("embed batch %d-%d: %w", start, end, err)
		}
		if len(rows) != len(batch) {
			return nil, nil, fmt.Errorf("embed batch %d-%d: got %d vectors for %d texts", start, end, len(rows), len(batch))
		}
		for i, row := range rows {
			if len(row) != dims {
				return nil, nil, fmt.Errorf("chunk %d: dimension %d, want %d", start+i, len(row), dims)
			}
		}
		vectors = append(vectors, rows...)
	}

	man := &Manifest{
		Model:      emb.Model(),
		Dimensions: dims,
		Shape:      [2]int{len(chunks), dims},
		Chunks:     chunks,
	}
	return vectors, man, nil
}
