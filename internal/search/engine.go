// Package search answers top-k relevance queries over the framework corpus
// with three tiers: semantic (stored vectors + query embedding), lexical
// TF-IDF, and an empty-corpus terminal state.
package search

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/nratzan/dit-2026/internal/chunker"
	"github.com/nratzan/dit-2026/internal/index"
	"github.com/nratzan/dit-2026/internal/logger"
)

// Result is one ranked hit: a chunk plus its relevance score.
type Result struct {
	chunker.Chunk
	Score float64 `json:"score"`
}

// Search tiers, reported for metrics and logging.
const (
	TierSemantic = "semantic"
	TierLexical  = "lexical"
	TierEmpty    = "empty"
)

// Options configures engine construction.
type Options struct {
	// EmbeddingsDir holds the persisted embeddings.bin + manifest.json pair.
	EmbeddingsDir string
	// SourceDir holds raw markdown documents, chunked in-memory when no
	// persisted index exists (lexical-only mode).
	SourceDir string
	// Embedder produces query vectors; nil disables the semantic tier.
	Embedder index.Embedder
	// Chunker used for lexical-only mode; defaults to chunker.New().
	Chunker *chunker.Chunker
}

// Engine state is immutable after New, so concurrent request-time reads need
// no locking. Rebuilding the corpus is an offline indexer run plus a restart.
type Engine struct {
	chunks   []chunker.Chunk
	vectors  [][]float32
	norms    []float64
	model    string
	lex      *lexicalIndex
	embedder index.Embedder
}

// New loads the engine in the best available tier. A persisted index also gets
// the lexical fallback built eagerly, so a mid-flight embedding outage never
// forces a rebuild. Missing artifacts and missing source are valid degraded
// states, not errors.
func New(opts Options) (*Engine, error) {
	e := &Engine{embedder: opts.Embedder}

	vectors, man, err := index.Load(opts.EmbeddingsDir)
	if err == nil {
		e.chunks = man.Chunks
		e.vectors = vectors
		e.model = man.Model
		e.norms = make([]float64, len(vectors))
		for i, row := range vectors {
			e.norms[i] = norm32(row)
		}
		e.lex = e.buildLexical()
		logger.Info("search engine loaded persisted index",
			"chunks", len(e.chunks), "dimensions", man.Dimensions, "model", man.Model)
		return e, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("load index: %w", err)
	}

	// No persisted index: chunk raw source in-memory, lexical-only.
	if _, statErr := os.Stat(opts.SourceDir); statErr == nil {
		ck := opts.Chunker
		if ck == nil {
			ck = chunker.New()
		}
		chunks, chunkErr := ck.ChunkAll(opts.SourceDir)
		if chunkErr != nil {
			return nil, fmt.Errorf("chunk source corpus: %w", chunkErr)
		}
		e.chunks = chunks
		e.lex = e.buildLexical()
		logger.Info("search engine loaded source corpus (lexical only)", "chunks", len(e.chunks))
		return e, nil
	}

	logger.Warn("search engine found no corpus; all searches return empty results")
	return e, nil
}

// Size returns the number of chunks in the loaded corpus.
func (e *Engine) Size() int { return len(e.chunks) }

// Tier reports which tier the engine would currently answer from.
func (e *Engine) Tier() string {
	switch {
	case len(e.chunks) == 0:
		return TierEmpty
	case e.vectors != nil && e.embedder != nil:
		return TierSemantic
	default:
		return TierLexical
	}
}

// Search returns up to topK chunks ranked by descending relevance. With an
// empty corpus it returns nil. A query-embedding failure silently falls back
// to the lexical tier and is never surfaced as an error.
func (e *Engine) Search(ctx context.Context, query string, topK int) []Result {
	if len(e.chunks) == 0 || topK <= 0 {
		return nil
	}

	if e.vectors != nil && e.embedder != nil {
		qvec, err := e.embedQuery(ctx, query)
		if err != nil {
			logger.Debug("query embedding failed, using lexical fallback", "error", err)
		} else {
			return e.semanticSearch(qvec, topK)
		}
	}

	return e.lexicalSearch(query, topK)
}

// semanticSearch ranks every stored vector by cosine similarity. Unlike the
// lexical tier it applies no positive-score filter: low and zero-similarity
// chunks still fill topK.
func (e *Engine) semanticSearch(qvec []float32, topK int) []Result {
	qnorm := norm32(qvec)

	hits := make([]scoredHit, len(e.vectors))
	for i, row := range e.vectors {
		hits[i] = scoredHit{index: i, score: cosine32(qvec, qnorm, row, e.norms[i])}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > topK {
		hits = hits[:topK]
	}
	return e.toResults(hits)
}

func (e *Engine) lexicalSearch(query string, topK int) []Result {
	return e.toResults(e.lex.search(query, topK))
}

func (e *Engine) toResults(hits []scoredHit) []Result {
	results := make([]Result, len(hits))
	for i, h := range hits {
		results[i] = Result{Chunk: e.chunks[h.index], Score: h.score}
	}
	return results
}

func (e *Engine) embedQuery(ctx context.Context, query string) ([]float32, error) {
	// Check the model match before embedding so a misconfigured embedder
	// never pays for an API call whose vector would be discarded.
	if e.model != "" && e.embedder.Model() != e.model {
		return nil, fmt.Errorf("query embedder model %q does not match index model %q", e.embedder.Model(), e.model)
	}
	rows, err := e.embedder.EmbedBatch(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("expected 1 query vector, got %d", len(rows))
	}
	if len(rows[0]) != len(e.vectors[0]) {
		return nil, fmt.Errorf("query vector dimension %d does not match index dimension %d", len(rows[0]), len(e.vectors[0]))
	}
	return rows[0], nil
}

func (e *Engine) buildLexical() *lexicalIndex {
	texts := make([]string, len(e.chunks))
	for i, c := range e.chunks {
		texts[i] = c.Text
	}
	return newLexicalIndex(texts)
}

func norm32(v []float32) float64 {
	sum := 0.0
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func cosine32(a []float32, anorm float64, b []float32, bnorm float64) float64 {
	if anorm == 0 || bnorm == 0 {
		return 0
	}
	sum := 0.0
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum / (anorm * bnorm)
}
