package search

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nratzan/dit-2026/internal/chunker"
	"github.com/nratzan/dit-2026/internal/index"
)

// fakeEmbedder returns deterministic one-hot style vectors keyed by which
// corpus keyword the text contains. It lets tests steer semantic ranking
// without a live API.
type fakeEmbedder struct {
	model string
	dims  int
	fail  bool
	calls int
}

func (f *fakeEmbedder) Model() string   { return f.model }
func (f *fakeEmbedder) Dimensions() int { return f.dims }

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("embedding backend down")
	}
	keywords := []string{"prompt", "harness", "craft"}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, f.dims)
		lower := strings.ToLower(text)
		for j, kw := range keywords {
			if j < f.dims && strings.Contains(lower, kw) {
				vec[j] = 1
			}
		}
		out[i] = vec
	}
	return out, nil
}

func testCorpus() []chunker.Chunk {
	return []chunker.Chunk{
		{ID: 0, SourceFile: "a.md", SectionTitle: "Prompts", Text: "prompt libraries organized by task", TokenCount: 5, ChunkType: chunker.ChunkTypeProse},
		{ID: 1, SourceFile: "a.md", SectionTitle: "Harnesses", Text: "harness runs evaluation suites autonomously", TokenCount: 5, ChunkType: chunker.ChunkTypeProse},
		{ID: 2, SourceFile: "b.md", SectionTitle: "Craft", Text: "manual craft fundamentals and consistency", TokenCount: 5, ChunkType: chunker.ChunkTypeProse},
	}
}

// writeIndex builds and persists a small index with the fake embedder.
func writeIndex(t *testing.T, dir string, emb index.Embedder) {
	t.Helper()
	chunks := testCorpus()
	vectors, man, err := index.Build(context.Background(), chunks, emb)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := index.Save(dir, vectors, man); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestEngineEmptyCorpus(t *testing.T) {
	e, err := New(Options{
		EmbeddingsDir: filepath.Join(t.TempDir(), "none"),
		SourceDir:     filepath.Join(t.TempDir(), "none"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.Tier() != TierEmpty {
		t.Errorf("tier = %q, want %q", e.Tier(), TierEmpty)
	}
	if got := e.Search(context.Background(), "anything", 5); got != nil {
		t.Errorf("expected nil results, got %v", got)
	}
}

func TestEngineLexicalOnlyFromSource(t *testing.T) {
	srcDir := t.TempDir()
	doc := "# Prompts\n\nprompt libraries organized by task for every designer on the team to reuse and extend\n"
	if err := os.WriteFile(filepath.Join(srcDir, "a.md"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	ck := chunker.New()
	ck.MinTokens = 1

	e, err := New(Options{
		EmbeddingsDir: filepath.Join(t.TempDir(), "none"),
		SourceDir:     srcDir,
		Chunker:       ck,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.Tier() != TierLexical {
		t.Errorf("tier = %q, want %q", e.Tier(), TierLexical)
	}

	results := e.Search(context.Background(), "prompt libraries", 5)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].SectionTitle != "Prompts" {
		t.Errorf("section = %q, want Prompts", results[0].SectionTitle)
	}
}

func TestEngineSemanticRoundTrip(t *testing.T) {
	dir := t.TempDir()
	emb := &fakeEmbedder{model: "fake-embed", dims: 3}
	writeIndex(t, dir, emb)

	e, err := New(Options{EmbeddingsDir: dir, Embedder: emb})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.Tier() != TierSemantic {
		t.Fatalf("tier = %q, want %q", e.Tier(), TierSemantic)
	}

	results := e.Search(context.Background(), "harness pipelines", 2)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != 1 {
		t.Errorf("best result id = %d, want 1 (harness chunk)", results[0].ID)
	}
	// The semantic tier fills topK even with zero-similarity chunks.
	if results[1].Score != 0 {
		t.Errorf("second result score = %f, want 0", results[1].Score)
	}
}

func TestEngineSemanticFallsBackToLexical(t *testing.T) {
	dir := t.TempDir()
	emb := &fakeEmbedder{model: "fake-embed", dims: 3}
	writeIndex(t, dir, emb)

	broken := &fakeEmbedder{model: "fake-embed", dims: 3, fail: true}
	e, err := New(Options{EmbeddingsDir: dir, Embedder: broken})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// The embed call fails, so results must match the pure lexical engine.
	results := e.Search(context.Background(), "evaluation suites", 3)
	lexOnly, err := New(Options{EmbeddingsDir: dir})
	if err != nil {
		t.Fatalf("New lexical: %v", err)
	}
	want := lexOnly.Search(context.Background(), "evaluation suites", 3)

	if len(results) != len(want) {
		t.Fatalf("fallback returned %d results, lexical returned %d", len(results), len(want))
	}
	for i := range want {
		if results[i].ID != want[i].ID {
			t.Errorf("result %d: id %d, want %d", i, results[i].ID, want[i].ID)
		}
	}
}

func TestEngineRejectsModelMismatch(t *testing.T) {
	dir := t.TempDir()
	writeIndex(t, dir, &fakeEmbedder{model: "fake-embed", dims: 3})

	other := &fakeEmbedder{model: "different-model", dims: 3}
	e, err := New(Options{EmbeddingsDir: dir, Embedder: other})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Query embedding is rejected for the wrong model; lexical serves instead.
	results := e.Search(context.Background(), "craft fundamentals", 1)
	if len(results) != 1 {
		t.Fatalf("expected 1 lexical result, got %d", len(results))
	}
	if results[0].ID != 2 {
		t.Errorf("result id = %d, want 2", results[0].ID)
	}
	// The mismatch is detected up front, before spending an embedding call.
	if other.calls != 0 {
		t.Errorf("mismatched embedder was called %d times, want 0", other.calls)
	}
}
