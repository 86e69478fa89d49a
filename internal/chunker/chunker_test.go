package chunker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// wordCounter counts whitespace-separated words, which makes the size
// thresholds in tests easy to reason about.
func wordCounter(s string) int {
	return len(strings.Fields(s))
}

func testChunker(minTokens, maxTokens int) *Chunker {
	return &Chunker{MinTokens: minTokens, MaxTokens: maxTokens, CountTokens: wordCounter}
}

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "word"
	}
	return strings.Join(parts, " ")
}

func TestHeadingStack(t *testing.T) {
	doc := "# A\n\n" + words(5) + "\n\n## B\n\n" + words(5) + "\n\n### C\n\n" + words(5) + "\n\n## D\n\n" + words(5) + "\n"

	c := testChunker(1, 400)
	chunks := c.chunkFile("doc.md", doc, 0)
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}

	wantPaths := [][]string{
		{"A"},
		{"A", "B"},
		{"A", "B", "C"},
		{"A", "D"},
	}
	for i, want := range wantPaths {
		got := chunks[i].HeadingPath
		if len(got) != len(want) {
			t.Fatalf("chunk %d: heading path %v, want %v", i, got, want)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("chunk %d: heading path %v, want %v", i, got, want)
				break
			}
		}
	}

	// A same-or-higher heading pops its ancestors: D replaces both C and B.
	last := chunks[3]
	if last.SectionTitle != "D" {
		t.Errorf("section title = %q, want D", last.SectionTitle)
	}
}

func TestMinTokenDrop(t *testing.T) {
	doc := "# Tiny\n\n" + words(3) + "\n\n# Big\n\n" + words(50) + "\n"

	c := testChunker(30, 400)
	chunks := c.chunkFile("doc.md", doc, 0)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk after dropping the small section, got %d", len(chunks))
	}
	if chunks[0].SectionTitle != "Big" {
		t.Errorf("surviving chunk is %q, want Big", chunks[0].SectionTitle)
	}
}

func TestMaxTokenSplit(t *testing.T) {
	// Three 40-word paragraphs under a 60-word cap: greedy packing yields
	// one chunk per paragraph.
	doc := "# Long\n\n" + words(40) + "\n\n" + words(40) + "\n\n" + words(40) + "\n"

	c := testChunker(1, 60)
	chunks := c.chunkFile("doc.md", doc, 0)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, ch := range chunks {
		if ch.TokenCount > 60 {
			t.Errorf("chunk %d has %d tokens, over the 60 cap", i, ch.TokenCount)
		}
	}
}

func TestOversizedParagraphKeptWhole(t *testing.T) {
	doc := "# Single\n\n" + words(100) + "\n"

	c := testChunker(1, 60)
	chunks := c.chunkFile("doc.md", doc, 0)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].TokenCount != 100 {
		t.Errorf("token count = %d, want 100", chunks[0].TokenCount)
	}
}

func TestTableChunkType(t *testing.T) {
	table := "| a | b |\n| - | - |\n| " + words(20) + " | " + words(20) + " |"
	doc := "# Grid\n\n" + table + "\n\n# Prose\n\n" + words(40) + "\n"

	c := testChunker(1, 400)
	chunks := c.chunkFile("doc.md", doc, 0)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].ChunkType != ChunkTypeTable {
		t.Errorf("table section type = %q, want %q", chunks[0].ChunkType, ChunkTypeTable)
	}
	if chunks[1].ChunkType != ChunkTypeProse {
		t.Errorf("prose section type = %q, want %q", chunks[1].ChunkType, ChunkTypeProse)
	}
}

func TestSAELevelExtraction(t *testing.T) {
	tests := []struct {
		heading string
		want    *int
	}{
		{"SAE L2: Partially Automated", intPtr(2)},
		{"L3 to L4 Transition", intPtr(3)},
		{"Level overview", nil},
		{"L7 does not exist", nil},
	}
	for _, tt := range tests {
		got := extractSAELevel(tt.heading)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("extractSAELevel(%q) = %d, want nil", tt.heading, *got)
		case tt.want != nil && got == nil:
			t.Errorf("extractSAELevel(%q) = nil, want %d", tt.heading, *tt.want)
		case tt.want != nil && got != nil && *got != *tt.want:
			t.Errorf("extractSAELevel(%q) = %d, want %d", tt.heading, *got, *tt.want)
		}
	}
}

func TestEPIASStageExtraction(t *testing.T) {
	tests := []struct {
		heading string
		want    string
	}{
		{"The Practitioner stage", "P"},
		{"Explorer -> Practitioner", "E"},
		{"Explorer → Practitioner", "E"},
		{"Steward responsibilities", "S"},
		{"No stage here", ""},
	}
	for _, tt := range tests {
		if got := extractEPIASStage(tt.heading); got != tt.want {
			t.Errorf("extractEPIASStage(%q) = %q, want %q", tt.heading, got, tt.want)
		}
	}
}

func TestChunkAllOrderingAndIDs(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.md", "# B1\n\n"+words(40)+"\n\n# B2\n\n"+words(40)+"\n")
	write("a.md", "# A1\n\n"+words(40)+"\n")
	write("notes.txt", "ignored")

	c := testChunker(1, 400)
	chunks, err := c.ChunkAll(dir)
	if err != nil {
		t.Fatalf("ChunkAll: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	// Lexicographic file order, dense IDs across documents.
	if chunks[0].SourceFile != "a.md" || chunks[1].SourceFile != "b.md" {
		t.Errorf("file order: %s, %s, %s", chunks[0].SourceFile, chunks[1].SourceFile, chunks[2].SourceFile)
	}
	for i, ch := range chunks {
		if ch.ID != i {
			t.Errorf("chunk %d has id %d", i, ch.ID)
		}
	}
}

func TestChunkAllMissingDir(t *testing.T) {
	c := New()
	if _, err := c.ChunkAll(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing source dir")
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"hello world", 2},
		{"hello, world!", 4},
		{"one  two\nthree", 3},
	}
	for _, tt := range tests {
		if got := EstimateTokens(tt.text); got != tt.want {
			t.Errorf("EstimateTokens(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func intPtr(n int) *int { return &n }
