package search

import (
	"math"
	"testing"
)

func TestLexicalRanking(t *testing.T) {
	texts := []string{
		"prompt engineering techniques improve prompt quality",
		"design systems need governance and standards",
		"prompt libraries help teams reuse good prompts",
	}
	idx := newLexicalIndex(texts)

	hits := idx.search("prompt engineering", 3)
	if len(hits) == 0 {
		t.Fatal("expected hits for overlapping query")
	}
	if hits[0].index != 0 {
		t.Errorf("best hit = doc %d, want 0", hits[0].index)
	}
	for i := 1; i < len(hits); i++ {
		if hits[i].score > hits[i-1].score {
			t.Errorf("scores not descending at %d", i)
		}
	}
}

func TestLexicalZeroSimilarityExcluded(t *testing.T) {
	texts := []string{
		"autonomous agent harnesses run evaluation suites",
		"designers explore manual craft fundamentals",
	}
	idx := newLexicalIndex(texts)

	hits := idx.search("quantum chromodynamics", 5)
	if len(hits) != 0 {
		t.Fatalf("expected no hits for disjoint query, got %d", len(hits))
	}

	// A query matching only one doc must not be padded with the other.
	hits = idx.search("autonomous harnesses", 5)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].index != 0 {
		t.Errorf("hit = doc %d, want 0", hits[0].index)
	}
}

func TestLexicalTopKTruncation(t *testing.T) {
	texts := []string{
		"maturity stages matter",
		"maturity grows with practice",
		"maturity requires governance",
		"maturity and judgment",
	}
	idx := newLexicalIndex(texts)

	hits := idx.search("maturity", 2)
	if len(hits) != 2 {
		t.Fatalf("expected topK=2 hits, got %d", len(hits))
	}
}

func TestLexicalStopwordsAndCase(t *testing.T) {
	idx := newLexicalIndex([]string{"The Explorer is learning the fundamentals"})

	tokens := idx.tokenize("The EXPLORER and the Fundamentals")
	want := []string{"explorer", "fundamentals"}
	if len(tokens) != len(want) {
		t.Fatalf("tokens = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("tokens = %v, want %v", tokens, want)
			break
		}
	}
}

func TestLexicalApostropheTokens(t *testing.T) {
	idx := newLexicalIndex([]string{"the designer's workflow isn't fragile"})
	tokens := idx.tokenize("designer's workflow")
	if len(tokens) != 2 || tokens[0] != "designer's" {
		t.Fatalf("tokens = %v, want [designer's workflow]", tokens)
	}
}

func TestDocVectorsNormalised(t *testing.T) {
	idx := newLexicalIndex([]string{
		"context engineering for multi step workflows",
		"evaluation gates decide pass retry escalate",
	})
	for i, doc := range idx.docs {
		norm := 0.0
		for _, v := range doc {
			norm += v * v
		}
		if math.Abs(math.Sqrt(norm)-1.0) > 1e-9 {
			t.Errorf("doc %d norm = %f, want 1", i, math.Sqrt(norm))
		}
	}
}

func TestLexicalEmptyCorpus(t *testing.T) {
	idx := newLexicalIndex(nil)
	if hits := idx.search("anything", 5); hits != nil {
		t.Fatalf("expected nil hits on empty corpus, got %v", hits)
	}
}
