package search

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// maxVocabulary caps the lexical index at the top terms by corpus frequency.
const maxVocabulary = 5000

var tokenPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// lexicalIndex is a TF-IDF vector space over the chunk texts, built once at
// load time and read-only afterwards.
type lexicalIndex struct {
	vocabulary map[string]int
	idf        []float64
	docs       [][]float64 // L2-normalised, one row per chunk
	stopwords  map[string]struct{}
}

func newLexicalIndex(texts []string) *lexicalIndex {
	idx := &lexicalIndex{
		vocabulary: make(map[string]int),
		stopwords:  englishStopwords(),
	}
	if len(texts) == 0 {
		return idx
	}

	// Document frequencies and total term counts over the corpus
	df := make(map[string]int)
	totalFreq := make(map[string]int)
	tokenized := make([][]string, len(texts))
	for i, text := range texts {
		tokens := idx.tokenize(text)
		tokenized[i] = tokens
		seen := make(map[string]struct{})
		for _, tok := range tokens {
			totalFreq[tok]++
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	// Cap the vocabulary at the most frequent terms, then order the survivors
	// alphabetically for a stable dimension assignment.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	if len(terms) > maxVocabulary {
		sort.Slice(terms, func(i, j int) bool {
			if totalFreq[terms[i]] != totalFreq[terms[j]] {
				return totalFreq[terms[i]] > totalFreq[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:maxVocabulary]
	}
	sort.Strings(terms)

	idx.idf = make([]float64, len(terms))
	n := float64(len(texts))
	for i, term := range terms {
		idx.vocabulary[term] = i
		// Smoothed IDF
		idx.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}

	idx.docs = make([][]float64, len(texts))
	for i, tokens := range tokenized {
		idx.docs[i] = idx.vectorize(tokens)
	}
	return idx
}

// search scores the query by cosine similarity against every chunk vector and
// returns up to topK hits with strictly positive similarity, descending.
// Zero-similarity chunks are never used to pad results.
func (idx *lexicalIndex) search(query string, topK int) []scoredHit {
	if len(idx.docs) == 0 || topK <= 0 {
		return nil
	}
	qvec := idx.vectorize(idx.tokenize(query))

	hits := make([]scoredHit, 0, len(idx.docs))
	for i, doc := range idx.docs {
		score := dot(qvec, doc)
		if score > 0 {
			hits = append(hits, scoredHit{index: i, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits
}

type scoredHit struct {
	index int
	score float64
}

func (idx *lexicalIndex) tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := idx.stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// vectorize builds the L2-normalised TF-IDF vector for a token sequence.
func (idx *lexicalIndex) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(idx.idf))
	tf := make(map[int]int)
	total := 0
	for _, tok := range tokens {
		if i, ok := idx.vocabulary[tok]; ok {
			tf[i]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for i, count := range tf {
		vec[i] = float64(count) / float64(total) * idx.idf[i]
	}
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func englishStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to",
		"of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were",
		"be", "been", "being", "it", "its", "this", "that", "these", "those",
		"from", "up", "down", "over", "under", "again", "further", "than", "so",
		"such", "into", "about", "between", "through", "during", "before",
		"after", "above", "below", "out", "off", "own", "same", "too", "very",
		"can", "will", "just", "should", "now", "not", "no", "nor", "do",
		"does", "did", "doing", "have", "has", "had", "having", "i", "you",
		"he", "she", "we", "they", "them", "their", "there", "here", "what",
		"which", "who", "whom", "when", "where", "why", "how", "all", "any",
		"both", "each", "few", "more", "most", "other", "some", "only",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
