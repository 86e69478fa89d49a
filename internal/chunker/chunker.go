package chunker

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Chunk is one retrievable passage of framework content. JSON tags match the
// manifest format consumed by the search engine.
type Chunk struct {
	ID           int      `json:"chunk_id"`
	SourceFile   string   `json:"source_file"`
	SectionTitle string   `json:"section_title"`
	HeadingPath  []string `json:"heading_hierarchy"`
	Text         string   `json:"text"`
	TokenCount   int      `json:"token_count"`
	SAELevel     *int     `json:"sae_level,omitempty"`
	EPIASStage   string   `json:"epias_stage,omitempty"`
	ChunkType    string   `json:"chunk_type"`
}

const (
	ChunkTypeProse = "prose"
	ChunkTypeTable = "table"

	DefaultMinTokens = 30
	DefaultMaxTokens = 400
)

var (
	headingRegex   = regexp.MustCompile(`^(#{1,3})\s+(.*)`)
	saeLevelRegex  = regexp.MustCompile(`(?:SAE\s+)?L(\d)`)
	paragraphRegex = regexp.MustCompile(`\n\n+`)
	arrowRegex     = regexp.MustCompile(`->|→`)
)

var stageKeywords = []struct {
	word string
	code string
}{
	{"explorer", "E"},
	{"practitioner", "P"},
	{"integrator", "I"},
	{"architect", "A"},
	{"steward", "S"},
}

// Chunker splits markdown documents into bounded-size chunks. CountTokens is
// fixed for a whole corpus build; swapping it between builds changes the size
// thresholds but not correctness.
type Chunker struct {
	MinTokens   int
	MaxTokens   int
	CountTokens func(string) int
}

func New() *Chunker {
	return &Chunker{
		MinTokens:   DefaultMinTokens,
		MaxTokens:   DefaultMaxTokens,
		CountTokens: EstimateTokens,
	}
}

// ChunkAll chunks every markdown file in sourceDir in lexicographic filename
// order. Chunk IDs increment densely across the whole run and never reset
// mid-document. Any unreadable file aborts the build.
func (c *Chunker) ChunkAll(sourceDir string) ([]Chunk, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("read source dir %s: %w", sourceDir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	var chunks []Chunk
	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(sourceDir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		chunks = append(chunks, c.chunkFile(name, string(data), len(chunks))...)
	}
	return chunks, nil
}

// ChunkFile chunks a single document's content, assigning IDs from startID.
func (c *Chunker) chunkFile(filename, text string, startID int) []Chunk {
	sections := splitByHeadings(text)

	var chunks []Chunk
	for _, sec := range sections {
		if strings.TrimSpace(sec.content) == "" {
			continue
		}

		sectionTitle := strings.TrimSuffix(filename, ".md")
		if len(sec.path) > 0 {
			sectionTitle = sec.path[len(sec.path)-1]
		}

		joined := strings.Join(sec.path, " ")
		level := extractSAELevel(joined)
		stage := extractEPIASStage(joined)
		chunkType := ChunkTypeProse
		if strings.Count(sec.content, "|") > 4 {
			chunkType = ChunkTypeTable
		}

		for _, sub := range c.splitToSize(sec.content) {
			tokens := c.CountTokens(sub)
			if tokens < c.MinTokens {
				continue
			}
			chunks = append(chunks, Chunk{
				ID:           startID + len(chunks),
				SourceFile:   filename,
				SectionTitle: sectionTitle,
				HeadingPath:  append([]string(nil), sec.path...),
				Text:         strings.TrimSpace(sub),
				TokenCount:   tokens,
				SAELevel:     level,
				EPIASStage:   stage,
				ChunkType:    chunkType,
			})
		}
	}
	return chunks
}

type section struct {
	path    []string
	content string
}

// splitByHeadings splits markdown on level 1-3 headings, maintaining a running
// heading stack: a heading at depth d pops every entry at depth >= d before
// pushing, so each section carries its exact ancestor path.
func splitByHeadings(text string) []section {
	lines := strings.Split(text, "\n")

	type stackEntry struct {
		depth int
		title string
	}
	var stack []stackEntry
	var sections []section
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		path := make([]string, len(stack))
		for i, e := range stack {
			path[i] = e.title
		}
		sections = append(sections, section{path: path, content: strings.Join(current, "\n")})
		current = nil
	}

	for _, line := range lines {
		m := headingRegex.FindStringSubmatch(line)
		if m == nil {
			current = append(current, line)
			continue
		}
		flush()
		depth := len(m[1])
		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, stackEntry{depth: depth, title: strings.TrimSpace(m[2])})
	}
	flush()

	return sections
}

// splitToSize splits oversized sections at paragraph boundaries, greedily
// packing consecutive paragraphs up to MaxTokens. A single paragraph over the
// limit is kept whole.
func (c *Chunker) splitToSize(text string) []string {
	if c.CountTokens(text) <= c.MaxTokens {
		return []string{text}
	}

	paragraphs := paragraphRegex.Split(text, -1)
	var out []string
	var current []string
	currentTokens := 0

	for _, para := range paragraphs {
		paraTokens := c.CountTokens(para)
		if currentTokens+paraTokens > c.MaxTokens && len(current) > 0 {
			out = append(out, strings.Join(current, "\n\n"))
			current = []string{para}
			currentTokens = paraTokens
		} else {
			current = append(current, para)
			currentTokens += paraTokens
		}
	}
	if len(current) > 0 {
		out = append(out, strings.Join(current, "\n\n"))
	}

	if len(out) == 0 {
		return []string{text}
	}
	return out
}

// extractSAELevel finds the first digit after an L marker in the heading path,
// e.g. "SAE L2" or "L3 to L4" yields 2 or 3.
func extractSAELevel(text string) *int {
	m := saeLevelRegex.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > 5 {
		return nil
	}
	return &n
}

// extractEPIASStage finds the first stage keyword in the heading path. A
// transition heading like "Explorer -> Practitioner" tags as the source stage,
// so only text before the arrow is searched when one is present.
func extractEPIASStage(text string) string {
	lower := strings.ToLower(text)
	if arrowRegex.MatchString(lower) {
		before := arrowRegex.Split(lower, 2)[0]
		for _, s := range stageKeywords {
			if strings.Contains(before, s.word) {
				return s.code
			}
		}
	}
	for _, s := range stageKeywords {
		if strings.Contains(lower, s.word) {
			return s.code
		}
	}
	return ""
}

// EstimateTokens approximates a BPE tokenizer by counting word runs and
// standalone punctuation. Good enough for comparable min/max thresholds as
// long as the same counter is used for the whole build.
func EstimateTokens(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if !inWord {
				count++
				inWord = true
			}
		case unicode.IsSpace(r):
			inWord = false
		default:
			count++
			inWord = false
		}
	}
	return count
}
