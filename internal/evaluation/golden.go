// Package evaluation runs a fixed set of golden framework questions against
// LLM providers and scores each answer for theme coverage, length, latency,
// and estimated cost, producing a provider comparison report.
package evaluation

// GoldenQuestion is one curated question together with the themes a good
// grounded answer is expected to mention.
type GoldenQuestion struct {
	ID             string   `json:"id"`
	Question       string   `json:"question"`
	ExpectedLevel  string   `json:"expected_level,omitempty"`
	ExpectedThemes []string `json:"expected_themes"`
	Category       string   `json:"category"`
}

// GoldenQuestions covers level identification, EPIAS distinctions, transition
// guidance, and framework principles.
var GoldenQuestions = []GoldenQuestion{
	{
		ID:             "g01",
		Question:       "What SAE level am I at if I use ChatGPT to brainstorm design ideas but rewrite everything?",
		ExpectedLevel:  "L1",
		ExpectedThemes: []string{"SAE L1", "AI-Assisted", "human drives", "suggest", "direct each step", "rewrite"},
		Category:       "level_identification",
	},
	{
		ID:             "g02",
		Question:       "What's the difference between an Explorer and a Practitioner at L2?",
		ExpectedThemes: []string{"Explorer", "Practitioner", "trying", "repeatable", "consistent", "definition of done", "rework"},
		Category:       "epias_distinction",
	},
	{
		ID:             "g03",
		Question:       "I use Bolt.new to generate React components from specs. Am I at L2 or L3?",
		ExpectedLevel:  "L2",
		ExpectedThemes: []string{"L2", "app-builders", "bounded chunks", "screens", "components", "Bolt"},
		Category:       "level_identification",
	},
	{
		ID:             "g04",
		Question:       "What does it mean to be a Steward at L1?",
		ExpectedThemes: []string{"Steward", "L1", "standards", "team", "governs", "mentor", "judgment", "review"},
		Category:       "role_description",
	},
	{
		ID:             "g05",
		Question:       "How do I transition from L2 to L3?",
		ExpectedThemes: []string{"screens", "runs", "IDE", "multi-step", "context engineering", "checkpoints", "workflow"},
		Category:       "transition_guidance",
	},
	{
		ID:             "g06",
		Question:       "Is a Steward at L1 more mature than an Explorer at L4?",
		ExpectedThemes: []string{"yes", "depth", "judgment", "breadth", "tooling", "more valuable", "more mature"},
		Category:       "framework_principles",
	},
	{
		ID:             "g07",
		Question:       "What's the key difference between L3 and L4?",
		ExpectedThemes: []string{"close laptop", "stops", "continues", "away", "exceptions", "harness", "IDE"},
		Category:       "level_distinction",
	},
	{
		ID:             "g08",
		Question:       "What concrete things should I do to move from L3 Practitioner to L3 Integrator?",
		ExpectedThemes: []string{"decision framing", "failure mode", "escalation", "approval", "eval", "ownership"},
		Category:       "growth_actions",
	},
	{
		ID:             "g09",
		Question:       "What tools do designers typically use at L3?",
		ExpectedThemes: []string{"VS Code", "Cursor", "IDE", "Copilot", "LangChain", "MCP", "workflow"},
		Category:       "tooling",
	},
	{
		ID:             "g10",
		Question:       "Should I skip L2 and jump straight to L3?",
		ExpectedThemes: []string{"judgment", "deeper", "carry forward", "don't race", "reliability", "L2"},
		Category:       "framework_principles",
	},
}
