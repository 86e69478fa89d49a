package assessment

import "fmt"

// CellKey addresses one of the 30 matrix cells.
type CellKey struct {
	Level int
	Stage string
}

// CellRef is the JSON shape of a cell reference in a growth path.
type CellRef struct {
	SAELevel   int    `json:"sae_level"`
	EPIASStage string `json:"epias_stage"`
}

// GrowthPath is the recommended next step out of a cell. Next is nil only at
// the terminal cell (5, S).
type GrowthPath struct {
	Next    *CellRef `json:"next"`
	Signal  string   `json:"signal"`
	Actions []string `json:"actions"`
}

// PlacementResult is a scored assessment enriched with its cell description,
// growth path, and the framework's key insight.
type PlacementResult struct {
	ScoreResult
	CellDescription string     `json:"cell_description"`
	GrowthPath      GrowthPath `json:"growth_path"`
	KeyInsight      string     `json:"key_insight"`
}

// KeyInsight is the framework's central claim about maturity versus tooling.
const KeyInsight = "An S-Steward at SAE L1 (someone who's built organizational standards for ChatGPT usage) " +
	"is more mature and more valuable than an E-Explorer at SAE L4 (someone fumbling with advanced toolchains). " +
	"Depth of judgment beats breadth of tooling every time."

var matrixData = map[CellKey]string{
	// L0: Manual
	{0, "E"}: "Exploring craft fundamentals; learning manual techniques with inconsistent results.",
	{0, "P"}: "Consistent manual practice with developed habits and repeatable techniques.",
	{0, "I"}: "Manual workflow fully integrated with validation steps, traceability, and clear decision documentation.",
	{0, "A"}: "Built reusable manual systems, templates, and processes that others on the team adopt.",
	{0, "S"}: "Set organizational standards for craft quality; mentor others in manual techniques; maintain shared design systems.",

	// L1: AI-Assisted
	{1, "E"}: "Trying ChatGPT, Midjourney, Firefly for ideas or drafts; outputs are hit-or-miss and heavily rewritten.",
	{1, "P"}: "Using AI daily with saved prompts; consistent structure, tone, and basic quality checks before use.",
	{1, "I"}: "AI embedded across a full task (research → ideation → draft → refine) with sources noted, decisions explained, and manual validation.",
	{1, "A"}: "Shared prompt libraries, review checklists, and example outputs teammates can reuse and trust.",
	{1, "S"}: "Team standards for AI-assisted work (what's allowed, how it's reviewed); mentors others on prompting and judgment; governs usage.",

	// L2: Partially Automated
	{2, "E"}: "Trying app-builders (Bolt/Lovable/v0/Framer) to generate screens/components; lots of manual stitching and rework.",
	{2, "P"}: "Getting repeatable components from clear specs; using a simple 'definition of done' checklist before integrating.",
	{2, "I"}: "Outputs fit a known integration pattern (tokens/layout/a11y); prompts + inputs are traceable from request → result → final.",
	{2, "A"}: "Reusable component/flow templates + prompt packs that teammates can run and get consistent results.",
	{2, "S"}: "Team norms for what to automate at L2 (safe chunks vs risky ones); mentors others on integration + QA; governs usage and review expectations.",

	// L3: Guided Automation
	{3, "E"}: "Moving work into an IDE (VS Code/Cursor); learning basic context rules; multi-step runs are inconsistent and fragile.",
	{3, "P"}: "Running reliable multi-step workflows inside the IDE with explicit checkpoints (plan → generate → review → revise); lightweight evals by default.",
	{3, "I"}: "Clear decision framing for IDE-run workflows: what AI executes, what humans approve, and when to intervene; failure modes documented.",
	{3, "A"}: "Shared IDE-invoked workflows: Skills/MCP tools, context libraries, and reusable eval templates teammates can run.",
	{3, "S"}: "Org standards for IDE-based AI work (safety, quality, traceability); mentorship on context engineering; maintains shared Skills/MCP.",

	// L4: Mostly Automated
	{4, "E"}: "Experimenting with autonomous harnesses and agent pipelines; results require heavy validation and manual debugging.",
	{4, "P"}: "Operating harnesses with repeatable execution patterns; evals, retries, and escalation paths are consistently applied.",
	{4, "I"}: "End-to-end workflows run autonomously; comprehensive eval suites validate outputs; exception classes and recovery paths documented.",
	{4, "A"}: "Built production-grade agent infrastructure others operate: self-improving harnesses, shared skill libraries, eval-driven pipelines.",
	{4, "S"}: "Governance for autonomous systems at scale; defines risk thresholds, approval gates, and accountability; maintains org-level eval infrastructure.",

	// L5: Full Automation
	{5, "E"}: "Exploring goal-setting interfaces for autonomous AI; exception handling is unclear.",
	{5, "P"}: "Setting approval gates and quality bars consistently; routine review of autonomous outputs.",
	{5, "I"}: "Autonomous workflows validated with exception handling systems; clear escalation paths documented.",
	{5, "A"}: "Designed goal-setting and approval systems that others trust; reusable governance frameworks.",
	{5, "S"}: "Enterprise governance for fully autonomous AI; set approval frameworks; organizational AI risk and trust standards.",
}

var growthPaths = map[CellKey]GrowthPath{
	// L0
	{0, "E"}: {
		Next:   &CellRef{0, "P"},
		Signal: "I have consistent techniques I can rely on.",
		Actions: []string{
			"Develop repeatable manual processes",
			"Document what works",
			"Build consistency in output quality",
		},
	},
	{0, "P"}: {
		Next:   &CellRef{0, "I"},
		Signal: "My work is traceable and well-documented.",
		Actions: []string{
			"Add validation steps to your workflow",
			"Document design decisions with rationale",
			"Create traceability from requirements to outputs",
		},
	},
	{0, "I"}: {
		Next:   &CellRef{0, "A"},
		Signal: "Others adopt my processes and templates.",
		Actions: []string{
			"Turn your personal systems into reusable templates",
			"Create onboarding materials for your processes",
			"Build shared resources others can use",
		},
	},
	{0, "A"}: {
		Next:   &CellRef{0, "S"},
		Signal: "I set the standard for design quality here.",
		Actions: []string{
			"Establish organizational design standards",
			"Mentor others in craft techniques",
			"Maintain and evolve shared design systems",
		},
	},
	{0, "S"}: {
		Next:   &CellRef{1, "E"},
		Signal: "I'm ready to explore how AI can augment my strong manual foundation.",
		Actions: []string{
			"Start experimenting with ChatGPT or Claude for brainstorming",
			"Try AI for one specific task you do repeatedly",
			"Maintain your judgment while exploring AI assistance",
		},
	},

	// L1
	{1, "E"}: {
		Next:   &CellRef{1, "P"},
		Signal: "I know when AI will help before I ask it.",
		Actions: []string{
			"Reuse AI for the same task type",
			"Save prompts that work",
			"Add light structure: context → task → output",
		},
	},
	{1, "P"}: {
		Next:   &CellRef{1, "I"},
		Signal: "I can clearly explain what AI contributed — and what I decided.",
		Actions: []string{
			"Use AI across multiple steps (research → draft → refine)",
			"Note where AI was used and reviewed",
			"Explain why outputs were accepted or rejected",
		},
	},
	{1, "I"}: {
		Next:   &CellRef{1, "A"},
		Signal: "Others can use my prompts and get similar-quality results.",
		Actions: []string{
			"Turn prompts into reusable patterns",
			"Create review habits around AI output",
			"Build prompt libraries organized by task",
		},
	},
	{1, "A"}: {
		Next:   &CellRef{1, "S"},
		Signal: "AI use is trusted here because expectations are clear.",
		Actions: []string{
			"Set clear guidance on acceptable AI use",
			"Establish review norms for AI-assisted work",
			"Coach others on judgment and accountability",
		},
	},
	{1, "S"}: {
		Next:   &CellRef{2, "E"},
		Signal: "I'm ready to ask AI to build, not just think.",
		Actions: []string{
			"Identify safe-to-automate chunks",
			"Try app-builders (Bolt, Lovable, v0) for bounded components",
			"Carry your L1 judgment into L2 exploration",
		},
	},

	// L2
	{2, "E"}: {
		Next:   &CellRef{2, "P"},
		Signal: "I can reliably generate this kind of component with predictable quality.",
		Actions: []string{
			"Write explicit instructions, not vibes",
			"Define 'done' for a generated component",
			"Use the same prompt more than once",
		},
	},
	{2, "P"}: {
		Next:   &CellRef{2, "I"},
		Signal: "I can explain why this output is trustworthy.",
		Actions: []string{
			"Break work into bounded chunks on purpose",
			"Add manual QA checklists (a11y, hierarchy, tone)",
			"Document what AI was asked vs what it produced",
		},
	},
	{2, "I"}: {
		Next:   &CellRef{2, "A"},
		Signal: "People ask to use my AI workflows.",
		Actions: []string{
			"Turn good prompts into reusable templates",
			"Decide which chunks are worth automating",
			"Design guardrails, not just prompts",
		},
	},
	{2, "A"}: {
		Next:   &CellRef{2, "S"},
		Signal: "The team trusts the automation boundaries I've set.",
		Actions: []string{
			"Set standards for partial automation",
			"Govern when automation helps vs hurts",
			"Mentor on safe integration",
		},
	},
	{2, "S"}: {
		Next:   &CellRef{3, "E"},
		Signal: "I'm ready to think in runs, not screens.",
		Actions: []string{
			"Move from chat to IDE-based workflows",
			"Learn basic context engineering",
			"Start with multi-step runs: plan → generate → review",
		},
	},

	// L3
	{3, "E"}: {
		Next:   &CellRef{3, "P"},
		Signal: "My workflows don't fall apart every other run.",
		Actions: []string{
			"Create a standard run template (same steps every time)",
			"Add 'stop and review' gates at predictable points",
			"Use system prompts and instruction blocks consistently",
		},
	},
	{3, "P"}: {
		Next:   &CellRef{3, "I"},
		Signal: "I trust this workflow until it triggers a known exception.",
		Actions: []string{
			"Define clear ownership: AI generates, human approves",
			"Add simple eval checks (structure, length, criteria)",
			"Document failure modes and fixes",
		},
	},
	{3, "I"}: {
		Next:   &CellRef{3, "A"},
		Signal: "My system runs even when I'm not there to coach.",
		Actions: []string{
			"Build modular context (inputs, rules, examples separated)",
			"Create reusable Skills or agent tasks",
			"Develop shared eval patterns",
		},
	},
	{3, "A"}: {
		Next:   &CellRef{3, "S"},
		Signal: "People trust IDE-agent work because expectations are explicit.",
		Actions: []string{
			"Set standards for IDE + AI usage",
			"Mentor on context engineering",
			"Maintain shared Skills, MCP tools, and workflow libraries",
		},
	},
	{3, "S"}: {
		Next:   &CellRef{4, "E"},
		Signal: "I'm ready for the harness to become the workspace.",
		Actions: []string{
			"Extract your best L3 workflow into a runnable spec",
			"Add eval gates that decide pass/retry/escalate",
			"Implement automatic retries with corrective prompts",
		},
	},

	// L4
	{4, "E"}: {
		Next:   &CellRef{4, "P"},
		Signal: "My harness runs reliably with consistent patterns.",
		Actions: []string{
			"Establish repeatable execution patterns",
			"Add evals, retries, and escalation paths",
			"Build logging and auditability",
		},
	},
	{4, "P"}: {
		Next:   &CellRef{4, "I"},
		Signal: "My system self-heals for known exception classes.",
		Actions: []string{
			"Add comprehensive eval suites (structure, quality, regression)",
			"Document exception classes and recovery paths",
			"Implement automatic retry with corrective prompts",
		},
	},
	{4, "I"}: {
		Next:   &CellRef{4, "A"},
		Signal: "Others operate my infrastructure and trust the results.",
		Actions: []string{
			"Make your harness operable by others",
			"Add documentation and onboarding",
			"Build shared skill libraries and eval pipelines",
		},
	},
	{4, "A"}: {
		Next:   &CellRef{4, "S"},
		Signal: "I govern autonomous systems at organizational scale.",
		Actions: []string{
			"Define risk thresholds and approval gates",
			"Establish accountability frameworks",
			"Maintain org-level eval and autonomy infrastructure",
		},
	},
	{4, "S"}: {
		Next:   &CellRef{5, "E"},
		Signal: "I'm ready to explore full autonomy (when it becomes possible).",
		Actions: []string{
			"Explore goal-setting interfaces for autonomous AI",
			"Define exception handling for fully autonomous systems",
			"SAE L5 is aspirational — focus on deepening L4 mastery",
		},
	},

	// L5
	{5, "E"}: {
		Next:   &CellRef{5, "P"},
		Signal: "I consistently set quality bars for autonomous systems.",
		Actions: []string{
			"Set approval gates and quality bars",
			"Establish routine review of autonomous outputs",
			"Build exception handling clarity",
		},
	},
	{5, "P"}: {
		Next:   &CellRef{5, "I"},
		Signal: "Autonomous workflows are validated with clear escalation.",
		Actions: []string{
			"Document exception handling systems",
			"Create clear escalation paths",
			"Validate autonomous workflows end-to-end",
		},
	},
	{5, "I"}: {
		Next:   &CellRef{5, "A"},
		Signal: "Others trust my governance frameworks.",
		Actions: []string{
			"Design goal-setting and approval systems",
			"Create reusable governance frameworks",
			"Build trust calibration tools",
		},
	},
	{5, "A"}: {
		Next:   &CellRef{5, "S"},
		Signal: "I set enterprise AI governance standards.",
		Actions: []string{
			"Define organizational AI risk and trust standards",
			"Create enterprise approval frameworks",
			"Establish cross-team accountability",
		},
	},
	{5, "S"}: {
		Next:   nil,
		Signal: "You've reached the theoretical peak. Stay curious and keep evolving.",
		Actions: []string{
			"Maintain and evolve organizational AI governance",
			"Push the boundaries of what's possible",
			"Remember: SAE L5 is still aspirational",
		},
	},
}

// Placement looks up the cell description and growth path for a score.
func Placement(score ScoreResult) PlacementResult {
	key := CellKey{score.SAELevel, score.EPIASStage}
	return PlacementResult{
		ScoreResult:     score,
		CellDescription: matrixData[key],
		GrowthPath:      growthPaths[key],
		KeyInsight:      KeyInsight,
	}
}

// Matrix is the full grid for visualization.
type Matrix struct {
	Levels     []int             `json:"levels"`
	LevelNames map[string]string `json:"level_names"`
	Stages     []string          `json:"stages"`
	StageNames map[string]string `json:"stage_names"`
	Cells      map[string]string `json:"cells"`
}

// FullMatrix returns every cell description keyed "level_stage" plus axis
// labels, suitable for rendering the 6x5 grid.
func FullMatrix() Matrix {
	cells := make(map[string]string, len(matrixData))
	for key, desc := range matrixData {
		cells[fmt.Sprintf("%d_%s", key.Level, key.Stage)] = desc
	}
	return Matrix{
		Levels: []int{0, 1, 2, 3, 4, 5},
		LevelNames: map[string]string{
			"0": "L0: Manual",
			"1": "L1: AI-Assisted",
			"2": "L2: Partially Automated",
			"3": "L3: Guided Automation",
			"4": "L4: Mostly Automated",
			"5": "L5: Full Automation",
		},
		Stages:     []string{"E", "P", "I", "A", "S"},
		StageNames: StageNames,
		Cells:      cells,
	}
}
