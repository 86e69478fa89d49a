package assessment

// LevelOption is one answer choice in the automation-level questionnaire.
type LevelOption struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// LevelQuestion identifies the respondent's SAE automation level (0-5).
type LevelQuestion struct {
	ID       string        `json:"id"`
	Question string        `json:"question"`
	Options  []LevelOption `json:"options"`
}

// StageOption is one answer choice in the maturity questionnaire. Stage is a
// single letter E, P, I, A or S.
type StageOption struct {
	Stage string `json:"stage"`
	Text  string `json:"text"`
}

// StageQuestion probes EPIAS maturity within one automation level.
type StageQuestion struct {
	ID        string        `json:"id"`
	Dimension string        `json:"dimension"`
	Question  string        `json:"question"`
	Options   []StageOption `json:"options"`
}

var saeQuestions = []LevelQuestion{
	{
		ID:       "sae_tools",
		Question: "Which best describes the AI tools in your design workflow?",
		Options: []LevelOption{
			{0, "I don't use AI tools — all my design work is manual."},
			{1, "I use ChatGPT or Midjourney for ideas and drafts, but I direct every step."},
			{2, "I use app-builders (Bolt, v0, Framer) to generate screens or components from specs."},
			{3, "I work in an IDE with multi-step AI workflows, checkpoints, and context engineering."},
			{4, "I run automated agent harnesses with eval suites that execute autonomously."},
			{5, "AI runs most of my workflow — I set goals and review exceptions."},
		},
	},
	{
		ID:       "sae_qa",
		Question: "How do you quality-check AI outputs?",
		Options: []LevelOption{
			{0, "N/A — I don't use AI in my work."},
			{1, "I manually review and heavily rewrite everything AI produces."},
			{2, "I run a checklist (design-system fit, accessibility, tone) before integrating AI output."},
			{3, "I have lightweight evals and explicit review gates in my workflows."},
			{4, "Automated eval suites decide pass, retry, or escalate without my input."},
			{5, "Self-correcting systems handle QA — I only review flagged exceptions."},
		},
	},
	{
		ID:       "sae_laptop",
		Question: "What happens when you close your laptop?",
		Options: []LevelOption{
			{0, "All work stops — everything is manual."},
			{1, "All work stops — AI only runs when I'm actively prompting."},
			{2, "All work stops — I manually assemble generated pieces later."},
			{3, "All work stops — my IDE workflows only run while I'm present."},
			{4, "Work continues — my harnesses run, eval, and retry autonomously."},
			{5, "Work continues indefinitely — I'm only needed for exceptions."},
		},
	},
	{
		ID:       "sae_prompting",
		Question: "How do you instruct AI?",
		Options: []LevelOption{
			{0, "I don't write prompts for AI."},
			{1, "I write ad-hoc prompts and iterate until the output looks right."},
			{2, "I write structured prompts with context, constraints, and output format."},
			{3, "I engineer context blocks (system prompts, rules, examples) for multi-step workflows."},
			{4, "I build harness configs with eval gates, retry logic, and corrective prompts."},
			{5, "I set high-level goals — the system manages its own prompting."},
		},
	},
	{
		ID:       "sae_outputs",
		Question: "What kind of design artifacts does AI help you produce?",
		Options: []LevelOption{
			{0, "None — I produce everything manually."},
			{1, "Ideas, copy drafts, and visual concepts that I heavily refine."},
			{2, "Usable screens, components, and small flows from clear specs."},
			{3, "Large features via orchestrated multi-step workflows with human QA checkpoints."},
			{4, "End-to-end features that are generated, tested, and QA'd automatically."},
			{5, "Complete products with autonomous iteration and self-correction."},
		},
	},
	{
		ID:       "sae_reuse",
		Question: "How reusable are your AI workflows?",
		Options: []LevelOption{
			{0, "N/A — I don't use AI workflows."},
			{1, "I save some prompts and reuse them occasionally."},
			{2, "I have reusable prompt templates with context and constraints sections."},
			{3, "I maintain shared workflow scripts and context libraries."},
			{4, "I maintain production-grade agent infrastructure others operate."},
			{5, "Self-improving harnesses that evolve with usage data."},
		},
	},
}

// epiasQuestions maps each automation level to its five maturity questions.
var epiasQuestions = map[int][]StageQuestion{
	0: {
		{
			ID:        "epias_l0_craft",
			Dimension: "craft_maturity",
			Question:  "How would you describe your manual design craft?",
			Options: []StageOption{
				{"E", "I'm exploring fundamentals — my quality varies and I need guidance."},
				{"P", "I have consistent practice with repeatable techniques and habits."},
				{"I", "My workflow includes validation steps and clear decision documentation."},
				{"A", "I've built reusable templates and processes that my team adopts."},
				{"S", "I set organizational standards for craft quality and mentor others."},
			},
		},
		{
			ID:        "epias_l0_consistency",
			Dimension: "consistency",
			Question:  "How consistent is the quality of your design outputs?",
			Options: []StageOption{
				{"E", "Inconsistent — some work is great, some needs heavy revision."},
				{"P", "Reliably good — I follow a process that keeps quality steady."},
				{"I", "Consistently high with documented rationale for every decision."},
				{"A", "Others using my templates achieve similar quality independently."},
				{"S", "I define and maintain quality standards for the organization."},
			},
		},
		{
			ID:        "epias_l0_documentation",
			Dimension: "documentation",
			Question:  "How do you document your design decisions?",
			Options: []StageOption{
				{"E", "Rarely — decisions live in my head."},
				{"P", "I keep notes on what worked for my own reference."},
				{"I", "I document decisions with rationale so they're traceable and reviewable."},
				{"A", "I've created documentation frameworks others use for their decisions."},
				{"S", "I maintain organizational standards for design documentation."},
			},
		},
		{
			ID:        "epias_l0_sharing",
			Dimension: "knowledge_sharing",
			Question:  "How do you share your design knowledge?",
			Options: []StageOption{
				{"E", "I mostly learn from others and haven't started sharing."},
				{"P", "I share tips and techniques informally with teammates."},
				{"I", "I contribute to team knowledge bases and design reviews."},
				{"A", "I've built reusable assets (templates, systems) others rely on."},
				{"S", "I run training, set standards, and mentor across the organization."},
			},
		},
		{
			ID:        "epias_l0_process",
			Dimension: "process_maturity",
			Question:  "How structured is your design process?",
			Options: []StageOption{
				{"E", "Mostly ad-hoc — I figure it out as I go."},
				{"P", "I follow a repeatable process with defined steps."},
				{"I", "My process is integrated end-to-end with product development."},
				{"A", "I've designed processes that entire teams follow."},
				{"S", "I maintain and evolve organizational design processes."},
			},
		},
	},
	1: {
		{
			ID:        "epias_l1_consistency",
			Dimension: "output_consistency",
			Question:  "How consistent are your AI-assisted design outputs?",
			Options: []StageOption{
				{"E", "Hit-or-miss — I try things and see what happens."},
				{"P", "Predictable — I know what to expect from my saved prompts."},
				{"I", "Reliable across full tasks: research → ideation → draft → refine."},
				{"A", "Others reuse my prompt libraries and get similar-quality results."},
				{"S", "I set the quality standard for AI-assisted work that the team follows."},
			},
		},
		{
			ID:        "epias_l1_judgment",
			Dimension: "ai_judgment",
			Question:  "How well do you know when AI helps versus hurts?",
			Options: []StageOption{
				{"E", "Still figuring out what AI is good at versus poor at."},
				{"P", "I know when AI will help before I ask it."},
				{"I", "I can clearly explain what AI contributed versus what I decided."},
				{"A", "I've documented AI usage guidelines for the team."},
				{"S", "I set organizational policy on acceptable AI use."},
			},
		},
		{
			ID:        "epias_l1_prompts",
			Dimension: "prompt_maturity",
			Question:  "How do you manage your prompts?",
			Options: []StageOption{
				{"E", "I write new prompts each time — nothing is saved."},
				{"P", "I save and reuse structured prompts (context → task → output)."},
				{"I", "I use prompts intentionally across multi-step tasks with sources noted."},
				{"A", "I maintain prompt libraries organized by task type with review checklists."},
				{"S", "I govern prompt standards and train others on prompting judgment."},
			},
		},
		{
			ID:        "epias_l1_accountability",
			Dimension: "accountability",
			Question:  "How do you handle accountability for AI-generated work?",
			Options: []StageOption{
				{"E", "I don't think much about it — I use what looks good."},
				{"P", "I always manually verify before using AI output."},
				{"I", "I note where AI was used and why outputs were accepted or rejected."},
				{"A", "I've created example libraries showing good versus risky AI outputs."},
				{"S", "I set review norms and governance for AI-assisted work."},
			},
		},
		{
			ID:        "epias_l1_teaching",
			Dimension: "knowledge_transfer",
			Question:  "How do you help others learn to use AI in design?",
			Options: []StageOption{
				{"E", "I'm still learning myself."},
				{"P", "I share tips and tricks that work for me."},
				{"I", "I demonstrate full AI-assisted workflows with clear rationale."},
				{"A", "Others routinely ask to use my AI workflows and libraries."},
				{"S", "I mentor designers on AI judgment and maintain shared systems."},
			},
		},
	},
	2: {
		{
			ID:        "epias_l2_specs",
			Dimension: "specification_quality",
			Question:  "How clear are the specs you give AI app-builders?",
			Options: []StageOption{
				{"E", "Vague — lots of manual stitching and rework needed."},
				{"P", "Clear enough for repeatable components with a definition-of-done checklist."},
				{"I", "Outputs fit known patterns (tokens, layout, a11y) and prompts are traceable."},
				{"A", "I've created reusable component generators teammates run consistently."},
				{"S", "I set team norms for what to automate and how to review generated output."},
			},
		},
		{
			ID:        "epias_l2_integration",
			Dimension: "integration",
			Question:  "How do you integrate AI-generated components?",
			Options: []StageOption{
				{"E", "Copy-paste and heavily modify by hand."},
				{"P", "I check design-system fit, accessibility, and tone before integrating."},
				{"I", "I have repeatable integration patterns with explicit handoff notes."},
				{"A", "I've built generate-check-refine bundles others use."},
				{"S", "I govern which chunks are safe to automate and set review expectations."},
			},
		},
		{
			ID:        "epias_l2_chunking",
			Dimension: "work_decomposition",
			Question:  "How do you decide what to ask AI to build?",
			Options: []StageOption{
				{"E", "I try generating whole pages and see what comes out."},
				{"P", "I know which bounded units (buttons, forms, cards) AI handles well."},
				{"I", "I break work into safe-to-automate chunks with clear inputs and done criteria."},
				{"A", "I've created component-specific generators for common patterns."},
				{"S", "I decide which work types the team automates versus does manually."},
			},
		},
		{
			ID:        "epias_l2_quality",
			Dimension: "quality_assurance",
			Question:  "How do you ensure quality of AI-generated output?",
			Options: []StageOption{
				{"E", "Visual inspection and gut feel."},
				{"P", "A checklist: design-system fit, accessibility, tone."},
				{"I", "Documented QA process with traceability from request to final."},
				{"A", "Shared QA bundles with prompt templates for consistent review."},
				{"S", "I set and maintain review standards for all AI-generated UI."},
			},
		},
		{
			ID:        "epias_l2_reuse",
			Dimension: "reusability",
			Question:  "How reusable are your AI generation workflows?",
			Options: []StageOption{
				{"E", "I start fresh each time with new prompts."},
				{"P", "I reuse prompt templates and expect similar quality each run."},
				{"I", "I maintain prompt libraries organized by component type."},
				{"A", "Others rely on my shared libraries for generation."},
				{"S", "I maintain and govern team-wide generation standards."},
			},
		},
	},
	3: {
		{
			ID:        "epias_l3_reliability",
			Dimension: "workflow_reliability",
			Question:  "How reliable are your multi-step AI workflows?",
			Options: []StageOption{
				{"E", "Inconsistent and fragile — multi-step runs break often."},
				{"P", "Reliable with checkpoints: plan → generate → review → revise."},
				{"I", "Clear framing: what AI executes, what humans approve, when to intervene."},
				{"A", "Others run my workflows and get comparable quality without coaching."},
				{"S", "I set org standards for IDE-based AI work (safety, quality, traceability)."},
			},
		},
		{
			ID:        "epias_l3_context",
			Dimension: "context_engineering",
			Question:  "How sophisticated is your context engineering?",
			Options: []StageOption{
				{"E", "Learning basic context rules — mostly trial and error."},
				{"P", "I use system prompts, instruction blocks, and explicit review moments."},
				{"I", "I have lightweight evals and documented failure modes."},
				{"A", "I maintain modular context libraries (brand voice, design system, constraints)."},
				{"S", "I mentor others on context engineering and maintain shared tools."},
			},
		},
		{
			ID:        "epias_l3_failures",
			Dimension: "failure_handling",
			Question:  "How do you handle workflow failures?",
			Options: []StageOption{
				{"E", "I start over or try different prompts until something works."},
				{"P", "I have retry patterns and know the common failure modes."},
				{"I", "I've documented failure taxonomy and escalation triggers."},
				{"A", "My workflows have built-in exception handling teammates understand."},
				{"S", "I define organizational standards for failure handling and risk."},
			},
		},
		{
			ID:        "epias_l3_tooling",
			Dimension: "tooling",
			Question:  "What kind of IDE/AI tooling do you use?",
			Options: []StageOption{
				{"E", "Basic IDE with a copilot — still learning to use it effectively."},
				{"P", "IDE with MCP tools and a stable run-loop template."},
				{"I", "IDE with structured evals, approval gates, and ownership boundaries."},
				{"A", "Reusable workflow scripts and context libraries teams can invoke."},
				{"S", "I maintain shared IDE/AI infrastructure and govern tool access."},
			},
		},
		{
			ID:        "epias_l3_ownership",
			Dimension: "decision_ownership",
			Question:  "How clear is the division of work between you and AI?",
			Options: []StageOption{
				{"E", "Blurry — I'm not always sure what AI decided versus what I decided."},
				{"P", "Clear — I know my checkpoints and what I'm responsible for."},
				{"I", "Explicitly defined: AI generates, human approves, with documented handoffs."},
				{"A", "My team follows the same decision framework with clear roles."},
				{"S", "I set organizational norms for human-AI decision boundaries."},
			},
		},
	},
	4: {
		{
			ID:        "epias_l4_harness",
			Dimension: "harness_maturity",
			Question:  "How mature are your autonomous AI harnesses?",
			Options: []StageOption{
				{"E", "Experimenting with agent pipelines — results need heavy validation."},
				{"P", "Operating harnesses with repeatable execution, evals, and retries."},
				{"I", "End-to-end workflows run autonomously with comprehensive eval suites."},
				{"A", "I've built production-grade agent infrastructure others operate."},
				{"S", "I define governance for autonomous systems at scale."},
			},
		},
		{
			ID:        "epias_l4_evals",
			Dimension: "evaluation",
			Question:  "How do your evaluation systems work?",
			Options: []StageOption{
				{"E", "Manual review of agent outputs after each run."},
				{"P", "Automated pass/fail gates with manual escalation for edge cases."},
				{"I", "Comprehensive eval suites with structure, quality, and regression gates."},
				{"A", "Self-improving eval pipelines with eval-driven development."},
				{"S", "I maintain org-level eval infrastructure and define risk thresholds."},
			},
		},
		{
			ID:        "epias_l4_autonomy",
			Dimension: "system_autonomy",
			Question:  "How autonomous are your AI systems?",
			Options: []StageOption{
				{"E", "Semi-autonomous — I still check in frequently and debug manually."},
				{"P", "Run reliably with escalation paths — I handle exceptions."},
				{"I", "Exception classes and recovery paths are documented; the system self-heals."},
				{"A", "Others operate my systems and interpret failures independently."},
				{"S", "I define accountability and approval frameworks for autonomous AI."},
			},
		},
		{
			ID:        "epias_l4_infrastructure",
			Dimension: "shared_infra",
			Question:  "How do others interact with your AI infrastructure?",
			Options: []StageOption{
				{"E", "It's personal tooling — only I use it."},
				{"P", "Teammates can trigger runs with my guidance."},
				{"I", "Others trigger runs and interpret results independently."},
				{"A", "My harness is maintained like a product with docs and onboarding."},
				{"S", "I run organizational AI infrastructure serving multiple teams."},
			},
		},
		{
			ID:        "epias_l4_governance",
			Dimension: "governance",
			Question:  "What governance do you have for automated AI work?",
			Options: []StageOption{
				{"E", "Minimal — I trust my own judgment to catch problems."},
				{"P", "Logging and diffs for auditability; rollback plans exist."},
				{"I", "Formal decision traces, approval gates, and rollback procedures."},
				{"A", "Governance frameworks that other teams adopt."},
				{"S", "Enterprise-level AI risk management and trust standards."},
			},
		},
	},
	5: {
		{
			ID:        "epias_l5_goals",
			Dimension: "goal_setting",
			Question:  "How do you set goals for fully autonomous AI systems?",
			Options: []StageOption{
				{"E", "Exploring goal-setting interfaces — exception handling is unclear."},
				{"P", "I set approval gates and quality bars consistently."},
				{"I", "Autonomous workflows with clear, documented escalation paths."},
				{"A", "I've designed goal-setting and approval systems others trust."},
				{"S", "I define enterprise governance for fully autonomous AI."},
			},
		},
		{
			ID:        "epias_l5_oversight",
			Dimension: "oversight",
			Question:  "How do you maintain oversight of autonomous systems?",
			Options: []StageOption{
				{"E", "Manual spot-checking of outputs."},
				{"P", "Routine review of autonomous outputs on a schedule."},
				{"I", "Exception-handling systems with clear escalation paths."},
				{"A", "Reusable governance frameworks for autonomous oversight."},
				{"S", "Organizational AI risk and trust standards."},
			},
		},
		{
			ID:        "epias_l5_trust",
			Dimension: "trust_calibration",
			Question:  "How well-calibrated is your trust in autonomous AI?",
			Options: []StageOption{
				{"E", "I'm not sure when to trust and when to verify."},
				{"P", "I know the boundaries of what I can trust."},
				{"I", "Trust boundaries are documented with validation evidence."},
				{"A", "I've designed trust frameworks others use to calibrate."},
				{"S", "I set organizational trust policies and approval frameworks."},
			},
		},
		{
			ID:        "epias_l5_adaptation",
			Dimension: "system_adaptation",
			Question:  "How do your autonomous systems adapt and improve?",
			Options: []StageOption{
				{"E", "They don't — I manually update them when things break."},
				{"P", "I review and update configurations periodically."},
				{"I", "Systems have feedback loops that surface improvement opportunities."},
				{"A", "Self-improving systems with documented evolution patterns."},
				{"S", "I govern system evolution across the organization."},
			},
		},
		{
			ID:        "epias_l5_accountability",
			Dimension: "organizational_accountability",
			Question:  "Who is accountable for autonomous AI decisions?",
			Options: []StageOption{
				{"E", "Unclear — accountability isn't well defined."},
				{"P", "I'm personally accountable for everything the system does."},
				{"I", "Clear RACI with documented decision authority."},
				{"A", "Accountability frameworks adopted by multiple teams."},
				{"S", "Enterprise accountability and compliance standards."},
			},
		},
	},
}

// SAEQuestions returns the automation-level identification questionnaire.
func SAEQuestions() []LevelQuestion {
	return saeQuestions
}

// EPIASQuestions returns the maturity questionnaire for one automation level.
// Unknown levels fall back to the level-1 set.
func EPIASQuestions(level int) []StageQuestion {
	if qs, ok := epiasQuestions[level]; ok {
		return qs
	}
	return epiasQuestions[1]
}
