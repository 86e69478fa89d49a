package assessment

import "testing"

func TestScoreMedianLevel(t *testing.T) {
	// Even count takes the lower middle: sorted [0 1 2 3] -> 2.
	answers := map[string]any{
		"sae_tools":     0.0,
		"sae_qa":        1.0,
		"sae_laptop":    2.0,
		"sae_prompting": 3.0,
	}
	got := Score(answers)
	if got.SAELevel != 2 {
		t.Errorf("level = %d, want 2", got.SAELevel)
	}
	if got.SAEName != "Partially Automated" {
		t.Errorf("level name = %q", got.SAEName)
	}
}

func TestScoreDefaults(t *testing.T) {
	got := Score(map[string]any{})
	if got.SAELevel != 1 {
		t.Errorf("default level = %d, want 1", got.SAELevel)
	}
	if got.EPIASStage != "E" || got.EPIASName != "Explorer" {
		t.Errorf("default stage = %s (%s), want E (Explorer)", got.EPIASStage, got.EPIASName)
	}
}

func TestScoreStageMedianWithinLevel(t *testing.T) {
	// Level answers put the respondent at level 1; only level-1 stage
	// questions count toward the stage median.
	answers := map[string]any{
		"sae_tools":  1.0,
		"sae_qa":     1.0,
		"sae_laptop": 1.0,

		"epias_l1_consistency": "P",
		"epias_l1_judgment":    "I",
		"epias_l1_prompts":     "A",

		// Answers for another level's questions are ignored.
		"epias_l3_reliability": "S",
	}
	got := Score(answers)
	if got.SAELevel != 1 {
		t.Fatalf("level = %d, want 1", got.SAELevel)
	}
	if got.EPIASStage != "I" {
		t.Errorf("stage = %s, want I (median of P I A)", got.EPIASStage)
	}
}

func TestScoreStageDependsOnComputedLevel(t *testing.T) {
	// Same stage answers, different level answers: the level-2 stage answers
	// only count when the computed level is 2.
	stageAnswers := map[string]any{
		"epias_l2_specs":       "A",
		"epias_l2_integration": "A",
		"epias_l2_chunking":    "A",
	}

	atLevel2 := map[string]any{"sae_tools": 2.0}
	for k, v := range stageAnswers {
		atLevel2[k] = v
	}
	got := Score(atLevel2)
	if got.SAELevel != 2 || got.EPIASStage != "A" {
		t.Errorf("level 2 score = L%d/%s, want L2/A", got.SAELevel, got.EPIASStage)
	}

	atLevel4 := map[string]any{"sae_tools": 4.0}
	for k, v := range stageAnswers {
		atLevel4[k] = v
	}
	got = Score(atLevel4)
	if got.SAELevel != 4 || got.EPIASStage != "E" {
		t.Errorf("level 4 score = L%d/%s, want L4/E (l2 answers ignored)", got.SAELevel, got.EPIASStage)
	}
}

func TestScoreIgnoresInvalidValues(t *testing.T) {
	answers := map[string]any{
		"sae_tools":            "not a number",
		"sae_qa":               3.0,
		"epias_l3_reliability": "X", // not a stage letter
		"epias_l3_context":     "P",
	}
	got := Score(answers)
	if got.SAELevel != 3 {
		t.Errorf("level = %d, want 3", got.SAELevel)
	}
	if got.EPIASStage != "P" {
		t.Errorf("stage = %s, want P", got.EPIASStage)
	}
}

func TestScoreAcceptsIntAnswers(t *testing.T) {
	got := Score(map[string]any{"sae_tools": 5})
	if got.SAELevel != 5 {
		t.Errorf("level = %d, want 5", got.SAELevel)
	}
	if got.SAEName != "Full Automation" {
		t.Errorf("name = %q", got.SAEName)
	}
}

func TestEPIASQuestionsFallback(t *testing.T) {
	for level := 0; level <= 5; level++ {
		if got := len(EPIASQuestions(level)); got != 5 {
			t.Errorf("level %d has %d questions, want 5", level, got)
		}
	}
	// Unknown levels fall back to the level-1 set.
	fallback := EPIASQuestions(42)
	if len(fallback) != 5 || fallback[0].ID != "epias_l1_consistency" {
		t.Errorf("fallback questions = %v", fallback)
	}
}

func TestSAEQuestionsShape(t *testing.T) {
	qs := SAEQuestions()
	if len(qs) != 6 {
		t.Fatalf("got %d level questions, want 6", len(qs))
	}
	for _, q := range qs {
		if len(q.Options) != 6 {
			t.Errorf("question %s has %d options, want 6", q.ID, len(q.Options))
		}
		for i, opt := range q.Options {
			if opt.Level != i {
				t.Errorf("question %s option %d has level %d", q.ID, i, opt.Level)
			}
		}
	}
}
