package assessment

import "sort"

var stageToNum = map[string]int{"E": 1, "P": 2, "I": 3, "A": 4, "S": 5}
var numToStage = map[int]string{1: "E", 2: "P", 3: "I", 4: "A", 5: "S"}

// StageNames maps stage letters to their display names.
var StageNames = map[string]string{
	"E": "Explorer",
	"P": "Practitioner",
	"I": "Integrator",
	"A": "Architect",
	"S": "Steward",
}

// LevelNames maps SAE automation levels to their display names.
var LevelNames = map[int]string{
	0: "Manual",
	1: "AI-Assisted",
	2: "Partially Automated",
	3: "Guided Automation",
	4: "Mostly Automated",
	5: "Full Automation",
}

// LevelEmojis maps SAE automation levels to their display emoji.
var LevelEmojis = map[int]string{
	0: "🚗💨",
	1: "🚗➕",
	2: "🚗🧠",
	3: "🚗😴",
	4: "🚕🤖",
	5: "🚗✨",
}

// ScoreResult is the computed placement plus the raw answer distributions
// that produced it.
type ScoreResult struct {
	SAELevel          int            `json:"sae_level"`
	SAEName           string         `json:"sae_name"`
	SAEEmoji          string         `json:"sae_emoji"`
	EPIASStage        string         `json:"epias_stage"`
	EPIASName         string         `json:"epias_name"`
	SAEDistribution   map[string]any `json:"sae_distribution"`
	EPIASDistribution map[string]any `json:"epias_distribution"`
}

// Score turns raw questionnaire answers into a matrix placement. Level answers
// are numbers keyed by question id; stage answers are single letters. Missing
// answers are skipped; an empty set defaults to level 1 / Explorer. Both axes
// take the median (lower middle for even counts) of the selected values, and
// the stage median only considers questions belonging to the computed level.
func Score(answers map[string]any) ScoreResult {
	var levelVals []int
	for _, q := range saeQuestions {
		if v, ok := answers[q.ID]; ok {
			if n, ok := toInt(v); ok {
				levelVals = append(levelVals, n)
			}
		}
	}

	level := 1
	if len(levelVals) > 0 {
		sort.Ints(levelVals)
		level = levelVals[len(levelVals)/2]
	}
	if level < 0 {
		level = 0
	}
	if level > 5 {
		level = 5
	}

	levelQuestions := epiasQuestions[level]
	var stageVals []int
	for _, q := range levelQuestions {
		if v, ok := answers[q.ID]; ok {
			if s, ok := v.(string); ok {
				if n, ok := stageToNum[s]; ok {
					stageVals = append(stageVals, n)
				}
			}
		}
	}

	stageNum := 1
	if len(stageVals) > 0 {
		sort.Ints(stageVals)
		stageNum = stageVals[len(stageVals)/2]
	}
	stage := numToStage[stageNum]

	saeDist := make(map[string]any, len(saeQuestions))
	for _, q := range saeQuestions {
		saeDist[q.ID] = answers[q.ID]
	}
	epiasDist := make(map[string]any, len(levelQuestions))
	for _, q := range levelQuestions {
		epiasDist[q.ID] = answers[q.ID]
	}

	return ScoreResult{
		SAELevel:          level,
		SAEName:           LevelNames[level],
		SAEEmoji:          LevelEmojis[level],
		EPIASStage:        stage,
		EPIASName:         StageNames[stage],
		SAEDistribution:   saeDist,
		EPIASDistribution: epiasDist,
	}
}

// toInt accepts the numeric shapes JSON decoding produces.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
