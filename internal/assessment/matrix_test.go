package assessment

import (
	"fmt"
	"testing"
)

func TestMatrixCovers30Cells(t *testing.T) {
	if len(matrixData) != 30 {
		t.Fatalf("matrix has %d cells, want 30", len(matrixData))
	}
	if len(growthPaths) != 30 {
		t.Fatalf("growth paths cover %d cells, want 30", len(growthPaths))
	}
	for level := 0; level <= 5; level++ {
		for _, stage := range []string{"E", "P", "I", "A", "S"} {
			key := CellKey{level, stage}
			if matrixData[key] == "" {
				t.Errorf("cell (%d,%s) has no description", level, stage)
			}
			gp, ok := growthPaths[key]
			if !ok {
				t.Errorf("cell (%d,%s) has no growth path", level, stage)
				continue
			}
			if gp.Signal == "" || len(gp.Actions) == 0 {
				t.Errorf("cell (%d,%s) growth path incomplete", level, stage)
			}
		}
	}
}

func TestGrowthPathTerminalCell(t *testing.T) {
	for key, gp := range growthPaths {
		terminal := key.Level == 5 && key.Stage == "S"
		if terminal && gp.Next != nil {
			t.Errorf("terminal cell (5,S) has a next step: %+v", gp.Next)
		}
		if !terminal && gp.Next == nil {
			t.Errorf("cell (%d,%s) has no next step", key.Level, key.Stage)
		}
	}
}

func TestGrowthPathProgression(t *testing.T) {
	// Stage S advances to the next level's Explorer; every other stage
	// advances within its level.
	stageOrder := map[string]string{"E": "P", "P": "I", "I": "A", "A": "S"}
	for key, gp := range growthPaths {
		if gp.Next == nil {
			continue
		}
		if key.Stage == "S" {
			if gp.Next.SAELevel != key.Level+1 || gp.Next.EPIASStage != "E" {
				t.Errorf("cell (%d,S) next = (%d,%s), want (%d,E)",
					key.Level, gp.Next.SAELevel, gp.Next.EPIASStage, key.Level+1)
			}
			continue
		}
		if gp.Next.SAELevel != key.Level || gp.Next.EPIASStage != stageOrder[key.Stage] {
			t.Errorf("cell (%d,%s) next = (%d,%s), want (%d,%s)",
				key.Level, key.Stage, gp.Next.SAELevel, gp.Next.EPIASStage, key.Level, stageOrder[key.Stage])
		}
	}
}

func TestPlacementLookup(t *testing.T) {
	score := Score(map[string]any{
		"sae_tools":            1.0,
		"epias_l1_consistency": "S",
		"epias_l1_judgment":    "S",
		"epias_l1_prompts":     "S",
	})
	p := Placement(score)

	if p.SAELevel != 1 || p.EPIASStage != "S" {
		t.Fatalf("placement = L%d/%s, want L1/S", p.SAELevel, p.EPIASStage)
	}
	if p.CellDescription != matrixData[CellKey{1, "S"}] {
		t.Errorf("cell description mismatch")
	}
	if p.GrowthPath.Next == nil || p.GrowthPath.Next.SAELevel != 2 || p.GrowthPath.Next.EPIASStage != "E" {
		t.Errorf("growth path next = %+v, want (2,E)", p.GrowthPath.Next)
	}
	if p.KeyInsight != KeyInsight {
		t.Errorf("key insight missing from placement")
	}
}

func TestFullMatrixShape(t *testing.T) {
	m := FullMatrix()
	if len(m.Cells) != 30 {
		t.Fatalf("full matrix has %d cells, want 30", len(m.Cells))
	}
	if len(m.Levels) != 6 || len(m.Stages) != 5 {
		t.Errorf("axes = %d levels, %d stages", len(m.Levels), len(m.Stages))
	}
	for level := 0; level <= 5; level++ {
		for _, stage := range m.Stages {
			key := fmt.Sprintf("%d_%s", level, stage)
			if m.Cells[key] == "" {
				t.Errorf("cell %s missing from full matrix", key)
			}
		}
	}
	if m.StageNames["S"] != "Steward" {
		t.Errorf("stage names = %v", m.StageNames)
	}
}
