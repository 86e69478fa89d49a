package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nratzan/dit-2026/internal/search"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Engine with no corpus: searches return empty, which the assessment
	// endpoints must tolerate.
	engine, err := search.New(search.Options{
		EmbeddingsDir: filepath.Join(t.TempDir(), "none"),
		SourceDir:     filepath.Join(t.TempDir(), "none"),
	})
	if err != nil {
		t.Fatalf("search.New: %v", err)
	}

	router := gin.New()
	SetupAssessmentRoutes(router, engine, nil, nil)
	return router
}

func TestGetLevelQuestions(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/assess/questions", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Questions []struct {
			ID      string `json:"id"`
			Options []any  `json:"options"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Questions) != 6 {
		t.Errorf("got %d questions, want 6", len(body.Questions))
	}
}

func TestGetStageQuestionsByLevel(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/assess/questions/epias?level=3", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Level     int `json:"level"`
		Questions []struct {
			ID string `json:"id"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Level != 3 || len(body.Questions) != 5 {
		t.Errorf("level = %d with %d questions", body.Level, len(body.Questions))
	}
	if body.Questions[0].ID != "epias_l3_reliability" {
		t.Errorf("first question = %s", body.Questions[0].ID)
	}
}

func TestGetStageQuestionsBadLevel(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/assess/questions/epias?level=abc", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSubmitAssessment(t *testing.T) {
	router := newTestRouter(t)

	payload, _ := json.Marshal(map[string]any{
		"answers": map[string]any{
			"sae_tools":            1,
			"sae_qa":               1,
			"sae_laptop":           1,
			"epias_l1_consistency": "P",
			"epias_l1_judgment":    "P",
			"epias_l1_prompts":     "I",
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assess", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		SAELevel        int    `json:"sae_level"`
		EPIASStage      string `json:"epias_stage"`
		CellDescription string `json:"cell_description"`
		KeyInsight      string `json:"key_insight"`
		GrowthPath      struct {
			Next *struct {
				SAELevel int `json:"sae_level"`
			} `json:"next"`
		} `json:"growth_path"`
		GrowthChunks []any `json:"growth_chunks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.SAELevel != 1 || body.EPIASStage != "P" {
		t.Errorf("placement = L%d/%s, want L1/P", body.SAELevel, body.EPIASStage)
	}
	if body.CellDescription == "" || body.KeyInsight == "" {
		t.Error("placement missing cell description or key insight")
	}
	if body.GrowthPath.Next == nil {
		t.Error("growth path next missing")
	}
	if body.GrowthChunks == nil {
		t.Error("growth_chunks should be an empty array, not null")
	}
}

func TestSubmitAssessmentBadPayload(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assess", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
