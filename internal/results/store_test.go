package results

import (
	"context"
	"testing"
)

func TestNilStoreIsDisabled(t *testing.T) {
	var s *Store = NewStore(nil, "dit")
	if s != nil {
		t.Fatalf("NewStore(nil, ...) = %v, want nil", s)
	}

	if err := s.IncrementCell(context.Background(), 2, "P"); err != nil {
		t.Fatalf("IncrementCell on nil store: %v", err)
	}

	hm, err := s.HeatmapData(context.Background())
	if err != nil {
		t.Fatalf("HeatmapData on nil store: %v", err)
	}
	if hm.Enabled {
		t.Error("nil store heatmap should report enabled=false")
	}
	if hm.Total != 0 {
		t.Errorf("nil store total = %d, want 0", hm.Total)
	}
	if len(hm.Counts) != 30 {
		t.Fatalf("heatmap grid has %d cells, want 30", len(hm.Counts))
	}
	for key, n := range hm.Counts {
		if n != 0 {
			t.Errorf("cell %s = %d, want 0", key, n)
		}
	}
	if hm.UpdatedAt == "" {
		t.Error("updated_at should be set even without a store")
	}
}
