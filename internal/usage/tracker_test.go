package usage

import (
	"context"
	"sync"
	"testing"
)

func TestTrackerRecordAndStats(t *testing.T) {
	tr := NewTracker(nil, 1000)
	ctx := context.Background()

	stats := tr.Record(ctx, 100, 50)
	if stats.TokensUsed != 150 {
		t.Errorf("tokens used = %d, want 150", stats.TokensUsed)
	}
	if stats.Requests != 1 {
		t.Errorf("requests = %d, want 1", stats.Requests)
	}
	if stats.Remaining != 850 {
		t.Errorf("remaining = %d, want 850", stats.Remaining)
	}

	stats = tr.Record(ctx, 200, 100)
	if stats.TokensUsed != 450 || stats.Requests != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestTrackerBudgetGate(t *testing.T) {
	tr := NewTracker(nil, 300)
	ctx := context.Background()

	if !tr.UnderBudget(ctx) {
		t.Fatal("fresh tracker should be under budget")
	}
	tr.Record(ctx, 200, 99)
	if !tr.UnderBudget(ctx) {
		t.Fatal("299 of 300 should still be under budget")
	}
	tr.Record(ctx, 1, 0)
	if tr.UnderBudget(ctx) {
		t.Fatal("300 of 300 should be over budget")
	}
	if got := tr.Stats(ctx).Remaining; got != 0 {
		t.Errorf("remaining = %d, want 0", got)
	}
}

func TestTrackerRemainingNeverNegative(t *testing.T) {
	tr := NewTracker(nil, 100)
	ctx := context.Background()
	tr.Record(ctx, 500, 500)
	if got := tr.Stats(ctx).Remaining; got != 0 {
		t.Errorf("remaining = %d, want 0", got)
	}
}

func TestTrackerConcurrentRecord(t *testing.T) {
	tr := NewTracker(nil, 1_000_000)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				tr.Record(ctx, 1, 1)
			}
		}()
	}
	wg.Wait()

	stats := tr.Stats(ctx)
	if stats.TokensUsed != 2000 {
		t.Errorf("tokens used = %d, want 2000", stats.TokensUsed)
	}
	if stats.Requests != 1000 {
		t.Errorf("requests = %d, want 1000", stats.Requests)
	}
}
