// Package usage tracks daily LLM token consumption against a budget. Counters
// live in Redis keyed by UTC date so multiple instances share one budget; an
// in-memory mirror keeps the tracker working when Redis is down or absent.
package usage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nratzan/dit-2026/internal/logger"
)

const keyTTL = 48 * time.Hour

// Stats is the public usage summary for one UTC day.
type Stats struct {
	Date       string `json:"date"`
	TokensUsed int64  `json:"tokens_used"`
	Requests   int64  `json:"requests"`
	Budget     int64  `json:"budget"`
	Remaining  int64  `json:"remaining"`
}

type dayCounters struct {
	tokens   int64
	requests int64
}

// Tracker accumulates token usage per UTC day. A nil Redis client degrades to
// in-memory-only counting.
type Tracker struct {
	rdb    *redis.Client
	budget int64

	mu  sync.Mutex
	mem map[string]*dayCounters
}

func NewTracker(rdb *redis.Client, dailyBudget int64) *Tracker {
	return &Tracker{
		rdb:    rdb,
		budget: dailyBudget,
		mem:    make(map[string]*dayCounters),
	}
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func tokensKey(date string) string   { return "usage:tokens:" + date }
func requestsKey(date string) string { return "usage:requests:" + date }

// Record adds one request's token total and returns the updated stats.
func (t *Tracker) Record(ctx context.Context, inputTokens, outputTokens int) Stats {
	total := int64(inputTokens + outputTokens)
	date := today()

	if t.rdb != nil {
		pipe := t.rdb.Pipeline()
		pipe.IncrBy(ctx, tokensKey(date), total)
		pipe.Incr(ctx, requestsKey(date))
		pipe.Expire(ctx, tokensKey(date), keyTTL)
		pipe.Expire(ctx, requestsKey(date), keyTTL)
		if _, err := pipe.Exec(ctx); err != nil {
			logger.Warn("usage tracker redis write failed", "error", err)
		}
	}

	// The in-memory mirror is always updated so reads work without Redis.
	t.mu.Lock()
	day, ok := t.mem[date]
	if !ok {
		day = &dayCounters{}
		t.mem[date] = day
	}
	day.tokens += total
	day.requests++
	t.mu.Unlock()

	return t.Stats(ctx)
}

// UnderBudget reports whether today's consumption is below the daily budget.
func (t *Tracker) UnderBudget(ctx context.Context) bool {
	return t.Stats(ctx).TokensUsed < t.budget
}

// Stats returns today's usage summary, preferring Redis when reachable.
func (t *Tracker) Stats(ctx context.Context) Stats {
	date := today()

	if t.rdb != nil {
		tokens, err1 := t.rdb.Get(ctx, tokensKey(date)).Int64()
		requests, err2 := t.rdb.Get(ctx, requestsKey(date)).Int64()
		if (err1 == nil || err1 == redis.Nil) && (err2 == nil || err2 == redis.Nil) {
			return t.summarize(date, tokens, requests)
		}
		logger.Warn("usage tracker redis read failed", "error", fmt.Errorf("tokens: %v, requests: %v", err1, err2))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	var tokens, requests int64
	if day, ok := t.mem[date]; ok {
		tokens = day.tokens
		requests = day.requests
	}
	return t.summarize(date, tokens, requests)
}

func (t *Tracker) summarize(date string, tokens, requests int64) Stats {
	remaining := t.budget - tokens
	if remaining < 0 {
		remaining = 0
	}
	return Stats{
		Date:       date,
		TokensUsed: tokens,
		Requests:   requests,
		Budget:     t.budget,
		Remaining:  remaining,
	}
}
