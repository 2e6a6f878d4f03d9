// Package usage enforces the per-day cap on generation cycles.
package usage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"mvp_launchpad/internal/storage"
	"mvp_launchpad/internal/types"
	"mvp_launchpad/internal/utils"
)

const (
	// StorageKey holds the serialized UsageRecord.
	StorageKey = "mvp-generator-usage"

	// DefaultLimit is the number of generations allowed per calendar day.
	DefaultLimit = 5
)

// Tracker counts generations per local calendar day. The persisted record is
// the source of truth; count is only a cache used when the store cannot be read.
type Tracker struct {
	store storage.Store
	limit int
	now   func() time.Time

	mu    sync.Mutex
	count int
}

// NewTracker returns a Tracker over store. A limit <= 0 uses DefaultLimit.
func NewTracker(store storage.Store, limit int) *Tracker {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Tracker{store: store, limit: limit, now: time.Now}
}

// WithClock replaces the clock used to decide what "today" is.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

func (t *Tracker) Limit() int { return t.limit }

func (t *Tracker) today() string {
	return utils.DayStamp(t.now())
}

// Count returns today's generation count. Stale or malformed records are
// purged and read as zero.
func (t *Tracker) Count(ctx context.Context) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.readLocked(ctx)
}

func (t *Tracker) readLocked(ctx context.Context) int {
	raw, err := t.store.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		t.count = 0
		return 0
	}
	if err != nil {
		log.Printf("WARN: Failed to read usage from store, using cached count %d: %v", t.count, err)
		return t.count
	}

	var rec types.UsageRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.Count < 0 || rec.Date == "" {
		log.Printf("WARN: Discarding malformed usage record %q: %v", raw, err)
		t.purgeLocked(ctx)
		return 0
	}

	if rec.Date != t.today() {
		t.purgeLocked(ctx)
		return 0
	}

	t.count = rec.Count
	return rec.Count
}

func (t *Tracker) purgeLocked(ctx context.Context) {
	t.count = 0
	if err := t.store.Remove(ctx, StorageKey); err != nil {
		log.Printf("ERROR: Failed to remove usage record: %v", err)
	}
}

// IsLimitReached reports whether today's count has hit the limit.
func (t *Tracker) IsLimitReached(ctx context.Context) bool {
	return t.Count(ctx) >= t.limit
}

// Increment records one more generation for today and returns the new count.
// A failed write is logged; the cached count still advances.
func (t *Tracker) Increment(ctx context.Context) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	newCount := t.readLocked(ctx) + 1
	data, err := json.Marshal(types.UsageRecord{Count: newCount, Date: t.today()})
	if err != nil {
		log.Printf("ERROR: Failed to encode usage record: %v", err)
	} else if err := t.store.Set(ctx, StorageKey, string(data)); err != nil {
		log.Printf("ERROR: Failed to write usage to store: %v", err)
	}
	t.count = newCount
	return newCount
}

// Reset drops today's record, as if the user cleared local storage.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count = 0
	return t.store.Remove(ctx, StorageKey)
}
