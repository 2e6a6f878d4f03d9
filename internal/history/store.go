// Package history keeps the ordered list of completed generations.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"mvp_launchpad/internal/storage"
	"mvp_launchpad/internal/types"
	"mvp_launchpad/internal/utils"
)

// StorageKey holds the serialized history list.
const StorageKey = "mvp-generator-history"

// Store owns the history list, most recent first. The in-memory list is
// authoritative for the process; persistence is best effort and may lag
// behind after a failed write.
type Store struct {
	kv  storage.Store
	now func() time.Time

	mu      sync.RWMutex
	entries []types.HistoryEntry
}

// NewStore loads the persisted history from kv. A malformed list is logged,
// purged and replaced by an empty one.
func NewStore(ctx context.Context, kv storage.Store) *Store {
	s := &Store{kv: kv, now: time.Now}
	s.load(ctx)
	return s
}

// WithClock replaces the clock used to stamp new entries.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		log.Printf("ERROR: Failed to load history from store: %v", err)
		return
	}

	var entries []types.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("ERROR: Failed to parse stored history, discarding it: %v", err)
		if err := s.kv.Remove(ctx, StorageKey); err != nil {
			log.Printf("ERROR: Failed to remove malformed history: %v", err)
		}
		return
	}
	s.entries = entries
}

// Add prepends a new entry for plan and content and persists the full list.
func (s *Store) Add(ctx context.Context, plan types.MVPPlan, content types.LandingPageContent) types.HistoryEntry {
	entry := types.HistoryEntry{
		ID:                 uuid.New().String(),
		MVPPlan:            plan,
		LandingPageContent: content,
		CreatedAt:          utils.Timestamp(s.now()),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]types.HistoryEntry, 0, len(s.entries)+1)
	updated = append(updated, entry)
	updated = append(updated, s.entries...)
	s.entries = updated

	data, err := json.Marshal(updated)
	if err != nil {
		log.Printf("ERROR: Failed to encode history: %v", err)
		return entry
	}
	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		log.Printf("ERROR: Failed to save history to store: %v", err)
	}
	return entry
}

// Clear drops every entry and the persisted list.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	if err := s.kv.Remove(ctx, StorageKey); err != nil {
		log.Printf("ERROR: Failed to clear history from store: %v", err)
	}
}

// Entries returns a copy of the list, most recent first.
func (s *Store) Entries() []types.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Latest() (types.HistoryEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return types.HistoryEntry{}, false
	}
	return s.entries[0], true
}

func (s *Store) Get(id string) (types.HistoryEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return types.HistoryEntry{}, false
}
