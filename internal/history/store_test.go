package history

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mvp_launchpad/internal/storage"
	"mvp_launchpad/internal/types"
)

type failingStore struct {
	*storage.MemoryStore
	failSet, failRemove bool
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errors.New("quota exceeded")
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *failingStore) Remove(ctx context.Context, key string) error {
	if f.failRemove {
		return errors.New("storage disabled")
	}
	return f.MemoryStore.Remove(ctx, key)
}

func samplePlan(name string) types.MVPPlan {
	return types.MVPPlan{
		ProjectName:  name,
		Summary:      "summary of " + name,
		CoreFeatures: []string{"one", "two", "three"},
		TechStack:    types.TechStack{Frontend: "Svelte", Backend: "Go", Database: "SQLite"},
	}
}

func sampleContent() types.LandingPageContent {
	return types.LandingPageContent{
		Headline: "Ship it", Subheading: "Now", CTAButton: "Start",
		Features: []types.LandingPageFeature{{Title: "Fast", Description: "Very", Icon: types.IconZap}},
	}
}

func TestStore_AddPrepends(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	start := time.Now().UTC().Truncate(time.Millisecond)
	s := NewStore(ctx, kv)

	first := s.Add(ctx, samplePlan("First"), sampleContent())
	second := s.Add(ctx, samplePlan("Second"), sampleContent())

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	created, err := time.Parse(time.RFC3339Nano, second.CreatedAt)
	require.NoError(t, err)
	assert.False(t, created.Before(start))

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, second, latest)

	got, ok := s.Get(first.ID)
	require.True(t, ok)
	assert.Equal(t, "First", got.MVPPlan.ProjectName)

	_, ok = s.Get("nope")
	assert.False(t, ok)
}

func TestStore_PersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := NewStore(ctx, kv)
	s.Add(ctx, samplePlan("A"), sampleContent())
	s.Add(ctx, samplePlan("B"), sampleContent())

	reloaded := NewStore(ctx, kv)
	assert.Equal(t, s.Entries(), reloaded.Entries())

	raw, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	var decoded []types.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, s.Entries(), decoded)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := NewStore(ctx, kv)
	s.Add(ctx, samplePlan("A"), sampleContent())

	s.Clear(ctx)
	assert.Empty(t, s.Entries())
	_, ok := s.Latest()
	assert.False(t, ok)

	_, err := kv.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_MalformedOnLoad(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, StorageKey, `[{"id": "x",`))

	s := NewStore(ctx, kv)
	assert.Empty(t, s.Entries())

	_, err := kv.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_WriteFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	kv := &failingStore{MemoryStore: storage.NewMemoryStore(), failSet: true}
	s := NewStore(ctx, kv)

	entry := s.Add(ctx, samplePlan("A"), sampleContent())
	require.Len(t, s.Entries(), 1)
	assert.Equal(t, entry.ID, s.Entries()[0].ID)

	_, err := kv.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound, "persisted state is allowed to lag")
}

func TestStore_ClearFailureStillClearsMemory(t *testing.T) {
	ctx := context.Background()
	kv := &failingStore{MemoryStore: storage.NewMemoryStore()}
	s := NewStore(ctx, kv)
	s.Add(ctx, samplePlan("A"), sampleContent())

	kv.failRemove = true
	s.Clear(ctx)
	assert.Empty(t, s.Entries())
}

func TestStore_UsesClock(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	s := NewStore(ctx, storage.NewMemoryStore()).WithClock(func() time.Time { return fixed })

	entry := s.Add(ctx, samplePlan("A"), sampleContent())
	assert.Equal(t, "2026-10-18T09:00:00.000Z", entry.CreatedAt)
}
