package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestMemoryStore_TTLBoundary(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewMemoryStoreWithClock(clock.Now)
	ttl := 30 * time.Minute

	require.NoError(t, store.Set(ctx, "cities_india", []string{"Mumbai"}, ttl))

	clock.Advance(ttl)
	var got []string
	ok, err := store.Get(ctx, "cities_india", &got)
	require.NoError(t, err)
	assert.True(t, ok, "entry must still be served exactly at the TTL")
	assert.Equal(t, []string{"Mumbai"}, got)

	clock.Advance(time.Millisecond)
	ok, err = store.Get(ctx, "cities_india", &got)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len(), "expired entry is evicted on lookup")
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	original := []string{"a", "b"}
	require.NoError(t, store.Set(ctx, "k", original, time.Minute))
	original[0] = "mutated"

	var got []string
	ok, err := store.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "k", 1, time.Minute))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "missing"))

	var got int
	ok, err := store.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}
