package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breezy.app/pkg/errors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1714564800, 0)}
}

func newMemoryCacheWithClock(c *fakeClock) *MemoryCacheProvider {
	provider := NewMemoryCacheProvider()
	provider.now = c.Now
	return provider
}

func TestMemoryCacheProvider_Operations(t *testing.T) {
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		provider := NewMemoryCacheProvider()
		require.NoError(t, provider.Set(ctx, "key", []byte("value"), time.Minute))

		value, err := provider.Get(ctx, "key")

		require.NoError(t, err)
		assert.Equal(t, []byte("value"), value)
	})

	t.Run("StoredValueIsCopied", func(t *testing.T) {
		provider := NewMemoryCacheProvider()
		original := []byte("value")
		require.NoError(t, provider.Set(ctx, "key", original, time.Minute))
		original[0] = 'X'

		value, err := provider.Get(ctx, "key")
		require.NoError(t, err)
		value[1] = 'Y'

		again, err := provider.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), again)
	})

	t.Run("Miss", func(t *testing.T) {
		provider := NewMemoryCacheProvider()

		value, err := provider.Get(ctx, "missing")

		assert.Nil(t, value)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		provider := NewMemoryCacheProvider()
		require.NoError(t, provider.Set(ctx, "key", []byte("value"), time.Minute))

		exists, err := provider.Exists(ctx, "key")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, provider.Delete(ctx, "key"))

		exists, err = provider.Exists(ctx, "key")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Clear", func(t *testing.T) {
		provider := NewMemoryCacheProvider()
		require.NoError(t, provider.Set(ctx, "a", []byte("1"), time.Minute))
		require.NoError(t, provider.Set(ctx, "b", []byte("2"), time.Minute))

		require.NoError(t, provider.Clear(ctx))

		assert.Equal(t, 0, provider.Len())
	})
}

func TestMemoryCacheProvider_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	provider := newMemoryCacheWithClock(clock)

	require.NoError(t, provider.Set(ctx, "key", []byte("value"), time.Minute))

	clock.Advance(59 * time.Second)
	_, err := provider.Get(ctx, "key")
	require.NoError(t, err)

	clock.Advance(time.Second)
	exists, err := provider.Exists(ctx, "key")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = provider.Get(ctx, "key")
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, 0, provider.Len(), "expired entry is evicted on read")
}

func TestMemoryCacheProvider_ExpiredEntryRewrittenIsKept(t *testing.T) {
	clock := newFakeClock()
	provider := newMemoryCacheWithClock(clock)
	ctx := context.Background()

	require.NoError(t, provider.Set(ctx, "key", []byte("old"), time.Second))
	clock.Advance(time.Second)
	stale := provider.entries["key"]

	require.NoError(t, provider.Set(ctx, "key", []byte("new"), time.Minute))
	provider.evict("key", stale)

	value, err := provider.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}

func TestMemoryCacheProvider_ValidationErrors(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	tests := []struct {
		name      string
		operation func() error
	}{
		{name: "GetEmptyKey", operation: func() error { _, err := provider.Get(ctx, ""); return err }},
		{name: "SetEmptyKey", operation: func() error { return provider.Set(ctx, "", []byte("v"), time.Minute) }},
		{name: "SetNilValue", operation: func() error { return provider.Set(ctx, "key", nil, time.Minute) }},
		{name: "SetZeroTTL", operation: func() error { return provider.Set(ctx, "key", []byte("v"), 0) }},
		{name: "DeleteEmptyKey", operation: func() error { return provider.Delete(ctx, "") }},
		{name: "ExistsEmptyKey", operation: func() error { _, err := provider.Exists(ctx, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(tt.operation()))
		})
	}
}

func TestMemoryCacheProvider_Stats(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	stats := provider.GetStats()
	assert.Equal(t, int64(0), stats.TotalOps)
	assert.Equal(t, float64(0), stats.HitRatio)

	require.NoError(t, provider.Set(ctx, "key", []byte("value"), time.Minute))
	_, _ = provider.Get(ctx, "key")
	_, _ = provider.Get(ctx, "missing")
	_, _ = provider.Get(ctx, "key")

	stats = provider.GetStats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(3), stats.TotalOps)
	assert.InDelta(t, 2.0/3.0, stats.HitRatio, 1e-9)
	assert.WithinDuration(t, time.Now(), stats.LastUpdated, time.Second)
}
