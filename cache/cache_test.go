package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStringCache(t testing.TB, name string) *Cache[string] {
	c, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, name)
	require.NoError(t, err)
	return c
}

func TestNewCache(t *testing.T) {
	c := newStringCache(t, "Test Cache")
	assert.Equal(t, "Test Cache", c.Name())

	c.Set("test-key", "test string", 0)
	c.Wait()

	value, found := c.Get("test-key")
	require.True(t, found, "expected to find cached value")
	assert.Equal(t, "test string", value)
}

func TestCacheWithSliceValues(t *testing.T) {
	c, err := New[[]float64](func(value []float64) int64 {
		return int64(len(value) * 8)
	}, "Slice Cache")
	require.NoError(t, err)

	c.Set("k", []float64{1, 2, 3}, 0)
	c.Wait()

	value, found := c.Get("k")
	require.True(t, found)
	assert.Equal(t, []float64{1, 2, 3}, value)
}

func TestCacheTTLExpires(t *testing.T) {
	c := newStringCache(t, "TTL Cache")

	c.SetWithTTL("short", "v", 1, 20*time.Millisecond)
	c.Wait()
	_, found := c.Get("short")
	require.True(t, found)

	time.Sleep(50 * time.Millisecond)
	_, found = c.Get("short")
	assert.False(t, found)
}

func TestCacheClear(t *testing.T) {
	c := newStringCache(t, "Clear Cache")

	c.Set("a", "1", 1)
	c.Wait()
	c.Clear()

	_, found := c.Get("a")
	assert.False(t, found)
}

func TestCacheStats(t *testing.T) {
	c := newStringCache(t, "Stats Cache")

	c.Set("key1", "test string", 0)
	c.Set("key2", "test string", 0)
	c.Wait()

	c.Get("key1") // hit
	c.Get("key2") // hit
	c.Get("key3") // miss

	stats := c.Stats()

	assert.Equal(t, "Stats Cache", stats.Name)
	assert.Equal(t, uint64(2), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.InDelta(t, 66.67, stats.HitRate, 0.01)
	assert.Equal(t, int64(2), stats.Items)
	assert.Greater(t, stats.MemoryKB(), 0.0)
}

func TestCacheStatsEmptyCache(t *testing.T) {
	stats := newStringCache(t, "Empty Cache").Stats()

	assert.Equal(t, "Empty Cache", stats.Name)
	assert.Equal(t, uint64(0), stats.Hits)
	assert.Equal(t, uint64(0), stats.Misses)
	assert.Equal(t, 0.0, stats.HitRate)
	assert.Equal(t, int64(0), stats.Items)
	assert.Equal(t, 0.0, stats.MemoryKB())
}

func BenchmarkCacheGet(b *testing.B) {
	c := newStringCache(b, "Benchmark Cache")
	for i := 0; i < 100; i++ {
		c.Set(fmt.Sprintf("key%d", i), "test string", 0)
	}
	c.Wait()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(fmt.Sprintf("key%d", i%100))
	}
}
