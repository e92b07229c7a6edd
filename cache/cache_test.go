package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStringCache(t testing.TB, name string) *Cache[string] {
	c, err := New[string](name, 1<<20, func(value string) int64 {
		return int64(len(value))
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestNewCache(t *testing.T) {
	cache := newStringCache(t, "Test Cache")
	assert.Equal(t, "Test Cache", cache.Name())

	cache.Set("test-key", "test string")
	cache.Wait()

	value, found := cache.Get("test-key")
	require.True(t, found, "Expected to find cached value")
	assert.Equal(t, "test string", value)
}

func TestNewCacheWithSlice(t *testing.T) {
	cache, err := New[[]string]("Test Slice Cache", 1<<20, func(value []string) int64 {
		return int64(len(value) * 30)
	})
	require.NoError(t, err)
	defer cache.Close()

	testValue := []string{"Honda", "Toyota"}
	cache.Set("makes", testValue)
	cache.Wait()

	value, found := cache.Get("makes")
	require.True(t, found)
	assert.Equal(t, testValue, value)
}

func TestCacheClear(t *testing.T) {
	cache := newStringCache(t, "Clear Cache")

	cache.Set("key1", "value")
	cache.Wait()
	_, found := cache.Get("key1")
	require.True(t, found)

	cache.Clear()
	_, found = cache.Get("key1")
	assert.False(t, found)
}

func TestCacheStats(t *testing.T) {
	cache := newStringCache(t, "Test Cache")

	cache.Set("key1", "test string")
	cache.Set("key2", "test string")
	cache.Wait()

	cache.Get("key1") // Hit
	cache.Get("key2") // Hit
	cache.Get("key3") // Miss

	stats := cache.Stats()

	assert.Equal(t, "Test Cache", stats.Name)
	assert.Equal(t, uint64(2), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(3), stats.TotalRequests)
	assert.InDelta(t, 66.66, stats.HitRate, 0.1)
	assert.Equal(t, uint64(2), stats.KeysAdded)
	assert.Equal(t, int64(2), stats.CurrentItems)
	assert.Greater(t, stats.MemoryUsedKB, 0.0)
}

func TestCacheStatsEmptyCache(t *testing.T) {
	cache := newStringCache(t, "Empty Cache")

	stats := cache.Stats()

	assert.Equal(t, "Empty Cache", stats.Name)
	assert.Equal(t, uint64(0), stats.Hits)
	assert.Equal(t, uint64(0), stats.Misses)
	assert.Equal(t, uint64(0), stats.TotalRequests)
	assert.Equal(t, 0.0, stats.HitRate)
	assert.Equal(t, int64(0), stats.CurrentItems)
}

func BenchmarkCacheGet(b *testing.B) {
	cache := newStringCache(b, "Benchmark Cache")
	for i := 0; i < 100; i++ {
		cache.Set(fmt.Sprintf("key%d", i), "test string")
	}
	cache.Wait()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Get(fmt.Sprintf("key%d", i%100))
	}
}
