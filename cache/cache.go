package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultTTL is applied by Set.
const DefaultTTL = time.Hour

// Cache is a named, cost-bounded cache keyed by string.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
}

// Stats is a snapshot of cache metrics for admin monitoring.
type Stats struct {
	Name          string  `json:"name"`
	Hits          uint64  `json:"hits"`
	Misses        uint64  `json:"misses"`
	TotalRequests uint64  `json:"total_requests"`
	HitRate       float64 `json:"hit_rate"`
	KeysAdded     uint64  `json:"keys_added"`
	KeysEvicted   uint64  `json:"keys_evicted"`
	CurrentItems  int64   `json:"current_items"`
	CostAdded     uint64  `json:"cost_added"`
	CostEvicted   uint64  `json:"cost_evicted"`
	SetsDropped   uint64  `json:"sets_dropped"`
	SetsRejected  uint64  `json:"sets_rejected"`
	GetsDropped   uint64  `json:"gets_dropped"`
	GetsKept      uint64  `json:"gets_kept"`
	MemoryUsedKB  float64 `json:"memory_used_kb"`
}

// New creates a cache named name. cost estimates the size of a value in bytes
// and maxCost bounds the total.
func New[T any](name string, maxCost int64, cost func(T) int64) (*Cache[T], error) {
	counters := maxCost / 10 // ~10x the expected number of items
	if counters < 1000 {
		counters = 1000
	}
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: counters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
		Cost:        cost,
	})
	if err != nil {
		return nil, err
	}
	return &Cache[T]{impl: impl, name: name}, nil
}

// Name returns the name the cache was created with.
func (c *Cache[T]) Name() string {
	return c.name
}

// Get retrieves a value from the cache.
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with DefaultTTL. Sets are applied asynchronously and may
// be dropped under contention.
func (c *Cache[T]) Set(key string, value T) bool {
	return c.SetWithTTL(key, value, DefaultTTL)
}

// SetWithTTL stores a value with the given TTL, sizing it with the cost func.
func (c *Cache[T]) SetWithTTL(key string, value T, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, 0, ttl)
}

// Clear removes all items.
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered sets have been applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Close stops the cache's background goroutines.
func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats returns the current metrics.
func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics
	s := Stats{
		Name:         c.name,
		Hits:         m.Hits(),
		Misses:       m.Misses(),
		KeysAdded:    m.KeysAdded(),
		KeysEvicted:  m.KeysEvicted(),
		CostAdded:    m.CostAdded(),
		CostEvicted:  m.CostEvicted(),
		SetsDropped:  m.SetsDropped(),
		SetsRejected: m.SetsRejected(),
		GetsDropped:  m.GetsDropped(),
		GetsKept:     m.GetsKept(),
	}
	s.TotalRequests = s.Hits + s.Misses
	if s.TotalRequests > 0 {
		s.HitRate = float64(s.Hits) / float64(s.TotalRequests) * 100
	}
	if s.KeysAdded > s.KeysEvicted {
		s.CurrentItems = int64(s.KeysAdded - s.KeysEvicted)
	}
	if s.CostAdded > s.CostEvicted {
		s.MemoryUsedKB = float64(s.CostAdded-s.CostEvicted) / 1024
	}
	return s
}
