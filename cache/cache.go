package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultTTL applies to Set.
const DefaultTTL = time.Hour

// Cache is a named, cost-bounded cache keyed by string.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
}

// New creates a cache bounded to 64MB of cost as computed by costFunc.
func New[T any](costFunc func(T) int64, name string) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e5,     // keys to track frequency of
		MaxCost:     1 << 26, // 64MB
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,
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

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value for DefaultTTL.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.SetWithTTL(key, value, cost, DefaultTTL)
}

// SetWithTTL stores a value in the cache with a specific TTL
func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes are applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Stats is a snapshot of cache metrics.
type Stats struct {
	Name         string
	Hits         uint64
	Misses       uint64
	HitRate      float64 // percent
	KeysAdded    uint64
	KeysEvicted  uint64
	Items        int64
	CostAdded    uint64
	CostEvicted  uint64
	SetsDropped  uint64
	SetsRejected uint64
}

// MemoryKB returns the cost currently held, in kilobytes.
func (s Stats) MemoryKB() float64 {
	if s.CostEvicted > s.CostAdded {
		return 0
	}
	return float64(s.CostAdded-s.CostEvicted) / 1024
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
	}
	s.Items = int64(s.KeysAdded) - int64(s.KeysEvicted)

	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}
