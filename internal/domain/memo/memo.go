// Package memo provides a bounded memoization cache for computed
// aggregate views. The underlying table never changes after load, so
// entries need no invalidation beyond eviction: a hit is always as
// fresh as a recomputation.
package memo

import (
	"context"
	"sync"
	"sync/atomic"
)

// node is a single entry in the eviction list.
type node[V any] struct {
	key   string
	value V
	next  *node[V]
}

// Cache memoizes values by canonical key with LIFO eviction once the
// bound is reached. maxSize <= 0 disables the bound.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]*node[V]
	head    *node[V]
	maxSize int
	size    atomic.Int64
	hits    atomic.Int64
	misses  atomic.Int64
}

// New creates a cache with configuration options.
func New[V any](opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		maxSize: 1024,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.entries = make(map[string]*node[V])
	return c
}

// Get returns the memoized value for key, if present. The value is
// copied while the lock is held: put may overwrite a node's value when
// concurrent misses race on one key.
func (c *Cache[V]) Get(ctx context.Context, key string) (V, bool) {
	c.mu.RLock()
	n, ok := c.entries[key]
	var v V
	if ok {
		v = n.value
	}
	c.mu.RUnlock()
	if !ok {
		c.misses.Add(1)
		return v, false
	}
	c.hits.Add(1)
	return v, true
}

// GetOrCompute returns the memoized value for key, computing and
// recording it on a miss. Concurrent misses may compute more than once;
// the computation is pure, so the duplicates agree and the last write
// wins harmlessly.
func (c *Cache[V]) GetOrCompute(ctx context.Context, key string, compute func() V) V {
	if v, ok := c.Get(ctx, key); ok {
		return v
	}
	v := compute()
	c.put(key, v)
	return v
}

func (c *Cache[V]) put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, exists := c.entries[key]; exists {
		n.value = value
		return
	}

	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evict()
	}

	n := &node[V]{key: key, value: value, next: c.head}
	c.head = n
	c.entries[key] = n
	c.size.Add(1)
}

// evict removes the most recently added entry (LIFO). Callers hold the
// write lock.
func (c *Cache[V]) evict() {
	if c.head == nil {
		return
	}
	victim := c.head
	c.head = victim.next
	delete(c.entries, victim.key)
	c.size.Add(-1)
}

// Size returns the current entry count.
func (c *Cache[V]) Size() int64 {
	return c.size.Load()
}

// Hits returns how many lookups were served from the cache.
func (c *Cache[V]) Hits() int64 {
	return c.hits.Load()
}

// Misses returns how many lookups required a computation.
func (c *Cache[V]) Misses() int64 {
	return c.misses.Load()
}
