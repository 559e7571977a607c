package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most capacity entries.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*entry[K, V]
	order    lruList[K]
	capacity int
	hits     uint64
	misses   uint64
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a cache holding at most capacity entries. A capacity of zero
// or less means unlimited.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]*entry[K, V]),
		capacity: capacity,
	}
}

// Get returns the value stored under key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.MoveToFront(e.node)
	return e.value, true
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.MoveToFront(e.node)
		return
	}
	if c.capacity > 0 && len(c.entries) >= c.capacity {
		if oldest, ok := c.order.RemoveOldest(); ok {
			delete(c.entries, oldest)
		}
	}
	c.entries[key] = &entry[K, V]{value: value, node: c.order.PushFront(key)}
}

// GetOrCreate returns the cached value for key, calling create and storing
// its result on a miss. Concurrent misses on one key may each call create;
// the last result stored wins.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := create()
	c.Set(key, v)
	return v
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries and resets the statistics.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*entry[K, V])
	c.order.Clear()
	c.hits, c.misses = 0, 0
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Len:      len(c.entries),
		Capacity: c.capacity,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}

// Stats contains cache statistics.
type Stats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
