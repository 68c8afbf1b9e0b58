// Package lfu implements a least-frequently-used cache on top of a min-first
// priority map: each entry's access count is its priority, so the eviction
// victim is always one of the entries with the lowest count, found in O(1).
package lfu

import (
	prioritymap "github.com/wilderfield/priority-map"
)

// Cache is a fixed-capacity key-value store that evicts a least-frequently
// used entry when full. Ties between equally cold entries are broken
// arbitrarily. Not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]V
	freq     *prioritymap.Map[K, int]
}

// New creates a cache holding at most capacity entries. A capacity of zero or
// less means unbounded.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]V),
		freq:     prioritymap.NewMin[K, int](),
	}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int { return len(c.items) }

// Get returns the value cached under key and bumps its access count.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.items[key]
	if ok {
		c.freq.Inc(key)
	}
	return v, ok
}

// Put caches value under key. An existing entry is overwritten and counts as
// an access; a new entry starts with a count of one, evicting one of the
// coldest entries first when the cache is full.
func (c *Cache[K, V]) Put(key K, value V) {
	if _, ok := c.items[key]; ok {
		c.items[key] = value
		c.freq.Inc(key)
		return
	}
	if c.capacity > 0 && len(c.items) >= c.capacity {
		victim, _, ok := c.freq.Pop()
		if ok {
			delete(c.items, victim)
		}
	}
	c.items[key] = value
	c.freq.Inc(key)
}

// Remove drops key from the cache and reports whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	if _, ok := c.items[key]; !ok {
		return false
	}
	delete(c.items, key)
	c.freq.Erase(key)
	return true
}

// Frequency returns key's current access count, zero when absent.
func (c *Cache[K, V]) Frequency(key K) int {
	n, _ := c.freq.Get(key)
	return n
}
