// Package cache memoizes pure computations keyed by a comparable value.
package cache

import "sync"

// DefaultSize is the number of entries a Memo keeps when Size is zero.
const DefaultSize = 4096

// Memo is a bounded map from keys to computed values. When it grows past its
// size an arbitrary entry is evicted.
//
// The zero value is ready to use and safe for concurrent use. Values must be
// pure functions of their key, since a racing fill may compute them twice.
type Memo[K comparable, V any] struct {
	// Size bounds the number of cached entries. It must not be changed once
	// the Memo is in use.
	Size int

	mu sync.RWMutex
	m  map[K]V
}

// Get returns the value for k, calling fill to compute it on a miss.
func (c *Memo[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	if ok {
		return v
	}

	v = fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.m[k]; ok {
		return old
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	for victim := range c.m {
		if len(c.m) < c.limit() {
			break
		}
		delete(c.m, victim)
	}
	c.m[k] = v
	return v
}

// Len returns the number of cached entries.
func (c *Memo[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Flush drops every cached entry.
func (c *Memo[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}

func (c *Memo[K, V]) limit() int {
	if c.Size <= 0 {
		return DefaultSize
	}
	return c.Size
}
