// SPDX-License-Identifier: MIT

// Package canonical implements a keyed insert-if-absent cache used to give
// algebraic parents (rings, groups) a unique representation: for a given
// normalized key, at most one instance exists process-wide, and repeated
// construction with equal parameters returns the identical value.
//
// The cache is safe for concurrent use. The builder runs under the cache
// lock, so builders must not re-enter the same cache with the same key.
package canonical

import "sync"

// Cache maps normalized construction keys to previously built values.
// The zero value is not usable; create instances via New.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]V
}

// New returns an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{entries: make(map[string]V)}
}

// GetOrCreate returns the value stored under key, building and storing it
// via build on first request. Concurrent callers with the same key observe
// the same instance. If build fails, nothing is stored and the error is
// returned to the caller; a later call may retry.
func (c *Cache[V]) GetOrCreate(key string, build func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[key]; ok {
		return v, nil
	}
	v, err := build()
	if err != nil {
		var zero V

		return zero, err
	}
	c.entries[key] = v

	return v, nil
}

// Get returns the value stored under key, if any.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]

	return v, ok
}
