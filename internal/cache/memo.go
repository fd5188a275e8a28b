// Package cache provides a small memoization table for remote-call results.
// Entries are append-only: once a key is computed it is never mutated or
// evicted, so repeated identical requests never hit the provider again.
package cache

import "sync"

// Memo caches successful computations by string key. Failed computations
// are not cached, so a transient provider error does not poison the key.
type Memo[V any] struct {
	mu      sync.Mutex
	entries map[string]V
}

// NewMemo creates an empty memoization table.
func NewMemo[V any]() *Memo[V] {
	return &Memo[V]{entries: make(map[string]V)}
}

// Do returns the cached value for key, or runs compute and stores its
// result. Only successful results are stored.
func (m *Memo[V]) Do(key string, compute func() (V, error)) (V, error) {
	m.mu.Lock()
	if v, ok := m.entries[key]; ok {
		m.mu.Unlock()
		return v, nil
	}
	m.mu.Unlock()

	v, err := compute()
	if err != nil {
		return v, err
	}

	m.mu.Lock()
	// Insert-if-absent: a concurrent computation for the same key may have
	// landed first; keep the existing value so callers see one result.
	if existing, ok := m.entries[key]; ok {
		v = existing
	} else {
		m.entries[key] = v
	}
	m.mu.Unlock()
	return v, nil
}

// Len reports the number of cached entries.
func (m *Memo[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
