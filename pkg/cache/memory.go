package cache

import (
	"sync"
	"time"
)

// Memory is an in-process TTL map. Reads and writes are atomic per key;
// two concurrent misses for one key may both fetch and both Set, and the
// last write wins.
type Memory[V any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[V]
	clock   Clock
}

// NewMemory creates an empty cache. A nil clock uses SystemClock.
func NewMemory[V any](clock Clock) *Memory[V] {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Memory[V]{
		entries: make(map[string]Entry[V]),
		clock:   clock,
	}
}

// Get returns the value for key when now < ExpiresAt. An expired entry is
// deleted before reporting the miss.
func (m *Memory[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if !m.clock.Now().Before(e.ExpiresAt) {
		m.mu.Lock()
		// Only evict the entry we saw; a concurrent Set may have replaced it.
		if cur, ok := m.entries[key]; ok && cur.ExpiresAt.Equal(e.ExpiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return zero, false
	}
	return e.Value, true
}

// Set stores value with ExpiresAt = now + ttl.
func (m *Memory[V]) Set(key string, value V, ttl time.Duration) {
	e := Entry[V]{
		Value:     value,
		ExpiresAt: m.clock.Now().Add(EffectiveTTL(ttl)),
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Ensure Memory implements Store.
var _ Store[int] = (*Memory[int])(nil)
