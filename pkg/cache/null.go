package cache

import "time"

// Null is a no-op cache that never stores anything.
// Used when caching is disabled (--no-cache).
type Null[V any] struct{}

// NewNull creates a null cache.
func NewNull[V any]() Store[V] {
	return Null[V]{}
}

// Get always returns a cache miss.
func (Null[V]) Get(string) (V, bool) {
	var zero V
	return zero, false
}

// Set does nothing.
func (Null[V]) Set(string, V, time.Duration) {}

// Ensure Null implements Store.
var _ Store[int] = Null[int]{}
