// Package cache provides the short-lived memoization layer used by carrier
// providers.
//
// Each provider owns one [Store], created at startup and living for the
// whole process; nothing is persisted. Expiry is checked lazily on read,
// there is no background sweeper. A fresh Set supersedes the previous entry
// for the key rather than mutating it.
package cache

import "time"

// DefaultTTL applies when a caller passes a non-positive TTL.
const DefaultTTL = 5 * time.Minute

// Store memoizes values by key for a bounded time.
type Store[V any] interface {
	// Get returns the value stored under key if it has not expired.
	// Expired entries are evicted and reported as a miss.
	Get(key string) (V, bool)

	// Set stores value under key until now+ttl, replacing any prior entry.
	// A ttl <= 0 means DefaultTTL.
	Set(key string, value V, ttl time.Duration)
}

// Entry is one stored value with its expiry instant.
type Entry[V any] struct {
	Value     V
	ExpiresAt time.Time
}

// Clock reports the current time. Tests inject a fake to move time forward.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// EffectiveTTL returns ttl, or DefaultTTL when ttl is not positive.
func EffectiveTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
