package carriers

import (
	"context"
	"time"

	"github.com/matzehuels/parceltrack/pkg/cache"
	"github.com/matzehuels/parceltrack/pkg/observability"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

type refreshKey struct{}

// WithRefresh marks ctx so providers skip the cache read and fetch fresh
// data. The fresh result is still stored.
func WithRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, refreshKey{}, true)
}

// IsRefresh reports whether ctx was marked by [WithRefresh].
func IsRefresh(ctx context.Context) bool {
	v, _ := ctx.Value(refreshKey{}).(bool)
	return v
}

// Cached answers from store when a fresh entry exists for key, otherwise
// calls fetch and stores its result for ttl. Failures are never cached.
// Two concurrent misses for one key both fetch; the last write wins.
//
// Records handed out from the cache are shared and must not be modified.
func Cached(ctx context.Context, store cache.Store[*tracking.Record], carrier, key string, ttl time.Duration, fetch func() (*tracking.Record, error)) (*tracking.Record, error) {
	hooks := observability.Cache()
	if !IsRefresh(ctx) {
		if rec, ok := store.Get(key); ok {
			hooks.OnCacheHit(ctx, carrier)
			return rec, nil
		}
		hooks.OnCacheMiss(ctx, carrier)
	}

	rec, err := fetch()
	if err != nil {
		return nil, Classify(err)
	}
	store.Set(key, rec, ttl)
	hooks.OnCacheSet(ctx, carrier)
	return rec, nil
}
