package observability

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/matzehuels/parceltrack/pkg/errors"
)

// Counters implements every hook interface with atomic totals.
type Counters struct {
	fetches        atomic.Int64
	fetchErrors    atomic.Int64
	cacheHits      atomic.Int64
	cacheMisses    atomic.Int64
	cacheSets      atomic.Int64
	httpRequests   atomic.Int64
	httpErrors     atomic.Int64
	sessionsOpen   atomic.Int64
	sessionsClosed atomic.Int64

	errorsByCode [numCodes]atomic.Int64
}

const numCodes = 5

var codeIndex = map[errors.Code]int{
	errors.ErrCodeInvalidInput: 0,
	errors.ErrCodeNotFound:     1,
	errors.ErrCodeUpstream:     2,
	errors.ErrCodeUnsupported:  3,
	errors.ErrCodeUnexpected:   4,
}

// Stats is a point-in-time copy of the counters.
type Stats struct {
	Fetches        int64                 `json:"fetches"`
	FetchErrors    int64                 `json:"fetch_errors"`
	ErrorsByCode   map[errors.Code]int64 `json:"errors_by_code"`
	CacheHits      int64                 `json:"cache_hits"`
	CacheMisses    int64                 `json:"cache_misses"`
	CacheSets      int64                 `json:"cache_sets"`
	HTTPRequests   int64                 `json:"http_requests"`
	HTTPErrors     int64                 `json:"http_errors"`
	SessionsOpened int64                 `json:"browser_sessions_opened"`
	SessionsClosed int64                 `json:"browser_sessions_closed"`
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters { return &Counters{} }

func (c *Counters) OnFetchStart(context.Context, string, string) { c.fetches.Add(1) }

func (c *Counters) OnFetchComplete(_ context.Context, _, _ string, _ time.Duration, err error) {
	if err == nil {
		return
	}
	c.fetchErrors.Add(1)
	if i, ok := codeIndex[errors.GetCode(err)]; ok {
		c.errorsByCode[i].Add(1)
	}
}

func (c *Counters) OnCacheHit(context.Context, string)  { c.cacheHits.Add(1) }
func (c *Counters) OnCacheMiss(context.Context, string) { c.cacheMisses.Add(1) }
func (c *Counters) OnCacheSet(context.Context, string)  { c.cacheSets.Add(1) }

func (c *Counters) OnRequest(context.Context, string, string, string) { c.httpRequests.Add(1) }
func (c *Counters) OnResponse(context.Context, string, string, string, int, time.Duration) {
}
func (c *Counters) OnError(context.Context, string, string, string, error) { c.httpErrors.Add(1) }

func (c *Counters) OnSessionOpen(context.Context, string) { c.sessionsOpen.Add(1) }
func (c *Counters) OnSessionClose(context.Context, string, time.Duration) {
	c.sessionsClosed.Add(1)
}

// Snapshot copies the current totals.
func (c *Counters) Snapshot() Stats {
	s := Stats{
		Fetches:        c.fetches.Load(),
		FetchErrors:    c.fetchErrors.Load(),
		ErrorsByCode:   make(map[errors.Code]int64, len(codeIndex)),
		CacheHits:      c.cacheHits.Load(),
		CacheMisses:    c.cacheMisses.Load(),
		CacheSets:      c.cacheSets.Load(),
		HTTPRequests:   c.httpRequests.Load(),
		HTTPErrors:     c.httpErrors.Load(),
		SessionsOpened: c.sessionsOpen.Load(),
		SessionsClosed: c.sessionsClosed.Load(),
	}
	for code, i := range codeIndex {
		s.ErrorsByCode[code] = c.errorsByCode[i].Load()
	}
	return s
}

var (
	_ FetchHooks   = (*Counters)(nil)
	_ CacheHooks   = (*Counters)(nil)
	_ HTTPHooks    = (*Counters)(nil)
	_ BrowserHooks = (*Counters)(nil)
)
