package observability

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/parceltrack/pkg/errors"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	f := NoopFetchHooks{}
	f.OnFetchStart(ctx, "andreani", "360000123456789")
	f.OnFetchComplete(ctx, "andreani", "360000123456789", time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "oca")
	c.OnCacheMiss(ctx, "oca")
	c.OnCacheSet(ctx, "oca")

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "www.correoargentino.com.ar", "/wsFacade.php")
	h.OnResponse(ctx, "POST", "www.correoargentino.com.ar", "/wsFacade.php", 200, time.Second)
	h.OnError(ctx, "POST", "www.correoargentino.com.ar", "/wsFacade.php", nil)

	b := NoopBrowserHooks{}
	b.OnSessionOpen(ctx, "viacargo")
	b.OnSessionClose(ctx, "viacargo", time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Fetch().(NoopFetchHooks); !ok {
		t.Error("Fetch() should return NoopFetchHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}
	if _, ok := Browser().(NoopBrowserHooks); !ok {
		t.Error("Browser() should return NoopBrowserHooks by default")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customBrowser := &testBrowserHooks{}
	SetBrowserHooks(customBrowser)
	if Browser() != customBrowser {
		t.Error("SetBrowserHooks should set custom hooks")
	}

	Reset()
	if _, ok := Browser().(NoopBrowserHooks); !ok {
		t.Error("Reset() should restore NoopBrowserHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testFetchHooks{}
	SetFetchHooks(custom)
	SetFetchHooks(nil)

	if Fetch() != custom {
		t.Error("SetFetchHooks(nil) should be ignored")
	}
}

func TestCounters(t *testing.T) {
	Reset()
	defer Reset()

	ctx := context.Background()
	c := NewCounters()
	SetAll(c)

	Fetch().OnFetchStart(ctx, "oca", "1")
	Fetch().OnFetchComplete(ctx, "oca", "1", time.Millisecond, nil)
	Fetch().OnFetchStart(ctx, "oca", "2")
	Fetch().OnFetchComplete(ctx, "oca", "2", time.Millisecond, errors.New(errors.ErrCodeUpstream, "timeout"))
	Cache().OnCacheMiss(ctx, "oca")
	Cache().OnCacheSet(ctx, "oca")
	Cache().OnCacheHit(ctx, "oca")
	Browser().OnSessionOpen(ctx, "oca")
	Browser().OnSessionClose(ctx, "oca", time.Second)
	HTTP().OnRequest(ctx, "GET", "h", "/")
	HTTP().OnError(ctx, "GET", "h", "/", nil)

	s := c.Snapshot()
	if s.Fetches != 2 || s.FetchErrors != 1 {
		t.Errorf("fetches = %d/%d, want 2/1", s.Fetches, s.FetchErrors)
	}
	if s.ErrorsByCode[errors.ErrCodeUpstream] != 1 {
		t.Errorf("UPSTREAM errors = %d, want 1", s.ErrorsByCode[errors.ErrCodeUpstream])
	}
	if s.CacheHits != 1 || s.CacheMisses != 1 || s.CacheSets != 1 {
		t.Errorf("cache = %+v", s)
	}
	if s.SessionsOpened != s.SessionsClosed {
		t.Errorf("sessions opened %d != closed %d", s.SessionsOpened, s.SessionsClosed)
	}
	if s.HTTPRequests != 1 || s.HTTPErrors != 1 {
		t.Errorf("http = %d/%d, want 1/1", s.HTTPRequests, s.HTTPErrors)
	}
}

// Test implementations
type testFetchHooks struct{ NoopFetchHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testBrowserHooks struct{ NoopBrowserHooks }
