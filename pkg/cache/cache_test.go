package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)}
}

func TestNullCache(t *testing.T) {
	c := NewNull[string]()

	if _, hit := c.Get("key"); hit {
		t.Error("Null.Get should always return miss")
	}

	c.Set("key", "value", time.Hour)

	if _, hit := c.Get("key"); hit {
		t.Error("Null should not store data")
	}
}

func TestMemoryGetSet(t *testing.T) {
	clock := newClock()
	c := NewMemory[string](clock)

	if _, hit := c.Get("RR123456789AR"); hit {
		t.Fatal("empty cache should miss")
	}

	c.Set("RR123456789AR", "first", time.Minute)
	v, hit := c.Get("RR123456789AR")
	if !hit || v != "first" {
		t.Fatalf("Get = (%q, %v), want (first, true)", v, hit)
	}

	c.Set("RR123456789AR", "second", time.Minute)
	if v, _ := c.Get("RR123456789AR"); v != "second" {
		t.Errorf("Set should overwrite, got %q", v)
	}
}

func TestMemoryExpiry(t *testing.T) {
	clock := newClock()
	c := NewMemory[int](clock)

	c.Set("k", 1, 10*time.Second)

	clock.Advance(9 * time.Second)
	if _, hit := c.Get("k"); !hit {
		t.Fatal("entry should be fresh before TTL")
	}

	clock.Advance(time.Second)
	if _, hit := c.Get("k"); hit {
		t.Fatal("entry should expire at now == expiresAt")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be evicted on read, Len = %d", c.Len())
	}
}

func TestMemoryDefaultTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		t.Run(fmt.Sprint(ttl), func(t *testing.T) {
			clock := newClock()
			c := NewMemory[int](clock)
			c.Set("k", 1, ttl)

			clock.Advance(DefaultTTL - time.Nanosecond)
			if _, hit := c.Get("k"); !hit {
				t.Fatal("entry should live for DefaultTTL")
			}
			clock.Advance(time.Nanosecond)
			if _, hit := c.Get("k"); hit {
				t.Fatal("entry should expire after DefaultTTL")
			}
		})
	}
}

func TestMemoryNoBackgroundSweep(t *testing.T) {
	clock := newClock()
	c := NewMemory[int](clock)
	c.Set("a", 1, time.Second)
	c.Set("b", 2, time.Second)

	clock.Advance(time.Hour)
	if c.Len() != 2 {
		t.Fatalf("entries should remain until read, Len = %d", c.Len())
	}
	c.Get("a")
	if c.Len() != 1 {
		t.Errorf("only the read key should be evicted, Len = %d", c.Len())
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	c := NewMemory[int](nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			c.Set(key, i, time.Minute)
			c.Get(key)
		}(i)
	}
	wg.Wait()
	if c.Len() != 5 {
		t.Errorf("Len = %d, want 5", c.Len())
	}
}
