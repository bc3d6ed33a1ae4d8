package contributors

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type Fetcher interface {
	Fetch(ctx context.Context) Result
}

// Cache serves the last successful Result until it is ttl old. A failed
// fetch is remembered for retryAfter so a broken API is not hit on every
// request; while a failure is remembered, an older success is still served.
type Cache struct {
	src        Fetcher
	ttl        time.Duration
	retryAfter time.Duration
	now        func() time.Time

	group singleflight.Group

	mu      sync.Mutex
	good    Result
	hasGood bool
	failed  time.Time
	lastErr error
}

func NewCache(src Fetcher, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	retry := time.Minute
	if retry > ttl {
		retry = ttl
	}
	return &Cache{src: src, ttl: ttl, retryAfter: retry, now: time.Now}
}

func (c *Cache) Get(ctx context.Context) Result {
	if r, ok := c.cached(); ok {
		return r
	}
	// The result is shared with every waiter and cached, so one client
	// going away must not cancel it; the HTTP client timeout bounds it.
	fetchCtx := context.WithoutCancel(ctx)
	v, _, _ := c.group.Do("contributors", func() (any, error) {
		r := c.src.Fetch(fetchCtx)
		if !errors.Is(r.Err, context.Canceled) {
			c.store(r)
		}
		return r, nil
	})
	r := v.(Result)
	if !r.OK() {
		if stale, ok := c.lastGood(); ok {
			return stale
		}
	}
	return r
}

func (c *Cache) cached() (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if c.lastErr != nil && now.Sub(c.failed) < c.retryAfter {
		if c.hasGood {
			return c.good, true
		}
		return Result{Err: c.lastErr, FetchedAt: c.failed}, true
	}
	if c.hasGood && now.Sub(c.good.FetchedAt) < c.ttl {
		return c.good, true
	}
	return Result{}, false
}

func (c *Cache) lastGood() (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.good, c.hasGood
}

func (c *Cache) store(r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r.OK() {
		r.FetchedAt = c.now()
		c.good = r
		c.hasGood = true
		c.lastErr = nil
		return
	}
	c.failed = c.now()
	c.lastErr = r.Err
}
