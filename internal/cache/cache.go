// ABOUTME: In-memory cache with TTL-based expiration for computed reports
// ABOUTME: Thread-safe cache using sync.Map with a stoppable background sweep

package cache

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

type entry struct {
	data      any
	expiresAt time.Time
}

// Cache stores values for a fixed TTL. Calculation results are pure, so the
// TTL only bounds memory, not staleness.
type Cache struct {
	store  sync.Map
	ttl    time.Duration
	hits   atomic.Int64
	misses atomic.Int64
	done   chan struct{}
	once   sync.Once
}

// New creates a cache and starts a sweep goroutine that runs once a minute.
func New(ttl time.Duration) *Cache {
	return NewWithSweep(ttl, time.Minute)
}

// NewWithSweep is New with a custom sweep interval.
func NewWithSweep(ttl, sweep time.Duration) *Cache {
	c := &Cache{
		ttl:  ttl,
		done: make(chan struct{}),
	}
	go c.startCleanup(sweep)
	return c
}

func (c *Cache) Get(key string) (any, bool) {
	val, ok := c.store.Load(key)
	if !ok {
		c.misses.Add(1)
		slog.Debug("Cache miss", "key", key)
		return nil, false
	}

	e := val.(entry)
	if time.Now().After(e.expiresAt) {
		c.store.Delete(key)
		c.misses.Add(1)
		slog.Debug("Cache expired", "key", key)
		return nil, false
	}

	c.hits.Add(1)
	slog.Debug("Cache hit", "key", key)
	return e.data, true
}

func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	e := entry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	}
	c.store.Store(key, e)
	slog.Debug("Cache set", "key", key, "ttl", ttl)
}

func (c *Cache) Clear(key string) {
	c.store.Delete(key)
}

// Len returns the number of stored entries, including expired ones not yet swept.
func (c *Cache) Len() int {
	n := 0
	c.store.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Stats returns the hit and miss counts since creation.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Close stops the sweep goroutine. The cache stays usable.
func (c *Cache) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *Cache) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case now := <-ticker.C:
			c.sweep(now)
		}
	}
}

func (c *Cache) sweep(now time.Time) {
	c.store.Range(func(key, val any) bool {
		e := val.(entry)
		if now.After(e.expiresAt) {
			c.store.Delete(key)
		}
		return true
	})
}
