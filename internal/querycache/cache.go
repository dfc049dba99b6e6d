// Package querycache caches whole read-query results per collection and drops
// them when a mutation succeeds.
package querycache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Loader fetches a fresh value for a cache key.
type Loader[T any] func(ctx context.Context) (T, error)

// Cache holds complete query results. Entries are replaced or dropped, never merged.
type Cache[T any] struct {
	entries *expirable.LRU[string, T]
	group   singleflight.Group

	mu    sync.Mutex
	epoch uint64
	gens  map[string]uint64
}

// stamp identifies the cache state a load started from.
type stamp struct {
	epoch, gen uint64
}

// New creates a cache holding at most size keys for ttl each.
// size <= 0 means unbounded and ttl <= 0 means entries never expire.
func New[T any](size int, ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		entries: expirable.NewLRU[string, T](size, nil, ttl),
		gens:    make(map[string]uint64),
	}
}

// Fetch returns the cached value for key or loads it. Concurrent loads of the same key
// share one call. A load that was started before an Invalidate of key, or a Purge, still
// returns its result to its callers but is not stored.
//
// The shared load does not inherit cancellation from any caller; each caller stops
// waiting when its own ctx is done.
func (c *Cache[T]) Fetch(ctx context.Context, key string, load Loader[T]) (T, error) {
	var zero T
	if v, ok := c.entries.Get(key); ok {
		return v, nil
	}

	st := c.current(key)
	flight := fmt.Sprintf("%s#%d.%d", key, st.epoch, st.gen)
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(flight, func() (any, error) {
		val, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.stampLocked(key) == st {
			c.entries.Add(key, val)
		}
		c.mu.Unlock()
		return val, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// Invalidate drops key so the next Fetch goes to the loader.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	c.gens[key]++
	c.entries.Remove(key)
	c.mu.Unlock()
}

// Peek returns the cached value without loading.
func (c *Cache[T]) Peek(key string) (T, bool) {
	return c.entries.Peek(key)
}

// Purge drops every entry, including results of loads still in flight.
func (c *Cache[T]) Purge() {
	c.mu.Lock()
	c.epoch++
	c.entries.Purge()
	c.mu.Unlock()
}

func (c *Cache[T]) current(key string) stamp {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stampLocked(key)
}

func (c *Cache[T]) stampLocked(key string) stamp {
	return stamp{epoch: c.epoch, gen: c.gens[key]}
}
