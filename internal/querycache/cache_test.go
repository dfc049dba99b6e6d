package querycache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/bizdesk/internal/querycache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	c := querycache.New[[]string](10, time.Minute)
	var calls int32
	load := func(context.Context) ([]string, error) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			return []string{"a"}, nil
		}
		return []string{"a", "b"}, nil
	}

	v, err := c.Fetch(ctx, "accounts", load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, v)

	v, err = c.Fetch(ctx, "accounts", load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, v)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	c.Invalidate("accounts")
	_, ok := c.Peek("accounts")
	assert.False(t, ok)

	v, err = c.Fetch(ctx, "accounts", load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestFetchErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	c := querycache.New[int](10, 0)
	boom := errors.New("connection refused")

	_, err := c.Fetch(ctx, "vendors", func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	v, err := c.Fetch(ctx, "vendors", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestFetchCollapsesConcurrentLoads(t *testing.T) {
	ctx := context.Background()
	c := querycache.New[int](10, 0)
	var calls int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]int, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Fetch(ctx, "users", func(context.Context) (int, error) {
				atomic.AddInt32(&calls, 1)
				<-release
				return 42, nil
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	for _, v := range results {
		assert.Equal(t, 42, v)
	}
}

func TestLoadRacingInvalidateIsNotStored(t *testing.T) {
	ctx := context.Background()
	c := querycache.New[string](10, 0)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan string)

	go func() {
		v, _ := c.Fetch(ctx, "accounts", func(context.Context) (string, error) {
			close(started)
			<-release
			return "stale", nil
		})
		done <- v
	}()

	<-started
	c.Invalidate("accounts")
	close(release)
	assert.Equal(t, "stale", <-done)

	_, ok := c.Peek("accounts")
	assert.False(t, ok, "a load started before invalidation must not populate the cache")

	v, err := c.Fetch(ctx, "accounts", func(context.Context) (string, error) { return "fresh", nil })
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
}

func TestPurge(t *testing.T) {
	ctx := context.Background()
	c := querycache.New[int](10, 0)
	_, _ = c.Fetch(ctx, "a", func(context.Context) (int, error) { return 1, nil })
	_, _ = c.Fetch(ctx, "b", func(context.Context) (int, error) { return 2, nil })

	c.Purge()
	_, okA := c.Peek("a")
	_, okB := c.Peek("b")
	assert.False(t, okA)
	assert.False(t, okB)
}

func TestCancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	c := querycache.New[string](10, 0)
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	load := func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		<-release
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "rows", nil
	}

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.Fetch(first, "employees", load)
		firstErr <- err
	}()
	<-started

	type result struct {
		v   string
		err error
	}
	second := make(chan result, 1)
	go func() {
		v, err := c.Fetch(context.Background(), "employees", load)
		second <- result{v, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, "rows", res.v)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	v, ok := c.Peek("employees")
	assert.True(t, ok)
	assert.Equal(t, "rows", v)
}

func TestLoadRacingPurgeIsNotStored(t *testing.T) {
	ctx := context.Background()
	c := querycache.New[string](10, 0)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_, _ = c.Fetch(ctx, "departments", func(context.Context) (string, error) {
			close(started)
			<-release
			return "stale", nil
		})
	}()

	<-started
	c.Purge()
	close(release)
	<-done

	_, ok := c.Peek("departments")
	assert.False(t, ok, "a load started before a purge must not populate the cache")
}
