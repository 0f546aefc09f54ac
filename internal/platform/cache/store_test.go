package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresEntriesAfterTTL(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC))
	store := NewStoreWithClock(time.Minute, clock)
	ctx := context.Background()

	store.Set(ctx, "league:id:1", "fall")
	if _, ok := store.Get(ctx, "league:id:1"); !ok {
		t.Fatalf("expected fresh entry to be cached")
	}

	clock.Advance(time.Minute)
	if _, ok := store.Get(ctx, "league:id:1"); ok {
		t.Fatalf("expected entry to expire after ttl")
	}
}

func TestStore_DeletePrefixes(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Set(ctx, "league:list", 1)
	store.Set(ctx, "league:id:1", 2)
	store.Set(ctx, "team:id:1", 3)
	store.Set(ctx, "user:1", 4)

	store.DeletePrefixes(ctx, "league:", "team:")

	for _, key := range []string{"league:list", "league:id:1", "team:id:1"} {
		if _, ok := store.Get(ctx, key); ok {
			t.Fatalf("expected %s to be evicted", key)
		}
	}
	if _, ok := store.Get(ctx, "user:1"); !ok {
		t.Fatalf("expected unrelated key to survive")
	}
}

func TestStore_GetOrLoad_DiscardsLoadOverlappingInvalidation(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})

	done := make(chan any, 1)
	go func() {
		v, _ := store.GetOrLoad(ctx, "team:id:1", func(context.Context) (any, error) {
			close(entered)
			<-release
			return "stale", nil
		})
		done <- v
	}()

	<-entered
	store.DeletePrefix(ctx, "team:")
	close(release)
	if v := <-done; v != "stale" {
		t.Fatalf("expected in-flight caller to receive its own load, got %v", v)
	}

	if _, ok := store.Get(ctx, "team:id:1"); ok {
		t.Fatalf("expected load overlapping an invalidation not to be cached")
	}

	v, err := store.GetOrLoad(ctx, "team:id:1", func(context.Context) (any, error) {
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if v != "fresh" {
		t.Fatalf("expected fresh value, got %v", v)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
