package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "players", nil
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
			v, err := store.GetOrLoad(context.Background(), "player:all", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "players" {
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

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loadErr := errors.New("db down")

	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, loadErr
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error, got %v", err)
	}
	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}
	if v != "ok" {
		t.Fatalf("unexpected value: %v", v)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Second)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "team:all", 1)
	if _, ok := store.Get(context.Background(), "team:all"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Second)
	if _, ok := store.Get(context.Background(), "team:all"); ok {
		t.Fatalf("expected expired entry to be dropped")
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", store.Len())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	store.Set(ctx, "player:all", 1)
	store.Set(ctx, "player:key:7", 2)
	store.Set(ctx, "team:all", 3)

	store.DeletePrefix(ctx, "player:")

	if _, ok := store.Get(ctx, "player:all"); ok {
		t.Fatalf("expected player:all to be deleted")
	}
	if _, ok := store.Get(ctx, "team:all"); !ok {
		t.Fatalf("expected team:all to survive")
	}
}

func TestStore_GetOrLoad_DropsValueInvalidatedMidLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan any, 1)
	go func() {
		v, _ := store.GetOrLoad(ctx, "player:all", func(context.Context) (any, error) {
			close(started)
			<-release
			return "before write", nil
		})
		done <- v
	}()

	<-started
	store.DeletePrefix(ctx, "player:")
	close(release)

	if got := <-done; got != "before write" {
		t.Fatalf("in-flight caller should still get its value, got %v", got)
	}
	if _, ok := store.Get(ctx, "player:all"); ok {
		t.Fatalf("value loaded before invalidation must not be cached")
	}

	v, err := store.GetOrLoad(ctx, "player:all", func(context.Context) (any, error) { return "after write", nil })
	if err != nil || v != "after write" {
		t.Fatalf("expected fresh load, got %v err=%v", v, err)
	}
	if cached, ok := store.Get(ctx, "player:all"); !ok || cached != "after write" {
		t.Fatalf("expected fresh value cached, got %v ok=%v", cached, ok)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
