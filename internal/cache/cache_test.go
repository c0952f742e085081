package cache

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/lshigami/examcore/config"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "test:"), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrMiss) {
		t.Fatalf("Get(missing) err = %v, want ErrMiss", err)
	}
	if err := store.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !mr.Exists("test:k") {
		t.Fatal("expected key to be written with prefix")
	}
	got, err := store.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Fatalf("Get = %q, %v", got, err)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := store.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expired Get err = %v, want ErrMiss", err)
	}

	_ = store.Set(ctx, "a", []byte("1"), 0)
	_ = store.Set(ctx, "b", []byte("2"), 0)
	if err := store.Delete(ctx, "a", "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if mr.Exists("test:a") || mr.Exists("test:b") {
		t.Fatal("keys survived Delete")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	_ = store.Set(ctx, "k", []byte("v"), time.Second)
	if _, err := store.Get(ctx, "k"); err != nil {
		t.Fatalf("fresh Get: %v", err)
	}
	now = now.Add(time.Second)
	if _, err := store.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expired Get err = %v, want ErrMiss", err)
	}
}

func TestIncr(t *testing.T) {
	ctx := context.Background()
	redisStore, _ := newRedisStore(t)
	for name, store := range map[string]Store{"redis": redisStore, "memory": NewMemoryStore()} {
		t.Run(name, func(t *testing.T) {
			for want := int64(1); want <= 3; want++ {
				got, err := store.Incr(ctx, "counter")
				if err != nil || got != want {
					t.Fatalf("Incr = %d, %v; want %d", got, err, want)
				}
			}
		})
	}
}

func TestRememberLoadsOnce(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())
	calls := 0
	load := func(context.Context) (map[uint]uint, error) {
		calls++
		return map[uint]uint{7: 3}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Remember(ctx, c, "answer_key", time.Minute, load)
		if err != nil {
			t.Fatalf("Remember: %v", err)
		}
		if got[7] != 3 {
			t.Fatalf("Remember = %v", got)
		}
	}
	if calls != 1 {
		t.Fatalf("loader called %d times, want 1", calls)
	}
}

func TestRememberDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())
	boom := errors.New("boom")
	if _, err := Remember(ctx, c, "k", time.Minute, func(context.Context) (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	got, err := Remember(ctx, c, "k", time.Minute, func(context.Context) (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Fatalf("Remember = %d, %v", got, err)
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("down") }
func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("down")
}
func (failingStore) Delete(context.Context, ...string) error     { return errors.New("down") }
func (failingStore) Incr(context.Context, string) (int64, error) { return 0, errors.New("down") }

func TestBackendFailureFallsBackToLoader(t *testing.T) {
	ctx := context.Background()
	c := New(failingStore{})
	got, err := Remember(ctx, c, "k", time.Minute, func(context.Context) (string, error) { return "db", nil })
	if err != nil || got != "db" {
		t.Fatalf("Remember = %q, %v", got, err)
	}
	c.Invalidate(ctx, "k")
	c.BumpNamespace(ctx, AttemptListNamespace)
	if ns := c.Namespace(ctx, AttemptListNamespace); ns != AttemptListNamespace+":v0" {
		t.Fatalf("Namespace = %q", ns)
	}
}

func TestNamespaceBumpOrphansPages(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)
	c := New(store)

	q := url.Values{"page": {"1"}, "limit": {"20"}}
	first := ListKey(c.Namespace(ctx, ReportListNamespace), q)
	c.SetJSON(ctx, first, []int{1, 2}, ListTTL)

	var page []int
	if !c.GetJSON(ctx, ListKey(c.Namespace(ctx, ReportListNamespace), q), &page) {
		t.Fatal("expected cached page before bump")
	}

	c.BumpNamespace(ctx, ReportListNamespace)
	second := ListKey(c.Namespace(ctx, ReportListNamespace), q)
	if second == first {
		t.Fatalf("key unchanged after bump: %q", second)
	}
	if c.GetJSON(ctx, second, &page) {
		t.Fatal("page visible after namespace bump")
	}
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), config.Redis{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	defer client.Close()

	if _, err := NewRedisClient(context.Background(), config.Redis{Addr: "127.0.0.1:1"}); err == nil {
		t.Fatal("expected an error for an unreachable server")
	}
}
