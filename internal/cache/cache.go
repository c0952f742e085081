package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Cache is a best-effort JSON layer over a Store. Backend failures are logged
// and reported as misses so callers always fall back to the database.
type Cache struct {
	store Store
}

func New(store Store) *Cache {
	return &Cache{store: store}
}

// GetJSON decodes the cached value into dest and reports whether it was found.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			log.Warn().Err(err).Str("key", key).Msg("Cache read failed, treating as miss")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache entry undecodable, dropping it")
		c.Invalidate(ctx, key)
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache value not encodable")
		return
	}
	if err := c.store.Set(ctx, key, raw, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("Cache invalidation failed")
	}
}

// Namespace returns ns qualified with its current version. Entries written
// under an older version become unreachable once BumpNamespace runs.
func (c *Cache) Namespace(ctx context.Context, ns string) string {
	raw, err := c.store.Get(ctx, versionKey(ns))
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			log.Warn().Err(err).Str("namespace", ns).Msg("Cache namespace version unreadable")
		}
		return ns + ":v0"
	}
	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return ns + ":v0"
	}
	return ns + ":v" + strconv.FormatInt(v, 10)
}

func (c *Cache) BumpNamespace(ctx context.Context, namespaces ...string) {
	for _, ns := range namespaces {
		if _, err := c.store.Incr(ctx, versionKey(ns)); err != nil {
			log.Warn().Err(err).Str("namespace", ns).Msg("Cache namespace bump failed")
		}
	}
}

func versionKey(ns string) string { return ns + ":version" }

// Remember returns the cached value for key or runs load and caches its result.
// Load errors are returned unchanged and nothing is cached.
func Remember[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if c.GetJSON(ctx, key, &cached) {
		return cached, nil
	}
	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	c.SetJSON(ctx, key, value, ttl)
	return value, nil
}
