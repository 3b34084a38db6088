package services

import (
	"context"
	"errors"
	"sync"

	"github.com/khabaroff/sitecraft-api/src/cache"
	"github.com/khabaroff/sitecraft-api/src/logging"
)

// readCache wraps a Store with per-key generations. invalidate bumps the
// generation, and a load that overlapped a bump is returned but not stored.
// Generations are per process: several instances must share Redis.
type readCache struct {
	store cache.Store

	mu   sync.Mutex
	gens map[string]uint64
}

func newReadCache(store cache.Store) *readCache {
	return &readCache{store: store, gens: make(map[string]uint64)}
}

func (rc *readCache) generation(key string) uint64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.gens[key]
}

// readThrough returns the cached value for key, or loads, caches and returns it.
// Cache failures never fail the read.
func readThrough[T any](ctx context.Context, rc *readCache, key string, load func(context.Context) (T, error)) (T, error) {
	if rc == nil || rc.store == nil {
		return load(ctx)
	}
	logger := logging.NewLogger("cache")

	var cached T
	err := cache.GetJSON(ctx, rc.store, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.Warn().Err(err).Str("key", key).Msg("Cache read failed")
	}

	gen := rc.generation(key)
	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	// Held across the write so invalidate cannot slip between check and set.
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.gens[key] != gen {
		logger.Debug().Str("key", key).Msg("Skipping cache write, key invalidated during load")
		return value, nil
	}
	if err := cache.SetJSON(ctx, rc.store, key, value, 0); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
	return value, nil
}

// invalidate drops cached keys after a write
func (rc *readCache) invalidate(ctx context.Context, keys ...string) {
	if rc == nil || rc.store == nil {
		return
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	for _, key := range keys {
		rc.gens[key]++
	}
	if err := rc.store.Delete(ctx, keys...); err != nil {
		logger := logging.NewLogger("cache")
		logger.Warn().Err(err).Strs("keys", keys).Msg("Cache invalidation failed")
	}
}
