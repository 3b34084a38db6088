// Package cache provides the read-through cache used for public site data.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Store is implemented by every cache backend. Implementations must be safe
// for concurrent use.
type Store interface {
	// Get returns ErrMiss when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value for ttl; a zero ttl uses the backend default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// Error is a cache failure kind.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrMiss indicates the key was not found or has expired.
	ErrMiss Error = "cache miss"
	// ErrClosed indicates the store has been closed.
	ErrClosed Error = "cache closed"
)

// Keys used by the services.
const (
	KeyContentAll     = "content:all"
	KeyPricingVisible = "pricing:visible"
)

// GetJSON decodes a cached JSON value into dst.
func GetJSON(ctx context.Context, s Store, key string, dst any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// SetJSON encodes v as JSON and stores it.
func SetJSON(ctx context.Context, s Store, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data, ttl)
}
