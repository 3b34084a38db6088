package cache

import (
	"time"

	"github.com/rs/zerolog/log"
)

// New returns a Redis store when redisURL is set, otherwise an in-memory
// store. A Redis connection failure falls back to memory so the public
// endpoints keep working.
func New(redisURL string, ttl time.Duration) Store {
	if redisURL == "" {
		log.Info().Dur("ttl", ttl).Msg("Using in-memory cache")
		return NewMemory(ttl)
	}

	store, err := NewRedisFromURL(redisURL, ttl)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, falling back to in-memory cache")
		return NewMemory(ttl)
	}
	log.Info().Dur("ttl", ttl).Msg("Connected to Redis cache")
	return store
}
