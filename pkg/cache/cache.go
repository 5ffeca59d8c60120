// Package cache holds the response caches used for outbound lookups.
package cache

import (
	"context"
	"errors"
	"time"
)

var ErrUnknownBackend = errors.New("unknown cache backend")

// Cache stores opaque byte values with a per-entry TTL.
// Implementations are safe for concurrent use.
type Cache interface {
	// Get returns the value and true on a fresh hit. Expired entries are
	// reported as a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Clear drops every entry.
	Clear(ctx context.Context) error
	Close() error
}

type Config struct {
	// Backend is "memory" or "redis".
	Backend   string `envconfig:"CACHE_BACKEND" default:"memory"`
	RedisAddr string `envconfig:"CACHE_REDIS_ADDR" default:"localhost:6379"`
	RedisDB   int    `envconfig:"CACHE_REDIS_DB"`
	Prefix    string `envconfig:"CACHE_PREFIX" default:"cars:"`
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// New builds the backend selected by cfg.Backend.
func New(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.Backend {
	case BackendRedis:
		return NewRedis(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.Prefix)
	case BackendMemory, "":
		return NewMemory(), nil
	}
	return nil, ErrUnknownBackend
}
