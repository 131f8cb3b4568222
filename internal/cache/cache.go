// Package cache provides the string key-value store consulted before the
// database on read-heavy paths.
//
// Implementations never return errors to the caller. A failed Get reports
// absence and a failed Set reports false; the failure itself is logged.
// The ttl passed to Set is accepted for interface compatibility but is not
// enforced by any backend: entries live until they are overwritten.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bookreviews/internal/config"
)

type Cache interface {
	Get(ctx context.Context, key string) (value string, found bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) bool
}

// New builds the backend selected by cfg. The returned close func releases
// backend resources and is safe to call once.
func New(ctx context.Context, cfg config.CacheConfig) (Cache, func() error, error) {
	switch cfg.Backend {
	case "", config.CacheBackendMemory:
		return NewMemory(), func() error { return nil }, nil
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedis(client), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
	}
}
