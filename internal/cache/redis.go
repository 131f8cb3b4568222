package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"bookreviews/internal/logging"
)

// Redis stores entries as plain redis strings. Keys are written without an
// expiry regardless of the ttl argument, matching Memory.
type Redis struct {
	client redis.UniversalClient
}

var _ Cache = (*Redis)(nil)

// NewRedis wraps client. The caller owns the client lifecycle.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

func (c *Redis) Get(ctx context.Context, key string) (string, bool) {
	v, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		logging.Error(ctx, "cache get error", slog.String("key", key), logging.Err(err))
		return "", false
	}
	return v, true
}

func (c *Redis) Set(ctx context.Context, key string, value string, _ time.Duration) bool {
	if err := c.client.Set(ctx, key, value, 0).Err(); err != nil {
		logging.Error(ctx, "cache set error", slog.String("key", key), logging.Err(err))
		return false
	}
	return true
}
