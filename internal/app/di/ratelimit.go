// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"account_backend/internal/platform/ratelimit"

	"github.com/redis/go-redis/v9"
)

// NewRateLimiter creates a Limiter implementation.
// If Redis is available, it returns a Redis-backed implementation shared across instances.
// Otherwise, it falls back to a per-process in-memory limiter.
func NewRateLimiter(rdb *redis.Client, points int, window time.Duration) ratelimit.Limiter {
	if rdb != nil {
		return ratelimit.NewRedisLimiter(rdb, "ratelimit", points, window)
	}
	return ratelimit.NewMemoryLimiter(points, window)
}
