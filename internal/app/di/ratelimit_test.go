package di

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"account_backend/internal/platform/ratelimit"
)

func TestNewRateLimiter(t *testing.T) {
	t.Run("without redis", func(t *testing.T) {
		l := NewRateLimiter(nil, 10, time.Second)

		assert.IsType(t, &ratelimit.MemoryLimiter{}, l)
	})

	t.Run("with redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })

		l := NewRateLimiter(rdb, 10, time.Second)

		assert.IsType(t, &ratelimit.RedisLimiter{}, l)
	})
}
