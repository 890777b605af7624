package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter はRedisのカウンタで複数プロセス間の制限を共有するLimiterです。
type RedisLimiter struct {
	client   redis.Cmdable
	prefix   string
	limit    int
	interval time.Duration
}

// NewRedisLimiter は新しいRedisLimiterのインスタンスを生成します。
func NewRedisLimiter(client redis.Cmdable, prefix string, limit int, interval time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		prefix:   prefix,
		limit:    limit,
		interval: interval,
	}
}

// counterKey はキーに対応するRedisキーを返します。
func (r *RedisLimiter) counterKey(key string) string {
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

// Allow はINCRでカウントを進め、ウィンドウ最初のリクエストで有効期限を設定します。
func (r *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	k := r.counterKey(key)

	count, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to increment rate counter: %w", err)
	}
	if count == 1 {
		if err := r.client.PExpire(ctx, k, r.interval).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to set rate window: %w", err)
		}
	}

	if count <= int64(r.limit) {
		return Result{Allowed: true, Remaining: r.limit - int(count)}, nil
	}

	ttl, err := r.client.PTTL(ctx, k).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read rate window: %w", err)
	}
	if ttl < 0 {
		// 有効期限の設定に失敗したカウンタが残り続けないよう再設定する
		if err := r.client.PExpire(ctx, k, r.interval).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to set rate window: %w", err)
		}
		ttl = r.interval
	}
	return Result{Allowed: false, RetryAfter: ttl}, nil
}
