// Package ratelimit はクライアント単位の固定ウィンドウ方式レート制限を提供します。
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Result はレート制限の判定結果です。
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration // Allowedがfalseの場合のみ意味を持ちます
}

// Limiter は、キーごとに一定期間内のリクエスト数を制限するインターフェースです。
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// window はキーごとのカウンタ状態です。
type window struct {
	count     int
	lastReset time.Time
}

// MemoryLimiter はプロセス内で状態を保持するLimiterです。
// Redisが利用できない場合のフォールバックとして使用します。
type MemoryLimiter struct {
	mu       sync.Mutex
	limit    int           // interval あたりの上限
	interval time.Duration // どの単位でリセットするか
	windows  map[string]*window
	now      func() time.Time
}

// NewMemoryLimiter は新しいMemoryLimiterのインスタンスを生成します。
func NewMemoryLimiter(limit int, interval time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// Allow はキーのカウントを1つ進め、上限内かどうかを返します。
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.lastReset) >= l.interval {
		l.sweep(now)
		w = &window{lastReset: now}
		l.windows[key] = w
	}

	w.count++
	if w.count > l.limit {
		return Result{Allowed: false, RetryAfter: l.interval - now.Sub(w.lastReset)}, nil
	}
	return Result{Allowed: true, Remaining: l.limit - w.count}, nil
}

// sweep は期限切れのウィンドウを削除します。呼び出し側でロックを保持している必要があります。
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if now.Sub(w.lastReset) >= l.interval {
			delete(l.windows, key)
		}
	}
}
