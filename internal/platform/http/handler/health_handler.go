// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// checkTimeout は依存先ごとの疎通確認の上限時間です。
const checkTimeout = 2 * time.Second

// Pinger は疎通確認が可能な依存先です (*sql.DB, *redis.Client のラッパーなど)。
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc は関数を Pinger として扱うためのアダプターです。
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler は /healthz エンドポイントを処理します。
type HealthHandler struct {
	checks map[string]Pinger
	logger *slog.Logger
}

// NewHealthHandler は名前付きの依存先を確認する HealthHandler を生成します。
func NewHealthHandler(checks map[string]Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{checks: checks, logger: logger}
}

// Health はサービスヘルスチェックを処理します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
// 依存先のいずれかが応答しない場合は 503 を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	failed := h.failedChecks(c.Request.Context())
	status := http.StatusOK
	if len(failed) > 0 {
		status = http.StatusServiceUnavailable
	}

	if c.Request.Method == http.MethodHead {
		c.Status(status)
		return
	}
	if len(failed) > 0 {
		c.JSON(status, gin.H{"status": "unavailable", "failed": failed})
		return
	}
	c.JSON(status, gin.H{"status": "ok"})
}

func (h *HealthHandler) failedChecks(ctx context.Context) []string {
	failed := []string{}
	for name, p := range h.checks {
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := p.Ping(checkCtx)
		cancel()
		if err != nil {
			h.logger.WarnContext(ctx, "health check failed", "dependency", name, "error", err)
			failed = append(failed, name)
		}
	}
	return failed
}
