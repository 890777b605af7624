// Package middleware はルーター全体に適用するGinミドルウェアを提供します。
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID はリクエストIDを受け渡すヘッダー名です。
const HeaderRequestID = "X-Request-ID"

// ContextRequestID はGinコンテキストにリクエストIDを保存するキーです。
const ContextRequestID = "requestID"

// maxRequestIDLength を超えるクライアント指定のIDは採用しません。
const maxRequestIDLength = 128

// RequestLogger はリクエストIDを付与し、処理完了後にアクセスログを出力します。
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			logger.ErrorContext(ctx, "request completed", attrs...)
		case status >= 400:
			logger.WarnContext(ctx, "request completed", attrs...)
		default:
			logger.InfoContext(ctx, "request completed", attrs...)
		}
	}
}
