// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/domain"
	"account_backend/internal/feature/auth/transport/http/dto"
)

// statusFor はドメインエラーの種類をHTTPステータスに対応付けます。
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case domain.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError はエラーをJSONレスポンスに変換します。
// 分類できないエラーの内容はクライアントに返さずログにのみ記録します。
func writeError(c *gin.Context, logger *slog.Logger, op string, err error) {
	status := statusFor(err)
	ctx := c.Request.Context()

	switch status {
	case http.StatusInternalServerError:
		logger.ErrorContext(ctx, op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(status, dto.ErrorRes{Error: "internal server error"})
	case http.StatusUnauthorized:
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		logger.WarnContext(ctx, op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(status, dto.ErrorRes{Error: "unauthorized"})
	default:
		logger.WarnContext(ctx, op+" failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(status, dto.ErrorRes{Error: err.Error()})
	}
}

// writeBindError はリクエストのデコード・検証エラーを400として返します。
func writeBindError(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.WarnContext(c.Request.Context(), op+" validation failed", "error", err, "remote_addr", c.ClientIP())
	if errors.Is(err, dto.ErrMalformedBody) {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorRes{
		Error:   domain.ErrValidation.Error(),
		Details: dto.ValidationMessages(err),
	})
}
