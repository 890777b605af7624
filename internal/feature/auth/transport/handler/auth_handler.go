package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/transport/http/dto"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth   AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - 不正なリクエストボディは400を返却
// - 認証失敗時は理由を問わず401を返却
// - 認証成功時はアクセストークン付きで201を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := dto.Bind(c, &req); err != nil {
		writeBindError(c, h.logger, "login", err)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, "login", err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "user login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.TokenRes{AccessToken: token})
}
