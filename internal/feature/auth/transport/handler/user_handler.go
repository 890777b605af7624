package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/transport/http/dto"
	jwtmw "account_backend/internal/platform/jwt"
)

// UserUsecase はアカウントのライフサイクル操作を定義します。
type UserUsecase interface {
	Create(ctx context.Context, name, email, password string) (*entity.User, error)
	FindProfileByEmail(ctx context.Context, email string) (*entity.User, error)
	DeleteByID(ctx context.Context, id uint) error
}

// UserHandler はユーザー登録・プロフィール・退会のHTTPリクエストを処理します。
type UserHandler struct {
	users  UserUsecase
	logger *slog.Logger
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase, logger *slog.Logger) *UserHandler {
	dto.RegisterValidations()
	return &UserHandler{users: users, logger: logger}
}

// Register はユーザー登録APIエンドポイントを処理します。
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := dto.Bind(c, &req); err != nil {
		writeBindError(c, h.logger, "register", err)
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, "register", err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterRes{Message: "User successfully registered", ID: user.ID})
}

// Profile は認証済みユーザーのプロフィールを返します。
func (h *UserHandler) Profile(c *gin.Context) {
	identity, ok := jwtmw.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
		return
	}

	user, err := h.users.FindProfileByEmail(c.Request.Context(), identity.Email)
	if err != nil {
		writeError(c, h.logger, "profile", err)
		return
	}
	if user == nil {
		// トークン検証後に削除された場合
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "user not found"})
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileRes(user))
}

// Delete は認証済みユーザーのアカウントを削除します。
func (h *UserHandler) Delete(c *gin.Context) {
	identity, ok := jwtmw.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
		return
	}

	if err := h.users.DeleteByID(c.Request.Context(), identity.UserID); err != nil {
		writeError(c, h.logger, "delete account", err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "user account deleted", "user_id", identity.UserID)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "User account deleted successfully."})
}
