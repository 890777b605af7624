// Package router はアプリケーションのHTTPルーティングを組み立てます。
package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "account_backend/internal/feature/auth/transport/handler"
	platformhandler "account_backend/internal/platform/http/handler"
	"account_backend/internal/platform/http/middleware"
)

// Config はルーター全体に適用する設定です。
type Config struct {
	// CORSOrigins が空の場合、CORSミドルウェアは適用しません。
	CORSOrigins []string
}

// Handlers はルーターに登録するハンドラーとミドルウェアです。
type Handlers struct {
	Users        *authhandler.UserHandler
	Auth         *authhandler.AuthHandler
	Health       *platformhandler.HealthHandler
	AuthRequired gin.HandlerFunc
	RateLimit    gin.HandlerFunc
}

func NewRouter(cfg Config, h Handlers, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
			ExposeHeaders: []string{middleware.HeaderRequestID, "Retry-After"},
			MaxAge:        12 * time.Hour,
		}))
	}

	// 導通確認用 (レート制限の対象外)
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)

	api := r.Group("/")
	if h.RateLimit != nil {
		api.Use(h.RateLimit)
	}

	// 認証不要
	// 新規ユーザー登録
	api.POST("/users/register", h.Users.Register)
	// ログイン（JWT 発行）
	api.POST("/auth/login", h.Auth.Login)

	// 認証必須のルート
	// → リクエストヘッダーに Bearer トークンが必要になる
	auth := api.Group("/")
	auth.Use(h.AuthRequired)
	{
		auth.GET("/users/profile", h.Users.Profile)
		auth.DELETE("/users/delete", h.Users.Delete)
	}

	return r
}
