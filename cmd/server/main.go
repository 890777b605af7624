package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"account_backend/internal/app/di"
	"account_backend/internal/app/router"
	authadapters "account_backend/internal/feature/auth/adapters"
	authhandler "account_backend/internal/feature/auth/transport/handler"
	authusecase "account_backend/internal/feature/auth/usecase"
	"account_backend/internal/platform/config"
	"account_backend/internal/platform/db"
	platformhandler "account_backend/internal/platform/http/handler"
	jwtmw "account_backend/internal/platform/jwt"
	"account_backend/internal/platform/logger"
	"account_backend/internal/platform/password"
	"account_backend/internal/platform/ratelimit"
	platformredis "account_backend/internal/platform/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server terminated", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.Open(cfg.DB, log)
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	checks := map[string]platformhandler.Pinger{
		"database": platformhandler.PingFunc(sqlDB.PingContext),
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := platformredis.NewRedisClient(ctx, cfg.Redis, log); err != nil {
			log.Warn("Redis unavailable. Falling back to in-memory rate limiting.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Error("failed to close Redis client", "error", err)
				}
			}()
			checks["redis"] = platformhandler.PingFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			})
		}
	}

	hasher, err := password.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return err
	}

	// Repository
	userRepo := authadapters.NewUserGorm(gdb)

	// Usecase
	userUC := authusecase.NewUserUsecase(userRepo, hasher, log)
	authUC := authusecase.NewAuthUsecase(userRepo, hasher,
		jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.Issuer),
		jwtmw.NewParser(cfg.JWT.Secret, cfg.JWT.Issuer),
		log)

	// ルータ生成
	limiter := di.NewRateLimiter(rdb, cfg.RateLimit.Points, cfg.RateLimit.Window)
	engine := router.NewRouter(router.Config{CORSOrigins: cfg.CORSOrigins}, router.Handlers{
		Users:        authhandler.NewUserHandler(userUC, log),
		Auth:         authhandler.NewAuthHandler(authUC, log),
		Health:       platformhandler.NewHealthHandler(checks, log),
		AuthRequired: jwtmw.AuthRequired(authUC, log),
		RateLimit:    ratelimit.Middleware(limiter, log),
	}, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
