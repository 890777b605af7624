package redis

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config はRedis接続設定です。Host が空の場合Redisは使用しません。
type Config struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
}

// Enabled はRedisの接続先が設定されているかを返します。
func (c Config) Enabled() bool {
	return c.Host != ""
}

// Addr は host:port 形式の接続先を返します。
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// NewRedisClient はRedisクライアントを生成し、疎通確認を行います。
func NewRedisClient(ctx context.Context, cfg Config, logger *slog.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// 接続確認
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Error("Redis connection failed", "address", cfg.Addr(), "error", err)
		_ = rdb.Close()
		return nil, err
	}

	logger.Info("Redis connection successful", "address", cfg.Addr())
	return rdb, nil
}
