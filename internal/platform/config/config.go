// Package config は環境変数と .env ファイルからアプリケーション設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"account_backend/internal/platform/db"
	platformredis "account_backend/internal/platform/redis"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvDevelopment はローカル開発環境を表す APP_ENV の値です。
const EnvDevelopment = "development"

// minSecretLength は開発環境以外で要求するJWT署名鍵の最小バイト数です。
const minSecretLength = 32

// JWTConfig はトークン発行と検証の設定です。
type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET,required"`
	Expiration time.Duration `env:"JWT_EXPIRATION" envDefault:"1h"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"account-api"`
}

// RateLimitConfig はクライアントIPごとの固定ウィンドウ制限です。
type RateLimitConfig struct {
	Points int           `env:"RATE_LIMIT_POINTS" envDefault:"10"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1s"`
}

// Config はアプリケーション全体の設定です。
type Config struct {
	Env         string   `env:"APP_ENV" envDefault:"development"`
	Port        string   `env:"APP_PORT" envDefault:"8080"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	BcryptCost  int      `env:"BCRYPT_COST" envDefault:"10"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	JWT       JWTConfig
	RateLimit RateLimitConfig
	DB        db.Config
	Redis     platformredis.Config
}

// IsDevelopment は開発環境で動作しているかを返します。
func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Load は .env ファイル(存在する場合)を読み込んだ後、環境変数から設定を組み立てます。
// 既に設定されている環境変数は .env の値で上書きされません。
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !c.IsDevelopment() && len(c.JWT.Secret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes outside development", minSecretLength)
	}
	if c.JWT.Expiration <= 0 {
		return errors.New("JWT_EXPIRATION must be positive")
	}
	if c.RateLimit.Points <= 0 || c.RateLimit.Window <= 0 {
		return errors.New("RATE_LIMIT_POINTS and RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}
