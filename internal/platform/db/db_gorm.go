// Package db はデータベース接続の確立とスキーマのマイグレーションを提供します。
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// サポートするドライバー名です。
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// retryInterval は接続リトライの間隔です。
var retryInterval = 3 * time.Second

// Config はデータベース接続設定を保持します。
type Config struct {
	Driver         string        `env:"DB_DRIVER" envDefault:"sqlite"`
	Path           string        `env:"DB_PATH" envDefault:"account.db"` // SQLite only
	User           string        `env:"DB_USER"`
	Password       string        `env:"DB_PASSWORD"`
	Name           string        `env:"DB_NAME"`
	Host           string        `env:"DB_HOST" envDefault:"localhost"`
	Port           string        `env:"DB_PORT"`
	InstanceName   string        `env:"INSTANCE_CONNECTION_NAME"` // Cloud SQL
	SSLMode        string        `env:"DB_SSLMODE" envDefault:"disable"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"60s"`
	RunMigrations  bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
}

// BuildDSN はMySQL用のDSN文字列を生成します。
// InstanceNameが設定されている場合はCloud SQLのUnixソケット接続を優先します。
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// BuildPostgresDSN はPostgreSQL用のキーワード形式DSN文字列を生成します。
func BuildPostgresDSN(cfg Config) string {
	host := cfg.Host
	if cfg.InstanceName != "" {
		host = "/cloudsql/" + cfg.InstanceName
	}
	port := cfg.Port
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// BuildSQLiteDSN はSQLiteファイルのDSN文字列を生成します。
// 同時書き込み時にSQLITE_BUSYで即失敗しないようbusy_timeoutを設定します。
func BuildSQLiteDSN(cfg Config) string {
	return cfg.Path + "?_busy_timeout=5000"
}

// Dialector は設定されたドライバーに対応するgorm.Dialectorを返します。
func Dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return sqlite.Open(BuildSQLiteDSN(cfg)), nil
	case DriverMySQL:
		return gmysql.Open(BuildDSN(cfg)), nil
	case DriverPostgres:
		return postgres.Open(BuildPostgresDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// slogWriter はGORMのロガー出力をslogへ転送します。
type slogWriter struct {
	logger *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.logger.Warn(fmt.Sprintf(format, args...), "component", "gorm")
}

// GormConfig はリポジトリが前提とするGORM設定を返します。
// TranslateErrorによりドライバー固有の一意制約違反がgorm.ErrDuplicatedKeyに変換されます。
func GormConfig(logger *slog.Logger) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(slogWriter{logger: logger}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// ConnectWithRetry はタイムアウトに達するまで一定間隔で接続を試行します。
func ConnectWithRetry(
	dsn string,
	timeout time.Duration,
	opener func(dsn string) (*gorm.DB, error),
	logger *slog.Logger,
) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		logger.Warn("DB connect failed, retrying", "error", err, "interval", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open は設定に従ってデータベースへ接続し、必要に応じてマイグレーションを適用します。
func Open(cfg Config, logger *slog.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	opener := func(string) (*gorm.DB, error) {
		return gorm.Open(dialector, GormConfig(logger))
	}
	db, err := ConnectWithRetry(cfg.Driver, cfg.ConnectTimeout, opener, logger)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := Migrate(context.Background(), sqlDB, cfg.Driver); err != nil {
			return nil, err
		}
		logger.Info("database migrations applied", "driver", cfg.Driver)
	}

	return db, nil
}
