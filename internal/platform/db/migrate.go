package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*/*.sql
var migrations embed.FS

var gooseDialects = map[string]goose.Dialect{
	DriverSQLite:   goose.DialectSQLite3,
	DriverMySQL:    goose.DialectMySQL,
	DriverPostgres: goose.DialectPostgres,
	"":             goose.DialectSQLite3,
}

// Migrate はドライバーに対応する埋め込みマイグレーションを適用します。
// 並行するテストから呼び出しても互いに干渉しません。
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	dialect, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	if driver == "" {
		driver = DriverSQLite
	}

	fsys, err := fs.Sub(migrations, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("failed to open migrations for %s: %w", driver, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
