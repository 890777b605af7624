// Package dbtest はテスト用のマイグレーション済みSQLiteデータベースを提供します。
package dbtest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"account_backend/internal/platform/db"
)

// NewSQLite はテストごとの一時ディレクトリにSQLiteファイルを作成し、マイグレーションを適用して返します。
// インメモリDBと異なり、コネクションプールの全接続が同じデータベースを参照します。
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := db.Config{Driver: db.DriverSQLite, Path: filepath.Join(t.TempDir(), "test.db")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	gdb, err := gorm.Open(sqlite.Open(db.BuildSQLiteDSN(cfg)), db.GormConfig(logger))
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(context.Background(), sqlDB, db.DriverSQLite), "failed to migrate")
	return gdb
}
