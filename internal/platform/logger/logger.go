// Package logger はアプリケーション共通の *slog.Logger を構築します。
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New は環境に応じたハンドラーでロガーを生成します。
// production では JSON、それ以外ではテキスト形式で標準出力に書き込みます。
func New(env, level string) *slog.Logger {
	return NewWithWriter(os.Stdout, env, level)
}

// NewWithWriter は出力先を指定してロガーを生成します。
func NewWithWriter(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel はログレベル名を slog.Level に変換します。不明な値は Info として扱います。
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
