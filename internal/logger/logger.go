// internal/logger/logger.go
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"skill_tracker/internal/config"
)

// ParseLevel は設定ファイルのログレベル文字列を slog.Level に変換します。
// 不明な値は Info として扱い、ok=false を返します。
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New は設定に基づいてアプリケーションのロガーを組み立てます。
//   - dev: tint (カラー表示)
//   - それ以外: JSON (ソース位置付き)
//   - log.file 指定時: lumberjack でローテーションするファイルにも JSON で出力
//   - log.sentry_dsn 指定時: Error 以上を Sentry にも送る
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := new(slog.LevelVar)
	lvl, ok := ParseLevel(cfg.Log.Level)
	level.Set(lvl)

	var handlers []slog.Handler
	if cfg.IsDev() {
		handlers = append(handlers, tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
		}))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		}))
	}

	if cfg.Log.File != "" {
		handlers = append(handlers, slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    100, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}, &slog.HandlerOptions{Level: level}))
	}

	if cfg.Log.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Log.SentryDSN,
			Environment: cfg.App.Env,
			Release:     config.AppName + "@" + config.AppVersion,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		} else {
			slog.Warn("Sentry init failed, continuing without it", slog.Any("error", err))
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler).With(slog.String("app", config.AppName))
	if !ok {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}
	return logger
}

// Flush はバッファされた Sentry イベントを送信します。
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}
