// internal/repository/db.go
package repository

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"skill_tracker/internal/config"
	"skill_tracker/internal/model"
)

// sqliteBusyTimeout は書き込みが競合したときに SQLite がロック解放を待つ時間 (ms) です
const sqliteBusyTimeout = 5000

// NewDB はストレージハンドルを生成します。プロセス起動時に一度だけ呼び出し、
// サービス層へ注入してください。テーブルが存在しなければ作成します (マイグレーション機能はありません)。
func NewDB(cfg config.DatabaseConfig, appLogger *slog.Logger, debug bool) (*gorm.DB, error) {
	if appLogger == nil {
		appLogger = slog.Default()
	}

	dialector, err := openDialector(cfg)
	if err != nil {
		appLogger.Error("Unsupported database configuration", slog.Any("error", err))
		return nil, err
	}

	// === slog を利用する GORM Logger の設定 ===
	gormLogLevel := gormlogger.Warn
	if debug {
		gormLogLevel = gormlogger.Info
	}
	gormLog := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	).LogMode(gormLogLevel)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLog,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, fmt.Errorf("repository.NewDB: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, fmt.Errorf("repository.NewDB: %w", err)
	}
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, fmt.Errorf("repository.NewDB: ping: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := EnsureSchema(db); err != nil {
		appLogger.Error("Failed to create schema", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	appLogger.Info("Database connection established with GORM", slog.String("driver", cfg.Driver))
	return db, nil
}

// EnsureSchema はテーブルが無ければ作成します。既存テーブルの変更は行いません。
func EnsureSchema(db *gorm.DB) error {
	if db.Migrator().HasTable(&model.Goal{}) {
		return nil
	}
	if err := db.Migrator().CreateTable(&model.Goal{}); err != nil {
		return fmt.Errorf("repository.EnsureSchema: %w", err)
	}
	return nil
}

// Close は下位の接続プールを閉じます
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "sqlite", "sqlite3":
		dsn := cfg.URL
		if !strings.Contains(dsn, ":memory:") && !strings.HasPrefix(dsn, "file:") {
			// ファイルの保存先ディレクトリを作成しておく
			if dir := filepath.Dir(dsn); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, fmt.Errorf("failed to create data directory: %w", err)
				}
			}
		}
		return sqlite.Open(withBusyTimeout(dsn)), nil
	case "postgres", "postgresql", "pgx":
		return postgres.Open(cfg.URL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d", dsn, sep, sqliteBusyTimeout)
}
