// internal/service/helpers_test.go
package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skill_tracker/internal/config"
	"skill_tracker/internal/repository"
)

// テスト用ロガー (出力を捨てる)
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedClock は常に同じ時刻を返す時計です
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// setupTestDB は実際のリポジトリを通すテスト用のインメモリ SQLite です
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(config.DatabaseConfig{
		Driver: "sqlite",
		URL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}, discardLogger(), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repository.Close(db) })
	return db
}
