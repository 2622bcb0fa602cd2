// internal/repository/helpers_test.go
package repository

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skill_tracker/internal/config"
	"skill_tracker/internal/model"
)

// setupTestDB はテストごとに独立したインメモリ SQLite を用意します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		URL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}
	db, err := NewDB(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

// insertGoal はテスト用の目標を直接 DB に作成します
func insertGoal(t *testing.T, db *gorm.DB, skill, status, resource string, hours float64, createdAt time.Time) *model.Goal {
	t.Helper()
	g := &model.Goal{
		GoalFields: model.GoalFields{
			SkillName:        skill,
			ResourceType:     resource,
			Platform:         "Udemy",
			TargetHours:      20,
			DifficultyRating: 5,
		},
		Status:     status,
		HoursSpent: hours,
		CreatedAt:  createdAt.UTC(),
		UpdatedAt:  createdAt.UTC(),
	}
	require.NoError(t, db.Create(g).Error)
	return g
}
