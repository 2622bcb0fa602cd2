//go:generate mockery --name GoalRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"skill_tracker/internal/middleware"
	"skill_tracker/internal/model"

	"gorm.io/gorm"
)

// GoalRepository は goals テーブルへの永続化操作です。
// db には呼び出し側でリクエストのコンテキストに紐付けたセッションを渡します。
type GoalRepository interface {
	Create(ctx context.Context, db *gorm.DB, goal *model.Goal) error
	FindAll(ctx context.Context, db *gorm.DB, skip, limit int) ([]*model.Goal, error)
	FindByID(ctx context.Context, db *gorm.DB, goalID uint) (*model.Goal, error)
	Update(ctx context.Context, db *gorm.DB, goal *model.Goal) error
	Delete(ctx context.Context, db *gorm.DB, goalID uint) (bool, error)
}

type gormGoalRepository struct{}

func NewGormGoalRepository() GoalRepository {
	return &gormGoalRepository{}
}

func (r *gormGoalRepository) Create(ctx context.Context, db *gorm.DB, goal *model.Goal) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(goal)
	if result.Error != nil {
		logger.Error("Error creating goal in DB",
			"error", result.Error,
			"skill_name", goal.SkillName,
		)
		return fmt.Errorf("gormGoalRepository.Create: %w", result.Error)
	}
	return nil
}

// FindAll は挿入順 (id 昇順) で skip 件目から最大 limit 件を返します
func (r *gormGoalRepository) FindAll(ctx context.Context, db *gorm.DB, skip, limit int) ([]*model.Goal, error) {
	logger := middleware.GetLogger(ctx)
	goals := []*model.Goal{}
	result := db.WithContext(ctx).Order("id ASC").Offset(skip).Limit(limit).Find(&goals)
	if result.Error != nil {
		logger.Error("Error listing goals in DB",
			"error", result.Error,
			"skip", skip,
			"limit", limit,
		)
		return nil, fmt.Errorf("gormGoalRepository.FindAll: %w", result.Error)
	}
	return goals, nil
}

func (r *gormGoalRepository) FindByID(ctx context.Context, db *gorm.DB, goalID uint) (*model.Goal, error) {
	logger := middleware.GetLogger(ctx)
	var goal model.Goal
	result := db.WithContext(ctx).Where("id = ?", goalID).First(&goal)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding goal by ID in DB",
			"error", result.Error,
			"goal_id", goalID,
		)
		return nil, fmt.Errorf("gormGoalRepository.FindByID: %w", result.Error)
	}
	return &goal, nil
}

// Update はマージ済みの goal で可変カラムをすべて書き換えます。
// 対象行が存在しない場合は model.ErrNotFound を返し、行を作成しません。
func (r *gormGoalRepository) Update(ctx context.Context, db *gorm.DB, goal *model.Goal) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).
		Model(&model.Goal{}).
		Where("id = ?", goal.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(goal)
	if result.Error != nil {
		logger.Error("Error updating goal in DB",
			"error", result.Error,
			"goal_id", goal.ID,
		)
		return fmt.Errorf("gormGoalRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete は物理削除します。対象が無ければ false を返します。
func (r *gormGoalRepository) Delete(ctx context.Context, db *gorm.DB, goalID uint) (bool, error) {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("id = ?", goalID).Delete(&model.Goal{})
	if result.Error != nil {
		logger.Error("Error deleting goal in DB",
			"error", result.Error,
			"goal_id", goalID,
		)
		return false, fmt.Errorf("gormGoalRepository.Delete: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
