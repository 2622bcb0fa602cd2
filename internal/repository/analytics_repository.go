//go:generate mockery --name AnalyticsRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"skill_tracker/internal/middleware"
	"skill_tracker/internal/model"

	"gorm.io/gorm"
)

// AnalyticsRepository はダッシュボード集計用の読み取りクエリです。
// SQL はドライバ間で共通に使えるものだけを使い、月単位のまとめはサービス層で行います。
type AnalyticsRepository interface {
	Totals(ctx context.Context, db *gorm.DB) (*model.GoalTotals, error)
	CountByStatus(ctx context.Context, db *gorm.DB) ([]model.LabelCount, error)
	CountByResourceType(ctx context.Context, db *gorm.DB) ([]model.LabelCount, error)
	HoursBySkill(ctx context.Context, db *gorm.DB) ([]model.SkillHours, error)
	HoursCreatedSince(ctx context.Context, db *gorm.DB, since time.Time) ([]model.GoalHours, error)
}

type gormAnalyticsRepository struct{}

func NewGormAnalyticsRepository() AnalyticsRepository {
	return &gormAnalyticsRepository{}
}

func (r *gormAnalyticsRepository) Totals(ctx context.Context, db *gorm.DB) (*model.GoalTotals, error) {
	logger := middleware.GetLogger(ctx)
	var totals model.GoalTotals
	result := db.WithContext(ctx).
		Model(&model.Goal{}).
		Select(
			"COUNT(*) AS total_goals, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed_goals, "+
				"COALESCE(SUM(hours_spent), 0) AS total_hours",
			model.GoalStatusCompleted,
		).
		Scan(&totals)
	if result.Error != nil {
		logger.Error("Error aggregating goal totals in DB", "error", result.Error)
		return nil, fmt.Errorf("gormAnalyticsRepository.Totals: %w", result.Error)
	}
	return &totals, nil
}

func (r *gormAnalyticsRepository) CountByStatus(ctx context.Context, db *gorm.DB) ([]model.LabelCount, error) {
	rows, err := r.countBy(ctx, db, "status")
	if err != nil {
		return nil, fmt.Errorf("gormAnalyticsRepository.CountByStatus: %w", err)
	}
	return rows, nil
}

func (r *gormAnalyticsRepository) CountByResourceType(ctx context.Context, db *gorm.DB) ([]model.LabelCount, error) {
	rows, err := r.countBy(ctx, db, "resource_type")
	if err != nil {
		return nil, fmt.Errorf("gormAnalyticsRepository.CountByResourceType: %w", err)
	}
	return rows, nil
}

// countBy は column ごとの件数を返します。column は呼び出し側で固定した値のみ渡すこと。
func (r *gormAnalyticsRepository) countBy(ctx context.Context, db *gorm.DB, column string) ([]model.LabelCount, error) {
	logger := middleware.GetLogger(ctx)
	rows := []model.LabelCount{}
	result := db.WithContext(ctx).
		Model(&model.Goal{}).
		Select(column + " AS label, COUNT(*) AS count").
		Group(column).
		Order(column).
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting goals by column in DB", "error", result.Error, "column", column)
		return nil, result.Error
	}
	return rows, nil
}

func (r *gormAnalyticsRepository) HoursBySkill(ctx context.Context, db *gorm.DB) ([]model.SkillHours, error) {
	logger := middleware.GetLogger(ctx)
	rows := []model.SkillHours{}
	result := db.WithContext(ctx).
		Model(&model.Goal{}).
		Select("skill_name AS skill, COALESCE(SUM(hours_spent), 0) AS hours").
		Group("skill_name").
		Order("skill_name").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error summing hours by skill in DB", "error", result.Error)
		return nil, fmt.Errorf("gormAnalyticsRepository.HoursBySkill: %w", result.Error)
	}
	return rows, nil
}

// HoursCreatedSince は since 以降に作成され、学習時間が 0 より大きい目標の行を返します
func (r *gormAnalyticsRepository) HoursCreatedSince(ctx context.Context, db *gorm.DB, since time.Time) ([]model.GoalHours, error) {
	logger := middleware.GetLogger(ctx)
	rows := []model.GoalHours{}
	result := db.WithContext(ctx).
		Model(&model.Goal{}).
		Select("created_at, hours_spent").
		Where("created_at >= ? AND hours_spent > 0", since).
		Order("created_at ASC").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error loading goal hours in DB", "error", result.Error, "since", since)
		return nil, fmt.Errorf("gormAnalyticsRepository.HoursCreatedSince: %w", result.Error)
	}
	return rows, nil
}
