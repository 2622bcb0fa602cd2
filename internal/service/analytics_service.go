//go:generate mockery --name AnalyticsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"skill_tracker/internal/model"
	"skill_tracker/internal/repository"

	"gorm.io/gorm"
)

type AnalyticsService interface {
	Summary(ctx context.Context) (*model.AnalyticsSummary, error)
}

type analyticsService struct {
	db     *gorm.DB
	repo   repository.AnalyticsRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewAnalyticsService(db *gorm.DB, repo repository.AnalyticsRepository, logger *slog.Logger) AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &analyticsService{
		db:     db,
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *analyticsService) Summary(ctx context.Context) (*model.AnalyticsSummary, error) {
	now := s.now().UTC()

	totals, err := s.repo.Totals(ctx, s.db)
	if err != nil {
		return nil, s.fail(ctx, "totals", err)
	}
	byStatus, err := s.repo.CountByStatus(ctx, s.db)
	if err != nil {
		return nil, s.fail(ctx, "status breakdown", err)
	}
	byResource, err := s.repo.CountByResourceType(ctx, s.db)
	if err != nil {
		return nil, s.fail(ctx, "resource type breakdown", err)
	}
	bySkill, err := s.repo.HoursBySkill(ctx, s.db)
	if err != nil {
		return nil, s.fail(ctx, "skill hours", err)
	}
	recent, err := s.repo.HoursCreatedSince(ctx, s.db, now.Add(-model.AnalyticsWindow))
	if err != nil {
		return nil, s.fail(ctx, "monthly hours", err)
	}

	if bySkill == nil {
		bySkill = []model.SkillHours{}
	}
	return &model.AnalyticsSummary{
		TotalGoals:            totals.TotalGoals,
		CompletedGoals:        totals.CompletedGoals,
		TotalHours:            totals.TotalHours,
		GoalStatusBreakdown:   toCountMap(byStatus),
		ResourceTypeBreakdown: toCountMap(byResource),
		SkillHoursBreakdown:   bySkill,
		HoursByMonthData:      bucketByMonth(recent, now),
	}, nil
}

func (s *analyticsService) fail(ctx context.Context, part string, err error) error {
	s.logger.ErrorContext(ctx, "Failed to build analytics summary", slog.String("part", part), slog.Any("error", err))
	return err
}

func toCountMap(rows []model.LabelCount) map[string]int64 {
	m := make(map[string]int64, len(rows))
	for _, r := range rows {
		m[r.Label] += r.Count
	}
	return m
}

// bucketByMonth は作成年月 (UTC) ごとに学習時間を合計し、年月の昇順で返します。
// 対象が無い場合は当月の 0 時間を 1 件だけ返します。
func bucketByMonth(rows []model.GoalHours, now time.Time) []model.MonthlyHours {
	if len(rows) == 0 {
		return []model.MonthlyHours{{Month: now.Format(model.MonthLabelLayout), TotalHours: 0}}
	}

	type bucket struct {
		start time.Time
		hours float64
	}
	buckets := map[string]*bucket{}
	for _, r := range rows {
		created := r.CreatedAt.UTC()
		key := created.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{start: time.Date(created.Year(), created.Month(), 1, 0, 0, 0, 0, time.UTC)}
			buckets[key] = b
		}
		b.hours += r.HoursSpent
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]model.MonthlyHours, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, model.MonthlyHours{
			Month:      b.start.Format(model.MonthLabelLayout),
			TotalHours: b.hours,
		})
	}
	return out
}
