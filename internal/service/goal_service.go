//go:generate mockery --name GoalService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"skill_tracker/internal/model"
	"skill_tracker/internal/repository"

	"gorm.io/gorm"
)

type GoalService interface {
	CreateGoal(ctx context.Context, req *model.CreateGoalRequest) (*model.Goal, error)
	ListGoals(ctx context.Context, skip, limit int) ([]*model.Goal, error)
	GetGoal(ctx context.Context, goalID uint) (*model.Goal, error)
	UpdateGoal(ctx context.Context, goalID uint, req *model.UpdateGoalRequest) (*model.Goal, error)
	DeleteGoal(ctx context.Context, goalID uint) error
}

type goalService struct {
	db           *gorm.DB
	goalRepo     repository.GoalRepository
	defaultLimit int
	logger       *slog.Logger
	now          func() time.Time
}

func NewGoalService(db *gorm.DB, goalRepo repository.GoalRepository, defaultLimit int, logger *slog.Logger) GoalService {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultLimit <= 0 {
		defaultLimit = 100
	}
	return &goalService{
		db:           db,
		goalRepo:     goalRepo,
		defaultLimit: defaultLimit,
		logger:       logger,
		now:          time.Now,
	}
}

// timestamp は保存用の現在時刻 (UTC, マイクロ秒精度) を返します
func (s *goalService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *goalService) CreateGoal(ctx context.Context, req *model.CreateGoalRequest) (*model.Goal, error) {
	if req == nil {
		return nil, model.ErrInvalidInput
	}
	goal := model.NewGoal(req, s.timestamp())
	if err := s.goalRepo.Create(ctx, s.db, goal); err != nil {
		s.logger.ErrorContext(ctx, "Failed to create goal", slog.Any("error", err))
		return nil, err
	}
	return goal, nil
}

// ListGoals は skip/limit が 0 以下の場合に既定値を使います
func (s *goalService) ListGoals(ctx context.Context, skip, limit int) ([]*model.Goal, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	goals, err := s.goalRepo.FindAll(ctx, s.db, skip, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list goals", slog.Any("error", err))
		return nil, err
	}
	if goals == nil {
		goals = []*model.Goal{}
	}
	return goals, nil
}

func (s *goalService) GetGoal(ctx context.Context, goalID uint) (*model.Goal, error) {
	goal, err := s.goalRepo.FindByID(ctx, s.db, goalID)
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// UpdateGoal は指定フィールドだけを反映します。updated_at は必ず前回値より後になります。
func (s *goalService) UpdateGoal(ctx context.Context, goalID uint, req *model.UpdateGoalRequest) (*model.Goal, error) {
	stored, err := s.goalRepo.FindByID(ctx, s.db, goalID)
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	if !now.After(stored.UpdatedAt) {
		now = stored.UpdatedAt.Add(time.Microsecond)
	}
	merged := model.ApplyGoalUpdate(*stored, req, now)

	if err := s.goalRepo.Update(ctx, s.db, &merged); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.ErrorContext(ctx, "Failed to update goal", slog.Any("error", err), slog.Uint64("goal_id", uint64(goalID)))
		}
		return nil, err
	}
	return &merged, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID uint) error {
	deleted, err := s.goalRepo.Delete(ctx, s.db, goalID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to delete goal", slog.Any("error", err), slog.Uint64("goal_id", uint64(goalID)))
		return err
	}
	if !deleted {
		return model.ErrNotFound
	}
	return nil
}
