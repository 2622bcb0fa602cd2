// internal/handlers/goal_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"skill_tracker/internal/model"
	"skill_tracker/internal/service"
	"skill_tracker/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type GoalHandler struct {
	service      service.GoalService
	defaultLimit int
	logger       *slog.Logger
}

func NewGoalHandler(s service.GoalService, defaultLimit int, logger *slog.Logger) *GoalHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GoalHandler{
		service:      s,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

func (h *GoalHandler) handlerLogger(r *http.Request, name string) *slog.Logger {
	return h.logger.With(
		slog.String("handler", name),
		slog.String("req_id", chimiddleware.GetReqID(r.Context())),
	)
}

// CreateGoal は新しい学習目標を作成します
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := h.handlerLogger(r, "CreateGoal")

	var req model.CreateGoalRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	goal, err := h.service.CreateGoal(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating goal in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Goal created successfully", slog.Uint64("goal_id", uint64(goal.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, goal, logger)
}

// ListGoals は目標の一覧を返します (任意の skip / limit クエリ)
func (h *GoalHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	logger := h.handlerLogger(r, "ListGoals")

	query, err := h.parseListQuery(r)
	if err != nil {
		logger.Warn("Invalid list query", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	goals, err := h.service.ListGoals(r.Context(), query.Skip, query.Limit)
	if err != nil {
		logger.Error("Error listing goals in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if goals == nil {
		goals = []*model.Goal{}
	}

	logger.Info("Goals listed successfully", slog.Int("count", len(goals)))
	webutil.RespondWithJSON(w, http.StatusOK, goals, logger)
}

// GetGoal は指定IDの目標を返します
func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := h.handlerLogger(r, "GetGoal")

	goalID, err := parseGoalID(r)
	if err != nil {
		logger.Warn("Invalid goal ID in URL", slog.String("goal_id", chi.URLParam(r, "goal_id")))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Uint64("goal_id", uint64(goalID)))

	goal, err := h.service.GetGoal(r.Context(), goalID)
	if err != nil {
		logServiceError(logger, "Error getting goal from service", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Goal retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, goal, logger)
}

// UpdateGoal は指定されたフィールドだけを更新します
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	logger := h.handlerLogger(r, "UpdateGoal")

	goalID, err := parseGoalID(r)
	if err != nil {
		logger.Warn("Invalid goal ID in URL", slog.String("goal_id", chi.URLParam(r, "goal_id")))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Uint64("goal_id", uint64(goalID)))

	var req model.UpdateGoalRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	goal, err := h.service.UpdateGoal(r.Context(), goalID, &req)
	if err != nil {
		logServiceError(logger, "Error updating goal in service", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Goal updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, goal, logger)
}

// DeleteGoal は指定IDの目標を削除します
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := h.handlerLogger(r, "DeleteGoal")

	goalID, err := parseGoalID(r)
	if err != nil {
		logger.Warn("Invalid goal ID in URL", slog.String("goal_id", chi.URLParam(r, "goal_id")))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Uint64("goal_id", uint64(goalID)))

	if err := h.service.DeleteGoal(r.Context(), goalID); err != nil {
		logServiceError(logger, "Error deleting goal in service", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Goal deleted successfully")
	webutil.RespondNoContent(w)
}

func parseGoalID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "goal_id")
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil {
		return 0, model.NewAppError("INVALID_URL_PARAM", "goal_id must be a valid integer", "goal_id", model.ErrInvalidInput)
	}
	return uint(id), nil
}

func (h *GoalHandler) parseListQuery(r *http.Request) (*model.ListGoalsQuery, error) {
	query := &model.ListGoalsQuery{Skip: 0, Limit: h.defaultLimit}
	values := r.URL.Query()

	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"skip", &query.Skip},
		{"limit", &query.Limit},
	} {
		raw := values.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, model.NewAppError("INVALID_QUERY_PARAM", p.name+" must be a valid integer", p.name, model.ErrInvalidInput)
		}
		*p.dst = n
	}

	if err := webutil.ValidateStruct(query); err != nil {
		return nil, err
	}
	return query, nil
}

// 見つからないのは想定内なので Info に留める
func logServiceError(logger *slog.Logger, msg string, err error) {
	if errors.Is(err, model.ErrNotFound) {
		logger.Info("Goal not found in service")
		return
	}
	logger.Error(msg, slog.Any("error", err))
}
