// internal/handlers/analytics_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"skill_tracker/internal/service"
	"skill_tracker/internal/webutil"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  *slog.Logger
}

func NewAnalyticsHandler(s service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsHandler{service: s, logger: logger}
}

// GetSummary はダッシュボード用の集計を返します
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(
		slog.String("handler", "GetSummary"),
		slog.String("req_id", chimiddleware.GetReqID(r.Context())),
	)

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		logger.Error("Error building analytics summary", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Analytics summary built", slog.Int64("total_goals", summary.TotalGoals))
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}
