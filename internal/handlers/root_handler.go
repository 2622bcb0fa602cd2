// internal/handlers/root_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"skill_tracker/internal/webutil"
)

// WelcomeMessage はルートで返す案内文です
const WelcomeMessage = "Welcome to the Skill Tracker API"

// Pinger はストレージの疎通確認です (*sql.DB が満たします)
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RootHandler struct {
	db     Pinger
	logger *slog.Logger
}

func NewRootHandler(db Pinger, logger *slog.Logger) *RootHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RootHandler{db: db, logger: logger}
}

func (h *RootHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": WelcomeMessage}, h.logger)
}

// Health は DB に ping して結果を返します
func (h *RootHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.db == nil {
		http.Error(w, "Health check failed", http.StatusServiceUnavailable)
		return
	}
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
		http.Error(w, "Health check failed", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
