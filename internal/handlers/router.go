// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"skill_tracker/internal/config"
	"skill_tracker/internal/middleware"
)

// RouterDeps はルーター構築に必要な依存関係です
type RouterDeps struct {
	Goals     *GoalHandler
	Analytics *AnalyticsHandler
	Root      *RootHandler
	Metrics   *middleware.Metrics // nil ならメトリクス無効
	CORS      config.CORSConfig
	Timeout   time.Duration
	Logger    *slog.Logger
}

// NewRouter はミドルウェアとルートを組み立てた chi ルーターを返します
func NewRouter(deps RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(newCORS(deps.CORS).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Get("/", deps.Root.Welcome)
	r.Get("/health", deps.Root.Health)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	// /goals と /goals/ の両方に応答する
	r.Route("/goals", func(r chi.Router) {
		r.Get("/", deps.Goals.ListGoals)
		r.Post("/", deps.Goals.CreateGoal)
		r.Get("/{goal_id}", deps.Goals.GetGoal)
		r.Patch("/{goal_id}", deps.Goals.UpdateGoal)
		r.Delete("/{goal_id}", deps.Goals.DeleteGoal)
	})

	r.Get("/analytics/summary", deps.Analytics.GetSummary)

	return r
}

func newCORS(cfg config.CORSConfig) *cors.Cors {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = config.DefaultAllowedOrigins
	}
	methods := cfg.AllowedMethods
	if len(methods) == 0 {
		methods = config.DefaultAllowedMethods
	}
	headers := cfg.AllowedHeaders
	if len(headers) == 0 {
		headers = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   methods,
		AllowedHeaders:   headers,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
		Debug:            false,
	})
}
