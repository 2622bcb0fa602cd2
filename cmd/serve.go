// cmd/serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"skill_tracker/internal/handlers"
	"skill_tracker/internal/logger"
	"skill_tracker/internal/middleware"
	"skill_tracker/internal/repository"
	"skill_tracker/internal/service"
)

func newServeCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			defer logger.Flush(2 * time.Second)
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	a.logger.Info("Application starting...")

	sqlDB, err := a.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	// Dependency Injection
	goalService := service.NewGoalService(a.db, repository.NewGormGoalRepository(), a.cfg.App.DefaultLimit, a.logger)
	analyticsService := service.NewAnalyticsService(a.db, repository.NewGormAnalyticsRepository(), a.logger)

	var metrics *middleware.Metrics
	if a.cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = middleware.NewMetrics(reg)
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		Goals:     handlers.NewGoalHandler(goalService, a.cfg.App.DefaultLimit, a.logger),
		Analytics: handlers.NewAnalyticsHandler(analyticsService, a.logger),
		Root:      handlers.NewRootHandler(sqlDB, a.logger),
		Metrics:   metrics,
		CORS:      a.cfg.CORS,
		Timeout:   a.cfg.Server.RequestTimeout,
		Logger:    a.logger,
	})

	server := &http.Server{
		Addr:         a.cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: a.cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Server listening", slog.String("port", a.cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error("Could not listen on port", slog.String("port", a.cfg.Server.Port), slog.Any("error", err))
			return err
		}
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}
	a.logger.Info("Server exiting")
	return nil
}
