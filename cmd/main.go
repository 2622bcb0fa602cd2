// cmd/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"skill_tracker/internal/config"
	"skill_tracker/internal/logger"
	"skill_tracker/internal/repository"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Skill Tracker API server",
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", "configs", "directory containing config.yaml")

	root.AddCommand(newServeCmd(&configDir))
	root.AddCommand(newSummaryCmd(&configDir))
	return root
}

// app はコマンド間で共有する初期化済みの依存関係です
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func loadApp(configDir string) (*app, error) {
	// 設定ファイル読み込み用の一時的なロガー
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	appLogger := logger.New(cfg, os.Stderr)
	slog.SetDefault(appLogger)

	lvl, _ := logger.ParseLevel(cfg.Log.Level)
	db, err := repository.NewDB(cfg.Database, appLogger, lvl <= slog.LevelDebug)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	return &app{cfg: cfg, logger: appLogger, db: db}, nil
}

func (a *app) close() {
	if err := repository.Close(a.db); err != nil {
		a.logger.Error("Error closing database connection", slog.Any("error", err))
	} else {
		a.logger.Info("Database connection closed.")
	}
}
