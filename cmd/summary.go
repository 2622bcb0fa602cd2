// cmd/summary.go
package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"skill_tracker/internal/logger"
	"skill_tracker/internal/repository"
	"skill_tracker/internal/service"
)

// newSummaryCmd はサーバーを起動せずに集計結果を JSON で出力します
func newSummaryCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the analytics summary as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			defer logger.Flush(2 * time.Second)
			defer a.close()

			svc := service.NewAnalyticsService(a.db, repository.NewGormAnalyticsRepository(), a.logger)
			summary, err := svc.Summary(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}
}
