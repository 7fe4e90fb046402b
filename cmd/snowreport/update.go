package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"parkjunwoo.com/snowreport/internal/history"
	"parkjunwoo.com/snowreport/pkg/snow"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Fetch snowfall and resort stats and rewrite the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sr, err := ctx.load()
			if err != nil {
				return err
			}

			logger, err := ctx.newLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Sync()
			sr.SetLogger(logger)

			logger.Info("updating snow report",
				zap.Int("resorts", len(sr.Resorts)),
				zap.Int("workers", sr.Workers),
				zap.String("output", sr.Output))

			report, err := sr.Build(cmd.Context())
			if err != nil {
				return fmt.Errorf("build report: %w", err)
			}

			if err := snow.WriteReport(sr.Output, report); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			logger.Info("snow report written", zap.String("path", sr.Output))

			if sr.HistoryDB == "" {
				return nil
			}

			store, err := history.Open(sr.HistoryDB)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			runID, err := store.SaveReport(cmd.Context(), report)
			if err != nil {
				return fmt.Errorf("save history: %w", err)
			}
			logger.Info("history recorded", zap.String("run_id", runID), zap.String("db", sr.HistoryDB))
			return nil
		},
	}
}
