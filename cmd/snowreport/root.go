package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"parkjunwoo.com/snowreport/pkg/snow"
)

// commandContext는 하위 명령들이 공유하는 전역 플래그입니다.
type commandContext struct {
	configPath string
	output     string
	historyDB  string
	workers    int
	debug      bool
}

// load는 설정 파일, 환경변수, 플래그 순으로 값을 덮어씁니다.
func (c *commandContext) load() (*snow.SnowReport, error) {
	sr, err := snow.NewSnowReport(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.output != "" {
		sr.Output = c.output
	}
	if c.historyDB != "" {
		sr.HistoryDB = c.historyDB
	}
	if c.workers > 0 {
		sr.Workers = c.workers
	}
	return sr, nil
}

func (c *commandContext) newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if c.debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	updateCmd := newUpdateCommand(ctx)

	rootCmd := &cobra.Command{
		Use:           "snowreport",
		Short:         "Build the ski resort snow report JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          updateCmd.RunE,
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&ctx.output, "output", "o", "", "Report JSON path (default data/snow.json)")
	rootCmd.PersistentFlags().StringVar(&ctx.historyDB, "history-db", "", "SQLite history database path")
	rootCmd.PersistentFlags().IntVar(&ctx.workers, "workers", 0, "Resorts fetched in parallel (default: physical cores)")
	rootCmd.PersistentFlags().BoolVar(&ctx.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))

	return rootCmd
}
