// Package cmd implements the CLI commands for the happy-arz server.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/happy-arz/internal/config"
	"github.com/donaldgifford/happy-arz/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "happyarz",
	Short: "Discover venues with live happy-hour discounts",
	Long: "An API-first service that ranks verified and nearby venues by live discount,\n" +
		"ingests verified venue spreadsheets, and keeps per-device bookmarks.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file path (defaults apply when empty)")

	rootCmd.AddCommand(serveCmd, migrateCmd, ingestCmd, versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads --config, or falls back to defaults when no file is given.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Logging.Level, cfg.Logging.Format)
}
