package main

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/notes/internal/notes/app"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if err := cfg.Validate(); err != nil {
			fatal("invalid configuration", err)
		}

		logger := slogx.New(slogx.Config{
			Service: "notes-migrate",
			Version: app.BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		})

		if err := app.Migrate(cmd.Context(), cfg); err != nil {
			fatal("migration failed", err)
		}
		logger.Info("migrations applied", "driver", cfg.DatabaseDriver)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
