package main

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/notes/internal/notes/app"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if servePort != 0 {
			cfg.Port = servePort
		}

		application, err := app.New(cmd.Context(), cfg)
		if err != nil {
			fatal("failed to initialize application", err)
		}

		if err := application.Run(); err != nil {
			fatal("application error", err)
		}
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}
