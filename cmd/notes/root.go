package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/notes/internal/notes/app"
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Note taking backend with tags, archiving and bookmarks",
	Long: `notes serves the JSON API behind the notes web app.
Configuration comes from the environment and an optional .env file (ENV_FILE).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies command line overrides.
func loadConfig() app.Config {
	cfg := app.LoadConfig()
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
