package main

import (
	"fmt"

	"github.com/aussiebroadwan/notes/internal/notes/app"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notes version %s\n", app.BuildVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
