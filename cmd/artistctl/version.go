package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"artist-dashboard/internal/handlers"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "artistctl %s\n", handlers.Version)
	},
}
