package main

import (
	"fmt"
	"os"

	"artist-dashboard/internal/errors"
)

// Exit codes for artistctl.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitNotFound = 2 // Unknown artist name.
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "artistctl:", err)
		if errors.IsNotFound(err) {
			os.Exit(ExitNotFound)
		}
		os.Exit(ExitFailure)
	}
}
