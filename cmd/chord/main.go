// Package main is the entry point for the chord CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "chord",
		Short:        "KeyChord — keyboard command dispatcher",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "config file (default: search for keychord.toml upwards)")

	root.AddCommand(
		initCmd(),
		runCmd(),
		checkCmd(),
		setsCmd(),
		replayCmd(),
	)

	return root
}
