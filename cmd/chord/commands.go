package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/config"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/store"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create keychord.toml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			created, err := config.ScaffoldProject(dir)
			if err != nil {
				return err
			}
			if len(created) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "All files already exist, nothing to create.")
				return nil
			}
			for _, path := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			}
			return nil
		},
	}
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive dispatcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			noWatch, _ := cmd.Flags().GetBool("no-watch")
			latch, _ := cmd.Flags().GetBool("latch")
			if latch {
				cfg.TUI.Latch = true
			}
			return executeRun(path, cfg, !noWatch)
		},
	}
	cmd.Flags().Bool("no-watch", false, "do not reload the config when it changes")
	cmd.Flags().Bool("latch", false, "start in latch input mode")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d commands)\n", path, len(cfg.Commands))
			return nil
		},
	}
}

func setsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "List command sets and their chords",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return printSets(cmd.OutOrStdout(), cfg)
		},
	}
}

func replayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay [session.jsonl|latest]",
		Short: "Replay a recorded session through the current config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			target := "latest"
			if len(args) == 1 {
				target = args[0]
			}
			path, err := sessionPath(cfg, target)
			if err != nil {
				return err
			}
			recs, err := store.ReadFile(path)
			if err != nil {
				return err
			}
			log := newStderrLogger(cfg)
			res, err := replay(cmd.OutOrStdout(), cfg, recs, &log)
			if err != nil {
				return err
			}
			printReplaySummary(cmd.OutOrStdout(), path, res)
			return nil
		},
	}
}

// sessionPath resolves "latest" to the newest session log.
func sessionPath(cfg *config.Config, target string) (string, error) {
	if target != "latest" {
		return target, nil
	}
	if cfg.Session.Dir == "" {
		return "", fmt.Errorf("session.dir is not set; pass a session file")
	}
	return store.Latest(cfg.Session.Dir)
}

func printReplaySummary(w io.Writer, path string, res replayResult) {
	fmt.Fprintln(w, "Replay")
	fmt.Fprintln(w, "──────")
	fmt.Fprintf(w, "  %-12s %s\n", "session:", path)
	fmt.Fprintf(w, "  %-12s %s\n", "policy:", res.Policy)
	fmt.Fprintf(w, "  %-12s %d\n", "events:", res.Events)
	fmt.Fprintf(w, "  %-12s %d\n", "fires:", res.Fires)
	fmt.Fprintf(w, "  %-12s %d\n", "recorded:", res.Recorded)
	if res.Quit {
		fmt.Fprintln(w, "  stopped by a quit command")
	}
}
