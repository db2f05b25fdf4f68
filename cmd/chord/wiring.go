package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/command"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/config"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/logging"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/notify"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/store"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/tui"
)

// loadConfig resolves the --config flag (or searches upwards), loads and
// validates the file.
func loadConfig(cmd *cobra.Command) (string, *config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		found, err := config.Find()
		if err != nil {
			return "", nil, err
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		return "", nil, err
	}
	if err := cfg.Validate(); err != nil {
		return "", nil, fmt.Errorf("config %s: %w", path, err)
	}
	return path, cfg, nil
}

func logConfig(cfg *config.Config) logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Log.Level)
	if cfg.Log.Format != "" {
		lc.Format = cfg.Log.Format
	}
	return lc
}

// newStderrLogger builds the logger for non-interactive commands.
func newStderrLogger(cfg *config.Config) zerolog.Logger {
	return logging.New(logConfig(cfg), os.Stderr)
}

// newTUILogger builds the logger for the interactive dispatcher. Writing to
// the terminal would corrupt the TUI, so without a log file nothing is
// logged.
func newTUILogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	if cfg.Log.File == "" {
		return zerolog.Nop(), func() {}, nil
	}
	return logging.NewFile(logConfig(cfg), cfg.Log.File)
}

// openSession prunes old session logs and starts a new one. It returns nil
// when session logging is off.
func openSession(cfg *config.Config) (*store.JSONL, error) {
	if cfg.Session.Dir == "" {
		return nil, nil
	}
	// Keep room for the log about to be created.
	if cfg.Session.Retention > 0 {
		if err := store.Prune(cfg.Session.Dir, cfg.Session.Retention-1); err != nil {
			return nil, err
		}
	}
	return store.NewJSONL(cfg.Session.Dir)
}

// observers returns the hook that subscribes the session log and the
// notifier to each dispatcher the TUI creates. Either may be nil.
func observers(w store.Writer, n *notify.Notifier, log zerolog.Logger) func(*command.Dispatcher) {
	return func(d *command.Dispatcher) {
		if w != nil {
			d.Subscribe(func(note command.Notification) {
				if err := w.Append(store.FromNotification(note)); err != nil {
					log.Warn().Err(err).Msg("session log append failed")
				}
			})
			d.OnFire(func(f command.Fire) {
				if err := w.Append(store.FromFire(f)); err != nil {
					log.Warn().Err(err).Msg("session log append failed")
				}
			})
		}
		if n != nil {
			d.OnFire(n.Hook)
		}
	}
}

// executeRun wires logging, the session log, notifications and the config
// watcher around the TUI and runs it until the user quits.
func executeRun(path string, cfg *config.Config, watch bool) error {
	log, closeLog, err := newTUILogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := openSession(cfg)
	if err != nil {
		return err
	}
	var w store.Writer
	if sess != nil {
		w = sess
		defer func() { _ = sess.Close() }()
		log.Info().Str("path", sess.Path()).Msg("session log opened")
	}

	var n *notify.Notifier
	if cfg.Notifications.URL != "" {
		n = notify.New(cfg.Notifications.URL, "", cfg.Notifications.OnFire, log)
	}

	opts := tui.Options{
		Config:     cfg,
		ConfigPath: path,
		Attach:     observers(w, n, log),
		Logger:     &log,
	}
	if watch {
		watcher, err := config.Watch(path)
		if err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		} else {
			defer func() { _ = watcher.Close() }()
			opts.Reloads = watcher.Reloads()
		}
	}

	model, err := tui.New(opts)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	if sess != nil {
		if sum, err := sess.SessionSummary(); err == nil {
			log.Info().
				Str("session", sum.SessionID).
				Int("key_downs", sum.KeyDowns).
				Int("fires", sum.Fires).
				Msg("session closed")
		}
		if fires, err := sess.Fires(); err == nil {
			for _, f := range fires {
				log.Debug().
					Int("n", f.Number).
					Str("set", f.Set).
					Str("chord", keys.Format(f.Chord)).
					Time("at", f.At).
					Msg("fire")
			}
		}
	}
	return nil
}

// printSets lists the configured commands grouped by set, "default" first.
func printSets(w io.Writer, cfg *config.Config) error {
	bySet := make(map[string][]config.CommandConfig)
	var names []string
	for _, c := range cfg.Commands {
		name := c.SetName()
		if _, ok := bySet[name]; !ok && name != command.DefaultSet {
			names = append(names, name)
		}
		bySet[name] = append(bySet[name], c)
	}
	sort.Strings(names)
	names = append([]string{command.DefaultSet}, names...)

	active := cfg.Dispatcher.ActiveSet
	for _, name := range names {
		marker := " "
		if name == command.DefaultSet || name == active {
			marker = "●"
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
		cmds := bySet[name]
		if len(cmds) == 0 {
			fmt.Fprintln(w, "    (no commands)")
			continue
		}
		for _, c := range cmds {
			action := c.Action
			if c.Arg != "" {
				action += " " + c.Arg
			}
			if c.Target != "" {
				action += " @" + c.Target
			}
			fmt.Fprintf(w, "    %-16s %s\n", keys.Format(c.Codes()), action)
		}
	}
	return nil
}
