// Package config parses keychord.toml (or keychord.yaml) configuration: the
// dispatcher options, logging, session log, TUI appearance, notifications and
// the command bindings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/command"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
)

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// FileNames are the config file names searched for, in order.
var FileNames = []string{"keychord.toml", "keychord.yaml", "keychord.yml"}

// Element names a command can be scoped to. The empty string is the root.
const (
	ElementRoot = ""
	ElementLog  = "log"
	ElementSets = "sets"
)

// Actions understood by the command runner.
const (
	ActionEcho       = "echo"
	ActionActivate   = "activate"
	ActionDeactivate = "deactivate"
	ActionDisable    = "disable"
	ActionQuit       = "quit"
)

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level keychord configuration.
type Config struct {
	Dispatcher    DispatcherConfig    `toml:"dispatcher" yaml:"dispatcher"`
	Log           LogConfig           `toml:"log" yaml:"log"`
	Session       SessionConfig       `toml:"session" yaml:"session"`
	TUI           TUIConfig           `toml:"tui" yaml:"tui"`
	Notifications NotificationsConfig `toml:"notifications" yaml:"notifications"`
	Commands      []CommandConfig     `toml:"commands" yaml:"commands"`
}

// DispatcherConfig maps onto command.Options.
type DispatcherConfig struct {
	Enabled          bool   `toml:"enabled" yaml:"enabled"`
	FirePolicy       string `toml:"fire_policy" yaml:"fire_policy"`
	ReleaseOnDisable bool   `toml:"release_on_disable" yaml:"release_on_disable"`
	ReleaseOnBlur    bool   `toml:"release_on_blur" yaml:"release_on_blur"`
	ActiveSet        string `toml:"active_set" yaml:"active_set"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	File   string `toml:"file" yaml:"file"` // empty = stderr
}

// SessionConfig controls the JSONL session log.
type SessionConfig struct {
	Dir       string `toml:"dir" yaml:"dir"`             // empty = no session log
	Retention int    `toml:"retention" yaml:"retention"` // number of session logs to keep; 0 = unlimited
}

// TUIConfig controls the terminal UI.
type TUIConfig struct {
	AccentColor string `toml:"accent_color" yaml:"accent_color"`
	Latch       bool   `toml:"latch" yaml:"latch"`
}

// NotificationsConfig controls webhook notifications.
type NotificationsConfig struct {
	URL    string `toml:"url" yaml:"url"`
	OnFire bool   `toml:"on_fire" yaml:"on_fire"`
}

// CommandConfig binds a chord of numeric key codes to an action.
type CommandConfig struct {
	Set    string `toml:"set" yaml:"set"`
	Chord  []int  `toml:"chord" yaml:"chord"`
	Action string `toml:"action" yaml:"action"`
	Arg    string `toml:"arg" yaml:"arg"`
	Target string `toml:"target" yaml:"target"`
}

// SetName returns the command's set, defaulting to "default".
func (c CommandConfig) SetName() string {
	if c.Set == "" {
		return command.DefaultSet
	}
	return c.Set
}

// Codes returns the chord as key codes.
func (c CommandConfig) Codes() []keys.Code {
	out := make([]keys.Code, len(c.Chord))
	for i, k := range c.Chord {
		out[i] = keys.Code(k)
	}
	return out
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := command.ParseFirePolicy(c.Dispatcher.FirePolicy); err != nil {
		errs = append(errs, fmt.Errorf("dispatcher.fire_policy must be \"repeat\" or \"edge\""))
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of trace, debug, info, warn, error, off"))
	}
	if c.Log.Format != "" && c.Log.Format != "console" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format must be \"console\" or \"json\""))
	}

	if c.Session.Retention < 0 {
		errs = append(errs, fmt.Errorf("session.retention must be >= 0 (0 = unlimited)"))
	}

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	if c.Notifications.URL != "" {
		u, parseErr := url.ParseRequestURI(c.Notifications.URL)
		if parseErr != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("notifications.url must be a valid http or https URL"))
		}
	}

	for i, cmd := range c.Commands {
		errs = append(errs, cmd.validate(i)...)
	}

	return errors.Join(errs...)
}

func (c CommandConfig) validate(i int) []error {
	var errs []error
	prefix := fmt.Sprintf("commands[%d]", i)

	if len(c.Chord) == 0 {
		errs = append(errs, fmt.Errorf("%s.chord must not be empty", prefix))
	}
	for _, k := range c.Chord {
		if k <= 0 || k > 255 {
			errs = append(errs, fmt.Errorf("%s.chord: key code %d out of range 1-255", prefix, k))
		}
	}

	switch c.Action {
	case ActionEcho, ActionDeactivate, ActionDisable, ActionQuit:
	case ActionActivate:
		if c.Arg == "" {
			errs = append(errs, fmt.Errorf("%s.arg must name a set for action \"activate\"", prefix))
		}
	case "":
		errs = append(errs, fmt.Errorf("%s.action must not be empty", prefix))
	default:
		errs = append(errs, fmt.Errorf("%s.action %q is not one of echo, activate, deactivate, disable, quit", prefix, c.Action))
	}

	switch c.Target {
	case ElementRoot, ElementLog, ElementSets:
	default:
		errs = append(errs, fmt.Errorf("%s.target %q must be empty, %q or %q", prefix, c.Target, ElementLog, ElementSets))
	}
	return errs
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Dispatcher: DispatcherConfig{
			Enabled:          true,
			FirePolicy:       command.FireRepeat.String(),
			ReleaseOnDisable: false,
			ReleaseOnBlur:    true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			File:   filepath.Join(".keychord", "chord.log"),
		},
		Session: SessionConfig{
			Dir:       filepath.Join(".keychord", "sessions"),
			Retention: 20,
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
		},
		Notifications: NotificationsConfig{
			OnFire: true,
		},
	}
}

// Load reads the config from the given path. If path is empty, it walks up
// from the current working directory looking for one of FileNames. The
// format is chosen by extension. Unknown keys are an error (likely typos).
// Relative paths inside the file are resolved against its directory.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := Find()
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Defaults()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	default:
		err = decodeTOML(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.resolvePaths(filepath.Dir(path))
	return &cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s (possible typos?)", joinKeys(keys))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// resolvePaths makes relative file locations relative to dir.
func (c *Config) resolvePaths(dir string) {
	if c.Log.File != "" && !filepath.IsAbs(c.Log.File) {
		c.Log.File = filepath.Join(dir, c.Log.File)
	}
	if c.Session.Dir != "" && !filepath.IsAbs(c.Session.Dir) {
		c.Session.Dir = filepath.Join(dir, c.Session.Dir)
	}
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// Find walks up from the current directory looking for one of FileNames and
// returns the first match.
func Find() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: keychord.toml not found (searched up from %s)", dir)
		}
		dir = parent
	}
}
