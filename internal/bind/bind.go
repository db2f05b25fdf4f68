// Package bind builds a command dispatcher from configuration: it maps each
// configured command onto DefineCommand and turns its action into a callback.
package bind

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/command"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/config"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/surface"
)

// Host receives the actions that reach outside the dispatcher.
type Host interface {
	Echo(message string)
	Quit()
}

// Elements maps the element names used in config (see config.ElementLog)
// to surfaces. The root surface is passed separately.
type Elements map[string]surface.Surface

// Bound pairs a defined command with the config entry it came from.
type Bound struct {
	Command *command.Command
	Config  config.CommandConfig
}

// Describe returns a short human description of the bound action, such as
// "echo saved" or "activate edit".
func (b Bound) Describe() string {
	if b.Config.Arg == "" {
		return b.Config.Action
	}
	return b.Config.Action + " " + b.Config.Arg
}

// Options converts dispatcher config into command.Options.
func Options(cfg config.DispatcherConfig, root surface.Surface, log *zerolog.Logger) (command.Options, error) {
	policy, err := command.ParseFirePolicy(cfg.FirePolicy)
	if err != nil {
		return command.Options{}, err
	}
	return command.Options{
		Enabled:          cfg.Enabled,
		Policy:           policy,
		ReleaseOnDisable: cfg.ReleaseOnDisable,
		Root:             root,
		Logger:           log,
	}, nil
}

// New creates a dispatcher for cfg, defines every configured command,
// activates the configured set and enables it when cfg.Dispatcher.Enabled.
func New(cfg *config.Config, root surface.Surface, elems Elements, host Host, log *zerolog.Logger) (*command.Dispatcher, []Bound, error) {
	opts, err := Options(cfg.Dispatcher, root, log)
	if err != nil {
		return nil, nil, err
	}
	d := command.New(opts)
	bound, err := Define(d, cfg.Commands, elems, host)
	if err != nil {
		return nil, nil, err
	}
	d.SetActive(cfg.Dispatcher.ActiveSet)
	if cfg.Dispatcher.Enabled {
		d.Enable()
	}
	return d, bound, nil
}

// Define registers cmds on d. It stops at the first command that cannot be
// bound and returns the commands defined so far.
func Define(d *command.Dispatcher, cmds []config.CommandConfig, elems Elements, host Host) ([]Bound, error) {
	defined := make([]Bound, 0, len(cmds))
	for i, c := range cmds {
		chord := c.Codes()
		var target surface.Surface
		if c.Target != config.ElementRoot {
			el, ok := elems[c.Target]
			if !ok {
				return defined, fmt.Errorf("bind: commands[%d]: unknown target %q", i, c.Target)
			}
			target = el
		}
		cb, err := Action(d, c, chord, host)
		if err != nil {
			return defined, fmt.Errorf("bind: commands[%d]: %w", i, err)
		}
		defined = append(defined, Bound{
			Command: d.DefineCommand(c.SetName(), chord, cb, target),
			Config:  c,
		})
	}
	return defined, nil
}

// Action returns the callback for a configured command.
func Action(d *command.Dispatcher, c config.CommandConfig, chord []keys.Code, host Host) (func(), error) {
	switch c.Action {
	case config.ActionEcho:
		msg := c.Arg
		if msg == "" {
			msg = keys.Format(chord)
		}
		return func() {
			if host != nil {
				host.Echo(msg)
			}
		}, nil
	case config.ActionActivate:
		set := c.Arg
		return func() { d.SetActive(set) }, nil
	case config.ActionDeactivate:
		return func() { d.SetActive("") }, nil
	case config.ActionDisable:
		return d.Disable, nil
	case config.ActionQuit:
		return func() {
			if host != nil {
				host.Quit()
			}
		}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", c.Action)
	}
}
