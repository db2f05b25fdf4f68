package command

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/surface"
)

// Command is a chord bound to a callback. Commands are immutable once
// defined; defining the same chord again adds a second command.
type Command struct {
	ID       uuid.UUID
	Set      string
	Chord    []keys.Code
	Callback func()

	// Target is the element the command is scoped to. Nil means the root
	// element, whose commands are evaluated for events from every element.
	Target surface.Surface
}

// String renders the command as "default:Ctrl+S".
func (c *Command) String() string {
	return c.Set + ":" + keys.Format(c.Chord)
}

// Set is a named, insertion-ordered collection of commands.
type Set struct {
	Name     string
	commands []*Command
}

func newSet(name string) *Set {
	return &Set{Name: name}
}

// Len returns the number of commands in the set.
func (s *Set) Len() int { return len(s.commands) }

// set returns the named set, creating it on first reference.
func (d *Dispatcher) set(name string) *Set {
	s, ok := d.sets[name]
	if !ok {
		s = newSet(name)
		d.sets[name] = s
	}
	return s
}

// DefineCommand appends a command to the named set, creating the set if it
// does not exist. target scopes the command to one element; nil scopes it to
// the root. If the dispatcher is enabled and target is an element it does not
// yet listen on, listeners are attached to it immediately.
func (d *Dispatcher) DefineCommand(setName string, chord []keys.Code, callback func(), target surface.Surface) *Command {
	if target == d.root {
		target = nil
	}
	cmd := &Command{
		ID:       uuid.New(),
		Set:      setName,
		Chord:    append([]keys.Code(nil), chord...),
		Callback: callback,
		Target:   target,
	}
	s := d.set(setName)
	s.commands = append(s.commands, cmd)

	if target != nil && d.addTarget(target) && d.enabled && len(d.bindings) > 0 {
		d.attach(target)
	}

	d.log.Debug().
		Str("set", setName).
		Str("chord", keys.Format(chord)).
		Str("id", cmd.ID.String()).
		Msg("command defined")
	return cmd
}

// Register is meant to accept a human-readable chord such as "ctrl+s" and
// translate it into key codes. Translation is not implemented: Register
// always fails with ErrNotImplemented and leaves the registry untouched.
// Use DefineCommand with key codes instead.
func (d *Dispatcher) Register(chord string, callback func(), setName string) error {
	if setName == "" {
		setName = DefaultSet
	}
	return fmt.Errorf("command: register %q in set %q: %w", chord, setName, ErrNotImplemented)
}

// Sets returns the names of all sets, "default" first and the rest sorted.
func (d *Dispatcher) Sets() []string {
	names := make([]string, 0, len(d.sets))
	for name := range d.sets {
		if name != DefaultSet {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultSet}, names...)
}

// HasSet reports whether a set with the given name exists.
func (d *Dispatcher) HasSet(name string) bool {
	_, ok := d.sets[name]
	return ok
}

// Commands returns a copy of the commands in the named set, in definition
// order. It returns nil for an unknown set.
func (d *Dispatcher) Commands(setName string) []*Command {
	s, ok := d.sets[setName]
	if !ok {
		return nil
	}
	out := make([]*Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// addTarget records target as a listening element. It reports whether the
// element was new.
func (d *Dispatcher) addTarget(target surface.Surface) bool {
	for _, t := range d.targets {
		if t == target {
			return false
		}
	}
	d.targets = append(d.targets, target)
	return true
}
