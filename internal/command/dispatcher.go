// Package command implements the keyboard command dispatcher: it tracks held
// keys, matches them against chords registered in named command sets and
// invokes the command callbacks when a chord is satisfied.
//
// Exactly one command set is active at a time, and the reserved "default" set
// is always evaluated in addition to it. Swapping the active set swaps the
// whole keybinding context without unregistering anything.
//
// A Dispatcher is driven synchronously by the key events of its listening
// elements and is not safe for concurrent use.
package command

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/surface"
)

// DefaultSet is the name of the command set that is always evaluated.
const DefaultSet = "default"

// FirePolicy controls whether an already-satisfied chord fires again on
// subsequent key-downs.
type FirePolicy int

const (
	// FireRepeat fires a command on every key-down that leaves its chord
	// satisfied, including auto-repeat and unrelated key-downs.
	FireRepeat FirePolicy = iota

	// FireEdge fires a command only when its chord goes from unsatisfied to
	// satisfied. Releasing any chord key re-arms it.
	FireEdge
)

// String returns "repeat" or "edge".
func (p FirePolicy) String() string {
	switch p {
	case FireRepeat:
		return "repeat"
	case FireEdge:
		return "edge"
	default:
		return fmt.Sprintf("FirePolicy(%d)", int(p))
	}
}

// ParseFirePolicy parses "repeat" or "edge". The empty string is FireRepeat.
func ParseFirePolicy(s string) (FirePolicy, error) {
	switch s {
	case "", "repeat":
		return FireRepeat, nil
	case "edge":
		return FireEdge, nil
	}
	return 0, fmt.Errorf("command: unknown fire policy %q (want \"repeat\" or \"edge\")", s)
}

// Options configures a Dispatcher.
type Options struct {
	// Enabled seeds the enabled flag. It is informational only: no listeners
	// are attached until Enable is called.
	Enabled bool

	// Policy selects repeat or edge-triggered firing.
	Policy FirePolicy

	// ReleaseOnDisable clears the held-key state when the dispatcher is
	// disabled, so keys released while detached cannot stay stuck.
	ReleaseOnDisable bool

	// Root is the shared listening element. Nil means a fresh element named
	// "root".
	Root surface.Surface

	// Logger receives debug output. Nil logs nothing.
	Logger *zerolog.Logger
}

type bindingKey struct {
	target surface.Surface
	kind   keys.Kind
}

// Dispatcher owns the held-key state, the command-set registry, the active
// set and the listener bindings.
type Dispatcher struct {
	opts Options
	log  zerolog.Logger
	root surface.Surface

	pressed map[keys.Code]struct{}
	sets    map[string]*Set
	active  string
	enabled bool

	// targets lists every element the dispatcher listens on when enabled,
	// root first, then command targets in first-use order.
	targets  []surface.Surface
	bindings map[bindingKey]surface.ListenerID

	// latched records commands whose chord was satisfied at the last
	// evaluation. Only maintained under FireEdge.
	latched map[*Command]bool

	observers     []*observer
	fireObservers []*fireObserver
}

// New creates a Dispatcher with an empty "default" set. No listeners are
// attached regardless of opts.Enabled.
func New(opts Options) *Dispatcher {
	root := opts.Root
	if root == nil {
		root = surface.NewElement("root")
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Dispatcher{
		opts:     opts,
		log:      log.With().Str("component", "dispatcher").Logger(),
		root:     root,
		pressed:  make(map[keys.Code]struct{}),
		sets:     map[string]*Set{DefaultSet: newSet(DefaultSet)},
		enabled:  opts.Enabled,
		targets:  []surface.Surface{root},
		bindings: make(map[bindingKey]surface.ListenerID),
		latched:  make(map[*Command]bool),
	}
}

// Root returns the shared listening element.
func (d *Dispatcher) Root() surface.Surface { return d.root }

// Enabled reports whether listeners are attached (or, before the first
// Enable/Disable call, the flag passed to New).
func (d *Dispatcher) Enabled() bool { return d.enabled }

// Policy returns the configured fire policy.
func (d *Dispatcher) Policy() FirePolicy { return d.opts.Policy }

// Bindings returns the number of attached listener bindings.
func (d *Dispatcher) Bindings() int { return len(d.bindings) }

// Active returns the name of the active set, or "" when none is active.
func (d *Dispatcher) Active() string { return d.active }

// SetActive makes name the active set, creating it if needed. The empty
// string and "default" both mean no additional set is active.
func (d *Dispatcher) SetActive(name string) {
	if name == DefaultSet {
		name = ""
	}
	if name != "" {
		d.set(name)
	}
	if d.active != name {
		d.log.Debug().Str("from", d.active).Str("to", name).Msg("active set changed")
	}
	d.active = name
}

// IsPressed reports whether c is currently held.
func (d *Dispatcher) IsPressed(c keys.Code) bool {
	_, ok := d.pressed[c]
	return ok
}

// Pressed returns the held keys in ascending code order.
func (d *Dispatcher) Pressed() []keys.Code {
	out := make([]keys.Code, 0, len(d.pressed))
	for c := range d.pressed {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ReleaseAll forgets every held key without emitting notifications. Hosts
// call it when the listening element loses input focus, since keys released
// while unfocused never produce a key-up.
func (d *Dispatcher) ReleaseAll() {
	if len(d.pressed) > 0 {
		d.log.Debug().Int("keys", len(d.pressed)).Msg("releasing held keys")
	}
	clear(d.pressed)
	clear(d.latched)
}
