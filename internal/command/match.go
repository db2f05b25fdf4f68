package command

import (
	"time"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/surface"
)

// onKeyDown records the key, evaluates the default set and then the active
// set, fires every satisfied command and finally notifies observers.
func (d *Dispatcher) onKeyDown(origin surface.Surface, ev keys.Event) {
	d.pressed[ev.Code] = struct{}{}

	// Snapshot the candidates so callbacks that switch sets or define
	// commands only take effect from the next event.
	candidates := d.candidates(origin)
	for _, cmd := range candidates {
		if !d.shouldFire(cmd) {
			continue
		}
		d.fire(cmd, ev)
	}

	d.notify(Notification{Kind: keys.KeyDown, Code: ev.Code, Target: ev.Target, Time: eventTime(ev)})
}

// onKeyUp forgets the key and notifies observers. Commands are not
// evaluated on key-up.
func (d *Dispatcher) onKeyUp(_ surface.Surface, ev keys.Event) {
	delete(d.pressed, ev.Code)
	if d.opts.Policy == FireEdge {
		for cmd := range d.latched {
			if containsCode(cmd.Chord, ev.Code) {
				delete(d.latched, cmd)
			}
		}
	}
	d.notify(Notification{Kind: keys.KeyUp, Code: ev.Code, Target: ev.Target, Time: eventTime(ev)})
}

// candidates returns the commands eligible for an event from origin: the
// default set followed by the active set, restricted to root-scoped commands
// and commands scoped to origin.
func (d *Dispatcher) candidates(origin surface.Surface) []*Command {
	var out []*Command
	appendSet := func(name string) {
		s, ok := d.sets[name]
		if !ok {
			return
		}
		for _, cmd := range s.commands {
			if cmd.Target == nil || cmd.Target == origin {
				out = append(out, cmd)
			}
		}
	}
	appendSet(DefaultSet)
	if d.active != "" {
		appendSet(d.active)
	}
	return out
}

// shouldFire applies the chord rule and the fire policy.
func (d *Dispatcher) shouldFire(cmd *Command) bool {
	ok := d.satisfied(cmd.Chord)
	if d.opts.Policy != FireEdge {
		return ok
	}
	if !ok {
		delete(d.latched, cmd)
		return false
	}
	if d.latched[cmd] {
		return false
	}
	d.latched[cmd] = true
	return true
}

// satisfied reports whether every key of chord is held. Order does not
// matter; an empty chord is never satisfied.
func (d *Dispatcher) satisfied(chord []keys.Code) bool {
	if len(chord) == 0 {
		return false
	}
	for _, c := range chord {
		if _, ok := d.pressed[c]; !ok {
			return false
		}
	}
	return true
}

func (d *Dispatcher) fire(cmd *Command, ev keys.Event) {
	d.log.Debug().
		Str("command", cmd.String()).
		Str("trigger", ev.Code.String()).
		Msg("command fired")
	if cmd.Callback != nil {
		cmd.Callback()
	}
	d.notifyFire(Fire{
		CommandID: cmd.ID,
		Set:       cmd.Set,
		Chord:     cmd.Chord,
		Trigger:   ev.Code,
		Time:      eventTime(ev),
	})
}

func containsCode(chord []keys.Code, c keys.Code) bool {
	for _, k := range chord {
		if k == c {
			return true
		}
	}
	return false
}

func eventTime(ev keys.Event) time.Time {
	if ev.Time.IsZero() {
		return time.Now()
	}
	return ev.Time
}
