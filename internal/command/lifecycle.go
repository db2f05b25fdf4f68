package command

import (
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/surface"
)

// Enable attaches one key-down and one key-up listener to the root element
// and to every element a command is scoped to. It always disables first, so
// calling it repeatedly never stacks duplicate listeners.
func (d *Dispatcher) Enable() {
	d.Disable()
	for _, t := range d.targets {
		d.attach(t)
	}
	d.enabled = true
	d.log.Debug().Int("bindings", len(d.bindings)).Msg("dispatcher enabled")
}

// Disable detaches every listener and marks the dispatcher disabled. It is
// a no-op when nothing is attached. Held keys are kept unless the
// dispatcher was created with ReleaseOnDisable.
func (d *Dispatcher) Disable() {
	detached := len(d.bindings)
	for key, id := range d.bindings {
		key.target.Unlisten(id)
		delete(d.bindings, key)
	}
	d.enabled = false
	if d.opts.ReleaseOnDisable {
		clear(d.pressed)
		clear(d.latched)
	}
	if detached > 0 {
		d.log.Debug().Int("bindings", detached).Msg("dispatcher disabled")
	}
}

// attach binds the key-down and key-up handlers on target unless a binding
// for that element and event kind already exists.
func (d *Dispatcher) attach(target surface.Surface) {
	d.bind(target, keys.KeyDown, func(ev keys.Event) { d.onKeyDown(target, ev) })
	d.bind(target, keys.KeyUp, func(ev keys.Event) { d.onKeyUp(target, ev) })
}

func (d *Dispatcher) bind(target surface.Surface, kind keys.Kind, fn surface.Handler) {
	key := bindingKey{target: target, kind: kind}
	if _, ok := d.bindings[key]; ok {
		return
	}
	d.bindings[key] = target.Listen(kind, fn)
}
