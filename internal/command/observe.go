package command

import (
	"time"

	"github.com/google/uuid"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
)

// Notification describes a raw key transition. One is emitted for every
// key-down and key-up the dispatcher receives, whether or not a command
// matched.
type Notification struct {
	Kind   keys.Kind
	Code   keys.Code
	Target string
	Time   time.Time
}

// Fire describes a command invocation. It is emitted after the callback
// returns.
type Fire struct {
	CommandID uuid.UUID
	Set       string
	Chord     []keys.Code
	Trigger   keys.Code
	Time      time.Time
}

type observer struct{ fn func(Notification) }

type fireObserver struct{ fn func(Fire) }

// Subscribe registers fn for dispatch notifications. The returned function
// removes the subscription; calling it more than once is harmless.
func (d *Dispatcher) Subscribe(fn func(Notification)) (unsubscribe func()) {
	o := &observer{fn: fn}
	d.observers = append(d.observers, o)
	return func() {
		for i, cur := range d.observers {
			if cur == o {
				d.observers = append(d.observers[:i], d.observers[i+1:]...)
				return
			}
		}
	}
}

// OnFire registers fn for command invocations.
func (d *Dispatcher) OnFire(fn func(Fire)) (unsubscribe func()) {
	o := &fireObserver{fn: fn}
	d.fireObservers = append(d.fireObservers, o)
	return func() {
		for i, cur := range d.fireObservers {
			if cur == o {
				d.fireObservers = append(d.fireObservers[:i], d.fireObservers[i+1:]...)
				return
			}
		}
	}
}

func (d *Dispatcher) notify(n Notification) {
	obs := make([]*observer, len(d.observers))
	copy(obs, d.observers)
	for _, o := range obs {
		o.fn(n)
	}
}

func (d *Dispatcher) notifyFire(f Fire) {
	obs := make([]*fireObserver, len(d.fireObservers))
	copy(obs, d.fireObservers)
	for _, o := range obs {
		o.fn(f)
	}
}
