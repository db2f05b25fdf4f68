// Package surface models the listening elements that deliver raw key events.
//
// The platform input source (a terminal, a window system, a replayed session)
// pushes events into an Element with Emit; the dispatcher subscribes to the
// elements it cares about with Listen and detaches with Unlisten.
package surface

import "github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"

// ListenerID identifies one subscription on a Surface.
type ListenerID uint64

// Handler receives key events.
type Handler func(keys.Event)

// Surface is a listening element.
type Surface interface {
	// Name identifies the element; it is stamped on every delivered event.
	Name() string

	// Listen subscribes fn to events of the given kind.
	Listen(kind keys.Kind, fn Handler) ListenerID

	// Unlisten removes a subscription. Unknown ids are ignored.
	Unlisten(id ListenerID)
}

type listener struct {
	id   ListenerID
	kind keys.Kind
	fn   Handler
}

// Element is an in-process Surface. It is not safe for concurrent use.
type Element struct {
	name      string
	nextID    ListenerID
	listeners []listener
}

// NewElement creates an element with the given name.
func NewElement(name string) *Element {
	return &Element{name: name}
}

// Name returns the element name.
func (e *Element) Name() string { return e.name }

// Listen subscribes fn to events of kind.
func (e *Element) Listen(kind keys.Kind, fn Handler) ListenerID {
	e.nextID++
	e.listeners = append(e.listeners, listener{id: e.nextID, kind: kind, fn: fn})
	return e.nextID
}

// Unlisten removes the subscription with the given id.
func (e *Element) Unlisten(id ListenerID) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Emit delivers ev to every listener of ev.Kind in subscription order.
// The listener list is snapshotted first so handlers may subscribe or
// unsubscribe without affecting the current delivery.
func (e *Element) Emit(ev keys.Event) {
	ev.Target = e.name
	snapshot := make([]listener, len(e.listeners))
	copy(snapshot, e.listeners)
	for _, l := range snapshot {
		if l.kind == ev.Kind {
			l.fn(ev)
		}
	}
}

// Press emits a key-down for c.
func (e *Element) Press(c keys.Code) { e.Emit(keys.DownEvent(c)) }

// Release emits a key-up for c.
func (e *Element) Release(c keys.Code) { e.Emit(keys.UpEvent(c)) }

// Listeners returns the number of subscriptions for kind.
func (e *Element) Listeners(kind keys.Kind) int {
	n := 0
	for _, l := range e.listeners {
		if l.kind == kind {
			n++
		}
	}
	return n
}
