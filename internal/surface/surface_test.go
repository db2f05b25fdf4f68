package surface

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
)

// Compile-time check: *Element implements Surface.
var _ Surface = (*Element)(nil)

func TestEmit_RoutesByKind(t *testing.T) {
	el := NewElement("root")
	var downs, ups int
	el.Listen(keys.KeyDown, func(keys.Event) { downs++ })
	el.Listen(keys.KeyUp, func(keys.Event) { ups++ })

	el.Press(keys.A)
	el.Press(keys.S)
	el.Release(keys.A)

	if downs != 2 {
		t.Errorf("downs = %d, want 2", downs)
	}
	if ups != 1 {
		t.Errorf("ups = %d, want 1", ups)
	}
}

func TestEmit_StampsTarget(t *testing.T) {
	el := NewElement("canvas")
	var got keys.Event
	el.Listen(keys.KeyDown, func(ev keys.Event) { got = ev })

	el.Emit(keys.Event{Kind: keys.KeyDown, Code: keys.A, Target: "elsewhere"})

	if got.Target != "canvas" {
		t.Errorf("Target = %q, want canvas", got.Target)
	}
	if got.Code != keys.A {
		t.Errorf("Code = %v, want A", got.Code)
	}
}

func TestUnlisten(t *testing.T) {
	el := NewElement("root")
	calls := 0
	id := el.Listen(keys.KeyDown, func(keys.Event) { calls++ })

	el.Unlisten(id)
	el.Unlisten(id) // second removal is a no-op
	el.Press(keys.A)

	if calls != 0 {
		t.Errorf("calls = %d after Unlisten, want 0", calls)
	}
	if n := el.Listeners(keys.KeyDown); n != 0 {
		t.Errorf("Listeners = %d, want 0", n)
	}
}

func TestEmit_UnlistenDuringDelivery(t *testing.T) {
	el := NewElement("root")
	var second int
	var firstID ListenerID
	firstID = el.Listen(keys.KeyDown, func(keys.Event) { el.Unlisten(firstID) })
	el.Listen(keys.KeyDown, func(keys.Event) { second++ })

	el.Press(keys.A)
	el.Press(keys.A)

	if second != 2 {
		t.Errorf("second listener calls = %d, want 2", second)
	}
	if n := el.Listeners(keys.KeyDown); n != 1 {
		t.Errorf("Listeners = %d, want 1", n)
	}
}
