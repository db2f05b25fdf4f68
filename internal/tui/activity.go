package tui

import (
	"time"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/command"
)

// entryKind classifies a line in the activity log.
type entryKind int

const (
	entryKey    entryKind = iota // raw key transition
	entryFire                    // command invocation
	entryEcho                    // output of an echo action
	entryNotice                  // state change made by the TUI itself
	entryError
)

// entry is one line of the activity log before rendering.
type entry struct {
	kind entryKind
	time time.Time
	text string
	note command.Notification
	fire command.Fire
}

// activity collects what happened during a dispatch. Dispatcher observers
// and command callbacks run inside Update, so they append here and Update
// drains the buffer once the event has been delivered. It is shared by
// pointer across Model copies and implements bind.Host.
type activity struct {
	entries []entry
	quit    bool
	now     func() time.Time
}

func newActivity() *activity {
	return &activity{now: time.Now}
}

func (a *activity) onNotification(n command.Notification) {
	a.entries = append(a.entries, entry{kind: entryKey, time: n.Time, note: n})
}

func (a *activity) onFire(f command.Fire) {
	a.entries = append(a.entries, entry{kind: entryFire, time: f.Time, fire: f})
}

// Echo implements bind.Host.
func (a *activity) Echo(message string) {
	a.entries = append(a.entries, entry{kind: entryEcho, time: a.now(), text: message})
}

// Quit implements bind.Host.
func (a *activity) Quit() { a.quit = true }

func (a *activity) notice(text string) {
	a.entries = append(a.entries, entry{kind: entryNotice, time: a.now(), text: text})
}

func (a *activity) error(err error) {
	a.entries = append(a.entries, entry{kind: entryError, time: a.now(), text: err.Error()})
}

// drain returns the buffered entries and empties the buffer.
func (a *activity) drain() []entry {
	out := a.entries
	a.entries = nil
	return out
}
