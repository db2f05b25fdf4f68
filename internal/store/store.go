// Package store persists dispatcher activity to a JSONL session log and
// provides indexed read-back of the commands fired during a session. One
// store instance is created per chord run in cmd/chord/wiring.go.
package store

import (
	"time"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/command"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
)

// Record kinds.
const (
	KindKeyDown = "keydown"
	KindKeyUp   = "keyup"
	KindFire    = "fire"
)

// Record is one line of a session log: either a key transition or a
// command invocation.
type Record struct {
	Kind      string      `json:"kind"`
	Code      keys.Code   `json:"code,omitempty"`
	Target    string      `json:"target,omitempty"`
	Set       string      `json:"set,omitempty"`
	CommandID string      `json:"command_id,omitempty"`
	Chord     []keys.Code `json:"chord,omitempty"`
	Time      time.Time   `json:"time"`
}

// FromNotification converts a key transition into a Record.
func FromNotification(n command.Notification) Record {
	return Record{
		Kind:   n.Kind.String(),
		Code:   n.Code,
		Target: n.Target,
		Time:   n.Time,
	}
}

// FromFire converts a command invocation into a Record.
func FromFire(f command.Fire) Record {
	return Record{
		Kind:      KindFire,
		Code:      f.Trigger,
		Set:       f.Set,
		CommandID: f.CommandID.String(),
		Chord:     append([]keys.Code(nil), f.Chord...),
		Time:      f.Time,
	}
}

// Event returns the key event a keydown or keyup record describes. ok is
// false for fire records and unknown kinds.
func (r Record) Event() (ev keys.Event, ok bool) {
	kind, ok := keys.ParseKind(r.Kind)
	if !ok {
		return keys.Event{}, false
	}
	return keys.Event{Kind: kind, Code: r.Code, Target: r.Target, Time: r.Time}, true
}

// Writer persists records to durable storage.
type Writer interface {
	Append(rec Record) error
	Close() error
}

// Reader retrieves session data from storage.
type Reader interface {
	Fires() ([]FireSummary, error)
	FireLog(n int) (Record, error)
	SessionSummary() (SessionSummary, error)
}

// Store combines Writer and Reader into a single session-scoped handle.
type Store interface {
	Writer
	Reader
}

// FireSummary summarises one command invocation.
type FireSummary struct {
	Number int // 1-based, in firing order
	Set    string
	Chord  []keys.Code
	At     time.Time
}

// SessionSummary summarises the current session.
type SessionSummary struct {
	SessionID  string
	StartedAt  time.Time
	KeyDowns   int
	KeyUps     int
	Fires      int
	FiresBySet map[string]int
	LastFire   time.Time
}
