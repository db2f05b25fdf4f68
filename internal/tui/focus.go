package tui

import "github.com/LISSConsulting/LISSTech.KeyChord/internal/config"

// FocusTarget identifies which panel currently holds keyboard focus. The
// focused panel is the element terminal keys originate from.
type FocusTarget int

const (
	FocusLog  FocusTarget = iota // activity log
	FocusSets                    // command sets
)

const focusCount = 2

// Next returns the next focus target in forward tab order.
func (f FocusTarget) Next() FocusTarget {
	return (f + 1) % focusCount
}

// Prev returns the previous focus target in reverse tab order.
func (f FocusTarget) Prev() FocusTarget {
	return (f + focusCount - 1) % focusCount
}

// String returns the panel's element name.
func (f FocusTarget) String() string {
	switch f {
	case FocusLog:
		return config.ElementLog
	case FocusSets:
		return config.ElementSets
	default:
		return "unknown"
	}
}

// InputMode controls how terminal keys become key transitions.
type InputMode int

const (
	// ModeTap turns every terminal key into a key-down followed by a
	// key-up, with any modifiers pressed around it.
	ModeTap InputMode = iota
	// ModeLatch toggles the held state of each key, so chords of any size
	// can be built up one key at a time. Modifiers stay held until released.
	ModeLatch
)

// Toggle switches between tap and latch.
func (m InputMode) Toggle() InputMode {
	if m == ModeTap {
		return ModeLatch
	}
	return ModeTap
}

// Label returns a short uppercase label for the mode.
func (m InputMode) Label() string {
	switch m {
	case ModeTap:
		return "TAP"
	case ModeLatch:
		return "LATCH"
	default:
		return "UNKNOWN"
	}
}
