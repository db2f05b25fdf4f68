// Package keys defines the key identifiers and raw key events consumed by the
// command dispatcher.
//
// A Code is a numeric key code in the style of the DOM KeyboardEvent.keyCode
// values (Ctrl = 17, A = 65, F1 = 112). Names exist only for display; chords
// are always expressed as codes.
package keys

import (
	"fmt"
	"time"
	"unicode"
)

// Code identifies a physical key.
type Code uint16

// Common key codes.
const (
	None      Code = 0
	Backspace Code = 8
	Tab       Code = 9
	Enter     Code = 13
	Shift     Code = 16
	Ctrl      Code = 17
	Alt       Code = 18
	Pause     Code = 19
	CapsLock  Code = 20
	Escape    Code = 27
	Space     Code = 32
	PageUp    Code = 33
	PageDown  Code = 34
	End       Code = 35
	Home      Code = 36
	Left      Code = 37
	Up        Code = 38
	Right     Code = 39
	Down      Code = 40
	Insert    Code = 45
	Delete    Code = 46
	Digit0    Code = 48
	Digit9    Code = 57
	A         Code = 65
	S         Code = 83
	Z         Code = 90
	Meta      Code = 91
	F1        Code = 112
	F12       Code = 123
)

var codeNames = map[Code]string{
	Backspace: "Backspace",
	Tab:       "Tab",
	Enter:     "Enter",
	Shift:     "Shift",
	Ctrl:      "Ctrl",
	Alt:       "Alt",
	Pause:     "Pause",
	CapsLock:  "CapsLock",
	Escape:    "Esc",
	Space:     "Space",
	PageUp:    "PageUp",
	PageDown:  "PageDown",
	End:       "End",
	Home:      "Home",
	Left:      "Left",
	Up:        "Up",
	Right:     "Right",
	Down:      "Down",
	Insert:    "Insert",
	Delete:    "Delete",
	Meta:      "Meta",
}

// String returns a display name for the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	switch {
	case c >= A && c <= Z, c >= Digit0 && c <= Digit9:
		return string(rune(c))
	case c >= F1 && c <= F12:
		return fmt.Sprintf("F%d", c-F1+1)
	case c == None:
		return "None"
	default:
		return fmt.Sprintf("Key(%d)", uint16(c))
	}
}

// FromRune returns the code of the key that produces r on a US layout, for
// letters, digits and space. It returns None for anything else.
func FromRune(r rune) Code {
	switch {
	case r >= 'a' && r <= 'z':
		return Code(unicode.ToUpper(r))
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return Code(r)
	case r == ' ':
		return Space
	}
	return None
}

// Function returns the code for function key Fn (1-12), or None.
func Function(n int) Code {
	if n < 1 || n > 12 {
		return None
	}
	return F1 + Code(n-1)
}

// Kind is the type of a raw key transition.
type Kind int

const (
	KeyDown Kind = iota
	KeyUp
)

// String returns "keydown" or "keyup".
func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "keydown":
		return KeyDown, true
	case "keyup":
		return KeyUp, true
	}
	return 0, false
}

// Event is a single raw key transition delivered by a listening element.
type Event struct {
	Kind Kind
	Code Code

	// Target is the name of the element the event originated at. Elements
	// stamp it on delivery.
	Target string

	Time time.Time
}

// DownEvent returns a key-down event for c stamped with the current time.
func DownEvent(c Code) Event {
	return Event{Kind: KeyDown, Code: c, Time: time.Now()}
}

// UpEvent returns a key-up event for c stamped with the current time.
func UpEvent(c Code) Event {
	return Event{Kind: KeyUp, Code: c, Time: time.Now()}
}

// Format renders a chord as "Ctrl+S".
func Format(chord []Code) string {
	if len(chord) == 0 {
		return "(empty)"
	}
	s := chord[0].String()
	for _, c := range chord[1:] {
		s += "+" + c.String()
	}
	return s
}
