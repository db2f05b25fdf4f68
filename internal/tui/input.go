package tui

import (
	"strconv"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
)

// keyPress is a terminal key translated into key codes: the modifiers that
// were held with it and the key itself.
type keyPress struct {
	Mods []keys.Code
	Code keys.Code
}

// Chord returns mods followed by the key.
func (p keyPress) Chord() []keys.Code {
	return append(append([]keys.Code(nil), p.Mods...), p.Code)
}

// terminalKeys maps bubbletea's names for non-rune keys to key codes.
var terminalKeys = map[string]keys.Code{
	"enter":     keys.Enter,
	"esc":       keys.Escape,
	"backspace": keys.Backspace,
	"tab":       keys.Tab,
	"space":     keys.Space,
	"up":        keys.Up,
	"down":      keys.Down,
	"left":      keys.Left,
	"right":     keys.Right,
	"home":      keys.Home,
	"end":       keys.End,
	"pgup":      keys.PageUp,
	"pgdown":    keys.PageDown,
	"insert":    keys.Insert,
	"delete":    keys.Delete,
}

var modifierPrefixes = []struct {
	prefix string
	code   keys.Code
}{
	{"ctrl+", keys.Ctrl},
	{"alt+", keys.Alt},
	{"shift+", keys.Shift},
}

// translate maps a bubbletea key message onto key codes. ok is false for
// keys without a code (punctuation, non-ASCII runes, pasted text).
func translate(msg tea.KeyMsg) (keyPress, bool) {
	if msg.Paste {
		return keyPress{}, false
	}
	return translateKey(msg.String())
}

// translateKey parses bubbletea's key string form, e.g. "ctrl+s", "alt+A",
// "shift+tab", "f5" or " ".
func translateKey(s string) (keyPress, bool) {
	if s == " " {
		return keyPress{Code: keys.Space}, true
	}

	var p keyPress
	rest := s
	for stripped := true; stripped; {
		stripped = false
		for _, m := range modifierPrefixes {
			if len(rest) > len(m.prefix) && strings.HasPrefix(rest, m.prefix) {
				rest = rest[len(m.prefix):]
				p.Mods = addMod(p.Mods, m.code)
				stripped = true
			}
		}
	}

	if r := []rune(rest); len(r) == 1 {
		if unicode.IsUpper(r[0]) {
			p.Mods = addMod(p.Mods, keys.Shift)
		}
		p.Code = keys.FromRune(r[0])
	} else {
		p.Code = terminalCode(rest)
	}
	if p.Code == keys.None {
		return keyPress{}, false
	}
	return p, true
}

func addMod(mods []keys.Code, c keys.Code) []keys.Code {
	for _, m := range mods {
		if m == c {
			return mods
		}
	}
	return append(mods, c)
}

// terminalCode returns the code for a named terminal key such as "esc" or
// "f5", or None.
func terminalCode(name string) keys.Code {
	if c, ok := terminalKeys[name]; ok {
		return c
	}
	if n, err := strconv.Atoi(strings.TrimPrefix(name, "f")); err == nil && strings.HasPrefix(name, "f") {
		return keys.Function(n)
	}
	return keys.None
}
