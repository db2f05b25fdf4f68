package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"a", "A", true},
		{"A", "Shift+A", true},
		{"7", "7", true},
		{" ", "Space", true},
		{"ctrl+s", "Ctrl+S", true},
		{"alt+x", "Alt+X", true},
		{"alt+ctrl+s", "Alt+Ctrl+S", true},
		{"ctrl+shift+up", "Ctrl+Shift+Up", true},
		{"shift+tab", "Shift+Tab", true},
		{"esc", "Esc", true},
		{"enter", "Enter", true},
		{"backspace", "Backspace", true},
		{"pgup", "PageUp", true},
		{"delete", "Delete", true},
		{"f5", "F5", true},
		{"home", "Home", true},
		{"!", "", false},
		{"é", "", false},
		{"ctrl+@", "", false},
		{"ctrl+", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, ok := translateKey(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("translateKey(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got := keys.Format(p.Chord()); got != tt.want {
				t.Errorf("translateKey(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestTranslate_KeyMsg(t *testing.T) {
	p, ok := translate(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !ok || keys.Format(p.Chord()) != "Ctrl+S" {
		t.Errorf("ctrl+s: got %v, %v", p, ok)
	}

	p, ok = translate(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q"), Alt: true})
	if !ok || keys.Format(p.Chord()) != "Alt+Q" {
		t.Errorf("alt+q: got %v, %v", p, ok)
	}

	if _, ok := translate(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc"), Paste: true}); ok {
		t.Error("pasted text should not translate")
	}
}

func TestTerminalCode(t *testing.T) {
	tests := []struct {
		name string
		want keys.Code
	}{
		{"esc", keys.Escape},
		{"pgdown", keys.PageDown},
		{"f1", keys.Function(1)},
		{"f12", keys.Function(12)},
		{"f", keys.None},
		{"fx", keys.None},
		{"ctrl", keys.None},
		{"", keys.None},
	}

	for _, tt := range tests {
		if got := terminalCode(tt.name); got != tt.want {
			t.Errorf("terminalCode(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
