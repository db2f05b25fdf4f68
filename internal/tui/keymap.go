package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the keys the TUI handles itself. They are never forwarded to
// the dispatcher, so apart from tab and ctrl+c they are punctuation keys
// that have no key code.
type KeyMap struct {
	NextPanel  key.Binding
	PrevPanel  key.Binding
	PrevSet    key.Binding
	NextSet    key.Binding
	ToggleMode key.Binding
	Toggle     key.Binding
	Release    key.Binding
	Follow     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var _ help.KeyMap = KeyMap{}

// DefaultKeyMap returns the default TUI bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		PrevPanel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		PrevSet: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev set"),
		),
		NextSet: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next set"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("~"),
			key.WithHelp("~", "tap/latch"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("!"),
			key.WithHelp("!", "enable/disable"),
		),
		Release: key.NewBinding(
			key.WithKeys("\\"),
			key.WithHelp("\\", "release all"),
		),
		Follow: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("=", "follow log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMode, k.Toggle, k.Release, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPanel, k.PrevPanel, k.PrevSet, k.NextSet},
		{k.ToggleMode, k.Toggle, k.Release, k.Follow},
		{k.Help, k.Quit},
	}
}

// Reserved reports whether a terminal key string is handled by the TUI
// rather than forwarded to the dispatcher.
func (k KeyMap) Reserved(s string) bool {
	for _, b := range k.all() {
		for _, bk := range b.Keys() {
			if bk == s {
				return true
			}
		}
	}
	return false
}

func (k KeyMap) all() []key.Binding {
	return []key.Binding{k.NextPanel, k.PrevPanel, k.PrevSet, k.NextSet, k.ToggleMode, k.Toggle, k.Release, k.Follow, k.Help, k.Quit}
}
