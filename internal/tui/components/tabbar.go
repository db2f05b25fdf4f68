package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// TabBar is a row of labelled tabs with one active tab.
type TabBar struct {
	tabs        []string
	active      int
	activeStyle lipgloss.Style
}

// NewTabBar creates a TabBar with the given tab titles; the first tab is
// active and highlighted in accent.
func NewTabBar(tabs []string, accent lipgloss.Color) TabBar {
	return TabBar{
		tabs:        append([]string(nil), tabs...),
		activeStyle: lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}

// Active returns the index of the currently active tab.
func (t TabBar) Active() int {
	return t.active
}

// Current returns the label of the active tab, or "" if there are none.
func (t TabBar) Current() string {
	if len(t.tabs) == 0 {
		return ""
	}
	return t.tabs[t.active]
}

// Next returns a TabBar with the next tab active (wraps around).
func (t TabBar) Next() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.active + 1) % len(t.tabs)
	return t
}

// Prev returns a TabBar with the previous tab active (wraps around).
func (t TabBar) Prev() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.active + len(t.tabs) - 1) % len(t.tabs)
	return t
}

// Select makes the tab with the given label active. Unknown labels leave
// the bar unchanged.
func (t TabBar) Select(label string) TabBar {
	for i, l := range t.tabs {
		if l == label {
			t.active = i
			break
		}
	}
	return t
}

// SetTabs replaces the tab labels, keeping the active label when it is
// still present.
func (t TabBar) SetTabs(tabs []string) TabBar {
	cur := t.Current()
	t.tabs = append([]string(nil), tabs...)
	t.active = 0
	return t.Select(cur)
}

// View renders the tab bar as a single line.
func (t TabBar) View() string {
	if len(t.tabs) == 0 {
		return ""
	}
	parts := make([]string, len(t.tabs))
	for i, label := range t.tabs {
		if i == t.active {
			parts[i] = t.activeStyle.Render(label)
		} else {
			parts[i] = tabInactiveStyle.Render(label)
		}
	}
	return strings.Join(parts, " │ ")
}
