package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
)

// Theme holds accent-color-derived styles.
type Theme struct {
	accent          lipgloss.Color
	accentStyle     lipgloss.Style // header background
	borderFocused   lipgloss.Style
	borderUnfocused lipgloss.Style
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accent: c,
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		borderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c),
		borderUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray),
	}
}

// Accent returns the accent color.
func (t Theme) Accent() lipgloss.Color { return t.accent }

// AccentHeaderStyle returns the style for the header bar.
func (t Theme) AccentHeaderStyle() lipgloss.Style {
	return t.accentStyle
}

// PanelBorderStyle returns the border style for a panel based on whether it
// currently holds keyboard focus.
func (t Theme) PanelBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return t.borderFocused
	}
	return t.borderUnfocused
}

// RenderEntry renders an activity entry as a single terminal line no wider
// than width.
func (t Theme) RenderEntry(e entry, width int) string {
	ts := timestampStyle.Render(fmt.Sprintf("[%s]", e.time.Format("15:04:05")))

	var body string
	switch e.kind {
	case entryKey:
		target := ""
		if e.note.Target != "" {
			target = timestampStyle.Render(" @" + e.note.Target)
		}
		if e.note.Kind == keys.KeyDown {
			body = keyDownStyle.Render("↓ "+e.note.Code.String()) + target
		} else {
			body = keyUpStyle.Render("↑ "+e.note.Code.String()) + target
		}
	case entryFire:
		body = fireStyle.Render(fmt.Sprintf("▶ %s:%s", e.fire.Set, keys.Format(e.fire.Chord)))
	case entryEcho:
		body = echoStyle.Render("» " + truncate(singleLine(e.text), width-14))
	case entryNotice:
		body = noticeStyle.Render(truncate(singleLine(e.text), width-12))
	case entryError:
		body = errorStyle.Render("✗ " + truncate(singleLine(e.text), width-14))
	default:
		body = infoStyle.Render(truncate(singleLine(e.text), width-12))
	}
	return ts + "  " + body
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n < 20 {
		n = 20
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// singleLine collapses newlines so an entry never spans rows.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
