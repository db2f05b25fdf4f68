// Package panels provides the panel components for the chord TUI.
package panels

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HeaderProps holds all data needed to render the header bar.
// Plain strings keep this package free of the dispatcher types.
type HeaderProps struct {
	ConfigPath string
	Enabled    bool
	ActiveSet  string // "" when only the default set is active
	Mode       string // "TAP" or "LATCH"
	Held       string // formatted held chord, "" when nothing is held
	Fires      int
	Elapsed    time.Duration
	Clock      time.Time
}

// AbbreviatePath returns a display-friendly path, replacing the home directory
// with "~" and converting backslashes to forward slashes.
func AbbreviatePath(path string) string {
	if path == "" {
		return ""
	}
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(path, home) {
		path = "~" + path[len(home):]
	}
	return strings.ReplaceAll(path, "\\", "/")
}

// FormatElapsed renders a duration as a compact string: "5s", "2m30s", "1h15m".
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// RenderHeader renders the header bar.
// accentStyle is applied to the full header bar width.
func RenderHeader(props HeaderProps, width int, accentStyle lipgloss.Style) string {
	name := "KeyChord"
	if props.ConfigPath != "" {
		name = "KeyChord · " + filepath.Base(props.ConfigPath)
	}
	parts := []string{"⌨ " + name}

	state := "○ DISABLED"
	if props.Enabled {
		state = "● ENABLED"
	}
	parts = append(parts, state)

	set := props.ActiveSet
	if set == "" {
		set = "—"
	}
	parts = append(parts, "set: "+set)

	if props.Mode != "" {
		parts = append(parts, "mode: "+props.Mode)
	}

	held := props.Held
	if held == "" {
		held = "—"
	}
	parts = append(parts,
		"held: "+held,
		fmt.Sprintf("fires: %d", props.Fires),
	)
	if props.Elapsed > 0 {
		parts = append(parts, "up: "+FormatElapsed(props.Elapsed))
	}
	if !props.Clock.IsZero() {
		parts = append(parts, props.Clock.Format("15:04"))
	}

	content := strings.Join(parts, "  │  ")
	return accentStyle.Width(width).Render(content)
}
