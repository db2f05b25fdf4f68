// Package tui provides the bubbletea + lipgloss terminal front-end for the
// chord dispatcher. The terminal is the platform input source: key presses
// are translated into key-down and key-up events on the focused panel.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/config"
)

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = config.DefaultAccentColor

var (
	colorWhite  = lipgloss.Color("#FAFAFA")
	colorGray   = lipgloss.Color("#888888")
	colorBlue   = lipgloss.Color("#5B9BD5")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorYellow = lipgloss.Color("#FFD93D")
	colorRed    = lipgloss.Color("#FF6B6B")
	colorOrange = lipgloss.Color("#FFA54F")
)

// Styles used across the TUI. Accent-dependent styles live on Theme.
var (
	timestampStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	keyDownStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	keyUpStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	fireStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	echoStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorWhite)
)
