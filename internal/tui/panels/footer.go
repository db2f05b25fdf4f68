package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Focus  string // "log" or "sets"
	Status string // transient status message
	Help   string // rendered key help
}

// RenderFooter renders the footer bar.
// Left side: focus and status. Right side: key help.
func RenderFooter(props FooterProps, width int) string {
	left := "focus: " + props.Focus
	if props.Focus == "" {
		left = "focus: —"
	}
	if props.Status != "" {
		left += "  " + props.Status
	}

	right := props.Help
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	return footerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
