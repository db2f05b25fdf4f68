// Package components provides reusable TUI components for the chord UI.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultMaxLines bounds the lines a LogView keeps.
const DefaultMaxLines = 2000

// LogView is a scrollable, bounded log panel that wraps bubbles/viewport.
// In follow mode (default), new lines scroll the view to the bottom.
type LogView struct {
	vp       viewport.Model
	lines    []string // rendered (pre-styled) lines, oldest first
	maxLines int
	follow   bool
	width    int
	height   int
}

// NewLogView creates a LogView with the given dimensions, initially in
// follow mode and keeping at most DefaultMaxLines lines.
func NewLogView(w, h int) LogView {
	return LogView{
		vp:       viewport.New(w, h),
		maxLines: DefaultMaxLines,
		follow:   true,
		width:    w,
		height:   h,
	}
}

// WithMaxLines returns a LogView that keeps at most n lines. n <= 0 means
// unbounded.
func (v LogView) WithMaxLines(n int) LogView {
	v.maxLines = n
	return v.trim().refresh()
}

// AppendLines appends pre-rendered (styled) lines, dropping the oldest when
// over capacity.
func (v LogView) AppendLines(rendered ...string) LogView {
	if len(rendered) == 0 {
		return v
	}
	v.lines = append(v.lines, rendered...)
	return v.trim().refresh()
}

// AppendLine appends a single pre-rendered line.
func (v LogView) AppendLine(rendered string) LogView {
	return v.AppendLines(rendered)
}

// Len returns the number of lines held.
func (v LogView) Len() int { return len(v.lines) }

// ToggleFollow switches follow mode on or off. When turned on, scrolls
// immediately to the bottom.
func (v LogView) ToggleFollow() LogView {
	v.follow = !v.follow
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}

// SetSize resizes the log view to the given dimensions.
func (v LogView) SetSize(w, h int) LogView {
	v.width = w
	v.height = h
	v.vp.Width = w
	v.vp.Height = h
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}

// Following reports whether follow mode is currently active.
func (v LogView) Following() bool {
	return v.follow
}

// Update handles scroll messages. Scrolling away from the bottom leaves
// follow mode; scrolling back to the bottom resumes it.
func (v LogView) Update(msg tea.Msg) (LogView, tea.Cmd) {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		v.follow = v.vp.AtBottom()
	}
	return v, cmd
}

// View renders the log view content.
func (v LogView) View() string {
	return v.vp.View()
}

func (v LogView) trim() LogView {
	if v.maxLines > 0 && len(v.lines) > v.maxLines {
		drop := len(v.lines) - v.maxLines
		v.lines = append([]string(nil), v.lines[drop:]...)
	}
	return v
}

func (v LogView) refresh() LogView {
	v.vp.SetContent(strings.Join(v.lines, "\n"))
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}
