package components

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewLogView(t *testing.T) {
	lv := NewLogView(80, 24)
	if !lv.Following() {
		t.Error("NewLogView: expected follow mode to be enabled by default")
	}
	if lv.width != 80 || lv.height != 24 {
		t.Errorf("dimensions: got %dx%d, want 80x24", lv.width, lv.height)
	}
	if lv.maxLines != DefaultMaxLines {
		t.Errorf("maxLines: got %d, want %d", lv.maxLines, DefaultMaxLines)
	}
}

func TestLogView_AppendLines(t *testing.T) {
	lv := NewLogView(80, 10)
	lv = lv.AppendLine("line 1")
	lv = lv.AppendLines("line 2", "line 3")
	lv = lv.AppendLines()

	if lv.Len() != 3 {
		t.Errorf("expected 3 lines, got %d", lv.Len())
	}
	view := lv.View()
	for _, want := range []string{"line 1", "line 2", "line 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q: %q", want, view)
		}
	}
}

func TestLogView_MaxLines(t *testing.T) {
	lv := NewLogView(80, 10).WithMaxLines(3)
	for i := 0; i < 5; i++ {
		lv = lv.AppendLine(fmt.Sprintf("line %d", i))
	}
	if lv.Len() != 3 {
		t.Fatalf("expected 3 lines, got %d", lv.Len())
	}
	if lv.lines[0] != "line 2" || lv.lines[2] != "line 4" {
		t.Errorf("oldest lines should be dropped: %v", lv.lines)
	}

	lv = lv.WithMaxLines(1)
	if lv.Len() != 1 || lv.lines[0] != "line 4" {
		t.Errorf("shrinking capacity should trim: %v", lv.lines)
	}

	unbounded := NewLogView(80, 10).WithMaxLines(0)
	for i := 0; i < DefaultMaxLines+5; i++ {
		unbounded = unbounded.AppendLine("x")
	}
	if unbounded.Len() != DefaultMaxLines+5 {
		t.Errorf("unbounded view dropped lines: %d", unbounded.Len())
	}
}

func TestLogView_ToggleFollow(t *testing.T) {
	lv := NewLogView(80, 10)
	lv = lv.ToggleFollow()
	if lv.Following() {
		t.Error("after first toggle follow should be false")
	}
	lv = lv.ToggleFollow()
	if !lv.Following() {
		t.Error("after second toggle follow should be true")
	}
}

func TestLogView_SetSize(t *testing.T) {
	lv := NewLogView(80, 10)
	lv = lv.SetSize(100, 20)
	if lv.width != 100 || lv.height != 20 {
		t.Errorf("SetSize: got %dx%d, want 100x20", lv.width, lv.height)
	}
	if lv.vp.Width != 100 || lv.vp.Height != 20 {
		t.Errorf("viewport dimensions: got %dx%d, want 100x20", lv.vp.Width, lv.vp.Height)
	}
}

// scrollableLV returns a LogView with enough content to be scrollable,
// scrolled to the top so AtBottom() is false.
func scrollableLV(t *testing.T) LogView {
	t.Helper()
	lv := NewLogView(80, 2)
	for i := 0; i < 20; i++ {
		lv = lv.AppendLine(fmt.Sprintf("line %02d", i))
	}
	lv.vp.YOffset = 0
	if lv.vp.AtBottom() {
		t.Skip("viewport content does not exceed height; cannot test scroll path")
	}
	return lv
}

func TestLogView_Update_ScrollAwayLeavesFollow(t *testing.T) {
	lv := scrollableLV(t)
	lv2, _ := lv.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	if lv2.Following() {
		t.Error("expected follow mode off after scrolling away from the bottom")
	}
}

func TestLogView_Update_ScrollToBottomResumesFollow(t *testing.T) {
	lv := scrollableLV(t).ToggleFollow()
	lv.vp.YOffset = 0
	lv.vp.GotoBottom()
	lv2, _ := lv.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	if !lv2.Following() {
		t.Error("expected follow mode on once the view is back at the bottom")
	}
}

func TestLogView_Update_NonScrollMsg(t *testing.T) {
	lv := scrollableLV(t)
	lv2, _ := lv.Update(tea.WindowSizeMsg{Width: 80, Height: 2})
	if !lv2.Following() {
		t.Error("expected follow mode to remain on after non-key/mouse msg")
	}
}
