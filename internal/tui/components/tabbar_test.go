package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var testAccent = lipgloss.Color("#7D56F4")

func TestTabBar_NextPrev(t *testing.T) {
	tb := NewTabBar([]string{"A", "B", "C"}, testAccent)
	if tb.Active() != 0 || tb.Current() != "A" {
		t.Fatalf("initial: got %d %q", tb.Active(), tb.Current())
	}

	for _, want := range []string{"B", "C", "A"} {
		tb = tb.Next()
		if tb.Current() != want {
			t.Errorf("Next: got %q, want %q", tb.Current(), want)
		}
	}
	tb = tb.Prev()
	if tb.Current() != "C" {
		t.Errorf("Prev should wrap: got %q", tb.Current())
	}
}

func TestTabBar_Empty(t *testing.T) {
	tb := NewTabBar(nil, testAccent)
	tb = tb.Next().Prev()
	if tb.Current() != "" || tb.View() != "" {
		t.Error("empty tab bar should render nothing")
	}
}

func TestTabBar_SelectAndSetTabs(t *testing.T) {
	tb := NewTabBar([]string{"default", "edit"}, testAccent).Select("edit")
	if tb.Current() != "edit" {
		t.Fatalf("Select: got %q", tb.Current())
	}
	tb = tb.Select("missing")
	if tb.Current() != "edit" {
		t.Errorf("unknown label should not change selection: %q", tb.Current())
	}

	tb = tb.SetTabs([]string{"default", "nav", "edit"})
	if tb.Current() != "edit" || tb.Active() != 2 {
		t.Errorf("SetTabs should keep the active label: %q at %d", tb.Current(), tb.Active())
	}
	tb = tb.SetTabs([]string{"default"})
	if tb.Current() != "default" {
		t.Errorf("SetTabs should fall back to the first tab: %q", tb.Current())
	}
}

func TestTabBar_View(t *testing.T) {
	view := NewTabBar([]string{"default", "edit"}, testAccent).View()
	for _, want := range []string{"default", "edit", "│"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q: %q", want, view)
		}
	}
}
