package panels

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderHeader_BasicFields(t *testing.T) {
	accent := lipgloss.NewStyle().Background(lipgloss.Color("#7D56F4"))
	now := time.Date(2026, 1, 1, 15, 30, 0, 0, time.UTC)

	props := HeaderProps{
		ConfigPath: "/work/keychord.toml",
		Enabled:    true,
		ActiveSet:  "edit",
		Mode:       "LATCH",
		Held:       "Ctrl+Shift",
		Fires:      7,
		Clock:      now,
	}

	rendered := RenderHeader(props, 200, accent)

	for _, want := range []string{"keychord.toml", "● ENABLED", "set: edit", "mode: LATCH", "held: Ctrl+Shift", "fires: 7", "15:30"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("RenderHeader() missing %q; output: %q", want, rendered)
		}
	}
}

func TestRenderHeader_EmptyFieldFallbacks(t *testing.T) {
	accent := lipgloss.NewStyle()
	props := HeaderProps{} // all zero values

	rendered := RenderHeader(props, 200, accent)

	for _, want := range []string{"KeyChord", "○ DISABLED", "set: —", "held: —", "fires: 0"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("RenderHeader() with empty props missing %q; got %q", want, rendered)
		}
	}
	if strings.Contains(rendered, "mode:") {
		t.Errorf("RenderHeader() should omit mode when empty; got %q", rendered)
	}
}

func TestRenderHeader_Elapsed(t *testing.T) {
	accent := lipgloss.NewStyle()
	props := HeaderProps{Elapsed: 95 * time.Second}

	rendered := RenderHeader(props, 200, accent)
	if !strings.Contains(rendered, "up: 1m35s") {
		t.Errorf("RenderHeader() should show elapsed time; got %q", rendered)
	}
}

func TestAbbreviatePath(t *testing.T) {
	if got := AbbreviatePath(""); got != "" {
		t.Errorf("AbbreviatePath(\"\") = %q, want empty", got)
	}
	if got := AbbreviatePath(`C:\work\keychord.toml`); got != "C:/work/keychord.toml" {
		t.Errorf("AbbreviatePath() = %q, want forward slashes", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Second, "5s"},
		{90 * time.Second, "1m30s"},
		{3*time.Hour + 15*time.Minute, "3h15m"},
		{0, "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatElapsed(tt.d)
			if got != tt.want {
				t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
