package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/config"
)

// tickMsg is sent every second for the clock.
type tickMsg time.Time

// reloadMsg carries a config reload from the file watcher.
type reloadMsg config.Reload

// tickCmd schedules the next one-second clock tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForReload blocks on the reload channel and returns the next message.
// A nil or closed channel yields no message.
func waitForReload(ch <-chan config.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}
