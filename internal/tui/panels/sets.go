package panels

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/command"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/tui/components"
)

var (
	setsDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	setsFireStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
)

// CommandRow is one command as shown in the sets panel.
type CommandRow struct {
	ID     uuid.UUID
	Chord  string // e.g. "Ctrl+S"
	Action string // e.g. "echo saved"
	Target string // element name, "" for root
}

// SetInfo is a command set and its commands in definition order.
type SetInfo struct {
	Name     string
	Commands []CommandRow
}

// commandItem wraps a CommandRow as a list.Item.
type commandItem struct {
	row   CommandRow
	fires int
	last  bool
}

func (c commandItem) FilterValue() string { return c.row.Chord }

// commandDelegate renders compact single-line command rows.
type commandDelegate struct{}

func (d commandDelegate) Height() int                             { return 1 }
func (d commandDelegate) Spacing() int                            { return 0 }
func (d commandDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d commandDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(commandItem)
	if !ok {
		return
	}
	s := fmt.Sprintf("%-14s %s", ci.row.Chord, ci.row.Action)
	if ci.row.Target != "" {
		s += setsDimStyle.Render(" @" + ci.row.Target)
	}
	if ci.fires > 0 {
		s += setsDimStyle.Render(fmt.Sprintf("  ×%d", ci.fires))
	}
	if ci.last {
		s = setsFireStyle.Render("▶ ") + s
	} else {
		s = "  " + s
	}
	_, _ = fmt.Fprint(w, s)
}

// SetsPanel shows one tab per command set with the commands of the viewed
// set and how often each has fired.
type SetsPanel struct {
	tabbar   components.TabBar
	list     list.Model
	sets     []SetInfo
	active   string
	fires    map[uuid.UUID]int
	setFires map[string]int
	last     uuid.UUID
	width    int
	height   int
}

// NewSetsPanel creates a sets panel. accent highlights the viewed tab.
func NewSetsPanel(sets []SetInfo, accent lipgloss.Color, w, h int) SetsPanel {
	l := list.New(nil, commandDelegate{}, w, listHeight(h))
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)

	p := SetsPanel{
		tabbar:   components.NewTabBar(nil, accent),
		list:     l,
		fires:    make(map[uuid.UUID]int),
		setFires: make(map[string]int),
		width:    w,
		height:   h,
	}
	return p.SetSets(sets)
}

// listHeight leaves room for the tab bar and the summary line.
func listHeight(h int) int {
	if h < 3 {
		return 1
	}
	return h - 2
}

// SetSets replaces the displayed sets, keeping the viewed tab when the set
// still exists. Per-command fire counts of commands that no longer exist are
// dropped; per-set totals are kept.
func (p SetsPanel) SetSets(sets []SetInfo) SetsPanel {
	p.sets = append([]SetInfo(nil), sets...)
	names := make([]string, len(sets))
	live := make(map[uuid.UUID]bool)
	for i, s := range sets {
		names[i] = s.Name
		for _, c := range s.Commands {
			live[c.ID] = true
		}
	}
	fires := make(map[uuid.UUID]int, len(p.fires))
	for id, n := range p.fires {
		if live[id] {
			fires[id] = n
		}
	}
	p.fires = fires
	p.tabbar = p.tabbar.SetTabs(names)
	return p.refresh()
}

// SetActive records which set the dispatcher has active.
func (p SetsPanel) SetActive(name string) SetsPanel {
	p.active = name
	return p
}

// Viewed returns the name of the set whose commands are shown.
func (p SetsPanel) Viewed() string { return p.tabbar.Current() }

// Show views the named set. Unknown names leave the panel unchanged.
func (p SetsPanel) Show(name string) SetsPanel {
	p.tabbar = p.tabbar.Select(name)
	return p.refresh()
}

// Next views the next set.
func (p SetsPanel) Next() SetsPanel {
	p.tabbar = p.tabbar.Next()
	return p.refresh()
}

// Prev views the previous set.
func (p SetsPanel) Prev() SetsPanel {
	p.tabbar = p.tabbar.Prev()
	return p.refresh()
}

// RecordFire counts a command invocation.
func (p SetsPanel) RecordFire(set string, id uuid.UUID) SetsPanel {
	fires := make(map[uuid.UUID]int, len(p.fires)+1)
	for k, v := range p.fires {
		fires[k] = v
	}
	fires[id]++
	setFires := make(map[string]int, len(p.setFires)+1)
	for k, v := range p.setFires {
		setFires[k] = v
	}
	setFires[set]++
	p.fires = fires
	p.setFires = setFires
	p.last = id
	return p.refresh()
}

// Fires returns how often commands of the named set have fired.
func (p SetsPanel) Fires(set string) int { return p.setFires[set] }

// CommandFires returns how often the command with the given ID has fired.
func (p SetsPanel) CommandFires(id uuid.UUID) int { return p.fires[id] }

// SetSize resizes the panel.
func (p SetsPanel) SetSize(w, h int) SetsPanel {
	p.width = w
	p.height = h
	p.list.SetSize(w, listHeight(h))
	return p
}

// refresh rebuilds the list items for the viewed set.
func (p SetsPanel) refresh() SetsPanel {
	var rows []CommandRow
	viewed := p.tabbar.Current()
	for _, s := range p.sets {
		if s.Name == viewed {
			rows = s.Commands
			break
		}
	}
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = commandItem{row: r, fires: p.fires[r.ID], last: r.ID == p.last && p.last != uuid.Nil}
	}
	p.list.SetItems(items)
	return p
}

// View renders the sets panel: tab bar, summary line and command list.
func (p SetsPanel) View() string {
	if len(p.sets) == 0 {
		return lipgloss.NewStyle().
			Width(p.width).Height(p.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("#888888")).
			Render("No command sets")
	}

	viewed := p.tabbar.Current()
	state := "inactive"
	if viewed == p.active || viewed == command.DefaultSet {
		state = "● active"
	}
	summary := setsDimStyle.Render(fmt.Sprintf("%s  fires: %d", state, p.setFires[viewed]))

	var content string
	if len(p.list.Items()) == 0 {
		content = setsDimStyle.Render("  (no commands)")
	} else {
		content = p.list.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, p.tabbar.View(), summary, content)
}
