package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/bind"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/command"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/config"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/surface"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/tui/components"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/tui/panels"
)

// Options configures the TUI.
type Options struct {
	Config     *config.Config
	ConfigPath string

	// Reloads delivers validated configs from a file watcher. Nil disables
	// hot reload.
	Reloads <-chan config.Reload

	// Attach is called with every dispatcher the TUI creates, initially and
	// after each reload, so the caller can subscribe its own observers.
	Attach func(*command.Dispatcher)

	Logger *zerolog.Logger
}

// Model is the root bubbletea model. It owns the dispatcher and feeds it
// key events translated from the terminal.
type Model struct {
	opts Options
	cfg  *config.Config

	disp  *command.Dispatcher
	bound []bind.Bound
	root  *surface.Element
	elems map[FocusTarget]*surface.Element
	sink  *activity

	keymap    KeyMap
	help      help.Model
	logView   components.LogView
	setsPanel panels.SetsPanel

	layout Layout
	focus  FocusTarget
	mode   InputMode
	theme  Theme
	width  int
	height int

	fires  int
	status string

	startedAt time.Time
	now       time.Time
}

// New builds the dispatcher for opts.Config and the Model around it.
func New(opts Options) (Model, error) {
	if opts.Config == nil {
		d := config.Defaults()
		opts.Config = &d
	}
	now := time.Now()
	layout := Calculate(80, 24)
	th := NewTheme(opts.Config.TUI.AccentColor)

	logW, logH := innerDims(layout.Log)
	setsW, setsH := innerDims(layout.Sets)

	m := Model{
		opts: opts,
		root: surface.NewElement("root"),
		elems: map[FocusTarget]*surface.Element{
			FocusLog:  surface.NewElement(config.ElementLog),
			FocusSets: surface.NewElement(config.ElementSets),
		},
		sink:      newActivity(),
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		logView:   components.NewLogView(logW, logH),
		setsPanel: panels.NewSetsPanel(nil, th.Accent(), setsW, setsH),
		layout:    layout,
		focus:     FocusLog,
		theme:     th,
		width:     80,
		height:    24,
		startedAt: now,
		now:       now,
	}
	if opts.Config.TUI.Latch {
		m.mode = ModeLatch
	}

	d, bound, err := bind.New(opts.Config, m.root, m.bindElements(), m.sink, opts.Logger)
	if err != nil {
		return Model{}, err
	}
	m = m.attach(opts.Config, d, bound)
	return m, nil
}

// bindElements exposes the panel elements under their config names.
func (m Model) bindElements() bind.Elements {
	return bind.Elements{
		config.ElementLog:  m.elems[FocusLog],
		config.ElementSets: m.elems[FocusSets],
	}
}

// attach makes d the live dispatcher and subscribes the activity sink.
func (m Model) attach(cfg *config.Config, d *command.Dispatcher, bound []bind.Bound) Model {
	d.Subscribe(m.sink.onNotification)
	d.OnFire(m.sink.onFire)
	if m.opts.Attach != nil {
		m.opts.Attach(d)
	}
	m.cfg = cfg
	m.disp = d
	m.bound = bound
	m.setsPanel = m.setsPanel.SetSets(setInfos(d, bound)).SetActive(d.Active())
	return m
}

// setInfos describes every set of d for the sets panel.
func setInfos(d *command.Dispatcher, bound []bind.Bound) []panels.SetInfo {
	byCmd := make(map[*command.Command]bind.Bound, len(bound))
	for _, b := range bound {
		byCmd[b.Command] = b
	}
	var out []panels.SetInfo
	for _, name := range d.Sets() {
		info := panels.SetInfo{Name: name}
		for _, c := range d.Commands(name) {
			row := panels.CommandRow{ID: c.ID, Chord: keys.Format(c.Chord)}
			if b, ok := byCmd[c]; ok {
				row.Action = b.Describe()
				row.Target = b.Config.Target
			}
			info.Commands = append(info.Commands, row)
		}
		out = append(out, info)
	}
	return out
}

// Dispatcher returns the live dispatcher.
func (m Model) Dispatcher() *command.Dispatcher { return m.disp }

// Init returns the initial commands: reload listener + clock ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForReload(m.opts.Reloads), tickCmd())
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	case tea.BlurMsg:
		return m.handleBlur()
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	case reloadMsg:
		return m.handleReload(config.Reload(msg))
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout = Calculate(msg.Width, msg.Height)
	if !m.layout.TooSmall {
		logW, logH := innerDims(m.layout.Log)
		setsW, setsH := innerDims(m.layout.Sets)
		m.logView = m.logView.SetSize(logW, logH)
		m.setsPanel = m.setsPanel.SetSize(setsW, setsH)
	}
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keymap.Reserved(msg.String()) {
		return m.handleReserved(msg)
	}

	p, ok := translate(msg)
	if !ok {
		m.status = fmt.Sprintf("%q has no key code", msg.String())
		return m, nil
	}
	m.status = ""
	m.dispatch(p)
	return m.flush()
}

// handleReserved runs the TUI's own key bindings.
func (m Model) handleReserved(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keymap
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.NextPanel):
		m.focus = m.focus.Next()
		return m, nil
	case key.Matches(msg, km.PrevPanel):
		m.focus = m.focus.Prev()
		return m, nil
	case key.Matches(msg, km.NextSet):
		m.setsPanel = m.setsPanel.Next()
		return m, nil
	case key.Matches(msg, km.PrevSet):
		m.setsPanel = m.setsPanel.Prev()
		return m, nil
	case key.Matches(msg, km.ToggleMode):
		m.mode = m.mode.Toggle()
		if m.mode == ModeTap && len(m.disp.Pressed()) > 0 {
			m.disp.ReleaseAll()
		}
		m.sink.notice("input mode: " + m.mode.Label())
		return m.flush()
	case key.Matches(msg, km.Toggle):
		if m.disp.Enabled() {
			m.disp.Disable()
			m.sink.notice("dispatcher disabled")
		} else {
			m.disp.Enable()
			m.sink.notice("dispatcher enabled")
		}
		return m.flush()
	case key.Matches(msg, km.Release):
		m.disp.ReleaseAll()
		m.sink.notice("released all held keys")
		return m.flush()
	case key.Matches(msg, km.Follow):
		m.logView = m.logView.ToggleFollow()
		return m, nil
	case key.Matches(msg, km.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// origin returns the element terminal events are emitted on: the focused
// panel's element when some command listens there, the root otherwise.
func (m Model) origin() *surface.Element {
	if el, ok := m.elems[m.focus]; ok && el.Listeners(keys.KeyDown) > 0 {
		return el
	}
	return m.root
}

// dispatch turns a translated key press into key events. In tap mode the
// whole chord is pressed and released again; in latch mode modifiers stay
// held and the key toggles between down and up.
func (m Model) dispatch(p keyPress) {
	el := m.origin()
	switch m.mode {
	case ModeLatch:
		for _, mod := range p.Mods {
			if !m.disp.IsPressed(mod) {
				el.Press(mod)
			}
		}
		if m.disp.IsPressed(p.Code) {
			el.Release(p.Code)
		} else {
			el.Press(p.Code)
		}
	default:
		var pressed []keys.Code
		for _, mod := range p.Mods {
			if !m.disp.IsPressed(mod) {
				el.Press(mod)
				pressed = append(pressed, mod)
			}
		}
		el.Press(p.Code)
		el.Release(p.Code)
		for i := len(pressed) - 1; i >= 0; i-- {
			el.Release(pressed[i])
		}
	}
}

// flush moves buffered activity into the panels and quits when a command
// asked to.
func (m Model) flush() (tea.Model, tea.Cmd) {
	logW, _ := innerDims(m.layout.Log)
	entries := m.sink.drain()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.kind == entryFire {
			m.fires++
			m.setsPanel = m.setsPanel.RecordFire(e.fire.Set, e.fire.CommandID)
		}
		lines = append(lines, m.theme.RenderEntry(e, logW))
	}
	m.logView = m.logView.AppendLines(lines...)
	m.setsPanel = m.setsPanel.SetActive(m.disp.Active())

	if m.sink.quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleBlur() (tea.Model, tea.Cmd) {
	if !m.cfg.Dispatcher.ReleaseOnBlur || len(m.disp.Pressed()) == 0 {
		return m, nil
	}
	m.disp.ReleaseAll()
	m.sink.notice("focus lost: released held keys")
	return m.flush()
}

// handleReload swaps in a dispatcher built from the reloaded config. Held
// keys do not carry over. A broken config keeps the current dispatcher.
func (m Model) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	next := waitForReload(m.opts.Reloads)
	if r.Err != nil {
		m.sink.error(fmt.Errorf("config reload: %w", r.Err))
		m.status = "config reload failed"
		model, cmd := m.flush()
		return model, tea.Batch(cmd, next)
	}

	wasEnabled := m.disp.Enabled()
	m.disp.Disable()
	d, bound, err := bind.New(r.Config, m.root, m.bindElements(), m.sink, m.opts.Logger)
	if err != nil {
		if wasEnabled {
			m.disp.Enable()
		}
		m.sink.error(fmt.Errorf("config reload: %w", err))
		m.status = "config reload failed"
		model, cmd := m.flush()
		return model, tea.Batch(cmd, next)
	}

	m = m.attach(r.Config, d, bound)
	m.theme = NewTheme(r.Config.TUI.AccentColor)
	m.sink.notice(fmt.Sprintf("config reloaded: %d commands", len(bound)))
	m.status = "config reloaded"
	model, cmd := m.flush()
	return model, tea.Batch(cmd, next)
}

// View renders the full TUI.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.", m.width, m.height, minWidth, minHeight)
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	header := panels.RenderHeader(panels.HeaderProps{
		ConfigPath: m.opts.ConfigPath,
		Enabled:    m.disp.Enabled(),
		ActiveSet:  m.disp.Active(),
		Mode:       m.mode.Label(),
		Held:       keys.Format(m.disp.Pressed()),
		Fires:      m.fires,
		Elapsed:    m.now.Sub(m.startedAt),
		Clock:      m.now,
	}, m.layout.Header.Width, m.theme.AccentHeaderStyle())

	footer := panels.RenderFooter(panels.FooterProps{
		Focus:  m.focus.String(),
		Status: m.status,
		Help:   m.help.ShortHelpView(m.keymap.ShortHelp()),
	}, m.layout.Footer.Width)

	logW, logH := innerDims(m.layout.Log)
	setsW, setsH := innerDims(m.layout.Sets)

	logContent := m.logView.View()
	if m.help.ShowAll {
		logContent = m.help.FullHelpView(m.keymap.FullHelp())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.PanelBorderStyle(m.focus == FocusLog).
			Width(logW).Height(logH).
			Render(logContent),
		m.theme.PanelBorderStyle(m.focus == FocusSets).
			Width(setsW).Height(setsH).
			Render(m.setsPanel.View()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
