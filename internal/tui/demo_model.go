package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tinct/internal/dispatch"
	"github.com/balkashynov/tinct/internal/theme"
)

// DemoModel hosts the showcase widgets inside a bubbletea program. The
// program's event loop is the widgets' owning context: theme updates reach
// the widgets only through the dispatcher's FlushMsg.
type DemoModel struct {
	store      *theme.Store
	show       *Showcase
	dispatcher *dispatch.Program
	logger     *slog.Logger

	keys keyMap
	help help.Model

	width  int
	height int

	accent  int
	swapped bool
}

// NewDemoModel creates the demo model. Widgets attach in Init.
func NewDemoModel(store *theme.Store, show *Showcase, d *dispatch.Program, logger *slog.Logger) DemoModel {
	if logger == nil {
		logger = slog.Default()
	}
	return DemoModel{
		store:      store,
		show:       show,
		dispatcher: d,
		logger:     logger,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

// Init attaches the widgets, which corresponds to them becoming visible.
func (m DemoModel) Init() tea.Cmd {
	m.show.Attach()
	return nil
}

// Update handles messages
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Queued theme deliveries run here, on the event loop
	if m.dispatcher.Handle(msg) {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.show.Detach()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Dark):
			m.toggleDark()
		case key.Matches(msg, m.keys.Accent):
			m.accent = (m.accent + 1) % len(theme.Accents)
			m.apply(m.store.Edit().ColorAccent(theme.Accents[m.accent]))
		case key.Matches(msg, m.keys.Modes):
			m.swapped = !m.swapped
			bg, ind := m.modes()
			m.apply(m.store.Edit().TabLayoutBackgroundMode(bg).TabLayoutIndicatorMode(ind))
		case key.Matches(msg, m.keys.Attach):
			if m.show.Attached() {
				m.show.Detach()
			} else {
				m.show.Attach()
			}
		case key.Matches(msg, m.keys.Left):
			m.moveTab(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveTab(1)
		}
	}

	return m, nil
}

func (m *DemoModel) toggleDark() {
	dark, _ := m.store.LatestIsDark()
	preset := theme.Night()
	if dark {
		preset = theme.Day()
	}
	if accent, ok := m.store.LatestColor(theme.ColorAccent); ok {
		preset = preset.WithAccent(accent)
	}
	preset.TabBackground, preset.TabIndicator = m.modes()
	if err := m.store.Apply(preset); err != nil {
		m.logger.Error("apply preset", "preset", preset.Name, "err", err)
	}
}

func (m DemoModel) modes() (bg, indicator theme.TabLayoutMode) {
	if m.swapped {
		return theme.TabLayoutModeAccent, theme.TabLayoutModePrimary
	}
	return theme.TabLayoutModePrimary, theme.TabLayoutModeAccent
}

func (m *DemoModel) apply(e *theme.Editor) {
	if err := e.Apply(); err != nil {
		m.logger.Error("apply theme edit", "err", err)
	}
}

func (m *DemoModel) moveTab(delta int) {
	tabs := m.show.Tabs
	n := len(tabs.Tabs)
	if n == 0 {
		return
	}
	tabs.Selected = (tabs.Selected + delta + n) % n
}

// View renders the demo frame
func (m DemoModel) View() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorTitle)).
		Bold(true).
		Render("tinct · live theme")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)

	footer := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorStatusFooter)).Render(m.show.Status())
	helpBar := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Render(m.help.View(m.keys))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		frame.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", m.show.View())),
		footer,
		helpBar,
	)
}
