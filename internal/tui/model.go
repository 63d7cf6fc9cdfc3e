package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rabbitui/rabbitui/internal/clipboard"
	"github.com/rabbitui/rabbitui/internal/rabbit"
)

// Config carries everything the dashboard needs to run.
type Config struct {
	API      rabbit.ManagementAPI
	Clip     clipboard.Clipboard
	Addr     string
	Interval time.Duration
}

// Model is the root Bubble Tea model: a header, a tab bar, the active
// pane, and a footer of key hints.
type Model struct {
	tabs *TabSet
	keys KeyMap
	help help.Model
	addr string

	width  int
	height int

	quitting bool
}

// New builds the dashboard with its three panes.
func New(cfg Config) Model {
	keys := DefaultKeyMap()
	tabs := NewTabSet(
		Tab{Title: "Overview", Pane: NewOverviewPane(cfg.API, keys, cfg.Interval)},
		Tab{Title: "Exchanges", Pane: NewExchangesPane(cfg.API, keys, cfg.Interval)},
		Tab{Title: "Queues", Pane: NewQueuesPane(cfg.API, cfg.Clip, keys, cfg.Interval)},
	)
	return Model{
		tabs: tabs,
		keys: keys,
		help: help.New(),
		addr: cfg.Addr,
	}
}

// tickMsg drives the UI-side refresh cadence.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		// Only the visible pane adopts new data; hidden charts pause.
		m.tabs.Active().Pane.Tick()
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevTab):
			m.tabs.Previous()
		case key.Matches(msg, m.keys.NextTab):
			m.tabs.Next()
		default:
			m.tabs.Active().Pane.HandleKey(msg)
		}
		return m, nil
	}

	return m, nil
}

// View renders the full dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	bar := m.tabs.renderBar(m.width)
	footer := footerStyle.Width(m.width).Render(m.help.View(m.keys))

	paneHeight := m.height - lipgloss.Height(header) - lipgloss.Height(bar) - lipgloss.Height(footer)
	if paneHeight < minPaneHeight {
		paneHeight = minPaneHeight
	}
	pane := m.tabs.Active().Pane.View(m.width, paneHeight)
	pane = lipgloss.NewStyle().Height(paneHeight).Render(pane)

	return lipgloss.JoinVertical(lipgloss.Left, header, bar, pane, footer)
}

// renderHeader renders the title with the broker address right-aligned.
func (m Model) renderHeader() string {
	left := titleStyle.Render("🐇 rabbitui")
	right := addrStyle.Render(m.addr)

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}

	return headerStyle.Width(m.width).Render(
		left + lipgloss.NewStyle().Width(padding).Render("") + right,
	)
}
