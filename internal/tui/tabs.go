package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Pane is a tab body. The model forwards keys and refresh ticks to the
// active pane only, so hidden panes do not advance.
type Pane interface {
	HandleKey(msg tea.KeyMsg)
	Tick()
	View(width, height int) string
}

// Tab pairs a title with the pane it shows.
type Tab struct {
	Title string
	Pane  Pane
}

// TabSet holds the tabs and tracks which one is active.
type TabSet struct {
	tabs   []Tab
	active int
}

// NewTabSet builds a set with the first tab active.
func NewTabSet(tabs ...Tab) *TabSet {
	return &TabSet{tabs: tabs}
}

// Next advances to the following tab, wrapping past the last.
func (t *TabSet) Next() {
	if len(t.tabs) == 0 {
		return
	}
	t.active = (t.active + 1) % len(t.tabs)
}

// Previous steps back one tab, wrapping past the first.
func (t *TabSet) Previous() {
	if len(t.tabs) == 0 {
		return
	}
	t.active = (t.active + len(t.tabs) - 1) % len(t.tabs)
}

// Active returns the current tab.
func (t *TabSet) Active() Tab {
	return t.tabs[t.active]
}

// renderBar renders the tab titles with the active one highlighted.
func (t *TabSet) renderBar(width int) string {
	var parts []string
	for i, tab := range t.tabs {
		if i == t.active {
			parts = append(parts, activeTabStyle.Render(tab.Title))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab.Title))
		}
	}
	bar := strings.Join(parts, "│")
	return lipgloss.NewStyle().Width(width).Render(bar)
}
