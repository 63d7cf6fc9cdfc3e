package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rabbitui/rabbitui/internal/rabbit"
)

// OverviewPane charts broker-wide message totals and disk I/O rates.
type OverviewPane struct {
	refresh *RefreshChannel[rabbit.Overview]
	keys    KeyMap

	messages  *TimeSeriesWindow
	ready     *TimeSeriesWindow
	unacked   *TimeSeriesWindow
	diskRead  *TimeSeriesWindow
	diskWrite *TimeSeriesWindow

	showHelp bool
}

// NewOverviewPane seeds the charts with one synchronous fetch so the pane
// has data on first paint, then polls in the background.
func NewOverviewPane(api rabbit.ManagementAPI, keys KeyMap, interval time.Duration) *OverviewPane {
	p := &OverviewPane{
		keys:      keys,
		messages:  NewTimeSeriesWindow(seriesCapacity),
		ready:     NewTimeSeriesWindow(seriesCapacity),
		unacked:   NewTimeSeriesWindow(seriesCapacity),
		diskRead:  NewTimeSeriesWindow(seriesCapacity),
		diskWrite: NewTimeSeriesWindow(seriesCapacity),
	}
	if ov, err := api.Overview(); err == nil {
		p.push(ov)
	}
	p.refresh = NewRefreshChannel(api.Overview, interval)
	return p
}

func (p *OverviewPane) push(ov rabbit.Overview) {
	p.messages.Push(ov.QueueTotals.Messages)
	p.ready.Push(ov.QueueTotals.Ready)
	p.unacked.Push(ov.QueueTotals.Unacked)
	p.diskRead.Push(ov.MessageStats.DiskReadDetails.Rate)
	p.diskWrite.Push(ov.MessageStats.DiskWriteDetails.Rate)
}

// Tick adopts the newest background result, if any.
func (p *OverviewPane) Tick() {
	if ov, ok := p.refresh.Poll(); ok {
		p.push(ov)
	}
}

// HandleKey toggles the help overlay; everything else is ignored.
func (p *OverviewPane) HandleKey(msg tea.KeyMsg) {
	switch {
	case p.showHelp:
		p.showHelp = false
	case key.Matches(msg, p.keys.Help):
		p.showHelp = true
	}
}

// View renders the two chart panels stacked vertically.
func (p *OverviewPane) View(width, height int) string {
	if p.showHelp {
		return renderHelp(p.keys, width, height)
	}
	totals := renderChartPanel("Queued messages", "", width,
		chartSeries{label: "total", series: p.messages},
		chartSeries{label: "ready", series: p.ready},
		chartSeries{label: "unacked", series: p.unacked},
	)
	disk := renderChartPanel("Disk I/O", "/s", width,
		chartSeries{label: "reads", series: p.diskRead},
		chartSeries{label: "writes", series: p.diskWrite},
	)
	return lipgloss.JoinVertical(lipgloss.Left, totals, disk)
}
