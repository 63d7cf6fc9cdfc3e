package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rabbitui/rabbitui/internal/rabbit"
)

// ExchangesPane lists the broker's exchanges and shows the bindings of
// the highlighted one on demand.
type ExchangesPane struct {
	api     rabbit.ManagementAPI
	refresh *RefreshChannel[[]rabbit.ExchangeInfo]
	keys    KeyMap

	list     *SelectableList[rabbit.ExchangeInfo]
	overlay  overlay
	bindings []rabbit.BindingInfo
	notice   string
}

// NewExchangesPane seeds the table with one synchronous fetch, then
// polls in the background.
func NewExchangesPane(api rabbit.ManagementAPI, keys KeyMap, interval time.Duration) *ExchangesPane {
	p := &ExchangesPane{
		api:  api,
		keys: keys,
		list: NewSelectableList[rabbit.ExchangeInfo](nil),
	}
	if exchanges, err := api.ListExchanges(); err == nil {
		p.list.Replace(exchanges)
	}
	p.refresh = NewRefreshChannel(api.ListExchanges, interval)
	return p
}

// Tick adopts the newest listing, keeping the cursor position.
func (p *ExchangesPane) Tick() {
	if exchanges, ok := p.refresh.Poll(); ok {
		p.list.Replace(exchanges)
	}
}

// HandleKey routes a key press to the open overlay, or to the table.
func (p *ExchangesPane) HandleKey(msg tea.KeyMsg) {
	p.notice = ""
	switch p.overlay {
	case overlayDrilldown:
		// Any list movement or escape closes the popup.
		if key.Matches(msg, p.keys.Up, p.keys.Down, p.keys.Cancel, p.keys.Confirm) {
			p.overlay = overlayNone
			p.bindings = nil
		}
	case overlayHelp:
		p.overlay = overlayNone
	default:
		p.handleTableKey(msg)
	}
}

func (p *ExchangesPane) handleTableKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, p.keys.Down):
		p.list.Next()
	case key.Matches(msg, p.keys.Up):
		p.list.Previous()
	case key.Matches(msg, p.keys.Help):
		p.overlay = overlayHelp
	case key.Matches(msg, p.keys.Confirm):
		p.openBindings()
	}
}

// openBindings fetches the highlighted exchange's bindings synchronously.
// A one-shot blocking call keeps the popup consistent with the row it was
// opened from.
func (p *ExchangesPane) openBindings() {
	exchange, ok := p.list.Item()
	if !ok {
		return
	}
	bindings, err := p.api.ExchangeBindings(exchange)
	if err != nil {
		p.notice = "Failed to fetch bindings!"
		return
	}
	p.bindings = bindings
	p.overlay = overlayDrilldown
}

// View renders the exchange table, or whichever overlay is open.
func (p *ExchangesPane) View(width, height int) string {
	switch p.overlay {
	case overlayHelp:
		return renderHelp(p.keys, width, height)
	case overlayDrilldown:
		return p.viewBindings(width, height)
	}

	headers := []string{"Name", "Type", "Vhost", "Durable", "Auto-delete"}
	rows := make([][]string, 0, p.list.Len())
	for _, e := range p.list.Items() {
		rows = append(rows, []string{
			e.DisplayName(),
			e.Type,
			e.Vhost,
			fmt.Sprintf("%t", e.Durable),
			fmt.Sprintf("%t", e.AutoDelete),
		})
	}
	cursor := -1
	if i, ok := p.list.Selected(); ok {
		cursor = i
	}
	body := renderTable(headers, rows, cursor, width, height-2)
	return renderNotification(body, p.notice, width)
}

func (p *ExchangesPane) viewBindings(width, height int) string {
	exchange, _ := p.list.Item()
	var lines []string
	lines = append(lines, popupTitleStyle.Render("Bindings: "+exchange.DisplayName()))
	if len(p.bindings) == 0 {
		lines = append(lines, rowStyle.Render("(no bindings)"))
	}
	for _, b := range p.bindings {
		rk := b.RoutingKey
		if rk == "" {
			rk = "(none)"
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			rowStyle.Render(rk),
			sparkLabelStyle.Render("→"),
			rowStyle.Render(b.Destination),
		))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return renderPopup(content, width, height)
}
