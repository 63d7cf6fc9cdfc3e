package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rabbitui/rabbitui/internal/clipboard"
	"github.com/rabbitui/rabbitui/internal/rabbit"
)

// queueTarget pins down which queue a destructive action applies to.
// Captured when the action is armed, so a background refresh that
// reorders the table cannot redirect it.
type queueTarget struct {
	name  string
	vhost string
}

// QueuesPane lists the broker's queues and supports publishing, popping
// and purging against the highlighted one.
type QueuesPane struct {
	api     rabbit.ManagementAPI
	refresh *RefreshChannel[[]rabbit.QueueInfo]
	keys    KeyMap
	clip    clipboard.Clipboard

	list    *SelectableList[rabbit.QueueInfo]
	overlay overlay
	confirm *Confirmation
	files   *FileBrowser
	pending queueTarget
	notice  string
}

// NewQueuesPane seeds the table with one synchronous fetch, then polls
// in the background.
func NewQueuesPane(api rabbit.ManagementAPI, clip clipboard.Clipboard, keys KeyMap, interval time.Duration) *QueuesPane {
	p := &QueuesPane{
		api:  api,
		keys: keys,
		clip: clip,
		list: NewSelectableList[rabbit.QueueInfo](nil),
	}
	if queues, err := api.ListQueues(); err == nil {
		p.list.Replace(queues)
	}
	p.refresh = NewRefreshChannel(api.ListQueues, interval)
	return p
}

// Tick adopts the newest listing, keeping the cursor position.
func (p *QueuesPane) Tick() {
	if queues, ok := p.refresh.Poll(); ok {
		p.list.Replace(queues)
	}
}

// HandleKey routes a key press to the open overlay, or to the table.
func (p *QueuesPane) HandleKey(msg tea.KeyMsg) {
	p.notice = ""
	switch p.overlay {
	case overlayConfirm:
		p.handleConfirmKey(msg)
	case overlayFiles:
		p.handleFilesKey(msg)
	case overlayHelp:
		p.overlay = overlayNone
	default:
		p.handleTableKey(msg)
	}
}

func (p *QueuesPane) handleTableKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, p.keys.Down):
		p.list.Next()
	case key.Matches(msg, p.keys.Up):
		p.list.Previous()
	case key.Matches(msg, p.keys.Help):
		p.overlay = overlayHelp
	case key.Matches(msg, p.keys.Publish):
		p.publishClipboard()
	case key.Matches(msg, p.keys.Pop):
		p.popToClipboard()
	case key.Matches(msg, p.keys.Purge):
		p.armPurge()
	case key.Matches(msg, p.keys.Files):
		p.openFiles()
	}
}

func (p *QueuesPane) handleConfirmKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, p.keys.Down):
		p.confirm.Next()
	case key.Matches(msg, p.keys.Up):
		p.confirm.Previous()
	case key.Matches(msg, p.keys.Confirm):
		if p.confirm.Confirmed() {
			p.purge()
		}
		p.overlay = overlayNone
		p.confirm.Reset()
	case key.Matches(msg, p.keys.Cancel):
		p.overlay = overlayNone
		p.confirm.Reset()
	}
}

func (p *QueuesPane) handleFilesKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, p.keys.Down):
		p.files.Next()
	case key.Matches(msg, p.keys.Up):
		p.files.Previous()
	case key.Matches(msg, p.keys.Parent):
		if err := p.files.Parent(); err != nil {
			p.notice = "Failed to read directory!"
			p.overlay = overlayNone
		}
	case key.Matches(msg, p.keys.Confirm):
		p.pickFile()
	case key.Matches(msg, p.keys.Cancel):
		p.overlay = overlayNone
	}
}

// publishClipboard publishes the clipboard contents to the highlighted
// queue through the default exchange.
func (p *QueuesPane) publishClipboard() {
	queue, ok := p.list.Item()
	if !ok {
		return
	}
	payload, err := p.clip.ReadAll()
	if err != nil {
		p.notice = "Failed to read clipboard!"
		return
	}
	p.publish(queue, payload)
}

func (p *QueuesPane) publish(queue rabbit.QueueInfo, payload string) {
	if err := p.api.Publish(queue.Name, queue.Vhost, payload); err != nil {
		p.notice = "Failed to publish message!"
		return
	}
	p.notice = fmt.Sprintf("Published to %s!", queue.Name)
}

// popToClipboard takes one message off the highlighted queue, requeues
// it, and copies the payload to the clipboard.
func (p *QueuesPane) popToClipboard() {
	queue, ok := p.list.Item()
	if !ok {
		return
	}
	msg, err := p.api.Pop(queue.Name, queue.Vhost)
	if err != nil {
		p.notice = "Failed to fetch message!"
		return
	}
	if msg == nil {
		p.notice = "No messages to copy!"
		return
	}
	if err := p.clip.WriteAll(msg.Payload); err != nil {
		p.notice = "Failed to write clipboard!"
		return
	}
	p.notice = "Message copied to clipboard!"
}

// armPurge opens the confirmation, remembering the target so the later
// enter hits the queue the prompt named.
func (p *QueuesPane) armPurge() {
	queue, ok := p.list.Item()
	if !ok {
		return
	}
	p.pending = queueTarget{name: queue.Name, vhost: queue.Vhost}
	p.confirm = NewConfirmation(fmt.Sprintf("Purge all messages from %s?", queue.Name))
	p.overlay = overlayConfirm
}

func (p *QueuesPane) purge() {
	if err := p.api.Purge(p.pending.name, p.pending.vhost); err != nil {
		p.notice = "Failed to purge queue!"
		return
	}
	p.notice = fmt.Sprintf("Purged %s!", p.pending.name)
}

func (p *QueuesPane) openFiles() {
	if _, ok := p.list.Item(); !ok {
		return
	}
	dir, err := os.Getwd()
	if err != nil {
		p.notice = "Failed to open file browser!"
		return
	}
	fb, err := NewFileBrowser(dir)
	if err != nil {
		p.notice = "Failed to open file browser!"
		return
	}
	p.files = fb
	p.overlay = overlayFiles
}

// pickFile descends into a directory or publishes the chosen file's
// contents to the highlighted queue.
func (p *QueuesPane) pickFile() {
	path, err := p.files.Enter()
	if err != nil {
		p.notice = "Failed to read directory!"
		p.overlay = overlayNone
		return
	}
	if path == "" {
		return
	}
	p.overlay = overlayNone
	queue, ok := p.list.Item()
	if !ok {
		return
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		p.notice = "Failed to read file!"
		return
	}
	p.publish(queue, string(payload))
}

// View renders the queue table, or whichever overlay is open.
func (p *QueuesPane) View(width, height int) string {
	switch p.overlay {
	case overlayHelp:
		return renderHelp(p.keys, width, height)
	case overlayConfirm:
		return renderPopup(p.confirm.View(), width, height)
	case overlayFiles:
		return p.files.View(width, height)
	}

	headers := []string{"Name", "Vhost", "Type", "State", "Ready", "Unacked", "Total", "Pub/s", "Dlv/s", "Ack/s"}
	rows := make([][]string, 0, p.list.Len())
	for _, q := range p.list.Items() {
		rows = append(rows, []string{
			q.Name,
			q.Vhost,
			q.Type,
			q.State,
			fmt.Sprintf("%d", q.Ready),
			fmt.Sprintf("%d", q.Unacked),
			fmt.Sprintf("%d", q.Total),
			fmt.Sprintf("%.1f", q.Stats.PublishDetails.Rate),
			fmt.Sprintf("%.1f", q.Stats.DeliverDetails.Rate),
			fmt.Sprintf("%.1f", q.Stats.AckDetails.Rate),
		})
	}
	cursor := -1
	if i, ok := p.list.Selected(); ok {
		cursor = i
	}
	body := renderTable(headers, rows, cursor, width, height-2)
	return renderNotification(body, p.notice, width)
}
