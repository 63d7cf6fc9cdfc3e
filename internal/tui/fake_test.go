package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rabbitui/rabbitui/internal/rabbit"
)

// press builds the key message a terminal would produce for a key name.
func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

type publishCall struct {
	queue   string
	vhost   string
	payload string
}

type purgeCall struct {
	queue string
	vhost string
}

// fakeAPI is a canned ManagementAPI. The mutex guards against the
// background refresh goroutines the panes start.
type fakeAPI struct {
	mu sync.Mutex

	overview    rabbit.Overview
	overviewErr error
	exchanges   []rabbit.ExchangeInfo
	queues      []rabbit.QueueInfo
	bindings    []rabbit.BindingInfo
	bindingsErr error
	popMsg      *rabbit.Message
	popErr      error
	publishErr  error
	purgeErr    error

	published []publishCall
	purged    []purgeCall
}

func (f *fakeAPI) Overview() (rabbit.Overview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.overview, f.overviewErr
}

func (f *fakeAPI) ListExchanges() ([]rabbit.ExchangeInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exchanges, nil
}

func (f *fakeAPI) ExchangeBindings(exch rabbit.ExchangeInfo) ([]rabbit.BindingInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bindings, f.bindingsErr
}

func (f *fakeAPI) ListQueues() ([]rabbit.QueueInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queues, nil
}

func (f *fakeAPI) Publish(queue, vhost, payload string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, publishCall{queue: queue, vhost: vhost, payload: payload})
	return nil
}

func (f *fakeAPI) Pop(queue, vhost string) (*rabbit.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.popMsg, f.popErr
}

func (f *fakeAPI) Purge(queue, vhost string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.purgeErr != nil {
		return f.purgeErr
	}
	f.purged = append(f.purged, purgeCall{queue: queue, vhost: vhost})
	return nil
}

func (f *fakeAPI) Healthcheck() error { return nil }

func (f *fakeAPI) publishedCalls() []publishCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]publishCall(nil), f.published...)
}

func (f *fakeAPI) purgedCalls() []purgeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]purgeCall(nil), f.purged...)
}
