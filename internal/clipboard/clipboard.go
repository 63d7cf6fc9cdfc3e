// Package clipboard abstracts the system clipboard so panes take an
// explicit handle and tests can substitute an in-memory one.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard is the copy/paste surface the dashboard uses.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System is backed by the OS clipboard.
type System struct{}

func (System) ReadAll() (string, error) { return clipboard.ReadAll() }

func (System) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Memory is an in-process clipboard for tests and headless environments.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
