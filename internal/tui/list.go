package tui

// SelectableList is an ordered collection with a wraparound cursor. It
// backs every table-like view: the pane tables, the confirmation box and
// the file browser.
type SelectableList[T any] struct {
	items  []T
	cursor int // -1 when nothing is selected
}

// NewSelectableList creates a list with no selection.
func NewSelectableList[T any](items []T) *SelectableList[T] {
	return &SelectableList[T]{items: items, cursor: -1}
}

func (l *SelectableList[T]) Len() int { return len(l.items) }

func (l *SelectableList[T]) Items() []T { return l.items }

// Next moves the cursor down one entry, wrapping to the top. With no
// selection it selects the first entry. No-op on an empty list.
func (l *SelectableList[T]) Next() {
	if len(l.items) == 0 {
		return
	}
	if l.cursor < 0 {
		l.cursor = 0
		return
	}
	l.cursor = (l.cursor + 1) % len(l.items)
}

// Previous moves the cursor up one entry, wrapping to the bottom. With no
// selection it selects the first entry. No-op on an empty list.
func (l *SelectableList[T]) Previous() {
	if len(l.items) == 0 {
		return
	}
	switch {
	case l.cursor < 0:
		l.cursor = 0
	case l.cursor == 0:
		l.cursor = len(l.items) - 1
	default:
		l.cursor--
	}
}

// Select moves the cursor to i when i is a valid index.
func (l *SelectableList[T]) Select(i int) {
	if i >= 0 && i < len(l.items) {
		l.cursor = i
	}
}

// Selected returns the cursor index, with ok=false when nothing is
// selected.
func (l *SelectableList[T]) Selected() (int, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return 0, false
	}
	return l.cursor, true
}

// Item returns the selected entry, with ok=false when nothing is
// selected.
func (l *SelectableList[T]) Item() (T, bool) {
	i, ok := l.Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Replace swaps the backing items. Selection is positional, not
// identity-based: the cursor keeps its index when still in range and is
// clamped to the last entry otherwise, so a table refresh does not throw
// the user back to the top.
func (l *SelectableList[T]) Replace(items []T) {
	l.items = items
	if l.cursor >= len(items) {
		l.cursor = len(items) - 1
	}
}

// ReplaceReset swaps the backing items and selects the first entry, or
// nothing when items is empty.
func (l *SelectableList[T]) ReplaceReset(items []T) {
	l.items = items
	if len(items) == 0 {
		l.cursor = -1
		return
	}
	l.cursor = 0
}
