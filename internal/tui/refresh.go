package tui

import "time"

// RefreshChannel runs a blocking fetch on a fixed cadence in a background
// goroutine and hands the newest result to the UI thread without ever
// blocking it. Each pane owns at most one; the goroutine owns the only
// sender and the pane the only receiver. There is no shutdown signal: the
// goroutine lives until the process exits, matching the lifetime of the
// pane that owns it.
type RefreshChannel[T any] struct {
	results chan T
}

// NewRefreshChannel starts the background fetch loop. Fetch errors are
// skipped silently; the next interval retries, and the pane keeps showing
// its last adopted result in the meantime.
func NewRefreshChannel[T any](fetch func() (T, error), interval time.Duration) *RefreshChannel[T] {
	rc := &RefreshChannel[T]{results: make(chan T, 1)}
	go rc.run(fetch, interval)
	return rc
}

func (rc *RefreshChannel[T]) run(fetch func() (T, error), interval time.Duration) {
	for {
		if v, err := fetch(); err == nil {
			rc.offer(v)
		}
		time.Sleep(interval)
	}
}

// offer places v in the single-slot buffer, displacing an undrained older
// result so the slot always holds the newest one.
func (rc *RefreshChannel[T]) offer(v T) {
	for {
		select {
		case rc.results <- v:
			return
		default:
			select {
			case <-rc.results:
			default:
			}
		}
	}
}

// Poll returns the newest pending result without blocking. ok is false
// when nothing new has arrived since the last call.
func (rc *RefreshChannel[T]) Poll() (v T, ok bool) {
	for {
		select {
		case r := <-rc.results:
			v, ok = r, true
		default:
			return v, ok
		}
	}
}
