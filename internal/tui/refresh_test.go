package tui

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshChannelPollEmpty(t *testing.T) {
	rc := &RefreshChannel[int]{results: make(chan int, 1)}

	_, ok := rc.Poll()
	assert.False(t, ok)
}

func TestRefreshChannelNewestWins(t *testing.T) {
	rc := &RefreshChannel[int]{results: make(chan int, 1)}

	rc.offer(1)
	rc.offer(2)
	rc.offer(3)

	v, ok := rc.Poll()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = rc.Poll()
	assert.False(t, ok)
}

func TestRefreshChannelDelivers(t *testing.T) {
	var n atomic.Int64
	rc := NewRefreshChannel(func() (int64, error) {
		return n.Add(1), nil
	}, time.Millisecond)

	deadline := time.After(2 * time.Second)
	for {
		if v, ok := rc.Poll(); ok {
			assert.GreaterOrEqual(t, v, int64(1))
			return
		}
		select {
		case <-deadline:
			t.Fatal("no result delivered")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestRefreshChannelSkipsErrors(t *testing.T) {
	var n atomic.Int64
	rc := NewRefreshChannel(func() (int64, error) {
		v := n.Add(1)
		if v%2 == 1 {
			return 0, errors.New("boom")
		}
		return v, nil
	}, time.Millisecond)

	deadline := time.After(2 * time.Second)
	for {
		if v, ok := rc.Poll(); ok {
			// Odd attempts fail, so only even values ever surface.
			assert.Zero(t, v%2)
			return
		}
		select {
		case <-deadline:
			t.Fatal("no result delivered")
		case <-time.After(time.Millisecond):
		}
	}
}
