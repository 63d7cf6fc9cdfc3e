package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmationDefaultsToNo(t *testing.T) {
	c := NewConfirmation("Purge?")
	assert.False(t, c.Confirmed())
}

func TestConfirmationCycle(t *testing.T) {
	c := NewConfirmation("Purge?")

	c.Next()
	assert.True(t, c.Confirmed())

	c.Next()
	assert.False(t, c.Confirmed())

	c.Previous()
	assert.True(t, c.Confirmed())
}

func TestConfirmationReset(t *testing.T) {
	c := NewConfirmation("Purge?")
	c.Next()
	assert.True(t, c.Confirmed())

	c.Reset()
	assert.False(t, c.Confirmed())
}

func TestConfirmationView(t *testing.T) {
	c := NewConfirmation("Purge all messages from jobs?")
	view := c.View()

	assert.Contains(t, view, "Purge all messages from jobs?")
	assert.Contains(t, view, "[No]")
	assert.Contains(t, view, "Yes")

	c.Next()
	assert.Contains(t, c.View(), "[Yes]")
}

func TestRenderNotification(t *testing.T) {
	body := "table"

	assert.Equal(t, body, renderNotification(body, "", 40))

	withNotice := renderNotification(body, "Purged jobs!", 40)
	assert.Contains(t, withNotice, "Purged jobs!")
	assert.Contains(t, withNotice, "table")
}

func TestRenderHelpListsBindings(t *testing.T) {
	view := renderHelp(DefaultKeyMap(), 80, 24)

	for _, want := range []string{"quit", "publish from clipboard", "purge queue", "help"} {
		assert.Contains(t, view, want)
	}
}

func TestRenderSparklineScales(t *testing.T) {
	line := renderSparkline([]float64{0, 4, 8}, 3, 8)

	runes := []rune(strings.TrimRight(line, " "))
	assert.Equal(t, '▁', runes[0])
	assert.Equal(t, '█', runes[2])
}

func TestRenderSparklineClipsToWidth(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = float64(i)
	}

	line := renderSparkline(values, 5, 19)
	assert.Len(t, []rune(line), 5)
	// Newest samples win; the last cell is the max.
	assert.Equal(t, '█', []rune(line)[4])
}

func TestRenderSparklineZeroMax(t *testing.T) {
	line := renderSparkline([]float64{0, 0, 0}, 3, 0)
	assert.Equal(t, "▁▁▁", line)
}
