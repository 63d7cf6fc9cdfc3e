package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// renderSparkline renders values as a single line of block runes scaled
// against max. Only the newest width samples are drawn; older ones have
// scrolled off the left edge.
func renderSparkline(values []float64, width int, max float64) string {
	if width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	var b strings.Builder
	for i := len(values); i < width; i++ {
		b.WriteString(" ")
	}
	for _, v := range values {
		idx := 0
		if max > 0 {
			idx = int(v / max * float64(len(sparkRunes)-1))
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// chartSeries pairs a label with the window it draws from.
type chartSeries struct {
	label  string
	series *TimeSeriesWindow
}

// renderChartPanel renders a bordered panel of sparklines sharing one
// y-scale so their magnitudes compare visually.
func renderChartPanel(title, unit string, width int, series ...chartSeries) string {
	inner := width - 4 // Border and padding
	if inner < 10 {
		inner = 10
	}

	windows := make([]*TimeSeriesWindow, 0, len(series))
	for _, s := range series {
		windows = append(windows, s.series)
	}
	_, max := yBounds(yPadding, windows...)

	var lines []string
	lines = append(lines, panelTitleStyle.Render(title))
	for _, s := range series {
		label := sparkLabelStyle.Render(padRight(s.label, 12))
		value := sparkValueStyle.Render(fmt.Sprintf("%8.1f%s", s.series.Last(), unit))
		sparkWidth := inner - lipgloss.Width(label) - lipgloss.Width(value) - 2
		spark := sparkStyle.Render(renderSparkline(s.series.Values(), sparkWidth, max))
		lines = append(lines, label+" "+spark+" "+value)
	}

	return panelStyle.Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
