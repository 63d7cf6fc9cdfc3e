package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// renderTable renders a header row followed by data rows, marking the
// cursor row. Rows beyond height scroll so the cursor stays visible.
func renderTable(headers []string, rows [][]string, cursor, width, height int) string {
	if height < 1 {
		height = 1
	}
	widths := columnWidths(headers, rows, width)

	var lines []string
	lines = append(lines, tableHeaderStyle.Render("   "+formatRow(headers, widths)))

	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := start + height
	if end > len(rows) {
		end = len(rows)
	}
	for i := start; i < end; i++ {
		line := formatRow(rows[i], widths)
		if i == cursor {
			lines = append(lines, selectedRowStyle.Render(">> "+line))
		} else {
			lines = append(lines, rowStyle.Render("   "+line))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// columnWidths sizes each column to its widest cell, then shrinks the
// first column if the total would overflow the pane.
func columnWidths(headers []string, rows [][]string, total int) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	used := 3 + 2*len(widths) // Cursor gutter plus separators
	for _, w := range widths {
		used += w
	}
	if used > total && len(widths) > 0 {
		over := used - total
		if widths[0]-over < 8 {
			widths[0] = 8
		} else {
			widths[0] -= over
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, 0, len(cells))
	for i, cell := range cells {
		w := 10
		if i < len(widths) {
			w = widths[i]
		}
		parts = append(parts, runewidth.FillRight(runewidth.Truncate(cell, w, "…"), w))
	}
	return strings.Join(parts, "  ")
}
