package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// overlay identifies which popup, if any, a pane is showing. At most one
// is visible at a time; opening another replaces it.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayConfirm
	overlayFiles
	overlayDrilldown
)

// Confirmation is a two-choice prompt defaulting to No, so a stray enter
// never destroys anything.
type Confirmation struct {
	prompt  string
	choices *SelectableList[string]
}

// NewConfirmation builds a prompt with No selected.
func NewConfirmation(prompt string) *Confirmation {
	c := &Confirmation{
		prompt:  prompt,
		choices: NewSelectableList([]string{"No", "Yes"}),
	}
	c.choices.Select(0)
	return c
}

// Next moves the highlight, wrapping between the two choices.
func (c *Confirmation) Next() { c.choices.Next() }

// Previous moves the highlight the other way.
func (c *Confirmation) Previous() { c.choices.Previous() }

// Confirmed reports whether Yes is highlighted.
func (c *Confirmation) Confirmed() bool {
	i, ok := c.choices.Selected()
	return ok && i == 1
}

// Reset puts the highlight back on No for the next arming.
func (c *Confirmation) Reset() {
	c.choices.Select(0)
}

// View renders the prompt and its choices.
func (c *Confirmation) View() string {
	i, _ := c.choices.Selected()
	var parts []string
	for j, choice := range []string{"No", "Yes"} {
		if j == i {
			parts = append(parts, selectedChoiceStyle.Render("["+choice+"]"))
		} else {
			parts = append(parts, choiceStyle.Render(choice))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return lipgloss.JoinVertical(lipgloss.Center,
		popupTitleStyle.Render(c.prompt),
		row,
	)
}

// renderPopup centers content in a bordered box over the pane area.
func renderPopup(content string, width, height int) string {
	maxInner := width - 8
	if maxInner < 20 {
		maxInner = 20
	}
	box := popupStyle.Render(wordwrap.String(content, maxInner))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderHelp renders the full key listing for a pane.
func renderHelp(keys KeyMap, width, height int) string {
	var lines []string
	lines = append(lines, popupTitleStyle.Render("Keyboard Shortcuts"))
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, helpKeyStyle.Render(h.Key)+helpDescStyle.Render(h.Desc))
		}
	}
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return renderPopup(content, width, height)
}

var (
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true).
			Width(12)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// renderNotification pins a one-line notice to the bottom-right of the
// pane body. The next key press clears it.
func renderNotification(body, notice string, width int) string {
	if notice == "" {
		return body
	}
	box := noticeStyle.Render(notice)
	pinned := lipgloss.PlaceHorizontal(width, lipgloss.Right, box)
	return lipgloss.JoinVertical(lipgloss.Left, body, pinned)
}
