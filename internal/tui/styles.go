package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const minPaneHeight = 8

// Color palette
var (
	primaryColor   = lipgloss.Color("205") // Pink
	secondaryColor = lipgloss.Color("86")  // Cyan
	mutedColor     = lipgloss.Color("241") // Gray
	successColor   = lipgloss.Color("78")  // Green
	warningColor   = lipgloss.Color("214") // Orange
	errorColor     = lipgloss.Color("196") // Red
)

var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	addrStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Tab bar styles
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Padding(0, 2)

	// Panel styles
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor)

	// Table styles
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(secondaryColor)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	rowStyle = lipgloss.NewStyle()

	// Chart styles
	sparkStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	sparkLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	sparkValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// Overlay styles
	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	popupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	choiceStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 2)

	selectedChoiceStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(warningColor).
				Padding(0, 2)

	// Notification styles
	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warningColor).
			Foreground(warningColor).
			Padding(0, 1)

	// Footer styles
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)
)
