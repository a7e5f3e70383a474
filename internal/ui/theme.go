package ui

import "github.com/charmbracelet/lipgloss"

// Muted cyan-on-dark palette for the built-in selector and pager.
var (
	ColorCyan   = lipgloss.Color("#5a9ab5")
	ColorAccent = lipgloss.Color("#7fcfdf")
	ColorDim    = lipgloss.Color("#3a5565")
	ColorWhite  = lipgloss.Color("#8899a5")
	ColorSelect = lipgloss.Color("#c8d84a") // vivid yellow-green for the selected row
	ColorBarBg  = lipgloss.Color("#0f1e28")

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorSelect).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorDim).
			Background(ColorBarBg).
			Padding(0, 1)
)
