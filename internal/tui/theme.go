package tui

import "github.com/charmbracelet/lipgloss"

// Ayu theme colors for TUI contexts.
var (
	colorDim    = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	colorText   = lipgloss.AdaptiveColor{Light: "#5c6166", Dark: "#bfbdb6"}
	colorSel    = lipgloss.AdaptiveColor{Light: "#e8e8e8", Dark: "#1a1f29"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true)

	styleSelected = lipgloss.NewStyle().
			Background(colorSel).
			Foreground(colorText)

	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleFilterBar = lipgloss.NewStyle().Foreground(colorText)

	styleSortCol = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	styleBar = lipgloss.NewStyle().
			Background(colorSel).
			Foreground(colorDim).
			Padding(0, 1)
)
