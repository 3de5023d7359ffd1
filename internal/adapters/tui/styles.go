package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/pipstep/internal/core/domain"
)

var (
	// Private brand colors.
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")

	headerStyle = lipgloss.NewStyle().
			Foreground(colorIris).
			Bold(true)

	cellStyle = lipgloss.NewStyle()

	// Receipt State Styles.
	stateCurrentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")) // Green

	stateStaleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // Amber
			Bold(true)

	stateMissingStyle = lipgloss.NewStyle().
				Foreground(colorSlate).
				Faint(true)

	// Step Progress Styles.
	stepRunningStyle = lipgloss.NewStyle().
				Foreground(colorIris).
				Bold(true)

	stepDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	stepFailedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red
)

func stateStyle(state domain.ReceiptState) lipgloss.Style {
	switch state {
	case domain.ReceiptCurrent:
		return stateCurrentStyle
	case domain.ReceiptStale:
		return stateStaleStyle
	case domain.ReceiptMissing:
		return stateMissingStyle
	default:
		return cellStyle
	}
}
