// SPDX-License-Identifier: MIT

// Package style provides consistent terminal styling using Lipgloss.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Success style for positive outcomes (green)
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#7FD962"}).
		Bold(true)

	// Error style for failures (red)
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#F26D78"}).
		Bold(true)

	// Info style for headings and names (blue)
	Info = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#59C2FF"})

	// Dim style for secondary information (gray)
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#757575", Dark: "#8A9199"})

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().
		Bold(true)

	// SuccessPrefix is the checkmark prefix for success messages
	SuccessPrefix = Success.Render("✓")

	// ErrorPrefix is the error prefix
	ErrorPrefix = Error.Render("✗")
)
