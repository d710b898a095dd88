// Package tui holds the component contract and shared pieces of the
// interactive explorer.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Component is the interface for explorer components.
type Component interface {
	// Init initializes the component.
	Init() tea.Cmd

	// Update handles messages and returns the updated component.
	Update(msg tea.Msg) (Component, tea.Cmd)

	// View renders the component.
	View() string

	// SetSize sets the component dimensions.
	SetSize(width, height int)
}

// FocusMsg is sent when a component should gain focus.
type FocusMsg struct{}

// BlurMsg is sent when a component should lose focus.
type BlurMsg struct{}

// Styles shared across the explorer.
type Styles struct {
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Dir      lipgloss.Style
	Dim      lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the default explorer styling.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		Dir: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("4")),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Selected: lipgloss.NewStyle().
			Reverse(true).
			Bold(true),
	}
}

// Truncate shortens a string to fit within width.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
