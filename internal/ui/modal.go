package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for overlay dialogs.
// Update returns the updated modal, a command, and whether the modal should
// close. Box renders the bordered dialog; the Model centers it and closes
// it on clicks outside its bounds.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	Box(theme Theme) string
}

// placeOverlay centers box on a width x height screen.
func placeOverlay(theme Theme, box string, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
