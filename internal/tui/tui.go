// Package tui is the terminal front end. It renders cards and forwards key
// presses to a session; deck logic stays in the session and service layers.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the program on the alternate screen and blocks until it quits
func Run(m Model) error {
	_, err := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	).Run()
	return err
}
