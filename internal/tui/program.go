package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Run launches the dashboard against feed and blocks until the user
// quits. Mirrors the reference dashboard's StartTUI: alt screen plus
// mouse support, wrapped in a single error return.
func Run(feed *Feed) error {
	zones := zone.New()
	defer zones.Close()

	program := tea.NewProgram(
		New(feed, zones),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
