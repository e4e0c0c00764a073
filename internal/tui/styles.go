package tui

import "github.com/charmbracelet/lipgloss"

// Palette follows the same dark-terminal-friendly conventions as the
// rest of the CLI (see utils package), scoped down to what this
// dashboard actually renders.
var (
	InfoColor  = lipgloss.Color("#4682B4")
	GoodColor  = lipgloss.Color("#228B22")
	MutedColor = lipgloss.Color("#888888")

	InfoStyle   = lipgloss.NewStyle().Foreground(InfoColor)
	MutedStyle  = lipgloss.NewStyle().Foreground(MutedColor)
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Padding(0, 1)
	FooterStyle = lipgloss.NewStyle().Foreground(MutedColor).Padding(0, 1)
)
