package style

import (
	"github.com/charmbracelet/lipgloss"
)

// FillPainter returns a painter for filled chart cells using the given
// lipgloss colour (ANSI number or hex). An empty colour returns nil.
// lipgloss strips the escape codes itself when the output is not a colour terminal.
func FillPainter(color string) func(string) string {
	if color == "" {
		return nil
	}

	s := lipgloss.NewStyle().Foreground(lipgloss.Color(color))

	return func(cell string) string {
		return s.Render(cell)
	}
}
