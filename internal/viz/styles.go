package viz

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the text styles of one output stream.
type Styles struct {
	Warning lipgloss.Style
	Error   lipgloss.Style
	KeyHint lipgloss.Style
	Subtle  lipgloss.Style
}

// NewStyles returns styles whose color profile matches w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Warning: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00")),
		Error: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444")),
		KeyHint: r.NewStyle().
			Foreground(lipgloss.Color("#666688")).
			Italic(true),
		Subtle: r.NewStyle().
			Foreground(lipgloss.Color("#888899")),
	}
}
