package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the styles used when rendering shell output in color.
type Styles struct {
	// Project heading styling
	Project lipgloss.Style

	// Checkbox styling
	Checked   lipgloss.Style
	Unchecked lipgloss.Style

	// Error styling
	Error lipgloss.Style

	// Subtle text styling (prompt)
	Subtle lipgloss.Style
}

// NewStyles builds the styles for a specific output. The color profile is
// detected from w, so writers that are not terminals render plain text.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)

	return Styles{
		Project: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),

		Checked: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),

		Unchecked: r.NewStyle().
			Foreground(lipgloss.Color("#888888")),

		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true),

		Subtle: r.NewStyle().
			Foreground(lipgloss.Color("#666666")),
	}
}

// Mark renders the checkbox marker ("x" or " ")
func (s Styles) Mark(marker string) string {
	if marker == " " {
		return s.Unchecked.Render(marker)
	}
	return s.Checked.Render(marker)
}
