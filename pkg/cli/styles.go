package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for terminal listings.
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Dim    lipgloss.Style
	Active lipgloss.Style
}

// DefaultStyles is the standard color scheme for the watson tools.
var DefaultStyles = Styles{
	Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b8cff")),
	Label:  lipgloss.NewStyle().Bold(true),
	Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")),
	Active: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")),
}

// RenderRow renders one aligned listing row: a fixed-width label followed
// by detail text.
func (s Styles) RenderRow(label, detail string, width int) string {
	if len(label) < width {
		label += strings.Repeat(" ", width-len(label))
	}
	return s.Label.Render(label) + "  " + s.Dim.Render(detail)
}

// RenderHeader renders a section header line.
func (s Styles) RenderHeader(format string, args ...any) string {
	return s.Header.Render(fmt.Sprintf(format, args...))
}
