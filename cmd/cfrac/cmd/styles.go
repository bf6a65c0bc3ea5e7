package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
	colorError   = lipgloss.Color("#EF4444")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	valueStyle = lipgloss.NewStyle().Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	falseStyle = lipgloss.NewStyle().Foreground(colorError)
	plainStyle = lipgloss.NewStyle()
)

// column is one fixed-width cell of a listing.
type column struct {
	text  string
	width int
}

// row renders cells side by side with fixed widths.
func row(style lipgloss.Style, cells ...column) string {
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		parts = append(parts, style.Width(c.width).Render(c.text))
	}

	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, parts...), " ")
}
