package style

import (
	"charm.land/lipgloss/v2"
)

var (
	BorderColor     = lipgloss.Color("240")                                            // Subtle warm grey border
	HlCellStyle     = lipgloss.NewStyle().Background(lipgloss.Color("240"))            // Selected field
	MutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))            // Warm muted grey text
	IdentifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true) // Known person
	ErrorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))            // Muted red
)

// DialogStyle is the bordered box around a panel.
func DialogStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 2).
		Width(width)
}

// Highlight renders str with the cell highlight when selected is true.
func Highlight(str string, selected bool) string {
	if selected {
		return HlCellStyle.Render(str)
	}
	return str
}
