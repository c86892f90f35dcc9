package actionfilter

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"actionfilter/style"
)

// RenderFooter renders a footer with the filter count and query name, or an error when there is one.
func RenderFooter(count int, query, errorString string, width int) string {

	if errorString != "" {
		return style.ErrorStyle.Render(errorString)
	}

	left := fmt.Sprintf("%d filters", count)
	if count == 1 {
		left = "1 filter"
	}
	right := query

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}
