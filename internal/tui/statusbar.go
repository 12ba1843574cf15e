package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsforge/internal/headline"
)

func renderStatusBar(total int, counts map[headline.Category]int, width int) string {
	left := fmt.Sprintf(" %d headlines", total)

	var parts []string
	for _, c := range headline.AllCategories() {
		if n := counts[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", c, n))
		}
	}
	if len(parts) > 0 {
		left += " · " + strings.Join(parts, " · ")
	}

	right := " newsforge "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
