package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/matheuskafuri/newsforge/internal/history"
)

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return t.Format("Jan 2")
	}
}

func renderHistoryItem(index int, r history.Record, width int) string {
	if width < 10 {
		width = 30
	}
	num := itemIndexStyle.Render(fmt.Sprintf("%3d.", index))
	meta := categoryBadge(r.Category) + " " + itemIndexStyle.Render("· "+relativeTime(r.CreatedAt))
	title := itemTitleStyle.Render("     " + truncateStr(r.Text, width-6))
	return num + " " + meta + "\n" + title
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// renderHistory shows records starting at scroll, as many as fit in height.
func renderHistory(records []history.Record, scroll int, height int, width int) string {
	if len(records) == 0 {
		return centerText("No headlines generated yet!", width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := scroll
	if start > len(records)-1 {
		start = len(records) - 1
	}
	end := min(start+visible, len(records))

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderHistoryItem(i+1, records[i], width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func centerText(s string, width, height int) string {
	pad := (width - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
