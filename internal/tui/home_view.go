package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsforge/internal/history"
)

var asciiLogo = []string{
	`█▄ █ █▀▀ █ █ █ █▀▀ █▀▀ █▀█ █▀█ █▀▀ █▀▀`,
	`█ ▀█ ██▄ ▀▄▀▄▀ ▄▄█ █▀  █▄█ █▀▄ █▄█ ██▄`,
}

var menuItems = []struct {
	key   string
	label string
}{
	{"1", "Random Headline"},
	{"2", "Tech Headline"},
	{"3", "Sports Headline"},
	{"4", "Funny Headline"},
	{"5", "Mystery Headline"},
	{"6", "Generation History"},
	{"7", "Exit"},
}

func renderHomeScreen(width, height int, last *history.Record) string {
	var lines []string

	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, "")

	for _, item := range menuItems {
		lines = append(lines, "  "+menuKeyStyle.Render("["+item.key+"]")+"  "+menuLabelStyle.Render(item.label))
	}
	lines = append(lines, "")

	lines = append(lines, renderCard(last, width))

	content := strings.Join(lines, "\n")
	contentHeight := lipgloss.Height(content)

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}

func renderCard(last *history.Record, width int) string {
	cardWidth := min(70, width-4)
	if cardWidth < 20 {
		cardWidth = 20
	}
	if last == nil {
		return cardStyle.Width(cardWidth).Render(itemIndexStyle.Render("Press 1-5 to forge a headline"))
	}
	body := categoryBadge(last.Category) + "\n\n" + cardHeadlineStyle.Render(last.Text)
	return cardStyle.Width(cardWidth).Render(body)
}
