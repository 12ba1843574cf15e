package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsforge/internal/headline"
)

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorYellow    = lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#E5C07B"}

	categoryColors = map[headline.Category]lipgloss.AdaptiveColor{
		headline.Tech:    colorPrimary,
		headline.Sports:  colorGreen,
		headline.Funny:   colorYellow,
		headline.Mystery: colorAccent,
	}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	logoStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	menuKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	menuLabelStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	cardHeadlineStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSecondary)

	itemTitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	itemIndexStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	historyPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

func categoryBadge(c headline.Category) string {
	color, ok := categoryColors[c]
	if !ok {
		color = colorDim
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render("[" + c.Label() + "]")
}
