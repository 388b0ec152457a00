// Package themes defines the color schemes of the report browser.
package themes

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/edulog/etugon/internal/model"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Selected      lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	RoundedBox    lipgloss.Style
	Highlighted   lipgloss.Style
	BorderedBox   lipgloss.Style
	Pending       lipgloss.Color
	InProgress    lipgloss.Color
	Completed     lipgloss.Color
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Upvoted       lipgloss.Color
}

// StatusColor returns the badge color of a report status.
func (t Theme) StatusColor(s model.Status) lipgloss.Color {
	switch s {
	case model.StatusPending:
		return t.Pending
	case model.StatusInProgress:
		return t.InProgress
	case model.StatusCompleted:
		return t.Completed
	default:
		return t.Muted
	}
}

// StatusBadge renders a status label in its color.
func (t Theme) StatusBadge(s model.Status) string {
	return lipgloss.NewStyle().Bold(true).Foreground(t.StatusColor(s)).Render(string(s))
}

// StepColor returns the marker color of a timeline step.
func (t Theme) StepColor(s model.StepStatus) lipgloss.Color {
	switch s {
	case model.StepCompleted:
		return t.Completed
	case model.StepCurrent:
		return t.InProgress
	default:
		return t.Muted
	}
}

func newTheme(primary, foreground, subtle, border, highlight, selectedFg string) Theme {
	return Theme{
		Primary:    lipgloss.Color(primary),
		Foreground: lipgloss.Color(foreground),
		Border:     lipgloss.Color(border),
		Muted:      lipgloss.Color(subtle),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(foreground)).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(foreground)),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(foreground)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(primary)).
			Foreground(lipgloss.Color(selectedFg)).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(lipgloss.Color(highlight)).
			Foreground(lipgloss.Color(foreground)),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(primary)).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(primary)).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(subtle)).
			Border(lipgloss.HiddenBorder(), false, false, true, false).
			Padding(0, 2),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(1, 2),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1),
	}
}

// Default is the default theme.
var Default = func() Theme {
	t := newTheme("#1e88e5", "#fafafa", "#737373", "#404040", "#262626", "#fafafa")
	t.Pending = lipgloss.Color("#ff4d4d")
	t.InProgress = lipgloss.Color("#ff9800")
	t.Completed = lipgloss.Color("#4cd137")
	t.Upvoted = lipgloss.Color("#1e88e5")
	t.StatusSuccess = lipgloss.NewStyle().Foreground(t.Completed).Bold(true)
	t.StatusError = lipgloss.NewStyle().Foreground(t.Pending).Bold(true)
	t.StatusInfo = lipgloss.NewStyle().Foreground(t.Primary)
	return t
}()

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = func() Theme {
	t := newTheme("#89b4fa", "#cdd6f4", "#6c7086", "#45475a", "#313244", "#1e1e2e")
	t.Pending = lipgloss.Color("#f38ba8")
	t.InProgress = lipgloss.Color("#fab387")
	t.Completed = lipgloss.Color("#a6e3a1")
	t.Upvoted = lipgloss.Color("#89b4fa")
	t.StatusSuccess = lipgloss.NewStyle().Foreground(t.Completed).Bold(true)
	t.StatusError = lipgloss.NewStyle().Foreground(t.Pending).Bold(true)
	t.StatusInfo = lipgloss.NewStyle().Foreground(lipgloss.Color("#89dceb"))
	return t
}()

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// CategoryIcons maps categories to emoji icons.
var CategoryIcons = map[model.Category]string{
	model.CategoryCrimeSafety:       "🚨",
	model.CategoryHealthSanitation:  "🧹",
	model.CategoryTrafficInfra:      "🚧",
	model.CategoryEnvironment:       "🌊",
	model.CategoryCommunityConcerns: "🏘️",
	model.CategoryOthers:            "📌",
}

// GetCategoryIcon returns an icon for a category.
func GetCategoryIcon(category model.Category) string {
	if icon, ok := CategoryIcons[category]; ok {
		return icon
	}
	return "📌"
}
