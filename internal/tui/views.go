package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("eTugon"),
		"",
		m.spinner.View()+" "+lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Loading reports..."),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	hm := m.help
	hm.ShowAll = true

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("eTugon - Help"),
		"",
		hm.View(m.keymap),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help"),
	)

	size := m.contentSize()
	return lipgloss.Place(size.Width, size.Height, lipgloss.Center, lipgloss.Center,
		m.theme.BorderedBox.MaxHeight(size.Height).Render(body))
}

// withStatusBar places content above the status bar.
func (m Model) withStatusBar(content string) string {
	size := m.contentSize()
	content = lipgloss.NewStyle().Height(size.Height).MaxHeight(size.Height).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusBar())
}

// renderStatusBar renders the bottom status bar: the screen name, the last
// status message and a short key hint.
func (m Model) renderStatusBar() string {
	left := m.theme.StatusInfo.Render(m.state.String())

	center := ""
	if m.status != "" {
		style := m.theme.Normal
		if m.lastError != nil {
			style = m.theme.StatusError
		}
		center = style.Render(m.status)
	}

	right := m.help.ShortHelpView(m.keymap.ShortHelp())

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	spacing = max(2, spacing)
	leftPad := spacing / 2

	return lipgloss.NewStyle().MaxWidth(m.width).Render(
		left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", spacing-leftPad) + right,
	)
}
