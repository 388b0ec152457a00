package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/edulog/etugon/internal/listing"
	"github.com/edulog/etugon/internal/tui/themes"
)

type sortKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Reset key.Binding
	Close key.Binding
}

var sortKeys = sortKeyMap{
	Up:    key.NewBinding(key.WithKeys("k", "up")),
	Down:  key.NewBinding(key.WithKeys("j", "down")),
	Left:  key.NewBinding(key.WithKeys("h", "left")),
	Right: key.NewBinding(key.WithKeys("l", "right", " ")),
	Reset: key.NewBinding(key.WithKeys("r")),
	Close: key.NewBinding(key.WithKeys("esc", "enter", "s")),
}

// SortMenuModel is the Sort & Filter menu. Changing a section's option makes
// that section the active sort key.
type SortMenuModel struct {
	theme   themes.Theme
	sel     listing.Selection
	section int
	width   int
	height  int
}

// NewSortMenu opens the menu on the given selection, with the active key's
// section focused.
func NewSortMenu(sel listing.Selection, theme themes.Theme) SortMenuModel {
	m := SortMenuModel{theme: theme, sel: sel, width: 80, height: 24}
	for i, k := range listing.Keys {
		if k == sel.ActiveKey {
			m.section = i
		}
	}
	return m
}

// Selection returns the selection as edited so far.
func (m SortMenuModel) Selection() listing.Selection {
	return m.sel
}

// Section returns the focused section's key.
func (m SortMenuModel) Section() listing.SortKey {
	return listing.Keys[m.section]
}

// Update handles messages.
func (m SortMenuModel) Update(msg tea.Msg) (SortMenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, sortKeys.Down):
			m.section = (m.section + 1) % len(listing.Keys)

		case key.Matches(msg, sortKeys.Up):
			m.section = (m.section - 1 + len(listing.Keys)) % len(listing.Keys)

		case key.Matches(msg, sortKeys.Right):
			m.sel.CycleOption(m.Section(), 1)
			return m, m.changed()

		case key.Matches(msg, sortKeys.Left):
			m.sel.CycleOption(m.Section(), -1)
			return m, m.changed()

		case key.Matches(msg, sortKeys.Reset):
			m.sel = listing.DefaultSelection()
			return m, m.changed()

		case key.Matches(msg, sortKeys.Close):
			sel := m.sel
			return m, func() tea.Msg { return SortMenuClosedMsg{Selection: sel} }
		}
	}
	return m, nil
}

func (m SortMenuModel) changed() tea.Cmd {
	sel := m.sel
	return func() tea.Msg { return SelectionChangedMsg{Selection: sel} }
}

// View renders the menu centered on screen.
func (m SortMenuModel) View() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	rows := []string{m.theme.Title.Render("Sort & Filter")}
	for i, k := range listing.Keys {
		heading := listing.Title(k)
		if k == m.sel.ActiveKey {
			heading += " ●"
		}
		headingStyle := m.theme.Bold
		if i == m.section {
			headingStyle = headingStyle.Foreground(m.theme.Primary)
			heading = "› " + heading
		} else {
			heading = "  " + heading
		}

		current := m.sel.Label(k)
		opts := make([]string, 0, len(listing.Options(k)))
		for _, o := range listing.Options(k) {
			if o == current {
				opts = append(opts, m.theme.Selected.Render(" "+o+" "))
			} else {
				opts = append(opts, muted.Render(" "+o+" "))
			}
		}

		rows = append(rows, headingStyle.Render(heading), "    "+strings.Join(opts, " "), "")
	}
	rows = append(rows, muted.Render("[↑↓] Section  [←→] Option  [r] Reset  [Enter/Esc] Done"))

	box := m.theme.BorderedBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
