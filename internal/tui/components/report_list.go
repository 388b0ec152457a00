package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/edulog/etugon/internal/ledger"
	"github.com/edulog/etugon/internal/listing"
	"github.com/edulog/etugon/internal/model"
	"github.com/edulog/etugon/internal/tui/themes"
	"github.com/edulog/etugon/internal/tui/viewmodel"
)

// cardHeight is the number of lines one report card takes, spacing included.
const cardHeight = 4

type listKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Sort    key.Binding
	Upvote  key.Binding
	Open    key.Binding
}

var listKeys = listKeyMap{
	Up:      key.NewBinding(key.WithKeys("k", "up")),
	Down:    key.NewBinding(key.WithKeys("j", "down")),
	Top:     key.NewBinding(key.WithKeys("g", "home")),
	Bottom:  key.NewBinding(key.WithKeys("G", "end")),
	NextTab: key.NewBinding(key.WithKeys("tab", "right", "l")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
	Sort:    key.NewBinding(key.WithKeys("s", "f")),
	Upvote:  key.NewBinding(key.WithKeys("u", " ")),
	Open:    key.NewBinding(key.WithKeys("enter")),
}

// ReportListModel shows the "My Reports" and "Public Reports" tabs.
type ReportListModel struct {
	theme   themes.Theme
	votes   *ledger.Ledger
	reports []model.Report
	visible []model.Report
	sel     listing.Selection
	tab     viewmodel.Tab
	userID  int
	cursor  int
	offset  int
	width   int
	height  int
}

// NewReportList creates a list over reports. Reports owned by userID go to
// the "My Reports" tab.
func NewReportList(reports []model.Report, userID int, votes *ledger.Ledger, theme themes.Theme) ReportListModel {
	if votes == nil {
		votes = ledger.New()
	}
	m := ReportListModel{
		theme:   theme,
		votes:   votes,
		reports: reports,
		sel:     listing.DefaultSelection(),
		tab:     viewmodel.TabMine,
		userID:  userID,
		width:   80,
		height:  24,
	}
	m.refresh()
	return m
}

// SetReports replaces the underlying reports.
func (m *ReportListModel) SetReports(reports []model.Report) {
	m.reports = reports
	m.refresh()
}

// SetSelection applies a new filter/sort selection.
func (m *ReportListModel) SetSelection(sel listing.Selection) {
	m.sel = sel
	m.refresh()
}

// Selection returns the current filter/sort selection.
func (m ReportListModel) Selection() listing.Selection {
	return m.sel
}

// Tab returns the active tab.
func (m ReportListModel) Tab() viewmodel.Tab {
	return m.tab
}

// Visible returns the filtered and sorted reports of the active tab.
func (m ReportListModel) Visible() []model.Report {
	return m.visible
}

// Cursor returns the index of the highlighted report.
func (m ReportListModel) Cursor() int {
	return m.cursor
}

// refresh re-derives the visible reports from the reports, tab, selection and ledger.
func (m *ReportListModel) refresh() {
	mine, public := listing.Partition(m.reports, m.userID)
	source := mine
	if m.tab == viewmodel.TabPublic {
		source = public
	}
	m.visible = listing.Apply(source, m.sel, m.votes)

	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
	m.ensureVisible()
}

func (m *ReportListModel) switchTab(tab viewmodel.Tab) {
	if m.tab == tab {
		return
	}
	m.tab = tab
	m.cursor = 0
	m.offset = 0
	m.refresh()
}

// Update handles messages.
func (m ReportListModel) Update(msg tea.Msg) (ReportListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ReportListModel) handleKey(msg tea.KeyMsg) (ReportListModel, tea.Cmd) {
	switch {
	case key.Matches(msg, listKeys.Down):
		m.cursor = min(m.cursor+1, max(0, len(m.visible)-1))
		m.ensureVisible()

	case key.Matches(msg, listKeys.Up):
		m.cursor = max(m.cursor-1, 0)
		m.ensureVisible()

	case key.Matches(msg, listKeys.Top):
		m.cursor = 0
		m.ensureVisible()

	case key.Matches(msg, listKeys.Bottom):
		m.cursor = max(0, len(m.visible)-1)
		m.ensureVisible()

	case key.Matches(msg, listKeys.NextTab), key.Matches(msg, listKeys.PrevTab):
		if m.tab == viewmodel.TabMine {
			m.switchTab(viewmodel.TabPublic)
		} else {
			m.switchTab(viewmodel.TabMine)
		}

	case key.Matches(msg, listKeys.Sort):
		sel := m.sel
		return m, func() tea.Msg { return OpenSortMenuMsg{Selection: sel} }

	case key.Matches(msg, listKeys.Upvote):
		if m.tab != viewmodel.TabPublic || len(m.visible) == 0 {
			return m, nil
		}
		id := m.visible[m.cursor].ID
		upvoted := m.votes.Toggle(id)
		m.refresh()
		m.focus(id)
		return m, func() tea.Msg { return UpvoteToggledMsg{ReportID: id, Upvoted: upvoted} }

	case key.Matches(msg, listKeys.Open):
		if len(m.visible) == 0 {
			return m, nil
		}
		r := m.visible[m.cursor].Clone()
		return m, func() tea.Msg { return ReportSelectedMsg{Report: r} }
	}
	return m, nil
}

// focus moves the cursor to the report with the given id, if visible.
func (m *ReportListModel) focus(id int) {
	for i, r := range m.visible {
		if r.ID == id {
			m.cursor = i
			m.ensureVisible()
			return
		}
	}
}

func (m *ReportListModel) pageSize() int {
	// Tabs and header take four lines, the footer one.
	return max(1, (m.height-5)/cardHeight)
}

func (m *ReportListModel) ensureVisible() {
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	m.offset = max(0, m.offset)
}

// Resize updates the component size.
func (m *ReportListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// View renders the tabs and the visible page of report cards.
func (m ReportListModel) View() string {
	v := viewmodel.BuildReportList(m.visible, m.tab, m.cursor, m.sel, m.votes)

	sections := []string{m.renderTabs(), m.renderHeader(v)}
	if v.IsEmpty() {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Padding(1, 2).
			Render(v.EmptyMessage))
	} else {
		end := min(len(v.Items), m.offset+m.pageSize())
		for _, item := range v.Items[m.offset:end] {
			sections = append(sections, m.renderCard(item))
		}
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ReportListModel) renderTabs() string {
	tabs := make([]string, 0, len(viewmodel.Tabs))
	for _, t := range viewmodel.Tabs {
		style := m.theme.TabInactive
		if t == m.tab {
			style = m.theme.TabActive
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ReportListModel) renderHeader(v viewmodel.ReportListView) string {
	status := fmt.Sprintf("%s | %s | Progress: %s",
		viewmodel.Plural(len(v.Items), "report"), v.SortLabel, v.FilterLabel)
	return m.theme.Subtitle.Render(status)
}

func (m ReportListModel) renderCard(item viewmodel.ReportItemView) string {
	width := max(20, m.width-4)

	title := fmt.Sprintf("%s %s", themes.GetCategoryIcon(item.Category), viewmodel.TruncateString(item.Title, width-16))
	titleLine := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Bold.Render(title), "  ", m.theme.StatusBadge(item.Status))

	upvote := fmt.Sprintf("▲ %d", item.Upvotes)
	switch {
	case item.Upvoted:
		upvote = lipgloss.NewStyle().Bold(true).Foreground(m.theme.Upvoted).Render(upvote)
	case !item.CanUpvote:
		upvote = lipgloss.NewStyle().Foreground(m.theme.Muted).Render(upvote)
	}
	meta := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(fmt.Sprintf("Created: %s   💬 %d   ", item.Date, item.Comments))

	lines := lipgloss.JoinVertical(lipgloss.Left,
		titleLine,
		m.theme.Normal.Render(viewmodel.TruncateString(item.Description, width)),
		meta+upvote,
	)

	marker := "  "
	if item.IsSelected {
		marker = lipgloss.NewStyle().Foreground(m.theme.Primary).Render("▌ ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, marker, lines) + "\n"
}

func (m ReportListModel) renderFooter() string {
	hints := []string{"[↑↓] Navigate", "[Tab] Switch tab", "[Enter] Open", "[s] Sort & Filter"}
	if m.tab == viewmodel.TabPublic {
		hints = append(hints, "[u] Upvote")
	}
	hints = append(hints, "[?] Help")
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))
}
