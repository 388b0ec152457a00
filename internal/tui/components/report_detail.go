package components

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/edulog/etugon/internal/api"
	"github.com/edulog/etugon/internal/ledger"
	"github.com/edulog/etugon/internal/model"
	"github.com/edulog/etugon/internal/progress"
	"github.com/edulog/etugon/internal/tui/themes"
	"github.com/edulog/etugon/internal/tui/viewmodel"
)

type detailKeyMap struct {
	Complete key.Binding
	Upvote   key.Binding
	Back     key.Binding
}

var detailKeys = detailKeyMap{
	Complete: key.NewBinding(key.WithKeys("c")),
	Upvote:   key.NewBinding(key.WithKeys("u")),
	Back:     key.NewBinding(key.WithKeys("esc", "backspace")),
}

// ReportDetailModel shows one report with its progress timeline.
type ReportDetailModel struct {
	ctx       context.Context
	tracker   *progress.Tracker
	votes     *ledger.Ledger
	theme     themes.Theme
	message   string
	failed    bool
	canUpvote bool
	busy      bool
	width     int
	height    int
}

// NewReportDetail shows the report held by tracker. canUpvote enables the
// upvote key for reports on the public tab.
func NewReportDetail(ctx context.Context, tracker *progress.Tracker, votes *ledger.Ledger, canUpvote bool, theme themes.Theme) ReportDetailModel {
	if votes == nil {
		votes = ledger.New()
	}
	return ReportDetailModel{
		ctx:       ctx,
		tracker:   tracker,
		votes:     votes,
		canUpvote: canUpvote,
		theme:     theme,
		width:     80,
		height:    24,
	}
}

// Busy reports whether a completion request is running.
func (m ReportDetailModel) Busy() bool {
	return m.busy
}

// Message returns the status line text.
func (m ReportDetailModel) Message() string {
	return m.message
}

// Update handles messages.
func (m ReportDetailModel) Update(msg tea.Msg) (ReportDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case CompletionResultMsg:
		if msg.ReportID != m.tracker.Report().ID {
			return m, nil
		}
		m.busy = false
		if msg.Err != nil {
			m.failed = true
			m.message = completionMessage(msg.Err)
		} else {
			m.failed = false
			m.message = "Report marked as completed."
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, detailKeys.Back):
			return m, func() tea.Msg { return BackToListMsg{} }

		case key.Matches(msg, detailKeys.Upvote):
			if !m.canUpvote {
				return m, nil
			}
			id := m.tracker.Report().ID
			upvoted := m.votes.Toggle(id)
			return m, func() tea.Msg { return UpvoteToggledMsg{ReportID: id, Upvoted: upvoted} }

		case key.Matches(msg, detailKeys.Complete):
			if m.busy || !m.tracker.CanComplete() {
				return m, nil
			}
			m.busy = true
			m.failed = false
			m.message = "Marking report as completed..."
			return m, m.complete()
		}
	}
	return m, nil
}

func (m ReportDetailModel) complete() tea.Cmd {
	ctx, tracker := m.ctx, m.tracker
	return func() tea.Msg {
		err := tracker.MarkComplete(ctx)
		return CompletionResultMsg{
			ReportID: tracker.Report().ID,
			Snapshot: tracker.Snapshot(),
			Err:      err,
		}
	}
}

func completionMessage(err error) string {
	switch {
	case errors.Is(err, progress.ErrAlreadyCompleted):
		return "This report is already completed."
	case errors.Is(err, progress.ErrNotInProgress):
		return "Only reports in progress can be marked as completed."
	case errors.Is(err, progress.ErrCompletionInFlight):
		return "Completion is already being saved."
	default:
		return api.Describe(err, "Failed to update report. Please try again.")
	}
}

// View renders the report card, timeline and status line.
func (m ReportDetailModel) View() string {
	r := m.tracker.Report()
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	width := max(30, m.width-4)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Title.Render(fmt.Sprintf("%s %s", themes.GetCategoryIcon(r.Category), r.Title)),
		"  ",
		m.theme.StatusBadge(r.Status))

	var info []string
	if r.Category != "" {
		info = append(info, "Category: "+string(r.Category))
	}
	if r.Barangay != "" {
		info = append(info, "Barangay: "+r.Barangay)
	}
	if r.Location != "" {
		info = append(info, "📍 "+r.Location)
	}
	if r.IsAnonymous {
		info = append(info, "Reported by: Anonymous")
	} else if r.Reporter != "" {
		info = append(info, "Reported by: "+r.Reporter)
	}
	info = append(info, "Created: "+viewmodel.FormatDate(r.Date))

	upvotes := fmt.Sprintf("▲ %d", m.votes.DisplayCount(r.ID, r.Upvotes))
	if m.votes.Has(r.ID) {
		upvotes = lipgloss.NewStyle().Bold(true).Foreground(m.theme.Upvoted).Render(upvotes)
	}

	card := m.theme.RoundedBox.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		muted.Render(strings.Join(info, "\n")),
		"",
		m.theme.Normal.Width(width-4).Render(r.Description),
		"",
		fmt.Sprintf("%s   💬 %d", upvotes, r.Comments),
	))

	sections := []string{header, card, "", m.renderTimeline(m.tracker.Steps())}
	if m.message != "" {
		style := m.theme.StatusInfo
		if m.failed {
			style = m.theme.StatusError
		} else if !m.busy {
			style = m.theme.StatusSuccess
		}
		sections = append(sections, "", style.Render(m.message))
	}
	sections = append(sections, "", muted.Render(m.hints()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ReportDetailModel) hints() string {
	hints := []string{"[Esc] Back"}
	if m.tracker.CanComplete() && !m.busy {
		hints = append(hints, "[c] Mark as completed")
	}
	if m.canUpvote {
		hints = append(hints, "[u] Upvote")
	}
	return strings.Join(hints, "  ")
}

func (m ReportDetailModel) renderTimeline(steps []model.TimelineStep) string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	if len(steps) == 0 {
		return muted.Render("No progress recorded yet.")
	}

	lines := []string{m.theme.Bold.Render("Progress Timeline")}
	for i, step := range steps {
		style := lipgloss.NewStyle().Foreground(m.theme.StepColor(step.Status))
		marker := "○"
		switch step.Status {
		case model.StepCompleted:
			marker = "●"
		case model.StepCurrent:
			marker = "◉"
		}

		lines = append(lines, fmt.Sprintf("%s %s  %s",
			style.Render(marker),
			style.Bold(step.Status != model.StepPending).Render(step.Title),
			muted.Render(step.Time+" · "+step.Date)))

		rail := " "
		if i < len(steps)-1 {
			rail = muted.Render("│")
		}
		if step.Description != "" {
			lines = append(lines, rail+" "+muted.Render(step.Description))
		} else if i < len(steps)-1 {
			lines = append(lines, rail)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
