package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/edulog/etugon/internal/api"
	"github.com/edulog/etugon/internal/ledger"
	"github.com/edulog/etugon/internal/model"
	"github.com/edulog/etugon/internal/progress"
	"github.com/edulog/etugon/internal/service"
	"github.com/edulog/etugon/internal/tui/components"
	"github.com/edulog/etugon/internal/tui/themes"
	"github.com/edulog/etugon/internal/tui/viewmodel"
)

// State represents the current screen of the TUI.
type State int

const (
	StateList State = iota
	StateSortMenu
	StateDetail
	StateHelp
)

func (s State) String() string {
	switch s {
	case StateList:
		return "Reports"
	case StateSortMenu:
		return "Sort & Filter"
	case StateDetail:
		return "Report"
	case StateHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Model holds the main TUI state.
type Model struct {
	ctx       context.Context
	theme     themes.Theme
	lastError error
	reports   service.ReportService
	votes     *ledger.Ledger
	trackers  map[int]*progress.Tracker
	spinner   spinner.Model
	help      help.Model
	status    string
	all       []model.Report
	list      components.ReportListModel
	menu      components.SortMenuModel
	detail    components.ReportDetailModel
	keymap    KeyMap
	config    Config
	width     int
	height    int
	state     State
	prevState State
	ready     bool
	quitting  bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	if cfg.Votes == nil {
		cfg.Votes = ledger.New()
	}
	list := components.NewReportList(nil, cfg.UserID, cfg.Votes, cfg.Theme)
	list.SetSelection(cfg.Selection)

	m := Model{
		ctx:      ctx,
		theme:    cfg.Theme,
		reports:  cfg.Reports,
		votes:    cfg.Votes,
		trackers: make(map[int]*progress.Tracker),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(cfg.Theme.Primary))),
		help:     help.New(),
		list:     list,
		keymap:   DefaultKeyMap(),
		config:   cfg,
		width:    cfg.Width,
		height:   cfg.Height,
		state:    StateList,
	}
	m.handleResize()
	return m
}

// Init starts loading reports.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadReports(), m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case spinner.TickMsg:
		if m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case reportsLoadedMsg:
		m.handleReportsLoaded(msg)
		return m, nil

	case errorMsg:
		m.setError(msg.err, msg.context)
		return m, nil

	case components.OpenSortMenuMsg:
		m.menu = components.NewSortMenu(msg.Selection, m.theme)
		m.menu, _ = m.menu.Update(m.contentSize())
		m.state = StateSortMenu
		return m, nil

	case components.SelectionChangedMsg:
		m.list.SetSelection(msg.Selection)
		return m, nil

	case components.SortMenuClosedMsg:
		m.list.SetSelection(msg.Selection)
		m.state = StateList
		return m, nil

	case components.ReportSelectedMsg:
		m.openReport(msg.Report)
		return m, nil

	case components.BackToListMsg:
		m.state = StateList
		return m, nil

	case components.UpvoteToggledMsg:
		slog.Debug("Upvote toggled", "report_id", msg.ReportID, "upvoted", msg.Upvoted)
		m.list.SetReports(m.all)
		return m, nil

	case components.CompletionResultMsg:
		if msg.Err != nil {
			slog.Warn("Failed to complete report", "report_id", msg.ReportID, "error", msg.Err)
		} else {
			m.applyCompletion(msg.Snapshot)
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.state {
	case StateList:
		m.list, cmd = m.list.Update(msg)
	case StateSortMenu:
		m.menu, cmd = m.menu.Update(msg)
	case StateDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.renderLoading()
	}

	var content string
	switch m.state {
	case StateList:
		content = m.list.View()
	case StateSortMenu:
		content = m.menu.View()
	case StateDetail:
		content = m.detail.View()
	case StateHelp:
		content = m.renderHelp()
	}
	return m.withStatusBar(content)
}

// handleGlobalKeys handles keys that work regardless of the active component.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return tea.Quit, true

	case m.state == StateHelp:
		if key.Matches(msg, m.keymap.Help, m.keymap.Back, m.keymap.Quit) {
			m.state = m.prevState
		}
		return nil, true

	case key.Matches(msg, m.keymap.Help) && m.state != StateSortMenu:
		m.prevState = m.state
		m.state = StateHelp
		return nil, true

	case key.Matches(msg, m.keymap.Quit) && m.state == StateList:
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keymap.Refresh) && m.state == StateList:
		m.status = "Refreshing reports..."
		return m.loadReports(), true
	}
	return nil, false
}

func (m *Model) handleReportsLoaded(msg reportsLoadedMsg) {
	m.ready = true
	if msg.err != nil {
		m.setError(msg.err, "Failed to load reports.")
		return
	}

	m.lastError = nil
	m.all = msg.reports
	// Trackers hold the previous copy of each report.
	m.trackers = make(map[int]*progress.Tracker)
	m.list.SetReports(m.all)
	m.status = "Loaded " + viewmodel.Plural(len(m.all), "report")
	slog.Debug("Reports loaded", "count", len(m.all))
}

func (m *Model) setError(err error, fallback string) {
	m.lastError = err
	m.status = api.Describe(err, fallback)
	slog.Error("TUI operation failed", "error", err)
}

// tracker returns the tracker of r, creating it on first use.
func (m *Model) tracker(r model.Report) *progress.Tracker {
	if t, ok := m.trackers[r.ID]; ok {
		return t
	}
	opts := []progress.Option{progress.WithPolicy(m.config.Policy)}
	if m.reports != nil {
		opts = append(opts, progress.WithSyncer(m.reports))
	}
	t := progress.New(r, nil, opts...)
	m.trackers[r.ID] = t
	return t
}

func (m *Model) openReport(r model.Report) {
	// Without a signed-in user every report is public and can be upvoted.
	canUpvote := m.config.UserID == 0 || r.UserID != m.config.UserID
	m.detail = components.NewReportDetail(m.ctx, m.tracker(r), m.votes, canUpvote, m.theme)
	m.detail, _ = m.detail.Update(m.contentSize())
	m.state = StateDetail
}

// applyCompletion replaces a completed report with its new state. The list
// gets a fresh slice; the previous one is left as it was.
func (m *Model) applyCompletion(snap progress.Snapshot) {
	all := make([]model.Report, len(m.all))
	for i, r := range m.all {
		if r.ID == snap.ReportID {
			r = r.Clone()
			r.Status = snap.Status
			r.Timeline = model.CloneTimeline(snap.Steps)
		}
		all[i] = r
	}
	m.all = all
	m.list.SetReports(m.all)
}

// contentSize is the area above the status bar.
func (m Model) contentSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.width, Height: max(1, m.height-1)}
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	size := m.contentSize()
	m.list.Resize(size.Width, size.Height)
	m.menu, _ = m.menu.Update(size)
	m.help.Width = m.width
	if m.state == StateDetail {
		m.detail, _ = m.detail.Update(size)
	}
}
