package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/edulog/etugon/internal/api"
	"github.com/edulog/etugon/internal/common"
	"github.com/edulog/etugon/internal/listing"
	"github.com/edulog/etugon/internal/model"
	"github.com/edulog/etugon/internal/sample"
	"github.com/edulog/etugon/internal/tui/components"
	"github.com/edulog/etugon/internal/tui/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReports struct {
	err error
}

func (f failingReports) ListReports(context.Context) ([]model.Report, error) {
	return nil, f.err
}

func (f failingReports) SubmitReport(context.Context, model.CreateReportRequest) (*model.Report, error) {
	return nil, f.err
}

func (f failingReports) UpdateStatus(context.Context, int, model.Status) error {
	return f.err
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// send delivers msg and then feeds back every message its command produces,
// the way the bubbletea runtime would.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	for msg != nil {
		next, cmd := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
		msg = nil
		if cmd != nil {
			msg = cmd()
		}
	}
	return m
}

func loadedModel(t *testing.T, store *sample.Store) Model {
	t.Helper()
	cfg := defaultConfig()
	cfg.Reports = store
	cfg.UserID = sample.OwnerID
	cfg.Width, cfg.Height = 100, 40

	m := newModel(context.Background(), cfg)
	return send(t, m, m.loadReports()())
}

func TestModel_LoadsReports(t *testing.T) {
	m := loadedModel(t, sample.NewStore())

	require.True(t, m.ready)
	assert.Equal(t, StateList, m.state)
	assert.Equal(t, "Loaded 4 reports", m.status)
	assert.Len(t, m.all, 4)

	view := m.View()
	assert.Contains(t, view, "Flooded Road")
	assert.Contains(t, view, "Broken Street Light")
	assert.NotContains(t, view, "Overflowing Garbage")
}

func TestModel_LoadFailure(t *testing.T) {
	cfg := defaultConfig()
	cfg.Reports = failingReports{err: common.ErrNetwork}
	m := newModel(context.Background(), cfg)
	assert.Contains(t, m.View(), "Loading reports...")

	m = send(t, m, m.loadReports()())
	require.Error(t, m.lastError)
	assert.Equal(t, api.NetworkMessage, m.status)
	assert.Contains(t, m.View(), api.NetworkMessage)
	assert.Contains(t, m.View(), viewmodel.EmptyMine)
}

func TestModel_CompleteFromDetail(t *testing.T) {
	store := sample.NewStore()
	m := loadedModel(t, store)

	before := m.all

	m = send(t, m, keyMsg("j"))
	m = send(t, m, keyMsg("enter"))
	require.Equal(t, StateDetail, m.state)
	assert.Contains(t, m.View(), "Broken Street Light")

	m = send(t, m, keyMsg("c"))
	assert.Equal(t, "Report marked as completed.", m.detail.Message())

	for _, r := range m.all {
		if r.ID == 1 {
			assert.Equal(t, model.StatusCompleted, r.Status)
			for _, step := range r.Timeline {
				assert.Equal(t, model.StepCompleted, step.Status)
			}
		}
	}

	// The slice loaded earlier is replaced, not written through.
	for _, r := range before {
		if r.ID == 1 {
			assert.Equal(t, model.StatusInProgress, r.Status)
		}
	}

	stored, err := store.ListReports(context.Background())
	require.NoError(t, err)
	for _, r := range stored {
		if r.ID == 1 {
			assert.Equal(t, model.StatusCompleted, r.Status)
		}
	}

	m = send(t, m, keyMsg("esc"))
	assert.Equal(t, StateList, m.state)

	sel := listing.DefaultSelection()
	require.NoError(t, sel.SelectOption(listing.KeyProgress, "Completed"))
	m = send(t, m, components.SortMenuClosedMsg{Selection: sel})
	assert.Len(t, m.list.Visible(), 2, "both of the user's reports are now completed")
}

func TestModel_CompleteFailureKeepsState(t *testing.T) {
	m := loadedModel(t, sample.NewStore())
	m.reports = failingReports{err: &api.APIError{StatusCode: 500, Detail: "Database unavailable"}}

	m = send(t, m, keyMsg("j"))
	m = send(t, m, keyMsg("enter"))
	m = send(t, m, keyMsg("c"))

	assert.Equal(t, "Database unavailable", m.detail.Message())
	for _, r := range m.all {
		if r.ID == 1 {
			assert.Equal(t, model.StatusInProgress, r.Status)
		}
	}
}

func TestModel_SortMenu(t *testing.T) {
	m := loadedModel(t, sample.NewStore())

	m = send(t, m, keyMsg("s"))
	require.Equal(t, StateSortMenu, m.state)

	// Date Created -> Name, then choose Z to A.
	m = send(t, m, keyMsg("j"))
	m = send(t, m, keyMsg("l"))
	assert.Equal(t, listing.KeyName, m.list.Selection().ActiveKey, "the list previews the choice")

	m = send(t, m, keyMsg("esc"))
	assert.Equal(t, StateList, m.state)
	assert.Equal(t, listing.ZToA, m.list.Selection().Name)

	titles := make([]string, 0, 2)
	for _, r := range m.list.Visible() {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"Flooded Road", "Broken Street Light"}, titles)
}

func TestModel_UpvoteFromDetailRefreshesList(t *testing.T) {
	m := loadedModel(t, sample.NewStore())

	sel := listing.DefaultSelection()
	require.NoError(t, sel.SelectOption(listing.KeyUpvotes, "Most to Least"))
	m = send(t, m, components.SortMenuClosedMsg{Selection: sel})
	m = send(t, m, keyMsg("tab"))
	require.Equal(t, viewmodel.TabPublic, m.list.Tab())

	// Damaged Pavement (8) sits below Overflowing Garbage (12).
	m = send(t, m, keyMsg("j"))
	m = send(t, m, keyMsg("enter"))
	require.Equal(t, StateDetail, m.state)
	m = send(t, m, keyMsg("u"))
	assert.True(t, m.votes.Has(4))
	assert.Contains(t, m.View(), "▲ 9")

	m = send(t, m, keyMsg("esc"))
	assert.Contains(t, m.View(), "▲ 9")
}

func TestModel_HelpAndQuit(t *testing.T) {
	m := loadedModel(t, sample.NewStore())

	m = send(t, m, keyMsg("?"))
	assert.Equal(t, StateHelp, m.state)
	assert.Contains(t, m.View(), "mark as completed")

	m = send(t, m, keyMsg("?"))
	assert.Equal(t, StateList, m.state)

	next, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModel_QuitIgnoredInDetail(t *testing.T) {
	m := loadedModel(t, sample.NewStore())
	m = send(t, m, keyMsg("enter"))

	_, cmd := m.Update(keyMsg("q"))
	assert.Nil(t, cmd)

	_, cmd = m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRun_RequiresReports(t *testing.T) {
	err := Run(context.Background())
	assert.ErrorContains(t, err, "report service is required")
}
