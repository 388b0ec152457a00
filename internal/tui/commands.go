package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const loadTimeout = 30 * time.Second

// loadReports fetches every report from the configured service.
func (m Model) loadReports() tea.Cmd {
	ctx, svc := m.ctx, m.reports
	return func() tea.Msg {
		if svc == nil {
			return reportsLoadedMsg{err: fmt.Errorf("report service not configured")}
		}

		ctx, cancel := context.WithTimeout(ctx, loadTimeout)
		defer cancel()

		reports, err := svc.ListReports(ctx)
		if err != nil {
			return reportsLoadedMsg{err: err}
		}
		return reportsLoadedMsg{reports: reports}
	}
}
