package tui

import "github.com/edulog/etugon/internal/model"

// reportsLoadedMsg carries the result of a report fetch.
type reportsLoadedMsg struct {
	err     error
	reports []model.Report
}

// errorMsg surfaces a failure in the status bar.
type errorMsg struct {
	err     error
	context string
}
