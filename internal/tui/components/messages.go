package components

import (
	"github.com/edulog/etugon/internal/listing"
	"github.com/edulog/etugon/internal/model"
	"github.com/edulog/etugon/internal/progress"
)

// ReportSelectedMsg opens the detail screen of a report.
type ReportSelectedMsg struct {
	Report model.Report
}

// BackToListMsg requests to go back to the report list.
type BackToListMsg struct{}

// OpenSortMenuMsg opens the Sort & Filter menu.
type OpenSortMenuMsg struct {
	Selection listing.Selection
}

// SelectionChangedMsg carries a menu choice while the menu is still open.
type SelectionChangedMsg struct {
	Selection listing.Selection
}

// SortMenuClosedMsg closes the menu with its final selection.
type SortMenuClosedMsg struct {
	Selection listing.Selection
}

// UpvoteToggledMsg reports a local upvote change.
type UpvoteToggledMsg struct {
	ReportID int
	Upvoted  bool
}

// CompletionResultMsg is the outcome of marking a report complete.
type CompletionResultMsg struct {
	Err      error
	Snapshot progress.Snapshot
	ReportID int
}
