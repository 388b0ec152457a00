// Package viewmodel holds the display data the report browser renders.
package viewmodel

import (
	"github.com/edulog/etugon/internal/listing"
	"github.com/edulog/etugon/internal/model"
)

// Tab is one of the two report lists.
type Tab int

const (
	// TabMine lists reports the user submitted.
	TabMine Tab = iota
	// TabPublic lists everyone else's reports.
	TabPublic
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabMine, TabPublic}

// Empty-state messages per tab.
const (
	EmptyMine   = "You haven't submitted any reports yet."
	EmptyPublic = "No public reports match the current filter."
)

// ReportListView is everything the list screen shows.
type ReportListView struct {
	Items        []ReportItemView
	SortLabel    string
	FilterLabel  string
	EmptyMessage string
	Tab          Tab
	Cursor       int
}

// ReportItemView is one card in the list.
type ReportItemView struct {
	Title       string
	Description string
	Date        string
	Status      model.Status
	Category    model.Category
	ID          int
	Upvotes     int
	Comments    int
	Upvoted     bool
	CanUpvote   bool
	IsSelected  bool
}

// Votes is the part of the upvote ledger the list needs.
type Votes interface {
	listing.VoteCounter
	Has(id int) bool
}

// BuildReportList turns the already filtered and sorted reports of one tab
// into display data. votes may be nil.
func BuildReportList(reports []model.Report, tab Tab, cursor int, sel listing.Selection, votes Votes) ReportListView {
	v := ReportListView{
		Tab:         tab,
		Cursor:      cursor,
		SortLabel:   listing.Title(sel.ActiveKey) + ": " + sel.Label(sel.ActiveKey),
		FilterLabel: sel.Label(listing.KeyProgress),
		Items:       make([]ReportItemView, 0, len(reports)),
	}

	if len(reports) == 0 {
		v.EmptyMessage = EmptyMine
		if tab == TabPublic || sel.HasStatusFilter() {
			v.EmptyMessage = EmptyPublic
		}
	}

	for i, r := range reports {
		item := ReportItemView{
			ID:          r.ID,
			Title:       SanitizeForDisplay(r.Title),
			Description: SanitizeForDisplay(r.Description),
			Date:        FormatDate(r.Date),
			Status:      r.Status,
			Category:    r.Category,
			Upvotes:     r.Upvotes,
			Comments:    r.Comments,
			CanUpvote:   tab == TabPublic,
			IsSelected:  i == cursor,
		}
		if votes != nil {
			item.Upvotes = votes.DisplayCount(r.ID, r.Upvotes)
			item.Upvoted = votes.Has(r.ID)
		}
		v.Items = append(v.Items, item)
	}
	return v
}

// IsEmpty returns true if there are no reports in the list.
func (v ReportListView) IsEmpty() bool {
	return len(v.Items) == 0
}

// Selected returns the item under the cursor.
func (v ReportListView) Selected() (ReportItemView, bool) {
	if v.Cursor < 0 || v.Cursor >= len(v.Items) {
		return ReportItemView{}, false
	}
	return v.Items[v.Cursor], true
}
