// Package listing filters and orders report lists for display.
package listing

import (
	"cmp"
	"slices"
	"time"

	"github.com/edulog/etugon/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// VoteCounter supplies the upvote count shown to the user, which may include
// the user's own vote from this session.
type VoteCounter interface {
	DisplayCount(id, base int) int
}

// entry carries a report with its precomputed sort values.
type entry struct {
	date    time.Time
	report  model.Report
	votes   int
	hasDate bool
}

// Apply returns the reports that pass the status filter, ordered by the active
// sort key. The input slice is never modified. votes may be nil, in which case
// base upvote counts are used.
//
// Reports with an unparseable date sort after every dated report in both date
// directions and keep their input order among themselves.
func Apply(reports []model.Report, sel Selection, votes VoteCounter) []model.Report {
	entries := make([]entry, 0, len(reports))
	for _, r := range reports {
		if sel.HasStatusFilter() && r.Status != sel.StatusFilter {
			continue
		}
		e := entry{report: r, votes: r.Upvotes}
		if votes != nil {
			e.votes = votes.DisplayCount(r.ID, r.Upvotes)
		}
		e.date, e.hasDate = r.ParsedDate()
		entries = append(entries, e)
	}

	switch sel.ActiveKey {
	case KeyDate:
		slices.SortStableFunc(entries, func(a, b entry) int {
			return compareDates(a, b, sel.Date)
		})
	case KeyName:
		col := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(entries, func(a, b entry) int {
			c := col.CompareString(a.report.Title, b.report.Title)
			if sel.Name == ZToA {
				return -c
			}
			return c
		})
	case KeyUpvotes:
		slices.SortStableFunc(entries, func(a, b entry) int {
			if sel.Upvotes == LeastUpvotes {
				return cmp.Compare(a.votes, b.votes)
			}
			return cmp.Compare(b.votes, a.votes)
		})
	}

	out := make([]model.Report, len(entries))
	for i, e := range entries {
		out[i] = e.report
	}
	return out
}

func compareDates(a, b entry, dir DateDirection) int {
	switch {
	case !a.hasDate && !b.hasDate:
		return 0
	case !a.hasDate:
		return 1
	case !b.hasDate:
		return -1
	}
	c := a.date.Compare(b.date)
	if dir == Oldest {
		return c
	}
	return -c
}

// Partition splits reports into those owned by userID and everyone else's.
// Order within each half follows the input.
func Partition(reports []model.Report, userID int) (mine, public []model.Report) {
	mine = make([]model.Report, 0)
	public = make([]model.Report, 0)
	for _, r := range reports {
		if userID != 0 && r.UserID == userID {
			mine = append(mine, r)
		} else {
			public = append(public, r)
		}
	}
	return mine, public
}
