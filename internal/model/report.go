// Package model defines the report, timeline and account types exchanged with the eTugon backend.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle stage of a report.
type Status string

const (
	// StatusPending means the report has not been acted on yet.
	StatusPending Status = "Pending"
	// StatusInProgress means someone is working on the issue.
	StatusInProgress Status = "In Progress"
	// StatusCompleted is terminal.
	StatusCompleted Status = "Completed"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// ParseStatus matches a status label exactly. Matching is case-sensitive on purpose:
// the list filter compares statuses with exact equality and the two must agree.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// Report is a user-submitted record of a local civic issue.
type Report struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    Category       `json:"category,omitempty"`
	Date        string         `json:"date"`
	Status      Status         `json:"status"`
	Location    string         `json:"location,omitempty"`
	Barangay    string         `json:"barangay,omitempty"`
	Reporter    string         `json:"reporter,omitempty"`
	PhotoURLs   []string       `json:"photo_urls,omitempty"`
	Timeline    []TimelineStep `json:"timeline,omitempty"`
	ID          int            `json:"id"`
	UserID      int            `json:"user_id,omitempty"`
	Upvotes     int            `json:"upvotes"`
	Comments    int            `json:"comments"`
	IsAnonymous bool           `json:"is_anonymous,omitempty"`
}

// ParsedDate returns the report date and whether it could be parsed.
func (r Report) ParsedDate() (time.Time, bool) {
	t, err := ParseDate(r.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Clone returns a copy that shares no slices with r.
func (r Report) Clone() Report {
	c := r
	if r.PhotoURLs != nil {
		c.PhotoURLs = append([]string(nil), r.PhotoURLs...)
	}
	if r.Timeline != nil {
		c.Timeline = CloneTimeline(r.Timeline)
	}
	return c
}

// dateLayouts are tried in order. The first is what the backend emits; the rest
// cover dates typed by hand or shown on detail screens ("May 15, 2025").
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// ParseDate parses a report date in any of the supported layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
