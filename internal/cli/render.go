package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/edulog/etugon/internal/listing"
	"github.com/edulog/etugon/internal/model"
)

// WriteReportTable writes one row per report. votes may be nil.
func WriteReportTable(w io.Writer, reports []model.Report, votes listing.VoteCounter) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, SubtleStyle.Render("No reports found."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tCATEGORY\tCREATED\tUPVOTES\tCOMMENTS")
	for _, r := range reports {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%d\n",
			r.ID,
			r.Title,
			r.Status,
			r.Category,
			r.Date,
			displayCount(votes, r),
			r.Comments)
	}
	return tw.Flush()
}

func displayCount(votes listing.VoteCounter, r model.Report) int {
	if votes == nil {
		return r.Upvotes
	}
	return votes.DisplayCount(r.ID, r.Upvotes)
}

// RenderReportCard renders the detail header of a report.
func RenderReportCard(r model.Report, upvotes int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", FormatStatus(r.Status), SubtleStyle.Render(fmt.Sprintf("#%d", r.ID)))
	if r.Category != "" {
		fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Category:"), r.Category)
	}
	if where := location(r); where != "" {
		fmt.Fprintf(&b, "%s %s\n", PinIcon, where)
	}
	if reporter := reporterName(r); reporter != "" {
		fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Reported by:"), reporter)
	}
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Created:"), r.Date)
	if r.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", r.Description)
	}
	fmt.Fprintf(&b, "\n%s %d   %s %d", UpvoteIcon, upvotes, CommentIcon, r.Comments)
	if len(r.PhotoURLs) > 0 {
		fmt.Fprintf(&b, "\n\n%s", SubtleStyle.Render(strings.Join(r.PhotoURLs, "\n")))
	}

	return RenderBox(r.Title, b.String())
}

func location(r model.Report) string {
	switch {
	case r.Location != "" && r.Barangay != "" && !strings.Contains(r.Location, r.Barangay):
		return r.Location + ", " + r.Barangay
	case r.Location != "":
		return r.Location
	default:
		return r.Barangay
	}
}

func reporterName(r model.Report) string {
	if r.IsAnonymous {
		return "Anonymous"
	}
	return r.Reporter
}

// RenderTimeline renders the resolution steps, one marker per step.
func RenderTimeline(steps []model.TimelineStep) string {
	if len(steps) == 0 {
		return SubtleStyle.Render("No progress recorded yet.")
	}

	var b strings.Builder
	b.WriteString(BoldStyle.Render("Progress Timeline"))
	for i, step := range steps {
		marker, style := stepMarker(step.Status)
		fmt.Fprintf(&b, "\n%s %s  %s",
			style.Render(marker),
			style.Render(step.Title),
			SubtleStyle.Render(step.Time+" "+step.Date))
		if step.Description != "" {
			fmt.Fprintf(&b, "\n%s %s", connector(i, len(steps)), SubtleStyle.Render(step.Description))
		} else if i < len(steps)-1 {
			fmt.Fprintf(&b, "\n%s", connector(i, len(steps)))
		}
	}
	return b.String()
}

func connector(i, n int) string {
	if i == n-1 {
		return " "
	}
	return SubtleStyle.Render("│")
}

func stepMarker(s model.StepStatus) (string, lipgloss.Style) {
	switch s {
	case model.StepCompleted:
		return MarkerCompleted, StatusStyle(model.StatusCompleted)
	case model.StepCurrent:
		return MarkerCurrent, StatusStyle(model.StatusInProgress)
	default:
		return MarkerPending, SubtleStyle
	}
}
