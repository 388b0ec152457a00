package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/edulog/etugon/internal/common"
	"github.com/edulog/etugon/internal/model"
	"github.com/edulog/etugon/internal/service"
)

var _ service.Backend = (*Client)(nil)

// ListReports fetches every report the backend knows about.
func (c *Client) ListReports(ctx context.Context) ([]model.Report, error) {
	var reports []model.Report
	if err := c.call(ctx, http.MethodGet, "/reports/", nil, &reports, true); err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []model.Report{}
	}
	return reports, nil
}

// SubmitReport creates a report. It is never retried.
func (c *Client) SubmitReport(ctx context.Context, req model.CreateReportRequest) (*model.Report, error) {
	var report model.Report
	if err := c.call(ctx, http.MethodPost, "/reports", req, &report, false); err != nil {
		return nil, err
	}
	if report.Title == "" {
		report.Title = req.Title
		report.Description = req.Description
		report.Category = req.Category
		report.Location = req.Location
		report.PhotoURLs = req.PhotoURLs
		report.UserID = req.UserID
		report.IsAnonymous = req.IsAnonymous
	}
	if report.Status == "" {
		report.Status = req.Status
	}
	return &report, nil
}

// UpdateStatus sets the status of one report.
func (c *Client) UpdateStatus(ctx context.Context, reportID int, status model.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status %q", status)
	}
	path := fmt.Sprintf("/reports/%d", reportID)
	return c.call(ctx, http.MethodPatch, path, model.StatusUpdate{Status: status}, nil, true)
}

// FindReport returns the report with the given id from a full listing.
func (c *Client) FindReport(ctx context.Context, reportID int) (*model.Report, error) {
	reports, err := c.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	for i := range reports {
		if reports[i].ID == reportID {
			return &reports[i], nil
		}
	}
	return nil, fmt.Errorf("report %d: %w", reportID, common.ErrNotFound)
}
