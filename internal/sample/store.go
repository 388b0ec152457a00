package sample

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/edulog/etugon/internal/common"
	"github.com/edulog/etugon/internal/model"
	"github.com/edulog/etugon/internal/service"
)

var _ service.ReportService = (*Store)(nil)

var now = time.Now

func today() string {
	return now().Format(time.DateOnly)
}

// Store is an in-memory ReportService seeded with the sample reports. Changes
// live only as long as the process.
type Store struct {
	reports []model.Report
	nextID  int
	mu      sync.Mutex
}

// NewStore returns a store holding Reports().
func NewStore() *Store {
	rs := Reports()
	next := 1
	for _, r := range rs {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return &Store{reports: rs, nextID: next}
}

// ListReports returns a copy of every report.
func (s *Store) ListReports(_ context.Context) ([]model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Report, len(s.reports))
	for i, r := range s.reports {
		out[i] = r.Clone()
	}
	return out, nil
}

// SubmitReport appends a new report dated today.
func (s *Store) SubmitReport(_ context.Context, req model.CreateReportRequest) (*model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := model.Report{
		ID:          s.nextID,
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		PhotoURLs:   append([]string(nil), req.PhotoURLs...),
		Status:      req.Status,
		Date:        today(),
		IsAnonymous: req.IsAnonymous,
	}
	if r.Status == "" {
		r.Status = model.StatusPending
	}
	s.nextID++
	s.reports = append(s.reports, r)

	out := r.Clone()
	return &out, nil
}

// UpdateStatus changes the status of one report.
func (s *Store) UpdateStatus(_ context.Context, reportID int, status model.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == reportID {
			s.reports[i].Status = status
			if status == model.StatusCompleted {
				steps := model.CloneTimeline(s.reports[i].Timeline)
				for j := range steps {
					steps[j].Status = model.StepCompleted
				}
				s.reports[i].Timeline = steps
			}
			return nil
		}
	}
	return fmt.Errorf("report %d: %w", reportID, common.ErrNotFound)
}
