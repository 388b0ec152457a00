// Package progress models a report's resolution timeline and its completion transition.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/edulog/etugon/internal/model"
)

var (
	// ErrAlreadyCompleted is returned when completing a report that is already complete.
	ErrAlreadyCompleted = errors.New("report is already completed")
	// ErrNotInProgress is returned when completing a report that has not been started.
	ErrNotInProgress = errors.New("report is not in progress")
	// ErrCompletionInFlight is returned while another completion of the same report runs.
	ErrCompletionInFlight = errors.New("report completion already in progress")
)

// Syncer pushes a status change to the backend.
type Syncer interface {
	UpdateStatus(ctx context.Context, reportID int, status model.Status) error
}

// Policy decides which timeline steps a completion marks as completed.
type Policy int

const (
	// PolicyCompleteAll completes the current step and every step after it.
	PolicyCompleteAll Policy = iota
	// PolicyCurrentAndFinal completes only the current step and the final step,
	// leaving any steps between them pending.
	PolicyCurrentAndFinal
)

// Snapshot is an immutable view of a tracker's state.
type Snapshot struct {
	Steps    []model.TimelineStep
	ReportID int
	Status   model.Status
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithSyncer makes MarkComplete push the new status before changing local state.
func WithSyncer(s Syncer) Option {
	return func(t *Tracker) {
		t.syncer = s
	}
}

// WithPolicy selects the completion policy.
func WithPolicy(p Policy) Option {
	return func(t *Tracker) {
		t.policy = p
	}
}

// Tracker owns the status and timeline of one report.
type Tracker struct {
	syncer    Syncer
	report    model.Report
	steps     []model.TimelineStep
	observers []func(Snapshot)
	policy    Policy
	mu        sync.Mutex
	inFlight  bool
}

// New creates a tracker for report. If steps is nil the report's own timeline is used.
// Both are copied; later changes to the arguments do not affect the tracker.
func New(report model.Report, steps []model.TimelineStep, opts ...Option) *Tracker {
	if steps == nil {
		steps = report.Timeline
	}
	t := &Tracker{
		report: report.Clone(),
		steps:  model.CloneTimeline(steps),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Status returns the report-level status.
func (t *Tracker) Status() model.Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.report.Status
}

// Steps returns a copy of the timeline.
func (t *Tracker) Steps() []model.TimelineStep {
	t.mu.Lock()
	defer t.mu.Unlock()
	return model.CloneTimeline(t.steps)
}

// Report returns a copy of the report with the tracker's status and timeline.
func (t *Tracker) Report() model.Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.report.Clone()
	r.Timeline = model.CloneTimeline(t.steps)
	return r
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Tracker) snapshotLocked() Snapshot {
	return Snapshot{
		ReportID: t.report.ID,
		Status:   t.report.Status,
		Steps:    model.CloneTimeline(t.steps),
	}
}

// CanComplete reports whether MarkComplete would be accepted now.
func (t *Tracker) CanComplete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.report.Status == model.StatusInProgress && !t.inFlight
}

// OnChange registers fn to be called with the new state after each transition.
func (t *Tracker) OnChange(fn func(Snapshot)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, fn)
}

// MarkComplete moves an in-progress report to Completed.
//
// When a Syncer is configured the backend is updated first; if that fails the
// local state is left untouched. A report can be completed at most once:
// repeated or concurrent calls are rejected.
func (t *Tracker) MarkComplete(ctx context.Context) error {
	t.mu.Lock()
	switch {
	case t.inFlight:
		t.mu.Unlock()
		return ErrCompletionInFlight
	case t.report.Status == model.StatusCompleted:
		t.mu.Unlock()
		return ErrAlreadyCompleted
	case t.report.Status != model.StatusInProgress:
		status := t.report.Status
		t.mu.Unlock()
		return fmt.Errorf("%w: status is %q", ErrNotInProgress, status)
	}
	t.inFlight = true
	id := t.report.ID
	syncer := t.syncer
	t.mu.Unlock()

	if syncer != nil {
		if err := syncer.UpdateStatus(ctx, id, model.StatusCompleted); err != nil {
			t.mu.Lock()
			t.inFlight = false
			t.mu.Unlock()
			return fmt.Errorf("failed to sync completion of report %d: %w", id, err)
		}
	}

	t.mu.Lock()
	t.steps = completeSteps(t.steps, t.policy)
	t.report.Status = model.StatusCompleted
	t.inFlight = false
	snap := t.snapshotLocked()
	observers := slices.Clone(t.observers)
	t.mu.Unlock()

	slog.Debug("Report marked complete", "report_id", id, "steps", len(snap.Steps))

	for _, fn := range observers {
		fn(snap)
	}
	return nil
}

// completeSteps returns a new timeline with the completion applied. The input
// is not modified.
func completeSteps(steps []model.TimelineStep, policy Policy) []model.TimelineStep {
	out := model.CloneTimeline(steps)
	if len(out) == 0 {
		return out
	}

	last := len(out) - 1
	current := model.CurrentIndex(out)

	switch policy {
	case PolicyCurrentAndFinal:
		if current >= 0 {
			out[current].Status = model.StepCompleted
		}
		out[last].Status = model.StepCompleted
	default:
		start := current
		if start < 0 {
			start = firstUnfinished(out)
		}
		for i := start; i <= last; i++ {
			out[i].Status = model.StepCompleted
		}
	}
	return out
}

func firstUnfinished(steps []model.TimelineStep) int {
	for i, s := range steps {
		if s.Status != model.StepCompleted {
			return i
		}
	}
	return len(steps) - 1
}
