package model

import (
	"errors"
	"fmt"
)

// StepStatus is the sub-state of one timeline step.
type StepStatus string

const (
	// StepCompleted marks a step that has happened.
	StepCompleted StepStatus = "completed"
	// StepCurrent marks the step being worked on.
	StepCurrent StepStatus = "current"
	// StepPending marks a step that has not started.
	StepPending StepStatus = "pending"
)

// ErrInvalidTimeline is returned by ValidateTimeline.
var ErrInvalidTimeline = errors.New("invalid timeline")

// TimelineStep is one entry in a report's resolution history.
type TimelineStep struct {
	Time        string     `json:"time"`
	Date        string     `json:"date"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      StepStatus `json:"status"`
}

// CloneTimeline copies steps into a new slice.
func CloneTimeline(steps []TimelineStep) []TimelineStep {
	out := make([]TimelineStep, len(steps))
	copy(out, steps)
	return out
}

// CurrentIndex returns the index of the current step, or -1.
func CurrentIndex(steps []TimelineStep) int {
	for i, s := range steps {
		if s.Status == StepCurrent {
			return i
		}
	}
	return -1
}

// ValidateTimeline checks the ordering invariant: zero or more completed steps,
// at most one current step, then only pending steps.
func ValidateTimeline(steps []TimelineStep) error {
	seenCurrent := false
	seenPending := false
	for i, s := range steps {
		switch s.Status {
		case StepCompleted:
			if seenCurrent || seenPending {
				return fmt.Errorf("%w: step %d is completed after an unfinished step", ErrInvalidTimeline, i)
			}
		case StepCurrent:
			if seenCurrent {
				return fmt.Errorf("%w: more than one current step", ErrInvalidTimeline)
			}
			if seenPending {
				return fmt.Errorf("%w: current step %d follows a pending step", ErrInvalidTimeline, i)
			}
			seenCurrent = true
		case StepPending:
			seenPending = true
		default:
			return fmt.Errorf("%w: step %d has unknown status %q", ErrInvalidTimeline, i, s.Status)
		}
	}
	return nil
}
