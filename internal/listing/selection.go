package listing

import (
	"fmt"

	"github.com/edulog/etugon/internal/model"
)

// SortKey names the section of the sort & filter menu that orders the list.
type SortKey string

// Sort keys. KeyProgress is the status filter section; when it is the active
// key the list keeps its input order.
const (
	KeyProgress SortKey = "progress"
	KeyDate     SortKey = "date"
	KeyName     SortKey = "name"
	KeyUpvotes  SortKey = "upvotes"
)

// Keys lists the menu sections in display order.
var Keys = []SortKey{KeyProgress, KeyDate, KeyName, KeyUpvotes}

// DateDirection orders by report date.
type DateDirection string

// Date directions.
const (
	Newest DateDirection = "newest"
	Oldest DateDirection = "oldest"
)

// NameDirection orders by title.
type NameDirection string

// Name directions.
const (
	AToZ NameDirection = "a-z"
	ZToA NameDirection = "z-a"
)

// UpvoteDirection orders by displayed upvotes.
type UpvoteDirection string

// Upvote directions.
const (
	MostUpvotes  UpvoteDirection = "most"
	LeastUpvotes UpvoteDirection = "least"
)

const optionAll = "All"

// Selection is the filter and sort state of one list screen. Only ActiveKey
// decides the order; the other directions are remembered until their key is
// activated again.
type Selection struct {
	StatusFilter model.Status
	ActiveKey    SortKey
	Date         DateDirection
	Name         NameDirection
	Upvotes      UpvoteDirection
}

// DefaultSelection shows every report, newest first.
func DefaultSelection() Selection {
	return Selection{
		ActiveKey: KeyDate,
		Date:      Newest,
		Name:      AToZ,
		Upvotes:   MostUpvotes,
	}
}

// HasStatusFilter reports whether reports are being filtered by status.
func (s Selection) HasStatusFilter() bool {
	return s.StatusFilter != ""
}

// Title returns the menu heading of a section.
func Title(key SortKey) string {
	switch key {
	case KeyProgress:
		return "Progress"
	case KeyDate:
		return "Date Created"
	case KeyName:
		return "Name"
	case KeyUpvotes:
		return "Upvotes"
	default:
		return string(key)
	}
}

// Options returns the labels a section offers.
func Options(key SortKey) []string {
	switch key {
	case KeyProgress:
		opts := []string{optionAll}
		for _, st := range model.Statuses {
			opts = append(opts, string(st))
		}
		return opts
	case KeyDate:
		return []string{"Newest to Oldest", "Oldest to Newest"}
	case KeyName:
		return []string{"A to Z", "Z to A"}
	case KeyUpvotes:
		return []string{"Most to Least", "Least to Most"}
	default:
		return nil
	}
}

// Label returns the label of the option currently chosen in a section.
func (s Selection) Label(key SortKey) string {
	switch key {
	case KeyProgress:
		if !s.HasStatusFilter() {
			return optionAll
		}
		return string(s.StatusFilter)
	case KeyDate:
		if s.Date == Oldest {
			return "Oldest to Newest"
		}
		return "Newest to Oldest"
	case KeyName:
		if s.Name == ZToA {
			return "Z to A"
		}
		return "A to Z"
	case KeyUpvotes:
		if s.Upvotes == LeastUpvotes {
			return "Least to Most"
		}
		return "Most to Least"
	default:
		return ""
	}
}

// SelectOption applies a menu choice and makes its section the active key.
func (s *Selection) SelectOption(key SortKey, label string) error {
	switch key {
	case KeyProgress:
		if label == optionAll {
			s.StatusFilter = ""
			break
		}
		st, err := model.ParseStatus(label)
		if err != nil {
			return err
		}
		s.StatusFilter = st
	case KeyDate:
		switch label {
		case "Newest to Oldest":
			s.Date = Newest
		case "Oldest to Newest":
			s.Date = Oldest
		default:
			return fmt.Errorf("unknown date option %q", label)
		}
	case KeyName:
		switch label {
		case "A to Z":
			s.Name = AToZ
		case "Z to A":
			s.Name = ZToA
		default:
			return fmt.Errorf("unknown name option %q", label)
		}
	case KeyUpvotes:
		switch label {
		case "Most to Least":
			s.Upvotes = MostUpvotes
		case "Least to Most":
			s.Upvotes = LeastUpvotes
		default:
			return fmt.Errorf("unknown upvotes option %q", label)
		}
	default:
		return fmt.Errorf("unknown sort key %q", key)
	}

	s.ActiveKey = key
	return nil
}

// CycleOption moves a section's choice by delta positions, wrapping around.
func (s *Selection) CycleOption(key SortKey, delta int) {
	opts := Options(key)
	if len(opts) == 0 {
		return
	}
	current := 0
	label := s.Label(key)
	for i, o := range opts {
		if o == label {
			current = i
			break
		}
	}
	next := ((current+delta)%len(opts) + len(opts)) % len(opts)
	// Options come from Options(key), so SelectOption cannot fail here.
	_ = s.SelectOption(key, opts[next])
}

// ParseSortKey resolves a sort key name.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range Keys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q (want progress, date, name or upvotes)", s)
}

// SetOrder sets the direction of the given key from its short name
// (newest/oldest, a-z/z-a, most/least) and activates the key.
func (s *Selection) SetOrder(key SortKey, order string) error {
	switch key {
	case KeyDate:
		switch DateDirection(order) {
		case Newest, Oldest:
			s.Date = DateDirection(order)
		default:
			return fmt.Errorf("date order must be newest or oldest, got %q", order)
		}
	case KeyName:
		switch NameDirection(order) {
		case AToZ, ZToA:
			s.Name = NameDirection(order)
		default:
			return fmt.Errorf("name order must be a-z or z-a, got %q", order)
		}
	case KeyUpvotes:
		switch UpvoteDirection(order) {
		case MostUpvotes, LeastUpvotes:
			s.Upvotes = UpvoteDirection(order)
		default:
			return fmt.Errorf("upvotes order must be most or least, got %q", order)
		}
	case KeyProgress:
		if order != "" {
			return fmt.Errorf("progress ordering takes no direction")
		}
	default:
		return fmt.Errorf("unknown sort key %q", key)
	}
	s.ActiveKey = key
	return nil
}
