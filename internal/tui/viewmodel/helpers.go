package viewmodel

import (
	"fmt"
	"strings"

	"github.com/edulog/etugon/internal/model"
)

// String returns the tab's label.
func (t Tab) String() string {
	switch t {
	case TabMine:
		return "My Reports"
	case TabPublic:
		return "Public Reports"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// TruncateString shortens s to maxLen runes, ending in an ellipsis when cut.
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:max(maxLen, 0)])
	}
	return string(r[:maxLen-3]) + "..."
}

// SanitizeForDisplay removes potentially problematic characters for terminal display.
func SanitizeForDisplay(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' {
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

// FormatDate renders a report date as "May 15, 2025", or as given when it
// cannot be parsed.
func FormatDate(s string) string {
	t, err := model.ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// Plural returns "1 report" or "n reports".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
