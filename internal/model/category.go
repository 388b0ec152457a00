package model

import (
	"fmt"
	"strings"
)

// Category is the kind of issue a report describes.
type Category string

// Report categories offered by the reporting form.
const (
	CategoryCrimeSafety       Category = "Crime & Safety"
	CategoryHealthSanitation  Category = "Health & Sanitation"
	CategoryTrafficInfra      Category = "Traffic & Infrastructure"
	CategoryEnvironment       Category = "Environment & Disasters"
	CategoryCommunityConcerns Category = "Community Concerns"
	CategoryOthers            Category = "Others"
)

// Categories lists the categories in the order the form shows them.
var Categories = []Category{
	CategoryCrimeSafety,
	CategoryHealthSanitation,
	CategoryTrafficInfra,
	CategoryEnvironment,
	CategoryCommunityConcerns,
	CategoryOthers,
}

// ParseCategory resolves a category label, ignoring case and surrounding space.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}
