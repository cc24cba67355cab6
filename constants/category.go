package constants

import "strings"

// DefaultCategory is the sentinel label shown for fields with no category.
// An unset category and the literal label "Default" name the same group in
// every listing, delete and template-extract path.
const DefaultCategory = "Default"

// IsDefaultCategory reports whether a raw category value refers to the
// default (unset) group.
func IsDefaultCategory(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, DefaultCategory)
}

// NormalizeCategory trims a category tag and collapses the default group to
// nil, which is how it is stored.
func NormalizeCategory(s string) *string {
	s = strings.TrimSpace(s)
	if IsDefaultCategory(s) {
		return nil
	}
	return &s
}

// CategoryLabel renders a stored category for display, mapping nil to the
// Default sentinel.
func CategoryLabel(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return DefaultCategory
	}
	return *s
}
