package schedule

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRE = regexp.MustCompile(` {2,}`)
	anySpaceRE   = regexp.MustCompile(`\s+`)
)

// Normalize replaces non-breaking spaces with plain ones and trims the ends.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, " ", " "))
}

// CompactSpaces additionally folds tabs and runs of spaces into a single
// space.
func CompactSpaces(s string) string {
	s = strings.NewReplacer(" ", " ", "\t", " ").Replace(s)
	s = multiSpaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeGroup produces the comparison key for group labels: en/em dashes
// become hyphens, all whitespace is removed and the result is upper-cased.
// The key is used for equality only, never for display.
func NormalizeGroup(s string) string {
	s = Normalize(s)
	s = strings.NewReplacer("–", "-", "—", "-").Replace(s)
	s = anySpaceRE.ReplaceAllString(s, "")
	return strings.ToUpper(s)
}
