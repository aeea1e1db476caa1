package schedule

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	// Day.month with an optional year suffix: 2.2, 02-02, 02/02/26, 02.02.2026.
	dayMonthRE = regexp.MustCompile(`\b(\d{1,2})[.\-/](\d{1,2})(?:[.\-/]\d{2,4})?\b`)
	// A start time or a range: 8:30, 8.30, 8:30-10:05, 8.30–10.05.
	timeRangeRE = regexp.MustCompile(`\b(\d{1,2})[.:](\d{2})(?:\s*[-–—]\s*(\d{1,2})[.:](\d{2}))?\b`)
)

// ParseDayMonth extracts the first day.month token from free text and returns
// it zero-padded as "DD.MM". A year suffix is matched and discarded: the
// schedule covers one academic term and is year-agnostic.
func ParseDayMonth(text string) (string, bool) {
	m := dayMonthRE.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%02d.%02d", day, month), true
}

// ParseTimeRange extracts the first time or time-range token and returns it
// in canonical form: unpadded hours, two-digit minutes, an en dash between
// start and end. A bare start time is a valid label on its own.
func ParseTimeRange(text string) (string, bool) {
	m := timeRangeRE.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	start, _ := strconv.Atoi(m[1])
	if m[3] != "" {
		end, _ := strconv.Atoi(m[3])
		return fmt.Sprintf("%d:%s–%d:%s", start, m[2], end, m[4]), true
	}
	return fmt.Sprintf("%d:%s", start, m[2]), true
}
