package schedule

import "strings"

// Item is one scheduling entry attributed to a time slot on the requested
// date. Text is a cleaned, newline-joined block; the placeholder text marks a
// slot with nothing scheduled.
type Item struct {
	Time string
	Text string
}

// walk iterates the rows below the header carrying the current date and time
// forward. The export prints a date or time only on the first row of a block
// and leaves the following rows blank, so a blank cell inherits the most
// recently seen value above it.
func (x *Extractor) walk(t *Table, loc headerLocation, cols []int, date string) []Item {
	var items []Item
	var curDate, curTime string

	for i := loc.row + 1; i < t.Len(); i++ {
		if d, ok := ParseDayMonth(Normalize(t.Cell(i, loc.dateCol))); ok {
			curDate = d
		}
		if tm, ok := ParseTimeRange(Normalize(t.Cell(i, loc.timeCol))); ok {
			curTime = tm
		}

		// Carried state must advance even on skipped rows: a date block spans
		// many rows and only the first of them carries the token.
		if curDate != date {
			continue
		}
		// A row without any time above it cannot be attributed to a slot.
		if curTime == "" {
			continue
		}

		var parts []string
		for _, j := range cols {
			if v := Normalize(t.Cell(i, j)); v != "" {
				parts = append(parts, v)
			}
		}
		if len(parts) == 0 {
			// Date and time matched but the group columns are empty: an
			// explicit "nothing scheduled this slot" signal.
			items = append(items, Item{Time: curTime, Text: x.h.Placeholder})
			continue
		}

		lines := x.segment(strings.Join(parts, "\n"))
		if len(lines) == 0 {
			items = append(items, Item{Time: curTime, Text: x.h.Placeholder})
			continue
		}
		items = append(items, Item{Time: curTime, Text: strings.Join(lines, "\n")})
	}
	return items
}
