package schedule

import (
	"sort"
	"strings"
)

// headerLocation pins the header row and the date/time columns within it.
type headerLocation struct {
	row     int
	dateCol int
	timeCol int
}

// locateHeader scans the top of the table for the first row containing both
// header labels. First match wins; the labels are compared after
// normalization and lower-casing.
func (x *Extractor) locateHeader(t *Table) (headerLocation, error) {
	limit := min(x.h.HeaderScanRows, t.Len())
	for i := 0; i < limit; i++ {
		dateCol, timeCol := -1, -1
		for j, cell := range t.Row(i) {
			switch strings.ToLower(Normalize(cell)) {
			case x.dateLabel:
				if dateCol < 0 {
					dateCol = j
				}
			case x.timeLabel:
				if timeCol < 0 {
					timeCol = j
				}
			}
		}
		if dateCol >= 0 && timeCol >= 0 {
			return headerLocation{row: i, dateCol: dateCol, timeCol: timeCol}, nil
		}
	}
	return headerLocation{}, &HeaderNotFoundError{
		DateLabel: x.h.DateHeader,
		TimeLabel: x.h.TimeHeader,
		Scanned:   limit,
	}
}

// locateGroupColumns collects every column in the window at and below the
// header whose normalized label equals the requested group. Merged cells in
// the source legitimately spread one group over several columns, so the
// result may have more than one index.
func (x *Extractor) locateGroupColumns(t *Table, headerRow int, group string) ([]int, error) {
	want := NormalizeGroup(group)
	limit := min(headerRow+x.h.GroupScanRows, t.Len())

	cols := make(map[int]struct{})
	siblings := make(map[string]struct{})
	for i := headerRow; i < limit; i++ {
		for j, cell := range t.Row(i) {
			key := NormalizeGroup(cell)
			if key == "" {
				continue
			}
			if key == want {
				cols[j] = struct{}{}
				continue
			}
			if groupLike(key, want) {
				siblings[Normalize(cell)] = struct{}{}
			}
		}
	}

	if len(cols) == 0 {
		seen := make([]string, 0, len(siblings))
		for s := range siblings {
			seen = append(seen, s)
		}
		sort.Strings(seen)
		return nil, &GroupNotFoundError{Group: group, Siblings: seen, Scanned: x.h.GroupScanRows}
	}

	out := make([]int, 0, len(cols))
	for j := range cols {
		out = append(out, j)
	}
	sort.Ints(out)
	return out, nil
}

// groupLike reports whether a label plausibly names another group: it shares
// the first two runes of the requested group's normalized name.
func groupLike(key, want string) bool {
	kr := []rune(key)
	wr := []rune(want)
	if len(kr) < 2 || len(wr) < 2 {
		return false
	}
	return kr[0] == wr[0] && kr[1] == wr[1]
}
