package schedule

import "strings"

// Extractor interprets raw spreadsheet exports according to its Heuristics.
// It is stateless between calls and safe for concurrent use.
type Extractor struct {
	h Heuristics

	// Lower-cased label forms, precomputed for the header scan.
	dateLabel string
	timeLabel string
}

// New builds an Extractor. Zero-value heuristic fields fall back to the
// defaults.
func New(h Heuristics) *Extractor {
	h.SetDefaults()
	return &Extractor{
		h:         h,
		dateLabel: strings.ToLower(Normalize(h.DateHeader)),
		timeLabel: strings.ToLower(Normalize(h.TimeHeader)),
	}
}

// Extract pulls the group's merged entries for the requested DD.MM date out
// of raw delimiter-separated text. An empty result is a valid answer, not an
// error; *HeaderNotFoundError and *GroupNotFoundError are the hard failures.
func (x *Extractor) Extract(text, group, date string) ([]Entry, error) {
	t, err := ParseTable(text)
	if err != nil {
		return nil, err
	}
	loc, err := x.locateHeader(t)
	if err != nil {
		return nil, err
	}
	cols, err := x.locateGroupColumns(t, loc.row, group)
	if err != nil {
		return nil, err
	}
	items := dedupeItems(x.walk(t, loc, cols, date))
	return x.MergeByTime(items), nil
}

// ScheduleText composes Extract and Format: the single call the command
// layer makes per request.
func (x *Extractor) ScheduleText(text, group, date string) (string, error) {
	entries, err := x.Extract(text, group, date)
	if err != nil {
		return "", err
	}
	return x.Format(group, date, entries), nil
}
