package schedule

import "strings"

// Entry is a merged block of lines for one time slot, in display order.
type Entry struct {
	Time  string
	Lines []string
}

// dedupeItems drops items whose (time, text) pair was already seen, keeping
// first-seen order. Overlapping group columns can surface the same physical
// block twice.
func dedupeItems(items []Item) []Item {
	type key struct{ time, text string }
	seen := make(map[key]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		k := key{it.Time, it.Text}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}

// MergeByTime groups items by time label in order of first appearance. Lines
// within a slot are deduplicated case-insensitively, and the placeholder
// survives only when it is all a slot has.
func (x *Extractor) MergeByTime(items []Item) []Entry {
	var order []string
	buckets := make(map[string][]string)

	for _, it := range items {
		tm := strings.TrimSpace(it.Time)
		tx := strings.TrimSpace(it.Text)
		if tm == "" || tx == "" {
			continue
		}
		if _, ok := buckets[tm]; !ok {
			order = append(order, tm)
			buckets[tm] = nil
		}
		for _, ln := range strings.Split(tx, "\n") {
			ln = strings.TrimSpace(ln)
			if ln == "" {
				continue
			}
			if !containsFold(buckets[tm], ln) {
				buckets[tm] = append(buckets[tm], ln)
			}
		}
	}

	entries := make([]Entry, 0, len(order))
	for _, tm := range order {
		entries = append(entries, Entry{Time: tm, Lines: x.suppressPlaceholder(buckets[tm])})
	}
	return entries
}

// suppressPlaceholder drops the "no class" line from a slot that also has
// real content.
func (x *Extractor) suppressPlaceholder(lines []string) []string {
	real := false
	for _, ln := range lines {
		if ln != x.h.Placeholder {
			real = true
			break
		}
	}
	if !real {
		return lines
	}
	out := lines[:0]
	for _, ln := range lines {
		if ln != x.h.Placeholder {
			out = append(out, ln)
		}
	}
	return out
}

func containsFold(lines []string, s string) bool {
	for _, ln := range lines {
		if strings.EqualFold(ln, s) {
			return true
		}
	}
	return false
}
