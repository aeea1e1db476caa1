package schedule

import "strings"

// segment splits a raw cell block into clean lines: empty lines and
// boilerplate dropped, wrapped fragments glued back onto their line,
// duplicates removed.
func (x *Extractor) segment(block string) []string {
	block = strings.ReplaceAll(block, "\r", "")

	var lines []string
	for _, ln := range strings.Split(block, "\n") {
		ln = CompactSpaces(ln)
		if ln == "" {
			continue
		}
		if x.isBoilerplate(ln) {
			continue
		}
		lines = append(lines, ln)
	}
	return dedupeLines(x.glue(lines))
}

func (x *Extractor) isBoilerplate(line string) bool {
	low := strings.ToLower(line)
	for _, b := range x.h.Boilerplate {
		if strings.Contains(low, b) {
			return true
		}
	}
	return false
}

// glue reattaches fragments the export delivers as separate lines: a line
// that is nothing but a lesson-type tag belongs to the previous line, as does
// a "/"-prefixed room fragment. Single pass; a glued line is not reexamined
// for further gluing.
func (x *Extractor) glue(lines []string) []string {
	var out []string
	for _, ln := range lines {
		if len(out) > 0 && (x.isGlueTag(ln) || strings.HasPrefix(ln, "/")) {
			out[len(out)-1] = CompactSpaces(out[len(out)-1] + " " + ln)
			continue
		}
		out = append(out, ln)
	}
	return out
}

func (x *Extractor) isGlueTag(line string) bool {
	low := strings.ToLower(line)
	for _, tag := range x.h.GlueTags {
		if low == tag {
			return true
		}
	}
	return false
}

// dedupeLines removes repeated lines on a case-insensitive key, keeping
// first-seen order. Both consecutive and scattered repeats collapse.
func dedupeLines(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := lines[:0]
	for _, ln := range lines {
		key := strings.ToLower(ln)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ln)
	}
	return out
}
