package schedule

import (
	"fmt"
	"strings"
)

// Format renders merged entries as the reply message: a title line, one
// bulleted line per slot with continuation lines indented, and a blank line
// between slots.
func (x *Extractor) Format(group, date string, entries []Entry) string {
	title := fmt.Sprintf("%s — %s:", group, date)
	if len(entries) == 0 {
		return title + "\n" + x.h.NoClasses
	}

	out := []string{title}
	for _, e := range entries {
		if len(e.Lines) == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("• %s — %s", e.Time, e.Lines[0]))
		for _, extra := range e.Lines[1:] {
			out = append(out, "  "+extra)
		}
		out = append(out, "")
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
