package schedule

import (
	"fmt"
	"strings"
)

// HeaderNotFoundError reports that no row within the scan window contained
// both header labels. It indicates a source-format or configuration problem
// and is never retried.
type HeaderNotFoundError struct {
	DateLabel string
	TimeLabel string
	Scanned   int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("header row with %q and %q not found in the first %d rows",
		e.DateLabel, e.TimeLabel, e.Scanned)
}

// GroupNotFoundError reports that no column below the header matched the
// requested group. Siblings lists group-like labels seen in the same scan
// window so a typo in the group name can be corrected without a log search.
type GroupNotFoundError struct {
	Group    string
	Siblings []string
	Scanned  int
}

func (e *GroupNotFoundError) Error() string {
	if len(e.Siblings) == 0 {
		return fmt.Sprintf("group column %q not found within %d rows below the header; no similar labels seen",
			e.Group, e.Scanned)
	}
	return fmt.Sprintf("group column %q not found within %d rows below the header; labels seen: %s",
		e.Group, e.Scanned, strings.Join(e.Siblings, ", "))
}
