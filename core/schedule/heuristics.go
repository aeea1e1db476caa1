package schedule

import "fmt"

// Heuristics declares the pattern tables driving table interpretation. The
// defaults match the source spreadsheet's conventions; deployments against a
// differently labelled export override them in configuration instead of
// touching the pipeline.
type Heuristics struct {
	// DateHeader and TimeHeader are the header-cell labels that identify the
	// date and time columns. Compared after normalization and lower-casing.
	DateHeader string `json:"date_header"`
	TimeHeader string `json:"time_header"`
	// HeaderScanRows bounds the scan for the header row from the top of the
	// table.
	HeaderScanRows int `json:"header_scan_rows"`
	// GroupScanRows bounds the scan for group columns below the header row.
	GroupScanRows int `json:"group_scan_rows"`
	// Boilerplate lists case-insensitive substrings marking lines that leaked
	// into cells from merged administrative headers.
	Boilerplate []string `json:"boilerplate"`
	// GlueTags are lesson-type abbreviations that, alone on a line, belong to
	// the previous line.
	GlueTags []string `json:"glue_tags"`
	// Placeholder is the text of a synthesized "no class in this slot" entry.
	Placeholder string `json:"placeholder"`
	// NoClasses is the message body when the date has no entries at all.
	NoClasses string `json:"no_classes"`
}

// SetDefaults fills unset fields with the source spreadsheet's conventions.
func (h *Heuristics) SetDefaults() {
	if h.DateHeader == "" {
		h.DateHeader = "дата"
	}
	if h.TimeHeader == "" {
		h.TimeHeader = "часы"
	}
	if h.HeaderScanRows == 0 {
		h.HeaderScanRows = 60
	}
	if h.GroupScanRows == 0 {
		h.GroupScanRows = 12
	}
	if h.Boilerplate == nil {
		h.Boilerplate = []string{"семестр", "утверждаю"}
	}
	if h.GlueTags == nil {
		h.GlueTags = []string{"пр", "лек"}
	}
	if h.Placeholder == "" {
		h.Placeholder = "нет пары"
	}
	if h.NoClasses == "" {
		h.NoClasses = "нет пар"
	}
}

// Validate checks mandatory fields.
func (h Heuristics) Validate() error {
	if h.HeaderScanRows < 1 {
		return fmt.Errorf("header_scan_rows must be positive, got %d", h.HeaderScanRows)
	}
	if h.GroupScanRows < 1 {
		return fmt.Errorf("group_scan_rows must be positive, got %d", h.GroupScanRows)
	}
	if h.DateHeader == "" || h.TimeHeader == "" {
		return fmt.Errorf("date_header and time_header are required")
	}
	if h.Placeholder == "" {
		return fmt.Errorf("placeholder is required")
	}
	return nil
}
