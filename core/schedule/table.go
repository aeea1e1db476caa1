package schedule

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// delimiterSampleBytes bounds how much of the text is inspected when choosing
// between comma and semicolon.
const delimiterSampleBytes = 4096

// Table is the parsed spreadsheet export: ordered rows of cells, ragged by
// nature. Readers never index rows directly; Cell treats a missing cell as an
// empty string, which is the single place the "short row = blank cells" rule
// lives.
type Table struct {
	rows [][]string
}

// DetectDelimiter picks comma or semicolon by counting both in a sample of
// the text. Exports from different sheets disagree on the delimiter.
func DetectDelimiter(text string) rune {
	sample := text
	if len(sample) > delimiterSampleBytes {
		sample = sample[:delimiterSampleBytes]
	}
	if strings.Count(sample, ";") > strings.Count(sample, ",") {
		return ';'
	}
	return ','
}

// ParseTable reads delimiter-separated text into a Table. Rows keep whatever
// width the export gave them.
func ParseTable(text string) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = DetectDelimiter(text)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}
	return &Table{rows: rows}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns row i, or nil when out of range.
func (t *Table) Row(i int) []string {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

// Cell returns the cell at (row, col), or "" when the row is shorter. The
// export routinely truncates trailing empty cells, so out-of-range access is
// expected, not an error.
func (t *Table) Cell(row, col int) string {
	r := t.Row(row)
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
