package sheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads a local workbook export and re-emits its first sheet as
// semicolon-separated text, so the schedule pipeline consumes CSV and XLSX
// exports through the same path.
type XLSXSource struct {
	path string
}

// NewXLSXSource builds a source for the given workbook path.
func NewXLSXSource(path string) *XLSXSource {
	return &XLSXSource{path: path}
}

// Fetch reads the workbook on every call; local files are cheap enough that
// no cache window applies.
func (s *XLSXSource) Fetch(_ context.Context) (string, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return "", fmt.Errorf("workbook %s has no sheets", s.path)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("encode sheet %q: %w", sheetName, err)
	}
	return buf.String(), nil
}
