package ingest

import (
	"bytes"
	"fmt"

	"github.com/tealeg/xlsx/v2"
)

// ParseXLSX reads the first sheet of an .xlsx workbook through the same row
// pipeline as Parse. Rows shorter than the header are padded, and trailing
// empty cells beyond the header width are dropped, since spreadsheet
// applications do not store empty trailing cells.
func ParseXLSX(data []byte, opts Options) (*Result, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, fmt.Errorf("%w: opening workbook: %w", ErrUnsupportedFormat, err)
	}
	if len(f.Sheets) == 0 {
		return nil, ErrNoHeader
	}

	var records []record
	width := -1
	for i, row := range f.Sheets[0].Rows {
		cells := rowToStrings(row)
		if blank(cells) {
			continue
		}
		if width < 0 {
			cells = trimTrailing(cells, 0)
			width = len(cells)
		} else {
			cells = fitWidth(cells, width)
		}
		records = append(records, record{line: i + 1, cells: cells})
	}

	return process(records, opts.withDefaults())
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}

// trimTrailing drops empty cells past position min.
func trimTrailing(cells []string, minLen int) []string {
	n := len(cells)
	for n > minLen && cells[n-1] == "" {
		n--
	}
	return cells[:n]
}

func fitWidth(cells []string, width int) []string {
	cells = trimTrailing(cells, width)
	for len(cells) < width {
		cells = append(cells, "")
	}
	return cells
}
