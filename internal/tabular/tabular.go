// Package tabular parses uploaded catalog files (CSV or OOXML workbooks)
// into a normalized header + rows representation.
package tabular

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/catalogmapper/catalog-mapper/constants"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
)

const (
	// SampleRowCount bounds how many of the first data rows are inspected
	// for per-column sample values.
	SampleRowCount = 3

	// MaxStoredRows caps how many rows are materialized; ParsedFile.RowCount
	// still reports the true total.
	MaxStoredRows = 5000
)

// ErrNoUsableColumns is returned when the header row yields zero non-blank
// column names. Callers reject the upload.
var ErrNoUsableColumns = errors.New("no usable columns in header row")

// Parse parses raw file bytes into columns with sample values and data rows.
// The filename is used only to pick the container format.
func Parse(data []byte, filename string) (*entity.ParsedFile, error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	switch ext {
	case "csv":
		grid, err := readCSV(data)
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		return buildParsed(grid)
	case "xlsx", "xlsm":
		grid, err := readWorkbook(data)
		if err != nil {
			return nil, fmt.Errorf("read workbook: %w", err)
		}
		return buildParsed(grid)
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

type headerColumn struct {
	name string
	idx  int // position in the raw grid, before blank headers were dropped
}

// buildParsed turns a raw cell grid into the normalized representation.
// Row 0 is the header row; blank header cells drop their column entirely,
// and a repeated header name keeps only its first column (names key the
// row maps, so a later twin would silently overwrite the earlier one).
// Data rows that are blank in every cell are discarded.
func buildParsed(grid [][]string) (*entity.ParsedFile, error) {
	if len(grid) == 0 {
		return nil, ErrNoUsableColumns
	}

	var headers []headerColumn
	seen := make(map[string]bool)
	for i, cell := range grid[0] {
		name := strings.TrimSpace(cell)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		headers = append(headers, headerColumn{name: name, idx: i})
	}
	if len(headers) == 0 {
		return nil, ErrNoUsableColumns
	}

	var dataRows [][]string
	for _, row := range grid[1:] {
		if !rowIsBlank(row) {
			dataRows = append(dataRows, row)
		}
	}

	columns := make([]entity.SourceColumn, len(headers))
	for i, h := range headers {
		samples := make([]string, 0, SampleRowCount)
		// Sampling looks at the first N data rows only; blanks are skipped
		// without looking further ahead.
		for r := 0; r < SampleRowCount && r < len(dataRows); r++ {
			v := cellAt(dataRows[r], h.idx)
			if strings.TrimSpace(v) != "" {
				samples = append(samples, v)
			}
		}
		columns[i] = entity.SourceColumn{Name: h.name, SampleValues: samples}
	}

	stored := len(dataRows)
	if stored > MaxStoredRows {
		stored = MaxStoredRows
	}
	rows := make([]map[string]string, stored)
	for r := 0; r < stored; r++ {
		rec := make(map[string]string, len(headers))
		for _, h := range headers {
			rec[h.name] = cellAt(dataRows[r], h.idx)
		}
		rows[r] = rec
	}

	return &entity.ParsedFile{
		Columns:  columns,
		Rows:     rows,
		RowCount: len(dataRows),
	}, nil
}

func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cellAt tolerates ragged rows: readers trim trailing empty cells.
func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
