package tabular

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// instructionalSheetNames are sheet names (lowercased, trimmed) that mark a
// sheet as documentation rather than data. Matching sheets are heavily
// penalized during sheet selection.
var instructionalSheetNames = map[string]struct{}{
	"instructions": {},
	"instruction":  {},
	"readme":       {},
	"read me":      {},
	"notes":        {},
	"guide":        {},
	"overview":     {},
	"help":         {},
	"info":         {},
	"about":        {},
	"cover page":   {},
	"contents":     {},
	"index":        {},
	"introduction": {},
}

const instructionalPenalty = 1000

// readWorkbook opens an xlsx/xlsm workbook, selects the most plausible data
// sheet and returns its cells as display strings.
func readWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet, err := pickSheet(f)
	if err != nil {
		return nil, err
	}
	return f.GetRows(sheet)
}

// pickSheet scores each sheet by the number of non-empty cells in its first
// row, minus a large penalty for instructional-looking names. The highest
// score wins; ties keep the first sheet encountered.
func pickSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if len(sheets) == 1 {
		return sheets[0], nil
	}

	best := sheets[0]
	bestScore := sheetScore(f, sheets[0])
	for _, name := range sheets[1:] {
		if score := sheetScore(f, name); score > bestScore {
			best, bestScore = name, score
		}
	}
	return best, nil
}

func sheetScore(f *excelize.File, sheet string) int {
	score := 0
	if header, err := firstRow(f, sheet); err == nil {
		for _, cell := range header {
			if strings.TrimSpace(cell) != "" {
				score++
			}
		}
	}
	key := strings.ToLower(strings.TrimSpace(sheet))
	if _, ok := instructionalSheetNames[key]; ok {
		score -= instructionalPenalty
	}
	return score
}

// firstRow streams only the candidate header row so scoring stays cheap on
// large workbooks.
func firstRow(f *excelize.File, sheet string) ([]string, error) {
	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}
	return rows.Columns()
}
