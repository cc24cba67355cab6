package tabular

import (
	"bytes"
	"encoding/csv"
)

// readCSV reads comma-separated text into a cell grid. Rows may have uneven
// field counts; the header row defines which positions matter.
func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}
