package entity

// SourceColumn is one column from an uploaded file, with up to three sample
// values taken from the first data rows. Immutable once ingested.
type SourceColumn struct {
	Name         string   `json:"name"`
	SampleValues []string `json:"sample_values"`
}

// ParsedFile is the normalized tabular representation of an upload.
// RowCount reports the true number of data rows found, even when Rows is
// capped.
type ParsedFile struct {
	Columns  []SourceColumn
	Rows     []map[string]string
	RowCount int
}
