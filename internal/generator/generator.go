// Package generator projects session rows through a confirmed field mapping
// into the marketplace's column layout and serializes the result.
package generator

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/catalogmapper/catalog-mapper/constants"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
)

const outputSheet = "Sheet1"

// Options carries the projector's inputs. Generate is a pure function of
// these: identical inputs yield identical table content.
type Options struct {
	Rows     []entity.SessionRow
	Mappings []entity.FieldMapping
	Fields   []entity.MarketplaceField
	Format   string // "csv" or "xlsx"
}

// Generate builds the output table and serializes it to the requested
// format.
func Generate(opts Options) ([]byte, error) {
	if !constants.IsOutputFormat(opts.Format) {
		return nil, fmt.Errorf("unsupported output format %q", opts.Format)
	}

	table := Project(opts.Rows, opts.Mappings, opts.Fields)
	switch opts.Format {
	case "csv":
		return writeCSV(table)
	default:
		return writeXLSX(table)
	}
}

// Project produces header + data rows. The header is the ordered field-name
// list verbatim; a field with no mapped source column yields an empty cell
// in every row, never an error.
func Project(rows []entity.SessionRow, mappings []entity.FieldMapping, fields []entity.MarketplaceField) [][]string {
	ordered := OrderFields(fields)
	lookup := FieldSourceLookup(ordered, mappings)

	header := make([]string, len(ordered))
	for i, f := range ordered {
		header[i] = f.FieldName
	}

	table := make([][]string, 0, len(rows)+1)
	table = append(table, header)
	for i := range rows {
		out := make([]string, len(ordered))
		for j, f := range ordered {
			if src := lookup[f.FieldName]; src != "" {
				out[j] = rows[i].EffectiveValue(src)
			}
		}
		table = append(table, out)
	}
	return table
}

// OrderFields sorts by FieldOrder ascending; fields without an order sort
// last; ties keep insertion order.
func OrderFields(fields []entity.MarketplaceField) []entity.MarketplaceField {
	ordered := make([]entity.MarketplaceField, len(fields))
	copy(ordered, fields)
	sort.SliceStable(ordered, func(i, j int) bool {
		oi, oj := ordered[i].FieldOrder, ordered[j].FieldOrder
		switch {
		case oi == nil && oj == nil:
			return false
		case oi == nil:
			return false
		case oj == nil:
			return true
		default:
			return *oi < *oj
		}
	})
	return ordered
}

// FieldSourceLookup maps each field name to its source column, seeded with
// "no source" ("") for every field. When two mapping entries target the same
// field, the later entry wins (last-write-wins); this is the documented
// tie-break for duplicate targets.
func FieldSourceLookup(fields []entity.MarketplaceField, mappings []entity.FieldMapping) map[string]string {
	lookup := make(map[string]string, len(fields))
	for _, f := range fields {
		lookup[f.FieldName] = ""
	}
	for _, m := range mappings {
		if m.FieldName == nil {
			continue
		}
		if _, ok := lookup[*m.FieldName]; ok {
			lookup[*m.FieldName] = m.UserColumn
		}
	}
	return lookup
}

func writeCSV(table [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(table); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeXLSX(table [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range table {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := f.SetSheetRow(outputSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx row %d: %w", r+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
