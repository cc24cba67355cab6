package tabular

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseCSVBasic(t *testing.T) {
	csv := "Product Name,Cost,SKU\nWidget,9.99,W-1\nGadget,19.99,G-2\n"
	parsed, err := Parse([]byte(csv), "catalog.csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(parsed.Columns) != 3 {
		t.Fatalf("columns = %d, want 3", len(parsed.Columns))
	}
	if parsed.Columns[0].Name != "Product Name" {
		t.Errorf("column 0 = %q", parsed.Columns[0].Name)
	}
	if parsed.RowCount != 2 || len(parsed.Rows) != 2 {
		t.Fatalf("rowCount = %d, stored = %d, want 2/2", parsed.RowCount, len(parsed.Rows))
	}
	if parsed.Rows[0]["Cost"] != "9.99" {
		t.Errorf("row 0 Cost = %q", parsed.Rows[0]["Cost"])
	}
}

func TestParseDropsBlankHeaderColumn(t *testing.T) {
	// Blank header at position 1 drops that column entirely.
	csv := "Name,,Price\nWidget,ignored,9.99\n"
	parsed, err := Parse([]byte(csv), "catalog.csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(parsed.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(parsed.Columns))
	}
	if parsed.Columns[0].Name != "Name" || parsed.Columns[1].Name != "Price" {
		t.Errorf("columns = %v", parsed.Columns)
	}
	// The dropped column's data must not shift into its neighbors.
	if parsed.Rows[0]["Price"] != "9.99" {
		t.Errorf("Price = %q, want 9.99", parsed.Rows[0]["Price"])
	}
	if _, ok := parsed.Rows[0]["ignored"]; ok {
		t.Error("dropped column leaked into row data")
	}
}

func TestParseKeepsFirstOfDuplicateHeaders(t *testing.T) {
	csv := "SKU,Price,Price\nW-1,9.99,12.50\n"
	parsed, err := Parse([]byte(csv), "catalog.csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(parsed.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(parsed.Columns))
	}
	if parsed.Columns[0].Name != "SKU" || parsed.Columns[1].Name != "Price" {
		t.Errorf("columns = %v", parsed.Columns)
	}
	// The first Price column wins; the twin's data is not carried.
	if parsed.Rows[0]["Price"] != "9.99" {
		t.Errorf("Price = %q, want 9.99", parsed.Rows[0]["Price"])
	}
	if parsed.Columns[1].SampleValues[0] != "9.99" {
		t.Errorf("samples = %v, want from first column", parsed.Columns[1].SampleValues)
	}
}

func TestParseDiscardsBlankRows(t *testing.T) {
	csv := "Name,Price\nWidget,9.99\n,\n  ,  \nGadget,19.99\n"
	parsed, err := Parse([]byte(csv), "catalog.csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.RowCount != 2 {
		t.Errorf("rowCount = %d, want 2", parsed.RowCount)
	}
}

func TestSampleValues(t *testing.T) {
	// "Full" has values in all of the first 3 rows; "Late" is blank in the
	// first 3 rows and populated later, so sampling must not look ahead.
	// "Gappy" is blank in row 2 only.
	csv := "Full,Late,Gappy\n" +
		"a1,,g1\n" +
		"a2,,\n" +
		"a3,,g3\n" +
		"a4,late,g4\n"
	parsed, err := Parse([]byte(csv), "catalog.csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	full := parsed.Columns[0].SampleValues
	if len(full) != 3 || full[0] != "a1" || full[1] != "a2" || full[2] != "a3" {
		t.Errorf("Full samples = %v, want [a1 a2 a3] in row order", full)
	}
	if late := parsed.Columns[1].SampleValues; len(late) != 0 {
		t.Errorf("Late samples = %v, want empty (no look-ahead)", late)
	}
	if gappy := parsed.Columns[2].SampleValues; len(gappy) != 2 || gappy[0] != "g1" || gappy[1] != "g3" {
		t.Errorf("Gappy samples = %v, want [g1 g3]", gappy)
	}
}

func TestRowCapKeepsTrueCount(t *testing.T) {
	var b strings.Builder
	b.WriteString("ID,Value\n")
	const total = 6000
	for i := 0; i < total; i++ {
		fmt.Fprintf(&b, "%d,v%d\n", i, i)
	}

	parsed, err := Parse([]byte(b.String()), "big.csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.RowCount != total {
		t.Errorf("rowCount = %d, want %d", parsed.RowCount, total)
	}
	if len(parsed.Rows) != MaxStoredRows {
		t.Errorf("stored rows = %d, want %d", len(parsed.Rows), MaxStoredRows)
	}
}

func TestParseNoUsableColumns(t *testing.T) {
	for _, csv := range []string{"", ",,\n", "  , ,\na,b,c\n"} {
		_, err := Parse([]byte(csv), "empty.csv")
		if !errors.Is(err, ErrNoUsableColumns) {
			t.Errorf("Parse(%q) err = %v, want ErrNoUsableColumns", csv, err)
		}
	}
}

func TestParseUnsupportedType(t *testing.T) {
	if _, err := Parse([]byte("x"), "catalog.pdf"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestParseMalformedWorkbook(t *testing.T) {
	if _, err := Parse([]byte("not a zip archive"), "catalog.xlsx"); err == nil {
		t.Fatal("expected parse failure for malformed workbook bytes")
	}
}

func TestSheetSelectionPrefersDataSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// First sheet: "Instructions" with a single header cell.
	if err := f.SetSheetName("Sheet1", "Instructions"); err != nil {
		t.Fatal(err)
	}
	mustSetRow(t, f, "Instructions", 1, []any{"Read this first"})

	// Second sheet: "Data" with ten header cells and one data row.
	if _, err := f.NewSheet("Data"); err != nil {
		t.Fatal(err)
	}
	header := make([]any, 10)
	row := make([]any, 10)
	for i := range header {
		header[i] = fmt.Sprintf("Col%d", i)
		row[i] = fmt.Sprintf("v%d", i)
	}
	mustSetRow(t, f, "Data", 1, header)
	mustSetRow(t, f, "Data", 2, row)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := Parse(buf.Bytes(), "workbook.xlsx")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed.Columns) != 10 {
		t.Fatalf("columns = %d, want 10 (Data sheet)", len(parsed.Columns))
	}
	if parsed.Columns[0].Name != "Col0" {
		t.Errorf("column 0 = %q, want Col0", parsed.Columns[0].Name)
	}
	if parsed.RowCount != 1 {
		t.Errorf("rowCount = %d, want 1", parsed.RowCount)
	}
}

func TestSheetSelectionTieKeepsFirst(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "First"); err != nil {
		t.Fatal(err)
	}
	mustSetRow(t, f, "First", 1, []any{"A", "B"})
	mustSetRow(t, f, "First", 2, []any{"1", "2"})

	if _, err := f.NewSheet("Second"); err != nil {
		t.Fatal(err)
	}
	mustSetRow(t, f, "Second", 1, []any{"X", "Y"})

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := Parse(buf.Bytes(), "workbook.xlsx")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Columns[0].Name != "A" {
		t.Errorf("column 0 = %q, want A (first sheet wins ties)", parsed.Columns[0].Name)
	}
}

func TestWorkbookCellsCoercedToStrings(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	mustSetRow(t, f, "Sheet1", 1, []any{"Num", "Bool", "Text"})
	mustSetRow(t, f, "Sheet1", 2, []any{42, true, "hello"})

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := Parse(buf.Bytes(), "typed.xlsx")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	row := parsed.Rows[0]
	if row["Num"] != "42" {
		t.Errorf("Num = %q, want \"42\"", row["Num"])
	}
	if row["Bool"] != "TRUE" {
		t.Errorf("Bool = %q, want \"TRUE\"", row["Bool"])
	}
	if row["Text"] != "hello" {
		t.Errorf("Text = %q", row["Text"])
	}
}

func mustSetRow(t *testing.T, f *excelize.File, sheet string, row int, values []any) {
	t.Helper()
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		t.Fatal(err)
	}
}
