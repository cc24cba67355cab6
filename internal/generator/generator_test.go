package generator

import (
	"bytes"
	"testing"

	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/tabular"
)

func intptr(i int) *int       { return &i }
func strptr(s string) *string { return &s }

func fixtureFields() []entity.MarketplaceField {
	return []entity.MarketplaceField{
		{FieldName: "Title", FieldOrder: intptr(0)},
		{FieldName: "Price", FieldOrder: intptr(1)},
	}
}

func fixtureMappings() []entity.FieldMapping {
	return []entity.FieldMapping{
		{UserColumn: "Product Name", FieldName: strptr("Title")},
		{UserColumn: "Cost", FieldName: strptr("Price")},
	}
}

func fixtureRows() []entity.SessionRow {
	return []entity.SessionRow{
		{Data: map[string]string{"Product Name": "Widget", "Cost": "9.99"}},
	}
}

func TestProjection(t *testing.T) {
	table := Project(fixtureRows(), fixtureMappings(), fixtureFields())

	if len(table) != 2 {
		t.Fatalf("table has %d rows, want 2", len(table))
	}
	if table[0][0] != "Title" || table[0][1] != "Price" {
		t.Errorf("header = %v, want [Title Price]", table[0])
	}
	if table[1][0] != "Widget" || table[1][1] != "9.99" {
		t.Errorf("row = %v, want [Widget 9.99]", table[1])
	}
}

func TestProjectionUsesEditedValues(t *testing.T) {
	rows := fixtureRows()
	rows[0].EditedData = map[string]string{"Cost": "12.00"}

	table := Project(rows, fixtureMappings(), fixtureFields())
	if table[1][1] != "12.00" {
		t.Errorf("edited value not used: %v", table[1])
	}
	if table[1][0] != "Widget" {
		t.Errorf("unedited value wrong: %v", table[1])
	}
}

func TestUnmappedFieldEmitsEmptyColumn(t *testing.T) {
	fields := append(fixtureFields(), entity.MarketplaceField{FieldName: "Brand", FieldOrder: intptr(2)})

	table := Project(fixtureRows(), fixtureMappings(), fields)
	if table[0][2] != "Brand" {
		t.Fatalf("header = %v", table[0])
	}
	if table[1][2] != "" {
		t.Errorf("unmapped field cell = %q, want empty", table[1][2])
	}
}

func TestMissingSourceColumnEmitsEmpty(t *testing.T) {
	mappings := []entity.FieldMapping{
		{UserColumn: "Not In Row", FieldName: strptr("Title")},
	}
	table := Project(fixtureRows(), mappings, fixtureFields())
	if table[1][0] != "" {
		t.Errorf("cell = %q, want empty for absent source column", table[1][0])
	}
}

func TestDuplicateTargetLastWriteWins(t *testing.T) {
	mappings := []entity.FieldMapping{
		{UserColumn: "Product Name", FieldName: strptr("Title")},
		{UserColumn: "Cost", FieldName: strptr("Title")},
	}
	table := Project(fixtureRows(), mappings, fixtureFields())
	if table[1][0] != "9.99" {
		t.Errorf("Title cell = %q, want 9.99 (last entry wins)", table[1][0])
	}
}

func TestOrderFields(t *testing.T) {
	fields := []entity.MarketplaceField{
		{FieldName: "NoOrderA"},
		{FieldName: "Second", FieldOrder: intptr(5)},
		{FieldName: "First", FieldOrder: intptr(1)},
		{FieldName: "NoOrderB"},
	}
	ordered := OrderFields(fields)
	want := []string{"First", "Second", "NoOrderA", "NoOrderB"}
	for i, name := range want {
		if ordered[i].FieldName != name {
			t.Fatalf("order = %v, want %v", names(ordered), want)
		}
	}
	// Input slice must not be reordered.
	if fields[0].FieldName != "NoOrderA" {
		t.Error("OrderFields mutated its input")
	}
}

func names(fields []entity.MarketplaceField) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.FieldName
	}
	return out
}

func TestGenerateCSVDeterministic(t *testing.T) {
	opts := Options{
		Rows:     fixtureRows(),
		Mappings: fixtureMappings(),
		Fields:   fixtureFields(),
		Format:   "csv",
	}
	a, err := Generate(opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("csv output differs across identical inputs")
	}
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	if _, err := Generate(Options{Format: "pdf"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestCSVRoundTrip(t *testing.T) {
	rows := []entity.SessionRow{
		{Data: map[string]string{"Product Name": "Widget", "Cost": "9.99"}},
		{Data: map[string]string{"Product Name": "Gadget", "Cost": "19.99"}},
	}
	out, err := Generate(Options{
		Rows:     rows,
		Mappings: fixtureMappings(),
		Fields:   fixtureFields(),
		Format:   "csv",
	})
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := tabular.Parse(out, "roundtrip.csv")
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(parsed.Columns) != 2 || parsed.Columns[0].Name != "Title" || parsed.Columns[1].Name != "Price" {
		t.Fatalf("round-trip columns = %v", parsed.Columns)
	}
	if parsed.RowCount != 2 {
		t.Fatalf("round-trip rowCount = %d", parsed.RowCount)
	}
	if parsed.Rows[0]["Title"] != "Widget" || parsed.Rows[1]["Price"] != "19.99" {
		t.Errorf("round-trip rows = %v", parsed.Rows)
	}

	// Simple ASCII content reproduces byte-for-byte through a second pass.
	again, err := Generate(Options{
		Rows: []entity.SessionRow{
			{Data: map[string]string{"Title": "Widget", "Price": "9.99"}},
			{Data: map[string]string{"Title": "Gadget", "Price": "19.99"}},
		},
		Mappings: []entity.FieldMapping{
			{UserColumn: "Title", FieldName: strptr("Title")},
			{UserColumn: "Price", FieldName: strptr("Price")},
		},
		Fields: fixtureFields(),
		Format: "csv",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, again) {
		t.Errorf("round-trip bytes differ:\n%q\n%q", out, again)
	}
}

func TestCSVQuoting(t *testing.T) {
	rows := []entity.SessionRow{
		{Data: map[string]string{"Product Name": `Widget, "Deluxe"`, "Cost": "9.99"}},
	}
	out, err := Generate(Options{
		Rows:     rows,
		Mappings: fixtureMappings(),
		Fields:   fixtureFields(),
		Format:   "csv",
	})
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := tabular.Parse(out, "quoted.csv")
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if got := parsed.Rows[0]["Title"]; got != `Widget, "Deluxe"` {
		t.Errorf("quoted value = %q", got)
	}
}

func TestGenerateXLSXRoundTrip(t *testing.T) {
	out, err := Generate(Options{
		Rows:     fixtureRows(),
		Mappings: fixtureMappings(),
		Fields:   fixtureFields(),
		Format:   "xlsx",
	})
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := tabular.Parse(out, "out.xlsx")
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(parsed.Columns) != 2 || parsed.Columns[0].Name != "Title" {
		t.Fatalf("xlsx columns = %v", parsed.Columns)
	}
	if parsed.Rows[0]["Title"] != "Widget" || parsed.Rows[0]["Price"] != "9.99" {
		t.Errorf("xlsx rows = %v", parsed.Rows)
	}
}
