package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/catalogmapper/catalog-mapper/internal/entity"
)

type fakeSuggester struct {
	result []Suggestion
	err    error
}

func (f *fakeSuggester) SuggestMappings(_ context.Context, _ Request) ([]Suggestion, error) {
	return f.result, f.err
}

func strptr(s string) *string { return &s }

func testRequest() Request {
	return Request{
		Columns: []entity.SourceColumn{
			{Name: "Product Name", SampleValues: []string{"Widget"}},
			{Name: "Cost", SampleValues: []string{"9.99"}},
		},
		Fields: []entity.MarketplaceField{
			{FieldName: "Title", IsRequired: true},
			{FieldName: "Price", IsRequired: true},
		},
		MarketplaceName: "Acme Market",
	}
}

func TestSuggestFallbackOnError(t *testing.T) {
	svc := NewService(&fakeSuggester{err: errors.New("timeout")}, nil)

	got := svc.SuggestMappings(context.Background(), testRequest())
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want one per column", len(got))
	}
	for i, s := range got {
		if s.FieldName != nil {
			t.Errorf("suggestion %d field = %q, want nil", i, *s.FieldName)
		}
		if s.Confidence != 0 {
			t.Errorf("suggestion %d confidence = %v, want 0", i, s.Confidence)
		}
	}
	if got[0].UserColumn != "Product Name" || got[1].UserColumn != "Cost" {
		t.Errorf("columns out of order: %v", got)
	}
}

func TestSuggestOnePerColumnInInputOrder(t *testing.T) {
	svc := NewService(&fakeSuggester{result: []Suggestion{
		{UserColumn: "Cost", FieldName: strptr("Price"), Confidence: 0.9},
		// No entry for "Product Name": the service fills it with null/0.
	}}, nil)

	got := svc.SuggestMappings(context.Background(), testRequest())
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	if got[0].UserColumn != "Product Name" || got[0].FieldName != nil {
		t.Errorf("missing column not backfilled: %+v", got[0])
	}
	if got[1].FieldName == nil || *got[1].FieldName != "Price" {
		t.Errorf("Cost suggestion = %+v", got[1])
	}
}

func TestSuggestDropsUnknownColumnsAndFields(t *testing.T) {
	svc := NewService(&fakeSuggester{result: []Suggestion{
		{UserColumn: "Nonsense", FieldName: strptr("Title"), Confidence: 1},
		{UserColumn: "Product Name", FieldName: strptr("NotAField"), Confidence: 1},
	}}, nil)

	got := svc.SuggestMappings(context.Background(), testRequest())
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	// Unknown field name degrades to null/0, unknown column is ignored.
	if got[0].FieldName != nil || got[0].Confidence != 0 {
		t.Errorf("unknown field not degraded: %+v", got[0])
	}
}

func TestSuggestClampsConfidence(t *testing.T) {
	svc := NewService(&fakeSuggester{result: []Suggestion{
		{UserColumn: "Product Name", FieldName: strptr("Title"), Confidence: 4.2},
		{UserColumn: "Cost", FieldName: strptr("Price"), Confidence: -1},
	}}, nil)

	got := svc.SuggestMappings(context.Background(), testRequest())
	if got[0].Confidence != 1 {
		t.Errorf("confidence above range = %v, want 1", got[0].Confidence)
	}
	if got[1].Confidence != 0 {
		t.Errorf("confidence below range = %v, want 0", got[1].Confidence)
	}
}

func TestSuggestEmptyColumns(t *testing.T) {
	svc := NewService(&fakeSuggester{err: errors.New("should not matter")}, nil)
	got := svc.SuggestMappings(context.Background(), Request{})
	if len(got) != 0 {
		t.Fatalf("got %d suggestions for empty input", len(got))
	}
}

func TestSuggestTwoColumnsMayShareField(t *testing.T) {
	// The engine does not enforce uniqueness of the target assignment.
	svc := NewService(&fakeSuggester{result: []Suggestion{
		{UserColumn: "Product Name", FieldName: strptr("Title"), Confidence: 0.9},
		{UserColumn: "Cost", FieldName: strptr("Title"), Confidence: 0.7},
	}}, nil)

	got := svc.SuggestMappings(context.Background(), testRequest())
	if got[0].FieldName == nil || got[1].FieldName == nil ||
		*got[0].FieldName != "Title" || *got[1].FieldName != "Title" {
		t.Errorf("shared target rejected: %+v", got)
	}
}
