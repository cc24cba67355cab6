package suggest

import (
	"context"
	"testing"

	"github.com/catalogmapper/catalog-mapper/internal/entity"
)

func matcherRequest(columns ...string) Request {
	cols := make([]entity.SourceColumn, len(columns))
	for i, c := range columns {
		cols[i] = entity.SourceColumn{Name: c}
	}
	return Request{
		Columns: cols,
		Fields: []entity.MarketplaceField{
			{FieldName: "Title"},
			{FieldName: "Price"},
			{FieldName: "product_name"},
		},
		MarketplaceName: "Acme Market",
	}
}

func TestRuleMatcherExact(t *testing.T) {
	got, err := NewRuleMatcher().SuggestMappings(context.Background(), matcherRequest("Product Name"))
	if err != nil {
		t.Fatal(err)
	}
	if got[0].FieldName == nil || *got[0].FieldName != "product_name" {
		t.Fatalf("suggestion = %+v, want product_name", got[0])
	}
	if got[0].Confidence != 1 {
		t.Errorf("confidence = %v, want 1 for normalized exact match", got[0].Confidence)
	}
}

func TestRuleMatcherContainment(t *testing.T) {
	got, err := NewRuleMatcher().SuggestMappings(context.Background(), matcherRequest("Item Price (USD)"))
	if err != nil {
		t.Fatal(err)
	}
	if got[0].FieldName == nil || *got[0].FieldName != "Price" {
		t.Fatalf("suggestion = %+v, want Price", got[0])
	}
	if got[0].Confidence != confidenceContains {
		t.Errorf("confidence = %v, want %v", got[0].Confidence, confidenceContains)
	}
}

func TestRuleMatcherNoSignal(t *testing.T) {
	got, err := NewRuleMatcher().SuggestMappings(context.Background(), matcherRequest("Warehouse Aisle"))
	if err != nil {
		t.Fatal(err)
	}
	if got[0].FieldName != nil {
		t.Fatalf("suggestion = %+v, want no match", got[0])
	}
	if got[0].Confidence != 0 {
		t.Errorf("confidence = %v, want 0", got[0].Confidence)
	}
}

func TestRuleMatcherDeterministic(t *testing.T) {
	req := matcherRequest("Product Name", "Cost", "Titel")
	a, _ := NewRuleMatcher().SuggestMappings(context.Background(), req)
	b, _ := NewRuleMatcher().SuggestMappings(context.Background(), req)
	if len(a) != len(b) {
		t.Fatal("length mismatch")
	}
	for i := range a {
		av, bv := "", ""
		if a[i].FieldName != nil {
			av = *a[i].FieldName
		}
		if b[i].FieldName != nil {
			bv = *b[i].FieldName
		}
		if av != bv || a[i].Confidence != b[i].Confidence {
			t.Errorf("entry %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Product Name", "productname"},
		{"product_name", "productname"},
		{"PRODUCT-NAME", "productname"},
		{"  SKU #", "sku"},
	}
	for _, tt := range tests {
		if got := normalizeName(tt.in); got != tt.want {
			t.Errorf("normalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
