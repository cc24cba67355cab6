package constants

import "testing"

func TestIsDefaultCategory(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"Default", true},
		{"default", true},
		{" DEFAULT ", true},
		{"Electronics", false},
		{"Defaults", false},
	}
	for _, tt := range tests {
		if got := IsDefaultCategory(tt.in); got != tt.want {
			t.Errorf("IsDefaultCategory(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := NormalizeCategory("Default"); got != nil {
		t.Errorf("NormalizeCategory(Default) = %q, want nil", *got)
	}
	if got := NormalizeCategory("  "); got != nil {
		t.Errorf("NormalizeCategory(blank) = %q, want nil", *got)
	}
	got := NormalizeCategory(" Electronics ")
	if got == nil || *got != "Electronics" {
		t.Errorf("NormalizeCategory(Electronics) = %v, want Electronics", got)
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLabel(nil); got != DefaultCategory {
		t.Errorf("CategoryLabel(nil) = %q, want %q", got, DefaultCategory)
	}
	c := "Apparel"
	if got := CategoryLabel(&c); got != "Apparel" {
		t.Errorf("CategoryLabel(Apparel) = %q", got)
	}
}
