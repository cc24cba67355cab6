package entity

import "testing"

func TestEffectiveValue(t *testing.T) {
	row := &SessionRow{
		Data:       map[string]string{"a": "1", "b": "2"},
		EditedData: map[string]string{},
	}
	if got := row.EffectiveValue("a"); got != "1" {
		t.Errorf("effective value before edit = %q, want %q", got, "1")
	}

	row.EditedData = MergeEdits(row.EditedData, map[string]string{"a": "2"})
	if got := row.EffectiveValue("a"); got != "2" {
		t.Errorf("effective value after edit = %q, want %q", got, "2")
	}
	if row.Data["a"] != "1" {
		t.Errorf("original data mutated: Data[a] = %q", row.Data["a"])
	}
	if got := row.EffectiveValue("b"); got != "2" {
		t.Errorf("untouched column = %q, want %q", got, "2")
	}
	if got := row.EffectiveValue("missing"); got != "" {
		t.Errorf("missing column = %q, want empty", got)
	}
}

func TestMergeEditsUnionsNotReplaces(t *testing.T) {
	edits := MergeEdits(nil, map[string]string{"a": "x"})
	edits = MergeEdits(edits, map[string]string{"b": "y"})

	if len(edits) != 2 || edits["a"] != "x" || edits["b"] != "y" {
		t.Fatalf("merge result = %v, want {a:x b:y}", edits)
	}

	// Same key: new value wins.
	edits = MergeEdits(edits, map[string]string{"a": "z"})
	if edits["a"] != "z" || edits["b"] != "y" {
		t.Fatalf("overwrite result = %v, want {a:z b:y}", edits)
	}
}

func TestMergeEditsDoesNotMutateInputs(t *testing.T) {
	existing := map[string]string{"a": "1"}
	partial := map[string]string{"a": "2"}
	_ = MergeEdits(existing, partial)
	if existing["a"] != "1" {
		t.Errorf("existing mutated: %v", existing)
	}
}
