package suggest

import (
	"context"
	"strings"
	"unicode"

	"github.com/catalogmapper/catalog-mapper/internal/entity"
)

// RuleMatcher is a deterministic Suggester built on normalized string
// similarity. It serves offline runs and deployments without a model API
// key, behind the same contract as the LLM-backed matcher.
type RuleMatcher struct{}

func NewRuleMatcher() *RuleMatcher { return &RuleMatcher{} }

const (
	confidenceExact    = 1.0
	confidenceContains = 0.8
	similarityFloor    = 0.5
)

func (m *RuleMatcher) SuggestMappings(_ context.Context, req Request) ([]Suggestion, error) {
	out := make([]Suggestion, 0, len(req.Columns))
	for _, col := range req.Columns {
		out = append(out, matchColumn(col.Name, req.Fields))
	}
	return out, nil
}

// matchColumn scores a column against every field: exact normalized equality
// beats containment, which beats edit-distance similarity above the floor.
// Two columns may legitimately match the same field; uniqueness is not this
// layer's job.
func matchColumn(column string, fields []entity.MarketplaceField) Suggestion {
	normCol := normalizeName(column)
	if normCol == "" {
		return Suggestion{UserColumn: column}
	}

	var bestField string
	var bestScore float32
	for _, f := range fields {
		candidates := []string{f.FieldName}
		if f.DisplayName != nil {
			candidates = append(candidates, *f.DisplayName)
		}
		for _, cand := range candidates {
			if score := nameScore(normCol, normalizeName(cand)); score > bestScore {
				bestScore = score
				bestField = f.FieldName
			}
		}
	}

	if bestScore < similarityFloor {
		return Suggestion{UserColumn: column}
	}
	return Suggestion{UserColumn: column, FieldName: &bestField, Confidence: bestScore}
}

func nameScore(a, b string) float32 {
	if b == "" {
		return 0
	}
	if a == b {
		return confidenceExact
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return confidenceContains
	}
	return similarity(a, b)
}

// normalizeName lowercases and strips everything but letters and digits, so
// "Product Name", "product_name" and "ProductName" compare equal.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// similarity is 1 - levenshtein/maxlen, scaled down slightly so fuzzy
// matches never outrank containment.
func similarity(a, b string) float32 {
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}
	max := la
	if lb > max {
		max = lb
	}
	sim := 1 - float32(levenshtein(a, b))/float32(max)
	if sim < 0 {
		sim = 0
	}
	return sim * 0.75
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
