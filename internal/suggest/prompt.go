package suggest

import (
	"fmt"
	"strings"
)

// BuildSystemPrompt frames the mapping task and its output rules.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a data mapping assistant for an e-commerce catalog tool.",
		"Return ONLY JSON that matches the provided JSON Schema.",
		"Map each user column to the most appropriate marketplace field.",
		"Each user column maps to at most one marketplace field.",
		"Each marketplace field should be used at most once.",
		"If no good match exists, set marketplace_field to null.",
		"Confidence: 1.0 = perfect match, 0.0 = no match.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt lists the source columns with their sample values and the
// target schema, split into required and optional fields.
func BuildUserPrompt(req Request) string {
	var required, optional []string
	for _, f := range req.Fields {
		if f.IsRequired {
			required = append(required, f.FieldName)
		} else {
			optional = append(optional, f.FieldName)
		}
	}

	var b strings.Builder
	b.WriteString("User file columns (with sample values):\n")
	for _, col := range req.Columns {
		samples := col.SampleValues
		if len(samples) > 3 {
			samples = samples[:3]
		}
		quoted := make([]string, len(samples))
		for i, v := range samples {
			quoted[i] = fmt.Sprintf("%q", v)
		}
		fmt.Fprintf(&b, "- %q: [%s]\n", col.Name, strings.Join(quoted, ", "))
	}

	fmt.Fprintf(&b, "\nTarget marketplace: %s\n", req.MarketplaceName)
	fmt.Fprintf(&b, "Required fields: %s\n", strings.Join(required, ", "))
	fmt.Fprintf(&b, "Optional fields: %s\n", strings.Join(optional, ", "))
	return b.String()
}
