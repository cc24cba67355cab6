package suggest

// BuildMappingJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// suggestion model's reply. When field names are known, marketplace_field is
// restricted to that enum (plus null).
func BuildMappingJSONSchema(fieldNames []string) map[string]any {
	fieldProp := map[string]any{
		"type": []string{"string", "null"},
	}
	if len(fieldNames) > 0 {
		enum := make([]any, 0, len(fieldNames)+1)
		for _, n := range fieldNames {
			enum = append(enum, n)
		}
		enum = append(enum, nil)
		fieldProp = map[string]any{"enum": enum}
	}

	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"user_column":       map[string]any{"type": "string", "minLength": 1},
			"marketplace_field": fieldProp,
			"confidence":        map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"user_column", "marketplace_field", "confidence"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"mappings": map[string]any{
				"type":  "array",
				"items": item,
			},
		},
		"required": []string{"mappings"},
	}
}
