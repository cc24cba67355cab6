package suggest

// MappingsReply is the wire shape of the suggestion model's JSON reply.
type MappingsReply struct {
	Mappings []WireSuggestion `json:"mappings"`
}

// WireSuggestion mirrors one reply entry before normalization.
type WireSuggestion struct {
	UserColumn string  `json:"user_column"`
	Field      *string `json:"marketplace_field"`
	Confidence float32 `json:"confidence"`
}

// ToSuggestions converts a validated reply into engine suggestions.
func (r MappingsReply) ToSuggestions() []Suggestion {
	out := make([]Suggestion, 0, len(r.Mappings))
	for _, m := range r.Mappings {
		out = append(out, Suggestion{
			UserColumn: m.UserColumn,
			FieldName:  m.Field,
			Confidence: m.Confidence,
		})
	}
	return out
}
