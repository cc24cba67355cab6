package suggest

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/catalogmapper/catalog-mapper/internal/entity"
)

// Service wraps a Suggester with the engine's outward contract: exactly one
// suggestion per source column, confidence clamped to [0,1], and graceful
// degradation — any underlying failure yields null/0 suggestions, never an
// error.
type Service struct {
	suggester Suggester
	logger    *slog.Logger
}

func NewService(suggester Suggester, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{suggester: suggester, logger: logger}
}

// SuggestMappings proposes a correspondence for every source column. It
// never fails: on any engine error the caller gets one null/0-confidence
// entry per column.
func (s *Service) SuggestMappings(ctx context.Context, req Request) []Suggestion {
	start := time.Now()
	if len(req.Columns) == 0 {
		return []Suggestion{}
	}

	raw, err := s.suggester.SuggestMappings(ctx, req)
	if err != nil {
		s.logger.Warn("suggest.fallback",
			"marketplace", req.MarketplaceName,
			"columns", len(req.Columns),
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return fallbackSuggestions(req.Columns)
	}

	out := normalize(req, raw)
	s.logger.Info("suggest.ok",
		"marketplace", req.MarketplaceName,
		"columns", len(req.Columns),
		"matched", countMatched(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out
}

// normalize reshapes raw engine output into the contract: entries for
// unknown columns are dropped, unknown field names become null, confidence
// is clamped, and every input column appears exactly once, in input order.
// Duplicate entries for the same column keep the last one seen.
func normalize(req Request, raw []Suggestion) []Suggestion {
	knownFields := make(map[string]struct{}, len(req.Fields))
	for _, f := range req.Fields {
		knownFields[f.FieldName] = struct{}{}
	}

	byColumn := make(map[string]Suggestion, len(raw))
	for _, sug := range raw {
		sug.Confidence = clampConfidence(sug.Confidence)
		if sug.FieldName != nil {
			name := strings.TrimSpace(*sug.FieldName)
			if _, ok := knownFields[name]; !ok || name == "" {
				sug.FieldName = nil
				sug.Confidence = 0
			} else {
				sug.FieldName = &name
			}
		}
		if sug.FieldName == nil {
			sug.Confidence = 0
		}
		byColumn[sug.UserColumn] = sug
	}

	out := make([]Suggestion, 0, len(req.Columns))
	for _, col := range req.Columns {
		if sug, ok := byColumn[col.Name]; ok {
			sug.UserColumn = col.Name
			out = append(out, sug)
			continue
		}
		out = append(out, Suggestion{UserColumn: col.Name})
	}
	return out
}

// fallbackSuggestions is the neutral "no suggestion" result set.
func fallbackSuggestions(columns []entity.SourceColumn) []Suggestion {
	out := make([]Suggestion, len(columns))
	for i, col := range columns {
		out[i] = Suggestion{UserColumn: col.Name}
	}
	return out
}

func clampConfidence(c float32) float32 {
	if math.IsNaN(float64(c)) || c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func countMatched(suggestions []Suggestion) int {
	n := 0
	for _, s := range suggestions {
		if s.FieldName != nil {
			n++
		}
	}
	return n
}
