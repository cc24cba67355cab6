package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/catalogmapper/catalog-mapper/internal/suggest"
)

var reJSONObject = regexp.MustCompile(`(?s)\{.*\}`)

// SuggestMappings implements suggest.Suggester using text-only
// chat/completions. Errors propagate to the caller; the suggest.Service
// wrapper is what turns them into null suggestions.
func (c *Client) SuggestMappings(ctx context.Context, req suggest.Request) ([]suggest.Suggestion, error) {
	rid := uuid.New().String()
	start := time.Now()

	fieldNames := make([]string, 0, len(req.Fields))
	for _, f := range req.Fields {
		fieldNames = append(fieldNames, f.FieldName)
	}
	schema := suggest.BuildMappingJSONSchema(fieldNames)

	c.log.Info("suggest.llm.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"columns", len(req.Columns),
		"fields", len(fieldNames),
		"marketplace", req.MarketplaceName,
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": suggest.BuildSystemPrompt()},
			{"role": "user", "content": suggest.BuildUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("suggest.llm.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("suggest.llm.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("decode model response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("suggest.llm.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("no choices in model response")
	}

	// Tolerate markdown fences around the JSON object.
	content := reJSONObject.FindString(strings.TrimSpace(cc.Choices[0].Message.Content))
	if content == "" {
		return nil, fmt.Errorf("no JSON object in model response")
	}
	rawContent := []byte(content)

	if err := suggest.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		c.log.Error("suggest.llm.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var reply suggest.MappingsReply
	if err := json.Unmarshal(rawContent, &reply); err != nil {
		c.log.Error("suggest.llm.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("unmarshal mappings: %w", err)
	}

	c.log.Info("suggest.llm.ok",
		"req_id", rid,
		"mappings", len(reply.Mappings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return reply.ToSuggestions(), nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("model response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("model status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
