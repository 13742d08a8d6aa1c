package aiclient

import (
	"encoding/json"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"warren/finparse/internal/pipelineerror"
)

// DecodeJSON parses a raw AI response into v, tolerating the usual model
// quirks. First attempt: direct parse of the fence-stripped text. Second
// attempt: repair (unclosed brackets, single quotes, trailing commas) and
// reparse. Anything beyond that is an UnparseableResponseError, which
// callers treat exactly like a service failure.
func DecodeJSON(operation, raw string, v interface{}) error {
	cleaned := StripFences(raw)

	firstErr := json.Unmarshal([]byte(cleaned), v)
	if firstErr == nil {
		return nil
	}

	repaired, err := jsonrepair.RepairJSON(cleaned)
	if err == nil {
		if err := json.Unmarshal([]byte(repaired), v); err == nil {
			return nil
		}
	}

	return &pipelineerror.UnparseableResponseError{
		Operation: operation,
		Snippet:   pipelineerror.Snippet(raw),
		Err:       firstErr,
	}
}

// StripFences removes markdown code fences around a response. Models
// often wrap JSON in ```json blocks despite instructions not to.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
