package utils

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls a JSON object out of raw model text. Models wrap their
// answer in code fences or surround it with prose; fences are stripped and
// the candidate span runs from the first '{' to the last '}' (widest span,
// not depth-matched). Returns false when no decodable object is present;
// callers degrade to a raw-text report instead of failing the request.
func ExtractJSON(raw string) (map[string]any, bool) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return nil, false
	}
	return out, true
}
