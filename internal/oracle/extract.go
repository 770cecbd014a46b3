package oracle

import (
	"encoding/json"
	"fmt"
)

// DecodeJSON parses an oracle response into v. Models frequently wrap
// their JSON in prose or markdown fences, so this is a two-stage parse:
// a strict unmarshal of the whole text first, then extraction of the
// first balanced {...} block and a reparse of that.
func DecodeJSON(text string, v any) error {
	if err := json.Unmarshal([]byte(text), v); err == nil {
		return nil
	}
	block, ok := firstJSONObject(text)
	if !ok {
		return fmt.Errorf("no JSON object found in oracle response")
	}
	if err := json.Unmarshal([]byte(block), v); err != nil {
		return fmt.Errorf("parse extracted JSON object: %w", err)
	}
	return nil
}

// firstJSONObject returns the first balanced top-level {...} block in
// text, tracking string literals and escapes so braces inside strings do
// not miscount.
func firstJSONObject(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range text {
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return "", false
}
