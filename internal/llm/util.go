// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// ExtractJSONObject slices the first top-level JSON object candidate out of
// free-form model text: everything between the first '{' and the last '}',
// inclusive. LLMs often surround the object with commentary even when told not
// to. The ok result is false when no such boundary exists; callers treat that
// as "no object present", not as an error.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}
