package chat

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// fencedJSONRe captures the body of a ```json fenced block.
var fencedJSONRe = regexp.MustCompile("(?is)```json\\s*(.*?)\\s*```")

// fallbackCutset is stripped from both ends of the raw text when no JSON
// can be salvaged: surrounding quotes, whitespace and newlines.
const fallbackCutset = "\"'` \t\r\n"

// Extract salvages the model reply into one or more responses. It tries an
// ordered chain of parse strategies and never fails: when no strategy
// yields JSON, the raw text is wrapped as a plain message.
func Extract(raw string) []Response {
	for _, candidate := range candidates(raw) {
		if value, ok := parseJSONValue(candidate); ok {
			return classifyAll(value)
		}
	}
	return []Response{messageResponse(strings.Trim(raw, fallbackCutset))}
}

// candidates lists the substrings to attempt parsing, in strategy order:
// fenced ```json block, first-to-last brace span, then the whole text.
func candidates(raw string) []string {
	var out []string
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		out = append(out, m[1])
	}
	if span, ok := braceSpan(raw); ok {
		out = append(out, span)
	}
	out = append(out, strings.TrimSpace(raw))
	return out
}

// braceSpan cuts the substring between the first '{' and the last '}'.
func braceSpan(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// parseJSONValue parses candidate into an object or array of objects. A
// strict parse is attempted first; malformed model output gets one repair
// pass before giving up on the candidate.
func parseJSONValue(candidate string) (any, bool) {
	if candidate == "" {
		return nil, false
	}
	var value any
	if err := json.Unmarshal([]byte(candidate), &value); err == nil {
		if usableShape(value) {
			return value, true
		}
		return nil, false
	}
	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return nil, false
	}
	if err := json.Unmarshal([]byte(repaired), &value); err != nil {
		return nil, false
	}
	if !usableShape(value) {
		return nil, false
	}
	return value, true
}

// usableShape accepts only the two valid top-level shapes: a JSON object
// or a JSON array. Bare scalars are not considered a successful parse.
func usableShape(value any) bool {
	switch value.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

func classifyAll(value any) []Response {
	if items, ok := value.([]any); ok {
		responses := make([]Response, 0, len(items))
		for _, item := range items {
			responses = append(responses, classify(item))
		}
		return responses
	}
	return []Response{classify(value)}
}
