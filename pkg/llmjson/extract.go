// Package llmjson pulls a single JSON object out of free-form model output.
//
// The extractor is deliberately forgiving rather than correct: it takes the
// span from the first '{' to the last '}' without balancing braces, swaps
// single quotes for double quotes and drops trailing commas. Output holding
// more than one object, or braces inside string values, is not handled.
package llmjson

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Object is a decoded JSON object.
type Object map[string]any

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// Extract returns the JSON object embedded in raw. An empty object is a
// valid result and is returned without error.
func Extract(raw string) (Object, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &ExtractionError{Kind: ErrNotAString, Raw: raw}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &ExtractionError{Kind: ErrNoJSONFound, Raw: raw}
	}

	candidate := Repair(raw[start : end+1])

	var obj Object
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, &ExtractionError{Kind: ErrMalformedJSON, Raw: raw, Err: err}
	}
	return obj, nil
}

// Repair applies the textual fixes used by Extract: single quotes become
// double quotes, and commas directly before '}' or ']' are removed.
// Apostrophes inside values are converted too.
func Repair(s string) string {
	s = strings.ReplaceAll(s, "'", `"`)
	return trailingCommaRe.ReplaceAllString(s, "$1")
}

// String returns the string value stored under key, if it is a string.
func (o Object) String(key string) (string, bool) {
	v, ok := o[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
