// Package jsonutil provides tolerant JSON decoding for response bodies.
// Search-engine responses are occasionally plain text (cat APIs, bulk
// acknowledgements), so decoding degrades instead of failing.
package jsonutil

import "encoding/json"

// Parse decodes text as JSON. Malformed input degrades to the raw string
// so callers never have to handle a decode error.
func Parse(text string) any {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text
	}
	return v
}

// Stringify renders v as compact JSON. It is the inverse convenience of
// Parse; values that cannot be marshalled degrade to the empty string.
func Stringify(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
