package domain

import (
	"encoding/json"
	"strings"
)

// ParseStringList normalizes a form value that may carry either a JSON array of
// strings or a single raw string. Anything that is not a JSON string array is
// wrapped as a one-element list. A missing value yields an empty list.
//
//	`["Go","Rust"]` -> [Go Rust]
//	`Go`            -> [Go]
func ParseStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	if list, ok := decodeJSONList(raw); ok {
		return list
	}
	return []string{raw}
}

// ParseRetainedList normalizes the list of previously stored images a client
// keeps on update. It accepts a JSON array or a single raw reference; empty or
// malformed JSON yields an empty list.
func ParseRetainedList(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}
	}
	if list, ok := decodeJSONList(trimmed); ok {
		return list
	}
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		return []string{}
	}
	return []string{trimmed}
}

// MergeImages keeps retained references first, then new uploads, each group in
// its original order.
func MergeImages(retained, uploaded []string) []string {
	out := make([]string, 0, len(retained)+len(uploaded))
	out = append(out, retained...)
	out = append(out, uploaded...)
	return out
}

// decodeJSONList accepts a JSON array whose elements are strings, or a JSON
// string (one element). null decodes to an empty list.
func decodeJSONList(raw string) ([]string, bool) {
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		if list == nil {
			list = []string{}
		}
		return list, true
	}
	var single string
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		return []string{single}, true
	}
	return nil, false
}
