// Copyright (c) 2026 Inner Garden. All rights reserved.

// Package query parses list-valued URL query parameters.
//
// Facet selections arrive either as repeated keys (?mood=calm&mood=focus)
// or as comma lists (?mood=calm,focus); both spellings are accepted.
package query

import (
	"net/url"
	"strings"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Values collects every value of key, splitting comma lists and dropping
// duplicates while keeping first-seen order.
func Values(values url.Values, key string) []string {
	var res []string
	seen := make(map[string]struct{})
	for _, raw := range values[key] {
		for _, v := range StringSlice(raw) {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			res = append(res, v)
		}
	}
	return res
}

// First returns the first non-blank value of key, trimmed.
func First(values url.Values, key string) string {
	for _, raw := range values[key] {
		if clean := strings.TrimSpace(raw); clean != "" {
			return clean
		}
	}
	return ""
}
