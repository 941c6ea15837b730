// Copyright (c) 2026 Inner Garden. All rights reserved.

/*
Package convert provides quick type-conversion utilities.

It wraps [strconv] to provide fault-tolerant conversions for query parameters,
returning a caller-chosen default instead of an error.

Do not use this package if distinguishing between malformed data and zero values
is important in your domain logic; use explicit standard libraries instead.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning the provided default if parsing fails or string is empty.
func ToIntD(str string, def int) int {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	return def
}

// ToBool parses a boolean flag. Besides [strconv.ParseBool] spellings it
// accepts "yes" and "on". It returns false on empty string or parse error.
func ToBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return false
	case "yes", "on":
		return true
	}

	v, _ := strconv.ParseBool(s)
	return v
}
