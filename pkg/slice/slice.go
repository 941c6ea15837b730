// Copyright (c) 2026 Inner Garden. All rights reserved.

// Package slice holds the generic helpers missing from the standard [slices] package.
package slice

// Map applies transform to every element. A nil input stays nil.
func Map[T, U any](items []T, transform func(T) U) []U {
	if items == nil {
		return nil
	}

	mapped := make([]U, len(items))
	for index, item := range items {
		mapped[index] = transform(item)
	}
	return mapped
}

// Filter returns the elements accepted by keep, in order, or nil when none are.
func Filter[T any](items []T, keep func(T) bool) []T {
	var kept []T
	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	return kept
}
