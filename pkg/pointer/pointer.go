// Copyright (c) 2026 Avironin. All rights reserved.

// Package pointer provides small generic helpers for optional values.
//
// Partial-update payloads model "field absent" as a nil pointer, which makes
// these helpers common in the admin write path and its tests.
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value of T when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Fallback dereferences p, returning fallback when p is nil.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
