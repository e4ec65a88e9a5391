// Copyright (c) 2026 Avironin. All rights reserved.

// Package slug derives ASCII URL slugs from arbitrary Unicode titles.
//
// # Usage
//
// Slugs are the public addressing keys for published content
// (e.g., "the-architecture-of-autonomous-ai-agents"). Derivation is pure:
// the same title always yields the same slug.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// hyphenRuns collapses any run of consecutive hyphens into a single one.
var hyphenRuns = regexp.MustCompile(`-{2,}`)

// From converts a title into a URL-safe ASCII slug.
//
// # Pipeline
//
//  1. NFD-normalize and strip combining marks (é → e).
//  2. Lowercase.
//  3. Replace every non-alphanumeric rune with a hyphen.
//  4. Collapse hyphen runs and trim leading/trailing hyphens.
func From(title string) string {
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, _ := transform.String(stripAccents, title)

	ascii = strings.ToLower(ascii)

	ascii = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, ascii)

	ascii = hyphenRuns.ReplaceAllString(ascii, "-")
	return strings.Trim(ascii, "-")
}
