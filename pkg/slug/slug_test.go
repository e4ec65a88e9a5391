// Copyright (c) 2026 Avironin. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avironin/insight-api/pkg/slug"
)

/*
TestFrom verifies the title → slug derivation pipeline.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"typical_title", "The Architecture of Autonomous AI Agents", "the-architecture-of-autonomous-ai-agents"},
		{"punctuation_and_padding", "  Hello, World!!  ", "hello-world"},
		{"accented_characters", "Café Résumé", "cafe-resume"},
		{"digits_preserved", "State of AI Infrastructure 2026", "state-of-ai-infrastructure-2026"},
		{"symbol_runs_collapse", "Go -- & -- Postgres", "go-postgres"},
		{"already_a_slug", "modular-monolith-architecture", "modular-monolith-architecture"},
		{"empty_input", "", ""},
		{"only_punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.title))
		})
	}
}

/*
TestFrom_Idempotent verifies that re-slugging a slug is a no-op and that the
derivation is deterministic for the same input.
*/
func TestFrom_Idempotent(t *testing.T) {
	titles := []string{
		"The Architecture of Autonomous AI Agents",
		"Network Effects in AI Platform Businesses",
		"  Hello, World!!  ",
	}

	for _, title := range titles {
		first := slug.From(title)
		second := slug.From(title)

		assert.Equal(t, first, second)
		assert.Equal(t, first, slug.From(first))
	}
}
