// Copyright (c) 2026 Avironin. All rights reserved.

package post_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/avironin/insight-api/internal/core/post"
)

/*
TestCategoryFromSlug checks the URL segment to category resolution,
including the segments whose names do not rewrite mechanically.
*/
func TestCategoryFromSlug(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want post.Category
	}{
		{"startup_strategy_mapping", "startup-strategy", post.CategoryStartupStrategy},
		{"technology_mapping", "technology-engineering", post.CategoryTechnology},
		{"ai_systems_mapping", "ai-future-systems", post.CategoryAISystems},
		{"mechanical_fallback", "research", post.CategoryResearch},
		{"fallback_with_hyphen", "strategy", post.CategoryStrategy},
		{"uppercase_input", "STARTUP-STRATEGY", post.CategoryStartupStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, post.CategoryFromSlug(tt.slug))
			assert.True(t, post.CategoryFromSlug(tt.slug).IsValid())
		})
	}
}

/*
TestCategoryFromSlug_Unknown verifies that an unmapped segment resolves to
a value outside the closed taxonomy.
*/
func TestCategoryFromSlug_Unknown(t *testing.T) {
	c := post.CategoryFromSlug("no-such-category")
	assert.False(t, c.IsValid())
}

/*
TestDeriveSummary checks markup stripping and truncation of the listing
summary.
*/
func TestDeriveSummary(t *testing.T) {
	t.Run("strips_markup", func(t *testing.T) {
		got := post.DeriveSummary("<p>Hello <strong>world</strong></p>")
		assert.Equal(t, "Hello world...", got)
	})

	t.Run("truncates_long_content", func(t *testing.T) {
		long := strings.Repeat("a", 500)
		got := post.DeriveSummary(long)
		assert.Len(t, got, 203)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("truncates_on_rune_boundaries", func(t *testing.T) {
		got := post.DeriveSummary(strings.Repeat("€", 250))
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, strings.Repeat("€", 200)+"...", got)
	})

	t.Run("multibyte_below_limit_untouched", func(t *testing.T) {
		content := strings.Repeat("€", 100)
		got := post.DeriveSummary(content)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, content+"...", got)
	})

	t.Run("short_content_keeps_ellipsis", func(t *testing.T) {
		assert.Equal(t, "Brief...", post.DeriveSummary("Brief"))
	})
}

/*
TestContentType_RoutePrefix checks the public URL section per format.
*/
func TestContentType_RoutePrefix(t *testing.T) {
	assert.Equal(t, "/essays", post.TypeEssay.RoutePrefix())
	assert.Equal(t, "/blogs", post.TypeBlog.RoutePrefix())
	assert.Equal(t, "/whitepapers", post.TypeWhitepaper.RoutePrefix())
}
