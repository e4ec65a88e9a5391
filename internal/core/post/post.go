// Copyright (c) 2026 Avironin. All rights reserved.

/*
Package post implements the published content catalog.

A post is a single piece of long-form content: an essay, a blog article or a
white paper. Posts carry a publication flag that gates every public read and
a featured flag used for front-page curation. Slugs are derived from titles
at creation time and are unique across the whole table regardless of content
type or publication state.
*/
package post

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the closed editorial taxonomy for posts.
type Category string

const (
	CategoryStrategy        Category = "STRATEGY"
	CategoryTechnology      Category = "TECHNOLOGY"
	CategoryAISystems       Category = "AI_SYSTEMS"
	CategoryFrameworks      Category = "FRAMEWORKS"
	CategoryResearch        Category = "RESEARCH"
	CategoryStartupStrategy Category = "STARTUP_STRATEGY"
)

// Categories lists every valid category value.
var Categories = []Category{
	CategoryStrategy,
	CategoryTechnology,
	CategoryAISystems,
	CategoryFrameworks,
	CategoryResearch,
	CategoryStartupStrategy,
}

// IsValid reports whether c is a member of the closed taxonomy.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// categorySlugs maps URL path segments to category values where the
// mechanical upper-underscore rewrite would produce the wrong name.
var categorySlugs = map[string]Category{
	"startup-strategy":       CategoryStartupStrategy,
	"technology-engineering": CategoryTechnology,
	"ai-future-systems":      CategoryAISystems,
}

// CategoryFromSlug resolves a URL category segment to its canonical value.
// Segments without a dedicated mapping fall back to uppercasing with
// hyphens rewritten to underscores, so "research" resolves to RESEARCH.
func CategoryFromSlug(slug string) Category {
	if c, ok := categorySlugs[strings.ToLower(slug)]; ok {
		return c
	}
	return Category(strings.ReplaceAll(strings.ToUpper(slug), "-", "_"))
}

// ContentType partitions posts into the three publication formats.
type ContentType string

const (
	TypeEssay      ContentType = "essay"
	TypeBlog       ContentType = "blog"
	TypeWhitepaper ContentType = "whitepaper"
)

// ContentTypes lists every valid content type value.
var ContentTypes = []ContentType{TypeEssay, TypeBlog, TypeWhitepaper}

// IsValid reports whether t is a recognized content type.
func (t ContentType) IsValid() bool {
	return t == TypeEssay || t == TypeBlog || t == TypeWhitepaper
}

// RoutePrefix returns the public URL section a post of this type lives
// under, used when composing canonical links for a post.
func (t ContentType) RoutePrefix() string {
	switch t {
	case TypeEssay:
		return "/essays"
	case TypeWhitepaper:
		return "/whitepapers"
	default:
		return "/blogs"
	}
}

// DefaultReadTime is the estimated reading time in minutes applied when a
// post is created without one.
const DefaultReadTime = 5

// Post is the full content record, including the body.
type Post struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	Slug           string      `json:"slug"`
	Content        string      `json:"content"`
	Summary        string      `json:"summary"`
	Category       Category    `json:"category"`
	ContentType    ContentType `json:"content_type"`
	AuthorID       *uuid.UUID  `json:"author_id,omitempty"`
	Author         *AuthorRef  `json:"author,omitempty"`
	Published      bool        `json:"published"`
	Featured       bool        `json:"featured"`
	ReadTime       int         `json:"read_time"`
	SEODescription string      `json:"seo_description,omitempty"`
	ImageURL       string      `json:"image_url,omitempty"`
	PDFURL         string      `json:"pdf_url,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	// PublicPath is the canonical site path, derived on public reads and
	// never stored.
	PublicPath string `json:"public_path,omitempty"`
}

// Summary is the listing projection of a post. It deliberately omits the
// content body so collection endpoints stay light.
type Summary struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	Slug           string      `json:"slug"`
	Summary        string      `json:"summary"`
	Category       Category    `json:"category"`
	ContentType    ContentType `json:"content_type"`
	AuthorID       *uuid.UUID  `json:"author_id,omitempty"`
	Author         *AuthorRef  `json:"author,omitempty"`
	Published      bool        `json:"published"`
	Featured       bool        `json:"featured"`
	ReadTime       int         `json:"read_time"`
	SEODescription string      `json:"seo_description,omitempty"`
	ImageURL       string      `json:"image_url,omitempty"`
	PDFURL         string      `json:"pdf_url,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	// PublicPath is the canonical site path, derived on public reads and
	// never stored.
	PublicPath string `json:"public_path,omitempty"`
}

// AuthorRef is the author attribution embedded in post reads.
type AuthorRef struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

// Global field names for validation
const (
	FieldTitle          = "title"
	FieldContent        = "content"
	FieldCategory       = "category"
	FieldContentType    = "content_type"
	FieldSlug           = "slug"
	FieldReadTime       = "read_time"
	FieldAuthorID       = "author_id"
	FieldImageURL       = "image_url"
	FieldPDFURL         = "pdf_url"
	FieldSEODescription = "seo_description"
	FieldPublished      = "published"
	FieldFile           = "file"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// DeriveSummary produces a listing summary from the post body: markup is
// stripped and the first 200 characters are kept, with a trailing ellipsis.
// Truncation counts runes, never bytes, so multi-byte text stays intact.
func DeriveSummary(content string) string {
	plain := htmlTagPattern.ReplaceAllString(content, "")
	if runes := []rune(plain); len(runes) > 200 {
		plain = string(runes[:200])
	}
	return plain + "..."
}
