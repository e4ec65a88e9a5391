// Copyright (c) 2026 Avironin. All rights reserved.

package post

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Public reads. These only ever see published rows. An empty
	// contentType on ListPublished means no type filter.
	ListPublished(context context.Context, contentType ContentType) ([]*Summary, error)
	ListFeatured(context context.Context, limit int) ([]*Summary, error)
	ListByCategory(context context.Context, category Category) ([]*Summary, error)
	GetBySlug(context context.Context, slug string) (*Post, error)

	// Admin reads. Publication state is not filtered.
	ListAll(context context.Context) ([]*Summary, error)
	GetByID(context context.Context, id uuid.UUID) (*Post, error)

	Create(context context.Context, p *Post) error
	Update(context context.Context, p *Post) error
	Delete(context context.Context, id uuid.UUID) error
	SetPublished(context context.Context, id uuid.UUID, published bool) error

	// UpsertBySlug inserts or, on a slug collision, refreshes the existing
	// row. Used by the seed maintenance op, never by the HTTP surface.
	UpsertBySlug(context context.Context, p *Post) error
}
