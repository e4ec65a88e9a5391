// Copyright (c) 2026 Avironin. All rights reserved.

package ops

import (
	"context"
	"io"
	"log/slog"
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avironin/insight-api/internal/core/author"
	"github.com/avironin/insight-api/internal/core/post"
	"github.com/avironin/insight-api/internal/platform/apperr"
)

type fakeAuthorRepository struct {
	authors []*author.Author
}

func (f *fakeAuthorRepository) ListAuthors(_ context.Context) ([]*author.Author, error) {
	return f.authors, nil
}

func (f *fakeAuthorRepository) GetAuthor(_ context.Context, id googleuuid.UUID) (*author.Author, error) {
	for _, a := range f.authors {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperr.NotFound("Author")
}

func (f *fakeAuthorRepository) FindByName(_ context.Context, name string) (*author.Author, error) {
	for _, a := range f.authors {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, apperr.NotFound("Author")
}

func (f *fakeAuthorRepository) CreateAuthor(_ context.Context, a *author.Author) error {
	f.authors = append(f.authors, a)
	return nil
}

func (f *fakeAuthorRepository) UpdateAuthor(_ context.Context, a *author.Author) error { return nil }
func (f *fakeAuthorRepository) DeleteAuthor(_ context.Context, id googleuuid.UUID) error {
	return nil
}

type fakePostRepository struct {
	post.Repository
	bySlug map[string]*post.Post
}

func (f *fakePostRepository) UpsertBySlug(_ context.Context, p *post.Post) error {
	if existing, ok := f.bySlug[p.Slug]; ok {
		p.ID = existing.ID
	}
	f.bySlug[p.Slug] = p
	return nil
}

/*
TestRunner_Seed_Idempotent runs the seed twice and verifies it converges:
one house author, one row per slug, every post attributed.
*/
func TestRunner_Seed_Idempotent(t *testing.T) {
	authorRepo := &fakeAuthorRepository{}
	postRepo := &fakePostRepository{bySlug: map[string]*post.Post{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	runner := NewRunner(Options{
		Authors: author.NewService(authorRepo, logger),
		Posts:   postRepo,
		Logger:  logger,
	})

	require.NoError(t, runner.Seed(context.Background()))
	require.NoError(t, runner.Seed(context.Background()))

	require.Len(t, authorRepo.authors, 1)
	assert.Equal(t, "Avironin Research", authorRepo.authors[0].Name)

	assert.Len(t, postRepo.bySlug, len(seedPosts))
	for slug, p := range postRepo.bySlug {
		require.NotNil(t, p.AuthorID, "post %s must be attributed", slug)
		assert.Equal(t, authorRepo.authors[0].ID, *p.AuthorID)
		assert.True(t, p.Category.IsValid())
		assert.True(t, p.ContentType.IsValid())
	}
}
