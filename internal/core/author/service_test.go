// Copyright (c) 2026 Avironin. All rights reserved.

package author_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avironin/insight-api/internal/core/author"
	"github.com/avironin/insight-api/internal/platform/apperr"
)

type fakeRepository struct {
	authors map[googleuuid.UUID]*author.Author
	listErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{authors: map[googleuuid.UUID]*author.Author{}}
}

func (f *fakeRepository) ListAuthors(_ context.Context) ([]*author.Author, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*author.Author
	for _, a := range f.authors {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepository) GetAuthor(_ context.Context, id googleuuid.UUID) (*author.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, apperr.NotFound("Author")
	}
	return a, nil
}

func (f *fakeRepository) FindByName(_ context.Context, name string) (*author.Author, error) {
	for _, a := range f.authors {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, apperr.NotFound("Author")
}

func (f *fakeRepository) CreateAuthor(_ context.Context, a *author.Author) error {
	f.authors[a.ID] = a
	return nil
}

func (f *fakeRepository) UpdateAuthor(_ context.Context, a *author.Author) error {
	if _, ok := f.authors[a.ID]; !ok {
		return apperr.NotFound("Author")
	}
	f.authors[a.ID] = a
	return nil
}

func (f *fakeRepository) DeleteAuthor(_ context.Context, id googleuuid.UUID) error {
	if _, ok := f.authors[id]; !ok {
		return apperr.NotFound("Author")
	}
	delete(f.authors, id)
	return nil
}

func newTestService(repo author.Repository) *author.Service {
	return author.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_CreateAuthor validates input and assigns an identifier.
*/
func TestService_CreateAuthor(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	input := &author.Author{
		Name: "Avironin Research",
		Role: "Research Team",
		SocialLinks: map[string]string{
			"twitter": "https://twitter.com/avironin",
		},
	}

	require.NoError(t, service.CreateAuthor(context.Background(), input))
	assert.NotEqual(t, googleuuid.Nil, input.ID)
}

/*
TestService_CreateAuthor_Validation rejects missing names and malformed
links.
*/
func TestService_CreateAuthor_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *author.Author
	}{
		{"missing_name", &author.Author{Role: "Analyst"}},
		{"bad_avatar_url", &author.Author{Name: "A", AvatarURL: "not-a-url"}},
		{"bad_social_link", &author.Author{Name: "A", SocialLinks: map[string]string{"x": "nope"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(newFakeRepository())

			err := service.CreateAuthor(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestService_FindOrCreate resolves an existing contributor by name instead
of creating a duplicate row.
*/
func TestService_FindOrCreate(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	first, err := service.FindOrCreate(context.Background(), &author.Author{Name: "Avironin Research"})
	require.NoError(t, err)

	second, err := service.FindOrCreate(context.Background(), &author.Author{Name: "Avironin Research"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.authors, 1)
}

/*
TestService_ListAuthors_FailSoft degrades a store failure to an empty
collection.
*/
func TestService_ListAuthors_FailSoft(t *testing.T) {
	repo := newFakeRepository()
	repo.listErr = errors.New("connection refused")
	service := newTestService(repo)

	authors, err := service.ListAuthors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, authors)
	assert.NotNil(t, authors)
}
