// Copyright (c) 2026 Avironin. All rights reserved.

package post_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avironin/insight-api/internal/core/post"
	"github.com/avironin/insight-api/internal/platform/apperr"
	"github.com/avironin/insight-api/pkg/pointer"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	posts   map[googleuuid.UUID]*post.Post
	listErr error
	getErr  error
	created []*post.Post
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{posts: map[googleuuid.UUID]*post.Post{}}
}

func (f *fakeRepository) summaries(filter func(*post.Post) bool) []*post.Summary {
	var out []*post.Summary
	for _, p := range f.posts {
		if filter(p) {
			out = append(out, &post.Summary{
				ID: p.ID, Title: p.Title, Slug: p.Slug, Summary: p.Summary,
				Category: p.Category, ContentType: p.ContentType,
				Published: p.Published, Featured: p.Featured, ReadTime: p.ReadTime,
			})
		}
	}
	return out
}

func (f *fakeRepository) ListPublished(_ context.Context, ct post.ContentType) ([]*post.Summary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.summaries(func(p *post.Post) bool {
		return p.Published && (ct == "" || p.ContentType == ct)
	}), nil
}

func (f *fakeRepository) ListFeatured(_ context.Context, limit int) ([]*post.Summary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := f.summaries(func(p *post.Post) bool { return p.Published && p.Featured })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepository) ListByCategory(_ context.Context, c post.Category) ([]*post.Summary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.summaries(func(p *post.Post) bool { return p.Published && p.Category == c }), nil
}

func (f *fakeRepository) ListAll(_ context.Context) ([]*post.Summary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.summaries(func(*post.Post) bool { return true }), nil
}

func (f *fakeRepository) GetBySlug(_ context.Context, slug string) (*post.Post, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, p := range f.posts {
		if p.Slug == slug && p.Published {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Post")
}

func (f *fakeRepository) GetByID(_ context.Context, id googleuuid.UUID) (*post.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, apperr.NotFound("Post")
	}
	return p, nil
}

func (f *fakeRepository) Create(_ context.Context, p *post.Post) error {
	for _, existing := range f.posts {
		if existing.Slug == p.Slug {
			return apperr.Conflict("Resource already exists")
		}
	}
	f.posts[p.ID] = p
	f.created = append(f.created, p)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, p *post.Post) error {
	if _, ok := f.posts[p.ID]; !ok {
		return apperr.NotFound("Post")
	}
	f.posts[p.ID] = p
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id googleuuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return apperr.NotFound("Post")
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeRepository) SetPublished(_ context.Context, id googleuuid.UUID, published bool) error {
	p, ok := f.posts[id]
	if !ok {
		return apperr.NotFound("Post")
	}
	p.Published = published
	return nil
}

func (f *fakeRepository) UpsertBySlug(_ context.Context, p *post.Post) error {
	for id, existing := range f.posts {
		if existing.Slug == p.Slug {
			p.ID = id
			f.posts[id] = p
			return nil
		}
	}
	f.posts[p.ID] = p
	return nil
}

func newTestService(repo post.Repository) *post.Service {
	return post.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_CreatePost_Defaults verifies slug derivation, summary
derivation and the read time fallback on creation.
*/
func TestService_CreatePost_Defaults(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	input := &post.Post{
		Title:       "The Architecture of Autonomous AI Agents",
		Content:     "<p>Agents are systems that act.</p>",
		ContentType: post.TypeEssay,
	}

	require.NoError(t, service.CreatePost(context.Background(), input))

	assert.Equal(t, "the-architecture-of-autonomous-ai-agents", input.Slug)
	assert.Equal(t, "Agents are systems that act....", input.Summary)
	assert.Equal(t, post.DefaultReadTime, input.ReadTime)
	assert.NotEqual(t, googleuuid.Nil, input.ID)
}

/*
TestService_CreatePost_Validation rejects posts missing required fields
or carrying values outside the closed taxonomies.
*/
func TestService_CreatePost_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *post.Post
	}{
		{"missing_title", &post.Post{Content: "body", ContentType: post.TypeBlog}},
		{"missing_content", &post.Post{Title: "Title", ContentType: post.TypeBlog}},
		{"invalid_content_type", &post.Post{Title: "Title", Content: "body", ContentType: "podcast"}},
		{"invalid_category", &post.Post{Title: "Title", Content: "body", ContentType: post.TypeBlog, Category: "GOSSIP"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(newFakeRepository())

			err := service.CreatePost(context.Background(), tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestService_CreatePost_DuplicateSlug surfaces the conflict when two titles
collapse to the same slug.
*/
func TestService_CreatePost_DuplicateSlug(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	first := &post.Post{Title: "Hello, World!", Content: "a", ContentType: post.TypeBlog}
	require.NoError(t, service.CreatePost(context.Background(), first))

	second := &post.Post{Title: "Hello World", Content: "b", ContentType: post.TypeBlog}
	err := service.CreatePost(context.Background(), second)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

/*
TestService_ListPublished_FailSoft verifies that a store failure on a
public read degrades to an empty collection instead of an error.
*/
func TestService_ListPublished_FailSoft(t *testing.T) {
	repo := newFakeRepository()
	repo.listErr = errors.New("connection refused")
	service := newTestService(repo)

	posts, err := service.ListPublished(context.Background(), post.TypeBlog)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NotNil(t, posts)
}

/*
TestService_ListPublished_RejectsUnknownType verifies the content type
check happens before the store is consulted.
*/
func TestService_ListPublished_RejectsUnknownType(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.ListPublished(context.Background(), "podcast")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_ListPublished_NoFilter verifies an empty content type returns
the whole published catalog across every format.
*/
func TestService_ListPublished_NoFilter(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	essay := &post.Post{Title: "Published Essay", Content: "a", ContentType: post.TypeEssay, Published: true}
	blog := &post.Post{Title: "Published Blog", Content: "b", ContentType: post.TypeBlog, Published: true}
	draft := &post.Post{Title: "Unpublished Whitepaper", Content: "c", ContentType: post.TypeWhitepaper}
	require.NoError(t, service.CreatePost(context.Background(), essay))
	require.NoError(t, service.CreatePost(context.Background(), blog))
	require.NoError(t, service.CreatePost(context.Background(), draft))

	posts, err := service.ListPublished(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	for _, p := range posts {
		assert.True(t, p.Published)
	}
}

/*
TestService_ListFeatured_OnlyPublished verifies the featured rail never
includes an unpublished post, featured flag or not.
*/
func TestService_ListFeatured_OnlyPublished(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	published := &post.Post{Title: "Visible Featured Essay", Content: "a", ContentType: post.TypeEssay, Published: true, Featured: true}
	draft := &post.Post{Title: "Hidden Featured Draft", Content: "b", ContentType: post.TypeEssay, Featured: true}
	require.NoError(t, service.CreatePost(context.Background(), published))
	require.NoError(t, service.CreatePost(context.Background(), draft))

	posts, err := service.ListFeatured(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, published.ID, posts[0].ID)
	assert.Equal(t, "/essays/visible-featured-essay", posts[0].PublicPath)
}

/*
TestService_GetBySlug_HidesDrafts verifies an unpublished post is a
not-found on the public slug lookup.
*/
func TestService_GetBySlug_HidesDrafts(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	draft := &post.Post{Title: "Secret Draft", Content: "a", ContentType: post.TypeBlog}
	require.NoError(t, service.CreatePost(context.Background(), draft))

	_, err := service.GetBySlug(context.Background(), "secret-draft")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	// The admin lookup by ID still sees it.
	got, err := service.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)
}

/*
TestService_GetBySlug_MasksStoreFailure verifies an unreachable store on
the public slug lookup reads as a not-found, never a server error.
*/
func TestService_GetBySlug_MasksStoreFailure(t *testing.T) {
	repo := newFakeRepository()
	repo.getErr = apperr.Internal(errors.New("connection refused"))
	service := newTestService(repo)

	_, err := service.GetBySlug(context.Background(), "any-slug")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_UpdatePost_Partial verifies nil patch fields keep stored
values and the slug never changes on update.
*/
func TestService_UpdatePost_Partial(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	original := &post.Post{Title: "Original Title", Content: "body", ContentType: post.TypeBlog, Category: post.CategoryResearch}
	require.NoError(t, service.CreatePost(context.Background(), original))

	updated, err := service.UpdatePost(context.Background(), original.ID, post.UpdateInput{
		Title:    pointer.To("Renamed Title"),
		Featured: pointer.To(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Title", updated.Title)
	assert.True(t, updated.Featured)
	assert.Equal(t, "body", updated.Content)
	assert.Equal(t, post.CategoryResearch, updated.Category)
	assert.Equal(t, "original-title", updated.Slug)
}

/*
TestService_UpdatePost_TouchesUpdatedAt pins that every accepted patch
refreshes the modification timestamp.
*/
func TestService_UpdatePost_TouchesUpdatedAt(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	original := &post.Post{Title: "Timestamped", Content: "body", ContentType: post.TypeBlog}
	require.NoError(t, service.CreatePost(context.Background(), original))

	stale := time.Now().Add(-time.Hour)
	repo.posts[original.ID].UpdatedAt = stale

	updated, err := service.UpdatePost(context.Background(), original.ID, post.UpdateInput{
		Content: pointer.To("revised body"),
	})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(stale))
}

/*
TestService_SetPublished verifies the focused publication toggle and its
not-found path.
*/
func TestService_SetPublished(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	p := &post.Post{Title: "Toggle Me", Content: "a", ContentType: post.TypeBlog}
	require.NoError(t, service.CreatePost(context.Background(), p))

	require.NoError(t, service.SetPublished(context.Background(), p.ID, true))
	got, err := service.GetBySlug(context.Background(), "toggle-me")
	require.NoError(t, err)
	assert.True(t, got.Published)

	err = service.SetPublished(context.Background(), googleuuid.New(), true)
	assert.True(t, apperr.IsNotFound(err))
}
