// Copyright (c) 2026 Avironin. All rights reserved.

package post

import (
	"context"
	"log/slog"
	"time"

	googleuuid "github.com/google/uuid"

	"github.com/avironin/insight-api/internal/platform/apperr"
	"github.com/avironin/insight-api/internal/platform/validate"
	"github.com/avironin/insight-api/pkg/slug"
	"github.com/avironin/insight-api/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Public reads degrade to an empty collection when the store misbehaves.
// The site keeps rendering; the failure goes to the log, not the visitor.

// ListPublished returns published posts, optionally filtered by content
// type. An empty contentType means the whole published catalog.
func (service *Service) ListPublished(context context.Context, contentType ContentType) ([]*Summary, error) {
	if contentType != "" && !contentType.IsValid() {
		return nil, apperr.ValidationError("Unknown content type", apperr.FieldError{Field: FieldContentType, Message: "must be one of essay, blog, whitepaper"})
	}

	posts, err := service.repo.ListPublished(context, contentType)
	if err != nil {
		service.logger.Error("list_published_failed", slog.String("content_type", string(contentType)), slog.Any("error", err))
		return []*Summary{}, nil
	}
	if posts == nil {
		posts = []*Summary{}
	}
	stampPublicPaths(posts)
	return posts, nil
}

func (service *Service) ListFeatured(context context.Context, limit int) ([]*Summary, error) {
	if limit <= 0 {
		limit = 3
	}

	posts, err := service.repo.ListFeatured(context, limit)
	if err != nil {
		service.logger.Error("list_featured_failed", slog.Any("error", err))
		return []*Summary{}, nil
	}
	if posts == nil {
		posts = []*Summary{}
	}
	stampPublicPaths(posts)
	return posts, nil
}

func (service *Service) ListByCategory(context context.Context, categorySlug string) ([]*Summary, error) {
	category := CategoryFromSlug(categorySlug)
	if !category.IsValid() {
		return nil, apperr.NotFound("Category")
	}

	posts, err := service.repo.ListByCategory(context, category)
	if err != nil {
		service.logger.Error("list_by_category_failed", slog.String("category", string(category)), slog.Any("error", err))
		return []*Summary{}, nil
	}
	if posts == nil {
		posts = []*Summary{}
	}
	stampPublicPaths(posts)
	return posts, nil
}

// GetBySlug resolves a published post. Unpublished posts are invisible
// here even when the slug matches, and a store failure is reported the
// same way: visitors get a not-found, the cause goes to the log.
func (service *Service) GetBySlug(context context.Context, postSlug string) (*Post, error) {
	found, err := service.repo.GetBySlug(context, postSlug)
	if err != nil {
		if !apperr.IsNotFound(err) {
			service.logger.Error("get_by_slug_failed", slog.String("slug", postSlug), slog.Any("error", err))
		}
		return nil, apperr.NotFound("Post")
	}

	found.PublicPath = found.ContentType.RoutePrefix() + "/" + found.Slug
	return found, nil
}

func (service *Service) ListAll(context context.Context) ([]*Summary, error) {
	posts, err := service.repo.ListAll(context)
	if err != nil {
		service.logger.Error("list_all_posts_failed", slog.Any("error", err))
		return []*Summary{}, nil
	}
	if posts == nil {
		posts = []*Summary{}
	}
	return posts, nil
}

func (service *Service) GetByID(context context.Context, id googleuuid.UUID) (*Post, error) {
	return service.repo.GetByID(context, id)
}

// CreatePost persists a new post. The slug is always derived from the title
// and never accepted from the caller. A missing summary is derived from the
// body and a missing read time falls back to the default estimate.
func (service *Service) CreatePost(context context.Context, post *Post) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, post.Title).MaxLen(FieldTitle, post.Title, 300)
	validator.Required(FieldContent, post.Content)
	validator.OneOf(FieldContentType, string(post.ContentType), contentTypeStrings()...)
	if post.Category != "" {
		validator.OneOf(FieldCategory, string(post.Category), categoryStrings()...)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	post.ID = uuid.New()
	post.Slug = slug.From(post.Title)
	if post.Slug == "" {
		return apperr.ValidationError("Title produces an empty slug", apperr.FieldError{Field: FieldTitle, Message: "must contain letters or digits"})
	}
	if post.Summary == "" {
		post.Summary = DeriveSummary(post.Content)
	}
	if post.ReadTime <= 0 {
		post.ReadTime = DefaultReadTime
	}
	if post.Category == "" {
		post.Category = CategoryStrategy
	}

	if err := service.repo.Create(context, post); err != nil {
		return err
	}

	service.logger.Info("post_created",
		slog.String("post_id", post.ID.String()),
		slog.String("slug", post.Slug),
		slog.String("content_type", string(post.ContentType)),
	)
	return nil
}

// UpdateInput is a partial patch. Nil fields keep their stored value.
// Slugs are immutable after creation so published URLs never break.
type UpdateInput struct {
	Title          *string           `json:"title"`
	Content        *string           `json:"content"`
	Summary        *string           `json:"summary"`
	Category       *Category         `json:"category"`
	ContentType    *ContentType      `json:"content_type"`
	AuthorID       *googleuuid.UUID  `json:"author_id"`
	Published      *bool             `json:"published"`
	Featured       *bool             `json:"featured"`
	ReadTime       *int              `json:"read_time"`
	SEODescription *string           `json:"seo_description"`
	ImageURL       *string           `json:"image_url"`
	PDFURL         *string           `json:"pdf_url"`
}

func (service *Service) UpdatePost(context context.Context, id googleuuid.UUID, input UpdateInput) (*Post, error) {
	existing, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, 300)
		existing.Title = *input.Title
	}
	if input.Content != nil {
		validator.Required(FieldContent, *input.Content)
		existing.Content = *input.Content
	}
	if input.Summary != nil {
		existing.Summary = *input.Summary
	}
	if input.Category != nil {
		validator.OneOf(FieldCategory, string(*input.Category), categoryStrings()...)
		existing.Category = *input.Category
	}
	if input.ContentType != nil {
		validator.OneOf(FieldContentType, string(*input.ContentType), contentTypeStrings()...)
		existing.ContentType = *input.ContentType
	}
	if input.AuthorID != nil {
		existing.AuthorID = input.AuthorID
	}
	if input.Published != nil {
		existing.Published = *input.Published
	}
	if input.Featured != nil {
		existing.Featured = *input.Featured
	}
	if input.ReadTime != nil {
		validator.Positive(FieldReadTime, *input.ReadTime)
		existing.ReadTime = *input.ReadTime
	}
	if input.SEODescription != nil {
		existing.SEODescription = *input.SEODescription
	}
	if input.ImageURL != nil {
		existing.ImageURL = *input.ImageURL
	}
	if input.PDFURL != nil {
		existing.PDFURL = *input.PDFURL
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Every accepted patch refreshes the timestamp. The store clock is
	// authoritative and overwrites this value on the real path.
	existing.UpdatedAt = time.Now()

	if err := service.repo.Update(context, existing); err != nil {
		return nil, err
	}

	service.logger.Info("post_updated", slog.String("post_id", id.String()))
	return existing, nil
}

func (service *Service) DeletePost(context context.Context, id googleuuid.UUID) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("post_deleted", slog.String("post_id", id.String()))
	return nil
}

// SetPublished flips publication state without touching any other field,
// so concurrent content edits are never clobbered by a visibility toggle.
func (service *Service) SetPublished(context context.Context, id googleuuid.UUID, published bool) error {
	if err := service.repo.SetPublished(context, id, published); err != nil {
		return err
	}

	service.logger.Info("post_publication_changed",
		slog.String("post_id", id.String()),
		slog.Bool("published", published),
	)
	return nil
}

// stampPublicPaths fills the canonical site path on listing rows.
func stampPublicPaths(posts []*Summary) {
	for _, s := range posts {
		s.PublicPath = s.ContentType.RoutePrefix() + "/" + s.Slug
	}
}

func categoryStrings() []string {
	out := make([]string, len(Categories))
	for i, c := range Categories {
		out[i] = string(c)
	}
	return out
}

func contentTypeStrings() []string {
	out := make([]string, len(ContentTypes))
	for i, t := range ContentTypes {
		out[i] = string(t)
	}
	return out
}
