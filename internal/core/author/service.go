// Copyright (c) 2026 Avironin. All rights reserved.

package author

import (
	"context"
	"log/slog"

	googleuuid "github.com/google/uuid"

	"github.com/avironin/insight-api/internal/platform/apperr"
	"github.com/avironin/insight-api/internal/platform/validate"
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

// ListAuthors returns the full registry alphabetically. A store failure
// degrades to an empty collection so public pages keep rendering.
func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	authors, err := service.repo.ListAuthors(context)
	if err != nil {
		service.logger.Error("list_authors_failed", slog.Any("error", err))
		return []*Author{}, nil
	}
	if authors == nil {
		authors = []*Author{}
	}
	return authors, nil
}

func (service *Service) GetAuthor(context context.Context, id googleuuid.UUID) (*Author, error) {
	return service.repo.GetAuthor(context, id)
}

func (service *Service) CreateAuthor(context context.Context, author *Author) error {
	if err := service.validateAuthor(author); err != nil {
		return err
	}

	author.ID = uuid.New()
	if err := service.repo.CreateAuthor(context, author); err != nil {
		return err
	}

	service.logger.Info("author_created", slog.String("author_id", author.ID.String()), slog.String("name", author.Name))
	return nil
}

func (service *Service) UpdateAuthor(context context.Context, id googleuuid.UUID, author *Author) error {
	author.ID = id
	if err := service.validateAuthor(author); err != nil {
		return err
	}

	if err := service.repo.UpdateAuthor(context, author); err != nil {
		return err
	}

	service.logger.Info("author_updated", slog.String("author_id", id.String()))
	return nil
}

// DeleteAuthor removes a contributor. Posts keep their stored author
// reference; the store clears it so reads degrade to anonymous attribution
// rather than failing.
func (service *Service) DeleteAuthor(context context.Context, id googleuuid.UUID) error {
	if err := service.repo.DeleteAuthor(context, id); err != nil {
		return err
	}

	service.logger.Warn("author_deleted", slog.String("author_id", id.String()))
	return nil
}

// FindOrCreate resolves an author by exact name, creating the record when
// absent. Used by the seed maintenance op so repeated runs converge on one
// contributor row.
func (service *Service) FindOrCreate(context context.Context, author *Author) (*Author, error) {
	existing, err := service.repo.FindByName(context, author.Name)
	if err == nil {
		return existing, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}

	if err := service.CreateAuthor(context, author); err != nil {
		return nil, err
	}
	return author, nil
}

func (service *Service) validateAuthor(author *Author) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, author.Name).MaxLen(FieldName, author.Name, 200)
	validator.MaxLen(FieldRole, author.Role, 200)
	if author.AvatarURL != "" {
		validator.URL(FieldAvatarURL, author.AvatarURL)
	}
	for _, link := range author.SocialLinks {
		validator.URL(FieldSocialLinks, link)
	}
	return validator.Err()
}
