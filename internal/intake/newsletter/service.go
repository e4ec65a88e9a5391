// Copyright (c) 2026 Avironin. All rights reserved.

package newsletter

import (
	"context"
	"log/slog"
	"strings"

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

// Subscribe adds an address to the mailing list. A duplicate signup is
// swallowed and reported as success; the caller cannot distinguish a new
// subscription from an existing one.
func (service *Service) Subscribe(context context.Context, email string) (*Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Email(FieldEmail, email)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	subscriber := &Subscriber{
		ID:    uuid.New(),
		Email: email,
	}

	if err := service.repo.Create(context, subscriber); err != nil {
		if apperr.IsConflict(err) {
			service.logger.Info("newsletter_already_subscribed", slog.String("email", email))
			return subscriber, nil
		}
		return nil, err
	}

	service.logger.Info("newsletter_subscribed", slog.String("subscriber_id", subscriber.ID.String()))
	return subscriber, nil
}

// Count reports the list size, used by the system verification op.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}
