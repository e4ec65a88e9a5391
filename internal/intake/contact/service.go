// Copyright (c) 2026 Avironin. All rights reserved.

package contact

import (
	"context"
	"log/slog"

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

// Submit records an inbound inquiry. High-intent requests are stored with
// an elevated priority so they sort ahead during triage.
func (service *Service) Submit(context context.Context, input Input) (*Submission, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.Required(FieldMessage, input.Message).MaxLen(FieldMessage, input.Message, 5000)
	validator.MaxLen(FieldCompany, input.Company, 200)
	validator.MaxLen(FieldStage, input.Stage, 100)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	priority := PriorityNormal
	if input.HighPriority {
		priority = PriorityHigh
	}

	submission := &Submission{
		ID:       uuid.New(),
		Name:     input.Name,
		Email:    input.Email,
		Company:  input.Company,
		Stage:    input.Stage,
		Message:  input.Message,
		Priority: priority,
		Status:   StatusNew,
	}

	if err := service.repo.Create(context, submission); err != nil {
		return nil, err
	}

	service.logger.Info("contact_submission_received",
		slog.String("submission_id", submission.ID.String()),
		slog.Int("priority", submission.Priority),
	)
	return submission, nil
}

// List pages through submissions for admin triage, highest priority and
// newest first.
func (service *Service) List(context context.Context, limit, offset int) ([]*Submission, int, error) {
	submissions, total, err := service.repo.List(context, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if submissions == nil {
		submissions = []*Submission{}
	}
	return submissions, total, nil
}
