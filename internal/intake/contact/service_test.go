// Copyright (c) 2026 Avironin. All rights reserved.

package contact_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avironin/insight-api/internal/intake/contact"
	"github.com/avironin/insight-api/internal/platform/apperr"
)

type fakeRepository struct {
	submissions []*contact.Submission
}

func (f *fakeRepository) Create(_ context.Context, s *contact.Submission) error {
	f.submissions = append(f.submissions, s)
	return nil
}

func (f *fakeRepository) List(_ context.Context, limit, offset int) ([]*contact.Submission, int, error) {
	return f.submissions, len(f.submissions), nil
}

func newTestService(repo contact.Repository) *contact.Service {
	return contact.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_Submit_PriorityAssignment verifies the stored priority level
follows the high-intent flag.
*/
func TestService_Submit_PriorityAssignment(t *testing.T) {
	tests := []struct {
		name         string
		highPriority bool
		want         int
	}{
		{"general_inquiry", false, contact.PriorityNormal},
		{"strategy_session_request", true, contact.PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			submission, err := service.Submit(context.Background(), contact.Input{
				Name:         "Jordan Vale",
				Email:        "jordan@example.com",
				Message:      "We would like to discuss an engagement.",
				HighPriority: tt.highPriority,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, submission.Priority)
			assert.Equal(t, contact.StatusNew, submission.Status)
		})
	}
}

/*
TestService_Submit_Validation rejects incomplete or malformed payloads.
*/
func TestService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input contact.Input
	}{
		{"missing_name", contact.Input{Email: "a@b.com", Message: "hi"}},
		{"missing_email", contact.Input{Name: "A", Message: "hi"}},
		{"bad_email", contact.Input{Name: "A", Email: "nope", Message: "hi"}},
		{"missing_message", contact.Input{Name: "A", Email: "a@b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(&fakeRepository{})

			_, err := service.Submit(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}
