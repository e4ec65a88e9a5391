// Copyright (c) 2026 Avironin. All rights reserved.

package newsletter_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avironin/insight-api/internal/intake/newsletter"
	"github.com/avironin/insight-api/internal/platform/apperr"
)

type fakeRepository struct {
	emails map[string]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{emails: map[string]bool{}}
}

func (f *fakeRepository) Create(_ context.Context, s *newsletter.Subscriber) error {
	if f.emails[s.Email] {
		return apperr.Conflict("Resource already exists")
	}
	f.emails[s.Email] = true
	return nil
}

func (f *fakeRepository) Count(_ context.Context) (int, error) {
	return len(f.emails), nil
}

func newTestService(repo newsletter.Repository) *newsletter.Service {
	return newsletter.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_Subscribe_Idempotent verifies a duplicate signup reports
success without growing the list.
*/
func TestService_Subscribe_Idempotent(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	_, err := service.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)

	_, err = service.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)

	total, err := service.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

/*
TestService_Subscribe_NormalizesEmail lowercases and trims the address
before storing, so casing variants collapse to one subscription.
*/
func TestService_Subscribe_NormalizesEmail(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	subscriber, err := service.Subscribe(context.Background(), "  Reader@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", subscriber.Email)

	_, err = service.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)

	total, _ := repo.Count(context.Background())
	assert.Equal(t, 1, total)
}

/*
TestService_Subscribe_RejectsInvalidEmail fails validation before the
store is touched.
*/
func TestService_Subscribe_RejectsInvalidEmail(t *testing.T) {
	service := newTestService(newFakeRepository())

	tests := []string{"", "not-an-email", "missing@"}
	for _, email := range tests {
		_, err := service.Subscribe(context.Background(), email)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	}
}
