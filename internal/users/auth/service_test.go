// Copyright (c) 2026 Avironin. All rights reserved.

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avironin/insight-api/internal/platform/apperr"
	"github.com/avironin/insight-api/internal/users/auth"
)

type fakeAccountRepository struct {
	byEmail map[string]*auth.AdminAccount
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{byEmail: map[string]*auth.AdminAccount{}}
}

func (f *fakeAccountRepository) FindByEmail(_ context.Context, email string) (*auth.AdminAccount, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	return a, nil
}

func (f *fakeAccountRepository) FindByID(_ context.Context, id googleuuid.UUID) (*auth.AdminAccount, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (f *fakeAccountRepository) UpsertByEmail(_ context.Context, account *auth.AdminAccount) error {
	if existing, ok := f.byEmail[account.Email]; ok {
		account.ID = existing.ID
	}
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepository) Count(_ context.Context) (int, error) {
	return len(f.byEmail), nil
}

type fakeSessionRepository struct {
	sessions map[string]googleuuid.UUID
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[string]googleuuid.UUID{}}
}

func (f *fakeSessionRepository) Set(_ context.Context, tokenHash string, accountID googleuuid.UUID, _ time.Duration) error {
	f.sessions[tokenHash] = accountID
	return nil
}

func (f *fakeSessionRepository) Get(_ context.Context, tokenHash string) (googleuuid.UUID, error) {
	id, ok := f.sessions[tokenHash]
	if !ok {
		return googleuuid.Nil, apperr.Unauthorized("Invalid or expired refresh token")
	}
	return id, nil
}

func (f *fakeSessionRepository) Delete(_ context.Context, tokenHash string) error {
	delete(f.sessions, tokenHash)
	return nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, email, role string, _ time.Duration) (string, error) {
	return "signed:" + userID, nil
}

func newTestService(accounts auth.AccountRepository, sessions auth.SessionRepository) *auth.Service {
	return auth.NewService(accounts, sessions, fakeTokenProvider{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func provisionAdmin(t *testing.T, service *auth.Service) *auth.AdminAccount {
	t.Helper()
	account, err := service.EnsureAccount(context.Background(), "admin@avironin.org", "correct-horse-battery")
	require.NoError(t, err)
	return account
}

/*
TestService_Login issues a token pair for valid credentials and reports
one generic failure for both unknown emails and wrong passwords.
*/
func TestService_Login(t *testing.T) {
	accounts := newFakeAccountRepository()
	sessions := newFakeSessionRepository()
	service := newTestService(accounts, sessions)
	provisionAdmin(t, service)

	t.Run("valid_credentials", func(t *testing.T) {
		session, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "admin@avironin.org",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
		assert.Len(t, sessions.sessions, 1)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "admin@avironin.org",
			Password: "wrong",
		})
		require.Error(t, err)
		assert.Equal(t, "Invalid login credentials", err.Error())
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "nobody@avironin.org",
			Password: "whatever",
		})
		require.Error(t, err)
		assert.Equal(t, "Invalid login credentials", err.Error())
	})
}

/*
TestService_RefreshSession_Rotation verifies the presented refresh token
is revoked on use; replaying it fails.
*/
func TestService_RefreshSession_Rotation(t *testing.T) {
	accounts := newFakeAccountRepository()
	sessions := newFakeSessionRepository()
	service := newTestService(accounts, sessions)
	provisionAdmin(t, service)

	login, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "admin@avironin.org",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	rotated, err := service.RefreshSession(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	_, err = service.RefreshSession(context.Background(), login.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestService_Logout_Idempotent succeeds for unknown tokens as well.
*/
func TestService_Logout_Idempotent(t *testing.T) {
	service := newTestService(newFakeAccountRepository(), newFakeSessionRepository())

	assert.NoError(t, service.Logout(context.Background(), "never-issued"))
	assert.NoError(t, service.Logout(context.Background(), ""))
}

/*
TestService_EnsureAccount converges on one row when run repeatedly with a
new password.
*/
func TestService_EnsureAccount(t *testing.T) {
	accounts := newFakeAccountRepository()
	service := newTestService(accounts, newFakeSessionRepository())

	first, err := service.EnsureAccount(context.Background(), "admin@avironin.org", "initial-passphrase")
	require.NoError(t, err)

	second, err := service.EnsureAccount(context.Background(), "admin@avironin.org", "rotated-passphrase")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.NotEqual(t, first.PasswordHash, second.PasswordHash)

	total, _ := service.CountAccounts(context.Background())
	assert.Equal(t, 1, total)
}

/*
TestService_EnsureAccount_WeakPassword rejects short passwords before
hashing.
*/
func TestService_EnsureAccount_WeakPassword(t *testing.T) {
	service := newTestService(newFakeAccountRepository(), newFakeSessionRepository())

	_, err := service.EnsureAccount(context.Background(), "admin@avironin.org", "short")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
