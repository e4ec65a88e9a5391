// Copyright (c) 2026 Avironin. All rights reserved.

/*
Package auth implements the admin session facade.

The editorial surface is gated by short-lived RSA-signed access tokens plus
rotating refresh tokens held in Redis. There is no self-service signup,
password reset, or email verification; accounts are provisioned from the
command line and the flow is deliberately small:

  - Login: credential check, token pair issuance.
  - Refresh: rotation, the old refresh token dies on use.
  - Logout: idempotent revocation.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	googleuuid "github.com/google/uuid"

	"github.com/avironin/insight-api/internal/platform/apperr"
	"github.com/avironin/insight-api/internal/platform/constants"
	"github.com/avironin/insight-api/internal/platform/sec"
	"github.com/avironin/insight-api/internal/platform/validate"
	"github.com/avironin/insight-api/pkg/uuid"
)

// TokenProvider signs short-lived access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)
}

type Service struct {
	accounts AccountRepository
	sessions SessionRepository
	tokens   TokenProvider
	logger   *slog.Logger
}

func NewService(accounts AccountRepository, sessions SessionRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginSession represents a successfully established admin session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Account               *AdminAccount
}

/*
Login validates admin credentials and issues a token pair.

Failures are reported with one generic message regardless of whether the
email exists or the password was wrong, to prevent account enumeration.
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.accounts.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.issueSession(context, account)
	if err != nil {
		return nil, err
	}

	service.logger.Info("admin_login", slog.String("account_id", account.ID.String()))
	return session, nil
}

// Logout revokes a refresh token. Revoking an unknown or already expired
// token is a success; logout is idempotent.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return service.sessions.Delete(context, sec.HashToken(refreshToken))
}

/*
RefreshSession rotates a refresh token.

The presented token is revoked before its replacement is issued, so a
replayed token fails even when the interception happened mid-rotation.
*/
func (service *Service) RefreshSession(context context.Context, refreshToken string) (*LoginSession, error) {
	tokenHash := sec.HashToken(refreshToken)

	accountID, err := service.sessions.Get(context, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	if err := service.sessions.Delete(context, tokenHash); err != nil {
		return nil, fmt.Errorf("auth_refresh_revoke_failed: %w", err)
	}

	account, err := service.accounts.FindByID(context, accountID)
	if err != nil {
		return nil, apperr.Unauthorized("Account no longer exists")
	}

	return service.issueSession(context, account)
}

// Me resolves the account behind an access token's subject claim.
func (service *Service) Me(context context.Context, accountID string) (*AdminAccount, error) {
	id, err := googleuuid.Parse(accountID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid session")
	}
	return service.accounts.FindByID(context, id)
}

/*
EnsureAccount provisions or refreshes the bootstrap admin.

The password is hashed here and the row upserted by email, so re-running
the op after a password change rotates the stored hash in place.
*/
func (service *Service) EnsureAccount(context context.Context, email, password string) (*AdminAccount, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Email(FieldEmail, email)
	validator.Required(FieldPassword, password).MinLen(FieldPassword, password, 12)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("auth_hash_failed: %w", err)
	}

	account := &AdminAccount{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         sec.RoleAdmin,
	}

	if err := service.accounts.UpsertByEmail(context, account); err != nil {
		return nil, err
	}

	service.logger.Info("admin_account_ensured", slog.String("account_id", account.ID.String()))
	return account, nil
}

// CountAccounts reports provisioned admins, used by the verification op.
func (service *Service) CountAccounts(context context.Context) (int, error) {
	return service.accounts.Count(context)
}

func (service *Service) issueSession(context context.Context, account *AdminAccount) (*LoginSession, error) {
	accessToken, err := service.tokens.GenerateAccessToken(
		account.ID.String(), account.Email, string(account.Role), constants.AccessTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("auth_access_token_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(constants.RefreshTokenTTL)
	if err := service.sessions.Set(context, sec.HashToken(refreshToken), account.ID, constants.RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("auth_session_store_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Account:               account,
	}, nil
}
