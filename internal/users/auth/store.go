// Copyright (c) 2026 Avironin. All rights reserved.

package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccountRepository persists admin accounts in Postgres.
type AccountRepository interface {
	FindByEmail(context context.Context, email string) (*AdminAccount, error)
	FindByID(context context.Context, id uuid.UUID) (*AdminAccount, error)

	// UpsertByEmail creates the account or refreshes its password hash and
	// role when the email already exists. Used by the ensure-admin op.
	UpsertByEmail(context context.Context, account *AdminAccount) error

	Count(context context.Context) (int, error)
}

// SessionRepository tracks refresh tokens. Keys are token hashes, never the
// raw token, so a store dump cannot be replayed against the API.
type SessionRepository interface {
	Set(context context.Context, tokenHash string, accountID uuid.UUID, ttl time.Duration) error
	Get(context context.Context, tokenHash string) (uuid.UUID, error)
	Delete(context context.Context, tokenHash string) error
}
