// Copyright (c) 2026 Avironin. All rights reserved.

package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/avironin/insight-api/internal/platform/sec"
)

// AdminAccount is an editorial login. There is no public registration;
// accounts exist only through the ensure-admin maintenance op.
type AdminAccount struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// RefreshTokenLength is the entropy in bytes of a refresh token.
const RefreshTokenLength = 32

// Global field names for validation
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)
