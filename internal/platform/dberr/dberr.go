// Copyright (c) 2026 Avironin. All rights reserved.

// Package dberr classifies low-level PostgreSQL errors into application
// errors so store implementations never leak driver details upward.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avironin/insight-api/internal/platform/apperr"
)

// ErrNotFound is returned when a queried row does not exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap inspects a database error and converts it into an [apperr.AppError].
// The action label describes the failed operation and travels with internal
// errors for log context.
//
// # Classification
//
//   - pgx.ErrNoRows          NOT_FOUND
//   - SQLSTATE 23505         CONFLICT (unique violation, e.g. post slug)
//   - anything else          INTERNAL_ERROR carrying the cause for logging
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	if IsUniqueViolation(err) {
		return apperr.Conflict("Resource already exists")
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation. The newsletter service relies on this to treat a duplicate
// subscription as a success.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
