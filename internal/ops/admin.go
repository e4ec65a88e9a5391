// Copyright (c) 2026 Avironin. All rights reserved.

package ops

import (
	"context"
	"fmt"
	"log/slog"
)

// EnsureAdmin provisions the bootstrap admin account, or rotates its
// password when the account already exists.
func (runner *Runner) EnsureAdmin(context context.Context, email, password string) error {
	if password == "" {
		return fmt.Errorf("ops: ADMIN_PASSWORD must be set to provision the admin account")
	}

	account, err := runner.auth.EnsureAccount(context, email, password)
	if err != nil {
		return fmt.Errorf("ops: ensure admin failed: %w", err)
	}

	runner.logger.Info("admin_ensured",
		slog.String("account_id", account.ID.String()),
		slog.String("email", account.Email),
	)
	return nil
}
