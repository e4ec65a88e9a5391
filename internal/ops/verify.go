// Copyright (c) 2026 Avironin. All rights reserved.

package ops

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avironin/insight-api/internal/platform/database/schema"
)

/*
Verify performs an end-to-end system check and reports every finding
before deciding the overall outcome:

  - every application table answers a row count
  - the white-paper bucket exists
  - the bootstrap admin account is provisioned

It returns an error when any check fails, so the command exit code can
gate deployment pipelines.
*/
func (runner *Runner) Verify(context context.Context, adminEmail string) error {
	failures := 0

	tables := []string{
		schema.Posts.Table,
		schema.Authors.Table,
		schema.ContactSubmissions.Table,
		schema.NewsletterSubscribers.Table,
		schema.AdminAccounts.Table,
	}

	for _, table := range tables {
		var total int
		query := fmt.Sprintf(`SELECT count(*) FROM %s`, table)
		if err := runner.db.QueryRow(context, query).Scan(&total); err != nil {
			runner.logger.Error("verify_table_failed", slog.String("table", table), slog.Any("error", err))
			failures++
			continue
		}
		runner.logger.Info("verify_table_ok", slog.String("table", table), slog.Int("rows", total))
	}

	exists, err := runner.store.BucketExists(context)
	switch {
	case err != nil:
		runner.logger.Error("verify_bucket_failed", slog.Any("error", err))
		failures++
	case !exists:
		runner.logger.Error("verify_bucket_missing", slog.String("bucket", runner.store.Bucket()))
		failures++
	default:
		runner.logger.Info("verify_bucket_ok", slog.String("bucket", runner.store.Bucket()))
	}

	if _, err := runner.accounts.FindByEmail(context, adminEmail); err != nil {
		runner.logger.Error("verify_admin_missing", slog.String("email", adminEmail), slog.Any("error", err))
		failures++
	} else {
		runner.logger.Info("verify_admin_ok", slog.String("email", adminEmail))
	}

	if failures > 0 {
		return fmt.Errorf("ops: system verification failed with %d errors", failures)
	}

	runner.logger.Info("verify_passed")
	return nil
}
