// Copyright (c) 2026 Avironin. All rights reserved.

package ops

import (
	"context"
	"fmt"
	"log/slog"
)

// SetupStorage provisions the white-paper bucket. Creating a bucket that
// already exists is a no-op, so the command is safe to re-run.
func (runner *Runner) SetupStorage(context context.Context) error {
	if err := runner.store.EnsureBucket(context); err != nil {
		return fmt.Errorf("ops: storage setup failed: %w", err)
	}

	runner.logger.Info("storage_ready", slog.String("bucket", runner.store.Bucket()))
	return nil
}
