// Copyright (c) 2026 Avironin. All rights reserved.

package ops

import (
	"context"
	"fmt"
)

// policyStatements enables row-level security on the public-facing tables
// and grants anonymous reads only where publication state allows it. The
// API connects as the table owner and is unaffected; the policies protect
// any direct read path granted to reporting or frontend roles.
var policyStatements = []string{
	`ALTER TABLE posts ENABLE ROW LEVEL SECURITY`,
	`ALTER TABLE authors ENABLE ROW LEVEL SECURITY`,

	`DROP POLICY IF EXISTS "Public read access for published posts" ON posts`,
	`DROP POLICY IF EXISTS "Public read access for authors" ON authors`,

	`CREATE POLICY "Public read access for published posts"
		ON posts FOR SELECT
		USING (published = true)`,

	`CREATE POLICY "Public read access for authors"
		ON authors FOR SELECT
		TO public
		USING (true)`,
}

// ApplyPolicies installs the row-level security policies. Existing
// policies are dropped first so re-runs never conflict.
func (runner *Runner) ApplyPolicies(context context.Context) error {
	for _, statement := range policyStatements {
		if _, err := runner.db.Exec(context, statement); err != nil {
			return fmt.Errorf("ops: policy statement failed: %w", err)
		}
	}

	runner.logger.Info("policies_applied")
	return nil
}
