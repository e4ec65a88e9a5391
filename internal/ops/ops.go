// Copyright (c) 2026 Avironin. All rights reserved.

/*
Package ops implements the administrative maintenance operations exposed
by cmd/ops: demonstration content seeding, bootstrap admin provisioning,
storage setup, row-level security policies, and system verification.

Every operation is idempotent. Re-running converges on the same state
instead of duplicating rows or failing on the second pass.
*/
package ops

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avironin/insight-api/internal/core/author"
	"github.com/avironin/insight-api/internal/core/post"
	"github.com/avironin/insight-api/internal/platform/storage"
	"github.com/avironin/insight-api/internal/users/auth"
)

// Runner executes maintenance operations against live dependencies.
type Runner struct {
	db       *pgxpool.Pool
	authors  *author.Service
	posts    post.Repository
	auth     *auth.Service
	accounts auth.AccountRepository
	store    *storage.Client
	logger   *slog.Logger
}

// Options collects the dependencies a Runner can draw on. Commands that do
// not touch a dependency tolerate it being nil.
type Options struct {
	DB       *pgxpool.Pool
	Authors  *author.Service
	Posts    post.Repository
	Auth     *auth.Service
	Accounts auth.AccountRepository
	Store    *storage.Client
	Logger   *slog.Logger
}

func NewRunner(opts Options) *Runner {
	return &Runner{
		db:       opts.DB,
		authors:  opts.Authors,
		posts:    opts.Posts,
		auth:     opts.Auth,
		accounts: opts.Accounts,
		store:    opts.Store,
		logger:   opts.Logger,
	}
}
