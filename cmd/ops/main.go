// Copyright (c) 2026 Avironin. All rights reserved.

// Command ops runs administrative maintenance operations against a live
// deployment.
//
// Usage:
//
//	ops seed            load demonstration content (idempotent)
//	ops ensure-admin    provision or rotate the bootstrap admin account
//	ops setup-storage   create the white-paper bucket
//	ops apply-policies  install row-level security policies
//	ops verify          end-to-end system check
//
// All commands read the same environment configuration as the API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/avironin/insight-api/internal/core/author"
	"github.com/avironin/insight-api/internal/core/post"
	"github.com/avironin/insight-api/internal/ops"
	"github.com/avironin/insight-api/internal/platform/config"
	"github.com/avironin/insight-api/internal/platform/constants"
	pgstore "github.com/avironin/insight-api/internal/platform/postgres"
	"github.com/avironin/insight-api/internal/platform/storage"
	"github.com/avironin/insight-api/internal/users/auth"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName+"-ops"))

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: ops <seed|ensure-admin|setup-storage|apply-policies|verify>")
		os.Exit(2)
	}
	command := os.Args[1]

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	store, err := storage.NewClient(storage.Options{
		Endpoint:  cfg.StorageEndpoint,
		AccessKey: cfg.StorageAccessKey,
		SecretKey: cfg.StorageSecretKey,
		Bucket:    cfg.StorageBucket,
		UseSSL:    cfg.StorageUseSSL,
	}, log)
	must(log, err, "connect to object storage")

	accountRepo := auth.NewPostgresAccountRepository(pool)

	// The session store and token signer are login-path dependencies; the
	// provisioning path never touches them.
	authService := auth.NewService(accountRepo, nil, nil, log)

	runner := ops.NewRunner(ops.Options{
		DB:       pool,
		Authors:  author.NewService(author.NewPostgresRepository(pool), log),
		Posts:    post.NewPostgresRepository(pool),
		Auth:     authService,
		Accounts: accountRepo,
		Store:    store,
		Logger:   log,
	})

	switch command {
	case "seed":
		err = runner.Seed(ctx)
	case "ensure-admin":
		err = runner.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
	case "setup-storage":
		err = runner.SetupStorage(ctx)
	case "apply-policies":
		err = runner.ApplyPolicies(ctx)
	case "verify":
		err = runner.Verify(ctx, cfg.AdminEmail)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", command)
		os.Exit(2)
	}

	if err != nil {
		log.Error("operation failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("operation complete", slog.String("command", command))
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
