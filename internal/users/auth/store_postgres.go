// Copyright (c) 2026 Avironin. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avironin/insight-api/internal/platform/database/schema"
	"github.com/avironin/insight-api/internal/platform/dberr"
)

type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (repository *PostgresAccountRepository) FindByEmail(context context.Context, email string) (*AdminAccount, error) {
	a := schema.AdminAccounts
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		a.ID, a.Email, a.PasswordHash, a.Role, a.CreatedAt, a.UpdatedAt,
		a.Table, a.Email,
	)
	account := &AdminAccount{}

	err := repository.db.QueryRow(context, query, email).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.Role, &account.CreatedAt, &account.UpdatedAt,
	)

	return account, dberr.Wrap(err, "find_admin_by_email")
}

func (repository *PostgresAccountRepository) FindByID(context context.Context, id uuid.UUID) (*AdminAccount, error) {
	a := schema.AdminAccounts
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		a.ID, a.Email, a.PasswordHash, a.Role, a.CreatedAt, a.UpdatedAt,
		a.Table, a.ID,
	)
	account := &AdminAccount{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.Role, &account.CreatedAt, &account.UpdatedAt,
	)

	return account, dberr.Wrap(err, "find_admin_by_id")
}

func (repository *PostgresAccountRepository) UpsertByEmail(context context.Context, account *AdminAccount) error {
	a := schema.AdminAccounts
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		a.Table, a.ID, a.Email, a.PasswordHash, a.Role, a.CreatedAt, a.UpdatedAt,
		a.Email,
		a.PasswordHash, a.PasswordHash, a.Role, a.Role, a.UpdatedAt,
		a.ID, a.CreatedAt, a.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		account.ID, account.Email, account.PasswordHash, account.Role,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	return dberr.Wrap(err, "upsert_admin_account")
}

func (repository *PostgresAccountRepository) Count(context context.Context) (int, error) {
	a := schema.AdminAccounts
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, a.Table)

	var total int
	err := repository.db.QueryRow(context, query).Scan(&total)
	return total, dberr.Wrap(err, "count_admin_accounts")
}
