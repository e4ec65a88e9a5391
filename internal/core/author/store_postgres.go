// Copyright (c) 2026 Avironin. All rights reserved.

package author

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avironin/insight-api/internal/platform/database/schema"
	"github.com/avironin/insight-api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListAuthors(context context.Context) ([]*Author, error) {
	a := schema.Authors
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		a.ID, a.Name, a.Role, a.Bio, a.AvatarURL, a.SocialLinks, a.CreatedAt,
		a.Table, a.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	var authors []*Author
	for rows.Next() {
		author := &Author{}
		if err := rows.Scan(&author.ID, &author.Name, &author.Role, &author.Bio, &author.AvatarURL, &author.SocialLinks, &author.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, author)
	}

	return authors, rows.Err()
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id uuid.UUID) (*Author, error) {
	a := schema.Authors
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		a.ID, a.Name, a.Role, a.Bio, a.AvatarURL, a.SocialLinks, a.CreatedAt,
		a.Table, a.ID,
	)
	author := &Author{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&author.ID, &author.Name, &author.Role, &author.Bio, &author.AvatarURL, &author.SocialLinks, &author.CreatedAt,
	)

	return author, dberr.Wrap(err, "get_author")
}

func (repository *PostgresRepository) FindByName(context context.Context, name string) (*Author, error) {
	a := schema.Authors
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		a.ID, a.Name, a.Role, a.Bio, a.AvatarURL, a.SocialLinks, a.CreatedAt,
		a.Table, a.Name,
	)
	author := &Author{}

	err := repository.db.QueryRow(context, query, name).Scan(
		&author.ID, &author.Name, &author.Role, &author.Bio, &author.AvatarURL, &author.SocialLinks, &author.CreatedAt,
	)

	return author, dberr.Wrap(err, "find_author_by_name")
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, author *Author) error {
	a := schema.Authors
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s
	`,
		a.Table, a.ID, a.Name, a.Role, a.Bio, a.AvatarURL, a.SocialLinks, a.CreatedAt,
		a.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		author.ID, author.Name, author.Role, author.Bio, author.AvatarURL, author.SocialLinks,
	).Scan(&author.CreatedAt)
	return dberr.Wrap(err, "create_author")
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, author *Author) error {
	a := schema.Authors
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
	`,
		a.Table, a.Name, a.Role, a.Bio, a.AvatarURL, a.SocialLinks,
		a.ID,
	)

	cmd, err := repository.db.Exec(context, query,
		author.ID, author.Name, author.Role, author.Bio, author.AvatarURL, author.SocialLinks,
	)
	if err != nil {
		return dberr.Wrap(err, "update_author")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteAuthor(context context.Context, id uuid.UUID) error {
	a := schema.Authors
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, a.Table, a.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_author")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
