// Copyright (c) 2026 Avironin. All rights reserved.

package post

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

// summaryColumns is the listing projection. The content body is excluded
// on purpose so collection queries stay cheap.
func summaryColumns() string {
	p := schema.Posts
	return fmt.Sprintf(
		"p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s",
		p.ID, p.Title, p.Slug, p.Summary, p.Category, p.ContentType, p.AuthorID,
		p.Published, p.Featured, p.ReadTime, p.SEODescription, p.ImageURL, p.PDFURL,
		p.CreatedAt, p.UpdatedAt,
	)
}

func authorColumns() string {
	a := schema.Authors
	return fmt.Sprintf("a.%s, a.%s, a.%s, a.%s", a.ID, a.Name, a.Role, a.AvatarURL)
}

func scanSummary(row interface{ Scan(...any) error }) (*Summary, error) {
	s := &Summary{}
	var (
		authorID        *uuid.UUID
		authorName      *string
		authorRole      *string
		authorAvatarURL *string
	)

	err := row.Scan(
		&s.ID, &s.Title, &s.Slug, &s.Summary, &s.Category, &s.ContentType, &s.AuthorID,
		&s.Published, &s.Featured, &s.ReadTime, &s.SEODescription, &s.ImageURL, &s.PDFURL,
		&s.CreatedAt, &s.UpdatedAt,
		&authorID, &authorName, &authorRole, &authorAvatarURL,
	)
	if err != nil {
		return nil, err
	}

	if authorID != nil {
		s.Author = &AuthorRef{ID: *authorID, Name: derefStr(authorName), Role: derefStr(authorRole), AvatarURL: derefStr(authorAvatarURL)}
	}
	return s, nil
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (repository *PostgresRepository) listSummaries(context context.Context, where, orderBy string, args ...any) ([]*Summary, error) {
	p := schema.Posts
	a := schema.Authors
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s p
		LEFT JOIN %s a ON a.%s = p.%s
		WHERE %s
		ORDER BY %s
	`,
		summaryColumns(), authorColumns(),
		p.Table, a.Table, a.ID, p.AuthorID,
		where, orderBy,
	)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	var posts []*Summary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, s)
	}

	return posts, rows.Err()
}

func (repository *PostgresRepository) ListPublished(context context.Context, contentType ContentType) ([]*Summary, error) {
	p := schema.Posts
	where := fmt.Sprintf("p.%s = true", p.Published)
	orderBy := fmt.Sprintf("p.%s DESC", p.CreatedAt)

	if contentType == "" {
		return repository.listSummaries(context, where, orderBy)
	}

	where += fmt.Sprintf(" AND p.%s = $1", p.ContentType)
	return repository.listSummaries(context, where, orderBy, string(contentType))
}

func (repository *PostgresRepository) ListFeatured(context context.Context, limit int) ([]*Summary, error) {
	p := schema.Posts
	where := fmt.Sprintf("p.%s = true AND p.%s = true", p.Published, p.Featured)
	orderBy := fmt.Sprintf("p.%s DESC LIMIT $1", p.CreatedAt)
	return repository.listSummaries(context, where, orderBy, limit)
}

func (repository *PostgresRepository) ListByCategory(context context.Context, category Category) ([]*Summary, error) {
	p := schema.Posts
	where := fmt.Sprintf("p.%s = true AND p.%s = $1", p.Published, p.Category)
	return repository.listSummaries(context, where, fmt.Sprintf("p.%s DESC", p.CreatedAt), string(category))
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Summary, error) {
	return repository.listSummaries(context, "true", fmt.Sprintf("p.%s DESC", schema.Posts.CreatedAt))
}

func (repository *PostgresRepository) getOne(context context.Context, where string, args ...any) (*Post, error) {
	p := schema.Posts
	a := schema.Authors
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, %s
		FROM %s p
		LEFT JOIN %s a ON a.%s = p.%s
		WHERE %s
	`,
		p.ID, p.Title, p.Slug, p.Content, p.Summary, p.Category, p.ContentType, p.AuthorID,
		p.Published, p.Featured, p.ReadTime, p.SEODescription, p.ImageURL, p.PDFURL,
		p.CreatedAt, p.UpdatedAt, authorColumns(),
		p.Table, a.Table, a.ID, p.AuthorID,
		where,
	)

	result := &Post{}
	var (
		authorID        *uuid.UUID
		authorName      *string
		authorRole      *string
		authorAvatarURL *string
	)

	err := repository.db.QueryRow(context, query, args...).Scan(
		&result.ID, &result.Title, &result.Slug, &result.Content, &result.Summary,
		&result.Category, &result.ContentType, &result.AuthorID,
		&result.Published, &result.Featured, &result.ReadTime,
		&result.SEODescription, &result.ImageURL, &result.PDFURL,
		&result.CreatedAt, &result.UpdatedAt,
		&authorID, &authorName, &authorRole, &authorAvatarURL,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_post")
	}

	if authorID != nil {
		result.Author = &AuthorRef{ID: *authorID, Name: derefStr(authorName), Role: derefStr(authorRole), AvatarURL: derefStr(authorAvatarURL)}
	}
	return result, nil
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string) (*Post, error) {
	p := schema.Posts
	return repository.getOne(context, fmt.Sprintf("p.%s = $1 AND p.%s = true", p.Slug, p.Published), slug)
}

func (repository *PostgresRepository) GetByID(context context.Context, id uuid.UUID) (*Post, error) {
	return repository.getOne(context, fmt.Sprintf("p.%s = $1", schema.Posts.ID), id)
}

func (repository *PostgresRepository) Create(context context.Context, post *Post) error {
	p := schema.Posts
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING %s, %s
	`,
		p.Table, p.ID, p.Title, p.Slug, p.Content, p.Summary, p.Category, p.ContentType,
		p.AuthorID, p.Published, p.Featured, p.ReadTime, p.SEODescription, p.ImageURL, p.PDFURL,
		p.CreatedAt, p.UpdatedAt,
		p.CreatedAt, p.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		post.ID, post.Title, post.Slug, post.Content, post.Summary, post.Category, post.ContentType,
		post.AuthorID, post.Published, post.Featured, post.ReadTime,
		post.SEODescription, post.ImageURL, post.PDFURL,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	return dberr.Wrap(err, "create_post")
}

func (repository *PostgresRepository) Update(context context.Context, post *Post) error {
	p := schema.Posts
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
		    %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		p.Table, p.Title, p.Slug, p.Content, p.Summary, p.Category, p.ContentType,
		p.AuthorID, p.Published, p.Featured, p.ReadTime, p.SEODescription, p.ImageURL, p.PDFURL,
		p.UpdatedAt,
		p.ID,
		p.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		post.ID, post.Title, post.Slug, post.Content, post.Summary, post.Category, post.ContentType,
		post.AuthorID, post.Published, post.Featured, post.ReadTime,
		post.SEODescription, post.ImageURL, post.PDFURL,
	).Scan(&post.UpdatedAt)
	return dberr.Wrap(err, "update_post")
}

func (repository *PostgresRepository) Delete(context context.Context, id uuid.UUID) error {
	p := schema.Posts
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, p.Table, p.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_post")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetPublished(context context.Context, id uuid.UUID, published bool) error {
	p := schema.Posts
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		p.Table, p.Published, p.UpdatedAt, p.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, published)
	if err != nil {
		return dberr.Wrap(err, "set_post_published")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) UpsertBySlug(context context.Context, post *Post) error {
	p := schema.Posts
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = NOW()
		RETURNING %s
	`,
		p.Table, p.ID, p.Title, p.Slug, p.Content, p.Summary, p.Category, p.ContentType,
		p.AuthorID, p.Published, p.Featured, p.ReadTime, p.SEODescription, p.ImageURL, p.PDFURL,
		p.CreatedAt, p.UpdatedAt,
		p.Slug,
		p.Title, p.Title, p.Content, p.Content, p.Summary, p.Summary, p.Category, p.Category,
		p.ContentType, p.ContentType, p.AuthorID, p.AuthorID, p.Published, p.Published, p.Featured, p.Featured,
		p.ReadTime, p.ReadTime, p.SEODescription, p.SEODescription, p.ImageURL, p.ImageURL, p.PDFURL, p.PDFURL,
		p.UpdatedAt,
		p.ID,
	)

	err := repository.db.QueryRow(context, query,
		post.ID, post.Title, post.Slug, post.Content, post.Summary, post.Category, post.ContentType,
		post.AuthorID, post.Published, post.Featured, post.ReadTime,
		post.SEODescription, post.ImageURL, post.PDFURL,
	).Scan(&post.ID)
	return dberr.Wrap(err, "upsert_post")
}
