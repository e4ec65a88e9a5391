// Copyright (c) 2026 Avironin. All rights reserved.

package contact

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) Create(context context.Context, submission *Submission) error {
	c := schema.ContactSubmissions
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING %s
	`,
		c.Table, c.ID, c.Name, c.Email, c.Company, c.Stage, c.Message, c.Priority, c.Status,
		c.CreatedAt,
		c.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		submission.ID, submission.Name, submission.Email, submission.Company,
		submission.Stage, submission.Message, submission.Priority, submission.Status,
	).Scan(&submission.CreatedAt)
	return dberr.Wrap(err, "create_contact_submission")
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Submission, int, error) {
	c := schema.ContactSubmissions

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, c.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_contact_submissions")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC, %s DESC
		LIMIT $1 OFFSET $2
	`,
		c.ID, c.Name, c.Email, c.Company, c.Stage, c.Message, c.Priority, c.Status, c.CreatedAt,
		c.Table,
		c.Priority, c.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_contact_submissions")
	}
	defer rows.Close()

	var submissions []*Submission
	for rows.Next() {
		s := &Submission{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Company, &s.Stage, &s.Message, &s.Priority, &s.Status, &s.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_contact_submission")
		}
		submissions = append(submissions, s)
	}

	return submissions, total, rows.Err()
}
