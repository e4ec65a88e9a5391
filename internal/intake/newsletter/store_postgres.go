// Copyright (c) 2026 Avironin. All rights reserved.

package newsletter

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

func (repository *PostgresRepository) Create(context context.Context, subscriber *Subscriber) error {
	n := schema.NewsletterSubscribers
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`,
		n.Table, n.ID, n.Email, n.Confirmed, n.SubscribedAt,
		n.SubscribedAt,
	)

	err := repository.db.QueryRow(context, query,
		subscriber.ID, subscriber.Email, subscriber.Confirmed,
	).Scan(&subscriber.SubscribedAt)
	return dberr.Wrap(err, "create_newsletter_subscriber")
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	n := schema.NewsletterSubscribers
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, n.Table)

	var total int
	err := repository.db.QueryRow(context, query).Scan(&total)
	return total, dberr.Wrap(err, "count_newsletter_subscribers")
}
