// Copyright (c) 2026 Avironin. All rights reserved.

package author

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListAuthors(context context.Context) ([]*Author, error)
	GetAuthor(context context.Context, id uuid.UUID) (*Author, error)

	// FindByName resolves an author by exact name. Used by the seed op to
	// reuse an existing contributor instead of minting a duplicate.
	FindByName(context context.Context, name string) (*Author, error)

	CreateAuthor(context context.Context, a *Author) error
	UpdateAuthor(context context.Context, a *Author) error
	DeleteAuthor(context context.Context, id uuid.UUID) error
}
