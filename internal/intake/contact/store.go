// Copyright (c) 2026 Avironin. All rights reserved.

package contact

import "context"

type Repository interface {
	Create(context context.Context, s *Submission) error
	List(context context.Context, limit, offset int) ([]*Submission, int, error)
}
