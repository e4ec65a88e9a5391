// Copyright (c) 2026 Avironin. All rights reserved.

package newsletter

import "context"

type Repository interface {
	Create(context context.Context, s *Subscriber) error
	Count(context context.Context) (int, error)
}
