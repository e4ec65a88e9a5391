// Copyright (c) 2026 Avironin. All rights reserved.

/*
Package uuid generates time-ordered unique identifiers.

It wraps the standard UUID library to produce Version 7 values only:

  - Sortable: ordered by creation time at millisecond precision.
  - Index-friendly: avoids B-tree fragmentation in PostgreSQL.
  - Compatible: stored in standard 'uuid' columns.

All primary keys in the platform use this generator.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7.
func New() uuid.UUID {
	id, err := uuid.NewV7()

	// Entropy failure is an unrecoverable system-level error.
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id
}
