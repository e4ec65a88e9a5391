// Copyright (c) 2026 Avironin. All rights reserved.

/*
Package newsletter manages mailing list signups.

Subscribing is deliberately idempotent: signing up twice with the same
address reports success both times, so the form never leaks whether an
address is already on the list.
*/
package newsletter

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is one mailing list signup.
type Subscriber struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Confirmed    bool      `json:"confirmed"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// FieldEmail is the validated form field name.
const FieldEmail = "email"
