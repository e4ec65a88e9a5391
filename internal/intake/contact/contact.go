// Copyright (c) 2026 Avironin. All rights reserved.

/*
Package contact receives inbound inquiries from the public site.

Submissions are write-only for visitors. Triage happens in the admin
surface, where inquiries are listed newest first with a priority marker so
high-intent requests surface ahead of general questions.
*/
package contact

import (
	"time"

	"github.com/google/uuid"
)

// Priority levels for inbound inquiries.
const (
	PriorityNormal = 1
	PriorityHigh   = 2
)

// StatusNew is the triage state assigned to every fresh submission.
const StatusNew = "new"

// Submission is one inbound inquiry from the contact form.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Stage     string    `json:"stage,omitempty"`
	Message   string    `json:"message"`
	Priority  int       `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Input is the public form payload. HighPriority is set by the site when
// the visitor requests a strategy session rather than a general inquiry.
type Input struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Company      string `json:"company"`
	Stage        string `json:"stage"`
	Message      string `json:"message"`
	HighPriority bool   `json:"high_priority"`
}

// Global field names for validation
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldCompany = "company"
	FieldStage   = "stage"
	FieldMessage = "message"
)
