// Copyright (c) 2026 Avironin. All rights reserved.

// Package author manages the contributor registry backing post attribution.
package author

import (
	"time"

	"github.com/google/uuid"
)

// Author represents a contributor whose byline appears on posts.
type Author struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Role      string            `json:"role,omitempty"`
	Bio       string            `json:"bio,omitempty"`
	AvatarURL string            `json:"avatar_url,omitempty"`
	// SocialLinks maps a platform key (e.g. "twitter", "linkedin") to a
	// profile URL. Stored as a JSON document, no closed key set.
	SocialLinks map[string]string `json:"social_links,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldRole        = "role"
	FieldBio         = "bio"
	FieldAvatarURL   = "avatar_url"
	FieldSocialLinks = "social_links"
)
