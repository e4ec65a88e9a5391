// Copyright (c) 2026 Avironin. All rights reserved.

/*
Package constants provides centralized, immutable values shared across
layers: server timeouts, rate limits, header names, and storage taxonomy.

Keeping them here eliminates magic strings and numbers from business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "insight-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout bounds writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the keep-alive window between requests.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout bounds request header parsing.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long in-flight requests get during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed per IP.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often idle IP entries are purged.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is the idle period after which an IP entry is dropped.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # Authentication

const (
	// AuthIssuer is the 'iss' claim on admin access tokens.
	AuthIssuer = "avironin.org"

	// RefreshTokenCookieName stores the opaque refresh token.
	RefreshTokenCookieName = "refresh_token"

	// RefreshTokenCookiePath scopes the refresh cookie to the auth routes.
	RefreshTokenCookiePath = "/api/v1/auth"

	// AccessTokenTTL bounds the lifetime of a signed access token.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL bounds the lifetime of an admin session.
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// # Redis Key Prefixes

const (
	RedisPrefixSession = "auth:session:"
)

// # Object Storage

const (
	// WhitepaperBucket holds uploaded white-paper PDF assets.
	WhitepaperBucket = "whitepapers"

	// WhitepaperMaxBytes is the bucket-level size cap (10MB). Enforced by the
	// bucket policy applied in the setup-storage op, not re-validated per call.
	WhitepaperMaxBytes = 10 * 1024 * 1024

	// WhitepaperMimeType is the only type the bucket accepts.
	WhitepaperMimeType = "application/pdf"
)

// # JSON Field Identifiers

const (
	FieldError = "error"
	FieldCode  = "code"
)
