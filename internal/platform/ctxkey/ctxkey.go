// Copyright (c) 2026 Avironin. All rights reserved.

// Package ctxkey defines typed context keys used by middleware and handlers
// to carry per-request values (identity, request ID, logger).
//
// A private key type prevents collisions with third-party packages that also
// store values in the request context.
package ctxkey

// key is an unexported type; context lookups match on type and value, so
// another package's "request_id" string key can never collide with ours.
type key string

const (
	// KeyRequestID carries the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyUser carries the authenticated admin claims ([sec.AuthClaims]).
	KeyUser key = "user"

	// KeyLogger carries the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
