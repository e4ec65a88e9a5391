// Copyright (c) 2026 Avironin. All rights reserved.

/*
Package requestutil provides utilities for extracting data from HTTP
requests.

It hides the router's parameter extraction and common body decoding behind
one surface so handlers share consistent error handling.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avironin/insight-api/internal/platform/apperr"
	"github.com/avironin/insight-api/internal/platform/ctxutil"
	"github.com/avironin/insight-api/internal/platform/sec"
	"github.com/avironin/insight-api/internal/platform/validate"
)

// DecodeJSON reads the request body into target, returning
// [validate.ErrInvalidJSON] when the payload cannot be parsed.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter (ID or slug) from the route.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Claims extracts the authenticated admin claims, or nil when anonymous.
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

// RequiredClaims ensures the request is authenticated.
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
