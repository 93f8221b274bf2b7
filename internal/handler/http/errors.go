// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the middleware and the request parsers of this
// package. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrForbidden is returned when the authenticated role may not use the
	// requested endpoint.
	ErrForbidden = errors.New("access denied")

	// ErrInvalidQueryParam is returned when a query parameter cannot be parsed.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
