// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoPrincipal is returned by protected handlers reached without the
	// auth middleware having stored a principal in the request context.
	ErrNoPrincipal = errors.New("no authenticated principal in request context")
)
