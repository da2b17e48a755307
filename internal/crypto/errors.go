// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned by [NewPasswordHasher] for an
	// unknown algorithm name.
	ErrUnsupportedAlgorithm = errors.New("unsupported password hash algorithm")

	// ErrMalformedDigest is returned when a stored digest cannot be decoded.
	ErrMalformedDigest = errors.New("malformed password digest")

	// ErrGeneratingSalt is returned when the OS CSPRNG fails.
	ErrGeneratingSalt = errors.New("error generating salt")
)
