// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements one-way password hashing for credential storage.
//
// Two salted adaptive schemes are supported: Argon2id (default) and bcrypt.
// Digests are self-describing strings, so [PasswordHasher.Verify] can check a
// password against a digest produced by either scheme.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext. Two calls with the same
	// plaintext return different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A malformed or
	// unsupported digest never matches.
	Verify(plaintext, digest string) bool
}
