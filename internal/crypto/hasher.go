// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strings"
)

// Supported algorithm names for [NewPasswordHasher].
const (
	AlgorithmArgon2id = "argon2id"
	AlgorithmBcrypt   = "bcrypt"
)

// passwordHasher hashes with one scheme and verifies digests of every
// supported scheme, picking the verifier by the digest prefix.
type passwordHasher struct {
	primary PasswordHasher

	argon2 PasswordHasher
	bcrypt PasswordHasher
}

// NewPasswordHasher returns a [PasswordHasher] that produces digests with
// algorithm ("argon2id" when empty) and verifies digests of any supported
// algorithm.
func NewPasswordHasher(algorithm string) (PasswordHasher, error) {
	h := &passwordHasher{
		argon2: NewArgon2Hasher(DefaultArgon2Params),
		bcrypt: NewBcryptHasher(0),
	}

	switch strings.ToLower(algorithm) {
	case "", AlgorithmArgon2id:
		h.primary = h.argon2
	case AlgorithmBcrypt:
		h.primary = h.bcrypt
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}

	return h, nil
}

// Hash implements [PasswordHasher].
func (h *passwordHasher) Hash(plaintext string) (string, error) {
	return h.primary.Hash(plaintext)
}

// Verify implements [PasswordHasher].
func (h *passwordHasher) Verify(plaintext, digest string) bool {
	switch {
	case strings.HasPrefix(digest, argon2Prefix):
		return h.argon2.Verify(plaintext, digest)
	case isBcryptDigest(digest):
		return h.bcrypt.Verify(plaintext, digest)
	default:
		return false
	}
}

func isBcryptDigest(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}
