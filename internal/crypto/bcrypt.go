// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptPrehashKey tags the pre-hashed bcrypt input. Every password goes
// through it, so no plaintext reaches bcrypt unchanged.
var bcryptPrehashKey = []byte("go-post-board/bcrypt-prehash/v1")

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a bcrypt [PasswordHasher]. A cost outside
// [bcrypt.MinCost, bcrypt.MaxCost] falls back to [bcrypt.DefaultCost].
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher].
func (b *bcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password with bcrypt: %w", err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher].
func (b *bcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), bcryptInput(plaintext)) == nil
}

// bcryptInput maps any password to a fixed 44-byte input below bcrypt's
// 72-byte limit with HMAC-SHA256, so the whole password contributes to the
// digest and a leaked plain SHA-256 of the password is not a valid input.
func bcryptInput(plaintext string) []byte {
	mac := hmac.New(sha256.New, bcryptPrehashKey)
	mac.Write([]byte(plaintext))
	return []byte(base64.StdEncoding.EncodeToString(mac.Sum(nil)))
}
