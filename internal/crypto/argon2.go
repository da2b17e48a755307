// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argon2Prefix = "$argon2id$"

	// upper bounds accepted from a stored digest
	maxArgonMemory  = 1024 * 1024 // 1 GiB
	maxArgonTime    = 16
	maxArgonKeyLen  = 128
	maxArgonThreads = 64
)

// Argon2Params tunes the Argon2id key derivation.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultArgon2Params are the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

// argon2Hasher is the Argon2id implementation of [PasswordHasher].
// Digests use the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// where salt and key are unpadded standard base64.
type argon2Hasher struct {
	params Argon2Params
}

// NewArgon2Hasher constructs an Argon2id [PasswordHasher] with params.
func NewArgon2Hasher(params Argon2Params) PasswordHasher {
	return &argon2Hasher{params: params}
}

// Hash implements [PasswordHasher].
func (a *argon2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, a.params.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingSalt, err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, a.params.Time, a.params.Memory, a.params.Threads, a.params.KeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix,
		argon2.Version,
		a.params.Memory,
		a.params.Time,
		a.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher]. The parameters are taken from digest,
// not from the receiver, so digests created with older settings still verify.
func (a *argon2Hasher) Verify(plaintext, digest string) bool {
	params, salt, key, err := decodeArgon2Digest(digest)
	if err != nil {
		return false
	}

	otherKey := argon2.IDKey([]byte(plaintext), salt, params.Time, params.Memory, params.Threads, params.KeyLen)

	return subtle.ConstantTimeCompare(key, otherKey) == 1
}

func decodeArgon2Digest(digest string) (Argon2Params, []byte, []byte, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Argon2Params{}, nil, nil, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Argon2Params{}, nil, nil, ErrMalformedDigest
	}

	var params Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return Argon2Params{}, nil, nil, ErrMalformedDigest
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return Argon2Params{}, nil, nil, ErrMalformedDigest
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Argon2Params{}, nil, nil, ErrMalformedDigest
	}

	params.KeyLen = uint32(len(key))
	params.SaltLen = uint32(len(salt))

	if params.Time == 0 || params.Time > maxArgonTime ||
		params.Memory == 0 || params.Memory > maxArgonMemory ||
		params.Threads == 0 || params.Threads > maxArgonThreads ||
		params.KeyLen > maxArgonKeyLen {
		return Argon2Params{}, nil, nil, ErrMalformedDigest
	}

	return params, salt, key, nil
}
