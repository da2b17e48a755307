// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestPasswordHasher(primary PasswordHasher) *passwordHasher {
	return &passwordHasher{
		primary: primary,
		argon2:  NewArgon2Hasher(testArgon2Params),
		bcrypt:  NewBcryptHasher(bcrypt.MinCost),
	}
}

func TestNewPasswordHasher(t *testing.T) {
	tests := []struct {
		algorithm string
		wantErr   error
	}{
		{algorithm: ""},
		{algorithm: "argon2id"},
		{algorithm: "ARGON2ID"},
		{algorithm: "bcrypt"},
		{algorithm: "md5", wantErr: ErrUnsupportedAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			h, err := NewPasswordHasher(tt.algorithm)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, h)
		})
	}
}

func TestPasswordHasher_VerifiesEveryScheme(t *testing.T) {
	argonDigest, err := NewArgon2Hasher(testArgon2Params).Hash("secret1")
	require.NoError(t, err)
	bcryptDigest, err := NewBcryptHasher(bcrypt.MinCost).Hash("secret1")
	require.NoError(t, err)

	for _, primary := range []PasswordHasher{NewArgon2Hasher(testArgon2Params), NewBcryptHasher(bcrypt.MinCost)} {
		h := newTestPasswordHasher(primary)

		assert.True(t, h.Verify("secret1", argonDigest))
		assert.True(t, h.Verify("secret1", bcryptDigest))
		assert.False(t, h.Verify("secret2", argonDigest))
		assert.False(t, h.Verify("secret2", bcryptDigest))
	}
}

func TestPasswordHasher_HashVerifyRoundTrip(t *testing.T) {
	h := newTestPasswordHasher(NewArgon2Hasher(testArgon2Params))

	passwords := []string{"", "a", "secret1", "correct horse battery staple", "ünïcödé"}
	for _, p := range passwords {
		digest, err := h.Hash(p)
		require.NoError(t, err)
		assert.True(t, h.Verify(p, digest), p)

		for _, other := range passwords {
			if other != p {
				assert.False(t, h.Verify(other, digest), "%q verified against digest of %q", other, p)
			}
		}
	}
}

func TestPasswordHasher_UnknownDigestFailsClosed(t *testing.T) {
	h := newTestPasswordHasher(NewArgon2Hasher(testArgon2Params))

	assert.False(t, h.Verify("secret1", "secret1"))
	assert.False(t, h.Verify("", ""))
	assert.False(t, h.Verify("secret1", "$1$md5$digest"))
}
