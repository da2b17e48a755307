// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenTypeBearer is the only token type issued by the server.
const TokenTypeBearer = "bearer"

// Token is the bearer credential returned by a successful login.
//
// Depending on the configured token mode AccessToken is either the user's
// email or a signed JWT; clients must treat it as opaque and send it back in
// the "Authorization: Bearer <token>" header.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
