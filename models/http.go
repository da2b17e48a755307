// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest carries the data needed to create a new account.
type RegisterRequest struct {
	// Name is the display name, between 3 and 30 characters.
	Name string `json:"name" validate:"required,min=3,max=30"`

	// Email must be a syntactically valid address. Uniqueness is enforced by
	// the database, not by validation.
	Email string `json:"email" validate:"required,email,max=30"`

	// Password is the plaintext password, at least 6 characters long.
	// It is hashed before storage and never persisted as is.
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// LoginRequest carries the credentials exchanged for a bearer token.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreatePostRequest carries the user-provided part of a new post.
// The owner is always the authenticated principal.
type CreatePostRequest struct {
	Title       string `json:"title" validate:"required,max=30"`
	Description string `json:"description" validate:"required,max=300"`
}
