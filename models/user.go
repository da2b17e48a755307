// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
// PasswordHash must never leave the server, so it is excluded from JSON.
type User struct {
	// UserID is the auto-incremented primary key assigned by the database.
	UserID int64 `json:"id"`

	// Name is the display name given at registration.
	Name string `json:"name"`

	// Email is the business key of the account. It is unique across users
	// and is used for login.
	Email string `json:"email"`

	// PasswordHash is the salted adaptive hash of the user's password
	// produced by crypto.PasswordHasher.
	PasswordHash string `json:"-"`

	// CreatedAt is assigned by the database on insert and never changes.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Principal is the authenticated user on whose behalf a request acts.
// It carries no credential material.
type Principal struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Principal returns the request identity of u.
func (u User) Principal() Principal {
	return Principal{UserID: u.UserID, Name: u.Name, Email: u.Email}
}
