// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// post board server handlers and the client adapter.
//
// All Msg* constants are human-readable message strings written into response
// bodies ({"detail": ...} or {"message": ...}). Clients match on them, so the
// wording is part of the API.
package app

const (
	// MsgUserNotFound is returned by login when no account has the email,
	// and by post creation when the owner no longer exists.
	MsgUserNotFound = "User not found"

	// MsgIncorrectPassword is returned by login when the password does not
	// match the stored digest.
	MsgIncorrectPassword = "Incorrect password"

	// MsgUserAlreadyExists is returned by registration when the email is taken.
	MsgUserAlreadyExists = "User with this email exist"

	// MsgInvalidToken is returned when the bearer token is missing or does
	// not identify an existing user.
	MsgInvalidToken = "Invalid token"

	// MsgInvalidDataProvided prefixes validation failures and undecodable
	// request bodies.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgRequestBodyTooLarge is returned when a request body, after gzip
	// decoding, exceeds the size limit.
	MsgRequestBodyTooLarge = "request body too large"

	// MsgInternalServerError is returned for any unexpected failure.
	MsgInternalServerError = "internal server error"

	MsgUserCreated = "User created successfully"
	MsgPostCreated = "Post created successfully"
)
