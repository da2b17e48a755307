// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the confirmation body of mutating operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// PostsResponse lists posts of the authenticated user.
type PostsResponse struct {
	Posts  []Post `json:"posts"`
	Length int    `json:"length"`
}
