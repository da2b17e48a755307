// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the post board
// server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401). The server's {"detail"} message is kept in
// the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-post-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the post board server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none has been set.
	Token() string

	// Register creates an account and returns the server's confirmation.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Login exchanges credentials for a bearer token and stores it via
	// SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// CreatePost publishes a post as the token's owner and returns the
	// server's confirmation.
	CreatePost(ctx context.Context, req models.CreatePostRequest) (string, error)

	// ListPosts returns the posts of the token's owner.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
