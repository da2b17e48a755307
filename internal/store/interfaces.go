package store

import (
	"context"

	"github.com/MKhiriev/go-post-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the id and creation time
	// assigned by the database. A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// PostRepository persists and lists posts.
type PostRepository interface {
	// CreatePost inserts post and returns it with the id and creation time
	// assigned by the database. An unknown owner yields ErrPostOwnerNotFound.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// FindPostsByUserID returns the posts of a user ordered by id.
	FindPostsByUserID(ctx context.Context, userID int64) ([]models.Post, error)
}
