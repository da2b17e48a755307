package service

import (
	"context"

	"github.com/MKhiriev/go-post-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, exchanges credentials for bearer tokens and
// resolves tokens back to the user they were issued for.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	Resolve(ctx context.Context, token string) (models.Principal, error)
}

// PostService creates and lists posts on behalf of an authenticated user.
type PostService interface {
	CreatePost(ctx context.Context, principal models.Principal, req models.CreatePostRequest) (models.Post, error)
	ListPosts(ctx context.Context, principal models.Principal) ([]models.Post, error)
}

// AppInfoService reports static information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TokenIssuer turns a user into a bearer token and a presented token back
// into the subject (email) it was issued for.
type TokenIssuer interface {
	Issue(user models.User) (models.Token, error)
	Subject(token string) (string, error)
}
