package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/validators"
	"github.com/MKhiriev/go-post-board/models"
)

// AuthValidationService rejects malformed register and login requests
// before they reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

// NewAuthValidationService returns a wrapper validating with validator.
func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req)
}

// Resolve has nothing to validate: every token string is either resolvable
// or invalid.
func (v *AuthValidationService) Resolve(ctx context.Context, token string) (models.Principal, error) {
	return v.inner.Resolve(ctx, token)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// PostValidationService rejects malformed posts before they reach the
// wrapped PostService.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

// NewPostValidationService returns a wrapper validating with validator.
func NewPostValidationService(validator validators.Validator) PostServiceWrapper {
	return &PostValidationService{validator: validator}
}

func (v *PostValidationService) CreatePost(ctx context.Context, principal models.Principal, req models.CreatePostRequest) (models.Post, error) {
	if principal.UserID <= 0 {
		return models.Post{}, fmt.Errorf("%w: no post owner", ErrInvalidDataProvided)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreatePost(ctx, principal, req)
}

func (v *PostValidationService) ListPosts(ctx context.Context, principal models.Principal) ([]models.Post, error) {
	return v.inner.ListPosts(ctx, principal)
}

func (v *PostValidationService) Wrap(inner PostService) PostService {
	v.inner = inner
	return v
}
