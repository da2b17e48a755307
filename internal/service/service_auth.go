package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/crypto"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/models"
)

// authService is the concrete implementation of AuthService.
// It stores salted password digests through a PasswordHasher and delegates
// the bearer token format to a TokenIssuer.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and verifies password digests.
	hasher crypto.PasswordHasher

	// tokens issues and resolves bearer tokens.
	tokens TokenIssuer

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens TokenIssuer, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// RegisterUser hashes the password and stores a new account.
//
// Returns the persisted user or:
//   - ErrEmailAlreadyExists if the email is taken. Uniqueness is decided by
//     the store, so concurrent registrations with one email yield exactly
//     one success.
//   - A wrapped error for any other failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	digest, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: digest,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("email", req.Email).Msg("email already registered")
		return models.User{}, fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login exchanges credentials for a bearer token.
//
// Returns:
//   - ErrUserNotFound if no user has the email.
//   - ErrIncorrectPassword if the password does not match the stored digest.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", req.Email).Msg("login for unknown email")
		return models.Token{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Debug().Int64("id", user.UserID).Msg("wrong password")
		return models.Token{}, ErrIncorrectPassword
	}

	token, err := a.tokens.Issue(user)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("token issuing failed")
		return models.Token{}, err
	}

	return token, nil
}

// Resolve maps a bearer token to the user it was issued for. Every token
// that does not identify an existing user yields ErrInvalidToken.
func (a *authService) Resolve(ctx context.Context, token string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	subject, err := a.tokens.Subject(token)
	if err != nil {
		log.Debug().Err(err).Msg("token subject extraction failed")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, subject)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Msg("token subject does not match any user")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if err != nil {
		log.Err(err).Msg("user search by token subject failed")
		return models.Principal{}, fmt.Errorf("user search by token subject failed: %w", err)
	}

	return user.Principal(), nil
}
