package service

import (
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/crypto"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/validators"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. Each service is decorated
// with request validation (inner) and metrics (outer).
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.PasswordHashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	tokens, err := NewTokenIssuer(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating token issuer: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewRequestValidator()

	var auth AuthService = NewAuthService(storages.UserRepository, hasher, tokens, logger)
	auth = NewAuthValidationService(validator).Wrap(auth)
	auth = NewAuthMetricsService().Wrap(auth)

	var posts PostService = NewPostService(storages.PostRepository, logger)
	posts = NewPostValidationService(validator).Wrap(posts)
	posts = NewPostMetricsService().Wrap(posts)

	return &Services{
		AuthService:    auth,
		PostService:    posts,
		AppInfoService: appInfo,
	}, nil
}
