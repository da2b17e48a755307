// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-post-board/internal/metrics"
	"github.com/MKhiriev/go-post-board/models"
)

// AuthMetricsService records the outcome of every auth operation in
// metrics.AuthAttemptsTotal.
type AuthMetricsService struct {
	inner AuthService
}

func NewAuthMetricsService() AuthServiceWrapper {
	return &AuthMetricsService{}
}

func (m *AuthMetricsService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	user, err := m.inner.RegisterUser(ctx, req)
	metrics.AuthAttemptsTotal.WithLabelValues("register", outcome(err)).Inc()
	if err == nil {
		metrics.UsersCreatedTotal.Inc()
	}
	return user, err
}

func (m *AuthMetricsService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	token, err := m.inner.Login(ctx, req)
	metrics.AuthAttemptsTotal.WithLabelValues("login", outcome(err)).Inc()
	return token, err
}

func (m *AuthMetricsService) Resolve(ctx context.Context, token string) (models.Principal, error) {
	principal, err := m.inner.Resolve(ctx, token)
	metrics.AuthAttemptsTotal.WithLabelValues("resolve", outcome(err)).Inc()
	return principal, err
}

func (m *AuthMetricsService) Wrap(inner AuthService) AuthService {
	m.inner = inner
	return m
}

// PostMetricsService counts created posts.
type PostMetricsService struct {
	inner PostService
}

func NewPostMetricsService() PostServiceWrapper {
	return &PostMetricsService{}
}

func (m *PostMetricsService) CreatePost(ctx context.Context, principal models.Principal, req models.CreatePostRequest) (models.Post, error) {
	post, err := m.inner.CreatePost(ctx, principal, req)
	if err == nil {
		metrics.PostsCreatedTotal.Inc()
	}
	return post, err
}

func (m *PostMetricsService) ListPosts(ctx context.Context, principal models.Principal) ([]models.Post, error) {
	return m.inner.ListPosts(ctx, principal)
}

func (m *PostMetricsService) Wrap(inner PostService) PostService {
	m.inner = inner
	return m
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrInvalidDataProvided):
		return metrics.OutcomeInvalidData
	case errors.Is(err, ErrUserNotFound):
		return metrics.OutcomeUserNotFound
	case errors.Is(err, ErrIncorrectPassword):
		return metrics.OutcomeIncorrectPassword
	case errors.Is(err, ErrInvalidToken):
		return metrics.OutcomeInvalidToken
	case errors.Is(err, ErrEmailAlreadyExists):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeError
	}
}
