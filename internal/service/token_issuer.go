// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
)

// NewTokenIssuer returns the issuer selected by cfg.TokenMode.
func NewTokenIssuer(cfg config.App) (TokenIssuer, error) {
	switch cfg.TokenMode {
	case "", config.TokenModeEmail:
		return NewEmailTokenIssuer(), nil
	case config.TokenModeJWT:
		return NewJWTTokenIssuer(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTokenMode, cfg.TokenMode)
	}
}

// emailTokenIssuer uses the email itself as the access token. Tokens never
// expire and cannot be revoked.
type emailTokenIssuer struct{}

// NewEmailTokenIssuer returns an issuer whose tokens are the users' emails.
func NewEmailTokenIssuer() TokenIssuer {
	return emailTokenIssuer{}
}

func (emailTokenIssuer) Issue(user models.User) (models.Token, error) {
	if user.Email == "" {
		return models.Token{}, fmt.Errorf("%w: empty email", ErrTokenCreationFailed)
	}
	return models.Token{AccessToken: user.Email, TokenType: models.TokenTypeBearer}, nil
}

func (emailTokenIssuer) Subject(token string) (string, error) {
	if token == "" {
		return "", errors.New("empty token")
	}
	return token, nil
}

// jwtTokenIssuer signs HS256 JWTs whose subject is the user's email.
type jwtTokenIssuer struct {
	signKey  string
	issuer   string
	duration time.Duration
}

// NewJWTTokenIssuer returns an issuer of expiring signed tokens.
func NewJWTTokenIssuer(signKey, issuer string, duration time.Duration) (TokenIssuer, error) {
	if signKey == "" || issuer == "" || duration <= 0 {
		return nil, fmt.Errorf("%w: jwt mode requires sign key, issuer and duration", ErrTokenCreationFailed)
	}

	return &jwtTokenIssuer{signKey: signKey, issuer: issuer, duration: duration}, nil
}

func (j *jwtTokenIssuer) Issue(user models.User) (models.Token, error) {
	signed, err := utils.GenerateJWTToken(j.issuer, user.Email, j.duration, j.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Token{AccessToken: signed, TokenType: models.TokenTypeBearer}, nil
}

func (j *jwtTokenIssuer) Subject(token string) (string, error) {
	return utils.ValidateAndParseJWTToken(token, j.signKey, j.issuer)
}
