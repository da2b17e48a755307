package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned when the Authorization header is
// not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the identity the token is issued for
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	signed, err := utils.GenerateJWTToken("go-post-board", "alice@example.com", time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and returns
// its subject.
//
// Validation includes:
//   - Signature verification with HS256 and the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Presence and validity of the expiration (exp) claim
//   - Presence of a non-empty subject (sub) claim
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return "", errors.New("empty subject error")
	}

	return subject, nil
}

// ParseBearerToken extracts the credential from an "Authorization" header
// value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
