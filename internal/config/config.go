// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Token modes supported by the authentication service.
const (
	// TokenModeEmail issues the user's email as the bearer token.
	TokenModeEmail = "email"

	// TokenModeJWT issues an HS256-signed JWT with an expiry.
	TokenModeJWT = "jwt"
)

// StructuredConfig is the top-level configuration container for the
// go-post-board application.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds authentication and application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by the command-line client to reach the
	// server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvFilePath is the optional path to a .env file whose variables are
	// exported before environment variables are parsed. Defaults to ".env".
	// Env: ENV_FILE
	DotEnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values that control password
// hashing, token issuance and versioning.
type App struct {
	// PasswordHashAlgorithm selects the scheme for new password digests:
	// "argon2id" or "bcrypt".
	// Env: APP_PASSWORD_HASH_ALGORITHM
	PasswordHashAlgorithm string `env:"PASSWORD_HASH_ALGORITHM"`

	// TokenMode selects the bearer credential format: "email" or "jwt".
	// Env: APP_TOKEN_MODE
	TokenMode string `env:"TOKEN_MODE"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Required in "jwt" mode.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT remains valid (e.g. "1h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogLevel is the minimal zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend by its form: "postgres://..." opens PostgreSQL
	// through pgx, anything else is treated as a SQLite database path
	// (":memory:" for an in-memory database).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the connection pool. Each in-flight request holds
	// one connection.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC server ("host:port").
	// Empty disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the outbound client transport.
type Adapter struct {
	// HTTPAddress is the base address of the server the client talks to.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token sent with authenticated requests.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashAlgorithm: "argon2id",
			TokenMode:             TokenModeEmail,
			TokenIssuer:           "go-post-board",
			TokenDuration:         time.Hour,
			LogLevel:              "debug",
		},
		Storage: Storage{
			DB: DB{
				DSN:          "post-board.db",
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		DotEnvFilePath: ".env",
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Defaults
//  1. Environment variables (after exporting the .env file, if any)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
