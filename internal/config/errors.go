package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an empty DSN or a non-positive
	// connection pool size.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates that no server address is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAppConfigs indicates an unknown token mode or hash
	// algorithm, or incomplete JWT settings in "jwt" mode.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidAdapterConfigs indicates missing client adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
