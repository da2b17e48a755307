// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

var (
	supportedTokenModes        = []string{TokenModeEmail, TokenModeJWT}
	supportedPasswordHashAlgos = []string{"argon2id", "bcrypt"}
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxOpenConns < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if !slices.Contains(supportedTokenModes, cfg.App.TokenMode) {
		return fmt.Errorf("%w: unknown token mode %q", ErrInvalidAppConfigs, cfg.App.TokenMode)
	}

	if !slices.Contains(supportedPasswordHashAlgos, cfg.App.PasswordHashAlgorithm) {
		return fmt.Errorf("%w: unknown password hash algorithm %q", ErrInvalidAppConfigs, cfg.App.PasswordHashAlgorithm)
	}

	if cfg.App.TokenMode == TokenModeJWT &&
		(cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0) {
		return fmt.Errorf("%w: jwt mode requires sign key, issuer and duration", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
