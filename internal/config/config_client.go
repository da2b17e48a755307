// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the stored bearer token, if any.
	Token string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// LogLevel is the minimal level of client logs.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from
// the defaults, .env file, environment and JSON file. Command-line flags are
// not consulted: the client owns its own argument syntax.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
