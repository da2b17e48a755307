// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvPath resolves the .env location: ENV_FILE wins over the value
// collected from earlier sources. explicit reports whether the path was
// requested by the user rather than being the default.
func dotEnvPath(configs []*StructuredConfig) (path string, explicit bool) {
	if p := os.Getenv("ENV_FILE"); p != "" {
		return p, true
	}

	for _, cfg := range configs {
		if cfg.DotEnvFilePath != "" {
			path = cfg.DotEnvFilePath
		}
	}

	return path, false
}

// loadDotEnv exports the variables of the file at path into the process
// environment. Variables that are already set keep their values. A missing
// default file is not an error; a missing explicit file is.
func loadDotEnv(path string, explicit bool) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading .env file %q: %w", path, err)
	}

	return nil
}
