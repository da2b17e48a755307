package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDotEnv(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadDotEnv_ExportsVariables(t *testing.T) {
	unsetEnv(t, "APP_TOKEN_ISSUER")
	p := writeDotEnv(t, "APP_TOKEN_ISSUER=dotenv-issuer\n")

	require.NoError(t, loadDotEnv(p, true))
	assert.Equal(t, "dotenv-issuer", os.Getenv("APP_TOKEN_ISSUER"))
}

func TestLoadDotEnv_ExistingVariableWins(t *testing.T) {
	t.Setenv("APP_TOKEN_ISSUER", "from-env")
	p := writeDotEnv(t, "APP_TOKEN_ISSUER=dotenv-issuer\n")

	require.NoError(t, loadDotEnv(p, true))
	assert.Equal(t, "from-env", os.Getenv("APP_TOKEN_ISSUER"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")

	assert.NoError(t, loadDotEnv(missing, false), "missing default file is ignored")
	assert.Error(t, loadDotEnv(missing, true), "missing explicit file is reported")
	assert.NoError(t, loadDotEnv("", true))
}

func TestDotEnvPath(t *testing.T) {
	t.Run("env variable wins", func(t *testing.T) {
		t.Setenv("ENV_FILE", "/from/env")
		path, explicit := dotEnvPath([]*StructuredConfig{{DotEnvFilePath: ".env"}})
		assert.Equal(t, "/from/env", path)
		assert.True(t, explicit)
	})

	t.Run("last configured path", func(t *testing.T) {
		unsetEnv(t, "ENV_FILE")
		path, explicit := dotEnvPath([]*StructuredConfig{
			{DotEnvFilePath: ".env"},
			{},
			{DotEnvFilePath: "custom.env"},
		})
		assert.Equal(t, "custom.env", path)
		assert.False(t, explicit)
	})
}

func TestWithDotEnv_FeedsWithEnv(t *testing.T) {
	unsetEnv(t, "APP_VERSION")
	p := writeDotEnv(t, "APP_VERSION=9.9.9\n")
	t.Setenv("ENV_FILE", p)

	b := newConfigBuilder().withDefaults().withDotEnv().withEnv()

	require.NoError(t, b.err)
	cfg, err := b.merge()
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", cfg.App.Version)
}
