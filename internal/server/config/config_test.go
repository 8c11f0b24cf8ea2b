package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	loadDefaults(c)

	assert.Equal(t, ":8080", c.RunAddress)
	assert.Equal(t, DriverFile, c.StorageDriver)
	assert.Equal(t, "db", c.DataDir)
	assert.Equal(t, time.Hour, c.TokenValidityDuration)
	assert.False(t, c.AllowSelfRoleChange)
	assert.Equal(t, "info", c.LogLevel)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":9999")
	t.Setenv("STORAGE_DRIVER", DriverMemory)
	t.Setenv("TOKEN_VALIDITY_MINUTES", "5")
	t.Setenv("ALLOW_SELF_ROLE_CHANGE", "true")

	c := &Config{}
	loadDefaults(c)
	parseEnv(c)

	assert.Equal(t, ":9999", c.RunAddress)
	assert.Equal(t, DriverMemory, c.StorageDriver)
	assert.Equal(t, 5*time.Minute, c.TokenValidityDuration)
	assert.True(t, c.AllowSelfRoleChange)
}

func TestParseEnv_BadNumbersIgnored(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY_MINUTES", "soon")
	t.Setenv("ALLOW_SELF_ROLE_CHANGE", "maybe")

	c := &Config{}
	loadDefaults(c)
	parseEnv(c)

	assert.Equal(t, time.Hour, c.TokenValidityDuration)
	assert.False(t, c.AllowSelfRoleChange)
}

func TestParseJson_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")

	doc := map[string]any{
		"run_address":             ":7070",
		"storage_driver":          "postgres",
		"database_dsn":            "postgres://localhost/tripvault",
		"secret_key":              "json-secret",
		"token_validity_duration": "30m",
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	oldArgs := os.Args
	os.Args = []string{"server", "-c", path}
	defer func() { os.Args = oldArgs }()

	c := &Config{}
	loadDefaults(c)
	parseJson(c)

	assert.Equal(t, ":7070", c.RunAddress)
	assert.Equal(t, DriverPostgres, c.StorageDriver)
	assert.Equal(t, "postgres://localhost/tripvault", c.DatabaseDSN)
	assert.Equal(t, "json-secret", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.TokenValidityDuration)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "db", c.DataDir)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"server"}
	defer func() { os.Args = oldArgs }()

	c := &Config{}
	loadDefaults(c)
	parseJson(c)

	assert.Equal(t, ":8080", c.RunAddress)
}
