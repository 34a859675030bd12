// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_USER_ID":   "42",
		"APP_TOKEN":     "header.payload.signature",
		"APP_VERSION":   "1.2.3",
		"APP_LOG_LEVEL": "debug",
		"APP_LOG_FILE":  "/tmp/qr.log",

		"ADAPTER_ADDRESS":         "http://localhost:8000",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"RENDER_WIDTH":          "256",
		"RENDER_HEIGHT":         "256",
		"RENDER_RECOVERY_LEVEL": "high",
		"RENDER_TIMEOUT":        "3s",

		"PREVIEW_ADDRESS":         "localhost:9000",
		"PREVIEW_REQUEST_TIMEOUT": "10s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, int64(42), cfg.App.UserID)
	assert.Equal(t, "header.payload.signature", cfg.App.Token)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/qr.log", cfg.App.LogFile)

	assert.Equal(t, "http://localhost:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 256, cfg.Render.Width)
	assert.Equal(t, 256, cfg.Render.Height)
	assert.Equal(t, "high", cfg.Render.RecoveryLevel)
	assert.Equal(t, 3*time.Second, cfg.Render.Timeout)

	assert.Equal(t, "localhost:9000", cfg.Preview.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Preview.RequestTimeout)
}

func TestParseEnv_InvalidUserID(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_USER_ID": "not-a-number"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	// Arrange
	unsetAfter(t, "APP_USER_ID", "ADAPTER_ADDRESS")
	dir := t.TempDir()
	content := "APP_USER_ID=7\nADAPTER_ADDRESS=localhost:8000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, dotEnvFile), []byte(content), 0o600))
	t.Chdir(dir)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.App.UserID)
	assert.Equal(t, "localhost:8000", cfg.Adapter.HTTPAddress)
}

func TestParseEnv_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_USER_ID": "99"})
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, dotEnvFile), []byte("APP_USER_ID=7\n"), 0o600))
	t.Chdir(dir)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, int64(99), cfg.App.UserID)
}

func TestParseEnv_NoDotEnvFile(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, parseEnv(&StructuredConfig{}))
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// unsetAfter clears keys for the test and restores their previous values
// afterwards, so variables loaded from a .env file do not leak.
func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
