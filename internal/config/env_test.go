// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_ENCRYPTION_SECRET": "cipher_secret",
		"APP_LOG_PATH":          "/var/log/accountmgr.log",
		"APP_VERSION":           "1.2.3",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/var/data/accounts.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "cipher_secret", cfg.App.EncryptionSecret)
	assert.Equal(t, "/var/log/accountmgr.log", cfg.App.LogPath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/var/data/accounts.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &Config{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}
