// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// Config is the top-level configuration container for the go-account-mgr
// application. It is populated by merging values from environment variables
// and command-line flags; environment variables take precedence.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the password encryption
	// secret and the application version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite database.
	Storage Storage `envPrefix:"STORAGE_"`
}

// App holds application-level configuration values.
type App struct {
	// EncryptionSecret is the secret the password cipher derives its key
	// from. Must be kept confidential.
	// Env: APP_ENCRYPTION_SECRET
	EncryptionSecret string `env:"ENCRYPTION_SECRET"`

	// LogPath is the path of the log file. When empty, logs are written to
	// a "logs" file next to the executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the path of the SQLite database file.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
func (cfg *Config) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.EncryptionSecret == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// GetConfig assembles the application configuration from environment
// variables and command-line flags (env wins on conflict) and validates the
// merged result.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		build()
}
