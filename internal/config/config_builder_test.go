package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_PropagatesBuilderError verifies that an error recorded during an
// earlier builder step aborts build.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

// TestBuild_MergesMultipleConfigs verifies that earlier configs win over
// later ones during the mergo merge.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{App: App{EncryptionSecret: "from-env"}},
		&Config{
			App:     App{EncryptionSecret: "from-flags", Version: "1.0.0"},
			Storage: Storage{DB: DB{DSN: "/tmp/accounts.db"}},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.EncryptionSecret)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "/tmp/accounts.db", cfg.Storage.DB.DSN)
}

// TestBuild_ValidatesMergedConfig verifies that build rejects a merged
// configuration with no database path.
func TestBuild_ValidatesMergedConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{App: App{EncryptionSecret: "s"}})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_RejectsInMemoryDSN verifies that the in-memory SQLite DSN is not
// accepted, since tree/grid state must survive process restarts.
func TestBuild_RejectsInMemoryDSN(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{
		App:     App{EncryptionSecret: "s"},
		Storage: Storage{DB: DB{DSN: ":memory:"}},
	})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_RejectsMissingSecret verifies that a configuration without the
// encryption secret is rejected.
func TestBuild_RejectsMissingSecret(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{
		Storage: Storage{DB: DB{DSN: "/tmp/accounts.db"}},
	})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestWithEnv_ReadsEnvVars verifies that withEnv appends a config populated
// from the environment.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("STORAGE_DB_DSN", "/data/test.db")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/data/test.db", b.configs[0].Storage.DB.DSN)
}
