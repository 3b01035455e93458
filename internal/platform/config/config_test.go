package config

import (
	"errors"
	"testing"
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults, *cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NAMEORIGIN_ADDR", "127.0.0.1:9090")
	t.Setenv("NAMEORIGIN_LOG_LEVEL", "debug")
	t.Setenv("NAMEORIGIN_LOG_FORMAT", "text")
	t.Setenv("NAMEORIGIN_STORE_BACKEND", "memory")
	t.Setenv("NAMEORIGIN_DATABASE_URL", "")
	t.Setenv("NAMEORIGIN_PROVIDER_TIMEOUT", "750ms")
	t.Setenv("NAMEORIGIN_COUNTRY_CACHE_SIZE", "0")
	t.Setenv("NAMEORIGIN_MIGRATE_ON_START", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.ProviderTimeout)
	assert.Equal(t, 0, cfg.CountryCacheSize)
	assert.False(t, cfg.MigrateOnStart)
}

func TestLoadValidation(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown backend":      {"NAMEORIGIN_STORE_BACKEND": "redis"},
		"bad log level":        {"NAMEORIGIN_LOG_LEVEL": "loud"},
		"postgres needs a url": {"NAMEORIGIN_DATABASE_URL": ""},
		"bad provider url":     {"NAMEORIGIN_NATIONALIZE_URL": "not a url"},
		"negative cache size":  {"NAMEORIGIN_COUNTRY_CACHE_SIZE": "-1"},
		"zero timeout":         {"NAMEORIGIN_PROVIDER_TIMEOUT": "0s"},
		"address without port": {"NAMEORIGIN_ADDR": "localhost"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.ErrorContains(t, err, "validate config")
		})
	}
}

func TestLoadLoaderErrors(t *testing.T) {
	origDefault, origEnv := defaultLoader, envLoader
	t.Cleanup(func() {
		defaultLoader, envLoader = origDefault, origEnv
	})

	defaultLoader = func(*koanf.Koanf) error { return errors.New("boom") }
	_, err := Load()
	assert.ErrorContains(t, err, "load default config")

	defaultLoader = origDefault
	envLoader = func(*koanf.Koanf) error { return errors.New("boom") }
	_, err = Load()
	assert.ErrorContains(t, err, "load env")
}
