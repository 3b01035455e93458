package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abstract-333/name-origin-api/internal/mediator"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/service"
	"github.com/abstract-333/name-origin-api/internal/platform/config"
)

func memoryConfig() *config.Config {
	cfg := config.Defaults
	cfg.StoreBackend = config.BackendMemory
	cfg.DatabaseURL = ""
	return &cfg
}

func TestBuildMemoryBackend(t *testing.T) {
	a, err := Build(context.Background(), memoryConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, a.Close()) })

	assert.Nil(t, a.DB)
	assert.True(t, mediator.Registered[service.GetNameOriginsCommand](a.Mediator))
	assert.True(t, mediator.Registered[service.GetFrequentNamesCommand](a.Mediator))
	assert.True(t, mediator.Registered[service.SyncCountriesCommand](a.Mediator))

	// The memory stores start empty, so no provider is contacted.
	origins, err := mediator.Send[[]*models.NameOrigin](context.Background(), a.Mediator, service.GetFrequentNamesCommand{CountryCode: "pt"})
	require.NoError(t, err)
	assert.Empty(t, origins)

	families, err := a.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestBuildRejectsUnknownBackend(t *testing.T) {
	cfg := memoryConfig()
	cfg.StoreBackend = "bolt"

	_, err := Build(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}
