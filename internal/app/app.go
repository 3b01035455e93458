// Package app wires stores, providers, the service and the mediator from a
// loaded configuration. Both binaries share it.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/abstract-333/name-origin-api/internal/mediator"
	nameoriginmetrics "github.com/abstract-333/name-origin-api/internal/nameorigin/metrics"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/providers/nationalize"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/providers/restcountries"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/service"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/store/country"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/store/origin"
	"github.com/abstract-333/name-origin-api/internal/platform/config"
	"github.com/abstract-333/name-origin-api/internal/platform/metrics"
	"github.com/abstract-333/name-origin-api/internal/platform/postgres"
	"github.com/abstract-333/name-origin-api/pkg/platform/tx"
)

// App is the assembled dependency graph.
type App struct {
	Mediator    *mediator.Mediator
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.Metrics
	// DB is nil for the memory backend.
	DB *sql.DB
}

// Build assembles the application. Callers must Close the result.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	domainMetrics := nameoriginmetrics.New(reg)

	a := &App{
		Registry:    reg,
		HTTPMetrics: metrics.New(reg),
	}

	var (
		origins   service.OriginStore
		countries country.Store
		uow       service.UnitOfWork
	)
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		if cfg.MigrateOnStart {
			if err := postgres.Migrate(cfg.DatabaseURL, logger); err != nil {
				return nil, err
			}
		}
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.DB = db
		origins = origin.NewPostgresStore(db)
		countries = country.NewPostgresStore(db)
		uow = tx.NewPostgres(db, tx.DefaultTimeout)
	case config.BackendMemory:
		origins = origin.NewInMemoryStore()
		countries = country.NewInMemoryStore()
		uow = tx.Noop{}
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	if cfg.CountryCacheSize > 0 {
		cached, err := country.NewCachedStore(countries, cfg.CountryCacheSize, country.WithMetrics(domainMetrics))
		if err != nil {
			return nil, errors.Join(fmt.Errorf("country cache: %w", err), a.Close())
		}
		countries = cached
	}

	svc := service.New(
		origins,
		countries,
		uow,
		nationalize.New(cfg.NationalizeURL, cfg.ProviderTimeout),
		restcountries.New(cfg.RestCountriesURL, cfg.ProviderTimeout),
		service.WithLogger(logger),
		service.WithMetrics(domainMetrics),
	)

	m, err := mediator.New(svc.Registrations()...)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("register commands: %w", err), a.Close())
	}
	a.Mediator = m

	logger.InfoContext(ctx, "application assembled",
		"store_backend", cfg.StoreBackend,
		"country_cache_size", cfg.CountryCacheSize,
	)
	return a, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	if err := a.DB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
