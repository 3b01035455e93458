// Package service implements the read-through name-origin pipeline.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/metrics"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/providers"
	"github.com/abstract-333/name-origin-api/pkg/platform/sentinel"
	"github.com/abstract-333/name-origin-api/pkg/requestcontext"
)

// PopularNamesLimit caps GetFrequentNamesForCountry.
const PopularNamesLimit = 5

const tracerName = "github.com/abstract-333/name-origin-api/internal/nameorigin/service"

// Lookup labels for metrics.
const (
	storeNames     = "names"
	storeCountries = "countries"
)

type OriginStore interface {
	FindByName(ctx context.Context, name models.Name) ([]*models.NameOrigin, error)
	FindTopByCountry(ctx context.Context, code string, limit int) ([]*models.NameOrigin, error)
	Add(ctx context.Context, origin *models.NameOrigin) error
	Touch(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

type CountryStore interface {
	FindByCode(ctx context.Context, code string) (*models.Country, error)
	Add(ctx context.Context, c *models.Country) (*models.Country, error)
	List(ctx context.Context) ([]*models.Country, error)
}

// UnitOfWork commits everything fn writes through ctx, or nothing.
type UnitOfWork interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service resolves names to countries, using the local stores first and the
// providers on a miss. Every store interaction runs in its own unit of work,
// so rows written before a failure stay committed.
type Service struct {
	origins         OriginStore
	countries       CountryStore
	tx              UnitOfWork
	nameProvider    providers.NameOriginProvider
	countryProvider providers.CountryProvider
	logger          *slog.Logger
	metrics         *metrics.Metrics
	tracer          trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer overrides the tracer taken from the global otel provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(
	origins OriginStore,
	countries CountryStore,
	tx UnitOfWork,
	nameProvider providers.NameOriginProvider,
	countryProvider providers.CountryProvider,
	opts ...Option,
) *Service {
	s := &Service{
		origins:         origins,
		countries:       countries,
		tx:              tx,
		nameProvider:    nameProvider,
		countryProvider: countryProvider,
		logger:          slog.Default(),
		tracer:          otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetNameOrigins returns every known origin of name, ordered by probability
// descending.
//
// Stored rows are authoritative: when any exist the providers are not
// consulted. Otherwise each provider candidate is resolved and persisted in
// provider order; an unknown country aborts the call with
// CountryNotFoundError, leaving earlier candidates persisted.
func (s *Service) GetNameOrigins(ctx context.Context, name models.Name) (_ []*models.NameOrigin, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "nameorigin.GetNameOrigins", trace.WithAttributes(attribute.String("name", name.String())))
	defer func() {
		s.finish(span, "get_name_origins", start, err)
	}()

	var stored []*models.NameOrigin
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var findErr error
		stored, findErr = s.origins.FindByName(ctx, name)
		return findErr
	})
	if err != nil {
		return nil, fmt.Errorf("find origins for %q: %w", name.String(), err)
	}
	s.metrics.IncrementLookup(storeNames, len(stored) > 0)
	if len(stored) > 0 {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		s.logger.DebugContext(ctx, "name origins served from store",
			"name", name.String(),
			"count", len(stored),
		)
		s.touch(ctx, stored)
		return stored, nil
	}
	span.SetAttributes(attribute.Bool("cache_hit", false))

	candidates, err := s.resolveCandidates(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, &models.NameNotFoundError{Name: name.String()}
	}

	now := requestcontext.Now(ctx)
	resolved := make(map[string]*models.Country, len(candidates))
	out := make([]*models.NameOrigin, 0, len(candidates))
	for _, candidate := range candidates {
		country, ok := resolved[candidate.CountryCode]
		if !ok {
			country, err = s.resolveCountry(ctx, candidate.CountryCode)
			if err != nil {
				return nil, err
			}
			resolved[candidate.CountryCode] = country
		}

		origin, err := candidate.Resolve(country, now)
		if err != nil {
			return nil, err
		}
		if err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			return s.origins.Add(ctx, origin)
		}); err != nil {
			return nil, fmt.Errorf("store origin %q/%s: %w", name.String(), candidate.CountryCode, err)
		}
		s.metrics.IncrementOriginsPersisted()
		out = append(out, origin)
	}

	s.logger.InfoContext(ctx, "name origins fetched from provider",
		"name", name.String(),
		"count", len(out),
	)
	models.SortByProbability(out)
	return out, nil
}

// GetFrequentNamesForCountry returns up to PopularNamesLimit stored origins
// for a country, most probable first. It never calls a provider; an empty
// result is not an error.
func (s *Service) GetFrequentNamesForCountry(ctx context.Context, countryCode string) (_ []*models.NameOrigin, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "nameorigin.GetFrequentNamesForCountry")
	defer func() {
		s.finish(span, "get_frequent_names", start, err)
	}()

	code, err := models.NormalizeCountryCode(countryCode)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("country_code", code))

	var top []*models.NameOrigin
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var findErr error
		top, findErr = s.origins.FindTopByCountry(ctx, code, PopularNamesLimit)
		return findErr
	})
	if err != nil {
		return nil, fmt.Errorf("find popular names for %s: %w", code, err)
	}
	return top, nil
}

// SyncResult summarizes a SyncCountries run.
type SyncResult struct {
	Fetched int
	Added   int
	Skipped int
}

// SyncCountries imports every provider country not yet stored, in a single
// unit of work.
func (s *Service) SyncCountries(ctx context.Context) (_ SyncResult, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "nameorigin.SyncCountries")
	defer func() {
		s.finish(span, "sync_countries", start, err)
	}()

	providerStart := time.Now()
	fetched, err := s.countryProvider.ListAll(ctx)
	s.observeProvider("countries", providerStart, len(fetched), err)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list provider countries: %w", err)
	}

	result := SyncResult{Fetched: len(fetched)}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.countries.List(ctx)
		if err != nil {
			return err
		}
		known := make(map[string]struct{}, len(existing))
		for _, c := range existing {
			known[c.Code] = struct{}{}
		}
		for _, c := range fetched {
			if _, ok := known[c.Code]; ok {
				result.Skipped++
				continue
			}
			if _, err := s.countries.Add(ctx, c); err != nil {
				return fmt.Errorf("add country %s: %w", c.Code, err)
			}
			known[c.Code] = struct{}{}
			result.Added++
		}
		return nil
	})
	if err != nil {
		return SyncResult{}, fmt.Errorf("import countries: %w", err)
	}
	s.metrics.AddCountriesPersisted(result.Added)
	s.logger.InfoContext(ctx, "countries imported",
		"fetched", result.Fetched,
		"added", result.Added,
		"skipped", result.Skipped,
	)
	return result, nil
}

func (s *Service) resolveCandidates(ctx context.Context, name models.Name) ([]models.Candidate, error) {
	start := time.Now()
	candidates, err := s.nameProvider.Resolve(ctx, name)
	s.observeProvider("names", start, len(candidates), err)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", name.String(), err)
	}
	return candidates, nil
}

// resolveCountry reads code from the store, falling back to the provider and
// persisting what it returns.
func (s *Service) resolveCountry(ctx context.Context, code string) (*models.Country, error) {
	country, err := s.findCountry(ctx, code)
	if err == nil {
		s.metrics.IncrementLookup(storeCountries, true)
		return country, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, fmt.Errorf("find country %s: %w", code, err)
	}
	s.metrics.IncrementLookup(storeCountries, false)

	start := time.Now()
	country, err = s.countryProvider.ResolveByCode(ctx, code)
	found := 1
	if errors.Is(err, sentinel.ErrNotFound) {
		found = 0
	}
	s.observeProvider("countries", start, found, ignoreNotFound(err))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, &models.CountryNotFoundError{Code: code}
		}
		return nil, fmt.Errorf("resolve country %s: %w", code, err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, addErr := s.countries.Add(ctx, country)
		return addErr
	})
	switch {
	case err == nil:
		s.metrics.AddCountriesPersisted(1)
		s.logger.InfoContext(ctx, "country fetched from provider", "country_code", code)
		return country, nil
	case errors.Is(err, sentinel.ErrConflict):
		// Stored concurrently by another request since the lookup above.
		return s.findCountry(ctx, code)
	default:
		return nil, fmt.Errorf("store country %s: %w", code, err)
	}
}

func (s *Service) findCountry(ctx context.Context, code string) (*models.Country, error) {
	var country *models.Country
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var findErr error
		country, findErr = s.countries.FindByCode(ctx, code)
		return findErr
	})
	return country, err
}

// touch stamps last-accessed on a store hit. Failures are logged only.
func (s *Service) touch(ctx context.Context, origins []*models.NameOrigin) {
	ids := make([]uuid.UUID, len(origins))
	for i, o := range origins {
		ids[i] = o.ID
	}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.origins.Touch(ctx, ids, requestcontext.Now(ctx))
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to update last accessed", "error", err)
	}
}

func (s *Service) observeProvider(provider string, start time.Time, n int, err error) {
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case n == 0:
		outcome = "empty"
	}
	s.metrics.ObserveProvider(provider, outcome, time.Since(start))
}

func (s *Service) finish(span trace.Span, operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.metrics.ObserveOperation(operation, outcome, time.Since(start))
	span.End()
}

func ignoreNotFound(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil
	}
	return err
}
