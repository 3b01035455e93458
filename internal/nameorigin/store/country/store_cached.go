package country

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/metrics"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
)

// DefaultCacheSize covers every ISO 3166-1 code.
const DefaultCacheSize = 256

const lruStoreLabel = "country_lru"

// CachedStore is a read-through LRU in front of another Store. Country data
// is immutable on the request path, so entries only leave the cache on
// Update, Delete or capacity eviction. Misses are not cached.
type CachedStore struct {
	next    Store
	cache   *lru.Cache[string, *models.Country]
	metrics *metrics.Metrics
}

type CachedOption func(*CachedStore)

func WithMetrics(m *metrics.Metrics) CachedOption {
	return func(s *CachedStore) {
		s.metrics = m
	}
}

// NewCachedStore wraps next with an LRU of the given size (DefaultCacheSize
// when size <= 0).
func NewCachedStore(next Store, size int, opts ...CachedOption) (*CachedStore, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *models.Country](size)
	if err != nil {
		return nil, fmt.Errorf("create country cache: %w", err)
	}
	s := &CachedStore{next: next, cache: cache}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *CachedStore) FindByCode(ctx context.Context, code string) (*models.Country, error) {
	if c, ok := s.cache.Get(code); ok {
		s.metrics.IncrementLookup(lruStoreLabel, true)
		return c.Clone(), nil
	}
	s.metrics.IncrementLookup(lruStoreLabel, false)

	c, err := s.next.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	s.cache.Add(code, c.Clone())
	return c, nil
}

// Add does not populate the cache: the write may belong to a transaction
// that is later rolled back.
func (s *CachedStore) Add(ctx context.Context, c *models.Country) (*models.Country, error) {
	return s.next.Add(ctx, c)
}

func (s *CachedStore) Update(ctx context.Context, code string, c *models.Country) (*models.Country, error) {
	s.cache.Remove(code)
	return s.next.Update(ctx, code, c)
}

func (s *CachedStore) Delete(ctx context.Context, code string) error {
	s.cache.Remove(code)
	return s.next.Delete(ctx, code)
}

func (s *CachedStore) List(ctx context.Context) ([]*models.Country, error) {
	return s.next.List(ctx)
}

// Len reports the number of cached countries.
func (s *CachedStore) Len() int {
	return s.cache.Len()
}
