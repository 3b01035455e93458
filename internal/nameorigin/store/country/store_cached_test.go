package country

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/metrics"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
	"github.com/abstract-333/name-origin-api/pkg/platform/sentinel"
)

// countingStore counts FindByCode calls that reach the backing store.
type countingStore struct {
	*InMemoryStore
	finds atomic.Int32
}

func (s *countingStore) FindByCode(ctx context.Context, code string) (*models.Country, error) {
	s.finds.Add(1)
	return s.InMemoryStore.FindByCode(ctx, code)
}

type CachedStoreSuite struct {
	suite.Suite
	backing *countingStore
	cached  *CachedStore
	metrics *metrics.Metrics
}

func TestCachedStoreSuite(t *testing.T) {
	suite.Run(t, new(CachedStoreSuite))
}

func (s *CachedStoreSuite) SetupTest() {
	s.backing = &countingStore{InMemoryStore: NewInMemoryStore()}
	s.metrics = metrics.New(prometheus.NewRegistry())
	cached, err := NewCachedStore(s.backing, 2, WithMetrics(s.metrics))
	s.Require().NoError(err)
	s.cached = cached
}

func (s *CachedStoreSuite) seed(code string) {
	_, err := s.backing.Add(context.Background(), newCountry(s.T(), code, code))
	s.Require().NoError(err)
}

func (s *CachedStoreSuite) TestReadThrough() {
	ctx := context.Background()
	s.seed("PT")

	for range 3 {
		got, err := s.cached.FindByCode(ctx, "PT")
		s.Require().NoError(err)
		s.Equal("PT", got.Code)
	}

	s.Equal(int32(1), s.backing.finds.Load())
	s.Equal(2.0, testutil.ToFloat64(s.metrics.CacheLookups.WithLabelValues(lruStoreLabel, metrics.ResultHit)))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.CacheLookups.WithLabelValues(lruStoreLabel, metrics.ResultMiss)))
}

func (s *CachedStoreSuite) TestMissesAreNotCached() {
	ctx := context.Background()

	_, err := s.cached.FindByCode(ctx, "PT")
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.seed("PT")
	got, err := s.cached.FindByCode(ctx, "PT")
	s.Require().NoError(err)
	s.Equal("PT", got.Code)
	s.Equal(int32(2), s.backing.finds.Load())
}

func (s *CachedStoreSuite) TestUpdateAndDeleteEvict() {
	ctx := context.Background()
	s.seed("PT")
	_, err := s.cached.FindByCode(ctx, "PT")
	s.Require().NoError(err)

	_, err = s.cached.Update(ctx, "PT", newCountry(s.T(), "PT", "Renamed"))
	s.Require().NoError(err)
	got, err := s.cached.FindByCode(ctx, "PT")
	s.Require().NoError(err)
	s.Equal("Renamed", got.CommonName)

	s.Require().NoError(s.cached.Delete(ctx, "PT"))
	_, err = s.cached.FindByCode(ctx, "PT")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *CachedStoreSuite) TestCapacity() {
	ctx := context.Background()
	for _, code := range []string{"PT", "BR", "DE"} {
		s.seed(code)
		_, err := s.cached.FindByCode(ctx, code)
		s.Require().NoError(err)
	}
	s.Equal(2, s.cached.Len())
}

func TestCachedStoreDefaultSize(t *testing.T) {
	cached, err := NewCachedStore(NewInMemoryStore(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cached.Len())
}
