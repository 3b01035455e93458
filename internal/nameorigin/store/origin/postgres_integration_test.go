//go:build integration

package origin

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/store/country"
	"github.com/abstract-333/name-origin-api/pkg/platform/sentinel"
	"github.com/abstract-333/name-origin-api/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg        *containers.PostgresContainer
	store     *PostgresStore
	countries *country.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = NewPostgresStore(s.pg.DB)
	s.countries = country.NewPostgresStore(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.pg.Truncate(s.T())
	for _, code := range []string{"PT", "BR"} {
		_, err := s.countries.Add(context.Background(), testCountry(s.T(), code))
		s.Require().NoError(err)
	}
}

func (s *PostgresStoreSuite) TestAddAndFindByName() {
	ctx := context.Background()
	s.Require().NoError(s.store.Add(ctx, testOrigin(s.T(), "Maria", "PT", 0.3)))
	s.Require().NoError(s.store.Add(ctx, testOrigin(s.T(), "Maria", "BR", 0.6)))

	got, err := s.store.FindByName(ctx, models.MustName("Maria"))
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("BR", got[0].CountryCode)
	s.Equal(0.6, got[0].Probability.Float64())
	s.Equal("BR", got[0].Country.CommonName)
	s.Equal(fixedNow, got[0].LastAccessedAt)

	empty, err := s.store.FindByName(ctx, models.MustName("Nobody"))
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *PostgresStoreSuite) TestFindTopByCountryLimit() {
	ctx := context.Background()
	for i, p := range []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6} {
		s.Require().NoError(s.store.Add(ctx, testOrigin(s.T(), string(rune('A'+i)), "PT", p)))
	}

	got, err := s.store.FindTopByCountry(ctx, "PT", 5)
	s.Require().NoError(err)
	s.Require().Len(got, 5)
	s.Equal("F", got[0].Name.String())
	s.Equal("B", got[4].Name.String())
}

func (s *PostgresStoreSuite) TestAddUnknownCountry() {
	o := testOrigin(s.T(), "Hans", "DE", 0.7)
	err := s.store.Add(context.Background(), o)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestTouch() {
	ctx := context.Background()
	o := testOrigin(s.T(), "Maria", "PT", 0.3)
	s.Require().NoError(s.store.Add(ctx, o))

	later := fixedNow.Add(time.Hour)
	s.Require().NoError(s.store.Touch(ctx, []uuid.UUID{o.ID}, later))

	got, err := s.store.FindByName(ctx, models.MustName("Maria"))
	s.Require().NoError(err)
	s.Equal(later, got[0].LastAccessedAt)
}
