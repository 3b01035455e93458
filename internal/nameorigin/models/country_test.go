package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func portugal() models.Country {
	independent := true
	return models.Country{
		Code:          "pt",
		CommonName:    "Portugal",
		OfficialName:  "Portuguese Republic",
		Region:        "Europe",
		SubRegion:     "Southern Europe",
		Independent:   &independent,
		Capitals:      []string{"Lisbon"},
		CapitalLatLng: &models.LatLng{Lat: 38.72, Lng: -9.13},
		FlagPNG:       "https://flagcdn.com/w320/pt.png",
		FlagSVG:       "https://flagcdn.com/pt.svg",
		Borders:       []string{"esp", "ESP"},
	}
}

func TestNewCountry(t *testing.T) {
	t.Run("normalizes code, sets and timestamps", func(t *testing.T) {
		c, err := models.NewCountry(portugal(), fixedNow)
		require.NoError(t, err)
		assert.Equal(t, "PT", c.Code)
		assert.Equal(t, []string{"ESP"}, c.Borders)
		assert.Equal(t, fixedNow, c.CreatedAt)
		assert.Equal(t, fixedNow, c.UpdatedAt)
	})

	t.Run("rejects bad codes", func(t *testing.T) {
		for _, code := range []string{"", "P", "PRT", "P1"} {
			in := portugal()
			in.Code = code
			_, err := models.NewCountry(in, fixedNow)
			assert.ErrorIs(t, err, models.ErrInvalidCountryCode, code)
		}
	})

	t.Run("requires flags", func(t *testing.T) {
		in := portugal()
		in.FlagSVG = ""
		_, err := models.NewCountry(in, fixedNow)
		assert.ErrorIs(t, err, models.ErrIncompleteCountry)
	})

	t.Run("empty borders means island", func(t *testing.T) {
		in := portugal()
		in.Borders = nil
		c, err := models.NewCountry(in, fixedNow)
		require.NoError(t, err)
		assert.True(t, c.IsIsland())
		assert.Equal(t, "island", c.BordersString())
		assert.NotNil(t, c.Borders)
	})
}

func TestCountryEqualityIsByCode(t *testing.T) {
	a, _ := models.NewCountry(portugal(), fixedNow)
	other := portugal()
	other.CommonName = "Portugal (renamed)"
	b, _ := models.NewCountry(other, fixedNow.Add(time.Hour))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

func TestCountryPresentation(t *testing.T) {
	c, err := models.NewCountry(portugal(), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "PT,Portugal,Portuguese Republic", c.DisplayName())
	assert.Equal(t, "Europe,Southern Europe", c.RegionFull())
	assert.Equal(t, "Lisbon", c.CapitalName())
	assert.Equal(t, "38.72,-9.13", c.CapitalCoordinates())

	c.CapitalLatLng = nil
	assert.Equal(t, "", c.CapitalCoordinates())
}
