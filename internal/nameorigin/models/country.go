package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	dErrors "github.com/abstract-333/name-origin-api/pkg/domain-errors"
	pstrings "github.com/abstract-333/name-origin-api/pkg/platform/strings"
)

var (
	ErrInvalidCountryCode = dErrors.New(dErrors.CodeValidation, "country code must be two ISO 3166-1 alpha-2 letters")
	ErrIncompleteCountry  = dErrors.New(dErrors.CodeValidation, "country is missing required fields")
)

// LatLng is a capital's coordinates. Both parts are known or neither is.
type LatLng struct {
	Lat float64
	Lng float64
}

// Country is reference data for one ISO 3166-1 alpha-2 code.
//
// Invariants:
//   - Code is two upper-case ASCII letters and is the identity
//   - CommonName, FlagPNG and FlagSVG are non-empty
//   - Capitals and Borders are sorted sets; an empty Borders means island
type Country struct {
	Code          string
	CommonName    string
	OfficialName  string
	Region        string
	SubRegion     string
	Independent   *bool
	Capitals      []string
	CapitalLatLng *LatLng
	FlagPNG       string
	FlagSVG       string
	FlagAlt       *string
	CoatOfArmsPNG *string
	CoatOfArmsSVG *string
	Borders       []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NormalizeCountryCode upper-cases and validates a country code.
func NormalizeCountryCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountryCode, code)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCountryCode, code)
		}
	}
	return code, nil
}

// NewCountry validates c and returns a normalized copy. Zero timestamps are
// set to now.
func NewCountry(c Country, now time.Time) (*Country, error) {
	code, err := NormalizeCountryCode(c.Code)
	if err != nil {
		return nil, err
	}
	c.Code = code
	if strings.TrimSpace(c.CommonName) == "" {
		return nil, fmt.Errorf("%w: %s has no common name", ErrIncompleteCountry, code)
	}
	if c.FlagPNG == "" || c.FlagSVG == "" {
		return nil, fmt.Errorf("%w: %s has no flag images", ErrIncompleteCountry, code)
	}
	c.Capitals = pstrings.SortedSet(c.Capitals)
	c.Borders = pstrings.SortedSetUpper(c.Borders)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	return &c, nil
}

// Equal compares identity only.
func (c *Country) Equal(other *Country) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Code == other.Code
}

// IsIsland reports whether the country has no land borders.
func (c *Country) IsIsland() bool { return len(c.Borders) == 0 }

// CapitalName joins all capitals, or "" when there are none.
func (c *Country) CapitalName() string { return strings.Join(c.Capitals, ", ") }

// DisplayName renders "CODE,Common,Official".
func (c *Country) DisplayName() string {
	return strings.Join([]string{c.Code, c.CommonName, c.OfficialName}, ",")
}

// RegionFull renders "Region,SubRegion".
func (c *Country) RegionFull() string {
	if c.SubRegion == "" {
		return c.Region
	}
	return c.Region + "," + c.SubRegion
}

// CapitalCoordinates renders "lat,long", or "" when unknown.
func (c *Country) CapitalCoordinates() string {
	if c.CapitalLatLng == nil {
		return ""
	}
	return strconv.FormatFloat(c.CapitalLatLng.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(c.CapitalLatLng.Lng, 'f', -1, 64)
}

// BordersString joins border codes, or returns "island".
func (c *Country) BordersString() string {
	if c.IsIsland() {
		return "island"
	}
	return strings.Join(c.Borders, ",")
}

// Clone returns a deep copy.
func (c *Country) Clone() *Country {
	if c == nil {
		return nil
	}
	out := *c
	out.Capitals = slices.Clone(c.Capitals)
	out.Borders = slices.Clone(c.Borders)
	if c.CapitalLatLng != nil {
		ll := *c.CapitalLatLng
		out.CapitalLatLng = &ll
	}
	return &out
}
