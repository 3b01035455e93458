package handler

import (
	"time"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
)

// NameOriginResponse is one name origin flattened with its country.
type NameOriginResponse struct {
	Name               string     `json:"name"`
	CountOfRequests    int        `json:"count_of_requests"`
	LastAccessed       *time.Time `json:"last_accessed"`
	Probability        float64    `json:"probability"`
	Country            string     `json:"country"`
	Region             string     `json:"region"`
	Independent        *bool      `json:"independent"`
	Capital            *string    `json:"capital"`
	CapitalCoordinates string     `json:"capital_coordinates"`
	FlagPNG            string     `json:"flag_png"`
	FlagSVG            string     `json:"flag_svg"`
	FlagAlt            *string    `json:"flag_alt"`
	CoatOfArmsPNG      *string    `json:"coat_of_arms_png"`
	CoatOfArmsSVG      *string    `json:"coat_of_arms_svg"`
	Borders            string     `json:"borders"`
}

// FromNameOrigin maps a resolved name origin to its response shape.
func FromNameOrigin(o *models.NameOrigin) NameOriginResponse {
	resp := NameOriginResponse{
		Name:            o.Name.String(),
		CountOfRequests: o.CountOfRequests.Int(),
		Probability:     o.Probability.Float64(),
	}
	if !o.LastAccessedAt.IsZero() {
		at := o.LastAccessedAt.UTC()
		resp.LastAccessed = &at
	}
	c := o.Country
	if c == nil {
		resp.Country = o.CountryCode
		return resp
	}
	resp.Country = c.DisplayName()
	resp.Region = c.RegionFull()
	resp.Independent = c.Independent
	if len(c.Capitals) > 0 {
		capital := c.CapitalName()
		resp.Capital = &capital
	}
	resp.CapitalCoordinates = c.CapitalCoordinates()
	resp.FlagPNG = c.FlagPNG
	resp.FlagSVG = c.FlagSVG
	resp.FlagAlt = c.FlagAlt
	resp.CoatOfArmsPNG = c.CoatOfArmsPNG
	resp.CoatOfArmsSVG = c.CoatOfArmsSVG
	resp.Borders = c.BordersString()
	return resp
}

// FromNameOrigins keeps the input order. A nil input yields an empty list.
func FromNameOrigins(origins []*models.NameOrigin) []NameOriginResponse {
	out := make([]NameOriginResponse, 0, len(origins))
	for _, o := range origins {
		out = append(out, FromNameOrigin(o))
	}
	return out
}
