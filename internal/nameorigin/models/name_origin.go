package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Candidate is one (country, probability, count) tuple returned by the
// name-origin provider, before its country is resolved.
type Candidate struct {
	Name            Name
	CountryCode     string
	Probability     Probability
	CountOfRequests CountOfRequests
}

// NameOrigin associates a name with one country.
//
// A NameOrigin is resolved once Country is attached; only resolved values are
// persisted or returned to callers. Several rows per name are expected, one
// per candidate country.
type NameOrigin struct {
	ID              uuid.UUID
	Name            Name
	CountOfRequests CountOfRequests
	Probability     Probability
	CountryCode     string
	Country         *Country
	LastAccessedAt  time.Time
	UpdatedAt       time.Time
}

// Resolved reports whether the country entity is attached.
func (n *NameOrigin) Resolved() bool {
	return n.Country != nil && n.Country.Code == n.CountryCode
}

// Resolve joins the candidate with its country and assigns a fresh
// time-ordered ID.
func (c Candidate) Resolve(country *Country, now time.Time) (*NameOrigin, error) {
	if country == nil {
		return nil, fmt.Errorf("resolve %s: country is required", c.CountryCode)
	}
	if country.Code != c.CountryCode {
		return nil, fmt.Errorf("resolve %s: got country %s", c.CountryCode, country.Code)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate name origin id: %w", err)
	}
	return &NameOrigin{
		ID:              id,
		Name:            c.Name,
		CountOfRequests: c.CountOfRequests,
		Probability:     c.Probability,
		CountryCode:     country.Code,
		Country:         country,
		LastAccessedAt:  now,
		UpdatedAt:       now,
	}, nil
}

// SortByProbability orders origins by probability descending. Equal
// probabilities keep their relative order.
func SortByProbability(origins []*NameOrigin) {
	sort.SliceStable(origins, func(i, j int) bool {
		return origins[i].Probability.Float64() > origins[j].Probability.Float64()
	})
}
