//go:generate mockgen -source=provider.go -destination=mocks/mocks.go -package=mocks NameOriginProvider,CountryProvider

// Package providers defines the upstream sources the name-origin pipeline
// reads from and the error taxonomy their clients report.
package providers

import (
	"context"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
)

// NameOriginProvider returns country candidates for a name. An empty slice
// with a nil error means the provider knows nothing about the name.
type NameOriginProvider interface {
	Resolve(ctx context.Context, name models.Name) ([]models.Candidate, error)
}

// CountryProvider returns reference data for countries. ResolveByCode
// returns sentinel.ErrNotFound when the code is unknown upstream.
type CountryProvider interface {
	ResolveByCode(ctx context.Context, code string) (*models.Country, error)
	ListAll(ctx context.Context) ([]*models.Country, error)
}
