// Package country persists country reference data.
//
// All implementations return sentinel.ErrNotFound for unknown codes and
// sentinel.ErrConflict when adding a code that already exists.
package country

import (
	"context"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
)

// Store is the surface shared by the Postgres, in-memory and cached stores.
type Store interface {
	FindByCode(ctx context.Context, code string) (*models.Country, error)
	Add(ctx context.Context, c *models.Country) (*models.Country, error)
	Update(ctx context.Context, code string, c *models.Country) (*models.Country, error)
	Delete(ctx context.Context, code string) error
	List(ctx context.Context) ([]*models.Country, error)
}
