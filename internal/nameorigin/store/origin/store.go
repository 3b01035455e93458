// Package origin persists name-origin rows joined with their country.
package origin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
)

// Store is the surface shared by the Postgres and in-memory stores.
//
// Reads return resolved origins ordered by probability descending and then
// by id, and an empty slice when nothing matches.
type Store interface {
	FindByName(ctx context.Context, name models.Name) ([]*models.NameOrigin, error)
	FindTopByCountry(ctx context.Context, code string, limit int) ([]*models.NameOrigin, error)
	Add(ctx context.Context, origin *models.NameOrigin) error
	Touch(ctx context.Context, ids []uuid.UUID, at time.Time) error
}
