package origin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/store/country"
	"github.com/abstract-333/name-origin-api/pkg/platform/sentinel"
	"github.com/abstract-333/name-origin-api/pkg/platform/tx"
)

const pgForeignKeyViolation = "23503"

const selectOrigins = `
	SELECT n.id, n.name, n.count_of_requests, n.probability, n.last_accessed_at, n.updated_at,
		` + country.Columns + `
	FROM names_origin n
	JOIN countries c ON c.iso_alpha2_code = n.country_code`

// PostgresStore persists name origins in PostgreSQL. It joins any
// transaction carried in the context.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByName(ctx context.Context, name models.Name) ([]*models.NameOrigin, error) {
	return s.query(ctx, "find origins by name",
		selectOrigins+` WHERE n.name = $1 ORDER BY n.probability DESC, n.id ASC`, name.String())
}

func (s *PostgresStore) FindTopByCountry(ctx context.Context, code string, limit int) ([]*models.NameOrigin, error) {
	if limit <= 0 {
		return []*models.NameOrigin{}, nil
	}
	return s.query(ctx, "find top origins by country",
		selectOrigins+` WHERE n.country_code = $1 ORDER BY n.probability DESC, n.id ASC LIMIT $2`, code, limit)
}

func (s *PostgresStore) Add(ctx context.Context, origin *models.NameOrigin) error {
	if origin == nil || !origin.Resolved() {
		return fmt.Errorf("add name origin: resolved country is required")
	}
	_, err := tx.Executor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO names_origin (id, name, count_of_requests, probability, country_code, last_accessed_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		origin.ID, origin.Name.String(), origin.CountOfRequests.Int(), origin.Probability.Float64(),
		origin.CountryCode, origin.LastAccessedAt, origin.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation {
			return fmt.Errorf("add name origin for %s: %w", origin.CountryCode, sentinel.ErrNotFound)
		}
		return fmt.Errorf("add name origin: %w", err)
	}
	return nil
}

func (s *PostgresStore) Touch(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	_, err := tx.Executor(ctx, s.db).ExecContext(ctx,
		`UPDATE names_origin SET last_accessed_at = $2 WHERE id = ANY($1::uuid[])`,
		pq.Array(raw), at)
	if err != nil {
		return fmt.Errorf("touch name origins: %w", err)
	}
	return nil
}

func (s *PostgresStore) query(ctx context.Context, op, query string, args ...any) ([]*models.NameOrigin, error) {
	rows, err := tx.Executor(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []*models.NameOrigin{}
	for rows.Next() {
		o, err := scanOrigin(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func scanOrigin(row country.Scanner) (*models.NameOrigin, error) {
	var (
		o           models.NameOrigin
		name        string
		count       int
		probability float64
	)
	c, err := country.ScanCountry(row, &o.ID, &name, &count, &probability, &o.LastAccessedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if o.Name, err = models.NewName(name); err != nil {
		return nil, err
	}
	if o.CountOfRequests, err = models.NewCountOfRequests(count); err != nil {
		return nil, err
	}
	if o.Probability, err = models.NewProbability(probability); err != nil {
		return nil, err
	}
	o.Country = c
	o.CountryCode = c.Code
	o.LastAccessedAt = o.LastAccessedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return &o, nil
}
