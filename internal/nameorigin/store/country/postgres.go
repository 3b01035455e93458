package country

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
	"github.com/abstract-333/name-origin-api/pkg/platform/sentinel"
	"github.com/abstract-333/name-origin-api/pkg/platform/tx"
	"github.com/abstract-333/name-origin-api/pkg/requestcontext"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Columns is the select list scanned by ScanCountry, shared with queries that
// join countries.
const Columns = `c.iso_alpha2_code, c.common_name, c.official_name, c.region, c.sub_region,
	c.independent, c.capital, c.capital_lat, c.capital_long,
	c.flag_png, c.flag_svg, c.flag_alt, c.coat_of_arms_png, c.coat_of_arms_svg,
	c.borders, c.created_at, c.updated_at`

// PostgresStore persists countries in PostgreSQL. It joins any transaction
// carried in the context.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByCode(ctx context.Context, code string) (*models.Country, error) {
	row := tx.Executor(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+Columns+` FROM countries c WHERE c.iso_alpha2_code = $1`, code)
	country, err := ScanCountry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find country %s: %w", code, err)
	}
	return country, nil
}

func (s *PostgresStore) Add(ctx context.Context, c *models.Country) (*models.Country, error) {
	if c == nil {
		return nil, fmt.Errorf("country is required")
	}
	lat, lng := coordinates(c)
	_, err := tx.Executor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO countries (
			iso_alpha2_code, common_name, official_name, region, sub_region,
			independent, capital, capital_lat, capital_long,
			flag_png, flag_svg, flag_alt, coat_of_arms_png, coat_of_arms_svg,
			borders, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		c.Code, c.CommonName, c.OfficialName, c.Region, c.SubRegion,
		c.Independent, pq.Array(c.Capitals), lat, lng,
		c.FlagPNG, c.FlagSVG, c.FlagAlt, c.CoatOfArmsPNG, c.CoatOfArmsSVG,
		pq.Array(c.Borders), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("add country %s: %w", c.Code, sentinel.ErrConflict)
		}
		return nil, fmt.Errorf("add country %s: %w", c.Code, err)
	}
	return c, nil
}

// Update replaces every attribute except the code and created_at.
func (s *PostgresStore) Update(ctx context.Context, code string, c *models.Country) (*models.Country, error) {
	if c == nil {
		return nil, fmt.Errorf("country is required")
	}
	lat, lng := coordinates(c)
	row := tx.Executor(ctx, s.db).QueryRowContext(ctx, `
		UPDATE countries c SET
			common_name = $2, official_name = $3, region = $4, sub_region = $5,
			independent = $6, capital = $7, capital_lat = $8, capital_long = $9,
			flag_png = $10, flag_svg = $11, flag_alt = $12,
			coat_of_arms_png = $13, coat_of_arms_svg = $14,
			borders = $15, updated_at = $16
		WHERE c.iso_alpha2_code = $1
		RETURNING `+Columns,
		code, c.CommonName, c.OfficialName, c.Region, c.SubRegion,
		c.Independent, pq.Array(c.Capitals), lat, lng,
		c.FlagPNG, c.FlagSVG, c.FlagAlt, c.CoatOfArmsPNG, c.CoatOfArmsSVG,
		pq.Array(c.Borders), requestcontext.Now(ctx),
	)
	updated, err := ScanCountry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("update country %s: %w", code, err)
	}
	return updated, nil
}

// Delete fails with sentinel.ErrConflict while name origins still reference
// the country.
func (s *PostgresStore) Delete(ctx context.Context, code string) error {
	res, err := tx.Executor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM countries WHERE iso_alpha2_code = $1`, code)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("delete country %s: %w", code, sentinel.ErrConflict)
		}
		return fmt.Errorf("delete country %s: %w", code, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete country %s: %w", code, err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Country, error) {
	rows, err := tx.Executor(ctx, s.db).QueryContext(ctx,
		`SELECT `+Columns+` FROM countries c ORDER BY c.iso_alpha2_code`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	out := []*models.Country{}
	for rows.Next() {
		c, err := ScanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return out, nil
}

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanCountry reads the Columns select list. Extra destinations scanned
// before the country columns can be passed as prefix.
func ScanCountry(row Scanner, prefix ...any) (*models.Country, error) {
	var (
		c        models.Country
		capitals pq.StringArray
		borders  pq.StringArray
		lat, lng sql.NullFloat64
	)
	dest := append(prefix,
		&c.Code, &c.CommonName, &c.OfficialName, &c.Region, &c.SubRegion,
		&c.Independent, &capitals, &lat, &lng,
		&c.FlagPNG, &c.FlagSVG, &c.FlagAlt, &c.CoatOfArmsPNG, &c.CoatOfArmsSVG,
		&borders, &c.CreatedAt, &c.UpdatedAt,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	c.Capitals = []string(capitals)
	c.Borders = []string(borders)
	if c.Capitals == nil {
		c.Capitals = []string{}
	}
	if c.Borders == nil {
		c.Borders = []string{}
	}
	if lat.Valid && lng.Valid {
		c.CapitalLatLng = &models.LatLng{Lat: lat.Float64, Lng: lng.Float64}
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}

func coordinates(c *models.Country) (lat, lng sql.NullFloat64) {
	if c.CapitalLatLng == nil {
		return lat, lng
	}
	return sql.NullFloat64{Float64: c.CapitalLatLng.Lat, Valid: true},
		sql.NullFloat64{Float64: c.CapitalLatLng.Lng, Valid: true}
}

func pgCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
