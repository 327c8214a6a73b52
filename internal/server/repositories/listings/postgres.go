// Package listings provides read access to marketplace listings.
package listings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/dbx"
	"github.com/dmitrijs2005/citylifes/internal/geo"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
)

// PostgresRepository implements listing reads over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const listingColumns = `id, owner_id, title, listing_type, city, area, pin_code, latitude, longitude, created_at`

// ScanListing reads listingColumns (in order) plus any extra destinations.
func ScanListing(s interface{ Scan(...any) error }, extra ...any) (*models.Listing, error) {
	var (
		l        models.Listing
		lat, lng sql.NullFloat64
	)
	dest := []any{&l.ID, &l.OwnerID, &l.Title, &l.ListingType, &l.City, &l.Area, &l.PinCode, &lat, &lng, &l.CreatedAt}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if lat.Valid {
		l.Latitude = &lat.Float64
	}
	if lng.Valid {
		l.Longitude = &lng.Float64
	}
	return &l, nil
}

// GetByID returns a listing, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	l, err := ScanListing(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

// SelectNearest returns up to limit listings with coordinates inside box,
// closest to center first by geo.ApproxDistanceSq.
func (r *PostgresRepository) SelectNearest(ctx context.Context, center geo.Point, box geo.Box, limit int) ([]*models.Listing, error) {
	query := `
		SELECT ` + listingColumns + ` FROM listings
		WHERE latitude BETWEEN $1 AND $2 AND longitude BETWEEN $3 AND $4
		ORDER BY (latitude - $5)^2 + ((longitude - $6) * $7)^2, id
		LIMIT $8
	`
	rows, err := r.db.QueryContext(ctx, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng,
		center.Lat, center.Lng, geo.LngScale(center.Lat), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select listings: %w", err)
	}
	defer rows.Close()

	var result []*models.Listing
	for rows.Next() {
		l, err := ScanListing(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
