package services

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/geo"
	"github.com/dmitrijs2005/citylifes/internal/logging"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
	"github.com/dmitrijs2005/citylifes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/citylifes/internal/strategy"
)

const (
	DefaultNearbyRadiusKm = 5.0
	MaxNearbyRadiusKm     = 100.0
	NearbyLimit           = 100

	// nearbyScanLimit caps the rows read from the bounding box, nearest
	// first, before the exact distance check.
	nearbyScanLimit = 1000
)

// Geocoder resolves coordinates to an address. A nil result means no
// address could be found.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (*geo.GeocodeResult, strategy.Report)
}

type NearbyListing struct {
	Listing       models.Listing
	DistanceKm    float64
	DistanceLabel string
}

type LocationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	geocoder    Geocoder
	log         logging.Logger
}

func NewLocationService(db *sql.DB, m repomanager.RepositoryManager, geocoder Geocoder, log logging.Logger) *LocationService {
	return &LocationService{db: db, repomanager: m, geocoder: geocoder, log: log.With("module", "location")}
}

func point(lat, lng float64) (geo.Point, error) {
	p := geo.Point{Lat: lat, Lng: lng}
	if !p.Valid() {
		return p, fmt.Errorf("%w: coordinates (%v, %v) out of range", common.ErrorValidation, lat, lng)
	}
	return p, nil
}

// ReverseGeocode returns the address at the coordinates, or nil when no
// provider could resolve it. Lookup failures are not errors.
func (s *LocationService) ReverseGeocode(ctx context.Context, lat, lng float64) (*geo.GeocodeResult, error) {
	if _, err := point(lat, lng); err != nil {
		return nil, err
	}
	res, _ := s.geocoder.Reverse(ctx, lat, lng)
	return res, nil
}

// Nearby returns listings within radiusKm of the point, closest first.
// A non-positive radius means DefaultNearbyRadiusKm.
func (s *LocationService) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]NearbyListing, error) {
	center, err := point(lat, lng)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(radiusKm) || radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}
	if radiusKm > MaxNearbyRadiusKm {
		return nil, fmt.Errorf("%w: radius exceeds %v km", common.ErrorValidation, MaxNearbyRadiusKm)
	}

	rows, err := s.repomanager.Listings(s.db).SelectNearest(ctx, center, geo.BoundingBox(center, radiusKm), nearbyScanLimit)
	if err != nil {
		return nil, fmt.Errorf("error loading nearby listings: %w", err)
	}

	out := make([]NearbyListing, 0, len(rows))
	for _, l := range rows {
		p := l.Location()
		if p == nil {
			continue
		}
		d := geo.HaversineKm(center, *p)
		if d > radiusKm {
			continue
		}
		out = append(out, NearbyListing{Listing: *l, DistanceKm: d, DistanceLabel: geo.FormatDistance(d)})
	}

	slices.SortFunc(out, func(a, b NearbyListing) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		return strings.Compare(a.Listing.ID, b.Listing.ID)
	})
	if len(out) > NearbyLimit {
		out = out[:NearbyLimit]
	}
	for i := range out {
		out[i].DistanceKm = geo.RoundKm(out[i].DistanceKm)
	}
	return out, nil
}
