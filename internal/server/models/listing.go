package models

import (
	"time"

	"github.com/dmitrijs2005/citylifes/internal/geo"
)

// Listing is a marketplace listing (property, vehicle or business).
type Listing struct {
	ID          string
	OwnerID     string
	Title       string
	ListingType string
	City        string
	Area        string
	PinCode     string
	Latitude    *float64
	Longitude   *float64
	CreatedAt   time.Time
}

// Location returns the listing's coordinates, or nil unless both are set.
func (l *Listing) Location() *geo.Point {
	if l.Latitude == nil || l.Longitude == nil {
		return nil
	}
	return &geo.Point{Lat: *l.Latitude, Lng: *l.Longitude}
}
