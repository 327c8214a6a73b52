package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used for all distance math.
const EarthRadiusKm = 6371.0

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether p is a finite coordinate within range.
func (p Point) Valid() bool {
	return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lng) &&
		p.Lat >= -90 && p.Lat <= 90 &&
		p.Lng >= -180 && p.Lng <= 180
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// HaversineKm returns the unrounded great-circle distance between a and b.
func HaversineKm(a, b Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)

	// rounding can push h a hair above 1 for antipodal points
	h = math.Min(1, h)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// LngScale is cos(lat): the length of a degree of longitude at lat
// relative to a degree of latitude.
func LngScale(lat float64) float64 {
	return math.Cos(radians(lat))
}

// ApproxDistanceSq is the equirectangular squared distance from a to b in
// degrees of latitude. Over city-sized areas it orders points the same way
// as HaversineKm, and its SQL form is cheap enough for an ORDER BY:
//
//	(lat - a.Lat)^2 + ((lng - a.Lng) * LngScale(a.Lat))^2
func ApproxDistanceSq(a, b Point) float64 {
	dLat := b.Lat - a.Lat
	dLng := (b.Lng - a.Lng) * LngScale(a.Lat)
	return dLat*dLat + dLng*dLng
}

// RoundKm rounds a distance to one decimal for display.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

// FormatDistance renders a distance as "850m away" below one kilometre and
// "3.2km away" otherwise.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm away", int64(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1fkm away", km)
}

// Box is a latitude/longitude rectangle.
type Box struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// Contains reports whether p lies inside b, edges included.
func (b Box) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// BoundingBox returns a rectangle that contains every point within
// radiusKm of center. It is a coarse pre-filter for SQL queries; callers
// still apply HaversineKm to the rows it returns. Boxes that would cross a
// pole or the antimeridian widen to the full longitude range.
func BoundingBox(center Point, radiusKm float64) Box {
	dLat := radiusKm / EarthRadiusKm * 180 / math.Pi

	b := Box{
		MinLat: math.Max(-90, center.Lat-dLat),
		MaxLat: math.Min(90, center.Lat+dLat),
		MinLng: -180,
		MaxLng: 180,
	}

	if b.MinLat == -90 || b.MaxLat == 90 {
		return b
	}

	// widest longitude span is at the latitude furthest from the equator
	maxAbsLat := math.Max(math.Abs(b.MinLat), math.Abs(b.MaxLat))
	dLng := dLat / math.Cos(radians(maxAbsLat))
	if center.Lng-dLng < -180 || center.Lng+dLng > 180 {
		return b
	}

	b.MinLng = center.Lng - dLng
	b.MaxLng = center.Lng + dLng
	return b
}
