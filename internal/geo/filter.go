package geo

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidFilter is returned by ParseFilter for malformed input.
var ErrInvalidFilter = errors.New("invalid location filter")

// DefaultRadiusKm applies when a radius filter omits its radius.
const DefaultRadiusKm = 10.0

// Mode names a filter variant on the wire.
type Mode string

const (
	ModeNone    Mode = "none"
	ModeCity    Mode = "city"
	ModeArea    Mode = "area"
	ModePincode Mode = "pincode"
	ModeRadius  Mode = "radius"

	// modeLive is what the web client sends for "use my location".
	modeLive Mode = "live"
)

// Filter is a location predicate. The set of implementations is closed:
// NoFilter, CityFilter, AreaFilter, PincodeFilter and RadiusFilter.
type Filter interface {
	Mode() Mode
	sealed()
}

type (
	// NoFilter matches every listing.
	NoFilter struct{}
	// CityFilter matches listings in a city.
	CityFilter struct{ Value string }
	// AreaFilter matches listings in an area or locality.
	AreaFilter struct{ Value string }
	// PincodeFilter matches listings with a postal code.
	PincodeFilter struct{ Value string }
	// RadiusFilter matches listings within RadiusKm of Center.
	RadiusFilter struct {
		Center   Point
		RadiusKm float64
	}
)

func (NoFilter) Mode() Mode      { return ModeNone }
func (CityFilter) Mode() Mode    { return ModeCity }
func (AreaFilter) Mode() Mode    { return ModeArea }
func (PincodeFilter) Mode() Mode { return ModePincode }
func (RadiusFilter) Mode() Mode  { return ModeRadius }

func (NoFilter) sealed()      {}
func (CityFilter) sealed()    {}
func (AreaFilter) sealed()    {}
func (PincodeFilter) sealed() {}
func (RadiusFilter) sealed()  {}

// FilterSpec is the loosely typed form a filter arrives in.
type FilterSpec struct {
	Mode     string   `json:"mode"`
	Value    string   `json:"value,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	RadiusKm *float64 `json:"radius_km,omitempty"`
}

// ParseFilter validates s and returns the matching Filter. An empty mode
// means no filtering.
func ParseFilter(s FilterSpec) (Filter, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s.Mode)))

	switch mode {
	case "", ModeNone:
		return NoFilter{}, nil

	case ModeCity, ModeArea, ModePincode:
		v := strings.TrimSpace(s.Value)
		if v == "" {
			return nil, fmt.Errorf("%w: %s filter needs a value", ErrInvalidFilter, mode)
		}
		switch mode {
		case ModeCity:
			return CityFilter{Value: v}, nil
		case ModeArea:
			return AreaFilter{Value: v}, nil
		default:
			return PincodeFilter{Value: v}, nil
		}

	case ModeRadius, modeLive:
		if s.Lat == nil || s.Lng == nil {
			return nil, fmt.Errorf("%w: radius filter needs lat and lng", ErrInvalidFilter)
		}
		center := Point{Lat: *s.Lat, Lng: *s.Lng}
		if !center.Valid() {
			return nil, fmt.Errorf("%w: coordinates (%v, %v) out of range", ErrInvalidFilter, center.Lat, center.Lng)
		}

		radius := DefaultRadiusKm
		if s.RadiusKm != nil {
			radius = *s.RadiusKm
		}
		if !(radius > 0) || math.IsInf(radius, 0) {
			return nil, fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidFilter, radius)
		}
		return RadiusFilter{Center: center, RadiusKm: radius}, nil
	}

	return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidFilter, s.Mode)
}

// Matches reports whether l satisfies f.
func Matches(l Listing, f Filter) bool {
	switch f := f.(type) {
	case NoFilter:
		return true
	case CityFilter:
		return sameText(l.City, f.Value)
	case AreaFilter:
		return sameText(l.Area, f.Value)
	case PincodeFilter:
		return sameText(l.PostalCode, f.Value)
	case RadiusFilter:
		_, ok := f.within(l)
		return ok
	}
	return false
}

// within returns the distance from the center to l and whether it falls
// inside the radius. Listings without coordinates never match.
func (f RadiusFilter) within(l Listing) (float64, bool) {
	if l.Location == nil {
		return 0, false
	}
	d := HaversineKm(f.Center, *l.Location)
	return d, d <= f.RadiusKm
}

func sameText(attr, want string) bool {
	attr = strings.TrimSpace(attr)
	if attr == "" {
		return false
	}
	return strings.EqualFold(attr, strings.TrimSpace(want))
}
