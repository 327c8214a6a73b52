package geo

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultCacheSize bounds the number of quantized cells kept.
	DefaultCacheSize = 500
	// DefaultCacheTTL is how long a resolved address is trusted.
	DefaultCacheTTL = 24 * time.Hour
)

// GeocodeResult is a resolved address. Any field may be empty.
type GeocodeResult struct {
	City             string `json:"city,omitempty"`
	Area             string `json:"area,omitempty"`
	PostalCode       string `json:"postal_code,omitempty"`
	FormattedAddress string `json:"formatted_address,omitempty"`
	Region           string `json:"region,omitempty"`
}

// CellKey quantizes a coordinate to three decimals (roughly 110 m), so
// lookups from nearby positions share a cache entry.
func CellKey(lat, lng float64) string {
	return quantize(lat) + "," + quantize(lng)
}

func quantize(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if s == "-0.000" {
		return "0.000"
	}
	return s
}

// GeocodeCache memoizes reverse geocoding by CellKey. It is safe for
// concurrent use; concurrent misses on one cell may both resolve and the
// last Put wins.
type GeocodeCache struct {
	lru *expirable.LRU[string, GeocodeResult]
}

// NewGeocodeCache returns a cache holding at most size cells, each for at
// most ttl. Non-positive values fall back to the defaults.
func NewGeocodeCache(size int, ttl time.Duration) *GeocodeCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &GeocodeCache{lru: expirable.NewLRU[string, GeocodeResult](size, nil, ttl)}
}

// Get returns the cached result for the cell containing (lat, lng).
func (c *GeocodeCache) Get(lat, lng float64) (GeocodeResult, bool) {
	return c.lru.Get(CellKey(lat, lng))
}

// Put stores r for the cell containing (lat, lng).
func (c *GeocodeCache) Put(lat, lng float64, r GeocodeResult) {
	c.lru.Add(CellKey(lat, lng), r)
}

// Len returns the number of live cells.
func (c *GeocodeCache) Len() int {
	return c.lru.Len()
}
