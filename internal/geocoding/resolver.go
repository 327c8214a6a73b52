package geocoding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/citylifes/internal/geo"
	"github.com/dmitrijs2005/citylifes/internal/logging"
	"github.com/dmitrijs2005/citylifes/internal/strategy"
)

// DefaultTimeout bounds a whole Reverse call across all providers.
const DefaultTimeout = 10 * time.Second

// ErrLookupFailed marks a lookup that produced no address. It is logged,
// never returned to callers.
var ErrLookupFailed = errors.New("geocode lookup failed")

const cacheStrategy = "cache"

// Resolver looks up addresses through a cache and then an ordered list of
// providers.
type Resolver struct {
	providers []Provider
	cache     *geo.GeocodeCache
	timeout   time.Duration
	log       logging.Logger
}

// NewResolver builds a Resolver. A nil cache disables caching and a
// non-positive timeout selects DefaultTimeout.
func NewResolver(cache *geo.GeocodeCache, timeout time.Duration, log logging.Logger, providers ...Provider) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logging.Nop{}
	}
	return &Resolver{
		providers: providers,
		cache:     cache,
		timeout:   timeout,
		log:       log.With("module", "geocoding"),
	}
}

// Reverse returns the address for (lat, lng), or nil when it is unknown.
// The report lists which source answered and how the others fared.
func (r *Resolver) Reverse(ctx context.Context, lat, lng float64) (*geo.GeocodeResult, strategy.Report) {
	if !(geo.Point{Lat: lat, Lng: lng}).Valid() {
		r.log.Warn(ctx, "geocode lookup failed", "error", fmt.Errorf("%w: coordinates out of range", ErrLookupFailed))
		return nil, strategy.Report{}
	}

	if r.cache != nil {
		if res, ok := r.cache.Get(lat, lng); ok {
			return &res, strategy.Report{
				Attempts: []strategy.Attempt{{Name: cacheStrategy, Outcome: strategy.Success}},
				Winner:   cacheStrategy,
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	strategies := make([]strategy.Strategy[*geo.GeocodeResult], 0, len(r.providers))
	for _, p := range r.providers {
		strategies = append(strategies, strategy.Strategy[*geo.GeocodeResult]{
			Name: p.Name(),
			Run: func(ctx context.Context) (*geo.GeocodeResult, bool, error) {
				res, err := p.Reverse(ctx, lat, lng)
				return res, res != nil, err
			},
		})
	}

	res, report, err := strategy.Execute(ctx, strategies...)
	if err != nil {
		r.log.Warn(ctx, "geocode lookup failed",
			"cell", geo.CellKey(lat, lng),
			"error", fmt.Errorf("%w: %w", ErrLookupFailed, err),
		)
		return nil, report
	}

	r.log.Debug(ctx, "geocode resolved", "cell", geo.CellKey(lat, lng), "provider", report.Winner)

	if r.cache != nil {
		r.cache.Put(lat, lng, *res)
	}
	return res, report
}
