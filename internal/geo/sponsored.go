package geo

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Ordering selects how eligible sponsored listings are sorted.
type Ordering string

const (
	// OrderAuto sorts by distance under a radius filter and by newest
	// campaign otherwise.
	OrderAuto Ordering = "auto"
	// OrderNewestFirst always sorts by campaign creation, newest first.
	OrderNewestFirst Ordering = "newest_first"
)

// ParseOrdering maps a config value to an Ordering. Empty means OrderAuto.
func ParseOrdering(s string) (Ordering, error) {
	switch o := Ordering(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return OrderAuto, nil
	case OrderAuto, OrderNewestFirst:
		return o, nil
	}
	return "", fmt.Errorf("unknown sponsored ordering %q", s)
}

// Ranked is a listing selected for sponsored placement.
type Ranked struct {
	Listing
	// DistanceKm is set when the filter is a RadiusFilter.
	DistanceKm  float64
	HasDistance bool
}

// RankSponsored keeps listings whose campaign is eligible at now and which
// match f, then orders them by ord. Ties break on listing ID, then on the
// newest campaign and campaign ID, so the result is deterministic even
// when one listing carries several campaigns.
func RankSponsored(listings []Listing, f Filter, now time.Time, ord Ordering) []Ranked {
	radius, isRadius := f.(RadiusFilter)

	out := make([]Ranked, 0, len(listings))
	for _, l := range listings {
		if !CampaignEligible(l, now) {
			continue
		}

		r := Ranked{Listing: l}
		if isRadius {
			d, ok := radius.within(l)
			if !ok {
				continue
			}
			r.DistanceKm, r.HasDistance = d, true
		} else if !Matches(l, f) {
			continue
		}
		out = append(out, r)
	}

	byDistance := isRadius && ord != OrderNewestFirst

	slices.SortFunc(out, func(a, b Ranked) int {
		var c int
		if byDistance {
			c = cmp.Compare(a.DistanceKm, b.DistanceKm)
		} else {
			c = b.Campaign.CreatedAt.Compare(a.Campaign.CreatedAt)
		}
		if c != 0 {
			return c
		}
		if c := strings.Compare(a.ID, b.ID); c != 0 {
			return c
		}
		if c := b.Campaign.CreatedAt.Compare(a.Campaign.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Campaign.ID, b.Campaign.ID)
	})

	return out
}
