package models

import (
	"time"

	"github.com/dmitrijs2005/citylifes/internal/geo"
)

// Campaign is an ad campaign promoting one listing. Budget, StartDate and
// EndDate may be unset in storage; such campaigns are never served.
type Campaign struct {
	ID          string
	UserID      string
	ListingID   string
	Title       string
	Status      geo.CampaignStatus
	Budget      *float64
	Spent       float64
	Impressions int64
	Clicks      int64
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Candidate is a listing joined with the campaign sponsoring it.
type Candidate struct {
	Listing  Listing
	Campaign Campaign
}

// Geo converts c into the form the ranking functions operate on.
func (c *Candidate) Geo() geo.Listing {
	spent := c.Campaign.Spent
	return geo.Listing{
		ID:         c.Listing.ID,
		City:       c.Listing.City,
		Area:       c.Listing.Area,
		PostalCode: c.Listing.PinCode,
		Location:   c.Listing.Location(),
		Campaign: &geo.Campaign{
			ID:        c.Campaign.ID,
			Status:    c.Campaign.Status,
			Start:     c.Campaign.StartDate,
			End:       c.Campaign.EndDate,
			Budget:    c.Campaign.Budget,
			Spent:     &spent,
			CreatedAt: c.Campaign.CreatedAt,
		},
	}
}
