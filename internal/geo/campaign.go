package geo

import "time"

// CampaignStatus is the lifecycle state of an ad campaign.
type CampaignStatus string

const (
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
)

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// Campaign is the sponsorship attached to a listing. Nil pointers mean the
// field was not set in storage.
type Campaign struct {
	ID        string
	Status    CampaignStatus
	Start     *time.Time
	End       *time.Time
	Budget    *float64
	Spent     *float64
	CreatedAt time.Time
}

// Listing is a candidate for sponsored placement. It is sponsored iff
// Campaign is non-nil.
type Listing struct {
	ID         string
	City       string
	Area       string
	PostalCode string
	Location   *Point
	Campaign   *Campaign
}

// Sponsored reports whether l carries a campaign.
func (l Listing) Sponsored() bool { return l.Campaign != nil }

// CampaignEligible reports whether l's campaign may be served at now: it
// is active, now lies in [Start, End] and budget remains. Missing data
// makes the listing ineligible.
func CampaignEligible(l Listing, now time.Time) bool {
	c := l.Campaign
	if c == nil || c.Status != StatusActive {
		return false
	}
	if c.Start == nil || c.End == nil || c.Budget == nil || c.Spent == nil {
		return false
	}
	if now.Before(*c.Start) || now.After(*c.End) {
		return false
	}
	return *c.Spent < *c.Budget
}
