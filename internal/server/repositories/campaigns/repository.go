package campaigns

import (
	"context"
	"time"

	"github.com/dmitrijs2005/citylifes/internal/geo"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
)

// CandidateQuery narrows the sponsored candidate scan. Zero values mean
// no restriction. City, Area and PinCode compare case-insensitively after
// trimming. Near orders rows nearest first instead of newest first.
type CandidateQuery struct {
	At      time.Time
	City    string
	Area    string
	PinCode string
	Box     *geo.Box
	Near    *geo.Point
	Limit   int
}

type Repository interface {
	Create(ctx context.Context, c *models.Campaign) error
	GetByID(ctx context.Context, id string) (*models.Campaign, error)
	GetCandidate(ctx context.Context, campaignID string) (*models.Candidate, error)
	SelectCandidates(ctx context.Context, q CandidateQuery) ([]*models.Candidate, error)
	SelectByUser(ctx context.Context, userID string) ([]*models.Campaign, error)
	IncrementImpressions(ctx context.Context, id string) error
	IncrementClicks(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status geo.CampaignStatus, at time.Time) error
}
