package services

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/dbx"
	"github.com/dmitrijs2005/citylifes/internal/geo"
	"github.com/dmitrijs2005/citylifes/internal/logging"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
	"github.com/dmitrijs2005/citylifes/internal/server/repositories/campaigns"
	"github.com/dmitrijs2005/citylifes/internal/server/repositories/repomanager"
)

// sponsoredScanLimit caps the candidate rows read per sponsored request.
const sponsoredScanLimit = 500

// SponsoredListing is a listing selected for sponsored placement.
type SponsoredListing struct {
	Listing  models.Listing
	Campaign models.Campaign
	// DistanceKm is rounded for display and set only under a radius filter.
	DistanceKm    *float64
	DistanceLabel string
}

// AdminChecker answers whether a user has the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) bool
}

type CampaignService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	admins      AdminChecker
	ordering    geo.Ordering
	log         logging.Logger
	now         func() time.Time
}

func NewCampaignService(db *sql.DB, m repomanager.RepositoryManager, admins AdminChecker,
	ordering geo.Ordering, log logging.Logger) *CampaignService {
	if ordering == "" {
		ordering = geo.OrderAuto
	}
	return &CampaignService{
		db:          db,
		repomanager: m,
		admins:      admins,
		ordering:    ordering,
		log:         log.With("module", "campaigns"),
		now:         time.Now,
	}
}

// Sponsored returns eligible sponsored listings matching the filter. The
// SQL query pre-filters by run window and location; eligibility and
// location are checked again in process at the same instant. A listing
// with several eligible campaigns is served once, under the campaign that
// ranks first.
func (s *CampaignService) Sponsored(ctx context.Context, spec geo.FilterSpec) ([]SponsoredListing, error) {
	filter, err := geo.ParseFilter(spec)
	if err != nil {
		return nil, err
	}

	now := s.now()
	candidates, err := s.repomanager.Campaigns(s.db).SelectCandidates(ctx, s.candidateQuery(filter, now))
	if err != nil {
		return nil, fmt.Errorf("error loading sponsored listings: %w", err)
	}

	byCampaign := make(map[string]*models.Candidate, len(candidates))
	pool := make([]geo.Listing, 0, len(candidates))
	for _, c := range candidates {
		byCampaign[c.Campaign.ID] = c
		pool = append(pool, c.Geo())
	}

	ranked := geo.RankSponsored(pool, filter, now, s.ordering)

	served := make(map[string]struct{}, len(ranked))
	out := make([]SponsoredListing, 0, len(ranked))
	for _, r := range ranked {
		if _, dup := served[r.ID]; dup {
			continue
		}
		served[r.ID] = struct{}{}

		c := byCampaign[r.Campaign.ID]
		item := SponsoredListing{Listing: c.Listing, Campaign: c.Campaign}
		if r.HasDistance {
			d := geo.RoundKm(r.DistanceKm)
			item.DistanceKm = &d
			item.DistanceLabel = geo.FormatDistance(r.DistanceKm)
		}
		out = append(out, item)
	}

	s.log.Debug(ctx, "sponsored listings served", "mode", filter.Mode(), "candidates", len(candidates), "served", len(out))
	return out, nil
}

func (s *CampaignService) candidateQuery(filter geo.Filter, now time.Time) campaigns.CandidateQuery {
	q := campaigns.CandidateQuery{At: now, Limit: sponsoredScanLimit}

	switch f := filter.(type) {
	case geo.CityFilter:
		q.City = f.Value
	case geo.AreaFilter:
		q.Area = f.Value
	case geo.PincodeFilter:
		q.PinCode = f.Value
	case geo.RadiusFilter:
		box := geo.BoundingBox(f.Center, f.RadiusKm)
		q.Box = &box
		if s.ordering != geo.OrderNewestFirst {
			center := f.Center
			q.Near = &center
		}
	}
	return q
}

// RecordImpression counts an impression if the campaign is eligible right
// now. It reports whether the impression was counted.
func (s *CampaignService) RecordImpression(ctx context.Context, campaignID string) (bool, error) {
	return s.record(ctx, campaignID, campaigns.Repository.IncrementImpressions)
}

// RecordClick counts a click under the same rule as RecordImpression.
func (s *CampaignService) RecordClick(ctx context.Context, campaignID string) (bool, error) {
	return s.record(ctx, campaignID, campaigns.Repository.IncrementClicks)
}

func (s *CampaignService) record(ctx context.Context, campaignID string,
	inc func(campaigns.Repository, context.Context, string) error) (bool, error) {
	if campaignID == "" {
		return false, fmt.Errorf("%w: campaign id is required", common.ErrorValidation)
	}

	repo := s.repomanager.Campaigns(s.db)
	c, err := repo.GetCandidate(ctx, campaignID)
	if err != nil {
		return false, err
	}
	if !geo.CampaignEligible(c.Geo(), s.now()) {
		return false, nil
	}
	if err := inc(repo, ctx, campaignID); err != nil {
		return false, fmt.Errorf("error recording campaign event: %w", err)
	}
	return true, nil
}

// CreateCampaign starts an active campaign for a listing owned by userID.
func (s *CampaignService) CreateCampaign(ctx context.Context, userID, listingID, title string,
	budget float64, endDate time.Time) (*models.Campaign, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if !(budget > 0) || math.IsInf(budget, 0) {
		return nil, fmt.Errorf("%w: budget must be positive", common.ErrorValidation)
	}

	now := s.now().UTC()
	if !endDate.After(now) {
		return nil, fmt.Errorf("%w: end date must be in the future", common.ErrorValidation)
	}
	end := endDate.UTC()

	c := &models.Campaign{
		ID:        uuid.NewString(),
		UserID:    userID,
		ListingID: listingID,
		Title:     title,
		Status:    geo.StatusActive,
		Budget:    &budget,
		StartDate: &now,
		EndDate:   &end,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		listing, err := s.repomanager.Listings(tx).GetByID(ctx, listingID)
		if err != nil {
			return err
		}
		if listing.OwnerID != userID {
			return common.ErrorForbidden
		}
		return s.repomanager.Campaigns(tx).Create(ctx, c)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating campaign: %w", err)
	}
	return c, nil
}

// UpdateCampaignStatus changes a campaign's status. The campaign owner and
// admins may do this.
func (s *CampaignService) UpdateCampaignStatus(ctx context.Context, userID, campaignID string,
	status geo.CampaignStatus) (*models.Campaign, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrorValidation, status)
	}

	repo := s.repomanager.Campaigns(s.db)
	c, err := repo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID && !s.admins.IsAdmin(ctx, userID) {
		return nil, common.ErrorForbidden
	}

	at := s.now().UTC()
	if err := repo.UpdateStatus(ctx, campaignID, status, at); err != nil {
		return nil, fmt.Errorf("error updating campaign: %w", err)
	}
	c.Status, c.UpdatedAt = status, at

	s.log.Info(ctx, "campaign status changed", "campaign_id", campaignID, "status", status, "by", userID)
	return c, nil
}

// ListCampaigns returns the user's campaigns, newest first.
func (s *CampaignService) ListCampaigns(ctx context.Context, userID string) ([]*models.Campaign, error) {
	list, err := s.repomanager.Campaigns(s.db).SelectByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing campaigns: %w", err)
	}
	return list, nil
}
