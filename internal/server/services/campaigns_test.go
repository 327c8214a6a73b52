package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/geo"
	"github.com/dmitrijs2005/citylifes/internal/logging"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
	campaignsrepo "github.com/dmitrijs2005/citylifes/internal/server/repositories/campaigns"
)

var campNow = time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

type stubAdmins map[string]bool

func (s stubAdmins) IsAdmin(_ context.Context, userID string) bool { return s[userID] }

func candidate(id string, lat, lng float64, created time.Time) *models.Candidate {
	start, end := campNow.AddDate(0, 0, -7), campNow.AddDate(0, 0, 7)
	return &models.Candidate{
		Listing: models.Listing{ID: "l-" + id, OwnerID: "owner", City: "Pune", Area: "Baner",
			PinCode: "411045", Latitude: &lat, Longitude: &lng},
		Campaign: models.Campaign{ID: "c-" + id, UserID: "owner", ListingID: "l-" + id,
			Status: geo.StatusActive, Budget: ptr(100.0), Spent: 10, StartDate: &start, EndDate: &end,
			CreatedAt: created},
	}
}

func newCampaignSvc(t *testing.T, rm *fakeRepoManager, ord geo.Ordering) *CampaignService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	s := NewCampaignService(db, rm, stubAdmins{"root": true}, ord, logging.Nop{})
	s.now = fixedClock(campNow)
	return s
}

func TestSponsored_RadiusOrdersByDistance(t *testing.T) {
	camps := newFakeCampaigns()
	camps.candidates = []*models.Candidate{
		candidate("far", 18.56, 73.856, campNow.Add(-time.Hour)),
		candidate("near", 18.521, 73.857, campNow.Add(-48*time.Hour)),
		candidate("outside", 19.5, 73.8, campNow),
	}
	s := newCampaignSvc(t, &fakeRepoManager{campaigns: camps}, geo.OrderAuto)

	got, err := s.Sponsored(context.Background(), geo.FilterSpec{Mode: "radius", Lat: ptr(18.52), Lng: ptr(73.856)})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "l-near", got[0].Listing.ID)
	assert.Equal(t, "l-far", got[1].Listing.ID)
	require.NotNil(t, got[0].DistanceKm)
	assert.Equal(t, "153m away", got[0].DistanceLabel)

	require.NotNil(t, camps.gotQuery.Box)
	assert.True(t, camps.gotQuery.Box.Contains(geo.Point{Lat: 18.52, Lng: 73.856}))
	assert.Equal(t, sponsoredScanLimit, camps.gotQuery.Limit)
}

func TestSponsored_NewestFirstOrdering(t *testing.T) {
	camps := newFakeCampaigns()
	camps.candidates = []*models.Candidate{
		candidate("near", 18.521, 73.857, campNow.Add(-48*time.Hour)),
		candidate("far", 18.56, 73.856, campNow.Add(-time.Hour)),
	}
	s := newCampaignSvc(t, &fakeRepoManager{campaigns: camps}, geo.OrderNewestFirst)

	got, err := s.Sponsored(context.Background(), geo.FilterSpec{Mode: "radius", Lat: ptr(18.52), Lng: ptr(73.856)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "l-far", got[0].Listing.ID)
}

func TestSponsored_CityFilterRechecksEligibility(t *testing.T) {
	camps := newFakeCampaigns()
	exhausted := candidate("spent", 1, 1, campNow)
	exhausted.Campaign.Spent = 100
	expired := candidate("expired", 1, 1, campNow)
	expired.Campaign.EndDate = ptr(campNow.Add(-time.Minute))
	other := candidate("mumbai", 1, 1, campNow)
	other.Listing.City = "Mumbai"

	camps.candidates = []*models.Candidate{exhausted, expired, other, candidate("ok", 1, 1, campNow)}
	s := newCampaignSvc(t, &fakeRepoManager{campaigns: camps}, geo.OrderAuto)

	got, err := s.Sponsored(context.Background(), geo.FilterSpec{Mode: "city", Value: "pune"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "l-ok", got[0].Listing.ID)
	assert.Nil(t, got[0].DistanceKm)
	assert.Nil(t, camps.gotQuery.Box)
}

func TestSponsored_ListingWithSeveralCampaigns(t *testing.T) {
	live := candidate("x", 18.521, 73.857, campNow.Add(-time.Hour))
	olderLive := candidate("x", 18.521, 73.857, campNow.Add(-48*time.Hour))
	olderLive.Campaign.ID = "c-x-older"
	expired := candidate("x", 18.521, 73.857, campNow)
	expired.Campaign.ID = "c-expired"
	expired.Campaign.EndDate = ptr(campNow.AddDate(0, 0, -1))

	for _, spec := range []geo.FilterSpec{
		{Mode: "city", Value: "Pune"},
		{Mode: "radius", Lat: ptr(18.52), Lng: ptr(73.856)},
	} {
		t.Run(spec.Mode, func(t *testing.T) {
			camps := newFakeCampaigns()
			camps.candidates = []*models.Candidate{olderLive, live, expired}
			s := newCampaignSvc(t, &fakeRepoManager{campaigns: camps}, geo.OrderAuto)

			got, err := s.Sponsored(context.Background(), spec)
			require.NoError(t, err)
			require.Len(t, got, 1, "a listing is served once")
			assert.Equal(t, "l-x", got[0].Listing.ID)
			assert.Equal(t, "c-x", got[0].Campaign.ID, "newest eligible campaign wins")
		})
	}
}

func TestSponsored_QueryCarriesWindowAndLocation(t *testing.T) {
	tests := []struct {
		name  string
		ord   geo.Ordering
		spec  geo.FilterSpec
		check func(t *testing.T, q campaignsrepo.CandidateQuery)
	}{
		{"city", geo.OrderAuto, geo.FilterSpec{Mode: "city", Value: "Delhi"}, func(t *testing.T, q campaignsrepo.CandidateQuery) {
			assert.Equal(t, "Delhi", q.City)
			assert.Nil(t, q.Box)
		}},
		{"area", geo.OrderAuto, geo.FilterSpec{Mode: "area", Value: "Baner"}, func(t *testing.T, q campaignsrepo.CandidateQuery) {
			assert.Equal(t, "Baner", q.Area)
		}},
		{"pincode", geo.OrderAuto, geo.FilterSpec{Mode: "pincode", Value: "411045"}, func(t *testing.T, q campaignsrepo.CandidateQuery) {
			assert.Equal(t, "411045", q.PinCode)
		}},
		{"radius nearest", geo.OrderAuto, geo.FilterSpec{Mode: "radius", Lat: ptr(18.52), Lng: ptr(73.856)}, func(t *testing.T, q campaignsrepo.CandidateQuery) {
			require.NotNil(t, q.Box)
			require.NotNil(t, q.Near)
			assert.Equal(t, geo.Point{Lat: 18.52, Lng: 73.856}, *q.Near)
		}},
		{"radius newest", geo.OrderNewestFirst, geo.FilterSpec{Mode: "radius", Lat: ptr(18.52), Lng: ptr(73.856)}, func(t *testing.T, q campaignsrepo.CandidateQuery) {
			require.NotNil(t, q.Box)
			assert.Nil(t, q.Near)
		}},
		{"none", geo.OrderAuto, geo.FilterSpec{}, func(t *testing.T, q campaignsrepo.CandidateQuery) {
			assert.Empty(t, q.City)
			assert.Nil(t, q.Box)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camps := newFakeCampaigns()
			s := newCampaignSvc(t, &fakeRepoManager{campaigns: camps}, tt.ord)

			_, err := s.Sponsored(context.Background(), tt.spec)
			require.NoError(t, err)
			assert.Equal(t, campNow, camps.gotQuery.At)
			assert.Equal(t, sponsoredScanLimit, camps.gotQuery.Limit)
			tt.check(t, camps.gotQuery)
		})
	}
}

func TestSponsored_ScanLimitKeepsMatchingCity(t *testing.T) {
	camps := newFakeCampaigns()
	camps.likeSQL = true
	for i := 0; i <= sponsoredScanLimit; i++ {
		c := candidate(fmt.Sprintf("mumbai-%d", i), 19.07, 72.87, campNow.Add(-time.Duration(i)*time.Minute))
		c.Listing.City = "Mumbai"
		camps.candidates = append(camps.candidates, c)
	}
	delhi := candidate("delhi", 28.61, 77.21, campNow.AddDate(0, 0, -3))
	delhi.Listing.City = "Delhi"
	camps.candidates = append(camps.candidates, delhi)
	s := newCampaignSvc(t, &fakeRepoManager{campaigns: camps}, geo.OrderAuto)

	got, err := s.Sponsored(context.Background(), geo.FilterSpec{Mode: "city", Value: "delhi"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "l-delhi", got[0].Listing.ID)
}

func TestSponsored_ScanLimitSkipsExpiredBacklog(t *testing.T) {
	camps := newFakeCampaigns()
	camps.likeSQL = true
	for i := 0; i < 2*sponsoredScanLimit; i++ {
		c := candidate(fmt.Sprintf("stale-%d", i), 18.52, 73.85, campNow.Add(-time.Duration(i)*time.Minute))
		c.Campaign.EndDate = ptr(campNow.AddDate(0, 0, -1))
		camps.candidates = append(camps.candidates, c)
	}
	camps.candidates = append(camps.candidates, candidate("live", 18.52, 73.85, campNow.AddDate(0, 0, -5)))
	s := newCampaignSvc(t, &fakeRepoManager{campaigns: camps}, geo.OrderAuto)

	got, err := s.Sponsored(context.Background(), geo.FilterSpec{Mode: "city", Value: "Pune"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c-live", got[0].Campaign.ID)
}

func TestSponsored_ScanLimitKeepsNearestInRadius(t *testing.T) {
	camps := newFakeCampaigns()
	camps.likeSQL = true
	for i := 0; i <= sponsoredScanLimit; i++ {
		camps.candidates = append(camps.candidates,
			candidate(fmt.Sprintf("edge-%d", i), 18.56, 73.856, campNow.Add(-time.Duration(i)*time.Minute)))
	}
	camps.candidates = append(camps.candidates, candidate("near", 18.521, 73.857, campNow.AddDate(0, 0, -6)))
	s := newCampaignSvc(t, &fakeRepoManager{campaigns: camps}, geo.OrderAuto)

	got, err := s.Sponsored(context.Background(), geo.FilterSpec{Mode: "radius", Lat: ptr(18.52), Lng: ptr(73.856)})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "l-near", got[0].Listing.ID)
	assert.Equal(t, "153m away", got[0].DistanceLabel)
}

func TestSponsored_Errors(t *testing.T) {
	camps := newFakeCampaigns()
	s := newCampaignSvc(t, &fakeRepoManager{campaigns: camps}, geo.OrderAuto)

	_, err := s.Sponsored(context.Background(), geo.FilterSpec{Mode: "radius", Lat: ptr(1.0)})
	assert.ErrorIs(t, err, geo.ErrInvalidFilter)

	camps.selErr = errors.New("db down")
	_, err = s.Sponsored(context.Background(), geo.FilterSpec{})
	assert.ErrorContains(t, err, "db down")
}

func TestRecordImpressionAndClick(t *testing.T) {
	camps := newFakeCampaigns()
	paused := candidate("paused", 1, 1, campNow)
	paused.Campaign.Status = geo.StatusPaused
	camps.candidates = []*models.Candidate{candidate("live", 1, 1, campNow), paused}
	s := newCampaignSvc(t, &fakeRepoManager{campaigns: camps}, geo.OrderAuto)
	ctx := context.Background()

	ok, err := s.RecordImpression(ctx, "c-live")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.RecordClick(ctx, "c-live")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.RecordImpression(ctx, "c-paused")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.RecordClick(ctx, "c-missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.RecordClick(ctx, "")
	assert.ErrorIs(t, err, common.ErrorValidation)

	assert.Equal(t, map[string]int{"c-live": 1}, camps.impressions)
	assert.Equal(t, map[string]int{"c-live": 1}, camps.clicks)
}

func TestCreateCampaign(t *testing.T) {
	listings := &fakeListings{byID: map[string]*models.Listing{"l1": {ID: "l1", OwnerID: "alice"}}}
	end := campNow.AddDate(0, 1, 0)

	t.Run("owner", func(t *testing.T) {
		camps := newFakeCampaigns()
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()
		s := NewCampaignService(db, &fakeRepoManager{campaigns: camps, listings: listings}, stubAdmins{}, "", logging.Nop{})
		s.now = fixedClock(campNow)

		c, err := s.CreateCampaign(context.Background(), "alice", "l1", " Summer promo ", 250, end)
		require.NoError(t, err)

		assert.Equal(t, "Summer promo", c.Title)
		assert.Equal(t, geo.StatusActive, c.Status)
		assert.Equal(t, campNow, *c.StartDate)
		assert.Equal(t, end, *c.EndDate)
		assert.Equal(t, 250.0, *c.Budget)
		assert.Equal(t, []*models.Campaign{c}, camps.created)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not the owner", func(t *testing.T) {
		camps := newFakeCampaigns()
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()
		s := NewCampaignService(db, &fakeRepoManager{campaigns: camps, listings: listings}, stubAdmins{}, "", logging.Nop{})
		s.now = fixedClock(campNow)

		_, err := s.CreateCampaign(context.Background(), "bob", "l1", "x", 10, end)
		assert.ErrorIs(t, err, common.ErrorForbidden)
		assert.Empty(t, camps.created)
	})

	invalid := []struct {
		name   string
		title  string
		budget float64
		end    time.Time
	}{
		{"no title", " ", 10, end},
		{"zero budget", "x", 0, end},
		{"negative budget", "x", -5, end},
		{"ends now", "x", 10, campNow},
		{"ended", "x", 10, campNow.Add(-time.Hour)},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			s := newCampaignSvc(t, &fakeRepoManager{campaigns: newFakeCampaigns(), listings: listings}, "")
			_, err := s.CreateCampaign(context.Background(), "alice", "l1", tc.title, tc.budget, tc.end)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestUpdateCampaignStatus(t *testing.T) {
	newSvc := func(t *testing.T) (*CampaignService, *fakeCampaigns) {
		camps := newFakeCampaigns()
		camps.byID["c1"] = &models.Campaign{ID: "c1", UserID: "alice", Status: geo.StatusActive}
		return newCampaignSvc(t, &fakeRepoManager{campaigns: camps}, ""), camps
	}

	t.Run("owner pauses", func(t *testing.T) {
		s, camps := newSvc(t)
		c, err := s.UpdateCampaignStatus(context.Background(), "alice", "c1", geo.StatusPaused)
		require.NoError(t, err)
		assert.Equal(t, geo.StatusPaused, c.Status)
		assert.Equal(t, campNow, c.UpdatedAt)
		assert.Equal(t, geo.StatusPaused, camps.statuses["c1"])
	})

	t.Run("admin completes", func(t *testing.T) {
		s, camps := newSvc(t)
		_, err := s.UpdateCampaignStatus(context.Background(), "root", "c1", geo.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, geo.StatusCompleted, camps.statuses["c1"])
	})

	t.Run("stranger", func(t *testing.T) {
		s, camps := newSvc(t)
		_, err := s.UpdateCampaignStatus(context.Background(), "bob", "c1", geo.StatusPaused)
		assert.ErrorIs(t, err, common.ErrorForbidden)
		assert.Empty(t, camps.statuses)
	})

	t.Run("unknown status", func(t *testing.T) {
		s, _ := newSvc(t)
		_, err := s.UpdateCampaignStatus(context.Background(), "alice", "c1", "archived")
		assert.ErrorIs(t, err, common.ErrorValidation)
	})

	t.Run("missing", func(t *testing.T) {
		s, _ := newSvc(t)
		_, err := s.UpdateCampaignStatus(context.Background(), "alice", "nope", geo.StatusPaused)
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestListCampaigns(t *testing.T) {
	camps := newFakeCampaigns()
	camps.byUser = []*models.Campaign{{ID: "c2"}, {ID: "c1"}}
	s := newCampaignSvc(t, &fakeRepoManager{campaigns: camps}, "")

	got, err := s.ListCampaigns(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, camps.byUser, got)
}
