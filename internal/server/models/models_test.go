package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/citylifes/internal/geo"
)

func TestMessage_Counterpart(t *testing.T) {
	m := &Message{SenderID: "a", ReceiverID: "b"}
	assert.Equal(t, "b", m.Counterpart("a"))
	assert.Equal(t, "a", m.Counterpart("b"))
}

func TestListing_Location(t *testing.T) {
	lat, lng := 12.9, 77.6

	assert.Nil(t, (&Listing{}).Location())
	assert.Nil(t, (&Listing{Latitude: &lat}).Location())
	assert.Equal(t, &geo.Point{Lat: lat, Lng: lng}, (&Listing{Latitude: &lat, Longitude: &lng}).Location())
}

func TestCandidate_Geo(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	start, end := now.Add(-time.Hour), now.Add(time.Hour)
	budget := 500.0

	c := &Candidate{
		Listing: Listing{ID: "l1", City: "Pune", Area: "Baner", PinCode: "411045"},
		Campaign: Campaign{
			ID: "c1", Status: geo.StatusActive, Budget: &budget, Spent: 20,
			StartDate: &start, EndDate: &end, CreatedAt: now,
		},
	}

	g := c.Geo()
	require.NotNil(t, g.Campaign)
	assert.Equal(t, "411045", g.PostalCode)
	assert.Nil(t, g.Location)
	assert.Equal(t, 20.0, *g.Campaign.Spent)
	assert.True(t, geo.CampaignEligible(g, now))

	c.Campaign.Budget = nil
	assert.False(t, geo.CampaignEligible(c.Geo(), now))
}
