package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func eligibleCampaign() *Campaign {
	return &Campaign{
		ID:        "c1",
		Status:    StatusActive,
		Start:     ptr(now.Add(-24 * time.Hour)),
		End:       ptr(now.Add(24 * time.Hour)),
		Budget:    ptr(1000.0),
		Spent:     ptr(250.0),
		CreatedAt: now.Add(-48 * time.Hour),
	}
}

func TestCampaignEligible(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Campaign)
		want   bool
	}{
		{name: "eligible", mutate: func(*Campaign) {}, want: true},
		{name: "paused", mutate: func(c *Campaign) { c.Status = StatusPaused }},
		{name: "completed", mutate: func(c *Campaign) { c.Status = StatusCompleted }},
		{name: "no status", mutate: func(c *Campaign) { c.Status = "" }},
		{name: "not started", mutate: func(c *Campaign) { c.Start = ptr(now.Add(time.Minute)) }},
		{name: "ended", mutate: func(c *Campaign) { c.End = ptr(now.Add(-time.Minute)) }},
		{name: "starts now", mutate: func(c *Campaign) { c.Start = ptr(now) }, want: true},
		{name: "ends now", mutate: func(c *Campaign) { c.End = ptr(now) }, want: true},
		{name: "budget exhausted", mutate: func(c *Campaign) { c.Spent = ptr(1000.0) }},
		{name: "overspent", mutate: func(c *Campaign) { c.Spent = ptr(1000.5) }},
		{name: "missing budget", mutate: func(c *Campaign) { c.Budget = nil }},
		{name: "missing end", mutate: func(c *Campaign) { c.End = nil }},
		{name: "missing start", mutate: func(c *Campaign) { c.Start = nil }},
		{name: "missing spent", mutate: func(c *Campaign) { c.Spent = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := eligibleCampaign()
			tt.mutate(c)
			assert.Equal(t, tt.want, CampaignEligible(Listing{ID: "l1", Campaign: c}, now))
		})
	}
}

func TestCampaignEligible_FailClosedOnMissingBudgetOrEnd(t *testing.T) {
	// generous values elsewhere never compensate for a missing field
	for _, c := range []*Campaign{
		{Status: StatusActive, Start: ptr(now.Add(-time.Hour)), End: ptr(now.Add(time.Hour)), Spent: ptr(0.0)},
		{Status: StatusActive, Start: ptr(now.Add(-time.Hour)), Budget: ptr(1e9), Spent: ptr(0.0)},
	} {
		assert.False(t, CampaignEligible(Listing{Campaign: c}, now))
	}
}

func TestCampaignEligible_NotSponsored(t *testing.T) {
	l := Listing{ID: "organic"}
	assert.False(t, l.Sponsored())
	assert.False(t, CampaignEligible(l, now))
}

func TestCampaignStatus_Valid(t *testing.T) {
	assert.True(t, StatusActive.Valid())
	assert.True(t, StatusPaused.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, CampaignStatus("archived").Valid())
}
