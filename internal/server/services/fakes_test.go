package services

import (
	"cmp"
	"context"
	"database/sql"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/dbx"
	"github.com/dmitrijs2005/citylifes/internal/geo"
	"github.com/dmitrijs2005/citylifes/internal/server/events"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
	campaignsrepo "github.com/dmitrijs2005/citylifes/internal/server/repositories/campaigns"
	listingsrepo "github.com/dmitrijs2005/citylifes/internal/server/repositories/listings"
	messagesrepo "github.com/dmitrijs2005/citylifes/internal/server/repositories/messages"
	rolesrepo "github.com/dmitrijs2005/citylifes/internal/server/repositories/roles"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ptr[T any](v T) *T { return &v }

type fakeRepoManager struct {
	messages  *fakeMessages
	listings  *fakeListings
	campaigns *fakeCampaigns
	roles     *fakeRoles
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Messages(dbx.DBTX) messagesrepo.Repository    { return m.messages }
func (m *fakeRepoManager) Listings(dbx.DBTX) listingsrepo.Repository    { return m.listings }
func (m *fakeRepoManager) Campaigns(dbx.DBTX) campaignsrepo.Repository  { return m.campaigns }
func (m *fakeRepoManager) Roles(dbx.DBTX) rolesrepo.Repository          { return m.roles }

// --- messages ---

type fakeMessages struct {
	messagesrepo.Repository

	byID         map[string]*models.Message
	created      []*models.Message
	conversation []*models.Message
	summaries    []*models.ConversationSummary

	gotLimit   int
	gotMarkArg [2]string
	marked     int64
	updated    map[string]string
	deleted    []string

	createErr error
	selectErr error
}

func newFakeMessages(ms ...*models.Message) *fakeMessages {
	f := &fakeMessages{byID: map[string]*models.Message{}, updated: map[string]string{}}
	for _, m := range ms {
		f.byID[m.ID] = m
	}
	return f
}

func (f *fakeMessages) Create(_ context.Context, m *models.Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMessages) GetByID(_ context.Context, id string) (*models.Message, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMessages) SelectConversation(_ context.Context, _, _ string, limit int) ([]*models.Message, error) {
	f.gotLimit = limit
	return f.conversation, f.selectErr
}

func (f *fakeMessages) SelectSummaries(context.Context, string) ([]*models.ConversationSummary, error) {
	return f.summaries, f.selectErr
}

func (f *fakeMessages) MarkRead(_ context.Context, receiverID, senderID string) (int64, error) {
	f.gotMarkArg = [2]string{receiverID, senderID}
	return f.marked, nil
}

func (f *fakeMessages) UpdateContent(_ context.Context, id, _ string, content string, _ time.Time) error {
	f.updated[id] = content
	return nil
}

func (f *fakeMessages) SoftDelete(_ context.Context, id, _ string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePublisher struct {
	mu  sync.Mutex
	got []events.MessageEvent
	err error
}

func (p *fakePublisher) PublishMessage(_ context.Context, ev events.MessageEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, ev)
	return p.err
}

// --- listings ---

type fakeListings struct {
	listingsrepo.Repository

	byID      map[string]*models.Listing
	inBox     []*models.Listing
	gotCenter geo.Point
	gotBox    geo.Box
	gotLim    int
	selErr    error
	// likeSQL makes SelectNearest filter, order and limit inBox.
	likeSQL bool
}

func (f *fakeListings) GetByID(_ context.Context, id string) (*models.Listing, error) {
	l, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return l, nil
}

func (f *fakeListings) SelectNearest(_ context.Context, center geo.Point, box geo.Box, limit int) ([]*models.Listing, error) {
	f.gotCenter, f.gotBox, f.gotLim = center, box, limit
	if f.selErr != nil || !f.likeSQL {
		return f.inBox, f.selErr
	}

	var out []*models.Listing
	for _, l := range f.inBox {
		if p := l.Location(); p != nil && box.Contains(*p) {
			out = append(out, l)
		}
	}
	slices.SortStableFunc(out, func(a, b *models.Listing) int {
		if c := cmp.Compare(geo.ApproxDistanceSq(center, *a.Location()), geo.ApproxDistanceSq(center, *b.Location())); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- campaigns ---

type fakeCampaigns struct {
	campaignsrepo.Repository

	byID        map[string]*models.Campaign
	candidates  []*models.Candidate
	gotQuery    campaignsrepo.CandidateQuery
	created     []*models.Campaign
	impressions map[string]int
	clicks      map[string]int
	statuses    map[string]geo.CampaignStatus
	byUser      []*models.Campaign
	selErr      error
	likeSQL     bool
}

func newFakeCampaigns() *fakeCampaigns {
	return &fakeCampaigns{
		byID:        map[string]*models.Campaign{},
		impressions: map[string]int{},
		clicks:      map[string]int{},
		statuses:    map[string]geo.CampaignStatus{},
	}
}

func (f *fakeCampaigns) Create(_ context.Context, c *models.Campaign) error {
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCampaigns) GetByID(_ context.Context, id string) (*models.Campaign, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCampaigns) GetCandidate(_ context.Context, id string) (*models.Candidate, error) {
	for _, c := range f.candidates {
		if c.Campaign.ID == id {
			return c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeCampaigns) SelectCandidates(_ context.Context, q campaignsrepo.CandidateQuery) ([]*models.Candidate, error) {
	f.gotQuery = q
	if f.selErr != nil || !f.likeSQL {
		return f.candidates, f.selErr
	}
	return f.query(q), nil
}

// query narrows, orders and limits candidates the way the Postgres query
// does.
func (f *fakeCampaigns) query(q campaignsrepo.CandidateQuery) []*models.Candidate {
	var out []*models.Candidate
	for _, c := range f.candidates {
		cp := c.Campaign
		if cp.Status != geo.StatusActive || cp.Budget == nil || cp.Spent >= *cp.Budget {
			continue
		}
		if !q.At.IsZero() && (cp.StartDate == nil || cp.EndDate == nil ||
			cp.StartDate.After(q.At) || cp.EndDate.Before(q.At)) {
			continue
		}
		if !sameColumn(c.Listing.City, q.City) || !sameColumn(c.Listing.Area, q.Area) ||
			!sameColumn(c.Listing.PinCode, q.PinCode) {
			continue
		}
		if q.Box != nil {
			if p := c.Listing.Location(); p == nil || !q.Box.Contains(*p) {
				continue
			}
		}
		out = append(out, c)
	}

	slices.SortStableFunc(out, func(a, b *models.Candidate) int {
		if q.Near != nil {
			da := geo.ApproxDistanceSq(*q.Near, *a.Listing.Location())
			db := geo.ApproxDistanceSq(*q.Near, *b.Listing.Location())
			if c := cmp.Compare(da, db); c != 0 {
				return c
			}
		}
		return b.Campaign.CreatedAt.Compare(a.Campaign.CreatedAt)
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func sameColumn(column, want string) bool {
	want = strings.TrimSpace(want)
	return want == "" || strings.EqualFold(strings.TrimSpace(column), want)
}

func (f *fakeCampaigns) SelectByUser(context.Context, string) ([]*models.Campaign, error) {
	return f.byUser, f.selErr
}

func (f *fakeCampaigns) IncrementImpressions(_ context.Context, id string) error {
	f.impressions[id]++
	return nil
}

func (f *fakeCampaigns) IncrementClicks(_ context.Context, id string) error {
	f.clicks[id]++
	return nil
}

func (f *fakeCampaigns) UpdateStatus(_ context.Context, id string, status geo.CampaignStatus, _ time.Time) error {
	f.statuses[id] = status
	return nil
}

// --- roles ---

type fakeRoles struct {
	rolesrepo.Repository

	hasRole    *bool
	hasRoleErr error
	found      string
	findErr    error
	primary    string
	primaryErr error

	calls []string
}

func (f *fakeRoles) HasRole(context.Context, string, string) (*bool, error) {
	f.calls = append(f.calls, "has_role")
	return f.hasRole, f.hasRoleErr
}

func (f *fakeRoles) FindRole(context.Context, string, string) (string, error) {
	f.calls = append(f.calls, "user_roles")
	return f.found, f.findErr
}

func (f *fakeRoles) PrimaryRole(context.Context, string) (string, error) {
	f.calls = append(f.calls, "get_user_role")
	return f.primary, f.primaryErr
}
