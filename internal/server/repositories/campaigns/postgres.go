// Package campaigns provides PostgreSQL-backed storage for ad campaigns
// and the sponsored-candidate queries built on them.
package campaigns

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/dbx"
	"github.com/dmitrijs2005/citylifes/internal/geo"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
	"github.com/dmitrijs2005/citylifes/internal/server/repositories/listings"
)

// PostgresRepository implements campaign storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const campaignColumns = `c.id, c.user_id, c.listing_id, c.title, c.status, c.budget::float8, c.spent::float8,
	c.impressions, c.clicks, c.start_date, c.end_date, c.created_at, c.updated_at`

const candidateColumns = `l.id, l.owner_id, l.title, l.listing_type, l.city, l.area, l.pin_code,
	l.latitude, l.longitude, l.created_at, ` + campaignColumns

func campaignDest(c *models.Campaign, budget *sql.NullFloat64, start, end *sql.NullTime) []any {
	return []any{
		&c.ID, &c.UserID, &c.ListingID, &c.Title, &c.Status, budget, &c.Spent,
		&c.Impressions, &c.Clicks, start, end, &c.CreatedAt, &c.UpdatedAt,
	}
}

func applyNullable(c *models.Campaign, budget sql.NullFloat64, start, end sql.NullTime) {
	if budget.Valid {
		c.Budget = &budget.Float64
	}
	if start.Valid {
		t := start.Time
		c.StartDate = &t
	}
	if end.Valid {
		t := end.Time
		c.EndDate = &t
	}
}

func scanCampaign(s interface{ Scan(...any) error }) (*models.Campaign, error) {
	var (
		c          models.Campaign
		budget     sql.NullFloat64
		start, end sql.NullTime
	)
	if err := s.Scan(campaignDest(&c, &budget, &start, &end)...); err != nil {
		return nil, err
	}
	applyNullable(&c, budget, start, end)
	return &c, nil
}

func scanCandidate(s interface{ Scan(...any) error }) (*models.Candidate, error) {
	var (
		c          models.Campaign
		budget     sql.NullFloat64
		start, end sql.NullTime
	)
	l, err := listings.ScanListing(s, campaignDest(&c, &budget, &start, &end)...)
	if err != nil {
		return nil, err
	}
	applyNullable(&c, budget, start, end)
	return &models.Candidate{Listing: *l, Campaign: c}, nil
}

// Create inserts a campaign. ID and timestamps must be set by the caller.
func (r *PostgresRepository) Create(ctx context.Context, c *models.Campaign) error {
	query := `
		INSERT INTO ad_campaigns (id, user_id, listing_id, title, status, budget, spent, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.UserID, c.ListingID, c.Title, string(c.Status), c.Budget, c.Spent,
		c.StartDate, c.EndDate, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns a campaign, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM ad_campaigns c WHERE c.id = $1`

	c, err := scanCampaign(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

// GetCandidate returns a campaign joined with its listing, or
// common.ErrorNotFound.
func (r *PostgresRepository) GetCandidate(ctx context.Context, campaignID string) (*models.Candidate, error) {
	query := `
		SELECT ` + candidateColumns + `
		FROM ad_campaigns c JOIN listings l ON l.id = c.listing_id
		WHERE c.id = $1
	`
	c, err := scanCandidate(r.db.QueryRowContext(ctx, query, campaignID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

// SelectCandidates returns active campaigns with budget left that run at
// q.At, joined with their listings and narrowed by q. Eligibility and
// location are re-checked by the caller.
func (r *PostgresRepository) SelectCandidates(ctx context.Context, q CandidateQuery) ([]*models.Candidate, error) {
	var (
		sb   strings.Builder
		args []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	sb.WriteString(`
		SELECT ` + candidateColumns + `
		FROM ad_campaigns c JOIN listings l ON l.id = c.listing_id
		WHERE c.status = 'active' AND c.budget IS NOT NULL AND c.spent < c.budget`)

	if !q.At.IsZero() {
		at := arg(q.At)
		fmt.Fprintf(&sb, `
		  AND c.start_date <= %[1]s AND c.end_date >= %[1]s`, at)
	}

	for _, f := range []struct{ column, value string }{
		{"l.city", q.City}, {"l.area", q.Area}, {"l.pin_code", q.PinCode},
	} {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		fmt.Fprintf(&sb, `
		  AND lower(btrim(%s)) = lower(btrim(%s))`, f.column, arg(f.value))
	}

	if q.Box != nil {
		fmt.Fprintf(&sb, `
		  AND l.latitude BETWEEN %s AND %s AND l.longitude BETWEEN %s AND %s`,
			arg(q.Box.MinLat), arg(q.Box.MaxLat), arg(q.Box.MinLng), arg(q.Box.MaxLng))
	}

	if q.Near != nil {
		fmt.Fprintf(&sb, `
		ORDER BY (l.latitude - %s)^2 + ((l.longitude - %s) * %s)^2, c.created_at DESC`,
			arg(q.Near.Lat), arg(q.Near.Lng), arg(geo.LngScale(q.Near.Lat)))
	} else {
		sb.WriteString(`
		ORDER BY c.created_at DESC`)
	}

	if q.Limit > 0 {
		fmt.Fprintf(&sb, `
		LIMIT %s`, arg(q.Limit))
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select candidates: %w", err)
	}
	defer rows.Close()

	var result []*models.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SelectByUser returns the user's campaigns, newest first.
func (r *PostgresRepository) SelectByUser(ctx context.Context, userID string) ([]*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM ad_campaigns c WHERE c.user_id = $1 ORDER BY c.created_at DESC, c.id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select campaigns: %w", err)
	}
	defer rows.Close()

	var result []*models.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) IncrementImpressions(ctx context.Context, id string) error {
	return r.execOne(ctx, `UPDATE ad_campaigns SET impressions = impressions + 1 WHERE id = $1`, id)
}

func (r *PostgresRepository) IncrementClicks(ctx context.Context, id string) error {
	return r.execOne(ctx, `UPDATE ad_campaigns SET clicks = clicks + 1 WHERE id = $1`, id)
}

// UpdateStatus sets the campaign status and touches updated_at.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status geo.CampaignStatus, at time.Time) error {
	return r.execOne(ctx, `UPDATE ad_campaigns SET status = $2, updated_at = $3 WHERE id = $1`, id, string(status), at)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
