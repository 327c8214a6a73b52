package listings

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/geo"
)

var columns = []string{"id", "owner_id", "title", "listing_type", "city", "area", "pin_code", "latitude", "longitude", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, owner_id, .* FROM listings WHERE id = \$1`).
		WithArgs("l1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("l1", "u1", "2BHK flat", "property", "Pune", "Baner", "411045", 18.56, 73.78, at))

	l, err := repo.GetByID(context.Background(), "l1")
	require.NoError(t, err)
	assert.Equal(t, "u1", l.OwnerID)
	require.NotNil(t, l.Location())
	assert.Equal(t, geo.Point{Lat: 18.56, Lng: 73.78}, *l.Location())
}

func TestGetByID_NoCoordinates(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM listings WHERE id`).
		WithArgs("l2").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("l2", "u1", "Shop", "business", "Pune", "", "", nil, nil, time.Now()))

	l, err := repo.GetByID(context.Background(), "l2")
	require.NoError(t, err)
	assert.Nil(t, l.Latitude)
	assert.Nil(t, l.Location())
}

func TestGetByID_Errors(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM listings`).WithArgs("x").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`FROM listings`).WithArgs("y").WillReturnError(errors.New("boom"))

	_, err := repo.GetByID(context.Background(), "x")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.GetByID(context.Background(), "y")
	assert.ErrorContains(t, err, "boom")
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestSelectNearest(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	box := geo.Box{MinLat: 12, MaxLat: 13, MinLng: 77, MaxLng: 78}
	center := geo.Point{Lat: 12.5, Lng: 77.5}

	mock.ExpectQuery(`(?s)FROM listings\s+WHERE latitude BETWEEN \$1 AND \$2 AND longitude BETWEEN \$3 AND \$4\s+` +
		`ORDER BY \(latitude - \$5\)\^2 \+ \(\(longitude - \$6\) \* \$7\)\^2, id\s+LIMIT \$8`).
		WithArgs(12.0, 13.0, 77.0, 78.0, 12.5, 77.5, geo.LngScale(12.5), 100).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("a", "u1", "A", "property", "Bengaluru", "", "", 12.5, 77.5, time.Now()).
			AddRow("b", "u2", "B", "vehicle", "Bengaluru", "", "", 12.6, 77.6, time.Now()))

	got, err := repo.SelectNearest(context.Background(), center, box, 100)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "vehicle", got[1].ListingType)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectNearest_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM listings`).WillReturnError(errors.New("down"))

	_, err := repo.SelectNearest(context.Background(), geo.Point{}, geo.Box{}, 1)
	assert.ErrorContains(t, err, "failed to select listings")
}
