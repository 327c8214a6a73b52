package listings

import (
	"context"

	"github.com/dmitrijs2005/citylifes/internal/geo"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	SelectNearest(ctx context.Context, center geo.Point, box geo.Box, limit int) ([]*models.Listing, error)
}
