package client

import (
	"context"

	"github.com/dmitrijs2005/citylifes/internal/client/models"
	"github.com/dmitrijs2005/citylifes/internal/geo"
)

// Client is the marketplace API as seen by the CLI.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	SendMessage(ctx context.Context, receiverID, content string, listingID *string) (*models.Message, error)
	Conversation(ctx context.Context, counterpartID string, limit int) ([]models.Message, error)
	Conversations(ctx context.Context) ([]models.Conversation, error)
	MarkRead(ctx context.Context, counterpartID string) (int64, error)
	EditMessage(ctx context.Context, messageID, content string) (*models.Message, error)
	DeleteMessage(ctx context.Context, messageID string) error

	Sponsored(ctx context.Context, filter geo.FilterSpec) ([]models.SponsoredListing, error)
	RecordImpression(ctx context.Context, campaignID string) (bool, error)
	RecordClick(ctx context.Context, campaignID string) (bool, error)
	CreateCampaign(ctx context.Context, c *models.NewCampaign) (*models.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID, status string) (*models.Campaign, error)
	Campaigns(ctx context.Context) ([]models.Campaign, error)

	ReverseGeocode(ctx context.Context, lat, lng float64) (*geo.GeocodeResult, error)
	Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyListing, error)
	CheckAdmin(ctx context.Context) (*models.AdminStatus, error)
	ImageUploadURL(ctx context.Context, listingID string) (*models.UploadURL, error)
}
