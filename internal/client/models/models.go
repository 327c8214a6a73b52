// Package models defines the client-side view of marketplace data, as
// printed by the CLI.
package models

import (
	"time"

	"github.com/dmitrijs2005/citylifes/internal/geo"
)

// Message is a chat message with its body in plaintext. Unavailable marks
// a body that could not be decrypted; Content then holds a placeholder.
type Message struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"sender_id"`
	ReceiverID  string     `json:"receiver_id"`
	ListingID   *string    `json:"listing_id,omitempty"`
	Content     string     `json:"content"`
	CreatedAt   time.Time  `json:"created_at"`
	Read        bool       `json:"read"`
	Edited      bool       `json:"edited"`
	EditedAt    *time.Time `json:"edited_at,omitempty"`
	Unavailable bool       `json:"unavailable,omitempty"`
}

type Conversation struct {
	CounterpartID string  `json:"counterpart_id"`
	LastMessage   Message `json:"last_message"`
	UnreadCount   int     `json:"unread_count"`
}

type Listing struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	ListingType string    `json:"listing_type"`
	City        string    `json:"city,omitempty"`
	Area        string    `json:"area,omitempty"`
	PinCode     string    `json:"pin_code,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type SponsoredListing struct {
	Listing       Listing  `json:"listing"`
	CampaignID    string   `json:"campaign_id"`
	DistanceKm    *float64 `json:"distance_km,omitempty"`
	DistanceLabel string   `json:"distance_label,omitempty"`
}

type NearbyListing struct {
	Listing       Listing `json:"listing"`
	DistanceKm    float64 `json:"distance_km"`
	DistanceLabel string  `json:"distance_label"`
}

type Campaign struct {
	ID          string     `json:"id"`
	ListingID   string     `json:"listing_id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Budget      *float64   `json:"budget,omitempty"`
	Spent       float64    `json:"spent"`
	Impressions int64      `json:"impressions"`
	Clicks      int64      `json:"clicks"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewCampaign is what a seller submits to start promoting a listing.
type NewCampaign struct {
	ListingID string    `json:"listing_id"`
	Title     string    `json:"title"`
	Budget    float64   `json:"budget"`
	EndDate   time.Time `json:"end_date"`
}

// EventResult reports whether an impression or click was counted.
type EventResult struct {
	Counted bool `json:"counted"`
}

// GeocodeLookup carries Found=false when no provider could resolve the
// coordinates.
type GeocodeLookup struct {
	Found   bool               `json:"found"`
	Address *geo.GeocodeResult `json:"address,omitempty"`
}

type AdminStatus struct {
	IsAdmin bool `json:"is_admin"`
	// Source names the role lookup that answered, empty if none did.
	Source string `json:"source,omitempty"`
}

type UploadURL struct {
	StorageKey string    `json:"storage_key"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}
