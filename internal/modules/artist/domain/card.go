package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CostType string

const (
	CostPerHour  CostType = "per_hour"
	CostPerEvent CostType = "per_event"
)

const (
	AvailabilityAvailable = "available"
)

// Card is the artist's public listing. Exactly one card exists per user;
// a loaded id decides between insert and update on submit.
type Card struct {
	ID               int64          `json:"id" db:"id"`
	UserID           uuid.UUID      `json:"user_id" db:"user_id"`
	Name             string         `json:"name" db:"name"`
	StageName        string         `json:"stage_name" db:"stage_name"`
	Category         string         `json:"category" db:"category"`
	Genre            string         `json:"genre" db:"genre"`
	Location         string         `json:"location" db:"location"`
	Locations        pq.StringArray `json:"locations" db:"locations"`
	StateTerritories pq.StringArray `json:"state_territories" db:"state_territories"`
	About            string         `json:"about" db:"about"`
	Cost             *float64       `json:"cost" db:"cost"`
	CostType         *string        `json:"cost_type" db:"cost_type"`
	ImageURL         string         `json:"image_url" db:"image_url"`
	AdditionalImages pq.StringArray `json:"additional_images" db:"additional_images"`
	VideoURLs        pq.StringArray `json:"video_urls" db:"video_urls"`
	YoutubeLink      string         `json:"youtube_link" db:"youtube_link"`
	InstagramLink    string         `json:"instagram_link" db:"instagram_link"`
	FacebookLink     string         `json:"facebook_link" db:"facebook_link"`
	SoundcloudLink   string         `json:"soundcloud_link" db:"soundcloud_link"`
	MixcloudLink     string         `json:"mixcloud_link" db:"mixcloud_link"`
	SpotifyLink      string         `json:"spotify_link" db:"spotify_link"`
	TiktokLink       string         `json:"tiktok_link" db:"tiktok_link"`
	Availability     string         `json:"availability" db:"availability"`
	Rating           float64        `json:"rating" db:"rating"`
	Email            string         `json:"email" db:"email"`
	Phone            *string        `json:"phone" db:"phone"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// IsComplete reports whether the card satisfies the onboarding guard's
// completeness set. Note this set includes category while the submit
// validation does not; the divergence is deliberate and matches the
// product behavior.
func (c *Card) IsComplete() bool {
	return c != nil &&
		c.Name != "" &&
		c.StageName != "" &&
		c.Category != "" &&
		c.Genre != "" &&
		c.Phone != nil && *c.Phone != "" &&
		len(c.Locations) > 0 &&
		len(c.StateTerritories) > 0
}

// ArtistProfile is the secondary per-user record linked to the card,
// upserted on user_id on every successful card submit.
type ArtistProfile struct {
	ID               int64     `json:"id" db:"id"`
	UserID           uuid.UUID `json:"user_id" db:"user_id"`
	ArtistCardID     int64     `json:"artist_card_id" db:"artist_card_id"`
	Email            string    `json:"email" db:"email"`
	Phone            *string   `json:"phone" db:"phone"`
	ProfileCompleted bool      `json:"profile_completed" db:"profile_completed"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

type CardRepository interface {
	// GetByUserID returns nil, nil when the user has no card
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Card, error)
	// Save inserts or updates the card (decided by card.ID) and upserts
	// the linked artist profile, all in one transaction. It reports
	// whether a new card was created.
	Save(ctx context.Context, card *Card, artistProfile *ArtistProfile) (bool, error)
	// GetProfileByUserID returns nil, nil when no artist profile exists
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*ArtistProfile, error)
}

// CardFinder exposes card lookups to the onboarding module
type CardFinder interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Card, error)
}
