package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile is a row of the profiles table. The same columns are mirrored on
// the users table; Save keeps both sides consistent.
type Profile struct {
	ID               uuid.UUID `json:"id" db:"id"`
	FullName         *string   `json:"full_name" db:"full_name"`
	Location         *string   `json:"location" db:"location"`
	StateTerritory   *string   `json:"state_territory" db:"state_territory"`
	PhoneNumber      *string   `json:"phone_number" db:"phone_number"`
	ProfileImageURL  *string   `json:"profile_image_url" db:"profile_image_url"`
	ProfileCompleted bool      `json:"profile_completed" db:"profile_completed"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// HasRequiredFields reports whether name, location and state/territory are
// all present. This is the precondition the artist flow checks before
// letting a user build a card.
func (p *Profile) HasRequiredFields() bool {
	return p != nil &&
		p.FullName != nil && *p.FullName != "" &&
		p.Location != nil && *p.Location != "" &&
		p.StateTerritory != nil && *p.StateTerritory != ""
}

// IsComplete reports full completeness: required fields AND the
// profile_completed flag. The flag is tracked independently and wins when
// they disagree.
func (p *Profile) IsComplete() bool {
	return p.HasRequiredFields() && p.ProfileCompleted
}

type ProfileRepository interface {
	// GetByUserID returns nil, nil when no profile row exists
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	// Save writes the profile row and the mirrored users columns in one
	// transaction.
	Save(ctx context.Context, profile *Profile) error
}

// ProfileFinder exposes profile reads to other modules (artist, onboarding)
type ProfileFinder interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
}
