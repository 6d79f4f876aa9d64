package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleArtist UserRole = "artist"
	RoleClient UserRole = "client"
)

// User is an account row. Besides the credentials it mirrors the profile
// columns of the profiles table; the profile module keeps the two in sync
// inside a single transaction.
type User struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Email            string    `json:"email" db:"email"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	FullName         *string   `json:"full_name" db:"full_name"`
	Location         *string   `json:"location" db:"location"`
	StateTerritory   *string   `json:"state_territory" db:"state_territory"`
	PhoneNumber      *string   `json:"phone_number" db:"phone_number"`
	ProfileImageURL  *string   `json:"profile_image_url" db:"profile_image_url"`
	ProfileCompleted bool      `json:"profile_completed" db:"profile_completed"`
	Role             UserRole  `json:"role" db:"role"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

type UserRepository interface {
	// Create inserts the users row and seeds the matching empty
	// profiles row in one transaction.
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// UserFinder exposes account lookups to other modules (onboarding, profile)
type UserFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
