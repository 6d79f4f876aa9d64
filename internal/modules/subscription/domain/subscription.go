package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Subscription is the artist's paid plan. One row per user; checkout
// upserts a pending row and a verified payment activates it.
type Subscription struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	UserID            uuid.UUID  `json:"user_id" db:"user_id"`
	Status            Status     `json:"status" db:"status"`
	IsFreeForever     bool       `json:"is_free_forever" db:"is_free_forever"`
	RazorpayOrderID   *string    `json:"razorpay_order_id,omitempty" db:"razorpay_order_id"`
	RazorpayPaymentID *string    `json:"razorpay_payment_id,omitempty" db:"razorpay_payment_id"`
	Amount            int        `json:"amount" db:"amount"`
	Currency          string     `json:"currency" db:"currency"`
	ActivatedAt       *time.Time `json:"activated_at,omitempty" db:"activated_at"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// Active reports whether the subscription satisfies the onboarding guard.
// A free-forever grant counts as active regardless of status.
func (s *Subscription) Active() bool {
	return s != nil && (s.Status == StatusActive || s.IsFreeForever)
}

type SubscriptionRepository interface {
	// GetByUserID returns nil, nil when the user has no subscription row
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Subscription, error)
	// CreatePending upserts the user's row back to pending with a fresh
	// checkout order id
	CreatePending(ctx context.Context, sub *Subscription) error
	// Activate marks the user's subscription active and records the payment
	Activate(ctx context.Context, userID uuid.UUID, razorpayPaymentID string) error
}

// SubscriptionFinder exposes subscription lookups to the onboarding module
type SubscriptionFinder interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Subscription, error)
}
