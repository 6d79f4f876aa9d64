package domain

import "errors"

var (
	ErrAlreadySubscribed   = errors.New("subscription is already active")
	ErrNoPendingCheckout   = errors.New("no pending checkout for this user")
	ErrOrderMismatch       = errors.New("order does not belong to this checkout")
	ErrInvalidSignature    = errors.New("invalid payment signature")
	ErrSubscriptionMissing = errors.New("subscription not found")
)
