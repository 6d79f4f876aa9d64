package domain

import "errors"

var (
	// ErrBaseProfileIncomplete blocks the artist flow until the user's
	// base profile has full name, location and state/territory.
	ErrBaseProfileIncomplete = errors.New("please complete your user profile before creating an artist profile")
	ErrInvalidCost           = errors.New("cost must be a number")
	ErrInvalidCostType       = errors.New("cost type must be per_hour or per_event")
	ErrNotAnArtist           = errors.New("only artist accounts have an artist card")
)
