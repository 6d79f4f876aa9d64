package domain

import (
	artistDomain "github.com/TuaBBL/beatbookingslive/internal/modules/artist/domain"
	authDomain "github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	profileDomain "github.com/TuaBBL/beatbookingslive/internal/modules/profile/domain"
	subDomain "github.com/TuaBBL/beatbookingslive/internal/modules/subscription/domain"
)

// Snapshot is everything the guard looks at, fetched fresh per check.
// Nil fields mean the record does not exist.
type Snapshot struct {
	User               *authDomain.User        `json:"user"`
	Subscription       *subDomain.Subscription `json:"subscription"`
	Card               *artistDomain.Card      `json:"card"`
	Profile            *profileDomain.Profile  `json:"profile"`
	OnCreateArtistPath bool                    `json:"on_create_artist_path"`
}

// State is the guard's verdict, recomputed from scratch on every check
// rather than patched incrementally.
type State struct {
	NeedsSubscription      bool                   `json:"needs_subscription"`
	NeedsProfile           bool                   `json:"needs_profile"`
	ShowCreateUserProfile  bool                   `json:"show_create_user_profile"`
	UserProfile            *profileDomain.Profile `json:"user_profile,omitempty"`
	IsArtist               bool                   `json:"is_artist"`
	RedirectToCreateArtist bool                   `json:"redirect_to_create_artist"`
}

// Evaluate is the completion guard's decision function. It is pure: the
// verdict depends only on the snapshot.
//
// For artists the subscription gate comes before the card gate, so an
// unsubscribed artist is sent to checkout even with a complete card. The
// card completeness set includes category while submit validation does
// not; both behaviors are long-standing and kept as is.
func Evaluate(snap Snapshot) State {
	if snap.User == nil {
		return State{}
	}

	if snap.User.Role == authDomain.RoleArtist {
		// IsArtist follows the role, not onboarding progress; every
		// artist branch reports it.
		if !snap.Subscription.Active() {
			return State{NeedsSubscription: true, IsArtist: true}
		}
		if !snap.Card.IsComplete() {
			return State{
				NeedsProfile:           true,
				IsArtist:               true,
				RedirectToCreateArtist: !snap.OnCreateArtistPath,
			}
		}
		return State{IsArtist: true}
	}

	if snap.Profile == nil {
		return State{ShowCreateUserProfile: true}
	}
	if !snap.Profile.IsComplete() {
		return State{ShowCreateUserProfile: true, UserProfile: snap.Profile}
	}
	return State{UserProfile: snap.Profile}
}
