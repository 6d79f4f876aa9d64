package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	artistDomain "github.com/TuaBBL/beatbookingslive/internal/modules/artist/domain"
	authDomain "github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/onboarding/domain"
	profileDomain "github.com/TuaBBL/beatbookingslive/internal/modules/profile/domain"
	subDomain "github.com/TuaBBL/beatbookingslive/internal/modules/subscription/domain"
)

// ErrOrphanedIdentity means the token is valid but the account row is gone.
// It is fatal for the session; every other guard failure is not.
var ErrOrphanedIdentity = errors.New("account no longer exists")

// StateCache remembers the last verdict per user for a short window. It
// absorbs bursts of guard checks and supplies the prior state when a fresh
// read fails.
type StateCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.State, error)
	Set(ctx context.Context, userID uuid.UUID, state *domain.State) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type GuardService struct {
	users    authDomain.UserFinder
	subs     subDomain.SubscriptionFinder
	cards    artistDomain.CardFinder
	profiles profileDomain.ProfileFinder
	cache    StateCache
	logger   *slog.Logger
}

func NewGuardService(users authDomain.UserFinder, subs subDomain.SubscriptionFinder, cards artistDomain.CardFinder, profiles profileDomain.ProfileFinder, cache StateCache, logger *slog.Logger) *GuardService {
	return &GuardService{
		users:    users,
		subs:     subs,
		cards:    cards,
		profiles: profiles,
		cache:    cache,
		logger:   logger,
	}
}

// Check runs the completion guard for the user. path is the route the
// client is on; it only matters for redirect loop prevention on the
// create-artist page.
//
// A missing account row is fatal (ErrOrphanedIdentity). Any other read
// failure is swallowed: the prior cached verdict is returned when one
// exists, otherwise the zero state. Showing onboarding again is safe;
// false-granting access is not.
func (s *GuardService) Check(ctx context.Context, userID uuid.UUID, path string) (*domain.State, error) {
	if cached, err := s.cache.Get(ctx, userID); err == nil && cached != nil {
		return cached, nil
	}

	snap, err := s.fetchSnapshot(ctx, userID, path)
	if err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			return nil, ErrOrphanedIdentity
		}
		s.logger.Error("guard check failed, keeping prior state", "user_id", userID, "error", err)
		return s.priorState(ctx, userID), nil
	}

	state := domain.Evaluate(*snap)
	if err := s.cache.Set(ctx, userID, &state); err != nil {
		s.logger.Warn("failed to cache guard state", "user_id", userID, "error", err)
	}
	return &state, nil
}

// Refresh busts the cached verdict and re-runs the check.
func (s *GuardService) Refresh(ctx context.Context, userID uuid.UUID, path string) (*domain.State, error) {
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.logger.Warn("failed to bust guard cache", "user_id", userID, "error", err)
	}
	return s.Check(ctx, userID, path)
}

func (s *GuardService) fetchSnapshot(ctx context.Context, userID uuid.UUID, path string) (*domain.Snapshot, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{
		User:               user,
		OnCreateArtistPath: isCreateArtistPath(path),
	}

	if user.Role == authDomain.RoleArtist {
		if snap.Subscription, err = s.subs.GetByUserID(ctx, userID); err != nil {
			return nil, err
		}
		if snap.Card, err = s.cards.GetByUserID(ctx, userID); err != nil {
			return nil, err
		}
		return snap, nil
	}

	if snap.Profile, err = s.profiles.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *GuardService) priorState(ctx context.Context, userID uuid.UUID) *domain.State {
	if cached, err := s.cache.Get(ctx, userID); err == nil && cached != nil {
		return cached
	}
	return &domain.State{}
}

func isCreateArtistPath(path string) bool {
	return strings.HasPrefix(path, "/create-artist")
}
