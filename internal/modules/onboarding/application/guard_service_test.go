package application

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	artistDomain "github.com/TuaBBL/beatbookingslive/internal/modules/artist/domain"
	authDomain "github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/onboarding/domain"
	profileDomain "github.com/TuaBBL/beatbookingslive/internal/modules/profile/domain"
	subDomain "github.com/TuaBBL/beatbookingslive/internal/modules/subscription/domain"
)

type userFinderMock struct{ mock.Mock }

func (m *userFinderMock) GetByID(ctx context.Context, id uuid.UUID) (*authDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

func (m *userFinderMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type subFinderMock struct{ mock.Mock }

func (m *subFinderMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*subDomain.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subDomain.Subscription), args.Error(1)
}

type cardFinderMock struct{ mock.Mock }

func (m *cardFinderMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*artistDomain.Card, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*artistDomain.Card), args.Error(1)
}

type profileFinderMock struct{ mock.Mock }

func (m *profileFinderMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*profileDomain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profileDomain.Profile), args.Error(1)
}

type stateCacheMock struct{ mock.Mock }

func (m *stateCacheMock) Get(ctx context.Context, userID uuid.UUID) (*domain.State, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.State), args.Error(1)
}

func (m *stateCacheMock) Set(ctx context.Context, userID uuid.UUID, state *domain.State) error {
	args := m.Called(ctx, userID, state)
	return args.Error(0)
}

func (m *stateCacheMock) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type guardFixture struct {
	users    *userFinderMock
	subs     *subFinderMock
	cards    *cardFinderMock
	profiles *profileFinderMock
	cache    *stateCacheMock
	svc      *GuardService
}

func newGuardFixture() *guardFixture {
	f := &guardFixture{
		users:    new(userFinderMock),
		subs:     new(subFinderMock),
		cards:    new(cardFinderMock),
		profiles: new(profileFinderMock),
		cache:    new(stateCacheMock),
	}
	f.svc = NewGuardService(f.users, f.subs, f.cards, f.profiles, f.cache, slog.Default())
	return f
}

func artistUser(id uuid.UUID) *authDomain.User {
	return &authDomain.User{ID: id, Email: "artist@example.com", Role: authDomain.RoleArtist}
}

func completeCard(userID uuid.UUID) *artistDomain.Card {
	phone := "0400000000"
	return &artistDomain.Card{
		UserID:           userID,
		Name:             "Alex",
		StageName:        "DJ Alex",
		Category:         "DJ",
		Genre:            "House",
		Phone:            &phone,
		Locations:        pq.StringArray{"Sydney, Australia"},
		StateTerritories: pq.StringArray{"New South Wales"},
	}
}

func TestGuardService_Check_CacheHitShortCircuits(t *testing.T) {
	f := newGuardFixture()
	ctx := context.Background()
	userID := uuid.New()

	cached := &domain.State{IsArtist: true}
	f.cache.On("Get", ctx, userID).Return(cached, nil).Once()

	state, err := f.svc.Check(ctx, userID, "/")
	require.NoError(t, err)
	assert.Same(t, cached, state)
	f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGuardService_Check_OrphanedIdentity(t *testing.T) {
	f := newGuardFixture()
	ctx := context.Background()
	userID := uuid.New()

	f.cache.On("Get", ctx, userID).Return(nil, nil)
	f.users.On("GetByID", ctx, userID).Return(nil, authDomain.ErrUserNotFound)

	_, err := f.svc.Check(ctx, userID, "/")
	assert.ErrorIs(t, err, ErrOrphanedIdentity)
}

func TestGuardService_Check_ReadFailureReturnsPriorState(t *testing.T) {
	f := newGuardFixture()
	ctx := context.Background()
	userID := uuid.New()

	prior := &domain.State{NeedsSubscription: true}
	// First Get is the fast path (miss), second is the prior-state lookup.
	f.cache.On("Get", ctx, userID).Return(nil, nil).Once()
	f.cache.On("Get", ctx, userID).Return(prior, nil).Once()
	f.users.On("GetByID", ctx, userID).Return(nil, errors.New("connection refused"))

	state, err := f.svc.Check(ctx, userID, "/")
	require.NoError(t, err)
	assert.Same(t, prior, state)
}

func TestGuardService_Check_ReadFailureWithoutCacheReturnsZeroState(t *testing.T) {
	f := newGuardFixture()
	ctx := context.Background()
	userID := uuid.New()

	f.cache.On("Get", ctx, userID).Return(nil, nil)
	f.users.On("GetByID", ctx, userID).Return(nil, errors.New("connection refused"))

	state, err := f.svc.Check(ctx, userID, "/")
	require.NoError(t, err)
	assert.Equal(t, &domain.State{}, state)
}

func TestGuardService_Check_ArtistEvaluatesAndCaches(t *testing.T) {
	f := newGuardFixture()
	ctx := context.Background()
	userID := uuid.New()

	f.cache.On("Get", ctx, userID).Return(nil, nil)
	f.users.On("GetByID", ctx, userID).Return(artistUser(userID), nil)
	f.subs.On("GetByUserID", ctx, userID).Return(&subDomain.Subscription{Status: subDomain.StatusActive}, nil)
	f.cards.On("GetByUserID", ctx, userID).Return(completeCard(userID), nil)

	var cachedState *domain.State
	f.cache.On("Set", ctx, userID, mock.AnythingOfType("*domain.State")).
		Run(func(args mock.Arguments) { cachedState = args.Get(2).(*domain.State) }).
		Return(nil)

	state, err := f.svc.Check(ctx, userID, "/")
	require.NoError(t, err)
	assert.True(t, state.IsArtist)
	assert.Equal(t, state, cachedState)
	f.profiles.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestGuardService_Check_CacheWriteFailureIsNotFatal(t *testing.T) {
	f := newGuardFixture()
	ctx := context.Background()
	userID := uuid.New()

	f.cache.On("Get", ctx, userID).Return(nil, nil)
	f.users.On("GetByID", ctx, userID).Return(artistUser(userID), nil)
	f.subs.On("GetByUserID", ctx, userID).Return(nil, nil)
	f.cards.On("GetByUserID", ctx, userID).Return(nil, nil)
	f.cache.On("Set", ctx, userID, mock.Anything).Return(errors.New("redis down"))

	state, err := f.svc.Check(ctx, userID, "/")
	require.NoError(t, err)
	assert.True(t, state.NeedsSubscription)
}

func TestGuardService_Check_CreateArtistPathSuppressesRedirect(t *testing.T) {
	f := newGuardFixture()
	ctx := context.Background()
	userID := uuid.New()

	f.cache.On("Get", ctx, userID).Return(nil, nil)
	f.users.On("GetByID", ctx, userID).Return(artistUser(userID), nil)
	f.subs.On("GetByUserID", ctx, userID).Return(&subDomain.Subscription{Status: subDomain.StatusActive}, nil)
	f.cards.On("GetByUserID", ctx, userID).Return(nil, nil)
	f.cache.On("Set", ctx, userID, mock.Anything).Return(nil)

	state, err := f.svc.Check(ctx, userID, "/create-artist")
	require.NoError(t, err)
	assert.True(t, state.NeedsProfile)
	assert.False(t, state.RedirectToCreateArtist)
}

func TestGuardService_Refresh_BustsCacheFirst(t *testing.T) {
	f := newGuardFixture()
	ctx := context.Background()
	userID := uuid.New()

	f.cache.On("Delete", ctx, userID).Return(nil).Once()
	f.cache.On("Get", ctx, userID).Return(nil, nil)
	f.users.On("GetByID", ctx, userID).Return(
		&authDomain.User{ID: userID, Email: "client@example.com", Role: authDomain.RoleClient}, nil)
	f.profiles.On("GetByUserID", ctx, userID).Return(nil, nil)
	f.cache.On("Set", ctx, userID, mock.Anything).Return(nil)

	state, err := f.svc.Refresh(ctx, userID, "/")
	require.NoError(t, err)
	assert.True(t, state.ShowCreateUserProfile)
	f.cache.AssertCalled(t, "Delete", ctx, userID)
}
