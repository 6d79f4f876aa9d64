package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TuaBBL/beatbookingslive/internal/modules/profile/domain"
)

type profileRepoMock struct{ mock.Mock }

func (m *profileRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *profileRepoMock) Save(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	repo := new(profileRepoMock)
	s := NewProfileService(repo)
	ctx := context.Background()
	userID := uuid.New()

	repo.On("GetByUserID", ctx, userID).Return(nil, nil)

	_, err := s.Get(ctx, userID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_Update_TrimsAndRecomputesFlag(t *testing.T) {
	repo := new(profileRepoMock)
	s := NewProfileService(repo)
	ctx := context.Background()
	userID := uuid.New()

	repo.On("GetByUserID", ctx, userID).Return(&domain.Profile{ID: userID}, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil)

	profile, err := s.Update(ctx, userID, UpdateProfileRequest{
		FullName:       "  Alex Smith  ",
		Location:       "Sydney, Australia",
		StateTerritory: "New South Wales",
		PhoneNumber:    "   ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex Smith", *profile.FullName)
	assert.Nil(t, profile.PhoneNumber)
	assert.True(t, profile.ProfileCompleted)
}

func TestProfileService_Update_IncompleteClearsFlag(t *testing.T) {
	repo := new(profileRepoMock)
	s := NewProfileService(repo)
	ctx := context.Background()
	userID := uuid.New()

	completed := true
	existing := &domain.Profile{ID: userID, ProfileCompleted: completed}
	repo.On("GetByUserID", ctx, userID).Return(existing, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil)

	profile, err := s.Update(ctx, userID, UpdateProfileRequest{
		FullName: "Alex Smith",
		// location and state left blank
	})
	require.NoError(t, err)
	assert.False(t, profile.ProfileCompleted)
}

func TestProfileService_SetAvatar(t *testing.T) {
	repo := new(profileRepoMock)
	s := NewProfileService(repo)
	ctx := context.Background()
	userID := uuid.New()

	name := "Alex"
	repo.On("GetByUserID", ctx, userID).Return(&domain.Profile{ID: userID, FullName: &name}, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil)

	profile, err := s.SetAvatar(ctx, userID, "http://cdn/profile.jpg")
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/profile.jpg", *profile.ProfileImageURL)
	assert.Equal(t, "Alex", *profile.FullName)
}
