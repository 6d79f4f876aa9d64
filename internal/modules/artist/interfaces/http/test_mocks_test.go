package http_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/TuaBBL/beatbookingslive/internal/modules/artist/domain"
	authDomain "github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	profileDomain "github.com/TuaBBL/beatbookingslive/internal/modules/profile/domain"
)

type cardRepoMock struct{ mock.Mock }

func (m *cardRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Card, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *cardRepoMock) Save(ctx context.Context, card *domain.Card, artistProfile *domain.ArtistProfile) (bool, error) {
	args := m.Called(ctx, card, artistProfile)
	return args.Bool(0), args.Error(1)
}

func (m *cardRepoMock) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.ArtistProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArtistProfile), args.Error(1)
}

type profileFinderMock struct{ mock.Mock }

func (m *profileFinderMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*profileDomain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profileDomain.Profile), args.Error(1)
}

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
