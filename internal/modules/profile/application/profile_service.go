package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/TuaBBL/beatbookingslive/internal/modules/profile/domain"
	"github.com/TuaBBL/beatbookingslive/internal/shared/utils"
)

var ErrProfileNotFound = errors.New("profile not found")

// UpdateProfileRequest carries the edit-profile form fields. All text is
// trimmed before the write; empty results are stored as NULL.
type UpdateProfileRequest struct {
	FullName        string  `json:"full_name"`
	Location        string  `json:"location"`
	StateTerritory  string  `json:"state_territory"`
	PhoneNumber     string  `json:"phone_number"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

type ProfileService struct {
	repo domain.ProfileRepository
}

func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the user's profile snapshot
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Update trims every text field, recomputes the profile_completed flag
// from the trimmed required fields, and writes both the profiles row and
// its users mirror atomically.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*domain.Profile, error) {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProfileNotFound
	}

	existing.FullName = utils.TrimOrNil(req.FullName)
	existing.Location = utils.TrimOrNil(req.Location)
	existing.StateTerritory = utils.TrimOrNil(req.StateTerritory)
	existing.PhoneNumber = utils.TrimOrNil(req.PhoneNumber)
	if req.ProfileImageURL != nil {
		existing.ProfileImageURL = utils.TrimOrNil(*req.ProfileImageURL)
	}
	existing.ProfileCompleted = existing.HasRequiredFields()

	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// SetAvatar stores a new avatar URL without touching the other fields
func (s *ProfileService) SetAvatar(ctx context.Context, userID uuid.UUID, url string) (*domain.Profile, error) {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProfileNotFound
	}

	existing.ProfileImageURL = &url
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
