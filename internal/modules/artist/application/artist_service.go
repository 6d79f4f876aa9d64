package application

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/TuaBBL/beatbookingslive/internal/modules/artist/domain"
	authDomain "github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	profileDomain "github.com/TuaBBL/beatbookingslive/internal/modules/profile/domain"
	"github.com/TuaBBL/beatbookingslive/internal/shared/utils"
)

// Notifier pushes onboarding events to the user after a successful save.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, eventType, message string) error
}

type ArtistService struct {
	cards    domain.CardRepository
	profiles profileDomain.ProfileFinder
	users    authDomain.UserFinder
	notifier Notifier
}

func NewArtistService(cards domain.CardRepository, profiles profileDomain.ProfileFinder, users authDomain.UserFinder, notifier Notifier) *ArtistService {
	return &ArtistService{cards: cards, profiles: profiles, users: users, notifier: notifier}
}

// GetDraft loads the prefilled form state for a user. The base profile
// must have full name, location and state/territory; that precondition is
// hard and is never auto-corrected here.
func (s *ArtistService) GetDraft(ctx context.Context, userID uuid.UUID) (*CardDraft, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	email := user.Email

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasRequiredFields() {
		return nil, domain.ErrBaseProfileIncomplete
	}

	card, err := s.cards.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	draft := &CardDraft{Email: email}
	if card != nil {
		draft.ExistingCardID = &card.ID
		draft.Name = card.Name
		draft.StageName = card.StageName
		draft.Category = card.Category
		draft.Genre = card.Genre
		draft.About = card.About
		draft.Phone = utils.Deref(card.Phone)
		if card.Cost != nil {
			draft.Cost = strconv.FormatFloat(*card.Cost, 'f', -1, 64)
		}
		draft.CostType = utils.Deref(card.CostType)
		draft.ImageURL = card.ImageURL
		draft.Locations = card.Locations
		draft.StateTerritories = card.StateTerritories
		draft.AdditionalImages = domain.NormalizeSlots(card.AdditionalImages)
		draft.VideoURLs = domain.NormalizeSlots(card.VideoURLs)
		draft.YoutubeLink = card.YoutubeLink
		draft.InstagramLink = card.InstagramLink
		draft.FacebookLink = card.FacebookLink
		draft.SoundcloudLink = card.SoundcloudLink
		draft.MixcloudLink = card.MixcloudLink
		draft.SpotifyLink = card.SpotifyLink
		draft.TiktokLink = card.TiktokLink
	} else {
		draft.Name = utils.Deref(profile.FullName)
		draft.Phone = utils.Deref(profile.PhoneNumber)
		draft.ImageURL = utils.Deref(profile.ProfileImageURL)
		if loc := utils.Deref(profile.Location); loc != "" {
			draft.Locations = []string{loc}
		}
		if st := utils.Deref(profile.StateTerritory); st != "" {
			draft.StateTerritories = []string{st}
		}
		draft.AdditionalImages = domain.NormalizeSlots(nil)
		draft.VideoURLs = domain.NormalizeSlots(nil)
	}

	// A previously saved artist profile's phone overrides the draft's
	if artistProfile, err := s.cards.GetProfileByUserID(ctx, userID); err != nil {
		return nil, err
	} else if artistProfile != nil && artistProfile.Phone != nil && *artistProfile.Phone != "" {
		draft.Phone = *artistProfile.Phone
	}

	return draft, nil
}

// Submit validates and persists the card plus its linked artist profile.
// Validation failures abort before any write; on success the card write
// and profile upsert happen in one transaction.
func (s *ArtistService) Submit(ctx context.Context, userID uuid.UUID, req SubmitCardRequest) (*SubmitResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	email := user.Email

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasRequiredFields() {
		return nil, domain.ErrBaseProfileIncomplete
	}

	if verr := domain.ValidateSubmission(req.Name, req.StageName, req.Genre, req.About, req.ImageURL, req.Phone,
		req.Locations, req.StateTerritories); verr != nil {
		return nil, verr
	}

	cost, costType, err := parseCost(req.Cost, req.CostType)
	if err != nil {
		return nil, err
	}

	existing, err := s.cards.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	card := &domain.Card{
		UserID:           userID,
		Name:             req.Name,
		StageName:        req.StageName,
		Category:         req.Category,
		Genre:            req.Genre,
		Location:         req.Locations[0],
		Locations:        req.Locations,
		StateTerritories: req.StateTerritories,
		About:            req.About,
		Cost:             cost,
		CostType:         costType,
		ImageURL:         req.ImageURL,
		AdditionalImages: domain.FilterBlank(req.AdditionalImages),
		VideoURLs:        domain.FilterBlank(req.VideoURLs),
		YoutubeLink:      req.YoutubeLink,
		InstagramLink:    req.InstagramLink,
		FacebookLink:     req.FacebookLink,
		SoundcloudLink:   req.SoundcloudLink,
		MixcloudLink:     req.MixcloudLink,
		SpotifyLink:      req.SpotifyLink,
		TiktokLink:       req.TiktokLink,
		Availability:     domain.AvailabilityAvailable,
		Email:            email,
		Phone:            utils.TrimOrNil(req.Phone),
	}
	if existing != nil {
		card.ID = existing.ID
		card.Rating = existing.Rating
		card.CreatedAt = existing.CreatedAt
	}

	artistProfile := &domain.ArtistProfile{
		UserID:           userID,
		Email:            email,
		Phone:            utils.TrimOrNil(req.Phone),
		ProfileCompleted: true,
	}

	created, err := s.cards.Save(ctx, card, artistProfile)
	if err != nil {
		return nil, err
	}

	next := NextComplete
	if s.notifier != nil {
		// The card is already saved; a lost notification is acceptable
		if created {
			_ = s.notifier.Notify(ctx, userID, "artist_card_created", "Your artist profile is live")
		} else {
			_ = s.notifier.Notify(ctx, userID, "artist_card_updated", "Your artist profile was updated")
		}
	}
	if created {
		next = NextSubscribe
	}
	return &SubmitResult{Created: created, Next: next, CardID: card.ID}, nil
}

// parseCost turns the cost text into a nullable numeric value. The cost
// type is only kept when a numeric cost was also given.
func parseCost(costText, costType string) (*float64, *string, error) {
	costText = strings.TrimSpace(costText)
	if costText == "" {
		return nil, nil, nil
	}

	value, err := strconv.ParseFloat(costText, 64)
	if err != nil {
		return nil, nil, domain.ErrInvalidCost
	}

	if costType == "" {
		return &value, nil, nil
	}
	ct := domain.CostType(costType)
	if ct != domain.CostPerHour && ct != domain.CostPerEvent {
		return nil, nil, domain.ErrInvalidCostType
	}
	return &value, &costType, nil
}
