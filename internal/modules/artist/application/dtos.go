package application

// SubmitCardRequest carries the artist-card form. Cost is free text: ""
// serializes to a NULL cost and NULL cost_type regardless of the selected
// type.
type SubmitCardRequest struct {
	Name             string   `json:"name"`
	StageName        string   `json:"stage_name"`
	Category         string   `json:"category"`
	Genre            string   `json:"genre"`
	About            string   `json:"about"`
	Phone            string   `json:"phone"`
	Cost             string   `json:"cost"`
	CostType         string   `json:"cost_type"`
	ImageURL         string   `json:"image_url"`
	Locations        []string `json:"locations"`
	StateTerritories []string `json:"state_territories"`
	AdditionalImages []string `json:"additional_images"`
	VideoURLs        []string `json:"video_urls"`
	YoutubeLink      string   `json:"youtube_link"`
	InstagramLink    string   `json:"instagram_link"`
	FacebookLink     string   `json:"facebook_link"`
	SoundcloudLink   string   `json:"soundcloud_link"`
	MixcloudLink     string   `json:"mixcloud_link"`
	SpotifyLink      string   `json:"spotify_link"`
	TiktokLink       string   `json:"tiktok_link"`
}

// CardDraft is the prefilled form state returned on open. For an existing
// card it mirrors the card; otherwise it is seeded from the user's base
// profile. Slot lists always contain at least one entry so the form shows
// an input row.
type CardDraft struct {
	ExistingCardID   *int64   `json:"existing_card_id"`
	Name             string   `json:"name"`
	StageName        string   `json:"stage_name"`
	Category         string   `json:"category"`
	Genre            string   `json:"genre"`
	About            string   `json:"about"`
	Phone            string   `json:"phone"`
	Cost             string   `json:"cost"`
	CostType         string   `json:"cost_type"`
	ImageURL         string   `json:"image_url"`
	Locations        []string `json:"locations"`
	StateTerritories []string `json:"state_territories"`
	AdditionalImages []string `json:"additional_images"`
	VideoURLs        []string `json:"video_urls"`
	YoutubeLink      string   `json:"youtube_link"`
	InstagramLink    string   `json:"instagram_link"`
	FacebookLink     string   `json:"facebook_link"`
	SoundcloudLink   string   `json:"soundcloud_link"`
	MixcloudLink     string   `json:"mixcloud_link"`
	SpotifyLink      string   `json:"spotify_link"`
	TiktokLink       string   `json:"tiktok_link"`
	Email            string   `json:"email"`
}

// Submission outcomes: a create sends the artist to the subscribe flow,
// an update marks the onboarding step complete.
const (
	NextSubscribe = "subscribe"
	NextComplete  = "complete"
)

// SubmitResult reports the saved card and which flow the client should
// continue with.
type SubmitResult struct {
	Created bool   `json:"created"`
	Next    string `json:"next"`
	CardID  int64  `json:"card_id"`
}
