package domain

import "strings"

// Cities is the static autocomplete table. It mirrors the curated list the
// booking site has always shipped; the heavy Australia/NZ weighting is
// intentional for the current market.
var Cities = []string{
	"London, UK", "Manchester, UK", "Birmingham, UK", "Leeds, UK", "Glasgow, UK", "Liverpool, UK", "Newcastle, UK", "Sheffield, UK", "Bristol, UK", "Edinburgh, UK",
	"New York, USA", "Los Angeles, USA", "Chicago, USA", "Houston, USA", "Miami, USA", "San Francisco, USA", "Seattle, USA", "Boston, USA", "Austin, USA", "Denver, USA",
	"Toronto, Canada", "Vancouver, Canada", "Montreal, Canada", "Calgary, Canada",
	"Sydney, Australia", "Melbourne, Australia", "Brisbane, Australia", "Perth, Australia", "Adelaide, Australia", "Gold Coast, Australia", "Canberra, Australia", "Newcastle, Australia", "Wollongong, Australia", "Sunshine Coast, Australia", "Hobart, Australia", "Geelong, Australia", "Townsville, Australia", "Cairns, Australia", "Darwin, Australia", "Toowoomba, Australia", "Ballarat, Australia", "Bendigo, Australia", "Albury, Australia", "Launceston, Australia", "Mackay, Australia", "Rockhampton, Australia", "Bunbury, Australia", "Bundaberg, Australia", "Wagga Wagga, Australia", "Hervey Bay, Australia", "Mildura, Australia", "Shepparton, Australia", "Port Macquarie, Australia", "Gladstone, Australia", "Tamworth, Australia", "Karratha, Australia",
	"Auckland, New Zealand", "Wellington, New Zealand", "Christchurch, New Zealand", "Hamilton, New Zealand", "Tauranga, New Zealand", "Dunedin, New Zealand", "Palmerston North, New Zealand", "Napier, New Zealand", "Nelson, New Zealand", "Rotorua, New Zealand", "New Plymouth, New Zealand", "Whangarei, New Zealand", "Invercargill, New Zealand", "Whanganui, New Zealand", "Gisborne, New Zealand", "Queenstown, New Zealand", "Timaru, New Zealand",
	"Berlin, Germany", "Munich, Germany", "Hamburg, Germany", "Frankfurt, Germany",
	"Paris, France", "Lyon, France", "Marseille, France",
	"Amsterdam, Netherlands", "Rotterdam, Netherlands",
	"Barcelona, Spain", "Madrid, Spain", "Valencia, Spain",
	"Rome, Italy", "Milan, Italy", "Naples, Italy",
	"Dublin, Ireland", "Cork, Ireland",
	"Copenhagen, Denmark", "Stockholm, Sweden", "Oslo, Norway", "Helsinki, Finland",
	"Brussels, Belgium", "Zurich, Switzerland", "Vienna, Austria",
	"Prague, Czech Republic", "Warsaw, Poland", "Budapest, Hungary",
	"Lisbon, Portugal", "Athens, Greece", "Istanbul, Turkey",
	"Dubai, UAE", "Singapore", "Hong Kong", "Tokyo, Japan", "Seoul, South Korea",
	"Mumbai, India", "Delhi, India", "Bangalore, India",
	"São Paulo, Brazil", "Rio de Janeiro, Brazil", "Buenos Aires, Argentina",
	"Mexico City, Mexico", "Cape Town, South Africa", "Johannesburg, South Africa",
}

// StateTerritories is the state selector's option list.
var StateTerritories = []string{
	"New South Wales",
	"Victoria",
	"Queensland",
	"Western Australia",
	"South Australia",
	"Tasmania",
	"Australian Capital Territory",
	"Northern Territory",
}

// MaxSuggestions caps a single autocomplete response.
const MaxSuggestions = 10

// MinQueryLength is the autocomplete gate; shorter inputs return nothing.
const MinQueryLength = 2

// SuggestCities returns up to MaxSuggestions case-insensitive substring
// matches, skipping cities the caller has already selected.
func SuggestCities(query string, exclude []string) []string {
	query = strings.TrimSpace(query)
	if len(query) < MinQueryLength {
		return []string{}
	}

	selected := make(map[string]struct{}, len(exclude))
	for _, city := range exclude {
		selected[city] = struct{}{}
	}

	q := strings.ToLower(query)
	matches := []string{}
	for _, city := range Cities {
		if !strings.Contains(strings.ToLower(city), q) {
			continue
		}
		if _, ok := selected[city]; ok {
			continue
		}
		matches = append(matches, city)
		if len(matches) == MaxSuggestions {
			break
		}
	}
	return matches
}
