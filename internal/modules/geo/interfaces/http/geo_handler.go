package http

import (
	"net/http"
	"strings"

	"github.com/TuaBBL/beatbookingslive/internal/modules/geo/domain"
	"github.com/TuaBBL/beatbookingslive/internal/shared/utils"
)

type GeoHandler struct{}

func NewGeoHandler() *GeoHandler {
	return &GeoHandler{}
}

// Cities handles GET /geo/cities?q=&exclude=. exclude is a comma-separated
// list of already-selected cities.
func (h *GeoHandler) Cities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var exclude []string
	if raw := r.URL.Query().Get("exclude"); raw != "" {
		exclude = strings.Split(raw, ",")
	}

	utils.WriteJSON(w, http.StatusOK, map[string][]string{
		"cities": domain.SuggestCities(query, exclude),
	})
}

// States handles GET /geo/states
func (h *GeoHandler) States(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string][]string{
		"states": domain.StateTerritories,
	})
}
