package geo

import (
	geo_http "github.com/TuaBBL/beatbookingslive/internal/modules/geo/interfaces/http"
)

// Module represents the Geo module. It is a static lookup service and has
// no persistence.
type Module struct {
	handler *geo_http.GeoHandler
}

// NewModule creates and initializes the Geo module
func NewModule() *Module {
	return &Module{handler: geo_http.NewGeoHandler()}
}

// HTTPHandler returns the HTTP handler for the geo module
func (m *Module) HTTPHandler() *geo_http.GeoHandler {
	return m.handler
}
