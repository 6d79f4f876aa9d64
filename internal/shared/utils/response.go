package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body returned for every failed request.
// Fields carries the machine-readable keys of invalid form fields so
// clients can re-style the matching inputs; it is empty for non-validation
// failures.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details string   `json:"details,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error body. err may be nil.
func WriteError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	WriteJSON(w, status, resp)
}

// WriteFieldError writes a validation error body carrying the invalid
// field keys alongside the aggregated human-readable message.
func WriteFieldError(w http.ResponseWriter, status int, message string, fields []string) {
	WriteJSON(w, status, ErrorResponse{Error: message, Fields: fields})
}
