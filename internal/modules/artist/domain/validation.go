package domain

import (
	"fmt"
	"strings"
)

// Machine keys for the submit form's fields; the client uses them to
// re-style the matching inputs and focus the first invalid one.
const (
	FieldName             = "name"
	FieldStageName        = "stage_name"
	FieldGenre            = "genre"
	FieldAbout            = "about"
	FieldImageURL         = "image_url"
	FieldPhone            = "phone"
	FieldLocations        = "locations"
	FieldStateTerritories = "state_territories"
)

// fieldLabels maps machine keys to the human-readable names used in the
// aggregated error message.
var fieldLabels = map[string]string{
	FieldName:             "Full Name",
	FieldStageName:        "Stage Name",
	FieldGenre:            "Genre",
	FieldAbout:            "About",
	FieldImageURL:         "Main Profile Image",
	FieldPhone:            "Phone Number",
	FieldLocations:        "At least one Location",
	FieldStateTerritories: "At least one State/Territory",
}

// ValidationError lists every missing required field of a card submission.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	labels := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if label, ok := fieldLabels[f]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, f)
		}
	}
	return fmt.Sprintf("Please fill in the following required fields: %s", strings.Join(labels, ", "))
}

// ValidateSubmission checks the submit-time required set. Category is not
// required here even though the guard's completeness set includes it.
func ValidateSubmission(name, stageName, genre, about, imageURL, phone string, locations, states []string) *ValidationError {
	var missing []string
	if strings.TrimSpace(name) == "" {
		missing = append(missing, FieldName)
	}
	if strings.TrimSpace(stageName) == "" {
		missing = append(missing, FieldStageName)
	}
	if strings.TrimSpace(genre) == "" {
		missing = append(missing, FieldGenre)
	}
	if strings.TrimSpace(about) == "" {
		missing = append(missing, FieldAbout)
	}
	if strings.TrimSpace(imageURL) == "" {
		missing = append(missing, FieldImageURL)
	}
	if strings.TrimSpace(phone) == "" {
		missing = append(missing, FieldPhone)
	}
	if len(locations) == 0 {
		missing = append(missing, FieldLocations)
	}
	if len(states) == 0 {
		missing = append(missing, FieldStateTerritories)
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// FilterBlank drops empty and whitespace-only entries from a list field
// before it is written.
func FilterBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// NormalizeSlots pads a dynamic list field for a draft: the form always
// shows at least one input row, so an empty list becomes a single blank
// entry.
func NormalizeSlots(values []string) []string {
	if len(values) == 0 {
		return []string{""}
	}
	return values
}

// RemoveSlot drops the entry at index, keeping one blank entry when the
// last row is removed. Out-of-range indexes leave the list unchanged.
func RemoveSlot(values []string, index int) []string {
	if index < 0 || index >= len(values) {
		return values
	}
	out := append(append([]string{}, values[:index]...), values[index+1:]...)
	return NormalizeSlots(out)
}
