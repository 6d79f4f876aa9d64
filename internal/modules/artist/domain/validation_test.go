package domain

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSubmission_ListsEveryMissingField(t *testing.T) {
	verr := ValidateSubmission("", "", "", "", "", "", nil, nil)
	require.NotNil(t, verr)

	assert.ElementsMatch(t, []string{
		FieldName, FieldStageName, FieldGenre, FieldAbout,
		FieldImageURL, FieldPhone, FieldLocations, FieldStateTerritories,
	}, verr.Fields)

	msg := verr.Error()
	assert.Contains(t, msg, "Please fill in the following required fields:")
	assert.Contains(t, msg, "Full Name")
	assert.Contains(t, msg, "Stage Name")
	assert.Contains(t, msg, "Main Profile Image")
	assert.Contains(t, msg, "At least one Location")
	assert.Contains(t, msg, "At least one State/Territory")
}

func TestValidateSubmission_CategoryNotRequired(t *testing.T) {
	verr := ValidateSubmission("Alex", "DJ Alex", "House", "Bio", "http://img", "0400",
		[]string{"Sydney, Australia"}, []string{"New South Wales"})
	assert.Nil(t, verr)
}

func TestValidateSubmission_WhitespaceOnlyIsMissing(t *testing.T) {
	verr := ValidateSubmission("  ", "DJ Alex", "House", "Bio", "http://img", "0400",
		[]string{"Sydney, Australia"}, []string{"New South Wales"})
	require.NotNil(t, verr)
	assert.Equal(t, []string{FieldName}, verr.Fields)
}

func TestFilterBlank(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, FilterBlank([]string{"a", "", "  ", "b"}))
	assert.Empty(t, FilterBlank([]string{"", "   "}))
}

func TestNormalizeSlots(t *testing.T) {
	assert.Equal(t, []string{""}, NormalizeSlots(nil))
	assert.Equal(t, []string{""}, NormalizeSlots([]string{}))
	assert.Equal(t, []string{"x"}, NormalizeSlots([]string{"x"}))
}

func TestRemoveSlot(t *testing.T) {
	t.Run("removing the last entry keeps one blank row", func(t *testing.T) {
		assert.Equal(t, []string{""}, RemoveSlot([]string{"only"}, 0))
	})

	t.Run("removes middle entry", func(t *testing.T) {
		assert.Equal(t, []string{"a", "c"}, RemoveSlot([]string{"a", "b", "c"}, 1))
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		values := []string{"a", "b"}
		assert.Equal(t, values, RemoveSlot(values, -1))
		assert.Equal(t, values, RemoveSlot(values, 2))
	})
}

func TestCardIsComplete(t *testing.T) {
	phone := "0400000000"
	card := &Card{
		Name:             "Alex",
		StageName:        "DJ Alex",
		Category:         "DJ",
		Genre:            "House",
		Phone:            &phone,
		Locations:        pq.StringArray{"Sydney, Australia"},
		StateTerritories: pq.StringArray{"New South Wales"},
	}
	assert.True(t, card.IsComplete())

	t.Run("nil card", func(t *testing.T) {
		var nilCard *Card
		assert.False(t, nilCard.IsComplete())
	})

	t.Run("each missing field fails", func(t *testing.T) {
		for name, mutate := range map[string]func(*Card){
			"name":              func(c *Card) { c.Name = "" },
			"stage_name":        func(c *Card) { c.StageName = "" },
			"category":          func(c *Card) { c.Category = "" },
			"genre":             func(c *Card) { c.Genre = "" },
			"phone nil":         func(c *Card) { c.Phone = nil },
			"phone empty":       func(c *Card) { empty := ""; c.Phone = &empty },
			"locations":         func(c *Card) { c.Locations = nil },
			"state_territories": func(c *Card) { c.StateTerritories = nil },
		} {
			c := *card
			mutate(&c)
			assert.False(t, c.IsComplete(), name)
		}
	})
}
