package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TuaBBL/beatbookingslive/internal/shared/utils"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, utils.IsValidEmail("alex@example.com"))
	assert.True(t, utils.IsValidEmail("alex.smith+tag@sub.example.co"))
	assert.False(t, utils.IsValidEmail("alex"))
	assert.False(t, utils.IsValidEmail("alex@"))
	assert.False(t, utils.IsValidEmail("@example.com"))
	assert.False(t, utils.IsValidEmail("alex@example"))
}

func TestTrimOrNil(t *testing.T) {
	assert.Nil(t, utils.TrimOrNil(""))
	assert.Nil(t, utils.TrimOrNil("   "))

	got := utils.TrimOrNil("  Sydney  ")
	assert.NotNil(t, got)
	assert.Equal(t, "Sydney", *got)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", utils.Deref(nil))
	s := "x"
	assert.Equal(t, "x", utils.Deref(&s))
}
