package utils_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TuaBBL/beatbookingslive/internal/shared/utils"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteJSON(rec, 201, map[string]string{"id": "abc"})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"abc"}`, rec.Body.String())
}

func TestWriteError_OmitsEmptyDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteError(rec, 500, "internal error", nil)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal error", resp["error"])
	assert.NotContains(t, resp, "details")
	assert.NotContains(t, resp, "fields")
}

func TestWriteError_IncludesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteError(rec, 400, "bad request", errors.New("cost must be a number"))

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bad request", resp.Error)
	assert.Equal(t, "cost must be a number", resp.Details)
}

func TestWriteFieldError(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteFieldError(rec, 422, "missing required fields", []string{"stage_name", "locations"})

	assert.Equal(t, 422, rec.Code)
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"stage_name", "locations"}, resp.Fields)
}
