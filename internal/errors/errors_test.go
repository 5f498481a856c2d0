package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "Invalid request format", New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format").Error())
	assert.Equal(t, "", (&APIError{}).Error())
}

func TestNewWithDetails(t *testing.T) {
	err := NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", "bad view", map[string]string{"view": "x"})

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode)
	assert.Equal(t, map[string]string{"view": "x"}, err.Details)
}

func TestViewNotFoundError(t *testing.T) {
	err := ViewNotFoundError("pie")

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "VIEW_NOT_FOUND", err.ErrorCode)
	assert.Equal(t, `view "pie" not found`, err.Message)
	assert.Equal(t, "pie", err.Details)
}

func TestProblemDetails_MarshalJSON(t *testing.T) {
	problem := NewProblemDetails(http.StatusNotFound, TypeViewNotFound, "Not Found", "view missing", "/api/views/x").
		WithExtension("trace_id", "abc")

	data, err := json.Marshal(problem)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, TypeViewNotFound, decoded["type"])
	assert.Equal(t, float64(http.StatusNotFound), decoded["status"])
	assert.Equal(t, "view missing", decoded["detail"])
	assert.Equal(t, "/api/views/x", decoded["instance"])
	assert.Equal(t, "abc", decoded["trace_id"])
}

func TestProblemDetails_ExtensionsCannotOverrideStandardFields(t *testing.T) {
	problem := NewProblemDetails(http.StatusBadRequest, TypeValidation, "Bad Request", "", "").
		WithExtension("status", 999)

	data, err := json.Marshal(problem)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(http.StatusBadRequest), decoded["status"])
	assert.NotContains(t, decoded, "detail")
}
