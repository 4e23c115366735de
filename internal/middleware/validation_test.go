package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	UserID  string `json:"user_id"`
	Message string `json:"message" validate:"required"`
}

func TestDecodeAndValidate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"user_id": "u1", "message": "hello"}`))

	var payload testPayload
	require.NoError(t, DecodeAndValidate(req, &payload))
	assert.Equal(t, "u1", payload.UserID)
	assert.Equal(t, "hello", payload.Message)
}

func TestDecodeAndValidateMissingRequiredField(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"user_id": "u1"}`))

	var payload testPayload
	err := DecodeAndValidate(req, &payload)
	require.Error(t, err)

	errors := FormatValidationErrors(err)
	require.Len(t, errors, 1)
	assert.Equal(t, "Message", errors[0].Field)
	assert.Equal(t, "This field is required", errors[0].Message)
}

func TestDecodeAndValidateMalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{broken`))

	var payload testPayload
	err := DecodeAndValidate(req, &payload)
	require.Error(t, err)

	// Decode errors are not validation errors
	assert.Empty(t, FormatValidationErrors(err))
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, FormatValidationErrors(assert.AnError))
}
