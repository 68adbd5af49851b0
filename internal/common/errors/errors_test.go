// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name            string
		err             *StandardError
		expectedCode    ErrorCode
		expectedMessage string
	}{
		{
			name:            "activity not found",
			err:             NewActivityNotFoundError("Nonexistent Club"),
			expectedCode:    ErrCodeActivityNotFound,
			expectedMessage: "Activity not found",
		},
		{
			name:            "already registered",
			err:             NewAlreadyRegisteredError("Chess Club", "michael@mergington.edu"),
			expectedCode:    ErrCodeAlreadyRegistered,
			expectedMessage: "Student already signed up for this activity",
		},
		{
			name:            "not registered",
			err:             NewNotRegisteredError("Chess Club", "stranger@mergington.edu"),
			expectedCode:    ErrCodeNotRegistered,
			expectedMessage: "Student is not signed up for this activity",
		},
		{
			name:            "missing email",
			err:             NewMissingEmailError(),
			expectedCode:    ErrCodeMissingEmail,
			expectedMessage: "Email is required",
		},
		{
			name:            "internal",
			err:             NewInternalError(fmt.Errorf("boom")),
			expectedCode:    ErrCodeInternal,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, tt.err.Code)
			assert.Equal(t, tt.expectedMessage, tt.err.Message)
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Contains(t, tt.err.Error(), string(tt.expectedCode))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeActivityNotFound, http.StatusNotFound},
		{ErrCodeAlreadyRegistered, http.StatusBadRequest},
		{ErrCodeNotRegistered, http.StatusBadRequest},
		{ErrCodeMissingEmail, http.StatusBadRequest},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_NEW"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.code))
		})
	}
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ErrCodeActivityNotFound))
	assert.True(t, IsClientError(ErrCodeAlreadyRegistered))
	assert.True(t, IsClientError(ErrCodeNotRegistered))
	assert.True(t, IsClientError(ErrCodeMissingEmail))
	assert.False(t, IsClientError(ErrCodeInternal))
	assert.False(t, IsClientError(ErrorCode("SOMETHING_NEW")))
}
