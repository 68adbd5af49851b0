// Package errors provides standardized error handling for the sign-up API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound  ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadyRegistered ErrorCode = "ALREADY_REGISTERED"
	ErrCodeNotRegistered     ErrorCode = "NOT_REGISTERED"
	ErrCodeMissingEmail      ErrorCode = "MISSING_EMAIL"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewActivityNotFoundError reports an unknown activity name.
func NewActivityNotFoundError(activityName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeActivityNotFound,
		Message:   "Activity not found",
		Details:   fmt.Sprintf("activity: %s", activityName),
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadyRegisteredError reports a duplicate signup attempt.
func NewAlreadyRegisteredError(activityName, email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAlreadyRegistered,
		Message:   "Student already signed up for this activity",
		Details:   fmt.Sprintf("activity: %s, email: %s", activityName, email),
		Timestamp: time.Now().UTC(),
	}
}

// NewNotRegisteredError reports an unregister attempt for an absent participant.
func NewNotRegisteredError(activityName, email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotRegistered,
		Message:   "Student is not signed up for this activity",
		Details:   fmt.Sprintf("activity: %s, email: %s", activityName, email),
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingEmailError reports a request without the required email parameter.
func NewMissingEmailError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingEmail,
		Message:   "Email is required",
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected condition.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to HTTP status codes. The
// registry stays free of transport concerns; handlers consult this table.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeActivityNotFound:  http.StatusNotFound,
	ErrCodeAlreadyRegistered: http.StatusBadRequest,
	ErrCodeNotRegistered:     http.StatusBadRequest,
	ErrCodeMissingEmail:      http.StatusBadRequest,
	ErrCodeInternal:          http.StatusInternalServerError,
}

// HTTPStatus returns the wire status for an error code. Unknown codes map to
// a generic server fault rather than being swallowed.
func HTTPStatus(code ErrorCode) int {
	if status, exists := HTTPStatusMapping[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether the code is an expected, user-triggerable
// condition (4xx) rather than a server fault.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatus(code)
	return status >= 400 && status < 500
}
