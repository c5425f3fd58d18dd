package common

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure taxonomy for the analysis pipeline and the REST surface.
// Every handler failure wraps exactly one of these sentinels.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrBadInput            = errors.New("invalid input")
	ErrExtractionFailed    = errors.New("text extraction failed")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrUnauthorized        = errors.New("unauthorized")
)

// NewAppError constructs an AppError wrapping a taxonomy sentinel.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HTTPStatus maps a taxonomy error to the status code the REST surface
// returns. ExtractionFailed is a user-visible 400 (bad upload), while
// upstream transport failures stay 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadInput), errors.Is(err, ErrExtractionFailed):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
