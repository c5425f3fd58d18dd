package common

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not_found", ErrNotFound, http.StatusNotFound},
		{"bad_input", ErrBadInput, http.StatusBadRequest},
		{"extraction_failed", ErrExtractionFailed, http.StatusBadRequest},
		{"upstream", ErrUpstreamUnavailable, http.StatusInternalServerError},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"wrapped_not_found", fmt.Errorf("load report: %w", ErrNotFound), http.StatusNotFound},
		{"app_error_wraps_sentinel", NewAppError("X", "y", ErrExtractionFailed), http.StatusBadRequest},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus: got=%d want=%d", got, tc.want)
			}
		})
	}
}

func TestAppErrorMessage(t *testing.T) {
	e := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrBadInput)
	want := "CONFIG_ERROR: DB_URL is required: invalid input"
	if e.Error() != want {
		t.Fatalf("Error(): got=%q want=%q", e.Error(), want)
	}
}
