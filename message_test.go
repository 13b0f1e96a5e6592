package fetcher

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorMessage verifies the priority order of error normalization:
// server detail first, then the status code mapping, then nothing.
func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "detail wins over mapped status", err: &ResponseError{StatusCode: http.StatusUnauthorized, Detail: "token expired"}, expected: "token expired"},
		{name: "detail on unmapped status", err: &ResponseError{StatusCode: http.StatusInternalServerError, Detail: "db down"}, expected: "db down"},
		{name: "mapped status", err: &ResponseError{StatusCode: http.StatusUnauthorized}, expected: "Unauthorized API request. Please login"},
		{name: "unmapped status", err: &ResponseError{StatusCode: http.StatusNotFound}, expected: ""},
		{name: "wrapped response error", err: errors.Join(errors.New("outer"), &ResponseError{StatusCode: http.StatusUnauthorized}), expected: "Unauthorized API request. Please login"},
		{name: "transport error", err: &TransportError{URL: "/api/me", Err: errors.New("connection refused")}, expected: ""},
		{name: "decode error", err: &DecodeError{URL: "/api/me", Err: errors.New("unexpected end of JSON input")}, expected: ""},
		{name: "nil error", err: nil, expected: ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorMessage(tt.err))
		})
	}
}

func TestDisplayMessage(t *testing.T) {
	cases := []struct {
		name     string
		message  string
		generic  string
		expected string
	}{
		{name: "message wins", message: "db down", generic: "Error fetching user information", expected: "db down"},
		{name: "generic fallback", message: "", generic: "Error fetching user information", expected: "Error fetching user information"},
		{name: "default fallback", message: "", generic: "", expected: "Error occurred while fetching data"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayMessage(tt.message, tt.generic))
		})
	}
}
