package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with status code",
			err:  &APIError{Type: ErrorTypeAuthentication, Message: "bad key", StatusCode: 401},
			want: "authentication_error: bad key (HTTP 401)",
		},
		{
			name: "without status code",
			err:  NewAuthenticationError("no API key provided"),
			want: "authentication_error: no API key provided",
		},
		{
			name: "rate limit",
			err:  &APIError{Type: ErrorTypeRateLimit, Message: "slow down", StatusCode: 429},
			want: "rate_limit_error: slow down (HTTP 429)",
		},
		{
			name: "generic",
			err:  NewAPIError("something broke"),
			want: "api_error: something broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAPIErrorAs(t *testing.T) {
	var wrapped error = fmt.Errorf("request failed: %w", NewRateLimitError("rate limit exceeded"))

	var apiErr *APIError
	if !errors.As(wrapped, &apiErr) {
		t.Fatal("errors.As failed to unwrap *APIError")
	}
	if apiErr.Type != ErrorTypeRateLimit {
		t.Errorf("expected type %q, got %q", ErrorTypeRateLimit, apiErr.Type)
	}
}
