package api

import "fmt"

// ErrorType represents the category of an API error.
type ErrorType string

const (
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeRateLimit      ErrorType = "rate_limit_error"
	ErrorTypeAPI            ErrorType = "api_error"
)

// APIError is a typed Orangic API failure. StatusCode is the HTTP
// status that produced the error, or 0 for errors raised locally
// (e.g. a missing API key at client construction).
//
// Transport-level failures (connection refused, timeouts) are NOT
// wrapped into APIError; they surface as-is from net/http.
type APIError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Type, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewAuthenticationError creates an APIError for missing or rejected
// credentials.
func NewAuthenticationError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeAuthentication,
		Message: message,
	}
}

// NewRateLimitError creates an APIError for rate limiting.
func NewRateLimitError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeRateLimit,
		Message: message,
	}
}

// NewAPIError creates a generic APIError.
func NewAPIError(message string) *APIError {
	return &APIError{
		Type:    ErrorTypeAPI,
		Message: message,
	}
}
