package orangic

import "time"

const (
	// DefaultBaseURL is the production Orangic API host.
	DefaultBaseURL = "https://api.orangic.chat"

	// DefaultTimeout applies to non-streaming requests. Streaming
	// requests ignore it; the context controls their lifetime.
	DefaultTimeout = 600 * time.Second

	// DefaultMaxRetries is the advisory retry budget.
	DefaultMaxRetries = 2
)

// Config holds configuration for the Orangic client.
type Config struct {
	// APIKey authenticates requests. Falls back to the
	// ORANGIC_API_KEY environment variable when empty.
	APIKey string

	// BaseURL is the API host. Defaults to DefaultBaseURL. A
	// trailing slash is stripped.
	BaseURL string

	// Timeout for individual non-streaming HTTP requests.
	// Defaults to 600s.
	Timeout time.Duration

	// MaxRetries is an advisory retry budget for wrapping retry
	// layers. The client itself never retries a request.
	MaxRetries int
}

// DefaultConfig returns a Config with production defaults. The API
// key is left empty and resolved from the environment by New.
func DefaultConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		Timeout:    DefaultTimeout,
		MaxRetries: DefaultMaxRetries,
	}
}
