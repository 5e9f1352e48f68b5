package orangic

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/orangic/orangic-go/pkg/api"
)

// classifyResponse maps an HTTP response to a typed APIError. Status
// codes below 400 are not errors and return nil. The same mapping
// applies to the synchronous and the streaming path; for streams it
// runs once on the response headers before any chunk is read.
func classifyResponse(resp *http.Response) *api.APIError {
	if resp.StatusCode < 400 {
		return nil
	}

	message := extractErrorMessage(resp.Body)

	var apiErr *api.APIError
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		apiErr = api.NewAuthenticationError(message)
	case http.StatusTooManyRequests:
		apiErr = api.NewRateLimitError(message)
	default:
		apiErr = api.NewAPIError(message)
	}
	apiErr.StatusCode = resp.StatusCode
	return apiErr
}

// extractErrorMessage pulls a human-readable message out of an error
// body. It tries the flat {"error": "..."} shape first, then the
// nested {"error": {"message": "..."}} shape, and finally falls back
// to the raw body text.
func extractErrorMessage(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var flat struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &flat); err == nil && flat.Error != "" {
		return flat.Error
	}

	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &nested); err == nil && nested.Error.Message != "" {
		return nested.Error.Message
	}

	return string(data)
}
