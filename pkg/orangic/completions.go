package orangic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/orangic/orangic-go/pkg/api"
	"github.com/orangic/orangic-go/pkg/debug"
	"github.com/orangic/orangic-go/pkg/observability"
)

const completionsPath = "/v1/chat/completions"

// CreateCompletion performs a synchronous chat completion. It builds
// the payload from req (forcing stream off), POSTs it, and decodes
// the response into a ChatCompletion.
func (c *Client) CreateCompletion(ctx context.Context, req *CompletionRequest) (*api.ChatCompletion, error) {
	reqCopy := *req
	reqCopy.Stream = false

	httpReq, err := c.newCompletionRequest(ctx, &reqCopy)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.roundTrip(c.httpClient, httpReq, "chat.completions")
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if apiErr := classifyResponse(httpResp); apiErr != nil {
		return nil, apiErr
	}

	var completion api.ChatCompletion
	if err := json.NewDecoder(httpResp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to parse completion response: %w", err)
	}

	observability.TokensTotal.WithLabelValues("input").Add(float64(completion.Usage.PromptTokens))
	observability.TokensTotal.WithLabelValues("output").Add(float64(completion.Usage.CompletionTokens))

	return &completion, nil
}

// CreateCompletionStream performs a streaming chat completion. It
// builds the payload from req (forcing stream on) and returns a
// ChatCompletionStream once the response headers have been checked.
// HTTP error statuses are classified here, before any chunk is read;
// the stream itself never raises an API error mid-flight.
//
// The client timeout is not applied to streaming requests because a
// stream can legitimately outlive any fixed timeout. The context
// controls the request lifetime instead.
func (c *Client) CreateCompletionStream(ctx context.Context, req *CompletionRequest) (*ChatCompletionStream, error) {
	reqCopy := *req
	reqCopy.Stream = true

	httpReq, err := c.newCompletionRequest(ctx, &reqCopy)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	streamClient := &http.Client{
		Transport: c.httpClient.Transport,
	}

	httpResp, err := c.roundTrip(streamClient, httpReq, "chat.completions")
	if err != nil {
		return nil, err
	}

	if apiErr := classifyResponse(httpResp); apiErr != nil {
		httpResp.Body.Close()
		return nil, apiErr
	}

	observability.StreamsActive.Inc()
	return newChatCompletionStream(httpResp.Body), nil
}

// newCompletionRequest marshals the payload and builds the POST
// request with the fixed header set.
func (c *Client) newCompletionRequest(ctx context.Context, req *CompletionRequest) (*http.Request, error) {
	body, err := json.Marshal(req.payload())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	if debug.TraceIsEnabled("client") {
		debug.Raw("client", string(body))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	c.setHeaders(httpReq)
	return httpReq, nil
}

// Completion is a convenience helper for one-shot requests without
// keeping a Client around. The API key is resolved from the
// ORANGIC_API_KEY environment variable.
func Completion(ctx context.Context, model string, messages []any) (*api.ChatCompletion, error) {
	client, err := New(Config{})
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return client.CreateCompletion(ctx, &CompletionRequest{
		Model:    model,
		Messages: messages,
	})
}
