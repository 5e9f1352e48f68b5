package api

import "encoding/json"

// Message is a single conversation turn. Role is one of "system",
// "user", "assistant", or "tool".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ToMap converts the message to the plain {role, content} record sent
// on the wire.
func (m Message) ToMap() map[string]any {
	return map[string]any{
		"role":    m.Role,
		"content": m.Content,
	}
}

// ChatCompletion is the non-streaming response from
// /v1/chat/completions. Choices preserve the server-provided index
// order and are never re-sorted.
type ChatCompletion struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is one completion alternative. Message is kept as a raw
// mapping so server-side fields beyond role/content (tool_calls,
// reasoning output) survive a round trip.
type Choice struct {
	Index        int            `json:"index"`
	Message      map[string]any `json:"message"`
	FinishReason *string        `json:"finish_reason"`
}

// Usage holds token accounting for a completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatCompletionChunk is a single event in a streaming response.
// Channel tags which output channel the fragment belongs to and
// defaults to "final" when the server omits it.
type ChatCompletionChunk struct {
	Content string `json:"content"`
	Channel string `json:"channel"`
}

// UnmarshalJSON applies the "final" channel default.
func (c *ChatCompletionChunk) UnmarshalJSON(data []byte) error {
	type plain ChatCompletionChunk
	aux := plain{Channel: "final"}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*c = ChatCompletionChunk(aux)
	return nil
}
